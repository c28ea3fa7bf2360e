// Package errors provides structured error types for the floatfmt library.
//
// Errors carry a Phase (where in processing the failure occurred) and a
// Kind (what category of failure it is) alongside a human-readable
// detail message:
//
//	[format] buffer_too_small: buffer is 8 bytes, need at least 24
//
// Two errors match under errors.Is when their Phase and Kind agree,
// so callers can test for a category without string comparison.
package errors
