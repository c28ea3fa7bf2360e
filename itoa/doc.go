// Package itoa appends decimal renderings of integers to byte slices
// without intermediate allocation.
//
// Every Append function writes directly into dst and returns the
// extended slice. The MaxLen constants give the worst-case number of
// bytes each width can produce, including a leading minus sign for the
// signed variants, so callers sizing buffers up front can avoid growth
// entirely.
package itoa
