// Package ryu implements shortest round-trip binary-to-decimal
// conversion for IEEE-754 single and double precision.
//
// The algorithm scales a half-open interval around the input value
// into decimal space with 128-bit fixed-point multiplications against
// precomputed powers of five, then strips digits while the interval
// still contains a unique shortest representation. The two precisions
// are deliberately kept as two independent code paths (d2d.go and
// f2d.go): they share structure but differ in every numeric constant,
// and sharing code invites constant-substitution bugs.
//
// # Contents
//
//   - common.go: digit counts and fixed-point log approximations
//   - tables.go: generated power-of-five tables (see cmd/gentables)
//   - d2d.go:    float64 reduction engine
//   - f2d.go:    float32 reduction engine
//   - pretty.go: decimal/scientific rendering into a byte buffer
//
// Callers must route non-finite values elsewhere before invoking
// Format64 or Format32, and must supply a buffer of at least 24 bytes.
//
// This package is internal to floatfmt.
package ryu
