// Package floatfmt converts IEEE-754 floating-point values to their
// shortest round-tripping decimal representation.
//
// The conversion implements the Ryu algorithm: for every finite float32
// or float64 it produces the decimal digit sequence with the fewest
// significant digits that, when parsed back by a correctly-rounding
// reader, recovers the exact original bit pattern. The digit sequence
// is then rendered in fixed-point or scientific notation depending on
// its magnitude.
//
// # Architecture Overview
//
// The library is organized into a thin public surface over a private
// conversion core, plus two standalone helper packages:
//
//	floatfmt/        Public API: Format, Append and String entry points
//	├── errors/      Structured error types
//	├── itoa/        Integer-to-decimal append helpers
//	├── concat/      Single-allocation joining of pre-rendered pieces
//	├── internal/
//	│   └── ryu/     Reduction engines, power-of-five tables, renderer
//	└── cmd/
//	    ├── gentables/  Regenerates the power-of-five tables
//	    └── inspect/    CLI/TUI for exploring IEEE-754 decompositions
//
// # Quick Start
//
// Format into a caller-owned buffer:
//
//	buf := make([]byte, floatfmt.MinBufferSize)
//	n, err := floatfmt.Format64(buf, 3.14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(buf[:n])) // "3.14"
//
// Or let the library manage storage:
//
//	s := floatfmt.String64(1e30)       // "1e30"
//	b := floatfmt.Append64(nil, 0.25)  // []byte("0.25")
//
// # Output Format
//
// Values near unity render in fixed-point notation, everything else in
// scientific notation with a lower-case 'e' and no '+' or leading
// zeros in the exponent:
//
//	1.0       -> "1.0"
//	0.0001234 -> "0.0001234"
//	1e30      -> "1e30"
//	-1e-30    -> "-1e-30"
//
// Non-finite values map to the fixed literals "NAN", "INFINITY" and
// "NEG_INFINITY"; zero renders as "0.0" (sign-prefixed for negative
// zero). Callers comparing output against special values must use
// these exact strings.
//
// # Buffer Contract
//
// Format64 and Format32 write ASCII bytes starting at offset 0 of the
// supplied buffer and return the count written; no terminator is
// appended. The buffer must be at least MinBufferSize (24) bytes long,
// which covers any finite value of either precision. An undersized
// buffer is a precondition violation and is reported as a structured
// error before anything is written.
//
// # Thread Safety
//
// Every function is a pure transformation of its inputs. The
// power-of-five tables are read-only package data, so all entry points
// are safe for unsynchronized concurrent use.
package floatfmt
