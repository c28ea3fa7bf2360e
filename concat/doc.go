// Package concat builds strings from typed pieces in a single
// allocation.
//
// Each Piece knows how to append itself to a byte slice and how many
// bytes it can produce at most. Join sums the bounds, allocates once,
// and appends every piece in order, so mixed text/number assembly
// avoids both fmt reflection and repeated buffer growth:
//
//	s := concat.Join(
//		concat.Str("x="),
//		concat.Float64(1.5),
//		concat.Str(" n="),
//		concat.Int(-42),
//	)
//	// s == "x=1.5 n=-42"
package concat
