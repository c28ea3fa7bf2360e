package concat

import (
	"unicode/utf8"

	"github.com/wippyai/floatfmt"
	"github.com/wippyai/floatfmt/itoa"
)

// Piece is one typed fragment of a concatenation.
type Piece interface {
	// AppendPiece appends the fragment's bytes to dst.
	AppendPiece(dst []byte) []byte

	// MaxPieceLen bounds the number of bytes AppendPiece can add.
	MaxPieceLen() int
}

// Str is a literal string piece.
type Str string

func (s Str) AppendPiece(dst []byte) []byte { return append(dst, s...) }
func (s Str) MaxPieceLen() int              { return len(s) }

// Bytes is a raw byte slice piece.
type Bytes []byte

func (b Bytes) AppendPiece(dst []byte) []byte { return append(dst, b...) }
func (b Bytes) MaxPieceLen() int              { return len(b) }

// Int renders a signed integer in decimal.
type Int int64

func (v Int) AppendPiece(dst []byte) []byte { return itoa.AppendInt(dst, int64(v)) }
func (v Int) MaxPieceLen() int              { return itoa.MaxLenInt64 }

// Uint renders an unsigned integer in decimal.
type Uint uint64

func (v Uint) AppendPiece(dst []byte) []byte { return itoa.AppendUint(dst, uint64(v)) }
func (v Uint) MaxPieceLen() int              { return itoa.MaxLenUint64 }

// Float64 renders a float64 in its shortest round-tripping form.
type Float64 float64

func (v Float64) AppendPiece(dst []byte) []byte { return floatfmt.Append64(dst, float64(v)) }
func (v Float64) MaxPieceLen() int              { return floatfmt.MinBufferSize }

// Float32 renders a float32 in its shortest round-tripping form.
type Float32 float32

func (v Float32) AppendPiece(dst []byte) []byte { return floatfmt.Append32(dst, float32(v)) }
func (v Float32) MaxPieceLen() int              { return floatfmt.MinBufferSize }

// Bool renders "true" or "false".
type Bool bool

func (v Bool) AppendPiece(dst []byte) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

func (v Bool) MaxPieceLen() int { return len("false") }

// Rune renders a single UTF-8 encoded rune.
type Rune rune

func (v Rune) AppendPiece(dst []byte) []byte { return utf8.AppendRune(dst, rune(v)) }
func (v Rune) MaxPieceLen() int              { return utf8.UTFMax }

// Join concatenates the pieces into a freshly allocated string.
func Join(pieces ...Piece) string {
	n := 0
	for _, p := range pieces {
		n += p.MaxPieceLen()
	}
	buf := make([]byte, 0, n)
	for _, p := range pieces {
		buf = p.AppendPiece(buf)
	}
	return string(buf)
}

// AppendJoin appends the concatenation of the pieces to dst.
func AppendJoin(dst []byte, pieces ...Piece) []byte {
	for _, p := range pieces {
		dst = p.AppendPiece(dst)
	}
	return dst
}
