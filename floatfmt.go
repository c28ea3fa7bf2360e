package floatfmt

import (
	"math"

	"github.com/wippyai/floatfmt/errors"
	"github.com/wippyai/floatfmt/internal/ryu"
)

// MinBufferSize is the smallest buffer Format64 and Format32 accept.
// 24 bytes covers any finite value of either precision, including
// sign, decimal point and a 3-digit exponent.
const MinBufferSize = 24

// Fixed literals for non-finite values and zero.
const (
	NaN         = "NAN"
	Infinity    = "INFINITY"
	NegInfinity = "NEG_INFINITY"
)

const (
	signMask64     = 0x8000000000000000
	exponentMask64 = 0x7ff0000000000000
	mantissaMask64 = 0x000fffffffffffff

	signMask32     = 0x80000000
	exponentMask32 = 0x7f800000
	mantissaMask32 = 0x007fffff
)

// Format64 writes the shortest decimal representation of f into buf
// starting at offset 0 and returns the number of bytes written. The
// output is plain ASCII with no terminator. buf must be at least
// MinBufferSize bytes long.
func Format64(buf []byte, f float64) (int, error) {
	if len(buf) < MinBufferSize {
		return 0, errors.BufferTooSmall(len(buf), MinBufferSize)
	}
	if s, ok := special64(math.Float64bits(f)); ok {
		return copy(buf, s), nil
	}
	return ryu.Format64(buf, f), nil
}

// Format32 is the float32 counterpart of Format64.
func Format32(buf []byte, f float32) (int, error) {
	if len(buf) < MinBufferSize {
		return 0, errors.BufferTooSmall(len(buf), MinBufferSize)
	}
	if s, ok := special32(math.Float32bits(f)); ok {
		return copy(buf, s), nil
	}
	return ryu.Format32(buf, f), nil
}

// Append64 appends the shortest decimal representation of f to dst
// and returns the extended slice.
func Append64(dst []byte, f float64) []byte {
	if s, ok := special64(math.Float64bits(f)); ok {
		return append(dst, s...)
	}
	n := len(dst)
	dst = grow(dst, MinBufferSize)
	return dst[:n+ryu.Format64(dst[n:n+MinBufferSize], f)]
}

// Append32 is the float32 counterpart of Append64.
func Append32(dst []byte, f float32) []byte {
	if s, ok := special32(math.Float32bits(f)); ok {
		return append(dst, s...)
	}
	n := len(dst)
	dst = grow(dst, MinBufferSize)
	return dst[:n+ryu.Format32(dst[n:n+MinBufferSize], f)]
}

// String64 returns the shortest decimal representation of f.
func String64(f float64) string {
	if s, ok := special64(math.Float64bits(f)); ok {
		return s
	}
	var buf [MinBufferSize]byte
	return string(buf[:ryu.Format64(buf[:], f)])
}

// String32 is the float32 counterpart of String64.
func String32(f float32) string {
	if s, ok := special32(math.Float32bits(f)); ok {
		return s
	}
	var buf [MinBufferSize]byte
	return string(buf[:ryu.Format32(buf[:], f)])
}

// special64 maps NaN and infinity bit patterns to their literals.
func special64(bits uint64) (string, bool) {
	if bits&exponentMask64 != exponentMask64 {
		return "", false
	}
	switch {
	case bits&mantissaMask64 != 0:
		return NaN, true
	case bits&signMask64 != 0:
		return NegInfinity, true
	default:
		return Infinity, true
	}
}

// special32 maps NaN and infinity bit patterns to their literals.
func special32(bits uint32) (string, bool) {
	if bits&exponentMask32 != exponentMask32 {
		return "", false
	}
	switch {
	case bits&mantissaMask32 != 0:
		return NaN, true
	case bits&signMask32 != 0:
		return NegInfinity, true
	default:
		return Infinity, true
	}
}

// grow ensures dst has room for n more bytes past its length.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	out := make([]byte, len(dst), len(dst)+n)
	copy(out, dst)
	return out
}
