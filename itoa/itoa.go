package itoa

// Worst-case output lengths per width. Signed lengths include the
// minus sign.
const (
	MaxLenInt8  = 4  // "-128"
	MaxLenInt16 = 6  // "-32768"
	MaxLenInt32 = 11 // "-2147483648"
	MaxLenInt64 = 20 // "-9223372036854775808"

	MaxLenUint8  = 3  // "255"
	MaxLenUint16 = 5  // "65535"
	MaxLenUint32 = 10 // "4294967295"
	MaxLenUint64 = 20 // "18446744073709551615"
)

const digitPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// AppendUint appends the decimal form of v to dst.
func AppendUint(dst []byte, v uint64) []byte {
	var buf [MaxLenUint64]byte
	i := len(buf)
	for v >= 100 {
		q := v / 100
		r := v - q*100
		i -= 2
		copy(buf[i:], digitPairs[r*2:r*2+2])
		v = q
	}
	if v >= 10 {
		i -= 2
		copy(buf[i:], digitPairs[v*2:v*2+2])
	} else {
		i--
		buf[i] = byte('0' + v)
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the decimal form of v to dst.
func AppendInt(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		// Negating math.MinInt64 overflows int64; the unsigned
		// conversion wraps to the correct magnitude.
		return AppendUint(dst, -uint64(v))
	}
	return AppendUint(dst, uint64(v))
}

func AppendInt8(dst []byte, v int8) []byte   { return AppendInt(dst, int64(v)) }
func AppendInt16(dst []byte, v int16) []byte { return AppendInt(dst, int64(v)) }
func AppendInt32(dst []byte, v int32) []byte { return AppendInt(dst, int64(v)) }
func AppendInt64(dst []byte, v int64) []byte { return AppendInt(dst, v) }

func AppendUint8(dst []byte, v uint8) []byte   { return AppendUint(dst, uint64(v)) }
func AppendUint16(dst []byte, v uint16) []byte { return AppendUint(dst, uint64(v)) }
func AppendUint32(dst []byte, v uint32) []byte { return AppendUint(dst, uint64(v)) }
func AppendUint64(dst []byte, v uint64) []byte { return AppendUint(dst, v) }
