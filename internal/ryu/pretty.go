package ryu

import "math"

// digitTable holds the ASCII digit pairs "00" through "99" so the
// writers can emit two digits per lookup.
const digitTable = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

// Format64 renders the shortest decimal form of a finite float64 into
// result, which must be at least 24 bytes long, and returns the number
// of bytes written. Non-finite inputs are the caller's responsibility.
func Format64(result []byte, f float64) int {
	bits := math.Float64bits(f)
	sign := bits>>(mantissaBits64+exponentBits64)&1 != 0
	ieeeMantissa := bits & (uint64(1)<<mantissaBits64 - 1)
	ieeeExponent := uint32(bits>>mantissaBits64) & (uint32(1)<<exponentBits64 - 1)

	index := 0
	if sign {
		result[0] = '-'
		index = 1
	}
	if ieeeExponent == 0 && ieeeMantissa == 0 {
		copy(result[index:], "0.0")
		return index + 3
	}

	v := d2d(ieeeMantissa, ieeeExponent)
	length := decimalLength17(v.mantissa)
	k := int(v.exponent)
	kk := length + k // position of the decimal point, 1-indexed

	switch {
	case 0 <= k && kk <= 16:
		// 1234e3 -> 1234000.0
		writeDigits64(result, index+length, v.mantissa)
		for i := length; i < kk; i++ {
			result[index+i] = '0'
		}
		result[index+kk] = '.'
		result[index+kk+1] = '0'
		return index + kk + 2
	case 0 < kk && kk <= 16:
		// 1234e-2 -> 12.34
		writeDigits64(result, index+length+1, v.mantissa)
		copy(result[index:index+kk], result[index+1:])
		result[index+kk] = '.'
		return index + length + 1
	case -5 < kk && kk <= 0:
		// 1234e-6 -> 0.001234
		result[index] = '0'
		result[index+1] = '.'
		offset := 2 - kk
		for i := 2; i < offset; i++ {
			result[index+i] = '0'
		}
		writeDigits64(result, index+length+offset, v.mantissa)
		return index + length + offset
	case length == 1:
		// 1e30
		result[index] = '0' + byte(v.mantissa)
		result[index+1] = 'e'
		return index + 2 + writeExponent3(result, index+2, kk-1)
	default:
		// 1234e30 -> 1.234e33
		writeDigits64(result, index+length+1, v.mantissa)
		result[index] = result[index+1]
		result[index+1] = '.'
		result[index+length+1] = 'e'
		return index + length + 2 + writeExponent3(result, index+length+2, kk-1)
	}
}

// Format32 is the float32 counterpart of Format64.
func Format32(result []byte, f float32) int {
	bits := math.Float32bits(f)
	sign := bits>>(mantissaBits32+exponentBits32)&1 != 0
	ieeeMantissa := bits & (uint32(1)<<mantissaBits32 - 1)
	ieeeExponent := bits >> mantissaBits32 & (uint32(1)<<exponentBits32 - 1)

	index := 0
	if sign {
		result[0] = '-'
		index = 1
	}
	if ieeeExponent == 0 && ieeeMantissa == 0 {
		copy(result[index:], "0.0")
		return index + 3
	}

	v := f2d(ieeeMantissa, ieeeExponent)
	length := decimalLength9(v.mantissa)
	k := int(v.exponent)
	kk := length + k

	switch {
	case 0 <= k && kk <= 13:
		writeDigits32(result, index+length, v.mantissa)
		for i := length; i < kk; i++ {
			result[index+i] = '0'
		}
		result[index+kk] = '.'
		result[index+kk+1] = '0'
		return index + kk + 2
	case 0 < kk && kk <= 13:
		writeDigits32(result, index+length+1, v.mantissa)
		copy(result[index:index+kk], result[index+1:])
		result[index+kk] = '.'
		return index + length + 1
	case -6 < kk && kk <= 0:
		result[index] = '0'
		result[index+1] = '.'
		offset := 2 - kk
		for i := 2; i < offset; i++ {
			result[index+i] = '0'
		}
		writeDigits32(result, index+length+offset, v.mantissa)
		return index + length + offset
	case length == 1:
		result[index] = '0' + byte(v.mantissa)
		result[index+1] = 'e'
		return index + 2 + writeExponent2(result, index+2, kk-1)
	default:
		writeDigits32(result, index+length+1, v.mantissa)
		result[index] = result[index+1]
		result[index+1] = '.'
		result[index+length+1] = 'e'
		return index + length + 2 + writeExponent2(result, index+length+2, kk-1)
	}
}

// writeDigits64 writes the decimal digits of v back to front, ending
// just before result[end].
func writeDigits64(result []byte, end int, v uint64) {
	if v>>32 != 0 {
		// One 64-bit division peels off the low eight digits; the
		// rest fits in 32 bits.
		q := v / 100000000
		low := uint32(v - 100000000*q)
		v = q

		c := low % 10000
		low /= 10000
		d := low % 10000
		c0 := (c % 100) * 2
		c1 := (c / 100) * 2
		d0 := (d % 100) * 2
		d1 := (d / 100) * 2
		copy(result[end-2:], digitTable[c0:c0+2])
		copy(result[end-4:], digitTable[c1:c1+2])
		copy(result[end-6:], digitTable[d0:d0+2])
		copy(result[end-8:], digitTable[d1:d1+2])
		end -= 8
	}
	writeDigits32(result, end, uint32(v))
}

// writeDigits32 writes the decimal digits of v back to front, ending
// just before result[end].
func writeDigits32(result []byte, end int, v uint32) {
	for v >= 10000 {
		c := v % 10000
		v /= 10000
		c0 := (c % 100) * 2
		c1 := (c / 100) * 2
		copy(result[end-2:], digitTable[c0:c0+2])
		copy(result[end-4:], digitTable[c1:c1+2])
		end -= 4
	}
	if v >= 100 {
		c := (v % 100) * 2
		v /= 100
		copy(result[end-2:], digitTable[c:c+2])
		end -= 2
	}
	if v >= 10 {
		c := v * 2
		copy(result[end-2:], digitTable[c:c+2])
	} else {
		result[end-1] = '0' + byte(v)
	}
}

// writeExponent3 writes a signed exponent of up to three digits at
// result[pos] and returns the number of bytes written.
func writeExponent3(result []byte, pos, k int) int {
	sign := 0
	if k < 0 {
		result[pos] = '-'
		pos++
		sign = 1
		k = -k
	}
	if k >= 100 {
		result[pos] = '0' + byte(k/100)
		k %= 100
		copy(result[pos+1:], digitTable[k*2:k*2+2])
		return sign + 3
	}
	if k >= 10 {
		copy(result[pos:], digitTable[k*2:k*2+2])
		return sign + 2
	}
	result[pos] = '0' + byte(k)
	return sign + 1
}

// writeExponent2 writes a signed exponent of up to two digits at
// result[pos] and returns the number of bytes written.
func writeExponent2(result []byte, pos, k int) int {
	sign := 0
	if k < 0 {
		result[pos] = '-'
		pos++
		sign = 1
		k = -k
	}
	if k >= 10 {
		copy(result[pos:], digitTable[k*2:k*2+2])
		return sign + 2
	}
	result[pos] = '0' + byte(k)
	return sign + 1
}
