package ryu

import "math/bits"

const (
	mantissaBits64 = 52
	exponentBits64 = 11
	bias64         = 1023

	pow5InvBitcount64 = 125
	pow5Bitcount64    = 125
)

// dec64 is a decimal value mantissa * 10^exponent produced by the
// float64 reduction engine. The mantissa is never zero and carries no
// trailing decimal zeros beyond what round-trip correctness requires.
type dec64 struct {
	mantissa uint64
	exponent int32
}

// d2d converts the raw mantissa and biased exponent fields of a finite
// nonzero float64 into the shortest decimal that parses back to the
// same bit pattern. The sign bit is handled by the caller.
func d2d(ieeeMantissa uint64, ieeeExponent uint32) dec64 {
	var e2 int32
	var m2 uint64
	if ieeeExponent == 0 {
		// Subtracting 2 keeps two extra bits for the interval bounds.
		e2 = 1 - bias64 - mantissaBits64 - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - bias64 - mantissaBits64 - 2
		m2 = uint64(1)<<mantissaBits64 | ieeeMantissa
	}
	even := m2&1 == 0
	acceptBounds := even

	// mv, mv-1-mmShift and mv+2 bracket the value's rounding interval,
	// scaled by 4 so the halfway points are integers. The lower gap is
	// halved only at the smallest normal mantissa, where the
	// predecessor sits one binade down.
	mv := 4 * m2
	mmShift := uint64(1)
	if ieeeMantissa == 0 && ieeeExponent > 1 {
		mmShift = 0
	}

	var vr, vp, vm uint64
	var e10 int32
	vmIsTrailingZeros := false
	vrIsTrailingZeros := false
	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = int32(q)
		k := pow5InvBitcount64 + pow5bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr, vp, vm = mulShiftAll64(m2, pow5InvSplit[q], uint32(i), mmShift)
		if q <= 21 {
			// The multiply-shift result is exact for q up to 21, so
			// trailing zeros can be detected analytically instead of
			// by running the removal loop to the end.
			if mv%5 == 0 {
				vrIsTrailingZeros = multipleOfPowerOf5(mv, q)
			} else if acceptBounds {
				vmIsTrailingZeros = multipleOfPowerOf5(mv-1-mmShift, q)
			} else if multipleOfPowerOf5(mv+2, q) {
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5bits(i) - pow5Bitcount64
		j := int32(q) - k
		vr, vp, vm = mulShiftAll64(m2, pow5Split[i], uint32(j), mmShift)
		if q <= 1 {
			// Every value has at least q trailing zero bits here.
			vrIsTrailingZeros = true
			if acceptBounds {
				// mm = mv-1-mmShift, so it has a trailing zero bit
				// iff mmShift == 1.
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 63 {
			vrIsTrailingZeros = mv&(uint64(1)<<q-1) == 0
		}
	}

	removed := int32(0)
	lastRemovedDigit := uint8(0)
	var out uint64
	if vmIsTrailingZeros || vrIsTrailingZeros {
		// Rare path: a bound may land exactly on a power of ten, so
		// zero-ness must be tracked through every removal for correct
		// round-to-even behavior.
		for {
			vpDiv10 := vp / 10
			vmDiv10 := vm / 10
			if vpDiv10 <= vmDiv10 {
				break
			}
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = uint8(vr % 10)
			vr /= 10
			vp = vpDiv10
			vm = vmDiv10
			removed++
		}
		if vmIsTrailingZeros {
			for vm%10 == 0 {
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = uint8(vr % 10)
				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}
		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// An exact halfway case rounds down to the even mantissa.
			lastRemovedDigit = 4
		}
		out = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			out++
		}
	} else {
		// Common path: round purely on the last dropped digit. Taking
		// two digits at once is safe while vp and vm differ above the
		// hundreds.
		roundUp := false
		vpDiv100 := vp / 100
		vmDiv100 := vm / 100
		if vpDiv100 > vmDiv100 {
			roundUp = vr%100 >= 50
			vr /= 100
			vp = vpDiv100
			vm = vmDiv100
			removed += 2
		}
		for {
			vpDiv10 := vp / 10
			vmDiv10 := vm / 10
			if vpDiv10 <= vmDiv10 {
				break
			}
			roundUp = vr%10 >= 5
			vr /= 10
			vp = vpDiv10
			vm = vmDiv10
			removed++
		}
		out = vr
		if vr == vm || roundUp {
			out++
		}
	}

	return dec64{mantissa: out, exponent: e10 + removed}
}

// multipleOfPowerOf5 reports whether value is divisible by 5^p.
// Multiplying by the inverse of 5 mod 2^64 maps multiples of 5 onto
// [0, floor(MaxUint64/5)], replacing a division per step with a
// multiply and compare. value must be nonzero.
func multipleOfPowerOf5(value uint64, p uint32) bool {
	count := uint32(0)
	for {
		value *= 14757395258967641293
		if value > 3689348814741910323 {
			break
		}
		count++
	}
	return count >= p
}

// mulShift64 returns the high bits of m * mul shifted right by j,
// for 64 < j < 128.
func mulShift64(m uint64, mul uint128, j uint32) uint64 {
	hi0, _ := bits.Mul64(m, mul.lo)
	hi1, lo1 := bits.Mul64(m, mul.hi)
	sumLo, carry := bits.Add64(lo1, hi0, 0)
	sumHi := hi1 + carry
	shift := j - 64
	return sumHi<<(64-shift) | sumLo>>shift
}

// mulShiftAll64 scales the interval (mv-1-mmShift, mv, mv+2) around
// 4*m2 in one go, returning (vr, vp, vm).
func mulShiftAll64(m2 uint64, mul uint128, j uint32, mmShift uint64) (vr, vp, vm uint64) {
	vp = mulShift64(4*m2+2, mul, j)
	vm = mulShift64(4*m2-1-mmShift, mul, j)
	vr = mulShift64(4*m2, mul, j)
	return vr, vp, vm
}
