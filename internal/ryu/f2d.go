package ryu

const (
	mantissaBits32 = 23
	exponentBits32 = 8
	bias32         = 127

	// The float32 path borrows the high halves of the float64 tables
	// instead of carrying tables of its own, so its fixed-point
	// precision is 64 bits narrower.
	pow5InvBitcount32 = pow5InvBitcount64 - 64
	pow5Bitcount32    = pow5Bitcount64 - 64
)

// dec32 is a decimal value mantissa * 10^exponent produced by the
// float32 reduction engine.
type dec32 struct {
	mantissa uint32
	exponent int32
}

// f2d converts the raw mantissa and biased exponent fields of a finite
// nonzero float32 into the shortest decimal that parses back to the
// same bit pattern. The sign bit is handled by the caller.
func f2d(ieeeMantissa, ieeeExponent uint32) dec32 {
	var e2 int32
	var m2 uint32
	if ieeeExponent == 0 {
		// Subtracting 2 keeps two extra bits for the interval bounds.
		e2 = 1 - bias32 - mantissaBits32 - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - bias32 - mantissaBits32 - 2
		m2 = uint32(1)<<mantissaBits32 | ieeeMantissa
	}
	even := m2&1 == 0
	acceptBounds := even

	mv := 4 * m2
	mp := 4*m2 + 2
	mmShift := uint32(1)
	if ieeeMantissa == 0 && ieeeExponent > 1 {
		mmShift = 0
	}
	mm := 4*m2 - 1 - mmShift

	var vr, vp, vm uint32
	var e10 int32
	vmIsTrailingZeros := false
	vrIsTrailingZeros := false
	lastRemovedDigit := uint8(0)
	if e2 >= 0 {
		q := log10Pow2(e2)
		e10 = int32(q)
		k := pow5InvBitcount32 + pow5bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr = mulPow5InvDivPow2(mv, q, i)
		vp = mulPow5InvDivPow2(mp, q, i)
		vm = mulPow5InvDivPow2(mm, q, i)
		if q != 0 && (vp-1)/10 <= vm/10 {
			// Only one digit will remain after the loop; fetch the
			// digit below it now, while the scaled value is at hand.
			l := pow5InvBitcount32 + pow5bits(int32(q)-1) - 1
			lastRemovedDigit = uint8(mulPow5InvDivPow2(mv, q-1, -e2+int32(q)-1+l) % 10)
		}
		if q <= 9 {
			// The multiply-shift result is exact for q up to 9.
			if mv%5 == 0 {
				vrIsTrailingZeros = multipleOfPowerOf5U32(mv, q)
			} else if acceptBounds {
				vmIsTrailingZeros = multipleOfPowerOf5U32(mm, q)
			} else if multipleOfPowerOf5U32(mp, q) {
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5bits(i) - pow5Bitcount32
		j := int32(q) - k
		vr = mulPow5DivPow2(mv, uint32(i), j)
		vp = mulPow5DivPow2(mp, uint32(i), j)
		vm = mulPow5DivPow2(mm, uint32(i), j)
		if q != 0 && (vp-1)/10 <= vm/10 {
			j = int32(q) - 1 - (pow5bits(i+1) - pow5Bitcount32)
			lastRemovedDigit = uint8(mulPow5DivPow2(mv, uint32(i+1), j) % 10)
		}
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
		} else if q < 31 {
			vrIsTrailingZeros = mv&(uint32(1)<<(q-1)-1) == 0
		}
	}

	removed := int32(0)
	var out uint32
	if vmIsTrailingZeros || vrIsTrailingZeros {
		// Rare path: track zero-ness through every removal for correct
		// round-to-even behavior on exact bounds.
		for vp/10 > vm/10 {
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = uint8(vr % 10)
			vr /= 10
			vp /= 10
			vm /= 10
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
		for vp/10 > vm/10 {
			lastRemovedDigit = uint8(vr % 10)
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		out = vr
		if vr == vm || lastRemovedDigit >= 5 {
			out++
		}
	}

	return dec32{mantissa: out, exponent: e10 + removed}
}

// multipleOfPowerOf5U32 reports whether value is divisible by 5^p.
// value must be nonzero.
func multipleOfPowerOf5U32(value, p uint32) bool {
	count := uint32(0)
	for value%5 == 0 {
		value /= 5
		count++
	}
	return count >= p
}

// mulPow5DivPow2 returns m * 5^i / 2^j using the high half of the
// 128-bit power-of-five entry, for 32 < j < 64.
func mulPow5DivPow2(m, i uint32, j int32) uint32 {
	factor := pow5Split[i].hi
	bits0 := uint64(m) * uint64(uint32(factor))
	bits1 := uint64(m) * (factor >> 32)
	return uint32((bits0>>32 + bits1) >> (uint32(j) - 32))
}

// mulPow5InvDivPow2 returns m / 5^q / 2^(j-...) using the high half of
// the 128-bit inverse entry plus one, which restores the ceiling the
// truncation dropped.
func mulPow5InvDivPow2(m, q uint32, j int32) uint32 {
	factor := pow5InvSplit[q].hi + 1
	bits0 := uint64(m) * uint64(uint32(factor))
	bits1 := uint64(m) * (factor >> 32)
	return uint32((bits0>>32 + bits1) >> (uint32(j) - 32))
}
