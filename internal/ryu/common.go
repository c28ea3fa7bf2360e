package ryu

//go:generate go run ../../cmd/gentables -out tables.go

// uint128 is a 128-bit value split into two 64-bit halves.
type uint128 struct {
	lo uint64
	hi uint64
}

// decimalLength9 returns the number of decimal digits in v, for
// v < 10^9. Branching over the power-of-ten boundaries is exact;
// a floating-point logarithm is not.
func decimalLength9(v uint32) int {
	switch {
	case v < 10:
		return 1
	case v < 100:
		return 2
	case v < 1000:
		return 3
	case v < 10000:
		return 4
	case v < 100000:
		return 5
	case v < 1000000:
		return 6
	case v < 10000000:
		return 7
	case v < 100000000:
		return 8
	default:
		return 9
	}
}

// decimalLength17 returns the number of decimal digits in v, for
// v < 10^17.
func decimalLength17(v uint64) int {
	switch {
	case v < 10:
		return 1
	case v < 100:
		return 2
	case v < 1000:
		return 3
	case v < 10000:
		return 4
	case v < 100000:
		return 5
	case v < 1000000:
		return 6
	case v < 10000000:
		return 7
	case v < 100000000:
		return 8
	case v < 1000000000:
		return 9
	case v < 10000000000:
		return 10
	case v < 100000000000:
		return 11
	case v < 1000000000000:
		return 12
	case v < 10000000000000:
		return 13
	case v < 100000000000000:
		return 14
	case v < 1000000000000000:
		return 15
	case v < 10000000000000000:
		return 16
	default:
		return 17
	}
}

// pow5bits returns floor(e*log2(5)) + 1, the bit length of 5^e, for
// 0 <= e <= 3528. The fixed-point constant 1217359/2^19 is exact over
// that range; common_test.go verifies it against exact arithmetic.
func pow5bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

// log10Pow2 returns floor(e*log10(2)) for 0 <= e <= 1650.
func log10Pow2(e int32) uint32 {
	return (uint32(e) * 78913) >> 18
}

// log10Pow5 returns floor(e*log10(5)) for 0 <= e <= 2620.
func log10Pow5(e int32) uint32 {
	return (uint32(e) * 732923) >> 20
}
