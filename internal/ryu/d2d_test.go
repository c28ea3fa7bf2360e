package ryu

import (
	"math"
	"math/big"
	"testing"
)

func TestMultipleOfPowerOf5(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		p     uint32
		want  bool
	}{
		{"one, p=0", 1, 0, true},
		{"one, p=1", 1, 1, false},
		{"five", 5, 1, true},
		{"five, p=2", 5, 2, false},
		{"twenty-five", 25, 2, true},
		{"125 cubed check", 125, 3, true},
		{"not multiple", 7, 1, false},
		{"large multiple", 5 * 5 * 5 * 5 * 5 * 5 * 5 * 5 * 5 * 5, 10, true},
		{"even multiple", 50, 3, false},
		{"even multiple ok", 50, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := multipleOfPowerOf5(tt.value, tt.p); got != tt.want {
				t.Errorf("multipleOfPowerOf5(%d, %d) = %v, want %v", tt.value, tt.p, got, tt.want)
			}
		})
	}
}

func TestMultipleOfPowerOf5U32(t *testing.T) {
	for _, v := range []uint32{1, 2, 5, 10, 25, 40, 625, 3125, 4000000000} {
		exact := uint32(0)
		x := v
		for x%5 == 0 {
			x /= 5
			exact++
		}
		for p := uint32(0); p <= exact+1; p++ {
			if got := multipleOfPowerOf5U32(v, p); got != (p <= exact) {
				t.Errorf("multipleOfPowerOf5U32(%d, %d) = %v, want %v", v, p, got, p <= exact)
			}
		}
	}
}

// TestMulShift64 cross-checks the two-word multiply against exact
// big.Int arithmetic for a spread of operands and shifts.
func TestMulShift64(t *testing.T) {
	muls := []uint128{
		{lo: 1, hi: 0x2000000000000000},
		{lo: 0xcbaf379e01a5beca, hi: 0x1755dc2ff447d7ee},
		{lo: 0xffffffffffffffff, hi: 0x1fffffffffffffff},
	}
	ms := []uint64{1, 3, 4<<52 + 2, 4 * ((1 << 53) - 1), math.MaxUint64 / 4}
	for _, mul := range muls {
		entry := new(big.Int).SetUint64(mul.hi)
		entry.Lsh(entry, 64)
		entry.Add(entry, new(big.Int).SetUint64(mul.lo))
		for _, m := range ms {
			for _, j := range []uint32{118, 125, 127} {
				exact := new(big.Int).Mul(entry, new(big.Int).SetUint64(m))
				exact.Rsh(exact, uint(j))
				want := new(big.Int).And(exact, new(big.Int).SetUint64(^uint64(0))).Uint64()
				if got := mulShift64(m, mul, j); got != want {
					t.Errorf("mulShift64(%d, {%#x,%#x}, %d) = %d, want %d",
						m, mul.lo, mul.hi, j, got, want)
				}
			}
		}
	}
}

func TestD2DKnownValues(t *testing.T) {
	tests := []struct {
		name         string
		in           float64
		wantMantissa uint64
		wantExponent int32
	}{
		{"one", 1.0, 1, 0},
		{"point three", 0.3, 3, -1},
		{"pi", math.Pi, 3141592653589793, -15},
		{"large", 1e30, 1, 30},
		{"small", 1e-30, 1, -30},
		{"min subnormal", math.Float64frombits(1), 5, -324},
		{"max finite", math.MaxFloat64, 17976931348623157, 292},
		{"min normal", 2.2250738585072014e-308, 22250738585072014, -324},
		{"twelve thousandths", 0.012, 12, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := math.Float64bits(tt.in)
			mant := bits & (uint64(1)<<mantissaBits64 - 1)
			exp := uint32(bits>>mantissaBits64) & (uint32(1)<<exponentBits64 - 1)
			v := d2d(mant, exp)
			if v.mantissa != tt.wantMantissa || v.exponent != tt.wantExponent {
				t.Errorf("d2d(%g) = {%d, %d}, want {%d, %d}",
					tt.in, v.mantissa, v.exponent, tt.wantMantissa, tt.wantExponent)
			}
		})
	}
}

func TestF2DKnownValues(t *testing.T) {
	tests := []struct {
		name         string
		in           float32
		wantMantissa uint32
		wantExponent int32
	}{
		{"one", 1.0, 1, 0},
		{"pi approx", 3.14, 314, -2},
		{"third", 1.0 / 3.0, 33333334, -8},
		{"min subnormal", math.Float32frombits(1), 1, -45},
		{"max finite", math.MaxFloat32, 34028235, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := math.Float32bits(tt.in)
			mant := bits & (uint32(1)<<mantissaBits32 - 1)
			exp := bits >> mantissaBits32 & (uint32(1)<<exponentBits32 - 1)
			v := f2d(mant, exp)
			if v.mantissa != tt.wantMantissa || v.exponent != tt.wantExponent {
				t.Errorf("f2d(%g) = {%d, %d}, want {%d, %d}",
					tt.in, v.mantissa, v.exponent, tt.wantMantissa, tt.wantExponent)
			}
		})
	}
}
