package ryu

import (
	"math/big"
	"testing"
)

// Recompute both tables with exact arithmetic and compare against the
// generated data, so a regeneration bug cannot slip in silently.

func TestPow5SplitEntries(t *testing.T) {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	pow := big.NewInt(1)
	five := big.NewInt(5)
	for i := range pow5Split {
		bl := pow.BitLen()
		v := new(big.Int)
		if bl <= pow5Bitcount64 {
			v.Lsh(pow, uint(pow5Bitcount64-bl))
		} else {
			v.Rsh(pow, uint(bl-pow5Bitcount64))
		}
		if v.BitLen() != pow5Bitcount64 {
			t.Fatalf("entry %d: normalized to %d bits, want %d", i, v.BitLen(), pow5Bitcount64)
		}
		lo := new(big.Int).And(v, mask64).Uint64()
		hi := new(big.Int).Rsh(v, 64).Uint64()
		if pow5Split[i].lo != lo || pow5Split[i].hi != hi {
			t.Errorf("pow5Split[%d] = {%#x, %#x}, want {%#x, %#x}",
				i, pow5Split[i].lo, pow5Split[i].hi, lo, hi)
		}
		pow.Mul(pow, five)
	}
}

func TestPow5InvSplitEntries(t *testing.T) {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	one := big.NewInt(1)
	pow := big.NewInt(1)
	five := big.NewInt(5)
	for q := range pow5InvSplit {
		v := new(big.Int).Lsh(one, uint(pow5bits(int32(q))-1+pow5InvBitcount64))
		v.Div(v, pow)
		v.Add(v, one)
		lo := new(big.Int).And(v, mask64).Uint64()
		hi := new(big.Int).Rsh(v, 64).Uint64()
		if pow5InvSplit[q].lo != lo || pow5InvSplit[q].hi != hi {
			t.Errorf("pow5InvSplit[%d] = {%#x, %#x}, want {%#x, %#x}",
				q, pow5InvSplit[q].lo, pow5InvSplit[q].hi, lo, hi)
		}
		pow.Mul(pow, five)
	}
}

// TestTableCoverage pins the index ranges the engines can reach to the
// table sizes, so shrinking a table cannot pass unnoticed.
func TestTableCoverage(t *testing.T) {
	// Largest inverse index: e2 max for float64 after the -2 reserve.
	maxE2 := int32(0x7fe - bias64 - mantissaBits64 - 2)
	maxQ := int(log10Pow2(maxE2)) // the engine subtracts 1 for e2 > 3
	if maxQ >= len(pow5InvSplit) {
		t.Errorf("inverse table too small: need index %d, have %d entries", maxQ, len(pow5InvSplit))
	}

	// Largest direct index: e2 min for float64.
	minE2 := int32(1 - bias64 - mantissaBits64 - 2)
	q := log10Pow5(-minE2) - 1
	maxI := int(-minE2 - int32(q))
	if maxI >= len(pow5Split) {
		t.Errorf("direct table too small: need index %d, have %d entries", maxI, len(pow5Split))
	}
}
