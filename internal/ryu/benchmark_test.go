package ryu

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkFormat64(b *testing.B) {
	cases := []struct {
		name string
		val  float64
	}{
		{"small", 1.0},
		{"fixed", 12345.6789},
		{"pi", math.Pi},
		{"exp", 1.23456e-28},
		{"max", math.MaxFloat64},
		{"subnormal", 5e-324},
	}
	var buf [24]byte
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Format64(buf[:], c.val)
			}
		})
	}
}

func BenchmarkFormat32(b *testing.B) {
	cases := []struct {
		name string
		val  float32
	}{
		{"small", 1.0},
		{"fixed", 3.14},
		{"third", 1.0 / 3.0},
		{"max", math.MaxFloat32},
	}
	var buf [24]byte
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Format32(buf[:], c.val)
			}
		})
	}
}

func BenchmarkFormat64Random(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	vals := make([]float64, 1024)
	for i := range vals {
		for {
			bits := rng.Uint64()
			if bits&0x7ff0000000000000 != 0x7ff0000000000000 {
				vals[i] = math.Float64frombits(bits)
				break
			}
		}
	}
	var buf [24]byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Format64(buf[:], vals[i&1023])
	}
}
