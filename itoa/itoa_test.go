package itoa

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestAppendUint(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{42, "42"},
		{99, "99"},
		{100, "100"},
		{255, "255"},
		{65535, "65535"},
		{1000000, "1000000"},
		{4294967295, "4294967295"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		if got := string(AppendUint(nil, tt.in)); got != tt.want {
			t.Errorf("AppendUint(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{-10, "-10"},
		{12345, "12345"},
		{-12345, "-12345"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		if got := string(AppendInt(nil, tt.in)); got != tt.want {
			t.Errorf("AppendInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendPreservesPrefix(t *testing.T) {
	out := AppendInt([]byte("n="), -42)
	if string(out) != "n=-42" {
		t.Errorf("AppendInt with prefix = %q", out)
	}
	out = AppendUint(out, 7)
	if string(out) != "n=-427" {
		t.Errorf("chained append = %q", out)
	}
}

func TestWidthWrappers(t *testing.T) {
	if got := string(AppendInt8(nil, math.MinInt8)); got != "-128" {
		t.Errorf("AppendInt8(min) = %q", got)
	}
	if got := string(AppendInt16(nil, math.MinInt16)); got != "-32768" {
		t.Errorf("AppendInt16(min) = %q", got)
	}
	if got := string(AppendInt32(nil, math.MinInt32)); got != "-2147483648" {
		t.Errorf("AppendInt32(min) = %q", got)
	}
	if got := string(AppendUint8(nil, math.MaxUint8)); got != "255" {
		t.Errorf("AppendUint8(max) = %q", got)
	}
	if got := string(AppendUint16(nil, math.MaxUint16)); got != "65535" {
		t.Errorf("AppendUint16(max) = %q", got)
	}
	if got := string(AppendUint32(nil, math.MaxUint32)); got != "4294967295" {
		t.Errorf("AppendUint32(max) = %q", got)
	}
}

func TestMaxLenBounds(t *testing.T) {
	checks := []struct {
		name string
		got  int
		max  int
	}{
		{"int8", len(AppendInt8(nil, math.MinInt8)), MaxLenInt8},
		{"int16", len(AppendInt16(nil, math.MinInt16)), MaxLenInt16},
		{"int32", len(AppendInt32(nil, math.MinInt32)), MaxLenInt32},
		{"int64", len(AppendInt64(nil, math.MinInt64)), MaxLenInt64},
		{"uint8", len(AppendUint8(nil, math.MaxUint8)), MaxLenUint8},
		{"uint16", len(AppendUint16(nil, math.MaxUint16)), MaxLenUint16},
		{"uint32", len(AppendUint32(nil, math.MaxUint32)), MaxLenUint32},
		{"uint64", len(AppendUint64(nil, math.MaxUint64)), MaxLenUint64},
	}
	for _, c := range checks {
		if c.got != c.max {
			t.Errorf("%s: worst case produced %d bytes, MaxLen is %d", c.name, c.got, c.max)
		}
	}
}

func TestAgainstStrconv(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		u := rng.Uint64()
		if got, want := string(AppendUint(nil, u)), strconv.FormatUint(u, 10); got != want {
			t.Fatalf("AppendUint(%d) = %q, want %q", u, got, want)
		}
		s := int64(rng.Uint64())
		if got, want := string(AppendInt(nil, s)), strconv.FormatInt(s, 10); got != want {
			t.Fatalf("AppendInt(%d) = %q, want %q", s, got, want)
		}
	}
}

func BenchmarkAppendUint(b *testing.B) {
	var buf []byte
	for i := 0; i < b.N; i++ {
		buf = AppendUint(buf[:0], 18446744073709551615)
	}
}

func BenchmarkAppendInt(b *testing.B) {
	var buf []byte
	for i := 0; i < b.N; i++ {
		buf = AppendInt(buf[:0], -9223372036854775808)
	}
}
