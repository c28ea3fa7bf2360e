package floatfmt

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/wippyai/floatfmt/errors"
)

func TestFormat64Specials(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"nan", math.NaN(), NaN},
		{"inf", math.Inf(1), Infinity},
		{"neg_inf", math.Inf(-1), NegInfinity},
		{"zero", 0.0, "0.0"},
		{"neg_zero", math.Copysign(0, -1), "-0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [MinBufferSize]byte
			n, err := Format64(buf[:], tt.in)
			if err != nil {
				t.Fatalf("Format64 failed: %v", err)
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("Format64 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat32Specials(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want string
	}{
		{"nan", float32(math.NaN()), NaN},
		{"inf", float32(math.Inf(1)), Infinity},
		{"neg_inf", float32(math.Inf(-1)), NegInfinity},
		{"zero", 0.0, "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [MinBufferSize]byte
			n, err := Format32(buf[:], tt.in)
			if err != nil {
				t.Fatalf("Format32 failed: %v", err)
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("Format32 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatBufferTooSmall(t *testing.T) {
	short := make([]byte, MinBufferSize-1)

	if _, err := Format64(short, math.Pi); err == nil {
		t.Fatal("Format64 with short buffer: expected error")
	} else {
		var fe *errors.Error
		if !stderrors.As(err, &fe) {
			t.Fatalf("error type %T, want *errors.Error", err)
		}
		if fe.Kind != errors.KindBufferTooSmall {
			t.Errorf("error kind %q, want %q", fe.Kind, errors.KindBufferTooSmall)
		}
		if !strings.Contains(fe.Detail, "23") || !strings.Contains(fe.Detail, "24") {
			t.Errorf("error detail %q does not name the sizes", fe.Detail)
		}
	}

	if _, err := Format32(nil, 1.0); err == nil {
		t.Fatal("Format32 with nil buffer: expected error")
	}
}

func TestString64(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1.0"},
		{-0.25, "-0.25"},
		{math.Pi, "3.141592653589793"},
		{1e16, "1e16"},
		{5e-324, "5e-324"},
		{math.NaN(), NaN},
		{math.Inf(-1), NegInfinity},
	}
	for _, tt := range tests {
		if got := String64(tt.in); got != tt.want {
			t.Errorf("String64(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestString32(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{3.14, "3.14"},
		{1.0 / 3.0, "0.33333334"},
		{float32(math.Inf(1)), Infinity},
	}
	for _, tt := range tests {
		if got := String32(tt.in); got != tt.want {
			t.Errorf("String32(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppend64(t *testing.T) {
	t.Run("nil_dst", func(t *testing.T) {
		out := Append64(nil, 1.5)
		if string(out) != "1.5" {
			t.Errorf("Append64(nil, 1.5) = %q", out)
		}
	})

	t.Run("existing_prefix", func(t *testing.T) {
		out := Append64([]byte("x="), -2.5)
		if string(out) != "x=-2.5" {
			t.Errorf("Append64 = %q", out)
		}
	})

	t.Run("special", func(t *testing.T) {
		out := Append64([]byte("v:"), math.NaN())
		if string(out) != "v:"+NaN {
			t.Errorf("Append64 = %q", out)
		}
	})

	t.Run("reuses_capacity", func(t *testing.T) {
		dst := make([]byte, 0, 64)
		out := Append64(dst, math.Pi)
		if &out[:1][0] != &dst[:1][0] {
			t.Error("Append64 reallocated despite sufficient capacity")
		}
	})

	t.Run("many", func(t *testing.T) {
		var out []byte
		for i := 0; i < 100; i++ {
			out = Append64(out[:0], float64(i)/8.0)
			want := strconv.FormatFloat(float64(i)/8.0, 'f', -1, 64)
			parsed, err := strconv.ParseFloat(string(out), 64)
			if err != nil {
				t.Fatalf("ParseFloat(%q) failed: %v", out, err)
			}
			if parsed != float64(i)/8.0 {
				t.Errorf("Append64(%s) = %q does not round-trip", want, out)
			}
		}
	})
}

func TestAppend32(t *testing.T) {
	out := Append32([]byte("f="), 0.25)
	if string(out) != "f=0.25" {
		t.Errorf("Append32 = %q", out)
	}
	out = Append32(nil, float32(math.Inf(1)))
	if string(out) != Infinity {
		t.Errorf("Append32 = %q", out)
	}
}

func TestRoundTripAgainstStrconv(t *testing.T) {
	vals := []float64{
		0.1, 0.2, 0.3, 1.0 / 7.0, math.Sqrt2, math.Ln2,
		1e-10, 123456.789e40, math.SmallestNonzeroFloat64,
	}
	for _, v := range vals {
		s := String64(v)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) failed: %v", s, err)
		}
		if parsed != v {
			t.Errorf("String64(%v) = %q parses back to %v", v, s, parsed)
		}
	}
}
