// Command inspect decomposes IEEE-754 values and prints their shortest
// round-tripping decimal form.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/wippyai/floatfmt"
)

func main() {
	var (
		value       = flag.String("f", "", "Decimal value to inspect")
		bitsArg     = flag.String("bits", "", "Raw bit pattern to inspect (hex)")
		use32       = flag.Bool("32", false, "Treat input as float32")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*use32); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *value == "" && *bitsArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -f <value> [-32]")
		fmt.Fprintln(os.Stderr, "       inspect -bits <hex> [-32]")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*value, *bitsArg, *use32); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(value, bitsArg string, use32 bool) error {
	if use32 {
		var bits uint32
		if bitsArg != "" {
			v, err := strconv.ParseUint(bitsArg, 16, 32)
			if err != nil {
				return fmt.Errorf("parse bits: %w", err)
			}
			bits = uint32(v)
		} else {
			f, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return fmt.Errorf("parse value: %w", err)
			}
			bits = math.Float32bits(float32(f))
		}
		fmt.Print(describe32(bits))
		return nil
	}

	var bits uint64
	if bitsArg != "" {
		v, err := strconv.ParseUint(bitsArg, 16, 64)
		if err != nil {
			return fmt.Errorf("parse bits: %w", err)
		}
		bits = v
	} else {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parse value: %w", err)
		}
		bits = math.Float64bits(f)
	}
	fmt.Print(describe64(bits))
	return nil
}

func classify(exponent, maxExponent, mantissa uint64) string {
	switch {
	case exponent == maxExponent && mantissa != 0:
		return "nan"
	case exponent == maxExponent:
		return "infinity"
	case exponent == 0 && mantissa == 0:
		return "zero"
	case exponent == 0:
		return "subnormal"
	default:
		return "normal"
	}
}

func describe64(bits uint64) string {
	sign := bits >> 63
	exponent := bits >> 52 & 0x7ff
	mantissa := bits & 0x000fffffffffffff

	out := fmt.Sprintf("bits:      0x%016x\n", bits)
	out += fmt.Sprintf("sign:      %d\n", sign)
	out += fmt.Sprintf("exponent:  0x%03x (%d, unbiased %d)\n", exponent, exponent, int(exponent)-1023)
	out += fmt.Sprintf("mantissa:  0x%013x\n", mantissa)
	out += fmt.Sprintf("class:     %s\n", classify(exponent, 0x7ff, mantissa))
	out += fmt.Sprintf("shortest:  %s\n", floatfmt.String64(math.Float64frombits(bits)))
	return out
}

func describe32(bits uint32) string {
	sign := bits >> 31
	exponent := bits >> 23 & 0xff
	mantissa := bits & 0x007fffff

	out := fmt.Sprintf("bits:      0x%08x\n", bits)
	out += fmt.Sprintf("sign:      %d\n", sign)
	out += fmt.Sprintf("exponent:  0x%02x (%d, unbiased %d)\n", exponent, exponent, int(exponent)-127)
	out += fmt.Sprintf("mantissa:  0x%06x\n", mantissa)
	out += fmt.Sprintf("class:     %s\n", classify(uint64(exponent), 0xff, uint64(mantissa)))
	out += fmt.Sprintf("shortest:  %s\n", floatfmt.String32(math.Float32frombits(bits)))
	return out
}
