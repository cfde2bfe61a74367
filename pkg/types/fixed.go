// Package types implements the fixed-precision value system: scaled
// 64-bit integer decimals and the Price, Quantity and Money types built
// on top of them. Raw values always carry the canonical 1e9 scale; the
// precision field records how many fractional digits are significant.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// FixedPrecision is the maximum number of significant fractional digits.
	FixedPrecision uint8 = 9
	// FixedScalar is the canonical internal scale applied to every raw value.
	FixedScalar float64 = 1_000_000_000.0

	fixedScalarInt  int64  = 1_000_000_000
	fixedScalarUint uint64 = 1_000_000_000
)

var pow10 = [10]int64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

func checkPrecision(precision uint8) error {
	if precision > FixedPrecision {
		return fmt.Errorf("%w: precision %d exceeds maximum %d", ErrPrecisionOverflow, precision, FixedPrecision)
	}
	return nil
}

// f64ToRaw converts a float to the canonical raw scale after rounding to
// the requested number of fractional digits. Rounding happens in units of
// 10^-precision so the raw value is an exact multiple of the remaining
// scale, never a double-rounded float artifact.
func f64ToRaw(value float64, precision uint8) int64 {
	units := int64(math.Round(value * float64(pow10[precision])))
	return units * pow10[FixedPrecision-precision]
}

func f64ToRawUnsigned(value float64, precision uint8) uint64 {
	units := uint64(math.Round(value * float64(pow10[precision])))
	return units * uint64(pow10[FixedPrecision-precision])
}

func rawToF64(raw int64) float64 { return float64(raw) / FixedScalar }

// addInt64 panics on overflow. Arithmetic overflow of a monetary raw value
// is a contract violation, never silently wrapped.
func addInt64(a, b int64) int64 {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		panic(fmt.Sprintf("integer overflow: %d + %d", a, b))
	}
	return a + b
}

func subInt64(a, b int64) int64 {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		panic(fmt.Sprintf("integer overflow: %d - %d", a, b))
	}
	return a - b
}

func addUint64(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		panic(fmt.Sprintf("integer overflow: %d + %d", a, b))
	}
	return a + b
}

func subUint64(a, b uint64) uint64 {
	if b > a {
		panic(fmt.Sprintf("integer underflow: %d - %d", a, b))
	}
	return a - b
}

// formatRaw renders a raw scaled value with exactly precision fractional
// digits. Used by the String methods; never fed back into arithmetic.
func formatRaw(raw int64, precision uint8) string {
	neg := raw < 0
	var u uint64
	if neg {
		u = uint64(-raw)
	} else {
		u = uint64(raw)
	}
	s := formatRawUnsigned(u, precision)
	if neg {
		return "-" + s
	}
	return s
}

func formatRawUnsigned(raw uint64, precision uint8) string {
	whole := raw / fixedScalarUint
	frac := raw % fixedScalarUint
	if precision == 0 {
		return strconv.FormatUint(whole, 10)
	}
	digits := fmt.Sprintf("%09d", frac)
	return strconv.FormatUint(whole, 10) + "." + digits[:precision]
}

// precisionFromString infers significant fractional digits from decimal
// text, e.g. "1.2500" has precision 4.
func precisionFromString(s string) uint8 {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	n := len(s) - i - 1
	if n > int(FixedPrecision) {
		n = int(FixedPrecision)
	}
	return uint8(n)
}
