package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity bounds, in base units.
const (
	QuantityMax float64 = 18_446_744_073.0
	QuantityMin float64 = 0.0
)

// Quantity is a non-negative order or position size. Raw carries the
// canonical 1e9 scale.
type Quantity struct {
	Raw       uint64
	Precision uint8
}

// NewQuantity rounds value to precision fractional digits and validates it
// against the quantity bounds. Negative values are rejected.
func NewQuantity(value float64, precision uint8) (Quantity, error) {
	if err := checkPrecision(precision); err != nil {
		return Quantity{}, err
	}
	if value < 0 {
		return Quantity{}, fmt.Errorf("%w: %v", ErrNegativeQuantity, value)
	}
	if value > QuantityMax {
		return Quantity{}, fmt.Errorf("%w: quantity %v exceeds %v", ErrOutOfRange, value, QuantityMax)
	}
	return Quantity{Raw: f64ToRawUnsigned(value, precision), Precision: precision}, nil
}

// QuantityFromRaw reinterprets an already-scaled raw value. The caller
// guarantees raw reflects the canonical 1e9 scale.
func QuantityFromRaw(raw uint64, precision uint8) Quantity {
	return Quantity{Raw: raw, Precision: precision}
}

// QuantityFromString parses decimal text exactly, inferring precision from
// the fractional digits.
func QuantityFromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if d.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %s", ErrNegativeQuantity, s)
	}
	f, _ := d.Float64()
	if f > QuantityMax {
		return Quantity{}, fmt.Errorf("%w: quantity %s exceeds %v", ErrOutOfRange, s, QuantityMax)
	}
	// IntPart is int64 and the shifted value can exceed MaxInt64 while
	// still within QuantityMax, so extract through big.Int.
	raw := d.Shift(int32(FixedPrecision)).BigInt().Uint64()
	return Quantity{Raw: raw, Precision: precisionFromString(s)}, nil
}

// AsFloat is a lossy presentation-boundary conversion.
func (q Quantity) AsFloat() float64 { return float64(q.Raw) / FixedScalar }

func (q Quantity) IsZero() bool { return q.Raw == 0 }

// Add returns q + other on the raw scale, keeping q's precision.
// Panics on uint64 overflow.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{Raw: addUint64(q.Raw, other.Raw), Precision: q.Precision}
}

// Sub returns q - other on the raw scale, keeping q's precision.
// Panics if the result would be negative.
func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity{Raw: subUint64(q.Raw, other.Raw), Precision: q.Precision}
}

func (q Quantity) Eq(other Quantity) bool { return q.Raw == other.Raw }
func (q Quantity) Lt(other Quantity) bool { return q.Raw < other.Raw }
func (q Quantity) Gt(other Quantity) bool { return q.Raw > other.Raw }

func (q Quantity) String() string { return formatRawUnsigned(q.Raw, q.Precision) }
