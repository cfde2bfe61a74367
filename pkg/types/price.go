package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price bounds, in quote units.
const (
	PriceMax float64 = 9_223_372_036.0
	PriceMin float64 = -9_223_372_036.0
)

// Price is a venue-quoted price. Raw carries the canonical 1e9 scale and
// sign is permitted (spreads, derivative pricing). Equality and ordering
// are defined on Raw only.
type Price struct {
	Raw       int64
	Precision uint8
}

// NewPrice rounds value to precision fractional digits and validates it
// against the price bounds.
func NewPrice(value float64, precision uint8) (Price, error) {
	if err := checkPrecision(precision); err != nil {
		return Price{}, err
	}
	if value < PriceMin || value > PriceMax {
		return Price{}, fmt.Errorf("%w: price %v outside [%v, %v]", ErrOutOfRange, value, PriceMin, PriceMax)
	}
	return Price{Raw: f64ToRaw(value, precision), Precision: precision}, nil
}

// PriceFromRaw reinterprets an already-scaled raw value. The caller
// guarantees raw reflects the canonical 1e9 scale and precision is at most
// FixedPrecision.
func PriceFromRaw(raw int64, precision uint8) Price {
	return Price{Raw: raw, Precision: precision}
}

// PriceFromString parses decimal text exactly, inferring precision from
// the fractional digits. The text form is the lossless interchange format
// for venues that quote decimal strings.
func PriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	precision := precisionFromString(s)
	f, _ := d.Float64()
	if f < PriceMin || f > PriceMax {
		return Price{}, fmt.Errorf("%w: price %s outside [%v, %v]", ErrOutOfRange, s, PriceMin, PriceMax)
	}
	// Shift to the canonical scale while still exact, then truncate any
	// digits beyond FixedPrecision.
	raw := d.Shift(int32(FixedPrecision)).IntPart()
	return Price{Raw: raw, Precision: precision}, nil
}

// AsFloat is a lossy presentation-boundary conversion. Never use it for
// comparison or equality.
func (p Price) AsFloat() float64 { return rawToF64(p.Raw) }

func (p Price) IsZero() bool { return p.Raw == 0 }

// Add returns p + other on the raw scale, keeping p's precision.
// Panics on int64 overflow.
func (p Price) Add(other Price) Price {
	return Price{Raw: addInt64(p.Raw, other.Raw), Precision: p.Precision}
}

// Sub returns p - other on the raw scale, keeping p's precision.
// Panics on int64 overflow.
func (p Price) Sub(other Price) Price {
	return Price{Raw: subInt64(p.Raw, other.Raw), Precision: p.Precision}
}

// Cmp returns -1, 0 or 1 comparing raw values.
func (p Price) Cmp(other Price) int {
	switch {
	case p.Raw < other.Raw:
		return -1
	case p.Raw > other.Raw:
		return 1
	default:
		return 0
	}
}

func (p Price) Eq(other Price) bool { return p.Raw == other.Raw }
func (p Price) Lt(other Price) bool { return p.Raw < other.Raw }
func (p Price) Gt(other Price) bool { return p.Raw > other.Raw }

func (p Price) String() string { return formatRaw(p.Raw, p.Precision) }
