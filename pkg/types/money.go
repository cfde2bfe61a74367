package types

import "fmt"

// Money bounds, in currency units.
const (
	MoneyMax float64 = 9_223_372_036.0
	MoneyMin float64 = -9_223_372_036.0
)

// Money is a signed amount in a specific currency. Raw carries the
// canonical 1e9 scale; display precision comes from the currency.
type Money struct {
	Raw      int64
	Currency Currency
}

// NewMoney rounds amount to the currency's precision and validates it
// against the money bounds.
func NewMoney(amount float64, currency Currency) (Money, error) {
	if err := checkPrecision(currency.Precision); err != nil {
		return Money{}, err
	}
	if amount < MoneyMin || amount > MoneyMax {
		return Money{}, fmt.Errorf("%w: amount %v outside [%v, %v]", ErrOutOfRange, amount, MoneyMin, MoneyMax)
	}
	return Money{Raw: f64ToRaw(amount, currency.Precision), Currency: currency}, nil
}

// MoneyFromRaw reinterprets an already-scaled raw value. The caller
// guarantees raw reflects the canonical 1e9 scale.
func MoneyFromRaw(raw int64, currency Currency) Money {
	return Money{Raw: raw, Currency: currency}
}

// AsFloat is a lossy presentation-boundary conversion.
func (m Money) AsFloat() float64 { return rawToF64(m.Raw) }

func (m Money) IsZero() bool { return m.Raw == 0 }

// Add returns m + other. Mixing currencies is a programming error and
// panics, as does int64 overflow.
func (m Money) Add(other Money) Money {
	m.assertSameCurrency(other)
	return Money{Raw: addInt64(m.Raw, other.Raw), Currency: m.Currency}
}

// Sub returns m - other. Mixing currencies is a programming error and
// panics, as does int64 overflow.
func (m Money) Sub(other Money) Money {
	m.assertSameCurrency(other)
	return Money{Raw: subInt64(m.Raw, other.Raw), Currency: m.Currency}
}

func (m Money) assertSameCurrency(other Money) {
	if m.Currency.Code != other.Currency.Code {
		panic(fmt.Sprintf("currency mismatch: %s vs %s", m.Currency.Code, other.Currency.Code))
	}
}

// Eq compares raw value and currency code.
func (m Money) Eq(other Money) bool {
	return m.Raw == other.Raw && m.Currency.Code == other.Currency.Code
}

func (m Money) String() string {
	return formatRaw(m.Raw, m.Currency.Precision) + " " + m.Currency.Code
}
