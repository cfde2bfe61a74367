package types

import "errors"

var (
	// ErrOutOfRange reports a value outside the type's declared bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrPrecisionOverflow reports a precision above FixedPrecision.
	ErrPrecisionOverflow = errors.New("precision overflow")
	// ErrNegativeQuantity reports a negative quantity input.
	ErrNegativeQuantity = errors.New("negative quantity")
	// ErrUnknownCurrency reports a code missing from the currency registry.
	ErrUnknownCurrency = errors.New("unknown currency")
)
