package types

import (
	"fmt"
	"sync"

	"github.com/meridian-hft/marketcore/pkg/enums"
)

// Currency describes a fiat or crypto currency. Equality for monetary
// purposes is by Code.
type Currency struct {
	Code      string
	Precision uint8
	ISO4217   uint16
	Name      string
	Type      enums.CurrencyType
}

// Common currencies. Venue adapters may register more via RegisterCurrency.
var (
	USD  = Currency{Code: "USD", Precision: 2, ISO4217: 840, Name: "United States dollar", Type: enums.Fiat}
	EUR  = Currency{Code: "EUR", Precision: 2, ISO4217: 978, Name: "Euro", Type: enums.Fiat}
	GBP  = Currency{Code: "GBP", Precision: 2, ISO4217: 826, Name: "British pound", Type: enums.Fiat}
	JPY  = Currency{Code: "JPY", Precision: 0, ISO4217: 392, Name: "Japanese yen", Type: enums.Fiat}
	AUD  = Currency{Code: "AUD", Precision: 2, ISO4217: 36, Name: "Australian dollar", Type: enums.Fiat}
	CHF  = Currency{Code: "CHF", Precision: 2, ISO4217: 756, Name: "Swiss franc", Type: enums.Fiat}
	BTC  = Currency{Code: "BTC", Precision: 8, ISO4217: 0, Name: "Bitcoin", Type: enums.Crypto}
	ETH  = Currency{Code: "ETH", Precision: 8, ISO4217: 0, Name: "Ether", Type: enums.Crypto}
	USDT = Currency{Code: "USDT", Precision: 8, ISO4217: 0, Name: "Tether", Type: enums.Crypto}
	USDC = Currency{Code: "USDC", Precision: 8, ISO4217: 0, Name: "USD Coin", Type: enums.Crypto}
)

var (
	currencyMu       sync.RWMutex
	currencyRegistry = map[string]Currency{
		"USD": USD, "EUR": EUR, "GBP": GBP, "JPY": JPY, "AUD": AUD, "CHF": CHF,
		"BTC": BTC, "ETH": ETH, "USDT": USDT, "USDC": USDC,
	}
)

// CurrencyFromCode looks up a registered currency by code.
func CurrencyFromCode(code string) (Currency, error) {
	currencyMu.RLock()
	c, ok := currencyRegistry[code]
	currencyMu.RUnlock()
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// RegisterCurrency adds or replaces a currency in the registry.
func RegisterCurrency(c Currency) {
	currencyMu.Lock()
	currencyRegistry[c.Code] = c
	currencyMu.Unlock()
}

func (c Currency) String() string { return c.Code }
