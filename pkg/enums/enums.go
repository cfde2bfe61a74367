// Package enums holds the closed value catalogs shared across the market
// data model. Every enum round-trips through its canonical upper-case
// string form.
package enums

import "fmt"

func invert[E comparable](m map[E]string) map[string]E {
	out := make(map[string]E, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// OrderSide is the side of an order or book entry.
type OrderSide uint8

const (
	NoOrderSide OrderSide = 0
	Buy         OrderSide = 1
	Sell        OrderSide = 2
)

var orderSideNames = map[OrderSide]string{
	NoOrderSide: "NO_ORDER_SIDE",
	Buy:         "BUY",
	Sell:        "SELL",
}

var orderSideValues = invert(orderSideNames)

func (s OrderSide) String() string { return orderSideNames[s] }

// Opposite returns the other book side. NoOrderSide maps to itself.
func (s OrderSide) Opposite() OrderSide {
	switch s {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return NoOrderSide
	}
}

func OrderSideFromString(s string) (OrderSide, error) {
	v, ok := orderSideValues[s]
	if !ok {
		return NoOrderSide, fmt.Errorf("unknown OrderSide %q", s)
	}
	return v, nil
}

// BookAction describes a single order book mutation.
type BookAction uint8

const (
	Add    BookAction = 1
	Update BookAction = 2
	Delete BookAction = 3
	Clear  BookAction = 4
)

var bookActionNames = map[BookAction]string{
	Add:    "ADD",
	Update: "UPDATE",
	Delete: "DELETE",
	Clear:  "CLEAR",
}

var bookActionValues = invert(bookActionNames)

func (a BookAction) String() string { return bookActionNames[a] }

func BookActionFromString(s string) (BookAction, error) {
	v, ok := bookActionValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown BookAction %q", s)
	}
	return v, nil
}

// BookType is the granularity at which a book tracks liquidity.
type BookType uint8

const (
	// L1TBBO tracks top-of-book best bid/offer only.
	L1TBBO BookType = 1
	// L2MBP tracks aggregated size per price level (market by price).
	L2MBP BookType = 2
	// L3MBO tracks every individual order (market by order).
	L3MBO BookType = 3
)

var bookTypeNames = map[BookType]string{
	L1TBBO: "L1_TBBO",
	L2MBP:  "L2_MBP",
	L3MBO:  "L3_MBO",
}

var bookTypeValues = invert(bookTypeNames)

func (t BookType) String() string { return bookTypeNames[t] }

func BookTypeFromString(s string) (BookType, error) {
	v, ok := bookTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown BookType %q", s)
	}
	return v, nil
}

// AggressorSide identifies which side initiated a trade.
type AggressorSide uint8

const (
	NoAggressor AggressorSide = 0
	Buyer       AggressorSide = 1
	Seller      AggressorSide = 2
)

var aggressorSideNames = map[AggressorSide]string{
	NoAggressor: "NO_AGGRESSOR",
	Buyer:       "BUYER",
	Seller:      "SELLER",
}

var aggressorSideValues = invert(aggressorSideNames)

func (s AggressorSide) String() string { return aggressorSideNames[s] }

func AggressorSideFromString(s string) (AggressorSide, error) {
	v, ok := aggressorSideValues[s]
	if !ok {
		return NoAggressor, fmt.Errorf("unknown AggressorSide %q", s)
	}
	return v, nil
}

// CurrencyType classifies a currency as crypto or fiat.
type CurrencyType uint8

const (
	Crypto CurrencyType = 1
	Fiat   CurrencyType = 2
)

var currencyTypeNames = map[CurrencyType]string{
	Crypto: "CRYPTO",
	Fiat:   "FIAT",
}

var currencyTypeValues = invert(currencyTypeNames)

func (t CurrencyType) String() string { return currencyTypeNames[t] }

func CurrencyTypeFromString(s string) (CurrencyType, error) {
	v, ok := currencyTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown CurrencyType %q", s)
	}
	return v, nil
}

// PriceType selects which derived price of a market to reference.
type PriceType uint8

const (
	Bid  PriceType = 1
	Ask  PriceType = 2
	Mid  PriceType = 3
	Last PriceType = 4
)

var priceTypeNames = map[PriceType]string{
	Bid:  "BID",
	Ask:  "ASK",
	Mid:  "MID",
	Last: "LAST",
}

var priceTypeValues = invert(priceTypeNames)

func (t PriceType) String() string { return priceTypeNames[t] }

func PriceTypeFromString(s string) (PriceType, error) {
	v, ok := priceTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown PriceType %q", s)
	}
	return v, nil
}

// AggregationSource records whether a bar was aggregated by the venue or
// locally.
type AggregationSource uint8

const (
	External AggregationSource = 1
	Internal AggregationSource = 2
)

var aggregationSourceNames = map[AggregationSource]string{
	External: "EXTERNAL",
	Internal: "INTERNAL",
}

var aggregationSourceValues = invert(aggregationSourceNames)

func (s AggregationSource) String() string { return aggregationSourceNames[s] }

func AggregationSourceFromString(s string) (AggregationSource, error) {
	v, ok := aggregationSourceValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown AggregationSource %q", s)
	}
	return v, nil
}

// BarAggregation is the unit a bar aggregates over.
type BarAggregation uint8

const (
	Tick          BarAggregation = 1
	TickImbalance BarAggregation = 2
	Volume        BarAggregation = 3
	Value         BarAggregation = 4
	Millisecond   BarAggregation = 5
	Second        BarAggregation = 6
	Minute        BarAggregation = 7
	Hour          BarAggregation = 8
	Day           BarAggregation = 9
	Week          BarAggregation = 10
	Month         BarAggregation = 11
)

var barAggregationNames = map[BarAggregation]string{
	Tick:          "TICK",
	TickImbalance: "TICK_IMBALANCE",
	Volume:        "VOLUME",
	Value:         "VALUE",
	Millisecond:   "MILLISECOND",
	Second:        "SECOND",
	Minute:        "MINUTE",
	Hour:          "HOUR",
	Day:           "DAY",
	Week:          "WEEK",
	Month:         "MONTH",
}

var barAggregationValues = invert(barAggregationNames)

func (a BarAggregation) String() string { return barAggregationNames[a] }

func BarAggregationFromString(s string) (BarAggregation, error) {
	v, ok := barAggregationValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown BarAggregation %q", s)
	}
	return v, nil
}

// DepthType selects how ladder depth is measured.
type DepthType uint8

const (
	VolumeDepth   DepthType = 1
	ExposureDepth DepthType = 2
)

var depthTypeNames = map[DepthType]string{
	VolumeDepth:   "VOLUME",
	ExposureDepth: "EXPOSURE",
}

var depthTypeValues = invert(depthTypeNames)

func (t DepthType) String() string { return depthTypeNames[t] }

func DepthTypeFromString(s string) (DepthType, error) {
	v, ok := depthTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown DepthType %q", s)
	}
	return v, nil
}

// MarketStatus is the venue-reported session phase for an instrument.
type MarketStatus uint8

const (
	Closed   MarketStatus = 1
	PreOpen  MarketStatus = 2
	Open     MarketStatus = 3
	Pause    MarketStatus = 4
	PreClose MarketStatus = 5
)

var marketStatusNames = map[MarketStatus]string{
	Closed:   "CLOSED",
	PreOpen:  "PRE_OPEN",
	Open:     "OPEN",
	Pause:    "PAUSE",
	PreClose: "PRE_CLOSE",
}

var marketStatusValues = invert(marketStatusNames)

func (s MarketStatus) String() string { return marketStatusNames[s] }

func MarketStatusFromString(s string) (MarketStatus, error) {
	v, ok := marketStatusValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown MarketStatus %q", s)
	}
	return v, nil
}
