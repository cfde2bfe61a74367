package data

import (
	"fmt"

	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// BarSpecification describes how a bar aggregates, e.g. 1-MINUTE-LAST.
type BarSpecification struct {
	Step        uint64
	Aggregation enums.BarAggregation
	PriceType   enums.PriceType
}

func (s BarSpecification) String() string {
	return fmt.Sprintf("%d-%s-%s", s.Step, s.Aggregation, s.PriceType)
}

// BarType pairs an instrument with a bar specification and where the
// aggregation happened.
type BarType struct {
	InstrumentID      identifiers.InstrumentId
	Spec              BarSpecification
	AggregationSource enums.AggregationSource
}

func (t BarType) String() string {
	return fmt.Sprintf("%s-%s-%s", t.InstrumentID, t.Spec, t.AggregationSource)
}

// Bar is an OHLCV aggregate over one bar interval.
type Bar struct {
	Type    BarType
	Open    types.Price
	High    types.Price
	Low     types.Price
	Close   types.Price
	Volume  types.Quantity
	TsEvent uint64
	TsInit  uint64
}

func NewBar(
	barType BarType,
	open, high, low, closePrice types.Price,
	volume types.Quantity,
	tsEvent, tsInit uint64,
) Bar {
	return Bar{
		Type:    barType,
		Open:    open,
		High:    high,
		Low:     low,
		Close:   closePrice,
		Volume:  volume,
		TsEvent: tsEvent,
		TsInit:  tsInit,
	}
}

func (b Bar) String() string {
	return fmt.Sprintf("%s O:%s H:%s L:%s C:%s V:%s", b.Type, b.Open, b.High, b.Low, b.Close, b.Volume)
}
