package data

import (
	"fmt"

	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// QuoteTick is a top-of-book observation: best bid/ask with sizes.
type QuoteTick struct {
	InstrumentID identifiers.InstrumentId
	Bid          types.Price
	Ask          types.Price
	BidSize      types.Quantity
	AskSize      types.Quantity
	TsEvent      uint64
	TsInit       uint64
}

func NewQuoteTick(
	instrumentID identifiers.InstrumentId,
	bid, ask types.Price,
	bidSize, askSize types.Quantity,
	tsEvent, tsInit uint64,
) QuoteTick {
	return QuoteTick{
		InstrumentID: instrumentID,
		Bid:          bid,
		Ask:          ask,
		BidSize:      bidSize,
		AskSize:      askSize,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}
}

// ExtractPrice returns the requested derived price of the quote.
func (q QuoteTick) ExtractPrice(priceType enums.PriceType) types.Price {
	switch priceType {
	case enums.Bid:
		return q.Bid
	case enums.Ask:
		return q.Ask
	case enums.Mid:
		mid := (q.Bid.Raw + q.Ask.Raw) / 2
		return types.PriceFromRaw(mid, q.Bid.Precision)
	default:
		panic(fmt.Sprintf("no price of type %s on a quote tick", priceType))
	}
}

func (q QuoteTick) String() string {
	return fmt.Sprintf("%s %s/%s %sx%s", q.InstrumentID, q.Bid, q.Ask, q.BidSize, q.AskSize)
}

// TradeTick is a single trade observation.
type TradeTick struct {
	InstrumentID  identifiers.InstrumentId
	Price         types.Price
	Size          types.Quantity
	AggressorSide enums.AggressorSide
	TradeID       identifiers.TradeId
	TsEvent       uint64
	TsInit        uint64
}

func NewTradeTick(
	instrumentID identifiers.InstrumentId,
	price types.Price,
	size types.Quantity,
	aggressorSide enums.AggressorSide,
	tradeID identifiers.TradeId,
	tsEvent, tsInit uint64,
) TradeTick {
	return TradeTick{
		InstrumentID:  instrumentID,
		Price:         price,
		Size:          size,
		AggressorSide: aggressorSide,
		TradeID:       tradeID,
		TsEvent:       tsEvent,
		TsInit:        tsInit,
	}
}

func (t TradeTick) String() string {
	return fmt.Sprintf("%s %s @ %s %s %s", t.InstrumentID, t.Size, t.Price, t.AggressorSide, t.TradeID)
}
