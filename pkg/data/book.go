// Package data defines the immutable market event types (book deltas and
// snapshots, quote and trade ticks, bars) and the closed Data union that
// multiplexes them onto one stream. Timestamps are UnixNano: TsEvent is
// the venue-reported event time, TsInit the local receipt time.
package data

import (
	"fmt"

	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// FlagLast marks the final delta of a batch; the book is externally
// consistent only once it has been applied.
const FlagLast uint8 = 1 << 7

// BookOrder is the atomic unit of book state: one resting order at one
// price level, or the aggregate of a level for L1/L2 feeds.
type BookOrder struct {
	Side    enums.OrderSide
	Price   types.Price
	Size    types.Quantity
	OrderID uint64
}

func NewBookOrder(side enums.OrderSide, price types.Price, size types.Quantity, orderID uint64) BookOrder {
	return BookOrder{Side: side, Price: price, Size: size, OrderID: orderID}
}

// Exposure returns price * size as a float, for display and depth-by-value
// summaries only.
func (o BookOrder) Exposure() float64 {
	return o.Price.AsFloat() * o.Size.AsFloat()
}

func (o BookOrder) String() string {
	return fmt.Sprintf("%s %s @ %s (id=%d)", o.Side, o.Size, o.Price, o.OrderID)
}

// OrderBookDelta describes a single change to an instrument's book.
// Deltas for one instrument must be applied in non-decreasing Sequence
// order; a gap means updates were lost and the book needs a snapshot.
type OrderBookDelta struct {
	InstrumentID identifiers.InstrumentId
	Action       enums.BookAction
	Order        BookOrder
	Flags        uint8
	Sequence     uint64
	TsEvent      uint64
	TsInit       uint64
}

func NewOrderBookDelta(
	instrumentID identifiers.InstrumentId,
	action enums.BookAction,
	order BookOrder,
	flags uint8,
	sequence, tsEvent, tsInit uint64,
) OrderBookDelta {
	return OrderBookDelta{
		InstrumentID: instrumentID,
		Action:       action,
		Order:        order,
		Flags:        flags,
		Sequence:     sequence,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}
}

// IsLast reports whether this delta completes its batch.
func (d OrderBookDelta) IsLast() bool { return d.Flags&FlagLast != 0 }

func (d OrderBookDelta) String() string {
	return fmt.Sprintf("%s %s %s seq=%d", d.InstrumentID, d.Action, d.Order, d.Sequence)
}

// OrderBookSnapshot is the full book state at one instant. Applying it
// always replaces prior state wholesale.
type OrderBookSnapshot struct {
	InstrumentID identifiers.InstrumentId
	Bids         []BookOrder
	Asks         []BookOrder
	Sequence     uint64
	TsEvent      uint64
	TsInit       uint64
}

func NewOrderBookSnapshot(
	instrumentID identifiers.InstrumentId,
	bids, asks []BookOrder,
	sequence, tsEvent, tsInit uint64,
) OrderBookSnapshot {
	return OrderBookSnapshot{
		InstrumentID: instrumentID,
		Bids:         bids,
		Asks:         asks,
		Sequence:     sequence,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}
}

func (s OrderBookSnapshot) String() string {
	return fmt.Sprintf("%s snapshot %d bids / %d asks seq=%d", s.InstrumentID, len(s.Bids), len(s.Asks), s.Sequence)
}
