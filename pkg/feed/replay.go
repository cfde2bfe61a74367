package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// replayHeader is the expected capture column layout. A run of rows with
// is_snapshot=true sharing one sequence forms a snapshot; everything else
// is a delta.
var replayHeader = []string{
	"sequence", "ts_event", "is_snapshot", "action", "side", "price", "size", "order_id", "flags",
}

// ReplayLoader streams a CSV capture of one instrument's book events.
type ReplayLoader struct {
	instrumentID identifiers.InstrumentId
}

func NewReplayLoader(instrumentID identifiers.InstrumentId) *ReplayLoader {
	return &ReplayLoader{instrumentID: instrumentID}
}

// Stream parses the capture and invokes emit for each event in order,
// grouping snapshot rows into a single OrderBookSnapshot. Parsing stops at
// the first malformed row or the first emit error.
func (l *ReplayLoader) Stream(r io.Reader, emit func(data.Data) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(replayHeader)

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read capture header: %w", err)
	}
	for i, want := range replayHeader {
		if header[i] != want {
			return fmt.Errorf("capture header column %d is %q, want %q", i, header[i], want)
		}
	}

	var snap *data.OrderBookSnapshot
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read capture row: %w", err)
		}
		line++

		row, err := l.parseRow(rec)
		if err != nil {
			return fmt.Errorf("capture line %d: %w", line, err)
		}

		if row.isSnapshot {
			if snap == nil || snap.Sequence != row.sequence {
				if snap != nil {
					if err := emit(*snap); err != nil {
						return err
					}
				}
				snap = &data.OrderBookSnapshot{
					InstrumentID: l.instrumentID,
					Sequence:     row.sequence,
					TsEvent:      row.tsEvent,
					TsInit:       row.tsEvent,
				}
			}
			switch row.order.Side {
			case enums.Buy:
				snap.Bids = append(snap.Bids, row.order)
			case enums.Sell:
				snap.Asks = append(snap.Asks, row.order)
			}
			continue
		}

		if snap != nil {
			if err := emit(*snap); err != nil {
				return err
			}
			snap = nil
		}
		if err := emit(data.OrderBookDelta{
			InstrumentID: l.instrumentID,
			Action:       row.action,
			Order:        row.order,
			Flags:        row.flags,
			Sequence:     row.sequence,
			TsEvent:      row.tsEvent,
			TsInit:       row.tsEvent,
		}); err != nil {
			return err
		}
	}
	if snap != nil {
		return emit(*snap)
	}
	return nil
}

// Load reads the whole capture into memory. Convenience for tests and
// small files; prefer Stream for real captures.
func (l *ReplayLoader) Load(r io.Reader) ([]data.Data, error) {
	var out []data.Data
	err := l.Stream(r, func(d data.Data) error {
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type replayRow struct {
	sequence   uint64
	tsEvent    uint64
	isSnapshot bool
	action     enums.BookAction
	order      data.BookOrder
	flags      uint8
}

func (l *ReplayLoader) parseRow(rec []string) (replayRow, error) {
	var row replayRow
	var err error

	if row.sequence, err = strconv.ParseUint(rec[0], 10, 64); err != nil {
		return row, fmt.Errorf("sequence %q: %w", rec[0], err)
	}
	if row.tsEvent, err = strconv.ParseUint(rec[1], 10, 64); err != nil {
		return row, fmt.Errorf("ts_event %q: %w", rec[1], err)
	}
	if row.isSnapshot, err = strconv.ParseBool(rec[2]); err != nil {
		return row, fmt.Errorf("is_snapshot %q: %w", rec[2], err)
	}
	if row.action, err = enums.BookActionFromString(rec[3]); err != nil {
		return row, err
	}

	side, err := enums.OrderSideFromString(rec[4])
	if err != nil {
		return row, err
	}
	price, err := types.PriceFromString(rec[5])
	if err != nil {
		return row, fmt.Errorf("price %q: %w", rec[5], err)
	}
	size, err := types.QuantityFromString(rec[6])
	if err != nil {
		return row, fmt.Errorf("size %q: %w", rec[6], err)
	}
	orderID, err := strconv.ParseUint(rec[7], 10, 64)
	if err != nil {
		return row, fmt.Errorf("order_id %q: %w", rec[7], err)
	}
	flags, err := strconv.ParseUint(rec[8], 10, 8)
	if err != nil {
		return row, fmt.Errorf("flags %q: %w", rec[8], err)
	}

	row.order = data.BookOrder{Side: side, Price: price, Size: size, OrderID: orderID}
	row.flags = uint8(flags)
	return row, nil
}
