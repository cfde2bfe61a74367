package storage

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/meridian-hft/marketcore/pkg/data"
)

// Journal is an append-only human-readable trail of applied market events,
// kept alongside the binary store for operational forensics.
type Journal interface {
	Record(d data.Data)
}

type NopJournal struct{}

func NewNopJournal() *NopJournal { return &NopJournal{} }

func (j *NopJournal) Record(data.Data) {}

// FileJournal writes one timestamped key=value line per event. Lines are
// for humans and log tooling; the binary store is the durable record.
type FileJournal struct {
	mu sync.Mutex
	f  *os.File
}

func NewFileJournal(path string) (*FileJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileJournal{f: f}, nil
}

func (j *FileJournal) Record(d data.Data) {
	line := renderEvent(time.Now().UTC(), d)
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintln(j.f, line)
}

func (j *FileJournal) Close() error { return j.f.Close() }

func renderEvent(ts time.Time, d data.Data) string {
	stamp := ts.Format(time.RFC3339Nano)
	switch v := d.(type) {
	case data.OrderBookSnapshot:
		return fmt.Sprintf("%s kind=snapshot instrument=%s seq=%d bids=%d asks=%d",
			stamp, v.InstrumentID, v.Sequence, len(v.Bids), len(v.Asks))
	case data.OrderBookDelta:
		return fmt.Sprintf("%s kind=delta instrument=%s seq=%d action=%s side=%s price=%s size=%s",
			stamp, v.InstrumentID, v.Sequence, v.Action, v.Order.Side, v.Order.Price, v.Order.Size)
	case data.QuoteTick:
		return fmt.Sprintf("%s kind=quote instrument=%s bid=%s ask=%s bid_size=%s ask_size=%s",
			stamp, v.InstrumentID, v.Bid, v.Ask, v.BidSize, v.AskSize)
	case data.TradeTick:
		return fmt.Sprintf("%s kind=trade instrument=%s price=%s size=%s aggressor=%s",
			stamp, v.InstrumentID, v.Price, v.Size, v.AggressorSide)
	default:
		return fmt.Sprintf("%s kind=%s", stamp, d.Kind())
	}
}

var _ Journal = (*NopJournal)(nil)
var _ Journal = (*FileJournal)(nil)
