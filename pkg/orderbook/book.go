// Package orderbook maintains a live, price-ordered view of one
// instrument's market by applying a sequenced stream of deltas and
// snapshots. Value types are immutable; the book itself has exactly one
// logical writer and synchronizes concurrent readers with an RWMutex so a
// partially applied mutation is never observable.
package orderbook

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// State is the book's synchronization state.
type State uint8

const (
	// Uninitialized: no snapshot applied yet; deltas are refused.
	Uninitialized State = iota
	// Synced: ladders reflect every event up to the current sequence.
	Synced
	// Stale: a sequence gap was detected; awaiting a fresh snapshot.
	Stale
)

var stateNames = map[State]string{
	Uninitialized: "UNINITIALIZED",
	Synced:        "SYNCED",
	Stale:         "STALE",
}

func (s State) String() string { return stateNames[s] }

// ErrNotSynced is returned for deltas arriving before the first snapshot
// or while the book is stale.
var ErrNotSynced = errors.New("book not synced, awaiting snapshot")

// SequenceGapError reports a delta whose sequence skipped ahead. The book
// transitions to Stale; recovery requires a fresh snapshot.
type SequenceGapError struct {
	InstrumentID identifiers.InstrumentId
	Expected     uint64
	Got          uint64
}

func (e *SequenceGapError) Error() string {
	return fmt.Sprintf("sequence gap on %s: expected %d, got %d", e.InstrumentID, e.Expected, e.Got)
}

// Book is the per-instrument order book aggregate.
type Book struct {
	mu sync.RWMutex

	instrumentID identifiers.InstrumentId
	bookType     enums.BookType

	bids *Ladder
	asks *Ladder

	state    State
	sequence uint64
	// batchOpen is set while deltas sharing the current sequence are still
	// arriving; the ladder is externally consistent only once the delta
	// carrying FlagLast lands.
	batchOpen bool

	tsLastEvent uint64
	count       uint64

	logger *zap.SugaredLogger
}

// New creates an empty book for the instrument at the given granularity.
// A nil logger defaults to zap's no-op logger.
func New(instrumentID identifiers.InstrumentId, bookType enums.BookType, logger *zap.SugaredLogger) *Book {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Book{
		instrumentID: instrumentID,
		bookType:     bookType,
		bids:         newLadder(enums.Buy, bookType),
		asks:         newLadder(enums.Sell, bookType),
		logger:       logger,
	}
}

func (b *Book) InstrumentID() identifiers.InstrumentId { return b.instrumentID }
func (b *Book) BookType() enums.BookType               { return b.bookType }

// State returns the current synchronization state.
func (b *Book) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Sequence returns the sequence of the last applied event.
func (b *Book) Sequence() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sequence
}

// Count returns the number of applied events.
func (b *Book) Count() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// ApplySnapshot replaces both ladders wholesale and synchronizes the book
// at the snapshot's sequence. Valid from any state; applying the same
// snapshot twice is idempotent.
func (b *Book) ApplySnapshot(s data.OrderBookSnapshot) error {
	if s.InstrumentID != b.instrumentID {
		return fmt.Errorf("snapshot for %s applied to book %s", s.InstrumentID, b.instrumentID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.bids.clear()
	b.asks.clear()
	for _, o := range s.Bids {
		b.bids.add(o)
	}
	for _, o := range s.Asks {
		b.asks.add(o)
	}

	b.state = Synced
	b.sequence = s.Sequence
	b.batchOpen = false
	b.tsLastEvent = s.TsEvent
	b.count++

	b.checkCrossedLocked()
	return nil
}

// ApplyDelta applies a single book mutation. The delta must carry the next
// sequence (or the current one while a batch is open). On a gap the ladder
// is untouched, the book goes Stale and a *SequenceGapError is returned.
func (b *Book) ApplyDelta(d data.OrderBookDelta) error {
	if d.InstrumentID != b.instrumentID {
		return fmt.Errorf("delta for %s applied to book %s", d.InstrumentID, b.instrumentID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Synced {
		return fmt.Errorf("%w (state %s)", ErrNotSynced, b.state)
	}

	expected := b.sequence + 1
	switch {
	case d.Sequence == expected:
		// Next event, possibly opening a new batch.
	case d.Sequence == b.sequence && b.batchOpen:
		// Batch continuation at the shared sequence.
	case d.Sequence <= b.sequence:
		// Replay of an already-applied event; drop silently.
		return nil
	default:
		b.state = Stale
		b.batchOpen = false
		b.logger.Warnw("sequence_gap",
			"instrument", b.instrumentID.String(),
			"expected", expected,
			"got", d.Sequence,
		)
		return &SequenceGapError{InstrumentID: b.instrumentID, Expected: expected, Got: d.Sequence}
	}

	b.applyActionLocked(d)

	b.sequence = d.Sequence
	b.batchOpen = !d.IsLast()
	b.tsLastEvent = d.TsEvent
	b.count++

	b.checkCrossedLocked()
	return nil
}

func (b *Book) applyActionLocked(d data.OrderBookDelta) {
	if d.Action == enums.Clear {
		b.bids.clear()
		b.asks.clear()
		return
	}

	var ladder *Ladder
	switch d.Order.Side {
	case enums.Buy:
		ladder = b.bids
	case enums.Sell:
		ladder = b.asks
	default:
		b.logger.Warnw("delta_without_side",
			"instrument", b.instrumentID.String(),
			"sequence", d.Sequence,
		)
		return
	}

	switch d.Action {
	case enums.Add:
		ladder.add(d.Order)
	case enums.Update:
		ladder.update(d.Order)
	case enums.Delete:
		ladder.delete(d.Order)
	}
}

// ApplyData applies the book-affecting variants of the data union and
// ignores point observations (quotes, trades, bars).
func (b *Book) ApplyData(d data.Data) error {
	switch v := d.(type) {
	case data.OrderBookSnapshot:
		return b.ApplySnapshot(v)
	case data.OrderBookDelta:
		return b.ApplyDelta(v)
	default:
		return nil
	}
}

// checkCrossedLocked logs a crossed top of book. Venues legitimately cross
// during auctions and self-heal on the next event, so the condition is
// surfaced, never auto-corrected.
func (b *Book) checkCrossedLocked() {
	bid := b.bids.bestLevel()
	ask := b.asks.bestLevel()
	if bid == nil || ask == nil {
		return
	}
	if bid.price.Raw >= ask.price.Raw {
		b.logger.Warnw("book_crossed",
			"instrument", b.instrumentID.String(),
			"best_bid", bid.price.String(),
			"best_ask", ask.price.String(),
			"sequence", b.sequence,
		)
	}
}

// IsCrossed reports whether the best bid is at or above the best ask.
func (b *Book) IsCrossed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bid := b.bids.bestLevel()
	ask := b.asks.bestLevel()
	return bid != nil && ask != nil && bid.price.Raw >= ask.price.Raw
}

// BestBidPrice returns the top bid price, if any bids rest.
func (b *Book) BestBidPrice() (types.Price, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lv := b.bids.bestLevel()
	if lv == nil {
		return types.Price{}, false
	}
	return lv.price, true
}

// BestAskPrice returns the top ask price, if any asks rest.
func (b *Book) BestAskPrice() (types.Price, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lv := b.asks.bestLevel()
	if lv == nil {
		return types.Price{}, false
	}
	return lv.price, true
}

// BestBidSize returns the aggregate size at the top bid level.
func (b *Book) BestBidSize() (types.Quantity, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lv := b.bids.bestLevel()
	if lv == nil {
		return types.Quantity{}, false
	}
	return lv.Size(), true
}

// BestAskSize returns the aggregate size at the top ask level.
func (b *Book) BestAskSize() (types.Quantity, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	lv := b.asks.bestLevel()
	if lv == nil {
		return types.Quantity{}, false
	}
	return lv.Size(), true
}

// Spread returns best ask minus best bid as a float, for display.
func (b *Book) Spread() (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bid := b.bids.bestLevel()
	ask := b.asks.bestLevel()
	if bid == nil || ask == nil {
		return 0, false
	}
	return ask.price.AsFloat() - bid.price.AsFloat(), true
}

// Midpoint returns the mid price as a float, for display.
func (b *Book) Midpoint() (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bid := b.bids.bestLevel()
	ask := b.asks.bestLevel()
	if bid == nil || ask == nil {
		return 0, false
	}
	return (ask.price.AsFloat() + bid.price.AsFloat()) / 2, true
}

// Depth returns the number of levels per side.
func (b *Book) Depth() (bids, asks int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bids.depth(), b.asks.depth()
}

// BidLevels returns copies of the bid levels best-first. The snapshots are
// detached from the ladder and stay valid after later deltas.
func (b *Book) BidLevels() []LevelSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bids.snapshotLevels()
}

// AskLevels returns copies of the ask levels best-first.
func (b *Book) AskLevels() []LevelSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.asks.snapshotLevels()
}

// Quote renders the current top of book as a QuoteTick. Returns false if
// either side is empty.
func (b *Book) Quote(tsInit uint64) (data.QuoteTick, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bid := b.bids.bestLevel()
	ask := b.asks.bestLevel()
	if bid == nil || ask == nil {
		return data.QuoteTick{}, false
	}
	return data.NewQuoteTick(
		b.instrumentID,
		bid.price, ask.price,
		bid.Size(), ask.Size(),
		b.tsLastEvent, tsInit,
	), true
}
