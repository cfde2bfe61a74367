package orderbook

import (
	"errors"
	"sync"
	"testing"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

func mustInstrument(t *testing.T, s string) identifiers.InstrumentId {
	t.Helper()
	id, err := identifiers.InstrumentIdFromString(s)
	if err != nil {
		t.Fatalf("InstrumentIdFromString(%q): %v", s, err)
	}
	return id
}

func mustPrice(t *testing.T, v float64, prec uint8) types.Price {
	t.Helper()
	p, err := types.NewPrice(v, prec)
	if err != nil {
		t.Fatalf("NewPrice(%v, %d): %v", v, prec, err)
	}
	return p
}

func mustQty(t *testing.T, v float64, prec uint8) types.Quantity {
	t.Helper()
	q, err := types.NewQuantity(v, prec)
	if err != nil {
		t.Fatalf("NewQuantity(%v, %d): %v", v, prec, err)
	}
	return q
}

func order(t *testing.T, side enums.OrderSide, price, size float64, orderID uint64) data.BookOrder {
	t.Helper()
	return data.BookOrder{
		Side:    side,
		Price:   mustPrice(t, price, 2),
		Size:    mustQty(t, size, 0),
		OrderID: orderID,
	}
}

func snapshot(t *testing.T, id identifiers.InstrumentId, seq uint64, bids, asks []data.BookOrder) data.OrderBookSnapshot {
	t.Helper()
	return data.OrderBookSnapshot{
		InstrumentID: id,
		Bids:         bids,
		Asks:         asks,
		Sequence:     seq,
		TsEvent:      seq * 100,
		TsInit:       seq * 100,
	}
}

func delta(t *testing.T, id identifiers.InstrumentId, action enums.BookAction, o data.BookOrder, seq uint64, flags uint8) data.OrderBookDelta {
	t.Helper()
	return data.OrderBookDelta{
		InstrumentID: id,
		Action:       action,
		Order:        o,
		Flags:        flags,
		Sequence:     seq,
		TsEvent:      seq * 100,
		TsInit:       seq * 100,
	}
}

func newSyncedBook(t *testing.T) *Book {
	t.Helper()
	id := mustInstrument(t, "ETHUSDT.BINANCE")
	b := New(id, enums.L2MBP, nil)
	snap := snapshot(t, id, 1,
		[]data.BookOrder{order(t, enums.Buy, 100.00, 10, 0)},
		[]data.BookOrder{order(t, enums.Sell, 100.05, 5, 0)},
	)
	if err := b.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}
	return b
}

func TestBookStartsUninitialized(t *testing.T) {
	id := mustInstrument(t, "ETHUSDT.BINANCE")
	b := New(id, enums.L2MBP, nil)

	if got := b.State(); got != Uninitialized {
		t.Fatalf("state = %s, want UNINITIALIZED", got)
	}
	if _, ok := b.BestBidPrice(); ok {
		t.Fatal("empty book reported a best bid")
	}

	err := b.ApplyDelta(delta(t, id, enums.Add, order(t, enums.Buy, 99.00, 1, 0), 1, data.FlagLast))
	if !errors.Is(err, ErrNotSynced) {
		t.Fatalf("delta before snapshot: err = %v, want ErrNotSynced", err)
	}
}

func TestBookSnapshotThenDeltas(t *testing.T) {
	b := newSyncedBook(t)

	if got := b.State(); got != Synced {
		t.Fatalf("state = %s, want SYNCED", got)
	}
	if bid, _ := b.BestBidPrice(); bid.String() != "100.00" {
		t.Fatalf("best bid = %s, want 100.00", bid)
	}
	if ask, _ := b.BestAskPrice(); ask.String() != "100.05" {
		t.Fatalf("best ask = %s, want 100.05", ask)
	}

	// New bid below the touch.
	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 99.95, 3, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("add delta: %v", err)
	}
	if bid, _ := b.BestBidPrice(); bid.String() != "100.00" {
		t.Fatalf("best bid after add = %s, want 100.00", bid)
	}

	// Best bid pulled; next level becomes the touch.
	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Delete, order(t, enums.Buy, 100.00, 0, 0), 3, data.FlagLast)); err != nil {
		t.Fatalf("delete delta: %v", err)
	}
	bid, ok := b.BestBidPrice()
	if !ok || bid.String() != "99.95" {
		t.Fatalf("best bid after delete = %s (ok=%v), want 99.95", bid, ok)
	}
	size, _ := b.BestBidSize()
	if size.String() != "3" {
		t.Fatalf("best bid size = %s, want 3", size)
	}
	if b.Sequence() != 3 {
		t.Fatalf("sequence = %d, want 3", b.Sequence())
	}
}

func TestBookSequenceGapGoesStale(t *testing.T) {
	b := newSyncedBook(t)

	err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 99.95, 3, 0), 10, data.FlagLast))
	var gap *SequenceGapError
	if !errors.As(err, &gap) {
		t.Fatalf("err = %v, want *SequenceGapError", err)
	}
	if gap.Expected != 2 || gap.Got != 10 {
		t.Fatalf("gap = {Expected:%d Got:%d}, want {2 10}", gap.Expected, gap.Got)
	}
	if b.State() != Stale {
		t.Fatalf("state = %s, want STALE", b.State())
	}

	// The gapped delta must not have touched the ladder.
	if bid, _ := b.BestBidPrice(); bid.String() != "100.00" {
		t.Fatalf("best bid after gap = %s, want 100.00", bid)
	}

	// Stale books refuse further deltas until resynced.
	err = b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 99.90, 1, 0), 2, data.FlagLast))
	if !errors.Is(err, ErrNotSynced) {
		t.Fatalf("delta while stale: err = %v, want ErrNotSynced", err)
	}

	// A fresh snapshot recovers.
	snap := snapshot(t, b.InstrumentID(), 20,
		[]data.BookOrder{order(t, enums.Buy, 101.00, 7, 0)},
		[]data.BookOrder{order(t, enums.Sell, 101.10, 2, 0)},
	)
	if err := b.ApplySnapshot(snap); err != nil {
		t.Fatalf("recovery snapshot: %v", err)
	}
	if b.State() != Synced || b.Sequence() != 20 {
		t.Fatalf("after recovery: state=%s seq=%d, want SYNCED 20", b.State(), b.Sequence())
	}
	if bid, _ := b.BestBidPrice(); bid.String() != "101.00" {
		t.Fatalf("best bid after recovery = %s, want 101.00", bid)
	}
}

func TestBookDuplicateDeltaDropped(t *testing.T) {
	b := newSyncedBook(t)

	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 99.95, 3, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("add delta: %v", err)
	}
	// Same event replayed: no error, no effect.
	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 99.95, 3, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("replayed delta: %v", err)
	}
	bids, _ := b.Depth()
	if bids != 2 {
		t.Fatalf("bid depth = %d, want 2", bids)
	}
}

func TestBookBatchedDeltas(t *testing.T) {
	b := newSyncedBook(t)
	id := b.InstrumentID()

	// Three deltas share sequence 2; only the last carries FlagLast.
	if err := b.ApplyDelta(delta(t, id, enums.Add, order(t, enums.Buy, 99.95, 3, 0), 2, 0)); err != nil {
		t.Fatalf("batch delta 1: %v", err)
	}
	if err := b.ApplyDelta(delta(t, id, enums.Add, order(t, enums.Buy, 99.90, 4, 0), 2, 0)); err != nil {
		t.Fatalf("batch delta 2: %v", err)
	}
	if err := b.ApplyDelta(delta(t, id, enums.Add, order(t, enums.Sell, 100.10, 1, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("batch delta 3: %v", err)
	}

	bids, asks := b.Depth()
	if bids != 3 || asks != 2 {
		t.Fatalf("depth = (%d, %d), want (3, 2)", bids, asks)
	}

	// Batch is closed: equal sequence is now a duplicate, not a continuation.
	if err := b.ApplyDelta(delta(t, id, enums.Add, order(t, enums.Buy, 99.80, 1, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("post-batch duplicate: %v", err)
	}
	bids, _ = b.Depth()
	if bids != 3 {
		t.Fatalf("bid depth after duplicate = %d, want 3", bids)
	}
}

func TestBookClearEmptiesBothSides(t *testing.T) {
	b := newSyncedBook(t)

	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Clear, data.BookOrder{}, 2, data.FlagLast)); err != nil {
		t.Fatalf("clear delta: %v", err)
	}
	bids, asks := b.Depth()
	if bids != 0 || asks != 0 {
		t.Fatalf("depth after clear = (%d, %d), want (0, 0)", bids, asks)
	}
	if b.State() != Synced || b.Sequence() != 2 {
		t.Fatalf("after clear: state=%s seq=%d, want SYNCED 2", b.State(), b.Sequence())
	}
}

func TestBookSnapshotIdempotent(t *testing.T) {
	b := newSyncedBook(t)
	snap := snapshot(t, b.InstrumentID(), 1,
		[]data.BookOrder{order(t, enums.Buy, 100.00, 10, 0)},
		[]data.BookOrder{order(t, enums.Sell, 100.05, 5, 0)},
	)
	if err := b.ApplySnapshot(snap); err != nil {
		t.Fatalf("reapplied snapshot: %v", err)
	}
	bids, asks := b.Depth()
	if bids != 1 || asks != 1 {
		t.Fatalf("depth = (%d, %d), want (1, 1)", bids, asks)
	}
	if bid, _ := b.BestBidPrice(); bid.String() != "100.00" {
		t.Fatalf("best bid = %s, want 100.00", bid)
	}
}

func TestBookInstrumentMismatchRejected(t *testing.T) {
	b := newSyncedBook(t)
	other := mustInstrument(t, "BTCUSDT.BINANCE")

	if err := b.ApplySnapshot(snapshot(t, other, 5, nil, nil)); err == nil {
		t.Fatal("snapshot for another instrument accepted")
	}
	if err := b.ApplyDelta(delta(t, other, enums.Add, order(t, enums.Buy, 1, 1, 0), 2, data.FlagLast)); err == nil {
		t.Fatal("delta for another instrument accepted")
	}
	if b.Sequence() != 1 {
		t.Fatalf("sequence moved to %d on mismatched events", b.Sequence())
	}
}

func TestBookL3OrderLifecycle(t *testing.T) {
	id := mustInstrument(t, "ETHUSDT.BINANCE")
	b := New(id, enums.L3MBO, nil)

	snap := snapshot(t, id, 1,
		[]data.BookOrder{order(t, enums.Buy, 100.00, 10, 11), order(t, enums.Buy, 100.00, 4, 12)},
		[]data.BookOrder{order(t, enums.Sell, 100.05, 5, 21)},
	)
	if err := b.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}
	size, _ := b.BestBidSize()
	if size.String() != "14" {
		t.Fatalf("best bid size = %s, want 14", size)
	}

	// Order 11 shrinks in place.
	if err := b.ApplyDelta(delta(t, id, enums.Update, order(t, enums.Buy, 100.00, 6, 11), 2, data.FlagLast)); err != nil {
		t.Fatalf("update: %v", err)
	}
	size, _ = b.BestBidSize()
	if size.String() != "10" {
		t.Fatalf("size after update = %s, want 10", size)
	}

	// Order 11 moves off the level.
	if err := b.ApplyDelta(delta(t, id, enums.Update, order(t, enums.Buy, 99.95, 6, 11), 3, data.FlagLast)); err != nil {
		t.Fatalf("price move: %v", err)
	}
	size, _ = b.BestBidSize()
	if size.String() != "4" {
		t.Fatalf("size after move = %s, want 4", size)
	}

	// Deleting the remaining top order drops the level.
	if err := b.ApplyDelta(delta(t, id, enums.Delete, order(t, enums.Buy, 100.00, 0, 12), 4, data.FlagLast)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	bid, ok := b.BestBidPrice()
	if !ok || bid.String() != "99.95" {
		t.Fatalf("best bid = %s (ok=%v), want 99.95", bid, ok)
	}
}

func TestBookL1KeepsSingleLevel(t *testing.T) {
	id := mustInstrument(t, "ETHUSDT.BINANCE")
	b := New(id, enums.L1TBBO, nil)

	snap := snapshot(t, id, 1,
		[]data.BookOrder{order(t, enums.Buy, 100.00, 10, 0)},
		[]data.BookOrder{order(t, enums.Sell, 100.05, 5, 0)},
	)
	if err := b.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}

	// Each update replaces the whole side.
	if err := b.ApplyDelta(delta(t, id, enums.Update, order(t, enums.Buy, 100.01, 8, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("update: %v", err)
	}
	bids, _ := b.Depth()
	if bids != 1 {
		t.Fatalf("bid depth = %d, want 1", bids)
	}
	bid, _ := b.BestBidPrice()
	if bid.String() != "100.01" {
		t.Fatalf("best bid = %s, want 100.01", bid)
	}
}

func TestBookCrossedDetection(t *testing.T) {
	b := newSyncedBook(t)
	if b.IsCrossed() {
		t.Fatal("normal book reported crossed")
	}
	if err := b.ApplyDelta(delta(t, b.InstrumentID(), enums.Add, order(t, enums.Buy, 100.10, 1, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("crossing delta: %v", err)
	}
	if !b.IsCrossed() {
		t.Fatal("crossed book not reported")
	}
}

func TestBookSpreadAndMidpoint(t *testing.T) {
	b := newSyncedBook(t)

	spread, ok := b.Spread()
	if !ok || spread < 0.049 || spread > 0.051 {
		t.Fatalf("spread = %v (ok=%v), want ~0.05", spread, ok)
	}
	mid, ok := b.Midpoint()
	if !ok || mid < 100.024 || mid > 100.026 {
		t.Fatalf("midpoint = %v (ok=%v), want ~100.025", mid, ok)
	}
}

func TestBookQuote(t *testing.T) {
	b := newSyncedBook(t)
	q, ok := b.Quote(12345)
	if !ok {
		t.Fatal("Quote returned no quote for a populated book")
	}
	if q.Bid.String() != "100.00" || q.Ask.String() != "100.05" {
		t.Fatalf("quote = %s/%s, want 100.00/100.05", q.Bid, q.Ask)
	}
	if q.TsInit != 12345 {
		t.Fatalf("TsInit = %d, want 12345", q.TsInit)
	}
}

func TestBookLevelsDetachedFromLadder(t *testing.T) {
	b := newSyncedBook(t)
	id := b.InstrumentID()

	before := b.BidLevels()
	if len(before) != 1 || before[0].Size.String() != "10" {
		t.Fatalf("bid levels = %+v, want one level of size 10", before)
	}

	if err := b.ApplyDelta(delta(t, id, enums.Update, order(t, enums.Buy, 100.00, 7, 0), 2, data.FlagLast)); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	if before[0].Size.String() != "10" {
		t.Fatalf("snapshot size changed to %s after delta, want 10", before[0].Size)
	}
	after := b.BidLevels()
	if after[0].Size.String() != "7" {
		t.Fatalf("fresh snapshot size = %s, want 7", after[0].Size)
	}
}

func TestBookConcurrentReadsDuringApply(t *testing.T) {
	b := newSyncedBook(t)
	id := b.InstrumentID()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, lv := range b.BidLevels() {
				_ = lv.Price.String()
				_ = lv.Size.String()
			}
			for _, lv := range b.AskLevels() {
				_ = lv.Price.String()
				_ = lv.Size.String()
			}
			_, _ = b.BestBidPrice()
			_, _ = b.Spread()
		}
	}()

	for seq := uint64(2); seq < 2000; seq++ {
		size := float64(1 + seq%50)
		if err := b.ApplyDelta(delta(t, id, enums.Update, order(t, enums.Buy, 100.00, size, 0), seq, data.FlagLast)); err != nil {
			t.Fatalf("ApplyDelta seq %d: %v", seq, err)
		}
	}
	close(done)
	wg.Wait()
}
