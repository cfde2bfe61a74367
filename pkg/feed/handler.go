// Package feed turns ordered per-instrument event streams into live order
// books and fans the applied events out to subscribers.
package feed

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/orderbook"
	"github.com/meridian-hft/marketcore/pkg/util"
)

// ResyncFunc is invoked when a book goes stale so the caller can request a
// fresh snapshot from upstream. It must not block.
type ResyncFunc func(identifiers.InstrumentId)

const subscriberBuffer = 256

// Handler owns one Book per instrument and applies the incoming stream.
type Handler struct {
	mu       sync.RWMutex
	bookType enums.BookType
	books    map[identifiers.InstrumentId]*orderbook.Book
	subs     map[uint64]chan data.Data
	nextSub  uint64

	resync ResyncFunc
	clock  util.Clock
	logger *zap.SugaredLogger
}

// NewHandler creates a handler building books of the given granularity.
// resync may be nil when no upstream recovery exists (e.g. file replay).
func NewHandler(bookType enums.BookType, resync ResyncFunc, clock util.Clock, logger *zap.SugaredLogger) *Handler {
	if clock == nil {
		clock = util.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{
		bookType: bookType,
		books:    make(map[identifiers.InstrumentId]*orderbook.Book),
		subs:     make(map[uint64]chan data.Data),
		resync:   resync,
		clock:    clock,
		logger:   logger,
	}
}

// Book returns the book for the instrument, creating it on first use.
func (h *Handler) Book(id identifiers.InstrumentId) *orderbook.Book {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bookLocked(id)
}

func (h *Handler) bookLocked(id identifiers.InstrumentId) *orderbook.Book {
	b, ok := h.books[id]
	if !ok {
		b = orderbook.New(id, h.bookType, h.logger)
		h.books[id] = b
	}
	return b
}

// Books returns every book the handler currently tracks.
func (h *Handler) Books() []*orderbook.Book {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*orderbook.Book, 0, len(h.books))
	for _, b := range h.books {
		out = append(out, b)
	}
	return out
}

// Subscribe registers a consumer of applied events and derived quotes.
// The returned cancel func unregisters and closes the channel.
func (h *Handler) Subscribe() (<-chan data.Data, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextSub
	h.nextSub++
	ch := make(chan data.Data, subscriberBuffer)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (h *Handler) publish(d data.Data) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- d:
		default:
			// Slow consumer; drop rather than stall the apply path.
			h.logger.Warnw("subscriber_lagging", "subscriber", id, "kind", d.Kind().String())
		}
	}
}

// OnData applies a single event. Snapshots and deltas mutate the matching
// book; quotes, trades and bars pass straight through to subscribers.
// A sequence gap triggers the resync callback; deltas arriving while the
// book is stale are dropped without error.
func (h *Handler) OnData(d data.Data) error {
	switch v := d.(type) {
	case data.OrderBookSnapshot:
		b := h.Book(v.InstrumentID)
		if err := b.ApplySnapshot(v); err != nil {
			return err
		}
		h.publish(v)
		h.publishQuote(b)
		return nil

	case data.OrderBookDelta:
		b := h.Book(v.InstrumentID)
		err := b.ApplyDelta(v)
		var gap *orderbook.SequenceGapError
		switch {
		case err == nil:
			h.publish(v)
			if v.IsLast() {
				h.publishQuote(b)
			}
			return nil
		case errors.As(err, &gap):
			h.logger.Infow("resync_requested", "instrument", v.InstrumentID.String())
			if h.resync != nil {
				h.resync(v.InstrumentID)
			}
			return err
		case errors.Is(err, orderbook.ErrNotSynced):
			return nil
		default:
			return err
		}

	default:
		h.publish(d)
		return nil
	}
}

func (h *Handler) publishQuote(b *orderbook.Book) {
	if q, ok := b.Quote(h.clock.UnixNano()); ok {
		h.publish(q)
	}
}
