package orderbook

import (
	"container/heap"
	"sort"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// Ladder is one side of a book: a price-ordered set of levels. Bids order
// descending, asks ascending. Best price is an O(1) heap peek; levels are
// addressed by raw price, and at L3 additionally by order id.
type Ladder struct {
	side     enums.OrderSide
	bookType enums.BookType

	levels map[int64]*Level
	best   priceHeap

	// orderIndex maps order id -> price raw, for O(1) L3 updates/deletes.
	orderIndex map[uint64]int64
}

func newLadder(side enums.OrderSide, bookType enums.BookType) *Ladder {
	var best priceHeap
	if side == enums.Buy {
		best = &maxRawHeap{}
	} else {
		best = &minRawHeap{}
	}
	heap.Init(best)
	return &Ladder{
		side:       side,
		bookType:   bookType,
		levels:     make(map[int64]*Level),
		best:       best,
		orderIndex: make(map[uint64]int64),
	}
}

func (l *Ladder) levelFor(price types.Price) *Level {
	lv, ok := l.levels[price.Raw]
	if !ok {
		lv = newLevel(price)
		l.levels[price.Raw] = lv
		heap.Push(l.best, price.Raw)
	}
	return lv
}

func (l *Ladder) dropLevel(raw int64) {
	delete(l.levels, raw)
	if i := l.best.find(raw); i >= 0 {
		heap.Remove(l.best, i)
	}
}

// add inserts order per the ladder's granularity: by order id at L3, as
// the level aggregate at L2, as the side's single level at L1.
func (l *Ladder) add(order data.BookOrder) {
	switch l.bookType {
	case enums.L3MBO:
		lv := l.levelFor(order.Price)
		lv.add(order)
		l.orderIndex[order.OrderID] = order.Price.Raw
	case enums.L2MBP:
		lv := l.levelFor(order.Price)
		lv.replace(order)
	default: // L1: one level per side
		l.clear()
		lv := l.levelFor(order.Price)
		lv.replace(order)
	}
}

// update modifies existing state, falling back to add when the target is
// absent (venues emit UPDATE for levels never seen after a resync).
func (l *Ladder) update(order data.BookOrder) {
	switch l.bookType {
	case enums.L3MBO:
		raw, ok := l.orderIndex[order.OrderID]
		if !ok {
			l.add(order)
			return
		}
		if raw == order.Price.Raw {
			l.levels[raw].update(order)
			return
		}
		// Price moved: the order leaves its old level.
		l.removeOrderAt(raw, order.OrderID)
		l.add(order)
	default:
		l.add(order)
	}
}

// delete removes the matching order (L3) or the entire level (L1/L2).
func (l *Ladder) delete(order data.BookOrder) {
	switch l.bookType {
	case enums.L3MBO:
		raw, ok := l.orderIndex[order.OrderID]
		if !ok {
			return
		}
		l.removeOrderAt(raw, order.OrderID)
	default:
		if _, ok := l.levels[order.Price.Raw]; ok {
			l.dropLevel(order.Price.Raw)
		}
	}
}

func (l *Ladder) removeOrderAt(raw int64, orderID uint64) {
	lv, ok := l.levels[raw]
	if !ok {
		delete(l.orderIndex, orderID)
		return
	}
	lv.remove(orderID)
	delete(l.orderIndex, orderID)
	if lv.isEmpty() {
		l.dropLevel(raw)
	}
}

func (l *Ladder) clear() {
	l.levels = make(map[int64]*Level)
	if l.side == enums.Buy {
		l.best = &maxRawHeap{}
	} else {
		l.best = &minRawHeap{}
	}
	heap.Init(l.best)
	l.orderIndex = make(map[uint64]int64)
}

// bestLevel returns the top level, or nil when the side is empty.
func (l *Ladder) bestLevel() *Level {
	raw, ok := l.best.Peek()
	if !ok {
		return nil
	}
	return l.levels[raw]
}

func (l *Ladder) depth() int { return len(l.levels) }

// snapshotLevels returns copies of all levels best-first. O(N log N);
// intended for publishing, not the hot apply path.
func (l *Ladder) snapshotLevels() []LevelSnapshot {
	out := make([]LevelSnapshot, 0, len(l.levels))
	for _, lv := range l.levels {
		out = append(out, lv.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if l.side == enums.Buy {
			return out[i].Price.Raw > out[j].Price.Raw
		}
		return out[i].Price.Raw < out[j].Price.Raw
	})
	return out
}
