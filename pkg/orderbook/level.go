package orderbook

import (
	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// Level is one price point in a ladder. At L2 it holds a single aggregate
// size; at L3 it also keeps the individual orders in arrival order.
type Level struct {
	price  types.Price
	orders []data.BookOrder
}

func newLevel(price types.Price) *Level {
	return &Level{price: price}
}

// Price returns the level's price.
func (l *Level) Price() types.Price { return l.price }

// Size returns the aggregate size across the level's orders.
func (l *Level) Size() types.Quantity {
	if len(l.orders) == 0 {
		return types.Quantity{}
	}
	total := l.orders[0].Size
	for _, o := range l.orders[1:] {
		total = total.Add(o.Size)
	}
	return total
}

// OrderCount returns the number of individual orders at the level.
func (l *Level) OrderCount() int { return len(l.orders) }

func (l *Level) add(order data.BookOrder) {
	l.orders = append(l.orders, order)
}

// update replaces the order with the same OrderID, preserving its queue
// position. Returns false if no such order rests at the level.
func (l *Level) update(order data.BookOrder) bool {
	for i := range l.orders {
		if l.orders[i].OrderID == order.OrderID {
			l.orders[i] = order
			return true
		}
	}
	return false
}

// remove deletes the order with the given id. Returns false if absent.
func (l *Level) remove(orderID uint64) bool {
	for i := range l.orders {
		if l.orders[i].OrderID == orderID {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return true
		}
	}
	return false
}

// replace makes order the level's only entry (L1/L2 aggregate semantics).
func (l *Level) replace(order data.BookOrder) {
	l.orders = l.orders[:0]
	l.orders = append(l.orders, order)
}

func (l *Level) isEmpty() bool { return len(l.orders) == 0 }

// LevelSnapshot is an immutable copy of a level taken under the book lock,
// safe to hold after the lock is released.
type LevelSnapshot struct {
	Price      types.Price
	Size       types.Quantity
	OrderCount int
}

func (l *Level) snapshot() LevelSnapshot {
	return LevelSnapshot{Price: l.price, Size: l.Size(), OrderCount: len(l.orders)}
}
