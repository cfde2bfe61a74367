package orderbook

// Max/min heaps over raw scaled prices give O(1) best-price peek while
// levels come and go. Manipulate via container/heap (Init, Push, Pop,
// Remove).

type maxRawHeap []int64

func (h maxRawHeap) Len() int           { return len(h) }
func (h maxRawHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxRawHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxRawHeap) Push(x any) { *h = append(*h, x.(int64)) }

func (h *maxRawHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (h maxRawHeap) Peek() (int64, bool) {
	if len(h) == 0 {
		return 0, false
	}
	return h[0], true
}

// find returns the index of price, or -1. O(N) worst case but removal of
// an arbitrary level is rare relative to top-of-book churn.
func (h maxRawHeap) find(price int64) int {
	for i, p := range h {
		if p == price {
			return i
		}
	}
	return -1
}

type minRawHeap []int64

func (h minRawHeap) Len() int           { return len(h) }
func (h minRawHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minRawHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minRawHeap) Push(x any) { *h = append(*h, x.(int64)) }

func (h *minRawHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (h minRawHeap) Peek() (int64, bool) {
	if len(h) == 0 {
		return 0, false
	}
	return h[0], true
}

func (h minRawHeap) find(price int64) int {
	for i, p := range h {
		if p == price {
			return i
		}
	}
	return -1
}

// priceHeap is what a ladder needs from either heap orientation.
type priceHeap interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Push(x any)
	Pop() any
	Peek() (int64, bool)
	find(price int64) int
}
