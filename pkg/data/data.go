package data

// DataKind tags the variant held by a Data value, for logging and routing.
type DataKind uint8

const (
	KindSnapshot DataKind = iota + 1
	KindDelta
	KindQuote
	KindTrade
	KindBar
)

var dataKindNames = map[DataKind]string{
	KindSnapshot: "SNAPSHOT",
	KindDelta:    "DELTA",
	KindQuote:    "QUOTE",
	KindTrade:    "TRADE",
	KindBar:      "BAR",
}

func (k DataKind) String() string { return dataKindNames[k] }

// Data is the closed union over the five market event types. The
// unexported marker method seals the set: a type switch over
// OrderBookSnapshot, OrderBookDelta, QuoteTick, TradeTick and Bar is
// exhaustive by construction.
type Data interface {
	Kind() DataKind
	isData()
}

func (OrderBookSnapshot) Kind() DataKind { return KindSnapshot }
func (OrderBookDelta) Kind() DataKind    { return KindDelta }
func (QuoteTick) Kind() DataKind         { return KindQuote }
func (TradeTick) Kind() DataKind         { return KindTrade }
func (Bar) Kind() DataKind               { return KindBar }

func (OrderBookSnapshot) isData() {}
func (OrderBookDelta) isData()    {}
func (QuoteTick) isData()         {}
func (TradeTick) isData()         {}
func (Bar) isData()               {}
