package api

// API response types for REST endpoints and WebSocket messages. Prices and
// sizes are rendered as decimal strings at their carried precision so
// consumers never see binary floats.

// ==============================
// REST Response Types
// ==============================

// BookSummary is the top-of-book view of one instrument.
type BookSummary struct {
	Instrument string `json:"instrument"` // e.g. "BTCUSDT.BINANCE"
	State      string `json:"state"`      // "UNINITIALIZED", "SYNCED", "STALE"
	Sequence   uint64 `json:"sequence"`
	BestBid    string `json:"bestBid,omitempty"`
	BestAsk    string `json:"bestAsk,omitempty"`
	BidDepth   int    `json:"bidDepth"` // price levels on the bid side
	AskDepth   int    `json:"askDepth"`
}

// PriceLevel represents one aggregated level.
type PriceLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// DepthSnapshot represents the full ladder of one instrument.
type DepthSnapshot struct {
	Instrument string       `json:"instrument"`
	Bids       []PriceLevel `json:"bids"` // Sorted high to low
	Asks       []PriceLevel `json:"asks"` // Sorted low to high
	Sequence   uint64       `json:"sequence"`
	Timestamp  int64        `json:"timestamp"` // Unix milliseconds
}

// ErrorResponse is returned for all errors
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ==============================
// WebSocket Message Types
// ==============================

// WSSubscribeRequest is sent by client to subscribe to channels
type WSSubscribeRequest struct {
	Op       string   `json:"op"`       // "subscribe" or "unsubscribe"
	Channels []string `json:"channels"` // e.g., ["depth:BTCUSDT.BINANCE", "quotes:BTCUSDT.BINANCE"]
}

// DepthUpdate is broadcast on channel "depth:<instrument>" whenever the
// ladder changes.
type DepthUpdate struct {
	Type       string       `json:"type"` // "depth"
	Instrument string       `json:"instrument"`
	Bids       []PriceLevel `json:"bids"`
	Asks       []PriceLevel `json:"asks"`
	Sequence   uint64       `json:"sequence"`
	Timestamp  int64        `json:"timestamp"`
}

// QuoteUpdate is broadcast on channel "quotes:<instrument>" when the top
// of book moves.
type QuoteUpdate struct {
	Type       string `json:"type"` // "quote"
	Instrument string `json:"instrument"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask"`
	BidSize    string `json:"bidSize"`
	AskSize    string `json:"askSize"`
	TsEvent    uint64 `json:"tsEvent"`
}

// TradeUpdate is broadcast on channel "trades:<instrument>".
type TradeUpdate struct {
	Type       string `json:"type"` // "trade"
	Instrument string `json:"instrument"`
	Price      string `json:"price"`
	Size       string `json:"size"`
	Aggressor  string `json:"aggressor"`
	TradeID    string `json:"tradeId"`
	TsEvent    uint64 `json:"tsEvent"`
}
