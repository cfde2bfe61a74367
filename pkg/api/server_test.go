package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/feed"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	h := feed.NewHandler(enums.L2MBP, nil, nil, nil)
	id, err := identifiers.InstrumentIdFromString("BTCUSDT.BINANCE")
	if err != nil {
		t.Fatalf("InstrumentIdFromString: %v", err)
	}
	bid, _ := types.PriceFromString("50000.00")
	ask, _ := types.PriceFromString("50001.00")
	size, _ := types.QuantityFromString("2")
	err = h.OnData(data.OrderBookSnapshot{
		InstrumentID: id,
		Bids:         []data.BookOrder{{Side: enums.Buy, Price: bid, Size: size}},
		Asks:         []data.BookOrder{{Side: enums.Sell, Price: ask, Size: size}},
		Sequence:     1,
	})
	if err != nil {
		t.Fatalf("OnData: %v", err)
	}
	return NewServer(h, nil)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, testServer(t), "/health")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetBooks(t *testing.T) {
	rec := get(t, testServer(t), "/api/v1/books")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var books []BookSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &books); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("got %d books, want 1", len(books))
	}
	b := books[0]
	if b.Instrument != "BTCUSDT.BINANCE" || b.State != "SYNCED" || b.BestBid != "50000.00" {
		t.Fatalf("book summary = %+v", b)
	}
}

func TestGetBook(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/v1/books/BTCUSDT.BINANCE")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var b BookSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Sequence != 1 || b.BestAsk != "50001.00" {
		t.Fatalf("book summary = %+v", b)
	}

	if rec := get(t, s, "/api/v1/books/ETHUSDT.BINANCE"); rec.Code != 404 {
		t.Fatalf("unknown instrument status = %d, want 404", rec.Code)
	}
	if rec := get(t, s, "/api/v1/books/notaninstrument"); rec.Code != 400 {
		t.Fatalf("malformed instrument status = %d, want 400", rec.Code)
	}
}

func TestGetDepth(t *testing.T) {
	rec := get(t, testServer(t), "/api/v1/books/BTCUSDT.BINANCE/depth")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var depth DepthSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &depth); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(depth.Bids) != 1 || depth.Bids[0].Price != "50000.00" || depth.Bids[0].Size != "2" {
		t.Fatalf("depth bids = %+v", depth.Bids)
	}
	if len(depth.Asks) != 1 || depth.Asks[0].Price != "50001.00" {
		t.Fatalf("depth asks = %+v", depth.Asks)
	}
}
