package identifiers

import (
	"errors"
	"testing"
)

func TestSymbolValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid", text: "AAPL"},
		{name: "crypto pair", text: "BTC-USDT"},
		{name: "empty", text: "", wantErr: true},
		{name: "contains dot", text: "BRK.B", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSymbol(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentifier) {
					t.Fatalf("NewSymbol(%q) err = %v, want ErrInvalidIdentifier", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSymbol(%q): %v", tt.text, err)
			}
			if s.String() != tt.text {
				t.Errorf("String() = %q, want %q", s.String(), tt.text)
			}
		})
	}
}

func TestValueEquality(t *testing.T) {
	// Two identifiers built from the same text must compare equal and be
	// interchangeable as map keys, regardless of allocation identity.
	a, _ := NewSymbol("AAPL")
	b, _ := NewSymbol("AAPL")
	if a != b {
		t.Error("identifiers from identical text should be equal")
	}

	m := map[Symbol]int{a: 1}
	if m[b] != 1 {
		t.Error("equal identifiers should hash to the same map slot")
	}

	c, _ := NewSymbol("MSFT")
	if a == c {
		t.Error("different text should not be equal")
	}
}

func TestInstrumentIdRoundTrip(t *testing.T) {
	tests := []struct {
		text    string
		symbol  string
		venue   string
		wantErr bool
	}{
		{text: "AAPL.XNAS", symbol: "AAPL", venue: "XNAS"},
		{text: "BTC-USDT.BINANCE", symbol: "BTC-USDT", venue: "BINANCE"},
		{text: "ETH-PERP.FTX", symbol: "ETH-PERP", venue: "FTX"},
		{text: "", wantErr: true},
		{text: "NODOT", wantErr: true},
		{text: ".VENUE", wantErr: true},
		{text: "SYM.", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			id, err := InstrumentIdFromString(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentifier) {
					t.Fatalf("InstrumentIdFromString(%q) err = %v, want ErrInvalidIdentifier", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("InstrumentIdFromString(%q): %v", tt.text, err)
			}
			if id.Symbol.String() != tt.symbol || id.Venue.String() != tt.venue {
				t.Errorf("got %q/%q, want %q/%q", id.Symbol, id.Venue, tt.symbol, tt.venue)
			}
			if id.String() != tt.text {
				t.Errorf("String() = %q, want lossless round trip of %q", id.String(), tt.text)
			}
		})
	}
}

func TestInstrumentIdComposite(t *testing.T) {
	sym, _ := NewSymbol("AAPL")
	ven, _ := NewVenue("XNAS")
	built := NewInstrumentId(sym, ven)

	parsed, err := InstrumentIdFromString("AAPL.XNAS")
	if err != nil {
		t.Fatal(err)
	}
	if built != parsed {
		t.Error("built and parsed instrument ids should be equal")
	}

	m := map[InstrumentId]string{built: "ok"}
	if m[parsed] != "ok" {
		t.Error("instrument ids should be usable as map keys across instances")
	}
}

func TestOtherIdentifiers(t *testing.T) {
	if _, err := NewTradeId("T-0001"); err != nil {
		t.Errorf("NewTradeId: %v", err)
	}
	if _, err := NewTradeId(""); !errors.Is(err, ErrInvalidIdentifier) {
		t.Error("empty trade id should be rejected")
	}
	if _, err := NewTraderId("TRADER-001"); err != nil {
		t.Errorf("NewTraderId: %v", err)
	}
	if _, err := NewVenueOrderId(""); !errors.Is(err, ErrInvalidIdentifier) {
		t.Error("empty venue order id should be rejected")
	}
}

func TestInterningShares(t *testing.T) {
	a := intern("shared-text")
	b := intern("shared-text")
	if a != b {
		t.Fatal("interned strings must be equal")
	}
}
