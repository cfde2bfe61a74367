// Package api exposes live books over REST and WebSocket.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/feed"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/orderbook"
)

// Server handles REST API and WebSocket connections
type Server struct {
	feed   *feed.Handler
	router *mux.Router
	hub    *Hub
	logger *zap.SugaredLogger
}

// NewServer creates a new API server publishing the handler's books.
func NewServer(f *feed.Handler, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		feed:   f,
		router: mux.NewRouter(),
		hub:    NewHub(log),
		logger: log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API v1 routes
	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/books", s.handleGetBooks).Methods("GET")
	api.HandleFunc("/books/{instrument}", s.handleGetBook).Methods("GET")
	api.HandleFunc("/books/{instrument}/depth", s.handleGetDepth).Methods("GET")

	// WebSocket endpoint
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start runs the hub, the broadcast pump and the HTTP listener. Blocks.
func (s *Server) Start(addr string, allowedOrigins []string) error {
	go s.hub.Run()
	go s.pump()

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(s.router)

	s.logger.Infow("api_listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}

// pump consumes applied events from the feed and fans them out to
// subscribed WebSocket channels.
func (s *Server) pump() {
	events, cancel := s.feed.Subscribe()
	defer cancel()

	for d := range events {
		switch v := d.(type) {
		case data.OrderBookSnapshot:
			s.broadcastDepth(v.InstrumentID)
		case data.OrderBookDelta:
			if v.IsLast() {
				s.broadcastDepth(v.InstrumentID)
			}
		case data.QuoteTick:
			s.hub.BroadcastToChannel("quotes:"+v.InstrumentID.String(), QuoteUpdate{
				Type:       "quote",
				Instrument: v.InstrumentID.String(),
				Bid:        v.Bid.String(),
				Ask:        v.Ask.String(),
				BidSize:    v.BidSize.String(),
				AskSize:    v.AskSize.String(),
				TsEvent:    v.TsEvent,
			})
		case data.TradeTick:
			s.hub.BroadcastToChannel("trades:"+v.InstrumentID.String(), TradeUpdate{
				Type:       "trade",
				Instrument: v.InstrumentID.String(),
				Price:      v.Price.String(),
				Size:       v.Size.String(),
				Aggressor:  v.AggressorSide.String(),
				TradeID:    v.TradeID.String(),
				TsEvent:    v.TsEvent,
			})
		}
	}
}

func (s *Server) broadcastDepth(id identifiers.InstrumentId) {
	b := s.feed.Book(id)
	s.hub.BroadcastToChannel("depth:"+id.String(), DepthUpdate{
		Type:       "depth",
		Instrument: id.String(),
		Bids:       renderLevels(b.BidLevels()),
		Asks:       renderLevels(b.AskLevels()),
		Sequence:   b.Sequence(),
		Timestamp:  time.Now().UnixMilli(),
	})
}

// ==============================
// REST Handlers
// ==============================

func (s *Server) handleGetBooks(w http.ResponseWriter, r *http.Request) {
	books := s.feed.Books()
	response := make([]BookSummary, 0, len(books))
	for _, b := range books {
		response = append(response, summarize(b))
	}
	respondJSON(w, response)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookupBook(w, r)
	if !ok {
		return
	}
	respondJSON(w, summarize(b))
}

func (s *Server) handleGetDepth(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookupBook(w, r)
	if !ok {
		return
	}
	respondJSON(w, DepthSnapshot{
		Instrument: b.InstrumentID().String(),
		Bids:       renderLevels(b.BidLevels()),
		Asks:       renderLevels(b.AskLevels()),
		Sequence:   b.Sequence(),
		Timestamp:  time.Now().UnixMilli(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) lookupBook(w http.ResponseWriter, r *http.Request) (*orderbook.Book, bool) {
	raw := mux.Vars(r)["instrument"]
	id, err := identifiers.InstrumentIdFromString(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid instrument", err.Error())
		return nil, false
	}
	for _, b := range s.feed.Books() {
		if b.InstrumentID() == id {
			return b, true
		}
	}
	respondError(w, http.StatusNotFound, "book not found", raw)
	return nil, false
}

// ==============================
// Helper Functions
// ==============================

func summarize(b *orderbook.Book) BookSummary {
	out := BookSummary{
		Instrument: b.InstrumentID().String(),
		State:      b.State().String(),
		Sequence:   b.Sequence(),
	}
	if p, ok := b.BestBidPrice(); ok {
		out.BestBid = p.String()
	}
	if p, ok := b.BestAskPrice(); ok {
		out.BestAsk = p.String()
	}
	out.BidDepth, out.AskDepth = b.Depth()
	return out
}

func renderLevels(levels []orderbook.LevelSnapshot) []PriceLevel {
	out := make([]PriceLevel, len(levels))
	for i, lv := range levels {
		out[i] = PriceLevel{Price: lv.Price.String(), Size: lv.Size.String()}
	}
	return out
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, error string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Message: message,
	})
}
