package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/meridian-hft/marketcore/params"
	"github.com/meridian-hft/marketcore/pkg/api"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/feed"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/storage"
	"github.com/meridian-hft/marketcore/pkg/util"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("") // "" means load from .env in current directory

	zlog, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	bookType, err := enums.BookTypeFromString(cfg.Feed.BookType)
	if err != nil {
		sugar.Fatalw("bad_book_type", "value", cfg.Feed.BookType, "err", err)
	}

	// ---- Feed handler ----
	handler := feed.NewHandler(bookType, func(id identifiers.InstrumentId) {
		// File-driven deployment has no live upstream to resync from.
		sugar.Warnw("resync_needed", "instrument", id.String())
	}, util.RealClock{}, sugar)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Persistence (optional) ----
	var store *storage.TickStore
	if cfg.Store.Path != "" {
		store, err = storage.NewTickStore(cfg.Store.Path)
		if err != nil {
			sugar.Fatalw("store_open_failed", "path", cfg.Store.Path, "err", err)
		}
		defer store.Close()
	}

	var journal storage.Journal = storage.NewNopJournal()
	if cfg.Store.JournalPath != "" {
		fj, err := storage.NewFileJournal(cfg.Store.JournalPath)
		if err != nil {
			sugar.Fatalw("journal_open_failed", "path", cfg.Store.JournalPath, "err", err)
		}
		defer fj.Close()
		journal = fj
	}

	// Persist every applied book event.
	go func() {
		events, cancel := handler.Subscribe()
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-events:
				if !ok {
					return
				}
				if store != nil {
					if err := store.SaveData(d); err != nil {
						sugar.Errorw("store_save_failed", "err", err)
					}
				}
				journal.Record(d)
			}
		}
	}()

	// ---- Rehydrate books from the store ----
	if store != nil {
		for _, raw := range cfg.Feed.Instruments {
			id, err := identifiers.InstrumentIdFromString(raw)
			if err != nil {
				sugar.Fatalw("bad_instrument", "value", raw, "err", err)
			}
			if err := store.Replay(id, handler.OnData); err != nil {
				sugar.Errorw("store_replay_failed", "instrument", raw, "err", err)
			}
			b := handler.Book(id)
			sugar.Infow("book_ready", "instrument", raw, "state", b.State().String(), "sequence", b.Sequence())
		}
	}

	// ---- API Server ----
	apiServer := api.NewServer(handler, sugar)
	go func() {
		if err := apiServer.Start(cfg.API.ListenAddr, cfg.API.AllowedOrigins); err != nil {
			sugar.Fatalw("api_server_failed", "err", err)
		}
	}()

	// ---- Capture replay (optional) ----
	if cfg.Feed.CapturePath != "" {
		go func() {
			if len(cfg.Feed.Instruments) != 1 {
				sugar.Fatalw("capture_replay_needs_one_instrument", "instruments", cfg.Feed.Instruments)
			}
			id, err := identifiers.InstrumentIdFromString(cfg.Feed.Instruments[0])
			if err != nil {
				sugar.Fatalw("bad_instrument", "value", cfg.Feed.Instruments[0], "err", err)
			}
			f, err := os.Open(cfg.Feed.CapturePath)
			if err != nil {
				sugar.Fatalw("capture_open_failed", "path", cfg.Feed.CapturePath, "err", err)
			}
			defer f.Close()

			loader := feed.NewReplayLoader(id)
			if err := loader.Stream(f, handler.OnData); err != nil {
				sugar.Errorw("capture_replay_failed", "err", err)
				return
			}
			sugar.Infow("capture_replayed", "path", cfg.Feed.CapturePath)
		}()
	}

	// Progress logging loop
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	sugar.Infow("bookfeed_starting",
		"instruments", cfg.Feed.Instruments,
		"book_type", cfg.Feed.BookType,
		"api_addr", cfg.API.ListenAddr)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, b := range handler.Books() {
				sugar.Infow("book_progress",
					"instrument", b.InstrumentID().String(),
					"state", b.State().String(),
					"sequence", b.Sequence(),
					"events", b.Count())
			}
		}
	}
}

func buildLogger(cfg params.Config) (*zap.Logger, error) {
	if cfg.LogFile != "" {
		return util.NewLoggerWithFile(cfg.LogFile, cfg.LogLevel)
	}
	return util.NewLogger(cfg.LogLevel)
}
