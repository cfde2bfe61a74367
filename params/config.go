package params

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Feed struct {
	// Instruments to track, "SYMBOL.VENUE" form.
	Instruments []string
	// BookType selects ladder granularity: "L1_TBBO", "L2_MBP" or "L3_MBO".
	BookType string
	// CapturePath is the CSV capture replayed at startup. Empty disables replay.
	CapturePath string
}

type Store struct {
	// Path of the Pebble database. Empty disables persistence.
	Path string
	// JournalPath of the plain-text event trail. Empty disables it.
	JournalPath string
}

type API struct {
	ListenAddr     string
	AllowedOrigins []string
}

type Config struct {
	Feed     Feed
	Store    Store
	API      API
	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		Feed: Feed{
			Instruments: []string{"BTCUSDT.BINANCE"},
			BookType:    "L2_MBP",
		},
		Store: Store{
			Path: "data/ticks",
		},
		API: API{
			ListenAddr:     ":8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		},
		LogLevel: "info",
	}
}

// LoadFromEnv loads configuration from .env file (if exists) and environment variables
// Priority: ENV > .env file > defaults
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	// Try to load .env file (optional - won't fail if not exists)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	if v := os.Getenv("FEED_INSTRUMENTS"); v != "" {
		// Example: "BTCUSDT.BINANCE,ETHUSDT.BINANCE"
		cfg.Feed.Instruments = strings.Split(v, ",")
	}
	if v := os.Getenv("FEED_BOOK_TYPE"); v != "" {
		cfg.Feed.BookType = v
	}
	cfg.Feed.CapturePath = getEnv("FEED_CAPTURE_PATH", cfg.Feed.CapturePath)

	cfg.Store.Path = getEnv("STORE_PATH", cfg.Store.Path)
	cfg.Store.JournalPath = getEnv("STORE_JOURNAL_PATH", cfg.Store.JournalPath)

	cfg.API.ListenAddr = getEnv("API_LISTEN_ADDR", cfg.API.ListenAddr)
	if v := os.Getenv("API_ALLOWED_ORIGINS"); v != "" {
		cfg.API.AllowedOrigins = strings.Split(v, ",")
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	return cfg
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
