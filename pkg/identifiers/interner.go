// Package identifiers defines the interned identifier types used across
// the market data model. Equality and hashing are by string value, so
// identifiers parsed independently from the same text are interchangeable
// as map keys. A process-wide intern table lets repeated constructions
// share one backing string.
package identifiers

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidIdentifier reports empty or malformed identifier text.
var ErrInvalidIdentifier = errors.New("invalid identifier")

var interner = struct {
	mu sync.RWMutex
	m  map[string]string
}{m: make(map[string]string)}

// intern returns the canonical shared instance of s.
func intern(s string) string {
	interner.mu.RLock()
	c, ok := interner.m[s]
	interner.mu.RUnlock()
	if ok {
		return c
	}
	interner.mu.Lock()
	if c, ok = interner.m[s]; !ok {
		// Clone drops any larger backing array s may be a slice of.
		c = strings.Clone(s)
		interner.m[c] = c
	}
	interner.mu.Unlock()
	return c
}

func checkNonEmpty(kind, text string) error {
	if text == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalidIdentifier, kind)
	}
	return nil
}
