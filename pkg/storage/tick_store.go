// Package storage persists book events in Pebble so a capture can be
// replayed in sequence order after a restart.
package storage

import (
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
)

// TickStore is a Pebble-backed event store keyed by instrument and
// sequence. Snapshots are written synchronously; deltas ride the OS cache.
type TickStore struct {
	db *pebble.DB
}

func NewTickStore(path string) (*TickStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &TickStore{db: db}, nil
}

func (s *TickStore) Close() error { return s.db.Close() }

func (s *TickStore) SaveSnapshot(snap data.OrderBookSnapshot) error {
	key := snapshotKey(snap.InstrumentID, snap.Sequence)
	if err := s.db.Set(key, encodeSnapshot(snap), pebble.Sync); err != nil {
		return fmt.Errorf("save snapshot %s@%d: %w", snap.InstrumentID, snap.Sequence, err)
	}
	return nil
}

func (s *TickStore) SaveDelta(d data.OrderBookDelta) error {
	key := deltaKey(d.InstrumentID, d.Sequence)
	if err := s.db.Set(key, encodeDelta(d), pebble.NoSync); err != nil {
		return fmt.Errorf("save delta %s@%d: %w", d.InstrumentID, d.Sequence, err)
	}
	return nil
}

// SaveData persists the book-affecting variants and ignores the rest.
func (s *TickStore) SaveData(d data.Data) error {
	switch v := d.(type) {
	case data.OrderBookSnapshot:
		return s.SaveSnapshot(v)
	case data.OrderBookDelta:
		return s.SaveDelta(v)
	default:
		return nil
	}
}

// LatestSnapshot returns the newest stored snapshot for the instrument.
func (s *TickStore) LatestSnapshot(id identifiers.InstrumentId) (data.OrderBookSnapshot, bool, error) {
	prefix := snapshotPrefix(id)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: keyUpperBound(prefix),
	})
	if err != nil {
		return data.OrderBookSnapshot{}, false, err
	}
	defer iter.Close()

	if !iter.Last() {
		return data.OrderBookSnapshot{}, false, nil
	}
	snap, err := decodeSnapshot(id, iter.Value())
	if err != nil {
		return data.OrderBookSnapshot{}, false, err
	}
	return snap, true, nil
}

// LoadDeltas returns the stored deltas with from <= sequence <= to.
func (s *TickStore) LoadDeltas(id identifiers.InstrumentId, from, to uint64) ([]data.OrderBookDelta, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: deltaKey(id, from),
		UpperBound: deltaKey(id, to+1),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []data.OrderBookDelta
	for iter.First(); iter.Valid(); iter.Next() {
		d, err := decodeDelta(id, iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Replay emits the newest snapshot followed by every later delta, in
// sequence order. A store with no snapshot emits nothing.
func (s *TickStore) Replay(id identifiers.InstrumentId, emit func(data.Data) error) error {
	snap, ok, err := s.LatestSnapshot(id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := emit(snap); err != nil {
		return err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: deltaKey(id, snap.Sequence+1),
		UpperBound: keyUpperBound(deltaPrefix(id)),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		d, err := decodeDelta(id, iter.Value())
		if err != nil {
			return err
		}
		if err := emit(d); err != nil {
			return err
		}
	}
	return nil
}
