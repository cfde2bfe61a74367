package storage

import (
	"encoding/binary"

	"github.com/meridian-hft/marketcore/pkg/identifiers"
)

// Key schema for Pebble storage:
//
//   s:<instrument>:<seq> → OrderBookSnapshot
//   d:<instrument>:<seq> → OrderBookDelta
//
// The sequence suffix is a big-endian uint64 so prefix scans iterate in
// sequence order.

const (
	prefixSnapshot = "s:"
	prefixDelta    = "d:"
)

func seqBytes(seq uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq)
	return b[:]
}

func snapshotKey(id identifiers.InstrumentId, seq uint64) []byte {
	k := append([]byte(prefixSnapshot), id.String()...)
	k = append(k, ':')
	return append(k, seqBytes(seq)...)
}

func deltaKey(id identifiers.InstrumentId, seq uint64) []byte {
	k := append([]byte(prefixDelta), id.String()...)
	k = append(k, ':')
	return append(k, seqBytes(seq)...)
}

func snapshotPrefix(id identifiers.InstrumentId) []byte {
	k := append([]byte(prefixSnapshot), id.String()...)
	return append(k, ':')
}

func deltaPrefix(id identifiers.InstrumentId) []byte {
	k := append([]byte(prefixDelta), id.String()...)
	return append(k, ':')
}

// keyUpperBound returns the exclusive upper bound for a prefix scan
func keyUpperBound(prefix []byte) []byte {
	bound := make([]byte, len(prefix))
	copy(bound, prefix)
	bound[len(bound)-1]++
	return bound
}
