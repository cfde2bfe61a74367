package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/meridian-hft/marketcore/pkg/data"
	"github.com/meridian-hft/marketcore/pkg/enums"
	"github.com/meridian-hft/marketcore/pkg/identifiers"
	"github.com/meridian-hft/marketcore/pkg/types"
)

// Values are fixed-layout big-endian records over the raw scaled integers.
// Floats never touch the wire. The instrument lives in the key, not the
// value.

const codecVersion byte = 1

// order record: side(1) pricePrec(1) sizePrec(1) priceRaw(8) sizeRaw(8) orderID(8)
const orderRecordLen = 1 + 1 + 1 + 8 + 8 + 8

func putOrder(buf *bytes.Buffer, o data.BookOrder) {
	buf.WriteByte(byte(o.Side))
	buf.WriteByte(o.Price.Precision)
	buf.WriteByte(o.Size.Precision)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(o.Price.Raw))
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], o.Size.Raw)
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], o.OrderID)
	buf.Write(b[:])
}

func getOrder(b []byte) (data.BookOrder, error) {
	if len(b) < orderRecordLen {
		return data.BookOrder{}, fmt.Errorf("order record truncated at %d bytes", len(b))
	}
	return data.BookOrder{
		Side:    enums.OrderSide(b[0]),
		Price:   types.PriceFromRaw(int64(binary.BigEndian.Uint64(b[3:11])), b[1]),
		Size:    types.QuantityFromRaw(binary.BigEndian.Uint64(b[11:19]), b[2]),
		OrderID: binary.BigEndian.Uint64(b[19:27]),
	}, nil
}

func encodeDelta(d data.OrderBookDelta) []byte {
	var buf bytes.Buffer
	buf.WriteByte(codecVersion)
	buf.WriteByte(byte(d.Action))
	buf.WriteByte(d.Flags)
	putOrder(&buf, d.Order)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], d.Sequence)
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], d.TsEvent)
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], d.TsInit)
	buf.Write(b[:])
	return buf.Bytes()
}

func decodeDelta(id identifiers.InstrumentId, b []byte) (data.OrderBookDelta, error) {
	const want = 3 + orderRecordLen + 24
	if len(b) != want {
		return data.OrderBookDelta{}, fmt.Errorf("delta record is %d bytes, want %d", len(b), want)
	}
	if b[0] != codecVersion {
		return data.OrderBookDelta{}, fmt.Errorf("unknown codec version %d", b[0])
	}
	order, err := getOrder(b[3:])
	if err != nil {
		return data.OrderBookDelta{}, err
	}
	tail := b[3+orderRecordLen:]
	return data.OrderBookDelta{
		InstrumentID: id,
		Action:       enums.BookAction(b[1]),
		Order:        order,
		Flags:        b[2],
		Sequence:     binary.BigEndian.Uint64(tail[0:8]),
		TsEvent:      binary.BigEndian.Uint64(tail[8:16]),
		TsInit:       binary.BigEndian.Uint64(tail[16:24]),
	}, nil
}

func encodeSnapshot(s data.OrderBookSnapshot) []byte {
	var buf bytes.Buffer
	buf.WriteByte(codecVersion)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], s.Sequence)
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], s.TsEvent)
	buf.Write(b[:])
	binary.BigEndian.PutUint64(b[:], s.TsInit)
	buf.Write(b[:])

	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s.Bids)))
	buf.Write(n[:])
	binary.BigEndian.PutUint32(n[:], uint32(len(s.Asks)))
	buf.Write(n[:])
	for _, o := range s.Bids {
		putOrder(&buf, o)
	}
	for _, o := range s.Asks {
		putOrder(&buf, o)
	}
	return buf.Bytes()
}

func decodeSnapshot(id identifiers.InstrumentId, b []byte) (data.OrderBookSnapshot, error) {
	const headerLen = 1 + 24 + 8
	if len(b) < headerLen {
		return data.OrderBookSnapshot{}, fmt.Errorf("snapshot record truncated at %d bytes", len(b))
	}
	if b[0] != codecVersion {
		return data.OrderBookSnapshot{}, fmt.Errorf("unknown codec version %d", b[0])
	}
	s := data.OrderBookSnapshot{
		InstrumentID: id,
		Sequence:     binary.BigEndian.Uint64(b[1:9]),
		TsEvent:      binary.BigEndian.Uint64(b[9:17]),
		TsInit:       binary.BigEndian.Uint64(b[17:25]),
	}
	nBids := binary.BigEndian.Uint32(b[25:29])
	nAsks := binary.BigEndian.Uint32(b[29:33])
	rest := b[headerLen:]
	if len(rest) != int(nBids+nAsks)*orderRecordLen {
		return data.OrderBookSnapshot{}, fmt.Errorf("snapshot body is %d bytes, want %d orders", len(rest), nBids+nAsks)
	}
	for i := uint32(0); i < nBids; i++ {
		o, err := getOrder(rest[i*orderRecordLen:])
		if err != nil {
			return data.OrderBookSnapshot{}, err
		}
		s.Bids = append(s.Bids, o)
	}
	rest = rest[nBids*orderRecordLen:]
	for i := uint32(0); i < nAsks; i++ {
		o, err := getOrder(rest[i*orderRecordLen:])
		if err != nil {
			return data.OrderBookSnapshot{}, err
		}
		s.Asks = append(s.Asks, o)
	}
	return s, nil
}
