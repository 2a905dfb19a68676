package protocol

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"sortbench/pkg/common"
)

const (
	MagicNumber = 0x53

	OpResult = 0x01
	OpLog    = 0x02

	RespOK  = 0x00
	RespErr = 0xFF

	// [Size 8B] [MergeMs 8B] [QuickMs 8B] [Flags 1B]
	ResultPayloadSize = 8 + 8 + 8 + 1

	// MaxValueSize caps a frame's value; results are 25 bytes and log lines short.
	MaxValueSize = 64 << 10

	flagMergeOK = 1 << 0
	flagQuickOK = 1 << 1
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidPayload = errors.New("invalid result payload")
	ErrFrameTooLarge  = errors.New("frame value too large")
)

type Packet struct {
	Op    byte
	Key   []byte
	Value []byte
}

func Encode(w io.Writer, op byte, key []byte, value []byte) error {
	header := make([]byte, 8)
	header[0] = MagicNumber
	header[1] = op
	binary.BigEndian.PutUint16(header[2:4], uint16(len(key)))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(value)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(key) > 0 {
		if _, err := w.Write(key); err != nil {
			return err
		}
	}
	if len(value) > 0 {
		if _, err := w.Write(value); err != nil {
			return err
		}
	}
	return nil
}

func Decode(r io.Reader) (*Packet, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	if header[0] != MagicNumber {
		return nil, ErrInvalidMagic
	}

	op := header[1]
	kLen := binary.BigEndian.Uint16(header[2:4])
	vLen := binary.BigEndian.Uint32(header[4:8])
	if vLen > MaxValueSize {
		return nil, ErrFrameTooLarge
	}

	key := make([]byte, kLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	val := make([]byte, vLen)
	if _, err := io.ReadFull(r, val); err != nil {
		return nil, err
	}

	return &Packet{Op: op, Key: key, Value: val}, nil
}

// EncodeResult packs a result into the OpResult payload.
func EncodeResult(res common.Result) []byte {
	buf := make([]byte, ResultPayloadSize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(int64(res.Size)))
	binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(res.MergeSortMs))
	binary.BigEndian.PutUint64(buf[16:24], math.Float64bits(res.QuickSortMs))

	var flags byte
	if res.MergeSortOK {
		flags |= flagMergeOK
	}
	if res.QuickSortOK {
		flags |= flagQuickOK
	}
	buf[24] = flags
	return buf
}

func DecodeResult(b []byte) (common.Result, error) {
	if len(b) != ResultPayloadSize {
		return common.Result{}, ErrInvalidPayload
	}
	flags := b[24]
	return common.Result{
		Size:        int(int64(binary.BigEndian.Uint64(b[0:8]))),
		MergeSortMs: math.Float64frombits(binary.BigEndian.Uint64(b[8:16])),
		QuickSortMs: math.Float64frombits(binary.BigEndian.Uint64(b[16:24])),
		MergeSortOK: flags&flagMergeOK != 0,
		QuickSortOK: flags&flagQuickOK != 0,
	}, nil
}
