package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/prioq"
	"github.com/hupe1980/prioq/codec"
)

// byteOrder is the envelope byte order; native on x86/ARM.
var byteOrder = binary.LittleEndian

// payload carries the codec-encoded queue contents. Elements appear in
// storage order, so the heap property already holds on restore.
type payload[K comparable] struct {
	Elements []prioq.Element[K] `json:"elements"`
}

// Write serializes the complete state of q to w.
func Write[K comparable](w io.Writer, q *prioq.Queue[K], optFns ...Option) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	raw, err := opts.Codec.Marshal(payload[K]{Elements: q.Elements()})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if uint64(len(raw)) > math.MaxUint32 {
		return fmt.Errorf("payload too large: %d bytes", len(raw))
	}

	stored, effective, err := compress(raw, opts.Compression)
	if err != nil {
		return err
	}

	name := opts.Codec.Name()
	if len(name) > math.MaxUint8 {
		return fmt.Errorf("codec name too long: %q", name)
	}

	header := fileHeader{
		Magic:            magicNumber,
		Version:          version,
		Kind:             uint8(q.Kind()),
		Compression:      uint8(effective),
		CodecNameLen:     uint8(len(name)),
		UncompressedSize: uint32(len(raw)),
		StoredSize:       uint32(len(stored)),
		Checksum:         crc32.Checksum(stored, castagnoli),
	}

	if err := binary.Write(w, byteOrder, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("write codec name: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// Read deserializes a snapshot from r and rebuilds the queue. The payload
// codec is selected by the name recorded in the header; optFns configure the
// restored queue (logger, emitter, metrics) and do not affect decoding.
func Read[K comparable](r io.Reader, optFns ...prioq.Option) (*prioq.Queue[K], error) {
	var header fileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if header.Magic != magicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, header.Version)
	}

	kind := prioq.Kind(header.Kind)
	if kind != prioq.MinHeap && kind != prioq.MaxHeap {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, header.Kind)
	}

	nameBuf := make([]byte, header.CodecNameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}

	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBuf))
	}

	stored := make([]byte, header.StoredSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	if crc32.Checksum(stored, castagnoli) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	raw, err := decompress(stored, Compression(header.Compression), int(header.UncompressedSize))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	var p payload[K]
	if err := c.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	return prioq.Restore(kind, p.Elements, optFns...)
}
