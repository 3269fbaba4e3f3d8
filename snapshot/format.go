package snapshot

import (
	"errors"
	"hash/crc32"

	"github.com/hupe1980/prioq/codec"
)

const (
	// magicNumber identifies prioq snapshot files (ASCII: "PQS1").
	magicNumber = 0x50515331
	// version is the current envelope format version.
	version = 1
)

var (
	// ErrInvalidMagic is returned when the input is not a prioq snapshot.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion is returned for snapshots written by a newer format.
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	// ErrChecksumMismatch is returned when the payload fails integrity verification.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrUnknownCodec is returned when the header names a codec this build does not know.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrUnknownCompression is returned for an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
	// ErrInvalidKind is returned for an out-of-range queue kind byte.
	ErrInvalidKind = errors.New("invalid queue kind")
)

// castagnoli is the CRC32-C table; hardware-accelerated on modern CPUs.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// fileHeader is the fixed-size portion of the envelope, followed by the
// codec name and the (possibly compressed) payload bytes.
type fileHeader struct {
	Magic            uint32
	Version          uint16
	Kind             uint8
	Compression      uint8
	CodecNameLen     uint8
	_                [3]byte // reserved
	UncompressedSize uint32
	StoredSize       uint32
	Checksum         uint32 // CRC32-C of the stored payload bytes
}

// Options configure snapshot writing.
type Options struct {
	// Codec encodes the element payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression. Defaults to CompressionNone.
	// If the payload does not shrink, it is stored uncompressed regardless.
	Compression Compression
}

// Option mutates Options.
type Option func(*Options)

// WithCodec configures the payload codec.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		if c == nil {
			c = codec.Default
		}
		o.Codec = c
	}
}

// WithCompression configures the payload compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

func defaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
	}
}
