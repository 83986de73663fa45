package png

import "github.com/sirupsen/logrus"

// Names of the chunk variants this package interprets.
const (
	TagHeader = "IHDR"
	TagData   = "IDAT"
	TagEnd    = "IEND"
)

// Chunk is one record of the container. Every chunk exposes its generic
// framing fields; variants add interpreted views on top.
type Chunk interface {
	// Name returns the 4-byte chunk name.
	Name() string

	// Length returns the length field as decoded or last encoded.
	Length() uint32

	// CRC returns the checksum field as decoded or last encoded.
	CRC() uint32

	// Data returns the chunk payload.
	Data() []byte

	// Raw returns the chunk's generic representation.
	Raw() *RawChunk

	// Encode serializes the chunk with the framing header and footer.
	Encode(opts ...EncodeOption) ([]byte, error)
}

// chunkDecoders maps a chunk name to its variant decoder. Names without an
// entry pass through as a RawChunk, payload preserved verbatim, which keeps
// streams with unknown chunks round-trippable.
var chunkDecoders = map[string]func(*RawChunk, *decoder) (Chunk, error){
	TagHeader: decodeImageHeader,
	TagData:   decodeImageData,
	TagEnd:    decodeImageEnd,
}

// decoder carries the per-load policy and diagnostics sink through the
// framing and variant decode paths.
type decoder struct {
	lenient bool
	log     logrus.FieldLogger
}

// dispatch resolves a decoded chunk to its most specific variant.
func (d *decoder) dispatch(raw *RawChunk) (Chunk, error) {
	decode, ok := chunkDecoders[raw.name]
	if !ok {
		return raw, nil
	}
	return decode(raw, d)
}
