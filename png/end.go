package png

import "fmt"

// ImageEnd is the IEND chunk marking the end of the stream. Its payload must
// be empty.
type ImageEnd struct {
	RawChunk
}

// NewImageEnd creates an IEND chunk.
func NewImageEnd() *ImageEnd {
	return &ImageEnd{RawChunk: RawChunk{name: TagEnd}}
}

func decodeImageEnd(raw *RawChunk, d *decoder) (Chunk, error) {
	if len(raw.data) != 0 {
		err := fmt.Errorf("end marker carries %d payload bytes: %w", len(raw.data), ErrStructural)
		if !d.lenient {
			return nil, err
		}
		d.log.Warnf("%v", err)
	}
	return &ImageEnd{RawChunk: *raw}, nil
}

// Encode serializes the chunk, refusing a non-empty payload.
func (c *ImageEnd) Encode(opts ...EncodeOption) ([]byte, error) {
	if len(c.data) != 0 {
		return nil, fmt.Errorf("end marker carries %d payload bytes: %w", len(c.data), ErrStructural)
	}
	return c.RawChunk.Encode(opts...)
}

func (c *ImageEnd) String() string {
	return "<Chunk:IEND>"
}
