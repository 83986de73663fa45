// Package png parses, validates and reconstructs PNG chunk streams, and
// implements the scanline filter codec that turns filtered pixel data back
// into raw samples.
//
// The package deals with the container format only: the 8-byte signature
// followed by length-name-payload-CRC chunks. Pixel data stays compressed
// inside the container; Container.PixelData and the ImageData chunk expose
// zlib as the decompression collaborator, and DecodeScanlines operates on
// the decompressed bytes. Interlacing, palettes and color management are out
// of scope.
package png

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-png/internal/binary"
)

// Signature is the fixed 8-byte prefix of every stream:
// 0x89 P N G \r \n 0x1a \n.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Container is a parsed stream: the signature followed by an ordered chunk
// list. The order is caller-authoritative; the container never reorders or
// deduplicates.
type Container struct {
	chunks []Chunk
}

// Load parses a byte stream into a Container.
//
// A signature mismatch is always fatal, no matter the options; there is no
// recovery from an unrecognized stream. Chunks are then decoded one after
// another until the end of the buffer. In strict mode (the default) the
// first per-chunk validation failure aborts the load; with WithLenient the
// failure is logged and a best-effort chunk is kept. Parsing does not stop
// at the end marker, so trailing chunks after IEND are decoded like any
// others.
func Load(data []byte, opts ...LoadOption) (*Container, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(o)
	}
	d := &decoder{lenient: o.lenient, log: o.log}

	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, fmt.Errorf("stream does not begin with the 8-byte signature: %w", ErrSignature)
	}

	c := &Container{}
	offset := len(Signature)
	for offset < len(data) {
		raw, consumed, err := d.decodeChunk(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", offset, err)
		}
		chunk, err := d.dispatch(raw)
		if err != nil {
			return nil, fmt.Errorf("chunk %q at offset %d: %w", raw.name, offset, err)
		}
		d.log.Debugf("decoded chunk %q at offset %d (%d payload bytes)", chunk.Name(), offset, len(chunk.Data()))
		c.chunks = append(c.chunks, chunk)
		offset += consumed
	}
	return c, nil
}

// Dump serializes the container: signature, then every chunk in list order.
// Each chunk's length and CRC are recomputed unless WithFrozen is given.
// No structural completeness is enforced beyond what each chunk's own
// encoder checks.
func (c *Container) Dump(opts ...EncodeOption) ([]byte, error) {
	w := binary.NewWriter()
	w.WriteBytes(Signature)
	for i, chunk := range c.chunks {
		b, err := chunk.Encode(opts...)
		if err != nil {
			return nil, fmt.Errorf("encoding chunk %d (%q): %w", i, chunk.Name(), err)
		}
		w.WriteBytes(b)
	}
	return w.Bytes(), nil
}

// Chunks returns the ordered chunk list.
func (c *Container) Chunks() []Chunk {
	return c.chunks
}

// Append adds a chunk at the end of the list.
func (c *Container) Append(chunk Chunk) {
	c.chunks = append(c.chunks, chunk)
}

// Header returns the first IHDR chunk, or nil if the stream has none in
// decodable form.
func (c *Container) Header() *ImageHeader {
	for _, chunk := range c.chunks {
		if h, ok := chunk.(*ImageHeader); ok {
			return h
		}
	}
	return nil
}

// PixelData concatenates the payloads of all IDAT chunks, in order, and
// inflates the joined stream. The format splits one zlib stream across
// consecutive IDAT chunks, so the chunks must be joined before inflating.
func (c *Container) PixelData() ([]byte, error) {
	var joined []byte
	found := false
	for _, chunk := range c.chunks {
		if d, ok := chunk.(*ImageData); ok {
			joined = append(joined, d.Data()...)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("stream has no pixel data chunks: %w", ErrStructural)
	}
	return inflate(joined)
}

// Validate checks the conventional whole-stream shape: at least one chunk,
// IHDR first, IEND last with an empty payload. Load deliberately does not
// enforce this, so partially trusted streams stay inspectable; callers that
// need the convention check it here.
func (c *Container) Validate() error {
	if len(c.chunks) == 0 {
		return fmt.Errorf("stream has no chunks: %w", ErrStructural)
	}
	if _, ok := c.chunks[0].(*ImageHeader); !ok {
		return fmt.Errorf("first chunk is %q, want %q: %w", c.chunks[0].Name(), TagHeader, ErrStructural)
	}
	last := c.chunks[len(c.chunks)-1]
	if _, ok := last.(*ImageEnd); !ok {
		return fmt.Errorf("last chunk is %q, want %q: %w", last.Name(), TagEnd, ErrStructural)
	}
	if len(last.Data()) != 0 {
		return fmt.Errorf("end marker carries %d payload bytes: %w", len(last.Data()), ErrStructural)
	}
	return nil
}

func (c *Container) String() string {
	return fmt.Sprintf("<PNG chunks=%d>", len(c.chunks))
}
