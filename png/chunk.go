package png

import (
	"fmt"

	"github.com/robert-malhotra/go-png/internal/binary"
)

// chunkOverhead is the framing cost of one chunk: 4-byte length, 4-byte name
// and 4-byte CRC.
const chunkOverhead = 12

// maxChunkLength is the largest payload the format permits (2^31 - 1 bytes).
const maxChunkLength = 1<<31 - 1

// RawChunk is one length-name-payload-CRC record of the stream. It is the
// generic interpretation used for every chunk whose name has no registered
// variant, and the base all variants build on.
type RawChunk struct {
	name   string
	length uint32
	crc    uint32
	data   []byte
}

// NewChunk creates a chunk with the given 4-letter name and payload. The
// length and CRC fields are computed from the payload.
func NewChunk(name string, data []byte) (*RawChunk, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &RawChunk{
		name:   name,
		length: uint32(len(data)),
		crc:    binary.ChunkCRC([]byte(name), data),
		data:   data,
	}, nil
}

// Name returns the 4-byte chunk name.
func (c *RawChunk) Name() string {
	return c.name
}

// Length returns the length field as decoded or last encoded. It can disagree
// with len(Data()) for a chunk decoded in lenient mode.
func (c *RawChunk) Length() uint32 {
	return c.length
}

// CRC returns the checksum field as decoded or last encoded.
func (c *RawChunk) CRC() uint32 {
	return c.crc
}

// Data returns the chunk payload.
func (c *RawChunk) Data() []byte {
	return c.data
}

// SetData replaces the chunk payload. The length and CRC fields are refreshed
// on the next Encode.
func (c *RawChunk) SetData(data []byte) {
	c.data = data
}

// Raw returns the chunk's generic representation.
func (c *RawChunk) Raw() *RawChunk {
	return c
}

// Flags returns the four boolean flags encoded in the name's letter casing.
func (c *RawChunk) Flags() TagFlags {
	return FlagsOf(c.name)
}

// SetFlags replaces the name with one carrying the given flags. The letters
// themselves are unchanged, only their casing.
func (c *RawChunk) SetFlags(f TagFlags) {
	c.name = f.ApplyTo(c.name)
}

// Encode serializes the chunk as length, name, payload, CRC. Unless frozen,
// the length is recomputed from the payload and the CRC from name and
// payload, overwriting whatever the fields held.
func (c *RawChunk) Encode(opts ...EncodeOption) ([]byte, error) {
	o := applyEncodeOptions(opts)
	if !o.frozen {
		if err := checkName(c.name); err != nil {
			return nil, err
		}
		if len(c.data) > maxChunkLength {
			return nil, fmt.Errorf("payload of %d bytes exceeds the 31-bit length field: %w", len(c.data), ErrFraming)
		}
		c.length = uint32(len(c.data))
		c.crc = binary.ChunkCRC([]byte(c.name), c.data)
	}
	w := binary.NewWriter()
	w.WriteUint32(c.length)
	w.WriteString(c.name)
	w.WriteBytes(c.data)
	w.WriteUint32(c.crc)
	return w.Bytes(), nil
}

func (c *RawChunk) String() string {
	return fmt.Sprintf("<Chunk %q length=%d crc=%08X>", c.name, c.length, c.crc)
}

// decodeChunk parses one framed chunk from the front of buf and reports how
// many bytes it consumed. buf is the remainder of the stream, so the
// available payload is everything up to the trailing CRC.
//
// Validation order: name, length, CRC. In lenient mode each failure is logged
// and decoding continues with the raw or declared value; a buffer too small
// to frame anything is fatal in both modes.
func (d *decoder) decodeChunk(buf []byte) (*RawChunk, int, error) {
	if len(buf) < chunkOverhead {
		return nil, 0, fmt.Errorf("%d trailing bytes cannot frame a chunk: %w", len(buf), ErrFraming)
	}

	r := binary.NewReader(buf)
	length, _ := r.ReadUint32()
	nameBytes, _ := r.ReadBytes(4)
	name := string(nameBytes)

	if err := checkName(name); err != nil {
		if !d.lenient {
			return nil, 0, err
		}
		d.log.Warnf("keeping chunk with invalid name: %v", err)
	}
	if FlagsOf(name).Reserved {
		d.log.Warnf("chunk %q has the reserved name bit set", name)
	}

	avail := len(buf) - chunkOverhead
	var (
		payload  []byte
		stored   uint32
		consumed int
	)
	if int64(length) > int64(avail) || length > maxChunkLength {
		if !d.lenient {
			return nil, 0, fmt.Errorf("chunk %q declares %d payload bytes but %d are available: %w",
				name, length, avail, ErrFraming)
		}
		d.log.Warnf("chunk %q declares %d payload bytes but %d are available; taking the remainder",
			name, length, avail)
		payload = buf[8 : len(buf)-4]
		stored, _ = binary.NewReader(buf[len(buf)-4:]).ReadUint32()
		consumed = len(buf)
	} else {
		payload, _ = r.ReadBytes(int(length))
		stored, _ = r.ReadUint32()
		consumed = r.Pos()
	}

	if computed := binary.ChunkCRC(nameBytes, payload); computed != stored {
		if !d.lenient {
			return nil, 0, fmt.Errorf("chunk %q: stored CRC %08X, computed %08X: %w",
				name, stored, computed, ErrChecksum)
		}
		d.log.Warnf("chunk %q: stored CRC %08X does not match computed %08X", name, stored, computed)
	}

	return &RawChunk{name: name, length: length, crc: stored, data: payload}, consumed, nil
}

// checkName verifies that a chunk name is exactly four ASCII letters.
func checkName(name string) error {
	if len(name) != 4 {
		return fmt.Errorf("chunk name %q is not 4 bytes: %w", name, ErrName)
	}
	for i := 0; i < len(name); i++ {
		if !isLetter(name[i]) {
			return fmt.Errorf("invalid character in chunk name %q: %w", name, ErrName)
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
