package png

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultCompressionLevel is used when callers pass no explicit level.
const DefaultCompressionLevel = zlib.BestCompression

// ImageData is the IDAT chunk: a slice of the image's compressed pixel
// stream. The payload stays opaque here; Decompress and Compress delegate to
// zlib, and interpreting the decompressed scanlines is the caller's business
// (see DecodeScanlines).
type ImageData struct {
	RawChunk
}

// NewImageData creates an IDAT chunk holding raw compressed at the given
// zlib level.
func NewImageData(raw []byte, level int) (*ImageData, error) {
	c := &ImageData{RawChunk: RawChunk{name: TagData}}
	if err := c.Compress(raw, level); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeImageData(raw *RawChunk, d *decoder) (Chunk, error) {
	return &ImageData{RawChunk: *raw}, nil
}

// Decompress inflates the payload. Note that the format allows the
// compressed stream to span several IDAT chunks; a single chunk's payload is
// only guaranteed to be a complete zlib stream when it is the only one. Use
// Container.PixelData for the general case.
func (c *ImageData) Decompress() ([]byte, error) {
	return inflate(c.data)
}

// Compress deflates raw at the given zlib level and replaces the payload.
func (c *ImageData) Compress(raw []byte, level int) error {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("zlib flush: %w", err)
	}
	c.data = buf.Bytes()
	return nil
}

func (c *ImageData) String() string {
	return fmt.Sprintf("<Chunk:IDAT length=%d crc=%08X>", c.length, c.crc)
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return out, nil
}
