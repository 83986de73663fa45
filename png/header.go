package png

import (
	"fmt"

	"github.com/robert-malhotra/go-png/internal/binary"
)

// headerPayloadSize is the fixed size of the IHDR payload.
const headerPayloadSize = 13

// ColorType identifies the sample layout of the image.
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorRGB            ColorType = 2
	ColorPalette        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorRGBA           ColorType = 6
)

var colorTypeNames = map[ColorType]string{
	ColorGrayscale:      "Grayscale",
	ColorRGB:            "RGB",
	ColorPalette:        "Palette",
	ColorGrayscaleAlpha: "Grayscale+Alpha",
	ColorRGBA:           "RGBA",
}

// allowedBitDepths lists the bit depths the format defines per color type.
var allowedBitDepths = map[ColorType][]uint8{
	ColorGrayscale:      {1, 2, 4, 8, 16},
	ColorRGB:            {8, 16},
	ColorPalette:        {1, 2, 4, 8},
	ColorGrayscaleAlpha: {8, 16},
	ColorRGBA:           {8, 16},
}

// samplesPerPixel gives the number of samples each pixel carries. Palette
// pixels are single indices into the palette.
var samplesPerPixel = map[ColorType]int{
	ColorGrayscale:      1,
	ColorRGB:            3,
	ColorPalette:        1,
	ColorGrayscaleAlpha: 2,
	ColorRGBA:           4,
}

func (c ColorType) String() string {
	if name, ok := colorTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color type %d", uint8(c))
}

// Samples returns the number of samples per pixel, or 0 for an unknown
// color type.
func (c ColorType) Samples() int {
	return samplesPerPixel[c]
}

// allowsBitDepth reports whether the format defines depth for this color
// type. Unknown color types allow nothing.
func (c ColorType) allowsBitDepth(depth uint8) bool {
	for _, d := range allowedBitDepths[c] {
		if d == depth {
			return true
		}
	}
	return false
}

// ImageHeader is the IHDR chunk: image geometry and sample format. Modify
// the fields and Encode to rebuild the payload.
type ImageHeader struct {
	RawChunk
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8 // always 0 (deflate)
	FilterMethod      uint8 // always 0 (adaptive filtering, 5 types)
	InterlaceMethod   uint8 // 0 (none) or 1 (Adam7)
}

// NewImageHeader creates an IHDR chunk for the given geometry.
func NewImageHeader(width, height uint32, bitDepth uint8, colorType ColorType) *ImageHeader {
	return &ImageHeader{
		RawChunk:  RawChunk{name: TagHeader},
		Width:     width,
		Height:    height,
		BitDepth:  bitDepth,
		ColorType: colorType,
	}
}

func decodeImageHeader(raw *RawChunk, d *decoder) (Chunk, error) {
	if len(raw.data) != headerPayloadSize {
		err := fmt.Errorf("header payload is %d bytes, want %d: %w", len(raw.data), headerPayloadSize, ErrStructural)
		if !d.lenient {
			return nil, err
		}
		d.log.Warnf("keeping undecodable header as a raw chunk: %v", err)
		return raw, nil
	}

	r := binary.NewReader(raw.data)
	h := &ImageHeader{RawChunk: *raw}
	h.Width, _ = r.ReadUint32()
	h.Height, _ = r.ReadUint32()
	depth, _ := r.ReadUint8()
	h.BitDepth = depth
	ct, _ := r.ReadUint8()
	h.ColorType = ColorType(ct)
	h.CompressionMethod, _ = r.ReadUint8()
	h.FilterMethod, _ = r.ReadUint8()
	h.InterlaceMethod, _ = r.ReadUint8()

	// Nonstandard producers exist; geometry and depth problems are logged,
	// never fatal.
	if h.Width == 0 || h.Height == 0 {
		d.log.Warnf("header declares a %dx%d image", h.Width, h.Height)
	}
	if !h.ColorType.allowsBitDepth(h.BitDepth) {
		d.log.Warnf("bit depth %d is not defined for %s", h.BitDepth, h.ColorType)
	}
	return h, nil
}

// SamplesPerPixel returns the number of samples in one pixel.
func (h *ImageHeader) SamplesPerPixel() int {
	return h.ColorType.Samples()
}

// BitsPerPixel returns the packed size of one pixel in bits.
func (h *ImageHeader) BitsPerPixel() int {
	return h.SamplesPerPixel() * int(h.BitDepth)
}

// Encode rebuilds the 13-byte payload from the header fields, then
// serializes the chunk.
func (h *ImageHeader) Encode(opts ...EncodeOption) ([]byte, error) {
	w := binary.NewWriter()
	w.WriteUint32(h.Width)
	w.WriteUint32(h.Height)
	w.WriteUint8(h.BitDepth)
	w.WriteUint8(uint8(h.ColorType))
	w.WriteUint8(h.CompressionMethod)
	w.WriteUint8(h.FilterMethod)
	w.WriteUint8(h.InterlaceMethod)
	h.data = w.Bytes()
	return h.RawChunk.Encode(opts...)
}

func (h *ImageHeader) String() string {
	return fmt.Sprintf("<Chunk:IHDR geometry=%dx%d bit_depth=%d color_type=%s>",
		h.Width, h.Height, h.BitDepth, h.ColorType)
}
