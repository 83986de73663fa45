package png

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestImageDataCompressRoundtrip(t *testing.T) {
	raw := bytes.Repeat([]byte("scanline soup "), 100)

	for _, level := range []int{zlib.NoCompression, zlib.BestSpeed, zlib.BestCompression} {
		c, err := NewImageData(raw, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		got, err := c.Decompress()
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("level %d: decompressed data differs", level)
		}
	}
}

func TestImageDataEmptyPayloadRoundtrip(t *testing.T) {
	c, err := NewImageData(nil, DefaultCompressionLevel)
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d bytes, want 0", len(got))
	}
}

func TestImageDataInvalidLevel(t *testing.T) {
	if _, err := NewImageData([]byte("x"), 42); err == nil {
		t.Error("expected an error for an out-of-range compression level")
	}
}

func TestImageDataDecompressGarbage(t *testing.T) {
	c := &ImageData{RawChunk: RawChunk{name: TagData, data: []byte("not zlib at all")}}
	if _, err := c.Decompress(); err == nil {
		t.Error("expected an error for a non-zlib payload")
	}
}

func TestImageDataSurvivesContainerRoundtrip(t *testing.T) {
	raw := []byte("opaque compressed payload carrier")
	c, err := NewImageData(raw, DefaultCompressionLevel)
	if err != nil {
		t.Fatal(err)
	}

	encoded := mustEncode(t, c)
	decoded, _, err := newTestDecoder(false).decodeChunk(encoded)
	if err != nil {
		t.Fatal(err)
	}
	variant, err := newTestDecoder(false).dispatch(decoded)
	if err != nil {
		t.Fatal(err)
	}
	data, ok := variant.(*ImageData)
	if !ok {
		t.Fatalf("dispatch produced %T", variant)
	}
	got, err := data.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Error("payload did not survive the container round trip")
	}
}
