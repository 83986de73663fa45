package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderIntegers(t *testing.T) {
	// 0x01, 0x0203, 0x04050607 big-endian
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	r := NewReader(buf)

	v8, err := r.ReadUint8()
	if err != nil || v8 != 0x01 {
		t.Errorf("ReadUint8 = %#x, %v; want 0x01", v8, err)
	}

	v16, err := r.ReadUint16()
	if err != nil || v16 != 0x0203 {
		t.Errorf("ReadUint16 = %#x, %v; want 0x0203", v16, err)
	}

	v32, err := r.ReadUint32()
	if err != nil || v32 != 0x04050607 {
		t.Errorf("ReadUint32 = %#x, %v; want 0x04050607", v32, err)
	}

	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Reader) error
	}{
		{"uint16", func(r *Reader) error { _, err := r.ReadUint16(); return err }},
		{"uint32", func(r *Reader) error { _, err := r.ReadUint32(); return err }},
		{"bytes", func(r *Reader) error { _, err := r.ReadBytes(2); return err }},
		{"skip", func(r *Reader) error { return r.Skip(2) }},
		{"peek", func(r *Reader) error { _, err := r.Peek(2); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader([]byte{0x00})
			if err := tt.read(r); !errors.Is(err, ErrShortBuffer) {
				t.Errorf("got %v, want ErrShortBuffer", err)
			}
		})
	}
}

func TestReaderPosTracking(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if _, err := r.ReadUint32(); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 4 {
		t.Errorf("Pos = %d, want 4", r.Pos())
	}

	if _, err := r.Peek(2); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 4 {
		t.Errorf("Peek advanced position to %d", r.Pos())
	}

	if err := r.Skip(2); err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 6 || r.Remaining() != 2 {
		t.Errorf("Pos = %d, Remaining = %d; want 6, 2", r.Pos(), r.Remaining())
	}
}

func TestReaderReadBytesAliases(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0xCC}
	r := NewReader(buf)

	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, buf) {
		t.Errorf("ReadBytes = %x, want %x", b, buf)
	}
}

func TestReaderNegativeCount(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.ReadBytes(-1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("ReadBytes(-1) = %v, want ErrShortBuffer", err)
	}
}
