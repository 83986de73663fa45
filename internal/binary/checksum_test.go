package binary

import "testing"

func TestCRC32KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint32
	}{
		{"empty", []byte{}, 0x00000000},
		// Standard CRC-32/IEEE check value.
		{"check string", []byte("123456789"), 0xCBF43926},
		// CRC of a bare IEND chunk (empty payload), as found in every PNG.
		{"IEND", []byte("IEND"), 0xAE426082},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CRC32(tt.input); got != tt.want {
				t.Errorf("CRC32 = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestChunkCRCMatchesConcatenation(t *testing.T) {
	name := []byte("IDAT")
	data := []byte{0x78, 0x9C, 0x03, 0x00, 0x00, 0x00, 0x00, 0x01}

	concat := append(append([]byte{}, name...), data...)
	if got, want := ChunkCRC(name, data), CRC32(concat); got != want {
		t.Errorf("ChunkCRC = 0x%08X, CRC32(name||data) = 0x%08X", got, want)
	}
}

func TestVerifyCRC32(t *testing.T) {
	data := []byte("test data for verification")
	sum := CRC32(data)

	if !VerifyCRC32(data, sum) {
		t.Error("VerifyCRC32 should return true for matching checksum")
	}
	if VerifyCRC32(data, sum+1) {
		t.Error("VerifyCRC32 should return false for non-matching checksum")
	}
}

func BenchmarkChunkCRC(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	name := []byte("IDAT")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ChunkCRC(name, data)
	}
}
