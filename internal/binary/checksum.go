package binary

import "hash/crc32"

// CRC32 computes the CRC-32/IEEE checksum used by PNG chunks.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ChunkCRC computes the chunk checksum over the 4-byte name followed by the
// payload, without concatenating them.
func ChunkCRC(name, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(name)
	h.Write(data)
	return h.Sum32()
}

// VerifyCRC32 checks data against an expected checksum.
func VerifyCRC32(data []byte, expected uint32) bool {
	return CRC32(data) == expected
}
