package lz4

import "github.com/woozymasta/lz4/internal/xxh32"

// headerChecksum computes the one-byte frame header checksum: the
// second byte of XXH32(headerBytes, seed=0), i.e. (digest >> 8) & 0xFF.
func headerChecksum(headerBytes []byte) byte {
	return byte((xxh32.Sum(headerBytes) >> HeaderChecksumShift) & 0xFF)
}

// blockChecksum computes the per-block XXH32 checksum over the
// block's on-wire bytes (still-compressed, or verbatim if uncompressed).
func blockChecksum(raw []byte) uint32 {
	return xxh32.Sum(raw)
}

// contentChecksum computes the frame-level XXH32 checksum over the
// cumulative uncompressed content of the whole frame.
func contentChecksum(content []byte) uint32 {
	return xxh32.Sum(content)
}
