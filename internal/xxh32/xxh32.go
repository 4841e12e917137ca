// Package xxh32 computes the XXH32 checksum (seed 0) used at the three
// checksum sites of the LZ4 frame format: header, per-block, and content.
package xxh32

import "github.com/OneOfOne/xxhash"

// Sum returns the XXH32 digest of data with seed 0.
func Sum(data []byte) uint32 {
	return xxhash.Checksum32(data)
}
