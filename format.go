package lz4

// LZ4 block and frame format constants.
const (
	// MinMatchLength is the bias added to the encoded match-length
	// nibble: a token's match_len_code of 0 means a 4-byte match.
	MinMatchLength = 4

	// TokenLiteralShift is the bit offset of the literal-length nibble in
	// a sequence token.
	TokenLiteralShift = 4
	// TokenNibbleMask isolates one 4-bit nibble of a sequence token.
	TokenNibbleMask = 0x0F
	// ExtendedLengthMarker is the nibble value (15) that triggers the
	// extended-length byte chain.
	ExtendedLengthMarker = 0x0F
	// ExtendedLengthContinue is the byte value that signals "more
	// extended-length bytes follow."
	ExtendedLengthContinue = 0xFF

	// FrameMagic is the 4-byte little-endian magic identifying an LZ4 frame.
	FrameMagic uint32 = 0x184D2204
	// SkippableMagicMin and SkippableMagicMax bound the little-endian
	// magic range reserved for skippable frames.
	SkippableMagicMin uint32 = 0x184D2A50
	SkippableMagicMax uint32 = 0x184D2A5F

	// descriptor byte (FLG) bit layout.
	flgVersionMask      = 0xC0
	flgVersion1         = 0x40
	flgBlockIndependent = 0x20
	flgBlockChecksum    = 0x10
	flgContentSize      = 0x08
	flgContentChecksum  = 0x04
	flgReserved         = 0x02
	flgDictID           = 0x01

	// block-descriptor byte (BD) bit layout.
	bdReservedMask   = 0x8F
	bdBlockSizeMask  = 0x70
	bdBlockSizeShift = 4

	// data block header (32-bit LE word).
	blockUncompressedFlag uint32 = 1 << 31
	blockSizeMask         uint32 = 0x7FFFFFFF

	// HeaderChecksumShift recovers the stored one-byte header checksum
	// from the full XXH32 digest of the header bytes.
	HeaderChecksumShift = 8
)

// BlockMaxSizeBytes maps the 3-bit block-max-size code (4..7) in the
// block-descriptor byte to its uncompressed byte size.
var BlockMaxSizeBytes = map[int]int{
	4: 64 << 10,
	5: 256 << 10,
	6: 1 << 20,
	7: 4 << 20,
}
