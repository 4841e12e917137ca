package lz4

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// FrameOptions configures DecodeFrame and the stream adapter built on
// top of it. The zero value skips checksum verification and performs
// no logging; a nil *FrameOptions means DefaultFrameOptions(), which
// verifies every checksum.
type FrameOptions struct {
	// VerifyChecksums toggles header, per-block and content XXH32
	// verification uniformly. Bytes are always consumed; only the
	// comparison is skipped when false.
	VerifyChecksums bool

	// Logger receives the content-size mismatch warning: a declared
	// content size that disagrees with the decoded length is always
	// logged, never turned into an error. A nil Logger is treated as
	// disabled.
	Logger *zerolog.Logger
}

// DefaultFrameOptions returns strict, silent options: verify every
// checksum, log nothing.
func DefaultFrameOptions() *FrameOptions {
	return &FrameOptions{VerifyChecksums: true}
}

func (o *FrameOptions) logger() *zerolog.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// FrameDescriptor holds the fields unpacked from an LZ4 frame's
// descriptor.
type FrameDescriptor struct {
	Version            int
	BlockIndependent   bool
	BlockChecksum      bool
	ContentSizePresent bool
	ContentChecksum    bool
	DictIDPresent      bool
	BlockMaxSizeCode   int
	BlockMaxSize       int
	ContentSize        uint64
	HeaderChecksum     byte
}

// headerAccumulator collects header bytes in on-wire order as they
// are read, so the header checksum window (2, 6, 10, or 14 bytes
// depending on which optional fields are present) never depends on
// re-serializing the parsed descriptor.
type headerAccumulator struct {
	buf []byte
}

func (h *headerAccumulator) record(b []byte) {
	h.buf = append(h.buf, b...)
}

// readExact reads exactly len(buf) bytes from r, translating a clean
// EOF (zero bytes read) into io.EOF so frame-boundary callers can
// distinguish it from a mid-field truncation, and any other short read
// into ErrPrematureEnd.
func readExact(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if n == 0 && err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return ErrPrematureEnd
	}
	return nil
}

// readFrameDescriptor reads the descriptor byte, block-descriptor
// byte, optional fields, and verifies the header checksum.
func readFrameDescriptor(r io.Reader, opts *FrameOptions) (*FrameDescriptor, error) {
	var h headerAccumulator

	var head [2]byte
	if err := readExact(r, head[:]); err != nil {
		if err == io.EOF {
			return nil, ErrPrematureEnd
		}
		return nil, err
	}
	h.record(head[:])

	flg, bd := head[0], head[1]

	if flg&flgReserved != 0 {
		return nil, ErrReservedBitSet
	}
	version := int(flg&flgVersionMask) >> 6
	if flg&flgVersionMask != flgVersion1 {
		return nil, fmt.Errorf("%w: got version field %d", ErrInvalidVersion, version)
	}
	if bd&bdReservedMask != 0 {
		return nil, ErrReservedBitSet
	}

	desc := &FrameDescriptor{
		Version:            1,
		BlockIndependent:   flg&flgBlockIndependent != 0,
		BlockChecksum:      flg&flgBlockChecksum != 0,
		ContentSizePresent: flg&flgContentSize != 0,
		ContentChecksum:    flg&flgContentChecksum != 0,
		DictIDPresent:      flg&flgDictID != 0,
	}

	desc.BlockMaxSizeCode = int(bd&bdBlockSizeMask) >> bdBlockSizeShift
	maxSize, ok := BlockMaxSizeBytes[desc.BlockMaxSizeCode]
	if !ok {
		return nil, ErrInvalidMaxSize
	}
	desc.BlockMaxSize = maxSize

	if desc.ContentSizePresent {
		var sizeBytes [8]byte
		if err := readExact(r, sizeBytes[:]); err != nil {
			return nil, ErrPrematureEnd
		}
		h.record(sizeBytes[:])
		desc.ContentSize = binary.LittleEndian.Uint64(sizeBytes[:])
	}

	if desc.DictIDPresent {
		var dictID [4]byte
		if err := readExact(r, dictID[:]); err != nil {
			return nil, ErrPrematureEnd
		}
		h.record(dictID[:])
		return nil, ErrDictionaryUnsupported
	}

	var hc [1]byte
	if err := readExact(r, hc[:]); err != nil {
		return nil, ErrPrematureEnd
	}
	desc.HeaderChecksum = hc[0]

	if opts == nil || opts.VerifyChecksums {
		want := headerChecksum(h.buf)
		if want != desc.HeaderChecksum {
			return nil, fmt.Errorf("%w: header checksum got=%#x want=%#x", ErrChecksumMismatch, desc.HeaderChecksum, want)
		}
	}

	return desc, nil
}

// readMagic reads the 4-byte little-endian frame magic. A clean EOF
// here (nothing at all read) is a non-fatal end-of-stream; everything
// else is propagated as a failure.
func readMagic(r io.Reader) (uint32, error) {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, ErrPrematureEnd
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// DecodeFrame consumes exactly one frame from src and returns its
// uncompressed content. A clean io.EOF at the frame-magic boundary is
// returned verbatim so callers (notably the stream adapter) can treat
// it as a non-fatal end-of-stream rather than a decode failure.
func DecodeFrame(src io.Reader, opts *FrameOptions) ([]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if opts == nil {
		opts = DefaultFrameOptions()
	}

	magic, err := readMagic(src)
	if err != nil {
		return nil, err
	}

	switch {
	case magic == FrameMagic:
		return decodeLZ4Frame(src, opts)
	case magic >= SkippableMagicMin && magic <= SkippableMagicMax:
		return decodeSkippableFrame(src)
	default:
		return nil, fmt.Errorf("%w: %#08x", ErrBadStartMagic, magic)
	}
}

// decodeSkippableFrame reads a 4-byte size and discards that many
// bytes, always yielding an empty payload.
func decodeSkippableFrame(src io.Reader) ([]byte, error) {
	var sizeBuf [4]byte
	if err := readExact(src, sizeBuf[:]); err != nil {
		return nil, ErrPrematureEnd
	}
	size := binary.LittleEndian.Uint32(sizeBuf[:])

	if _, err := io.CopyN(io.Discard, src, int64(size)); err != nil {
		return nil, ErrPrematureEnd
	}
	return []byte{}, nil
}

// decodeLZ4Frame decodes the descriptor, data blocks, and optional
// content checksum once the LZ4 magic has already been consumed.
func decodeLZ4Frame(src io.Reader, opts *FrameOptions) ([]byte, error) {
	desc, err := readFrameDescriptor(src, opts)
	if err != nil {
		return nil, err
	}

	var out []byte

	for {
		var header [4]byte
		if err := readExact(src, header[:]); err != nil {
			return nil, ErrPrematureEnd
		}
		word := binary.LittleEndian.Uint32(header[:])
		if word == 0 {
			break // an all-zero header word marks the end of the data blocks
		}

		uncompressed := word&blockUncompressedFlag != 0
		blockSize := word & blockSizeMask

		raw := make([]byte, blockSize)
		if err := readExact(src, raw); err != nil {
			return nil, ErrPrematureEnd
		}

		if desc.BlockChecksum {
			var bc [4]byte
			if err := readExact(src, bc[:]); err != nil {
				return nil, ErrPrematureEnd
			}
			if opts.VerifyChecksums {
				want := binary.LittleEndian.Uint32(bc[:])
				got := blockChecksum(raw)
				if got != want {
					return nil, fmt.Errorf("%w: block checksum got=%#x want=%#x", ErrChecksumMismatch, got, want)
				}
			}
		}

		if uncompressed {
			out = append(out, raw...)
		} else {
			out, err = appendBlock(out, raw)
			if err != nil {
				return nil, err
			}
		}
	}

	if desc.ContentChecksum {
		var cc [4]byte
		if err := readExact(src, cc[:]); err != nil {
			return nil, ErrPrematureEnd
		}
		if opts.VerifyChecksums {
			want := binary.LittleEndian.Uint32(cc[:])
			got := contentChecksum(out)
			if got != want {
				return nil, fmt.Errorf("%w: content checksum got=%#x want=%#x", ErrChecksumMismatch, got, want)
			}
		}
	}

	if desc.ContentSizePresent && uint64(len(out)) != desc.ContentSize {
		// A mismatch is always logged, never treated as a decode failure.
		opts.logger().Warn().
			Uint64("declared", desc.ContentSize).
			Int("decoded", len(out)).
			Msg("lz4: content size does not match decoded length")
	}

	return out, nil
}
