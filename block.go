package lz4

// boundedSource restricts reads to a fixed in-memory window: the raw
// bytes of one compressed data block. The block decoder never knows
// about frames; it only sees this window.
type boundedSource struct {
	data []byte
	pos  int
}

func newBoundedSource(data []byte) *boundedSource {
	return &boundedSource{data: data}
}

// readByte reads exactly one byte; ok is false once the window is
// exhausted, leaving callers to translate that into ErrPrematureEnd.
func (s *boundedSource) readByte() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

func (s *boundedSource) exhausted() bool {
	return s.pos >= len(s.data)
}

// DecodeBlock decodes a complete LZ4 block with no prior knowledge of
// its decompressed size and returns a freshly owned buffer.
func DecodeBlock(src []byte) ([]byte, error) {
	return appendBlock(nil, src)
}

// DecodeBlockInto decodes src into dst, a caller-owned buffer sized to
// the exact expected decompressed length. It never grows dst: a match
// or literal run that would write past len(dst) fails with
// ErrBadMatchLen rather than silently truncating. It returns the
// number of bytes written; a src that decodes to fewer than len(dst)
// bytes is not an error, and the count is then smaller than len(dst).
func DecodeBlockInto(dst, src []byte) (int, error) {
	s := newBoundedSource(src)
	pos := 0

	for !s.exhausted() {
		token, ok := s.readByte()
		if !ok {
			return pos, ErrPrematureEnd
		}

		litLen, err := decodeLength(s, int(token>>TokenLiteralShift)&TokenNibbleMask)
		if err != nil {
			return pos, err
		}

		if pos+litLen > len(dst) {
			return pos, ErrBadMatchLen
		}
		for i := 0; i < litLen; i++ {
			b, ok := s.readByte()
			if !ok {
				return pos, ErrPrematureEnd
			}
			dst[pos+i] = b
		}
		pos += litLen

		if s.exhausted() {
			return pos, nil
		}

		offLo, ok := s.readByte()
		if !ok {
			return pos, ErrPrematureEnd
		}
		offHi, ok := s.readByte()
		if !ok {
			return pos, ErrPrematureEnd
		}
		offset := int(offLo) | int(offHi)<<8
		if offset == 0 {
			return pos, ErrBadMatchOffset
		}

		matchLen, err := decodeLength(s, int(token)&TokenNibbleMask)
		if err != nil {
			return pos, err
		}
		matchLen += MinMatchLength

		if offset > pos {
			return pos, ErrBadMatchOffset
		}
		if pos+matchLen > len(dst) {
			return pos, ErrBadMatchLen
		}

		copyMatch(dst, pos, offset, matchLen)
		pos += matchLen
	}

	return pos, nil
}

// appendBlock appends to dst the decompressed bytes encoded by the
// sequence stream in src: one or more sequences of literal-run plus
// optional match, each sequence's lengths read via the token and
// extended-length byte-chain protocol.
//
// dst is the growable output buffer the block shares with its caller
// (a frame's data blocks decode one after another into the frame's
// running output); it is returned grown by the number of bytes this
// block contributed.
func appendBlock(dst []byte, src []byte) ([]byte, error) {
	s := newBoundedSource(src)

	for !s.exhausted() {
		token, ok := s.readByte()
		if !ok {
			return dst, ErrPrematureEnd
		}

		litLen, err := decodeLength(s, int(token>>TokenLiteralShift)&TokenNibbleMask)
		if err != nil {
			return dst, err
		}

		if litLen > 0 {
			litStart := len(dst)
			dst = append(dst, make([]byte, litLen)...)
			for i := 0; i < litLen; i++ {
				b, ok := s.readByte()
				if !ok {
					return dst, ErrPrematureEnd
				}
				dst[litStart+i] = b
			}
		}

		// If the source is now exhausted, this sequence is the block's
		// last and has no match.
		if s.exhausted() {
			return dst, nil
		}

		offLo, ok := s.readByte()
		if !ok {
			return dst, ErrPrematureEnd
		}
		offHi, ok := s.readByte()
		if !ok {
			return dst, ErrPrematureEnd
		}
		offset := int(offLo) | int(offHi)<<8
		if offset == 0 {
			return dst, ErrBadMatchOffset
		}

		matchLen, err := decodeLength(s, int(token)&TokenNibbleMask)
		if err != nil {
			return dst, err
		}
		matchLen += MinMatchLength

		start := len(dst)
		if offset > start {
			return dst, ErrBadMatchOffset
		}

		dst = extendMatch(dst, start, offset, matchLen)
	}

	return dst, nil
}

// decodeLength reads a sequence-token nibble and, if it equals the
// extended-length marker (15), the chain of continuation bytes that
// follow: read bytes until one is < 255, accumulating all of them onto
// the nibble value.
func decodeLength(s *boundedSource, nibble int) (int, error) {
	length := nibble
	if nibble != ExtendedLengthMarker {
		return length, nil
	}

	for {
		b, ok := s.readByte()
		if !ok {
			return 0, ErrPrematureEnd
		}
		length += int(b)
		if b != ExtendedLengthContinue {
			break
		}
	}
	return length, nil
}

// extendMatch grows dst by matchLen bytes, copied from start-offset
// within dst itself. The growth happens before the copy runs: dst may
// need to reallocate, and that reallocation must not move the source
// region out from under an in-progress copy.
func extendMatch(dst []byte, start, offset, matchLen int) []byte {
	dst = append(dst, make([]byte, matchLen)...)
	copyMatch(dst, start, offset, matchLen)
	return dst
}

// copyMatch fills dst[start:start+matchLen] from dst[start-offset:]
// into a buffer that is already sized to hold it. When offset >=
// matchLen the two regions don't overlap and a single bulk copy
// suffices; when offset < matchLen the source region overlaps the
// part of the destination already written by this same call, so the
// copy proceeds one byte at a time, each step seeing the byte the
// previous step just wrote — this self-overlap is how LZ4 encodes
// runs shorter than the match length.
func copyMatch(dst []byte, start, offset, matchLen int) {
	src := start - offset
	if offset >= matchLen {
		copy(dst[start:start+matchLen], dst[src:src+matchLen])
		return
	}
	for i := 0; i < matchLen; i++ {
		dst[start+i] = dst[src+i]
	}
}
