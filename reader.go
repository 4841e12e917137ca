package lz4

import "io"

// Reader wraps a byte source, decodes one frame at a time via
// DecodeFrame, and serves arbitrary-size reads by draining each
// decoded frame before pulling the next. Frame boundaries are never
// observable to the consumer: concatenated frames, optionally
// interleaved with skippable ones, read back as a single logical
// stream.
type Reader struct {
	src    io.Reader
	opts   *FrameOptions
	buffer []byte // the currently decoded frame's output (owned)
	offset int    // next undelivered byte within buffer
	closed bool
}

// NewReader returns a Reader that decodes frames from src on demand.
// A nil opts uses DefaultFrameOptions().
func NewReader(src io.Reader, opts *FrameOptions) *Reader {
	if opts == nil {
		opts = DefaultFrameOptions()
	}
	return &Reader{src: src, opts: opts}
}

// Read implements io.Reader: it copies already-decoded bytes first,
// then decodes further frames only as needed to fill dst, returning a
// partial read only when the underlying source runs out mid-stream
// and a clean (io.EOF, n=0) return only between frames.
func (r *Reader) Read(dst []byte) (int, error) {
	if r.closed {
		return 0, ErrReaderClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(dst) {
		if r.offset < len(r.buffer) {
			n := copy(dst[total:], r.buffer[r.offset:])
			r.offset += n
			total += n
			if total == len(dst) {
				return total, nil
			}
		}

		// buffer drained; release it before decoding the next frame so a
		// failed decode never leaves a stale buffer reachable.
		r.buffer = nil
		r.offset = 0

		frame, err := DecodeFrame(r.src, r.opts)
		if err == io.EOF {
			// Clean end-of-stream between frames. A short, non-empty read is
			// reported without an error per io.Reader's contract; an empty
			// one must surface io.EOF itself, or callers like io.ReadAll /
			// io.Copy would loop forever re-decoding an exhausted source.
			if total == 0 {
				return 0, io.EOF
			}
			return total, nil
		}
		if err != nil {
			return total, err
		}

		r.buffer = frame
	}

	return total, nil
}

// Close releases the Reader's buffered frame. It does not close the
// underlying source; that lifetime belongs to the caller.
func (r *Reader) Close() error {
	r.buffer = nil
	r.offset = 0
	r.closed = true
	return nil
}
