package lz4

import "io"

// Decompress decodes exactly one frame from src using strict,
// checksum-verifying defaults. Use DecodeFrame directly to pass
// custom FrameOptions (e.g. to disable verification or attach a
// Logger).
func Decompress(src io.Reader) ([]byte, error) {
	return DecodeFrame(src, DefaultFrameOptions())
}

// DecompressStream returns a Reader that pulls and concatenates
// successive frames from src on demand. There is no separate
// allocator parameter — buffers are ordinary Go slices released to
// the garbage collector on Close.
func DecompressStream(src io.Reader, opts *FrameOptions) *Reader {
	return NewReader(src, opts)
}
