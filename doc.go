/*
Package lz4 implements decoding of the LZ4 compressed data format: the
raw block codec (literal/match sequence stream), the frame container
(magic, descriptor, checksummed data blocks, optional content
checksum), and a streaming reader adapter. It is decode-only — there is
no compressor here, and dictionary-based frames are rejected with
ErrDictionaryUnsupported.

Use DecodeBlock to decode a standalone LZ4 block with no prior
knowledge of its decompressed size, or DecodeBlockInto when the exact
size is known up front and you want to decode into a caller-owned
buffer without growing it.

Use DecodeFrame (or the Decompress shorthand) to decode exactly one
frame from an io.Reader. Use NewReader (or DecompressStream) to wrap a
source that may contain several concatenated frames, optionally
interleaved with skippable frames: it presents them as one continuous
io.Reader, the way the reference lz4 command line tool treats
concatenated .lz4 files.

# Examples

Decode a single frame read in full from a byte slice:

	out, err := lz4.Decompress(bytes.NewReader(encoded))
	if err != nil {
		return err
	}

Stream-decode a file that may hold multiple concatenated frames:

	r := lz4.NewReader(f, nil)
	defer r.Close()
	n, err := io.Copy(dst, r)

Decode with checksum verification disabled and a logger attached for
the content-size-mismatch warning path:

	logger := zerolog.New(os.Stderr)
	opts := &lz4.FrameOptions{VerifyChecksums: false, Logger: &logger}
	out, err := lz4.DecodeFrame(src, opts)

Decode a raw block into a buffer sized to the already-known
decompressed length:

	buf := make([]byte, expectedLen)
	n, err := lz4.DecodeBlockInto(buf, encoded)
*/
package lz4
