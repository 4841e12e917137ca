package lz4

import (
	"bytes"
	"io"
	"testing"
)

func TestReaderConcatenatedFrames(t *testing.T) {
	// Two well-formed frames concatenated decode to X ++ Y, with no
	// observable boundary.
	src := hexBytes(t, "04224d184c401400000000000000ef16000000f0056669727374206672616d65207061796c6f61642000"+
		"00000056e4d1aa04224d184c401400000000000000ef16000000f0057365636f6e64206672616d65207061796c6f"+
		"6164000000003aecfd5e")

	r := NewReader(bytes.NewReader(src), nil)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "first frame payload second frame payload"
	if string(out) != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestReaderSkippableFrameIsTransparent(t *testing.T) {
	// A skippable frame between two data frames does not alter the
	// concatenation result.
	src := hexBytes(t, "04224d184c401400000000000000ef16000000f0056669727374206672616d65207061796c6f61642000"+
		"00000056e4d1aa502a4d180400000058585858"+
		"04224d184c401400000000000000ef16000000f0057365636f6e64206672616d65207061796c6f"+
		"6164000000003aecfd5e")

	r := NewReader(bytes.NewReader(src), nil)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "first frame payload second frame payload"
	if string(out) != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestReaderPartialReadsAcrossFrames(t *testing.T) {
	src := hexBytes(t, "04224d184c401400000000000000ef16000000f0056669727374206672616d65207061796c6f61642000"+
		"00000056e4d1aa04224d184c401400000000000000ef16000000f0057365636f6e64206672616d65207061796c6f"+
		"6164000000003aecfd5e")
	r := NewReader(bytes.NewReader(src), nil)

	var got bytes.Buffer
	buf := make([]byte, 7) // small, forces many Read calls and a frame transition mid-stream
	for {
		n, err := r.Read(buf)
		got.Write(buf[:n])
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatal(err)
		}
		if n == 0 {
			break
		}
	}
	want := "first frame payload second frame payload"
	if got.String() != want {
		t.Fatalf("got %q want %q", got.String(), want)
	}
}

func TestReaderEmptySourceIsCleanEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), nil)
	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if n != 0 {
		t.Fatalf("want n=0, got %d", n)
	}
	if err != nil && err != io.EOF {
		t.Fatalf("want nil or io.EOF, got %v", err)
	}
}

func TestReaderCloseThenRead(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), nil)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	_, err := r.Read(make([]byte, 4))
	if err != ErrReaderClosed {
		t.Fatalf("want ErrReaderClosed, got %v", err)
	}
}

func TestReaderZeroLengthReadIsNoop(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), nil)
	n, err := r.Read(nil)
	if n != 0 || err != nil {
		t.Fatalf("got n=%d err=%v", n, err)
	}
}

