package lz4

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeBlockLiteralsOnly(t *testing.T) {
	// Token 0x40: literal_len=4, match_len_code=0, no match follows
	// because the source is exhausted right after the literals.
	src := []byte{0x40, 'a', 's', 'd', 'f'}
	out, err := DecodeBlock(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte("asdf")) {
		t.Fatalf("got %q", out)
	}
}

func TestDecodeBlockSimpleRun(t *testing.T) {
	// "hello " + a match with offset 6, encoded length 1 (bias 4) -> "hello hello"
	src := []byte{0x61, 'h', 'e', 'l', 'l', 'o', ' ', 0x06, 0x00}
	out, err := DecodeBlock(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); got != "hello hello" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeBlockExtendedLiteralLength(t *testing.T) {
	// a literal run longer than 15 bytes, requiring the extended-length byte chain
	src := append([]byte{0xf7, 0x12}, []byte("this is longer than 15 characters")...)
	src = append(src, 0x0b, 0x00)
	out, err := DecodeBlock(src)
	if err != nil {
		t.Fatal(err)
	}
	want := "this is longer than 15 characters characters"
	if got := string(out); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDecodeBlockTwoSequences(t *testing.T) {
	// two sequences back to back: a literal+match, then a literal-only tail
	src := []byte{0xb3}
	src = append(src, []byte("Hello there")...)
	src = append(src, 0x06, 0x00)
	src = append(src, 0xf0, 0x12)
	src = append(src, []byte("I am a sentence to be compressed.")...)
	out, err := DecodeBlock(src)
	if err != nil {
		t.Fatal(err)
	}
	want := "Hello there there I am a sentence to be compressed."
	if got := string(out); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDecodeBlockRunEncoding(t *testing.T) {
	// emit one byte b, then a match with offset 1 and match length k
	// decodes to b repeated k+1 times. The wire encoding's minimum match
	// length is 4, so k ranges over values >= 4 here.
	for _, k := range []int{4, 7, 20, 300} {
		matchLen := k - MinMatchLength
		var src []byte
		if matchLen < ExtendedLengthMarker {
			src = []byte{byte((1 << TokenLiteralShift) | matchLen)}
		} else {
			src = []byte{byte((1 << TokenLiteralShift) | ExtendedLengthMarker)}
		}
		src = append(src, 'b')
		src = append(src, 0x01, 0x00) // offset 1
		if matchLen >= ExtendedLengthMarker {
			rem := matchLen - ExtendedLengthMarker
			for rem >= ExtendedLengthContinue {
				src = append(src, ExtendedLengthContinue)
				rem -= ExtendedLengthContinue
			}
			src = append(src, byte(rem))
		}

		out, err := DecodeBlock(src)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		want := bytes.Repeat([]byte("b"), k+1)
		if !bytes.Equal(out, want) {
			t.Fatalf("k=%d: got %d bytes want %d", k, len(out), len(want))
		}
	}
}

func TestDecodeBlockBadMatchOffsetZero(t *testing.T) {
	src := []byte{0x10, 'a', 0x00, 0x00}
	_, err := DecodeBlock(src)
	if !errors.Is(err, ErrBadMatchOffset) {
		t.Fatalf("want ErrBadMatchOffset, got %v", err)
	}
}

func TestDecodeBlockBadMatchOffsetTooFar(t *testing.T) {
	src := []byte{0x10, 'a', 0x05, 0x00} // offset 5 but only 1 byte decoded
	_, err := DecodeBlock(src)
	if !errors.Is(err, ErrBadMatchOffset) {
		t.Fatalf("want ErrBadMatchOffset, got %v", err)
	}
}

func TestDecodeBlockPrematureEndInLiteral(t *testing.T) {
	src := []byte{0x40, 'a', 's'} // literal_len=4 but only 2 bytes follow
	_, err := DecodeBlock(src)
	if !errors.Is(err, ErrPrematureEnd) {
		t.Fatalf("want ErrPrematureEnd, got %v", err)
	}
}

func TestDecodeBlockPrematureEndInOffset(t *testing.T) {
	src := []byte{0x10, 'a', 0x01} // match offset truncated to 1 byte
	_, err := DecodeBlock(src)
	if !errors.Is(err, ErrPrematureEnd) {
		t.Fatalf("want ErrPrematureEnd, got %v", err)
	}
}

func TestDecodeBlockIntoExactFit(t *testing.T) {
	src := []byte{0x61, 'h', 'e', 'l', 'l', 'o', ' ', 0x06, 0x00}
	dst := make([]byte, len("hello hello"))
	n, err := DecodeBlockInto(dst, src)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(dst) || string(dst) != "hello hello" {
		t.Fatalf("got n=%d dst=%q", n, dst)
	}
}

func TestDecodeBlockIntoTooSmall(t *testing.T) {
	src := []byte{0x61, 'h', 'e', 'l', 'l', 'o', ' ', 0x06, 0x00}
	dst := make([]byte, 3)
	_, err := DecodeBlockInto(dst, src)
	if !errors.Is(err, ErrBadMatchLen) {
		t.Fatalf("want ErrBadMatchLen, got %v", err)
	}
}

func TestDecodeBlockBoundsSafetyFuzzSmoke(t *testing.T) {
	// Malformed input must terminate with a typed error or a valid
	// result, never panic or run out of bounds. A handful of adversarial
	// byte patterns exercises the common failure paths without a full
	// fuzzing harness.
	inputs := [][]byte{
		{},
		{0xFF},
		{0xFF, 0xFF, 0xFF},
		{0x00, 0x00, 0x00, 0x00},
		bytes.Repeat([]byte{0xFF}, 64),
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("panic on input %x: %v", in, r)
				}
			}()
			_, _ = DecodeBlock(in)
		}()
	}
}
