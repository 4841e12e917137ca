// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz4

package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/woozymasta/lz4"
)

// run dispatches to the single-file or multi-file path. A bare `-`
// (or no args at all) reads from stdin, matching the reference lz4
// CLI's stdin/stdout pipe mode.
func run(logger *zerolog.Logger, opts options, args []string) error {
	switch len(args) {
	case 0:
		return decodeOne(logger, opts, "-")
	case 1:
		return decodeOne(logger, opts, args[0])
	default:
		return decodeMany(logger, opts, args)
	}
}

// frameOptionsFor builds the FrameOptions this invocation's flags
// imply: --no-checksum disables verification. The logger is always
// attached so the content-size-mismatch warning surfaces.
func frameOptionsFor(opts options, logger *zerolog.Logger) *lz4.FrameOptions {
	return &lz4.FrameOptions{
		VerifyChecksums: !opts.noChecksum,
		Logger:          logger,
	}
}

// decodeOne decodes a single input (path or "-" for stdin) per the
// flags in opts, in the shape of a small object-get-and-store CLI
// command: open input, decode, write output.
func decodeOne(logger *zerolog.Logger, opts options, input string) error {
	src, err := openInput(input)
	if err != nil {
		return err
	}
	defer src.Close()

	r := lz4.NewReader(src, frameOptionsFor(opts, logger))
	defer r.Close()

	if opts.test {
		n, err := io.Copy(io.Discard, r)
		if err != nil {
			return err
		}
		logger.Info().Str("input", displayName(input)).Int64("bytes", n).Msg("lz4d: integrity check passed")
		return nil
	}

	dst, closeDst, err := openOutput(opts, input)
	if err != nil {
		return err
	}
	defer closeDst()

	n, err := io.Copy(dst, r)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", displayName(input)).Int64("bytes", n).Msg("lz4d: decoded")
	return nil
}

func displayName(input string) string {
	if input == "-" {
		return "<stdin>"
	}
	return input
}

func openInput(input string) (io.ReadCloser, error) {
	if input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(input)
}

// openOutput resolves the destination implied by --output (or, absent
// that flag, by stripping a ".lz4" suffix from the input name) and
// returns it along with a cleanup function. A single stdin input with
// no --output writes to stdout.
func openOutput(opts options, input string) (io.Writer, func(), error) {
	if opts.output != "" {
		f, err := os.OpenFile(opts.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}

	if input == "-" {
		return os.Stdout, func() {}, nil
	}

	dest := strings.TrimSuffix(input, ".lz4")
	if dest == input {
		dest = input + ".decoded"
	}
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
