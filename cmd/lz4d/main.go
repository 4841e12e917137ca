// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz4

// Command lz4d decodes LZ4-framed data from a file or stdin.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd(&logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("lz4d: decode failed")
		os.Exit(exitCodeFor(err))
	}
}
