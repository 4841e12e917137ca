// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// Block decoder errors.
	ErrPrematureEnd   = errors.New("lz4: source exhausted mid-sequence")
	ErrBadMatchOffset = errors.New("lz4: match offset is zero or exceeds decoded length")
	ErrBadMatchLen    = errors.New("lz4: match would exceed bounded output")

	// Frame decoder errors.
	ErrBadStartMagic         = errors.New("lz4: unrecognized frame magic")
	ErrReservedBitSet        = errors.New("lz4: reserved descriptor bit is set")
	ErrInvalidVersion        = errors.New("lz4: unsupported frame descriptor version")
	ErrDictionaryUnsupported = errors.New("lz4: dictionary-based frames are not supported")
	ErrInvalidMaxSize        = errors.New("lz4: invalid block-max-size code")
	ErrChecksumMismatch      = errors.New("lz4: checksum mismatch")

	// Stream adapter errors.
	ErrReaderClosed = errors.New("lz4: reader is closed")
	ErrNilSource    = errors.New("lz4: source is nil")
)
