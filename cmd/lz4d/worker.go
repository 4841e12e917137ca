// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz4

package main

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// decodeMany decodes each of files independently through a small
// worker pool: every file gets its own Reader over its own source,
// and a failure on one file never affects another's result.
func decodeMany(logger *zerolog.Logger, opts options, files []string) error {
	numWorkers := runtime.NumCPU()
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	queue := make(chan string, len(files))
	for _, f := range files {
		queue <- f
	}
	close(queue)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	worker := func() {
		defer wg.Done()
		for file := range queue {
			if err := decodeOne(logger, opts, file); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", file, err)
				}
				mu.Unlock()
				logger.Error().Err(err).Str("input", file).Msg("lz4d: decode failed")
				continue
			}
			logger.Info().Str("input", file).Msg("lz4d: decoded")
		}
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go worker()
	}
	wg.Wait()

	return firstErr
}
