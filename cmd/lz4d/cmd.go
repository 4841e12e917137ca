// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz4

package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the flags accepted by lz4d.
type options struct {
	output     string
	keep       bool
	test       bool
	verbose    bool
	noChecksum bool
}

// usageError marks a failure that should exit with code 2 (malformed
// invocation) rather than code 1 (a genuine decode failure).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var u *usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

func newRootCmd(logger *zerolog.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "lz4d [flags] [file ...]",
		Short: "decode LZ4-framed data",
		Long: "lz4d decodes one or more .lz4 files, or stdin when none are given,\n" +
			"and writes the decoded content to stdout or a named output file.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				*logger = logger.Level(zerolog.DebugLevel)
			} else {
				*logger = logger.Level(zerolog.InfoLevel)
			}
			if opts.output != "" && len(args) > 1 {
				return &usageError{fmt.Errorf("--output cannot be combined with multiple input files")}
			}
			return run(logger, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "",
		"destination file (default: strip .lz4 suffix, or stdout for a single stdin input)")
	flags.BoolVarP(&opts.keep, "keep", "k", false,
		"retain the source file; accepted for parity with the reference lz4 CLI, lz4d never deletes input")
	flags.BoolVarP(&opts.test, "test", "t", false,
		"verify frame and content integrity without writing output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug-level logging (per-file decode results)")
	flags.BoolVar(&opts.noChecksum, "no-checksum", false,
		"disable checksum verification")

	return cmd
}
