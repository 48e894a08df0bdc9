// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newGrepCmd() *cobra.Command {
	var pattern, file string

	cmd := &cobra.Command{
		Use:   "grep",
		Short: "Filter a list of claim strings (one per line) against a glob pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := glob.Compile(pattern, '.', ':')
			if err != nil {
				return oops.In("claimsctl").Code("INVALID_ARGUMENT").Wrapf(err, "compile glob pattern %q", pattern)
			}

			in, err := openInput(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			scanner := bufio.NewScanner(in)
			out := cmd.OutOrStdout()
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				if g.Match(line) {
					fmt.Fprintln(out, line)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "glob pattern, segments separated by '.' or ':'")
	cmd.Flags().StringVar(&file, "file", "", "file of newline-separated claims; defaults to stdin")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.In("claimsctl").Wrapf(err, "open claim file %q", path)
	}
	return f, nil
}
