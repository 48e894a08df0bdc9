// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Command claimsctl is a CLI over the claims engine: evaluate a
// single check, derive key-set views, grep a claim list, or print the
// bundle JSON Schema.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var bundlePath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimsctl",
		Short: "Evaluate and inspect hierarchical authorization claims",
	}

	cmd.PersistentFlags().StringVar(&bundlePath, "bundle", "", "path to a claim bundle YAML file")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newGrepCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
