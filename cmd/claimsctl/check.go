// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/config"
)

func newCheckCmd() *cobra.Command {
	var verb, resource string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate whether the bundle's subject can perform verb on resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.Load(bundlePath, nil)
			if err != nil {
				return err
			}
			a, err := b.Ability()
			if err != nil {
				return err
			}

			q, err := claim.NewQuery(verb, resource)
			if err != nil {
				return err
			}

			if a.ExplicitlyProhibited(q) {
				fmt.Fprintln(cmd.OutOrStdout(), "prohibited")
				return nil
			}
			if a.Can(q) {
				fmt.Fprintln(cmd.OutOrStdout(), "allowed")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "denied")
			return nil
		},
	}

	cmd.Flags().StringVar(&verb, "verb", "", "verb to check")
	cmd.Flags().StringVar(&resource, "resource", "", "resource path to check")
	_ = cmd.MarkFlagRequired("verb")

	return cmd
}
