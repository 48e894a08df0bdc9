// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/claims/ability"
	"github.com/holomush/claims/config"
	"github.com/holomush/claims/keyset"
)

var keyViews = map[string]func(ability.Ability, string) (keyset.KeySet, error){
	"clients":         func(a ability.Ability, _ string) (keyset.KeySet, error) { return a.AccessToClientKeys(), nil },
	"business-groups": func(a ability.Ability, _ string) (keyset.KeySet, error) { return a.AccessToBusinessGroupKeys(), nil },
	"projects":        func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToProjectKeys(client) },
	"teams":           func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToTeamKeys(client) },
	"people":          func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToPeopleIDs(client) },
	"programmes":      func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToProgrammeKeys(client) },
}

func newKeysCmd() *cobra.Command {
	var view, client string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the bundle subject's KeySet view for a named resource namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := keyViews[view]
			if !ok {
				return oops.In("claimsctl").Errorf("unknown view %q", view)
			}

			b, err := config.Load(bundlePath, nil)
			if err != nil {
				return err
			}
			a, err := b.Ability()
			if err != nil {
				return err
			}

			keys, err := fn(a, client)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(keyset.Describe(keys), "", "  ")
			if err != nil {
				return oops.In("claimsctl").Wrapf(err, "marshal keyset view")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "one of: clients, business-groups, projects, teams, people, programmes")
	cmd.Flags().StringVar(&client, "client", "", "client key, required for client-scoped views")
	_ = cmd.MarkFlagRequired("view")

	return cmd
}
