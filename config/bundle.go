// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads named claim bundles — a subject's permitted and
// prohibited claim lists — from YAML, validating them against a
// generated JSON Schema before they reach the core engine.
package config

import (
	"github.com/samber/oops"

	"github.com/holomush/claims/ability"
	"github.com/holomush/claims/claimset"
)

// Bundle is the on-disk (or on-S3) shape of a subject's claim
// configuration.
type Bundle struct {
	Version    string   `yaml:"version" json:"version" jsonschema:"required,minLength=1,description=Semantic version of this bundle's shape"`
	Subject    string   `yaml:"subject" json:"subject" jsonschema:"required,minLength=1"`
	Permitted  []string `yaml:"permitted,omitempty" json:"permitted,omitempty"`
	Prohibited []string `yaml:"prohibited,omitempty" json:"prohibited,omitempty"`
}

// Ability builds the ability.Ability this bundle describes. Malformed
// claim strings surface as InvalidClaim (strict claimset construction,
// matching the core engine's own error taxonomy).
func (b Bundle) Ability() (ability.Ability, error) {
	permitted, err := claimset.New(b.Permitted)
	if err != nil {
		return ability.Ability{}, oops.In("config").Code("InvalidClaim").Wrapf(err, "bundle %s permitted claims", b.Subject)
	}
	prohibited, err := claimset.New(b.Prohibited)
	if err != nil {
		return ability.Ability{}, oops.In("config").Code("InvalidClaim").Wrapf(err, "bundle %s prohibited claims", b.Subject)
	}
	return ability.New(permitted, prohibited), nil
}
