// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/claims/config"
)

func writeBundle(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_ValidBundle(t *testing.T) {
	path := writeBundle(t, "version: 1.0.0\nsubject: user-1\npermitted:\n  - read:clients.acme\n")

	b, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "user-1", b.Subject)
	assert.Equal(t, []string{"read:clients.acme"}, b.Permitted)
}

func TestLoad_RejectsNonSemverVersion(t *testing.T) {
	path := writeBundle(t, "version: not-a-version\nsubject: user-1\n")
	_, err := config.Load(path, nil)
	require.Error(t, err)
}

func TestLoad_FlagOverrideWinsOverFile(t *testing.T) {
	path := writeBundle(t, "version: 1.0.0\nsubject: user-1\n")

	fs := pflag.NewFlagSet("claimsctl", pflag.ContinueOnError)
	fs.String("subject", "user-2", "")
	require.NoError(t, fs.Parse([]string{"--subject=user-2"}))

	b, err := config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "user-2", b.Subject)
}
