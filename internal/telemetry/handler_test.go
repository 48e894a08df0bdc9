// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package telemetry_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/claims/internal/telemetry"
)

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.Setup("claims", "json", &buf)

	logger.Info("check evaluated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "check evaluated", entry["msg"])
	assert.Equal(t, "claims", entry["service"])
}

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.Setup("claims", "text", &buf)

	logger.Info("check evaluated")

	assert.Contains(t, buf.String(), "check evaluated")
	assert.Contains(t, buf.String(), "service=claims")
}
