// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/claims/claim"
)

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name     string
		verb     string
		resource string
		wantAbs  bool
		wantRes  string
		wantErr  bool
	}{
		{name: "absent resource", verb: "read", resource: "", wantAbs: true},
		{name: "star means absent", verb: "read", resource: "*", wantAbs: true},
		{name: "simple resource", verb: "read", resource: "a.b", wantRes: "a.b"},
		{name: "trailing wildcard stripped", verb: "read", resource: "a.b.*", wantRes: "a.b"},
		{name: "empty verb", verb: "", resource: "a", wantErr: true},
		{name: "invalid verb chars", verb: "re ad", resource: "a", wantErr: true},
		{name: "empty segment", verb: "read", resource: "a..b", wantErr: true},
		{name: "wildcard mid-path", verb: "read", resource: "a.*.b", wantErr: true},
		{name: "just wildcard suffix alone", verb: "read", resource: ".*", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := claim.NewQuery(tt.verb, tt.resource)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, claim.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			res, ok := q.Resource()
			assert.Equal(t, !tt.wantAbs, ok)
			if !tt.wantAbs {
				assert.Equal(t, tt.wantRes, res)
			}
		})
	}
}

func TestParseQueryHash(t *testing.T) {
	t.Run("absent resource via nil", func(t *testing.T) {
		q, err := claim.ParseQueryHash(map[string]any{"read": nil})
		require.NoError(t, err)
		_, ok := q.Resource()
		assert.False(t, ok)
	})

	t.Run("string resource", func(t *testing.T) {
		q, err := claim.ParseQueryHash(map[string]any{"read": "a.b"})
		require.NoError(t, err)
		res, ok := q.Resource()
		require.True(t, ok)
		assert.Equal(t, "a.b", res)
	})

	t.Run("empty map is invalid", func(t *testing.T) {
		_, err := claim.ParseQueryHash(map[string]any{})
		require.Error(t, err)
		assert.True(t, claim.IsInvalidArgument(err))
	})

	t.Run("multi-entry map is invalid", func(t *testing.T) {
		_, err := claim.ParseQueryHash(map[string]any{"read": "a", "write": "b"})
		require.Error(t, err)
		assert.True(t, claim.IsInvalidArgument(err))
	})

	t.Run("non-string resource value is invalid", func(t *testing.T) {
		_, err := claim.ParseQueryHash(map[string]any{"read": 42})
		require.Error(t, err)
		assert.True(t, claim.IsInvalidArgument(err))
	})
}
