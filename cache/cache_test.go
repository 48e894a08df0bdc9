// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	store map[string]string
}

func newFakeClient() *fakeClient { return &fakeClient{store: map[string]string{}} }

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	v, ok := f.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	f.store[key] = value.(string)
	cmd.SetVal("OK")
	return cmd
}

func TestDecisionCache_MissThenHit(t *testing.T) {
	fc := newFakeClient()
	c := &DecisionCache{client: fc, ttl: time.Minute, prefix: "claims"}

	_, ok, err := c.Get(context.Background(), "user-1", "read", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(context.Background(), "user-1", "read", "a", true))

	allowed, ok, err := c.Get(context.Background(), "user-1", "read", "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, allowed)
}

func TestDecisionCache_KeysAreNamespacedPerSubject(t *testing.T) {
	fc := newFakeClient()
	c := &DecisionCache{client: fc, ttl: time.Minute, prefix: "claims"}

	require.NoError(t, c.Set(context.Background(), "user-1", "read", "a", true))
	_, ok, err := c.Get(context.Background(), "user-2", "read", "a")
	require.NoError(t, err)
	assert.False(t, ok, "a different subject must not see user-1's cached decision")
}
