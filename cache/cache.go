// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package cache provides an optional read-through cache of Ability.Can
// results for high-QPS callers fronting an otherwise
// recomputed-every-time pure engine.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

// client is the subset of *redis.Client this package depends on.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// DecisionCache caches boolean Can results keyed by subject/verb/resource.
type DecisionCache struct {
	client client
	ttl    time.Duration
	prefix string
}

// New builds a DecisionCache over an existing Redis client. Entries
// expire after ttl; keys have the form "prefix:subject:verb:resource"
// (e.g. prefix "claims").
func New(c *redis.Client, ttl time.Duration, prefix string) *DecisionCache {
	return &DecisionCache{client: c, ttl: ttl, prefix: prefix}
}

func (c *DecisionCache) key(subject, verb, resource string) string {
	return strings.Join([]string{c.prefix, subject, verb, resource}, ":")
}

// Get returns the cached decision for (subject, verb, resource), and
// whether it was present.
func (c *DecisionCache) Get(ctx context.Context, subject, verb, resource string) (allowed bool, ok bool, err error) {
	val, err := c.client.Get(ctx, c.key(subject, verb, resource)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, oops.In("cache").Code("SourceUnavailable").Wrapf(err, "get decision")
	}
	return val == "1", true, nil
}

// Set caches the decision for (subject, verb, resource).
func (c *DecisionCache) Set(ctx context.Context, subject, verb, resource string, allowed bool) error {
	val := "0"
	if allowed {
		val = "1"
	}
	if err := c.client.Set(ctx, c.key(subject, verb, resource), val, c.ttl).Err(); err != nil {
		return oops.In("cache").Code("SourceUnavailable").Wrapf(err, "set decision")
	}
	return nil
}
