// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package claimset aggregates Claims into an ordered, deduplicated
// set with fold-based queries over the whole collection.
package claimset

import (
	"encoding/json"
	"sort"

	"github.com/holomush/claims/claim"
)

// ClaimSet is an ordered, deduplicated collection of Claims, sorted
// ascending by clean string. It is immutable once built: queries
// never mutate it, and Added/Select/Reject return a new set.
type ClaimSet struct {
	claims []claim.Claim
}

type buildConfig struct {
	strict bool
}

// Option configures New.
type Option func(*buildConfig)

// Strict sets whether the first invalid claim string aborts
// construction (true, the default) or is silently skipped (false).
func Strict(strict bool) Option {
	return func(c *buildConfig) { c.strict = strict }
}

// New parses a list of claim strings into a ClaimSet.
//
// With the default strict mode, the first string that fails
// claim.Parse aborts construction and returns its InvalidClaim error.
// With Strict(false), invalid strings are silently skipped.
func New(raw []string, opts ...Option) (ClaimSet, error) {
	cfg := buildConfig{strict: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	claims := make([]claim.Claim, 0, len(raw))
	for _, s := range raw {
		c, err := claim.Parse(s)
		if err != nil {
			if cfg.strict {
				return ClaimSet{}, err
			}
			continue
		}
		claims = append(claims, c)
	}
	return FromClaims(claims), nil
}

// FromClaims builds a ClaimSet directly from already-parsed Claims,
// deduplicating by (verb, resource) and sorting by clean string.
func FromClaims(claims []claim.Claim) ClaimSet {
	type key struct {
		verb, resource string
		global         bool
	}
	seen := make(map[key]claim.Claim, len(claims))
	for _, c := range claims {
		res, ok := c.Resource()
		seen[key{verb: c.Verb(), resource: res, global: !ok}] = c
	}

	out := make([]claim.Claim, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CleanString() < out[j].CleanString()
	})
	return ClaimSet{claims: out}
}

// Len returns the number of distinct claims in the set.
func (s ClaimSet) Len() int { return len(s.claims) }

// Claims returns a copy of the set's claims, in sorted order.
func (s ClaimSet) Claims() []claim.Claim {
	return append([]claim.Claim(nil), s.claims...)
}

// Added returns a new ClaimSet with c folded in, preserving dedup and
// ordering invariants. The receiver is left unchanged: share a
// ClaimSet freely across goroutines and rebuild with Added (or
// Select/Reject) rather than mutating in place.
func (s ClaimSet) Added(c claim.Claim) ClaimSet {
	return FromClaims(append(s.Claims(), c))
}

// Query reports whether any member claim authorizes q.
func (s ClaimSet) Query(q claim.Query) bool {
	for _, c := range s.claims {
		if c.Query(q) {
			return true
		}
	}
	return false
}

// QueryClaim reports whether any member claim authorizes the
// (verb, resource) of c, treating a global c as an absent-resource
// query.
func (s ClaimSet) QueryClaim(c claim.Claim) bool {
	return s.Query(queryFromClaim(c))
}

func queryFromClaim(c claim.Claim) claim.Query {
	resource, _ := c.Resource()
	return claim.MustQuery(c.Verb(), resource)
}

// Exact reports whether any member claim matches q exactly.
func (s ClaimSet) Exact(q claim.Query) bool {
	for _, c := range s.claims {
		if c.Exact(q) {
			return true
		}
	}
	return false
}

// DirectChildren returns the sorted, deduplicated set of direct-child
// segments of q across every member claim.
func (s ClaimSet) DirectChildren(q claim.Query) []string {
	return s.foldSegments(func(c claim.Claim) (string, bool) { return c.DirectChild(q) })
}

// DirectDescendants returns the sorted, deduplicated set of
// direct-descendant segments of q across every member claim.
func (s ClaimSet) DirectDescendants(q claim.Query) []string {
	return s.foldSegments(func(c claim.Claim) (string, bool) { return c.DirectDescendant(q) })
}

func (s ClaimSet) foldSegments(relation func(claim.Claim) (string, bool)) []string {
	seen := make(map[string]struct{})
	for _, c := range s.claims {
		if seg, ok := relation(c); ok {
			seen[seg] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for seg := range seen {
		out = append(out, seg)
	}
	sort.Strings(out)
	return out
}

// Select returns a new ClaimSet containing only the members for which
// pred returns true.
func (s ClaimSet) Select(pred func(claim.Claim) bool) ClaimSet {
	out := make([]claim.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		if pred(c) {
			out = append(out, c)
		}
	}
	return FromClaims(out)
}

// Reject returns a new ClaimSet containing only the members for which
// pred returns false.
func (s ClaimSet) Reject(pred func(claim.Claim) bool) ClaimSet {
	return s.Select(func(c claim.Claim) bool { return !pred(c) })
}

// Equal reports whether s and other contain the same claims in the
// same order (equivalently: the same sorted list of clean strings).
func (s ClaimSet) Equal(other ClaimSet) bool {
	if len(s.claims) != len(other.claims) {
		return false
	}
	for i, c := range s.claims {
		if !c.Equal(other.claims[i]) {
			return false
		}
	}
	return true
}

// CleanStrings returns the sorted clean-string form of every member
// claim.
func (s ClaimSet) CleanStrings() []string {
	out := make([]string, len(s.claims))
	for i, c := range s.claims {
		out[i] = c.CleanString()
	}
	return out
}

// AsJSON returns the set's JSON representation: the sorted array of
// member clean strings.
func (s ClaimSet) AsJSON() []string { return s.CleanStrings() }

// MarshalJSON implements json.Marshaler.
func (s ClaimSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.CleanStrings())
}
