// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package claim

import "strings"

// Query is a normalised (verb, resource) pair asked of a Claim,
// ClaimSet, or Ability. It is the Go-idiomatic counterpart of the
// spec's single-entry "{verb -> resource}" hash: construct one with
// NewQuery for known-good inputs, or ParseQueryHash at the edge where
// callers hand over an untyped map (deserialized JSON, CLI flags).
type Query struct {
	verb     string
	resource string
	hasRes   bool
	parts    []string
}

// NewQuery builds a Query, normalising resource. An empty string or
// "*" both mean "no resource" (a global query); anything else must be
// a valid dotted resource path, optionally ending in ".*".
//
// Returns an InvalidArgument error if verb is empty or not a valid
// identifier token, or if resource is present but malformed.
func NewQuery(verb, resource string) (Query, error) {
	if verb == "" || !reSegment.MatchString(verb) {
		return Query{}, invalidArgument("missing or invalid verb")
	}
	if resource == "" || resource == "*" {
		return Query{verb: verb}, nil
	}

	trimmed := strings.TrimSuffix(resource, ".*")
	if trimmed == "" {
		return Query{}, invalidArgument("resource must not be just \".*\"")
	}
	parts, err := splitSegments(trimmed)
	if err != nil {
		return Query{}, invalidArgument(err.Error())
	}
	return Query{verb: verb, resource: trimmed, hasRes: true, parts: parts}, nil
}

// MustQuery is NewQuery, panicking on error. Reserved for queries
// built from constants (named resource-path views) where a failure is
// a code bug, never user input.
func MustQuery(verb, resource string) Query {
	q, err := NewQuery(verb, resource)
	if err != nil {
		panic("claim.MustQuery(" + verb + ", " + resource + "): " + err.Error())
	}
	return q
}

// ParseQueryHash parses the spec's query-hash surface: a single-entry
// mapping of verb to a resource value that is absent (nil), an empty
// string, "*", or a valid resource path optionally ending in ".*".
//
// Returns InvalidArgument for an empty or multi-entry map, a
// non-string/non-nil resource value, or a malformed resource.
func ParseQueryHash(raw map[string]any) (Query, error) {
	if len(raw) != 1 {
		return Query{}, invalidArgument("query hash must have exactly one entry")
	}

	var verb string
	var value any
	for k, v := range raw {
		verb = k
		value = v
	}
	if verb == "" {
		return Query{}, invalidArgument("query hash key (verb) must not be empty")
	}

	switch v := value.(type) {
	case nil:
		return NewQuery(verb, "")
	case string:
		return NewQuery(verb, v)
	default:
		return Query{}, invalidArgument("query hash value must be a string or absent")
	}
}

// Verb returns the query's verb.
func (q Query) Verb() string { return q.verb }

// Resource returns the query's normalised resource path and true, or
// ("", false) if the query has no resource (global query).
func (q Query) Resource() (string, bool) {
	if !q.hasRes {
		return "", false
	}
	return q.resource, true
}

// sameVerb reports whether c and q share a verb.
func (c Claim) sameVerb(q Query) bool { return c.verb == q.verb }

// ancestorOrEqual reports whether resource path p is p itself or an
// ancestor of r: p == r, or r starts with p followed by ".".
func ancestorOrEqual(p, r string) bool {
	return p == r || strings.HasPrefix(r, p+".")
}

// Query reports whether the claim authorizes q: same verb, and either
// the claim is global or its resource is an ancestor of (or equal to)
// q's resource. A global query against a non-global claim is always
// false; a global claim matches any resource, including a global
// query, under its verb.
func (c Claim) Query(q Query) bool {
	if !c.sameVerb(q) {
		return false
	}
	if c.global {
		return true
	}
	if !q.hasRes {
		return false
	}
	return ancestorOrEqual(c.resource, q.resource)
}

// Exact reports whether the claim's resource matches q's resource
// exactly (both global, or both present and string-equal).
func (c Claim) Exact(q Query) bool {
	if !c.sameVerb(q) {
		return false
	}
	if c.global {
		return !q.hasRes
	}
	return q.hasRes && c.resource == q.resource
}

// DirectChild returns the segment exactly one level below q's
// resource, if the claim's resource is exactly that one level deeper.
// With an absent q resource, it returns the claim's sole segment if
// the claim's resource has exactly one segment. Returns ("", false)
// for a global claim, a verb mismatch, or anything deeper/shallower
// than one level.
func (c Claim) DirectChild(q Query) (string, bool) {
	if !c.sameVerb(q) || c.global {
		return "", false
	}
	if !q.hasRes {
		if len(c.parts) == 1 {
			return c.parts[0], true
		}
		return "", false
	}
	if len(c.parts) != len(q.parts)+1 {
		return "", false
	}
	if !hasPrefix(c.parts, q.parts) {
		return "", false
	}
	return c.parts[len(c.parts)-1], true
}

// DirectDescendant returns the segment of the claim's resource
// immediately below q's resource, however much deeper the claim's
// resource actually lies. With an absent q resource, it returns the
// claim's first segment. Returns ("", false) for a global claim, a
// verb mismatch, or a claim resource that does not strictly extend
// q's resource.
func (c Claim) DirectDescendant(q Query) (string, bool) {
	if !c.sameVerb(q) || c.global {
		return "", false
	}
	if !q.hasRes {
		return c.parts[0], true
	}
	if len(c.parts) <= len(q.parts) || !hasPrefix(c.parts, q.parts) {
		return "", false
	}
	return c.parts[len(q.parts)], true
}

// DirectChildOK is the boolean projection of DirectChild.
func (c Claim) DirectChildOK(q Query) bool {
	_, ok := c.DirectChild(q)
	return ok
}

// DirectDescendantOK is the boolean projection of DirectDescendant.
func (c Claim) DirectDescendantOK(q Query) bool {
	_, ok := c.DirectDescendant(q)
	return ok
}

// hasPrefix reports whether long starts with every element of short,
// in order.
func hasPrefix(long, short []string) bool {
	if len(short) > len(long) {
		return false
	}
	for i, s := range short {
		if long[i] != s {
			return false
		}
	}
	return true
}
