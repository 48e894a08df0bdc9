// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package claim parses and matches hierarchical authorization claims.
//
// A claim string has the form "verb:resource.path" (or "verb:*" for a
// global claim). The resource is a dotted path of segments; matching a
// claim against a query is an ancestor/prefix relation over that path,
// not string equality.
package claim

import (
	"regexp"
	"strings"

	"github.com/samber/oops"
)

var (
	reGlobal   = regexp.MustCompile(`^([A-Za-z0-9_-]+):\*$`)
	reResource = regexp.MustCompile(`^([A-Za-z0-9_-]+):([A-Za-z0-9_.-]*[A-Za-z0-9_-])(\.\*)?$`)
	reSegment  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Claim is an immutable grant of a verb over a resource path, or a
// global grant of a verb over every resource ("verb:*").
//
// Equality and hashing are defined on (verb, resource) only: a claim
// parsed with a trailing ".*" is equal to the same claim without it.
type Claim struct {
	verb     string
	resource string
	parts    []string
	global   bool
	clean    string
}

// Parse validates and normalises a single claim string.
//
// Two shapes are accepted: the global form "verb:*", and the resource
// form "verb:resource[.*]" where resource is a dotted path of
// identifier segments. A trailing ".*" is syntactic sugar for "every
// descendant of resource" and is stripped during normalisation, so
// Parse("read:a.b.*") and Parse("read:a.b") produce equal claims.
//
// Returns an InvalidClaim error for anything else: empty input, a
// missing colon, a wildcard in a non-trailing position, or a resource
// segment that is empty or contains characters outside
// [A-Za-z0-9_-].
func Parse(s string) (Claim, error) {
	if s == "" {
		return Claim{}, invalidClaim(s, "empty claim string")
	}

	if m := reGlobal.FindStringSubmatch(s); m != nil {
		verb := m[1]
		return Claim{verb: verb, global: true, clean: verb + ":*"}, nil
	}

	m := reResource.FindStringSubmatch(s)
	if m == nil {
		return Claim{}, invalidClaim(s, "does not match the claim grammar verb:resource[.*]")
	}

	verb, resource := m[1], m[2]
	parts, err := splitSegments(resource)
	if err != nil {
		return Claim{}, invalidClaim(s, err.Error())
	}

	return Claim{
		verb:     verb,
		resource: resource,
		parts:    parts,
		clean:    verb + ":" + resource,
	}, nil
}

// MustParse is Parse, panicking on error. Reserved for claims that are
// compiled into the program (default role definitions, tests) where a
// parse failure is a code bug, never user input.
func MustParse(s string) Claim {
	c, err := Parse(s)
	if err != nil {
		panic("claim.MustParse(" + s + "): " + err.Error())
	}
	return c
}

// splitSegments validates and splits a dotted resource path, rejecting
// empty segments, segments containing "*", or any other character
// outside [A-Za-z0-9_-]. The trailing-regex capture in Parse already
// excludes most of these, but a resource like "a..b" can still slip
// through a naive regex-only check, so every segment is re-validated
// independently here.
func splitSegments(resource string) ([]string, error) {
	parts := strings.Split(resource, ".")
	for _, p := range parts {
		if p == "" || !reSegment.MatchString(p) {
			return nil, oops.Errorf("invalid resource segment %q in %q", p, resource)
		}
	}
	return parts, nil
}

// Verb returns the claim's verb.
func (c Claim) Verb() string { return c.verb }

// Global reports whether the claim is a global grant ("verb:*").
func (c Claim) Global() bool { return c.global }

// Resource returns the claim's resource path and true, or ("", false)
// for a global claim.
func (c Claim) Resource() (string, bool) {
	if c.global {
		return "", false
	}
	return c.resource, true
}

// Parts returns a copy of the resource path split on ".", or nil for a
// global claim.
func (c Claim) Parts() []string {
	if c.global {
		return nil
	}
	return append([]string(nil), c.parts...)
}

// CleanString returns the canonical textual form of the claim:
// "verb:*" if global, "verb:resource" otherwise (with any trailing
// ".*" already stripped). This is the claim's identity for ordering
// and JSON encoding.
func (c Claim) CleanString() string { return c.clean }

// String implements fmt.Stringer.
func (c Claim) String() string { return c.CleanString() }

// Equal reports whether two claims have the same (verb, resource).
func (c Claim) Equal(other Claim) bool {
	return c.verb == other.verb && c.global == other.global && c.resource == other.resource
}

// AsJSON returns the claim's JSON representation: its clean string.
func (c Claim) AsJSON() string { return c.clean }

// MarshalJSON implements json.Marshaler, encoding the claim as its
// clean string.
func (c Claim) MarshalJSON() ([]byte, error) {
	return marshalString(c.clean)
}
