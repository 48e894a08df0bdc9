// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package checker is a side API operating directly on raw claim
// strings, for callers that hold strings and cannot afford Claim
// parsing. It splits on "." and ":" uniformly, treating the verb as
// just another path segment, and agrees with claim/claimset wherever
// both apply.
package checker

import (
	"sort"
	"strings"
)

// AllSentinel is the textual marker for the case where the query
// itself (or an ancestor of it) is already covered by claims: the
// caller holds every sub-claim, not a finite list of them. SubClaims
// reports that case through its all result; it does not return this
// value.
const AllSentinel = "[All]"

func segmentsOf(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ':' })
}

func trimTrailingWildcard(segs []string) []string {
	if len(segs) > 0 && segs[len(segs)-1] == "*" {
		return segs[:len(segs)-1]
	}
	return segs
}

func isSegmentPrefix(prefix, full []string) bool {
	if len(prefix) > len(full) {
		return false
	}
	for i, s := range prefix {
		if full[i] != s {
			return false
		}
	}
	return true
}

// QueryClaims reports whether some claim rule is an ancestor of query:
// a segment-prefix of it, or equal to it. A rule ending in "*" matches
// any descendant of the segments preceding the "*", including the
// query itself.
func QueryClaims(query string, claims []string) bool {
	qSegs := segmentsOf(query)
	for _, c := range claims {
		ruleSegs := trimTrailingWildcard(segmentsOf(c))
		if isSegmentPrefix(ruleSegs, qSegs) {
			return true
		}
	}
	return false
}

// ExactOrAncestor reports whether query, or any segment-prefix of
// query, appears verbatim in claims — either on its own or suffixed
// with ":*" (for the bare verb) or ".*" (for a resource prefix).
func ExactOrAncestor(query string, claims []string) bool {
	qSegs := segmentsOf(query)
	for k := len(qSegs); k >= 1; k-- {
		for _, candidate := range candidateForms(qSegs[:k]) {
			if containsString(claims, candidate) {
				return true
			}
		}
	}
	return false
}

func candidateForms(prefixSegs []string) []string {
	if len(prefixSegs) == 1 {
		return []string{prefixSegs[0] + ":*"}
	}
	base := prefixSegs[0] + ":" + strings.Join(prefixSegs[1:], ".")
	return []string{base, base + ".*"}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// SubClaims returns the claims strictly under query: every member of
// claims whose string has query+"." or query+":" as a literal prefix.
// If ExactOrAncestor already holds for query, the caller's claims
// cover every sub-claim of query and SubClaims returns (nil, true);
// callers should treat all == true as "everything", not "nothing".
func SubClaims(query string, claims []string) (sub []string, all bool) {
	if ExactOrAncestor(query, claims) {
		return nil, true
	}
	out := make([]string, 0, len(claims))
	for _, c := range claims {
		if strings.HasPrefix(c, query+".") || strings.HasPrefix(c, query+":") {
			out = append(out, c)
		}
	}
	return out, false
}

// SubClaimsDirectChildren returns the sorted, deduplicated first
// segments of SubClaims(query, claims) once the query+separator
// prefix is stripped. With onlyDirect, a sub-claim only contributes
// when its remainder is a single segment, or a single segment
// followed by ".*" — i.e. it is exactly one level below query, not
// merely somewhere below it.
//
// If query's ancestors already cover claims (SubClaims reports all),
// there is no finite child list to enumerate and this returns nil;
// callers that need the AllSentinel case should check SubClaims
// directly.
func SubClaimsDirectChildren(query string, claims []string, onlyDirect bool) []string {
	sub, all := SubClaims(query, claims)
	if all {
		return nil
	}

	seen := make(map[string]struct{})
	for _, c := range sub {
		remainder, ok := strings.CutPrefix(c, query+".")
		if !ok {
			remainder, ok = strings.CutPrefix(c, query+":")
		}
		if !ok {
			continue
		}

		remSegs := strings.Split(remainder, ".")
		if onlyDirect {
			single := len(remSegs) == 1
			singlePlusWildcard := len(remSegs) == 2 && remSegs[1] == "*"
			if !single && !singlePlusWildcard {
				continue
			}
		}
		seen[remSegs[0]] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
