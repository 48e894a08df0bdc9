// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package ability composes a permitted and a prohibited ClaimSet into
// a single authorization decision surface, and derives KeySet views
// over resource sub-namespaces.
package ability

import (
	"github.com/samber/oops"

	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/claimset"
	"github.com/holomush/claims/keyset"
)

// Ability pairs a permitted and a prohibited ClaimSet, after an
// asymmetric reduction: every permitted claim that the prohibited set
// already covers is dropped at construction time. Prohibited is never
// reduced against permitted — a denial persists even if nothing
// currently grants it, so a grant added later cannot leak.
type Ability struct {
	permitted  claimset.ClaimSet
	prohibited claimset.ClaimSet
}

// New builds an Ability from a permitted and a prohibited ClaimSet,
// applying the reduction described above.
func New(permitted, prohibited claimset.ClaimSet) Ability {
	reduced := permitted.Reject(func(c claim.Claim) bool {
		return prohibited.QueryClaim(c)
	})
	return Ability{permitted: reduced, prohibited: prohibited}
}

// Permitted returns the (already reduced) permitted ClaimSet.
func (a Ability) Permitted() claimset.ClaimSet { return a.permitted }

// Prohibited returns the prohibited ClaimSet, verbatim.
func (a Ability) Prohibited() claimset.ClaimSet { return a.prohibited }

// Can reports whether q is authorized: permitted grants it, and
// prohibited does not explicitly deny it.
func (a Ability) Can(q claim.Query) bool {
	return a.permitted.Query(q) && !a.prohibited.Query(q)
}

// Cannot is the negation of Can.
func (a Ability) Cannot(q claim.Query) bool { return !a.Can(q) }

// ExplicitlyProhibited reports whether q is matched by the prohibited
// set, independent of whether it is also permitted.
func (a Ability) ExplicitlyProhibited(q claim.Query) bool {
	return a.prohibited.Query(q)
}

// CanHash is Can taking the spec's query-hash surface (a single-entry
// "verb -> resource" map) instead of a Query. A malformed hash
// surfaces as an InvalidClaim error: the underlying InvalidArgument
// fault from query parsing is translated at this boundary, per the
// spec's error taxonomy.
func (a Ability) CanHash(raw map[string]any) (bool, error) {
	q, err := claim.ParseQueryHash(raw)
	if err != nil {
		return false, asInvalidClaim(err)
	}
	return a.Can(q), nil
}

func asInvalidClaim(err error) error {
	oopsErr, ok := oops.AsOops(err)
	msg := err.Error()
	if ok {
		msg = oopsErr.Error()
	}
	return oops.In("ability").
		Code(claim.CodeInvalidClaim).
		Errorf("%s", msg)
}

// AccessToResources derives a KeySet view of verb over resourcePath:
// the set of keys directly under resourcePath the caller may act on.
//
// allowed is All if permitted grants verb anywhere at or above
// resourcePath, else the direct descendants permitted grants under it
// (a grant deep inside a sub-namespace still counts its top-level key
// as allowed). forbidden is All if prohibited denies verb at or above
// resourcePath, else only the direct children prohibited denies (a
// denial must be exactly one level down to subtract a single key; it
// does not subtract an entire subtree). The result is allowed minus
// forbidden.
func (a Ability) AccessToResources(verb, resourcePath string) (keyset.KeySet, error) {
	q, err := claim.NewQuery(verb, resourcePath)
	if err != nil {
		return nil, err
	}
	return a.accessToResources(q), nil
}

func (a Ability) accessToResources(q claim.Query) keyset.KeySet {
	var allowed keyset.KeySet
	if a.permitted.Query(q) {
		allowed = keyset.All()
	} else {
		allowed = keyset.Some(a.permitted.DirectDescendants(q))
	}

	var forbidden keyset.KeySet
	if a.prohibited.Query(q) {
		forbidden = keyset.All()
	} else {
		forbidden = keyset.Some(a.prohibited.DirectChildren(q))
	}

	return allowed.Remove(forbidden)
}
