// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package claim

import (
	"encoding/json"

	"github.com/samber/oops"
)

// Error codes for the two-kind taxonomy this package raises.
const (
	// CodeInvalidClaim marks a string that fails the claim grammar.
	CodeInvalidClaim = "InvalidClaim"
	// CodeInvalidArgument marks a malformed query (bad verb, bad
	// resource shape, wrong-arity query hash).
	CodeInvalidArgument = "InvalidArgument"
)

func invalidClaim(input, reason string) error {
	return oops.In("claim").
		Code(CodeInvalidClaim).
		With("input", input).
		Errorf("invalid claim: %s", reason)
}

func invalidArgument(reason string) error {
	return oops.In("claim").
		Code(CodeInvalidArgument).
		Errorf("invalid argument: %s", reason)
}

// IsInvalidClaim reports whether err was raised because a string
// failed the claim grammar.
func IsInvalidClaim(err error) bool {
	return hasCode(err, CodeInvalidClaim)
}

// IsInvalidArgument reports whether err was raised because a query
// hash or resource string was malformed.
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}

func marshalString(s string) ([]byte, error) {
	return json.Marshal(s)
}
