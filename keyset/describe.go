// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package keyset

// View is a JSON-friendly projection of a KeySet's variant and
// (for the finite-list variants) its keys, for edge adapters like
// httpapi that must serialize a KeySet without reaching into its
// unexported variant types.
type View struct {
	Kind string   `json:"kind"`
	Keys []string `json:"keys,omitempty"`
}

// Describe projects k onto a View. Kind is one of "all", "none",
// "some", or "allExceptSome".
func Describe(k KeySet) View {
	switch v := k.(type) {
	case allSet:
		return View{Kind: "all"}
	case noneSet:
		return View{Kind: "none"}
	case someSet:
		return View{Kind: "some", Keys: sortedKeys(v.keys)}
	case allExceptSomeSet:
		return View{Kind: "allExceptSome", Keys: sortedKeys(v.keys)}
	default:
		return View{Kind: k.String()}
	}
}
