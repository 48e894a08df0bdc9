// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ability_test

import "github.com/holomush/claims/keyset"

func keysetSome(keys ...string) keyset.KeySet {
	return keyset.Some(keys)
}

func keysetAllExceptSome(keys ...string) keyset.KeySet {
	return keyset.AllExceptSome(keys)
}
