// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/claims/ability"
	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/claimset"
)

func mustSet(t *testing.T, raw []string) claimset.ClaimSet {
	t.Helper()
	s, err := claimset.New(raw)
	require.NoError(t, err)
	return s
}

// Scenario 3: reduction drops every permitted claim the prohibited set
// already covers, and never the reverse.
func TestAbility_Scenario_Reduction(t *testing.T) {
	permitted := mustSet(t, []string{
		"do:*", "keep:me", "wat:*", "read:same.resource",
		"read:some.nested.things", "read:reverse.is.ok",
	})
	prohibited := mustSet(t, []string{
		"wat:*", "read:same.resource", "read:some.nested", "read:reverse.is.ok.nested",
	})

	a := ability.New(permitted, prohibited)
	assert.Equal(t, []string{"do:*", "keep:me", "read:reverse.is.ok"}, a.Permitted().AsJSON())
}

func TestAbility_ReductionIsAsymmetric(t *testing.T) {
	permitted := mustSet(t, []string{"read:a"})
	prohibited := mustSet(t, []string{"read:a"})

	a := ability.New(permitted, prohibited)
	assert.Equal(t, 0, a.Permitted().Len(), "permitted claim covered by prohibited is dropped")
	assert.Equal(t, 1, a.Prohibited().Len(), "prohibited is never reduced against permitted")
}

// Scenario 4: a denial on a descendant masks a grant on its ancestor
// for that specific resource.
func TestAbility_Scenario_CanIsMaskedByDescendantDenial(t *testing.T) {
	a := ability.New(
		mustSet(t, []string{"read:clients"}),
		mustSet(t, []string{"read:clients.acmeinc"}),
	)
	assert.False(t, a.Can(claim.MustQuery("read", "clients.acmeinc")))
	assert.True(t, a.Can(claim.MustQuery("read", "clients.otherco")))
}

func TestAbility_Can_Cannot_ExplicitlyProhibited(t *testing.T) {
	a := ability.New(
		mustSet(t, []string{"read:a"}),
		mustSet(t, []string{"read:a.b"}),
	)
	assert.True(t, a.Can(claim.MustQuery("read", "a")))
	assert.False(t, a.Can(claim.MustQuery("read", "a.b")))
	assert.True(t, a.Cannot(claim.MustQuery("read", "a.b")))
	assert.True(t, a.ExplicitlyProhibited(claim.MustQuery("read", "a.b")))
	assert.False(t, a.ExplicitlyProhibited(claim.MustQuery("write", "a.b")))
}

func TestAbility_CanHash(t *testing.T) {
	a := ability.New(mustSet(t, []string{"read:a"}), mustSet(t, []string{}))

	ok, err := a.CanHash(map[string]any{"read": "a"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.CanHash(map[string]any{"read": "a", "write": "b"})
	require.Error(t, err)
	assert.True(t, claim.IsInvalidClaim(err), "malformed query hash surfaces as InvalidClaim at the Ability boundary")
}

// Scenario 5: a global-ish grant under a namespace, denied at two
// specific children, yields AllExceptSome.
func TestAbility_Scenario_AccessToClientKeys(t *testing.T) {
	a := ability.New(
		mustSet(t, []string{"read:clients.*"}),
		mustSet(t, []string{"read:clients.first", "read:clients.second"}),
	)
	got := a.AccessToClientKeys()
	want := keysetAllExceptSome("first", "second")
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}

// Scenario 6: descendant grants allow their top-level key, but a
// denial only subtracts the exact key it names.
func TestAbility_Scenario_AccessToProjectKeys(t *testing.T) {
	a := ability.New(
		mustSet(t, []string{
			"read:clients.my-client.projects.project.one-project",
			"read:clients.my-client.projects.project.bad-project",
		}),
		mustSet(t, []string{
			"read:clients.my-client.projects.project.one-project.people",
			"read:clients.my-client.projects.project.bad-project",
		}),
	)

	got, err := a.AccessToProjectKeys("my-client")
	require.NoError(t, err)
	want := keysetSome("one-project")
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}

func TestAbility_ScopedViews_RejectEmptyClient(t *testing.T) {
	a := ability.New(mustSet(t, nil), mustSet(t, nil))
	_, err := a.AccessToProjectKeys("")
	require.Error(t, err)
	assert.True(t, claim.IsInvalidArgument(err))
}

func TestAbility_AccessToBusinessGroupKeys_DefaultDeny(t *testing.T) {
	a := ability.New(mustSet(t, nil), mustSet(t, nil))
	got := a.AccessToBusinessGroupKeys()
	assert.True(t, got.Equal(keysetSome()))
}
