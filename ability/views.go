// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ability

import (
	"fmt"

	"github.com/samber/oops"

	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/keyset"
)

// Named resource-path views thin-specialise AccessToResources over
// the fixed "read" verb and a consistent namespace convention:
// top-level collections live at a plural path ("clients",
// "business-groups"), and collections scoped under a client live at
// "clients.{client}.<plural>.<singular>".
const (
	resourceClients        = "clients"
	resourceBusinessGroups = "business-groups"
	resourceProjectsFmt    = "clients.%s.projects.project"
	resourceTeamsFmt       = "clients.%s.teams.team"
	resourcePeopleFmt      = "clients.%s.people.person"
	resourceProgrammesFmt  = "clients.%s.programmes.programme"
)

// AccessToClientKeys returns the KeySet of client keys the caller may
// read.
func (a Ability) AccessToClientKeys() keyset.KeySet {
	return a.accessToResources(claim.MustQuery("read", resourceClients))
}

// AccessToBusinessGroupKeys returns the KeySet of business-group keys
// the caller may read.
func (a Ability) AccessToBusinessGroupKeys() keyset.KeySet {
	return a.accessToResources(claim.MustQuery("read", resourceBusinessGroups))
}

// AccessToProjectKeys returns the KeySet of project keys under client
// the caller may read.
func (a Ability) AccessToProjectKeys(client string) (keyset.KeySet, error) {
	return a.scopedView(resourceProjectsFmt, client)
}

// AccessToTeamKeys returns the KeySet of team keys under client the
// caller may read.
func (a Ability) AccessToTeamKeys(client string) (keyset.KeySet, error) {
	return a.scopedView(resourceTeamsFmt, client)
}

// AccessToPeopleIDs returns the KeySet of person IDs under client the
// caller may read.
func (a Ability) AccessToPeopleIDs(client string) (keyset.KeySet, error) {
	return a.scopedView(resourcePeopleFmt, client)
}

// AccessToProgrammeKeys returns the KeySet of programme keys under
// client the caller may read.
func (a Ability) AccessToProgrammeKeys(client string) (keyset.KeySet, error) {
	return a.scopedView(resourceProgrammesFmt, client)
}

func (a Ability) scopedView(pathFmt, client string) (keyset.KeySet, error) {
	if client == "" {
		return nil, oops.In("ability").
			Code(claim.CodeInvalidArgument).
			New("client must not be empty")
	}
	return a.AccessToResources("read", fmt.Sprintf(pathFmt, client))
}
