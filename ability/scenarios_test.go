// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ability_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/claims/ability"
	"github.com/holomush/claims/checker"
	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/claimset"
	"github.com/holomush/claims/keyset"
)

func claims(raw ...string) claimset.ClaimSet {
	s, err := claimset.New(raw)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Claim", func() {
	It("derives direct children and descendants relative to a query", func() {
		c := claim.MustParse("read:some.stuff.nested")

		_, ok := c.DirectDescendant(claim.MustQuery("read", "what"))
		Expect(ok).To(BeFalse())

		seg, ok := c.DirectDescendant(claim.MustQuery("read", "some"))
		Expect(ok).To(BeTrue())
		Expect(seg).To(Equal("stuff"))

		seg, ok = c.DirectDescendant(claim.MustQuery("read", "some.stuff"))
		Expect(ok).To(BeTrue())
		Expect(seg).To(Equal("nested"))

		seg, ok = c.DirectChild(claim.MustQuery("read", "some.stuff"))
		Expect(ok).To(BeTrue())
		Expect(seg).To(Equal("nested"))

		_, ok = c.DirectChild(claim.MustQuery("read", "some"))
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ClaimSet", func() {
	It("dedups a trailing-wildcard claim against its exact-resource sibling", func() {
		s := claims("do:*", "read:some.stuff", "read:some.stuff.*")
		Expect(s.AsJSON()).To(Equal([]string{"do:*", "read:some.stuff"}))
	})
})

var _ = Describe("Ability", func() {
	Context("reduction", func() {
		It("rejects permitted claims covered by prohibited claims, but never reduces prohibited", func() {
			permitted := claims("do:*", "keep:me", "wat:*", "read:same.resource",
				"read:some.nested.things", "read:reverse.is.ok")
			prohibited := claims("wat:*", "read:same.resource", "read:some.nested", "read:reverse.is.ok.nested")

			a := ability.New(permitted, prohibited)

			Expect(a.Permitted().AsJSON()).To(Equal([]string{"do:*", "keep:me", "read:reverse.is.ok"}))
		})

		It("masks Can by a descendant-level denial", func() {
			a := ability.New(claims("read:clients"), claims("read:clients.acmeinc"))

			Expect(a.Can(claim.MustQuery("read", "clients.acmeinc"))).To(BeFalse())
		})
	})

	Context("named key-set views", func() {
		It("computes AccessToClientKeys as AllExceptSome when a global grant is partly denied", func() {
			a := ability.New(claims("read:clients.*"), claims("read:clients.first", "read:clients.second"))

			Expect(a.AccessToClientKeys().Equal(keyset.AllExceptSome([]string{"first", "second"}))).To(BeTrue())
		})

		It("computes AccessToProjectKeys as Some when only specific projects are granted", func() {
			a := ability.New(
				claims(
					"read:clients.my-client.projects.project.one-project",
					"read:clients.my-client.projects.project.bad-project",
				),
				claims(
					"read:clients.my-client.projects.project.one-project.people",
					"read:clients.my-client.projects.project.bad-project",
				),
			)

			keys, err := a.AccessToProjectKeys("my-client")
			Expect(err).NotTo(HaveOccurred())
			Expect(keys.Equal(keyset.Some([]string{"one-project"}))).To(BeTrue())
		})
	})
})

var _ = Describe("Checker", func() {
	It("splits direct children from deeper descendants under only_direct", func() {
		claimList := []string{
			"read:clients.this-guy.stuff",
			"read:clients.this-guy.wooa",
			"read:clients.this-guy.wooa.and.another",
			"read:clients.this-guy.wat.is.this",
		}

		direct := checker.SubClaimsDirectChildren("read:clients.this-guy", claimList, true)
		Expect(direct).To(Equal([]string{"stuff", "wooa"}))

		all := checker.SubClaimsDirectChildren("read:clients.this-guy", claimList, false)
		Expect(all).To(Equal([]string{"stuff", "wat", "wooa"}))
	})
})
