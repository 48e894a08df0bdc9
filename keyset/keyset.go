// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package keyset implements the four-variant key-set lattice that
// Ability's key-set views are expressed over: All, None, Some(keys),
// and AllExceptSome(keys), with a Remove operation giving set
// difference lifted to the lattice. It is a narrow, self-contained
// collaborator — the rest of this module depends only on the KeySet
// interface and these four constructors.
package keyset

import "sort"

// KeySet is a set of key strings drawn from one of four shapes: every
// key (All), no key (None), an explicit finite set (Some), or every
// key except an explicit finite set (AllExceptSome).
type KeySet interface {
	// Remove returns the set difference of the receiver and other.
	Remove(other KeySet) KeySet
	// Equal reports whether the receiver and other denote the same
	// set of keys.
	Equal(other KeySet) bool
	// String returns a human-readable representation, for logging and
	// test failure messages.
	String() string
}

// All returns the KeySet containing every possible key.
func All() KeySet { return allSet{} }

// None returns the empty KeySet.
func None() KeySet { return noneSet{} }

// Some returns the KeySet containing exactly the given keys.
func Some(keys []string) KeySet { return someSet{keys: toSet(keys)} }

// AllExceptSome returns the KeySet containing every key except the
// given ones.
func AllExceptSome(keys []string) KeySet { return allExceptSomeSet{keys: toSet(keys)} }

func toSet(keys []string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func diff(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
