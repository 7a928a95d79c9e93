// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package index

import (
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/lock-diff/lock-diff/internal/lockfile"
)

// Index is a queryable view over one snapshot's packages, keyed by the
// (name, version) identity. It is built once and never mutated afterwards.
// If two input records share an identity key the later one wins; lock files
// should not carry duplicates, but a diff of the survivor beats a refusal.
type Index struct {
	byKey  map[lockfile.Key]lockfile.Package
	byName map[string][]lockfile.Package
	keys   []lockfile.Key
}

// Build constructs an Index from packages in input order.
func Build(packages []lockfile.Package) *Index {
	ix := &Index{
		byKey:  make(map[lockfile.Key]lockfile.Package, len(packages)),
		byName: make(map[string][]lockfile.Package),
	}

	for _, p := range packages {
		k := p.Key()
		if _, dup := ix.byKey[k]; !dup {
			ix.keys = append(ix.keys, k)
		}
		ix.byKey[k] = p
	}

	for _, k := range ix.keys {
		p := ix.byKey[k]
		ix.byName[p.Name] = append(ix.byName[p.Name], p)
	}
	for name := range ix.byName {
		sortByVersion(ix.byName[name])
	}

	return ix
}

// Get returns the package stored under the exact (name, version) key.
func (ix *Index) Get(name, version string) (lockfile.Package, bool) {
	p, ok := ix.byKey[lockfile.Key{Name: name, Version: version}]
	return p, ok
}

// ByName returns every package sharing the given name, version-ascending.
// The returned slice is shared; callers must not modify it.
func (ix *Index) ByName(name string) []lockfile.Package {
	return ix.byName[name]
}

// Keys returns the identity keys in input order, duplicates collapsed.
func (ix *Index) Keys() []lockfile.Key {
	return ix.keys
}

// Len returns the number of distinct identity keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// sortByVersion orders packages version-ascending. Parsable semver-like
// versions order semantically and come before unparsable ones, which fall
// back to a byte-wise comparison. The ordering only has to be total and
// deterministic; it drives positional pairing, nothing else.
func sortByVersion(packages []lockfile.Package) {
	sort.SliceStable(packages, func(i, j int) bool {
		return VersionLess(packages[i].Version, packages[j].Version)
	})
}

// VersionLess reports whether version a orders before version b.
func VersionLess(a, b string) bool {
	va, errA := goversion.NewVersion(a)
	vb, errB := goversion.NewVersion(b)

	switch {
	case errA == nil && errB == nil:
		if va.Equal(vb) {
			return strings.Compare(a, b) < 0
		}
		return va.LessThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return strings.Compare(a, b) < 0
	}
}
