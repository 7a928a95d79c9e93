// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"sort"

	"github.com/lock-diff/lock-diff/internal/index"
	"github.com/lock-diff/lock-diff/internal/lockfile"
)

// Diff compares two package indexes and classifies every record from either
// side into exactly one Change. The result is sorted by name, then kind
// precedence, then version, so the output is identical no matter how the
// input files ordered their entries.
//
// Matching happens in two passes. Exact (name, version) keys present on both
// sides become Unchanged or Changed depending on their metadata. Keys left
// over on either side are then bridged by name: an upgrade should read as
// "tokio 1.15.0 -> 1.34.0", not as an unrelated removal plus addition.
func Diff(oldIx, newIx *index.Index) ChangeSet {
	changes := make(ChangeSet, 0, oldIx.Len()+newIx.Len())

	matchedOld := make(map[lockfile.Key]bool, oldIx.Len())
	matchedNew := make(map[lockfile.Key]bool, newIx.Len())

	// Pass 1: exact identity matches.
	for _, k := range newIx.Keys() {
		oldPkg, ok := oldIx.Get(k.Name, k.Version)
		if !ok {
			continue
		}
		newPkg, _ := newIx.Get(k.Name, k.Version)
		matchedOld[k] = true
		matchedNew[k] = true

		kind := Unchanged
		if oldPkg.Source != newPkg.Source || oldPkg.Checksum != newPkg.Checksum {
			kind = Changed
		}
		changes = append(changes, Change{Kind: kind, Old: &oldPkg, New: &newPkg})
	}

	// Pass 2: bridge the leftovers by name.
	for _, name := range leftoverNames(oldIx, newIx, matchedOld, matchedNew) {
		oldRem := unmatched(oldIx.ByName(name), matchedOld)
		newRem := unmatched(newIx.ByName(name), matchedNew)
		changes = append(changes, pairByRank(oldRem, newRem)...)
	}

	sortChanges(changes)
	return changes
}

// pairByRank matches remaining same-name records and emits the resulting
// changes. With a single candidate on each side the pairing is the plain
// upgrade case. With several versions on both sides the i-th oldest old
// version pairs with the i-th oldest new version; this positional heuristic
// is deterministic and linear, at the cost of occasionally pairing versions
// a cost-based matcher would not. When several old versions collapse onto a
// single new one there is no defensible pairing, so nothing is bridged and
// each side reports independently.
func pairByRank(oldRem, newRem []lockfile.Package) []Change {
	var changes []Change

	paired := min(len(oldRem), len(newRem))
	if len(oldRem) > 1 && len(newRem) == 1 {
		paired = 0
	}

	for i := 0; i < paired; i++ {
		o, n := oldRem[i], newRem[i]
		changes = append(changes, Change{Kind: Updated, Old: &o, New: &n})
	}
	for i := paired; i < len(oldRem); i++ {
		o := oldRem[i]
		changes = append(changes, Change{Kind: Removed, Old: &o})
	}
	for i := paired; i < len(newRem); i++ {
		n := newRem[i]
		changes = append(changes, Change{Kind: Added, New: &n})
	}

	return changes
}

// leftoverNames collects, deterministically, every package name that still
// has unmatched records on either side.
func leftoverNames(oldIx, newIx *index.Index, matchedOld, matchedNew map[lockfile.Key]bool) []string {
	seen := make(map[string]bool)
	var names []string

	for _, k := range oldIx.Keys() {
		if !matchedOld[k] && !seen[k.Name] {
			seen[k.Name] = true
			names = append(names, k.Name)
		}
	}
	for _, k := range newIx.Keys() {
		if !matchedNew[k] && !seen[k.Name] {
			seen[k.Name] = true
			names = append(names, k.Name)
		}
	}

	sort.Strings(names)
	return names
}

// unmatched filters a version-ascending bucket down to records not consumed
// by the exact-key pass.
func unmatched(packages []lockfile.Package, matched map[lockfile.Key]bool) []lockfile.Package {
	var rem []lockfile.Package
	for _, p := range packages {
		if !matched[p.Key()] {
			rem = append(rem, p)
		}
	}
	return rem
}

// sortChanges orders a change set by name, then kind precedence, then old
// and new version, which makes the output stable for any input ordering.
func sortChanges(changes ChangeSet) {
	sort.SliceStable(changes, func(i, j int) bool {
		a, b := changes[i], changes[j]
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if av, bv := versionOf(a.Old), versionOf(b.Old); av != bv {
			return index.VersionLess(av, bv)
		}
		return index.VersionLess(versionOf(a.New), versionOf(b.New))
	})
}

func versionOf(p *lockfile.Package) string {
	if p == nil {
		return ""
	}
	return p.Version
}
