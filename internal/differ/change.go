// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/lock-diff/lock-diff/internal/lockfile"
)

// Kind classifies a single package's transition between two snapshots. The
// declaration order doubles as the sort precedence within a name.
type Kind int

const (
	// Added means the (name, version) key exists only in the new snapshot.
	Added Kind = iota
	// Removed means the key exists only in the old snapshot.
	Removed
	// Updated means the same name moved to a different version.
	Updated
	// Changed means the key is identical but source or checksum differ.
	Changed
	// Unchanged means key, source and checksum are all identical.
	Unchanged
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	case Changed:
		return "changed"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Change is one diff result. Old is nil for Added; New is nil for Removed.
// Every other kind carries both sides.
type Change struct {
	Kind Kind
	Old  *lockfile.Package
	New  *lockfile.Package
}

// Name returns the package name from whichever side is populated.
func (c Change) Name() string {
	if c.New != nil {
		return c.New.Name
	}
	if c.Old != nil {
		return c.Old.Name
	}
	return ""
}

// ChangeSet is the complete ordered classification of every record from two
// snapshots. Every input record appears in exactly one Change.
type ChangeSet []Change

// Counts tallies changes per kind.
func (cs ChangeSet) Counts() map[Kind]int {
	counts := make(map[Kind]int, 5)
	for _, c := range cs {
		counts[c.Kind]++
	}
	return counts
}

// HasChanges reports whether any change is something other than Unchanged.
func (cs ChangeSet) HasChanges() bool {
	for _, c := range cs {
		if c.Kind != Unchanged {
			return true
		}
	}
	return false
}
