// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lock-diff/lock-diff/internal/differ"
)

func TestCompareLocks(t *testing.T) {
	oldPath := filepath.Join("testdata", "old.lock")
	newPath := filepath.Join("testdata", "new.lock")

	cs, oldSnap, newSnap, err := compareLocks(oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, 3, oldSnap.FormatVersion)
	assert.Equal(t, 3, newSnap.FormatVersion)

	// bytes and workspace-util unchanged, serde added, tokio updated.
	counts := cs.Counts()
	assert.Equal(t, 1, counts[differ.Added])
	assert.Equal(t, 1, counts[differ.Updated])
	assert.Equal(t, 2, counts[differ.Unchanged])
	assert.Equal(t, 0, counts[differ.Removed])
	assert.Equal(t, 0, counts[differ.Changed])
}

func TestCompareLocksSameFile(t *testing.T) {
	path := filepath.Join("testdata", "old.lock")

	cs, _, _, err := compareLocks(path, path)
	require.NoError(t, err)

	assert.False(t, cs.HasChanges())
	assert.Len(t, cs, 3)
}

func TestCompareLocksMissingFile(t *testing.T) {
	_, _, _, err := compareLocks(filepath.Join("testdata", "nope.lock"), filepath.Join("testdata", "new.lock"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read lock file")
}

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"lock-diff", "a.lock", "b.lock"})
	require.NoError(t, err)

	assert.Equal(t, "lock-diff", app.Name)
	assert.NotNil(t, app.Action)

	// Flags are sorted for --help.
	names := make([]string, 0, len(app.Flags))
	for _, f := range app.Flags {
		names = append(names, f.Names()[0])
	}
	assert.IsIncreasing(t, names)

	m := GetMeta(app)
	assert.Equal(t, []string{"lock-diff", "a.lock", "b.lock"}, m.Args)
}

func TestGetMetaMissing(t *testing.T) {
	assert.Zero(t, GetMeta(nil))
}

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"raw", true},
		{"", true},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := OutputValidator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDiffFlags(t *testing.T) {
	flags := NewDiffFlags("")
	names := map[string]bool{}
	for _, f := range flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}

	for _, want := range []string{"verbose", "v", "no-color", "output", "o", "stat"} {
		assert.True(t, names[want], "missing flag %q", want)
	}
}
