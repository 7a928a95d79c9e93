// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package lockfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOML(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "old.lock"))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.FormatVersion)
	require.Len(t, snap.Packages, 3)

	// File order is preserved.
	assert.Equal(t, "bytes", snap.Packages[0].Name)
	assert.Equal(t, "tokio", snap.Packages[1].Name)
	assert.Equal(t, "workspace-util", snap.Packages[2].Name)

	tokio := snap.Packages[1]
	assert.Equal(t, "1.15.0", tokio.Version)
	assert.Equal(t, "registry+https://github.com/rust-lang/crates.io-index", tokio.Source)
	assert.Equal(t, "fbbf1c778ec206785635ce8ad57fe52b3009ae9e0c9f574a728f3049d3e55838", tokio.Checksum)
	assert.Equal(t, []string{"bytes", "memchr", "mio"}, tokio.Dependencies)

	// Path dependencies have no source or checksum.
	local := snap.Packages[2]
	assert.Empty(t, local.Source)
	assert.Empty(t, local.Checksum)
}

func TestLoadJSON(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "snapshot.json"))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.FormatVersion)
	require.Len(t, snap.Packages, 2)
	assert.Equal(t, "tokio", snap.Packages[1].Name)
	assert.Equal(t, []string{"backtrace", "bytes", "mio"}, snap.Packages[1].Dependencies)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    filepath.Join("testdata", "nope.lock"),
			wantErr: "failed to read lock file",
		},
		{
			name:    "entry without version",
			path:    filepath.Join("testdata", "missing-version.lock"),
			wantErr: "missing a version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKey(t *testing.T) {
	p := Package{Name: "tokio", Version: "1.15.0"}
	assert.Equal(t, Key{Name: "tokio", Version: "1.15.0"}, p.Key())
	assert.Equal(t, "tokio 1.15.0", p.Key().String())

	// Same name at different versions yields distinct keys.
	q := Package{Name: "tokio", Version: "1.34.0"}
	assert.NotEqual(t, p.Key(), q.Key())
}
