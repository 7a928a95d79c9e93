// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"

	"github.com/lock-diff/lock-diff/internal/log"
)

// Package is one resolved dependency entry from a lock snapshot. Name is not
// unique within a snapshot; several major versions of the same package may
// coexist. Source and Checksum are opaque and optional (path dependencies
// carry neither).
type Package struct {
	Name         string   `toml:"name" json:"name" yaml:"name"`
	Version      string   `toml:"version" json:"version" yaml:"version"`
	Source       string   `toml:"source" json:"source,omitempty" yaml:"source,omitempty"`
	Checksum     string   `toml:"checksum" json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Dependencies []string `toml:"dependencies" json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Key is the (name, version) identity of a package within a snapshot.
type Key struct {
	Name    string
	Version string
}

// Key returns the identity key of the package.
func (p Package) Key() Key {
	return Key{Name: p.Name, Version: p.Version}
}

func (k Key) String() string {
	return k.Name + " " + k.Version
}

// Snapshot is one parsed lock file: its packages in file order plus the lock
// format version carried by the file itself.
type Snapshot struct {
	Path          string
	FormatVersion int
	Packages      []Package
}

// Load reads and parses a lock snapshot. Files with a .json extension are
// parsed as JSON documents; everything else is decoded as a TOML manifest
// with [[package]] entries.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lock file %s: %w", path, err)
	}

	var snap *Snapshot
	if strings.EqualFold(filepath.Ext(path), ".json") {
		snap, err = parseJSON(data)
	} else {
		snap, err = parseTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse lock file %s: %w", path, err)
	}

	snap.Path = path
	log.Debugf("loaded %s: format=%d packages=%d", path, snap.FormatVersion, len(snap.Packages))
	return snap, nil
}

func parseTOML(data []byte) (*Snapshot, error) {
	var doc struct {
		Version  int       `toml:"version"`
		Packages []Package `toml:"package"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := validate(doc.Packages); err != nil {
		return nil, err
	}
	return &Snapshot{FormatVersion: doc.Version, Packages: doc.Packages}, nil
}

func parseJSON(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("not a valid JSON document")
	}

	doc := gjson.ParseBytes(data)
	snap := &Snapshot{FormatVersion: int(doc.Get("version").Int())}

	for _, entry := range doc.Get("package").Array() {
		p := Package{
			Name:     entry.Get("name").String(),
			Version:  entry.Get("version").String(),
			Source:   entry.Get("source").String(),
			Checksum: entry.Get("checksum").String(),
		}
		for _, d := range entry.Get("dependencies").Array() {
			p.Dependencies = append(p.Dependencies, d.String())
		}
		snap.Packages = append(snap.Packages, p)
	}

	if err := validate(snap.Packages); err != nil {
		return nil, err
	}
	return snap, nil
}

// validate rejects entries missing the fields identity is built from.
// Source, checksum and dependencies are legitimately absent.
func validate(packages []Package) error {
	for i, p := range packages {
		if p.Name == "" {
			return fmt.Errorf("package entry %d is missing a name", i)
		}
		if p.Version == "" {
			return fmt.Errorf("package %q is missing a version", p.Name)
		}
	}
	return nil
}
