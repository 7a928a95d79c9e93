// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lockfile models resolved dependency entries and loads lock
// snapshots from disk in their TOML and JSON on-disk forms.
package lockfile
