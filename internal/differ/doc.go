// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the ordered change set between two lock snapshot
// indexes, classifying every package as added, removed, updated, changed, or
// unchanged.
package differ
