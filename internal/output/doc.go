// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a change set for humans (plain or colored text, a
// summary table) and for machines (JSON, YAML).
package output
