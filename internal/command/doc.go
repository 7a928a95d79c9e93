// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: app initialization, flags, and the
// diff action that drives the load -> index -> diff -> render pipeline.
package command
