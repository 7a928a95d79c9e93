// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"

	"github.com/lock-diff/lock-diff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program name",
			args:     []string{"lock-diff"},
			expected: []string{"lock-diff"},
		},
		{
			name:     "no duplicates",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--output", "text", "--stat"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--output", "text", "--stat"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--output", "json", "--stat", "--output", "text"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--stat", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--stat", "--no-color", "--stat"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--no-color", "--stat"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--output=json", "--stat", "--output=text"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--stat", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--output=json", "--output", "text"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--output", "text"},
		},
		{
			name:     "short and long spellings deduplicate together",
			args:     []string{"lock-diff", "old.lock", "new.lock", "-o", "json", "--output", "text"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--output", "text"},
		},
		{
			name:     "verbose short flag",
			args:     []string{"lock-diff", "old.lock", "new.lock", "-v", "--verbose"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--verbose"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"lock-diff", "old.lock", "new.lock", "--no-color", "--verbose"},
			expected: []string{"lock-diff", "old.lock", "new.lock", "--no-color", "--verbose"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"lock-diff", "a", "b", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"lock-diff", "a", "b", "--output", "c"},
		},
		{
			name:     "stdin positional dash preserved",
			args:     []string{"lock-diff", "-", "new.lock", "--stat"},
			expected: []string{"lock-diff", "-", "new.lock", "--stat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if len(result) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	got := handleNakedCommand([]string{"lock-diff"})
	want := []string{"lock-diff", "--help"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handleNakedCommand() = %v, want %v", got, want)
	}

	args := []string{"lock-diff", "old.lock", "new.lock"}
	if got := handleNakedCommand(args); !reflect.DeepEqual(got, args) {
		t.Errorf("handleNakedCommand() = %v, want unchanged", got)
	}
}

func TestProcessSetOnly(t *testing.T) {
	config.Config = config.Type{
		Source: "test",
		Data: map[string]interface{}{
			"sets": map[string]interface{}{
				"audit": []interface{}{"--verbose", "-o text"},
			},
		},
	}
	defer func() { config.Config = config.Type{} }()

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set argument",
			args:     []string{"lock-diff", "old.lock", "new.lock"},
			expected: []string{"lock-diff", "old.lock", "new.lock"},
		},
		{
			name:     "set expanded in place",
			args:     []string{"lock-diff", "@audit", "old.lock", "new.lock"},
			expected: []string{"lock-diff", "--verbose", "-o", "text", "old.lock", "new.lock"},
		},
		{
			name:     "unknown set removed without expansion",
			args:     []string{"lock-diff", "@nope", "old.lock", "new.lock"},
			expected: []string{"lock-diff", "old.lock", "new.lock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processSetOnly(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processSetOnly(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}
