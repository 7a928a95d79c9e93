// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v2"

	"github.com/lock-diff/lock-diff/internal/differ"
)

// Spit renders the change set in the requested format. Text is the human
// surface; json and yaml are stable machine surfaces that carry the full
// record on both sides of every change.
func Spit(cs differ.ChangeSet, format string, opts Options, stat bool) (string, error) {
	switch format {
	case "json":
		jsonOutput, err := json.MarshalIndent(Rows(cs, opts.ShowUnchanged), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal change set: %w", err)
		}
		return string(jsonOutput) + "\n", nil
	case "yaml":
		yamlOutput, err := yaml.Marshal(Rows(cs, opts.ShowUnchanged))
		if err != nil {
			return "", fmt.Errorf("failed to marshal change set: %w", err)
		}
		return string(yamlOutput), nil
	default:
		out := Render(cs, opts)
		if stat {
			out += "\n" + RenderStat(cs, opts.Color)
		}
		return out, nil
	}
}
