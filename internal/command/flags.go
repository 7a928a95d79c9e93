// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewDiffFlags constructs the diff flags. cfgFile is the loaded YAML config
// path ("" when no config file exists); string flags pick up defaults from
// it through altsrc sources.
func NewDiffFlags(cfgFile string) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "show unchanged entries",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LOCKDIFF_NO_COLOR"),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "stat",
			Usage: "append a per-kind change count summary",
			Value: false,
		},
	}

	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LOCKDIFF_OUTPUT"),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	if cfgFile != "" {
		outputFlag = NameSpacedValueChainFlagFromConfigFile("diff", cfgFile, outputFlag)
	}

	return append(flags, outputFlag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
