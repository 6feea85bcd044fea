// Copyright 2020 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/pingcap-incubator/tiprogress/pkg/cliutil/progress"
	"github.com/spf13/cobra"
)

// barOptions are the flags shared by every command drawing a bar
type barOptions struct {
	configFile      string
	length          int
	minValue        int
	maxValue        int
	completedColor  string
	incompleteColor string
	completedStyle  string
	incompleteStyle string
	spinnerStyle    string
}

func (o *barOptions) addFlags(cmd *cobra.Command) {
	def := progress.DefaultConfig()
	cmd.Flags().StringVarP(&o.configFile, "config", "c", "", "path to a YAML style file")
	cmd.Flags().IntVarP(&o.length, "length", "l", def.Length, "width of the bar in characters")
	cmd.Flags().IntVar(&o.minValue, "min", def.MinValue, "value shown as 0%")
	cmd.Flags().IntVar(&o.maxValue, "max", def.MaxValue, "value shown as 100%")
	cmd.Flags().StringVar(&o.completedColor, "completed-color", def.CompletedColor, "color of the completed segment, e.g. bgGreen or bgBlue+bold")
	cmd.Flags().StringVar(&o.incompleteColor, "incomplete-color", def.IncompleteColor, "color of the incomplete segment")
	cmd.Flags().StringVar(&o.completedStyle, "completed-style", def.CompletedStyle.String(), "glyph style of the completed segment")
	cmd.Flags().StringVar(&o.incompleteStyle, "incomplete-style", def.IncompleteStyle.String(), "glyph style of the incomplete segment")
	cmd.Flags().StringVarP(&o.spinnerStyle, "spinner", "s", def.SpinnerStyle.String(), "spinner style")
}

// config loads the style file if any, then applies the flags set on the
// command line on top of it.
func (o *barOptions) config(cmd *cobra.Command) (progress.Config, error) {
	cfg := progress.DefaultConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = progress.LoadConfig(o.configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = o.length
	}
	if flags.Changed("min") {
		cfg.MinValue = o.minValue
	}
	if flags.Changed("max") {
		cfg.MaxValue = o.maxValue
	}
	if flags.Changed("completed-color") {
		cfg.CompletedColor = o.completedColor
	}
	if flags.Changed("incomplete-color") {
		cfg.IncompleteColor = o.incompleteColor
	}
	if flags.Changed("completed-style") {
		s, err := progress.ParseBarStyle(o.completedStyle)
		if err != nil {
			return cfg, err
		}
		cfg.CompletedStyle = s
	}
	if flags.Changed("incomplete-style") {
		s, err := progress.ParseBarStyle(o.incompleteStyle)
		if err != nil {
			return cfg, err
		}
		cfg.IncompleteStyle = s
	}
	if flags.Changed("spinner") {
		s, err := progress.ParseSpinnerStyle(o.spinnerStyle)
		if err != nil {
			return cfg, err
		}
		cfg.SpinnerStyle = s
	}
	return cfg, cfg.Validate()
}
