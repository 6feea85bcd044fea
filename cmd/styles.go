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
	"fmt"

	"github.com/pingcap-incubator/tiprogress/pkg/cliutil/progress"
	"github.com/pingcap-incubator/tiprogress/pkg/utils"
	"github.com/spf13/cobra"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the bar and spinner styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			barTable := [][]string{{"Bar Style", "Rendered", "Glyph Set"}}
			for _, s := range progress.BarStyles() {
				glyphs := s.Glyphs()
				barTable = append(barTable, []string{s.String(), string(glyphs[0]), spaced(glyphs)})
			}
			utils.FprintTable(out, barTable, true)
			fmt.Fprintln(out)

			spinnerTable := [][]string{{"Spinner Style", "Sequence"}}
			for _, s := range progress.SpinnerStyles() {
				spinnerTable = append(spinnerTable, []string{s.String(), spaced(s.Glyphs())})
			}
			utils.FprintTable(out, spinnerTable, true)
			return nil
		},
	}
}

func spaced(glyphs []rune) string {
	s := make([]rune, 0, len(glyphs)*2)
	for i, g := range glyphs {
		if i > 0 {
			s = append(s, ' ')
		}
		s = append(s, g)
	}
	return string(s)
}
