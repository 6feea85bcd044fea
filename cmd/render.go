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
	"strconv"

	"github.com/pingcap-incubator/tiprogress/pkg/cliutil/progress"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		bar     barOptions
		newline bool
	)

	cmd := &cobra.Command{
		Use:   "render <value> [OPTIONS]",
		Short: "Draw the bar once for a value",
		Long: `Draw the bar once for a value, without a trailing newline unless
--newline is given. Scripts reporting their own progress call it repeatedly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Annotatef(err, "invalid value '%s'", args[0])
			}
			cfg, err := bar.config(cmd)
			if err != nil {
				return err
			}
			r, err := cfg.NewRenderer(progress.WithWriter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if err := r.Update(value); err != nil {
				return err
			}
			if newline {
				return r.Finish()
			}
			return nil
		},
	}

	bar.addFlags(cmd)
	cmd.Flags().BoolVarP(&newline, "newline", "n", false, "end the line after the bar")

	return cmd
}
