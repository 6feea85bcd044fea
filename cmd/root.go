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
	"os"

	"github.com/fatih/color"
	"github.com/pingcap-incubator/tiprogress/pkg/log"
	"github.com/pingcap-incubator/tiprogress/pkg/version"
	"github.com/spf13/cobra"
)

// environment variables read by the CLI
const (
	EnvBacktrace = "TIPROGRESS_BACKTRACE"
	EnvDebug     = "TIPROGRESS_DEBUG"
)

var (
	rootCmd       *cobra.Command
	showBacktrace bool
	logLevel      string
)

func init() {
	showBacktrace = len(os.Getenv(EnvBacktrace)) > 0
	cobra.EnableCommandSorting = false
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tiprogress",
		Short:         "Draw a progress bar in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.NewTiProgressVersion().FullInfo(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logLevel
			if len(os.Getenv(EnvDebug)) > 0 {
				level = "debug"
			}
			return log.Init(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level of the diagnostics written to stderr (debug, info, warn, error)")

	cmd.AddCommand(
		newDemoCmd(),
		newRenderCmd(),
		newStylesCmd(),
	)
	return cmd
}

// Execute executes the root command
func Execute() {
	var code int
	err := rootCmd.Execute()
	if err != nil {
		if showBacktrace {
			log.Output(color.RedString("Error: %+v", err))
		} else {
			log.Output(color.RedString("Error: %v", err))
		}
		code = 1
	}
	os.Exit(code)
}
