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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pingcap-incubator/tiprogress/pkg/cliutil/progress"
	"github.com/pingcap-incubator/tiprogress/pkg/log"
	"github.com/pingcap-incubator/tiprogress/pkg/task"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

type demoOptions struct {
	bar      barOptions
	workers  int
	unitTime time.Duration
	interval time.Duration
}

func newDemoCmd() *cobra.Command {
	opt := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo [OPTIONS]",
		Short: "Draw the bar of a simulated task",
		Long: `Draw the bar of a simulated task. Every value between --min and --max
is a unit of work taking --unit-time, shared by --workers goroutines.
The refresh interval defaults to $` + progress.EnvRefreshRate + ` when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opt)
		},
	}

	opt.bar.addFlags(cmd)
	cmd.Flags().IntVarP(&opt.workers, "workers", "w", 4, "number of concurrent workers")
	cmd.Flags().DurationVar(&opt.unitTime, "unit-time", 50*time.Millisecond, "time spent on each unit of work")
	cmd.Flags().DurationVar(&opt.interval, "interval", progress.RefreshRate(), "interval between two redraws")

	return cmd
}

func runDemo(cmd *cobra.Command, opt demoOptions) error {
	cfg, err := opt.bar.config(cmd)
	if err != nil {
		return err
	}
	bar, err := cfg.NewRenderer(progress.WithWriter(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := task.NewEventBus()
	stop := task.Display(&bus, bar)
	w := &task.Workload{
		Name:    "demo",
		From:    cfg.MinValue,
		To:      cfg.MaxValue,
		Workers: opt.workers,
		Step:    sleepStep(opt.unitTime),
	}

	start := time.Now()
	runErr := w.Run(ctx, &bus, opt.interval)
	barErr := stop()
	if err := bar.Finish(); err != nil {
		return err
	}
	if runErr != nil {
		return errors.Trace(runErr)
	}
	if barErr != nil {
		return errors.Trace(barErr)
	}

	log.Infof("Finished %d units in %s", cfg.MaxValue-cfg.MinValue, time.Since(start).Round(time.Millisecond))
	return nil
}

func sleepStep(d time.Duration) func(context.Context, int) error {
	return func(ctx context.Context, _ int) error {
		if d <= 0 {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
