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

// Package progress renders a single line progress bar which is redrawn in
// place on every update:
//
//	[██████████] 50% | Elapsed Time: 00:00:12
//
// The two halves of the bar are told apart by their background color.
// A Renderer is not safe for concurrent use, callers must serialize updates.
package progress

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// EnvRefreshRate overrides the default refresh rate of callers driving a bar
// from a ticker.
const EnvRefreshRate = "TIPROGRESS_REFRESH_RATE"

const defaultRefreshRate = time.Millisecond * 100

// Bar is anything which can display the current value of a task.
type Bar interface {
	Update(current int) error
}

// RefreshRate returns the interval between two redraws.
func RefreshRate() time.Duration {
	v := os.Getenv(EnvRefreshRate)
	if v == "" {
		return defaultRefreshRate
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.L().Warn("Ignore invalid refresh rate", zap.String("value", v))
		return defaultRefreshRate
	}
	return d
}
