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

package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputs io.Writer = os.Stderr

	colorWarn  = color.New(color.FgHiYellow)
	colorError = color.New(color.FgHiRed)
)

// SetOutput changes where the user facing messages go
func SetOutput(w io.Writer) {
	outputs = w
}

// Output prints a message as is
func Output(msg string) {
	_, _ = fmt.Fprintln(outputs, msg)
}

// Infof prints an informative message
func Infof(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(outputs, format+"\n", args...)
}

// Warnf prints a warning in yellow
func Warnf(format string, args ...interface{}) {
	_, _ = colorWarn.Fprintf(outputs, format+"\n", args...)
}

// Errorf prints an error in red
func Errorf(format string, args ...interface{}) {
	_, _ = colorError.Fprintf(outputs, format+"\n", args...)
}

// Init replaces the global zap logger by a console logger of the given
// level writing to stderr, stdout is left to the progress bar.
func Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return errors.Annotatef(err, "invalid log level '%s'", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return errors.Trace(err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
