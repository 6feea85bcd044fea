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

package progress

import (
	"fmt"
	"io"
	"math/bits"
	"os"
	"strings"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

type options struct {
	completedColor  string
	incompleteColor string
	completedStyle  BarStyle
	incompleteStyle BarStyle
	spinnerStyle    SpinnerStyle
	out             io.Writer
	clock           func() time.Time
}

// Option customizes a Renderer
type Option func(*options)

// WithCompletedColor sets the escape sequence of the completed segment
func WithCompletedColor(c string) Option {
	return func(o *options) {
		o.completedColor = c
	}
}

// WithIncompleteColor sets the escape sequence of the incomplete segment
func WithIncompleteColor(c string) Option {
	return func(o *options) {
		o.incompleteColor = c
	}
}

// WithCompletedStyle sets the glyph style of the completed segment
func WithCompletedStyle(s BarStyle) Option {
	return func(o *options) {
		o.completedStyle = s
	}
}

// WithIncompleteStyle sets the glyph style of the incomplete segment
func WithIncompleteStyle(s BarStyle) Option {
	return func(o *options) {
		o.incompleteStyle = s
	}
}

// WithSpinnerStyle sets the spinner sequence
func WithSpinnerStyle(s SpinnerStyle) Option {
	return func(o *options) {
		o.spinnerStyle = s
	}
}

// WithWriter sets the output stream for the bar (default os.Stdout)
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithClock replaces time.Now as the source of the elapsed time
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// Renderer draws a bar for values in [minValue, maxValue].
type Renderer struct {
	length          int
	minValue        int
	maxValue        int
	completedColor  string
	incompleteColor string
	completedGlyph  string
	incompleteGlyph string
	spinner         []rune

	spinnerIndex int       // next spinner glyph, always in [0, len(spinner))
	startTime    time.Time // when the renderer was created

	out io.Writer
	now func() time.Time
}

// NewRenderer creates a renderer of the given width. The elapsed time is
// measured from this call. A negative length draws an empty bar.
func NewRenderer(length, maxValue, minValue int, opts ...Option) *Renderer {
	o := options{
		completedColor:  DefaultCompletedColor,
		incompleteColor: DefaultIncompleteColor,
		completedStyle:  BarBlock,
		incompleteStyle: BarBlock,
		spinnerStyle:    SpinnerLine,
		out:             os.Stdout,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if length < 0 {
		zap.L().Debug("Negative bar length, drawing an empty bar", zap.Int("length", length))
		length = 0
	}
	if minValue >= maxValue {
		zap.L().Debug("Empty or inverted progress range",
			zap.Int("min", minValue), zap.Int("max", maxValue))
	}

	return &Renderer{
		length:          length,
		minValue:        minValue,
		maxValue:        maxValue,
		completedColor:  o.completedColor,
		incompleteColor: o.incompleteColor,
		completedGlyph:  string(o.completedStyle.Glyphs()[0]),
		incompleteGlyph: string(o.incompleteStyle.Glyphs()[0]),
		spinner:         o.spinnerStyle.Glyphs(),
		startTime:       o.clock(),
		out:             o.out,
		now:             o.clock,
	}
}

// Update redraws the bar for current, replacing the line written by the
// previous call. Every successful call advances the spinner.
func (r *Renderer) Update(current int) error {
	if current < r.minValue || current > r.maxValue {
		return ErrOutOfRange.New("the value must be between %d and %d", r.minValue, r.maxValue).
			WithProperty(errPropValue, current).
			WithProperty(errPropMin, r.minValue).
			WithProperty(errPropMax, r.maxValue)
	}

	completed, percent := r.measure(current)
	bar := r.completedColor + strings.Repeat(r.completedGlyph, completed) + colorReset +
		r.incompleteColor + strings.Repeat(r.incompleteGlyph, r.length-completed) + colorReset

	spinner := r.spinner[r.spinnerIndex]
	r.spinnerIndex = (r.spinnerIndex + 1) % len(r.spinner)

	elapsed := FormatElapsed(r.now().Sub(r.startTime))

	// A redraw is a single write.
	if _, err := fmt.Fprintf(r.out, "\r[%s] %d%% %c Elapsed Time: %s", bar, percent, spinner, elapsed); err != nil {
		return errors.AddStack(err)
	}
	return nil
}

// Finish moves to the next line so the last drawn bar stays on screen.
func (r *Renderer) Finish() error {
	return errors.AddStack(moveCursorToNextLine(r.out))
}

// measure returns the completed width and the integer percentage of an
// in-range value, both rounded down. The products are computed on 128 bits
// so the whole int range is supported.
func (r *Renderer) measure(current int) (completed, percent int) {
	if r.maxValue <= r.minValue {
		return r.length, 100
	}
	span := uint64(r.maxValue) - uint64(r.minValue)
	done := uint64(current) - uint64(r.minValue)
	completed = int(scale(uint64(r.length), done, span))
	percent = int(scale(100, done, span))
	if completed > r.length {
		completed = r.length
	}
	return completed, percent
}

// scale returns floor(n*done/span), requires done <= span and span > 0.
func scale(n, done, span uint64) uint64 {
	hi, lo := bits.Mul64(n, done)
	q, _ := bits.Div64(hi, lo, span)
	return q
}

// FormatElapsed formats d as HH:MM:SS. Hours keep counting past 24.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
