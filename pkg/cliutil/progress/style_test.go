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
	"github.com/fatih/color"
	"github.com/pingcap/check"
	"gopkg.in/yaml.v2"
)

type styleSuite struct{}

var _ = check.Suite(&styleSuite{})

func (s *styleSuite) TestBarGlyphs(c *check.C) {
	want := map[BarStyle]string{
		BarBlock:     "█",
		BarArrow:     "←↖↑↗→↘↓↙",
		BarEqualSign: "=",
		BarHash:      "#",
		BarPlusMinus: "+-",
		BarStar:      "★",
		BarCircle:    "●",
		BarDot:       "•",
	}
	c.Assert(BarStyles(), check.HasLen, len(want))
	for style, glyphs := range want {
		c.Assert(string(style.Glyphs()), check.Equals, glyphs)
	}
	c.Assert(string(BarStyle(-1).Glyphs()), check.Equals, "█")
	c.Assert(BarStyle(42).String(), check.Equals, "unknown")
}

func (s *styleSuite) TestSpinnerGlyphs(c *check.C) {
	want := map[SpinnerStyle]string{
		SpinnerLine:           `|/-\`,
		SpinnerCircle:         "◐◓◑◒",
		SpinnerDot:            ".oO0",
		SpinnerPlusMinus:      "+×÷-",
		SpinnerStar:           "✶✹✷✸",
		SpinnerArrow:          "←↖↑↗→↘↓↙",
		SpinnerTriangle:       "▲►▼◄",
		SpinnerSquares:        "■□▪▫",
		SpinnerBrackets:       "┤┘┴└├┌┬┐",
		SpinnerHorizontalBars: "▌▄▀▐",
		SpinnerCircleQuarter:  "◜◝◞◟",
		SpinnerCircleArc:      "◷◶◵◴",
	}
	c.Assert(SpinnerStyles(), check.HasLen, len(want))
	for style, glyphs := range want {
		c.Assert(string(style.Glyphs()), check.Equals, glyphs)
	}
	c.Assert(string(SpinnerStyle(100).Glyphs()), check.Equals, `|/-\`)
}

func (s *styleSuite) TestParseStyles(c *check.C) {
	for _, style := range BarStyles() {
		got, err := ParseBarStyle(style.String())
		c.Assert(err, check.IsNil)
		c.Assert(got, check.Equals, style)
	}
	for _, style := range SpinnerStyles() {
		got, err := ParseSpinnerStyle(style.String())
		c.Assert(err, check.IsNil)
		c.Assert(got, check.Equals, style)
	}

	got, err := ParseBarStyle("EqualSign")
	c.Assert(err, check.IsNil)
	c.Assert(got, check.Equals, BarEqualSign)
	sp, err := ParseSpinnerStyle(" horizontal_bars ")
	c.Assert(err, check.IsNil)
	c.Assert(sp, check.Equals, SpinnerHorizontalBars)

	_, err = ParseBarStyle("zigzag")
	c.Assert(err, check.ErrorMatches, ".*unknown bar style 'zigzag'.*")
	_, err = ParseSpinnerStyle("")
	c.Assert(err, check.NotNil)
}

func (s *styleSuite) TestStyleYAML(c *check.C) {
	var v struct {
		Bar     BarStyle     `yaml:"bar"`
		Spinner SpinnerStyle `yaml:"spinner"`
	}
	c.Assert(yaml.Unmarshal([]byte("bar: plus-minus\nspinner: circle-arc\n"), &v), check.IsNil)
	c.Assert(v.Bar, check.Equals, BarPlusMinus)
	c.Assert(v.Spinner, check.Equals, SpinnerCircleArc)

	out, err := yaml.Marshal(&v)
	c.Assert(err, check.IsNil)
	c.Assert(string(out), check.Equals, "bar: plus-minus\nspinner: circle-arc\n")

	c.Assert(yaml.Unmarshal([]byte("bar: wave\n"), &v), check.NotNil)
}

func (s *styleSuite) TestEscape(c *check.C) {
	c.Assert(Escape(color.BgGreen), check.Equals, "\x1b[42m")
	c.Assert(Escape(color.BgRed), check.Equals, "\x1b[41m")
	c.Assert(Escape(color.FgHiCyan, color.Bold), check.Equals, "\x1b[96;1m")
	c.Assert(Escape(), check.Equals, "")
	c.Assert(DefaultCompletedColor, check.Equals, "\x1b[42m")
	c.Assert(DefaultIncompleteColor, check.Equals, "\x1b[41m")
	c.Assert(colorReset, check.Equals, "\x1b[0m")
}

func (s *styleSuite) TestParseColor(c *check.C) {
	got, err := ParseColor("bgGreen")
	c.Assert(err, check.IsNil)
	c.Assert(got, check.Equals, "\x1b[42m")

	got, err = ParseColor("bgBlue + FgHiWhite")
	c.Assert(err, check.IsNil)
	c.Assert(got, check.Equals, "\x1b[44;97m")

	got, err = ParseColor("\x1b[48;5;208m")
	c.Assert(err, check.IsNil)
	c.Assert(got, check.Equals, "\x1b[48;5;208m")

	_, err = ParseColor("mauve")
	c.Assert(err, check.ErrorMatches, ".*unknown color 'mauve'.*")
	_, err = ParseColor("  ")
	c.Assert(err, check.NotNil)
}
