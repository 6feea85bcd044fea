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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/joomcode/errorx"
	"github.com/pingcap/check"
	"github.com/pingcap/errors"
)

type configSuite struct{}

var _ = check.Suite(&configSuite{})

func (s *configSuite) TestDefaultConfig(c *check.C) {
	cfg := DefaultConfig()
	c.Assert(cfg.Length, check.Equals, 50)
	c.Assert(cfg.MinValue, check.Equals, 0)
	c.Assert(cfg.MaxValue, check.Equals, 100)
	c.Assert(cfg.CompletedColor, check.Equals, "bgGreen")
	c.Assert(cfg.IncompleteColor, check.Equals, "bgRed")
	c.Assert(cfg.CompletedStyle, check.Equals, BarBlock)
	c.Assert(cfg.IncompleteStyle, check.Equals, BarBlock)
	c.Assert(cfg.SpinnerStyle, check.Equals, SpinnerLine)
	c.Assert(cfg.Validate(), check.IsNil)
}

func (s *configSuite) TestParseConfig(c *check.C) {
	cfg, err := ParseConfig([]byte(`
length: 20
min_value: 10
max_value: 30
incomplete_color: bgHiBlack
completed_style: hash
incomplete_style: dot
spinner_style: brackets
`))
	c.Assert(err, check.IsNil)
	c.Assert(cfg.Length, check.Equals, 20)
	c.Assert(cfg.MinValue, check.Equals, 10)
	c.Assert(cfg.MaxValue, check.Equals, 30)
	c.Assert(cfg.CompletedColor, check.Equals, "bgGreen")
	c.Assert(cfg.IncompleteColor, check.Equals, "bgHiBlack")
	c.Assert(cfg.CompletedStyle, check.Equals, BarHash)
	c.Assert(cfg.IncompleteStyle, check.Equals, BarDot)
	c.Assert(cfg.SpinnerStyle, check.Equals, SpinnerBrackets)

	buf := new(bytes.Buffer)
	r, err := cfg.NewRenderer(WithWriter(buf), WithClock(newFakeClock().Now))
	c.Assert(err, check.IsNil)
	c.Assert(r.Update(20), check.IsNil)
	c.Assert(buf.String(), check.Matches,
		"\r\\[\x1b\\[42m##########\x1b\\[0m\x1b\\[100m••••••••••\x1b\\[0m\\] 50% ┤ Elapsed Time: 00:00:00")
}

func (s *configSuite) TestParseConfigErrors(c *check.C) {
	_, err := ParseConfig([]byte("spinner_style: wobble\n"))
	c.Assert(errorx.IsOfType(err, ErrInvalidConfig), check.IsTrue)

	_, err = ParseConfig([]byte("lenght: 10\n"))
	c.Assert(errorx.IsOfType(err, ErrInvalidConfig), check.IsTrue)

	_, err = ParseConfig([]byte("length: [1, 2]\n"))
	c.Assert(err, check.NotNil)
}

func (s *configSuite) TestValidate(c *check.C) {
	cases := []struct {
		mutate func(*Config)
		match  string
	}{
		{func(cfg *Config) { cfg.Length = 0 }, ".*length must be positive.*"},
		{func(cfg *Config) { cfg.MinValue, cfg.MaxValue = 5, 5 }, ".*must be less than max_value.*"},
		{func(cfg *Config) { cfg.MinValue, cfg.MaxValue = 9, 1 }, ".*must be less than max_value.*"},
		{func(cfg *Config) { cfg.CompletedColor = "plaid" }, ".*completed_color.*unknown color.*"},
		{func(cfg *Config) { cfg.IncompleteColor = "" }, ".*incomplete_color.*empty color.*"},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		c.Assert(cfg.Validate(), check.ErrorMatches, tc.match)
		r, err := cfg.NewRenderer()
		c.Assert(r, check.IsNil)
		c.Assert(err, check.NotNil)
	}
}

func (s *configSuite) TestLoadConfig(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "style.yaml")
	c.Assert(ioutil.WriteFile(path, []byte("length: 12\nspinner_style: star\n"), 0644), check.IsNil)

	cfg, err := LoadConfig(path)
	c.Assert(err, check.IsNil)
	c.Assert(cfg.Length, check.Equals, 12)
	c.Assert(cfg.MaxValue, check.Equals, 100)
	c.Assert(cfg.SpinnerStyle, check.Equals, SpinnerStar)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	c.Assert(err, check.NotNil)
	c.Assert(os.IsNotExist(errors.Cause(err)), check.IsTrue)
}

func (s *configSuite) TestOptionsOverrideConfig(c *check.C) {
	buf := new(bytes.Buffer)
	cfg := DefaultConfig()
	cfg.Length = 4
	r, err := cfg.NewRenderer(WithWriter(buf), WithClock(newFakeClock().Now), WithCompletedStyle(BarStar), WithCompletedColor(""))
	c.Assert(err, check.IsNil)
	c.Assert(r.Update(100), check.IsNil)
	c.Assert(buf.String(), check.Equals, "\r[★★★★\x1b[0m\x1b[41m\x1b[0m] 100% | Elapsed Time: 00:00:00")
}
