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
	"io/ioutil"

	"github.com/creasty/defaults"
	"github.com/joomcode/errorx"
	"github.com/pingcap/errors"
	"gopkg.in/yaml.v2"
)

// Config represents a bar described in a style file, e.g.
//
//	length: 40
//	max_value: 100
//	completed_color: bgGreen
//	incomplete_color: bgHiBlack
//	completed_style: hash
//	incomplete_style: dot
//	spinner_style: brackets
type Config struct {
	Length          int          `yaml:"length" default:"50"`
	MinValue        int          `yaml:"min_value"`
	MaxValue        int          `yaml:"max_value" default:"100"`
	CompletedColor  string       `yaml:"completed_color" default:"bgGreen"`
	IncompleteColor string       `yaml:"incomplete_color" default:"bgRed"`
	CompletedStyle  BarStyle     `yaml:"completed_style"`
	IncompleteStyle BarStyle     `yaml:"incomplete_style"`
	SpinnerStyle    SpinnerStyle `yaml:"spinner_style"`
}

// DefaultConfig returns the config of a bar built without any option.
func DefaultConfig() Config {
	var c Config
	_ = defaults.Set(&c)
	return c
}

// UnmarshalYAML sets default values when unmarshaling the style file
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Config
	if err := defaults.Set(c); err != nil {
		return errors.Trace(err)
	}
	return unmarshal((*plain)(c))
}

// LoadConfig reads a style file.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Annotatef(err, "read style file %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a style file, keys absent from data keep their default.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		if errorx.IsOfType(err, ErrInvalidConfig) {
			return Config{}, err
		}
		return Config{}, ErrInvalidConfig.Wrap(err, "parse style file")
	}
	return c, nil
}

// Validate rejects the configs for which a bar is meaningless.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return ErrInvalidConfig.New("length must be positive, got %d", c.Length)
	}
	if c.MinValue >= c.MaxValue {
		return ErrInvalidConfig.New("min_value (%d) must be less than max_value (%d)", c.MinValue, c.MaxValue).
			WithProperty(errPropMin, c.MinValue).
			WithProperty(errPropMax, c.MaxValue)
	}
	if _, err := ParseColor(c.CompletedColor); err != nil {
		return errors.Annotate(err, "completed_color")
	}
	if _, err := ParseColor(c.IncompleteColor); err != nil {
		return errors.Annotate(err, "incomplete_color")
	}
	return nil
}

// NewRenderer validates the config and builds a renderer from it, opts are
// applied after the config so they take precedence.
func (c Config) NewRenderer(opts ...Option) (*Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	completed, _ := ParseColor(c.CompletedColor)
	incomplete, _ := ParseColor(c.IncompleteColor)

	all := append([]Option{
		WithCompletedColor(completed),
		WithIncompleteColor(incomplete),
		WithCompletedStyle(c.CompletedStyle),
		WithIncompleteStyle(c.IncompleteStyle),
		WithSpinnerStyle(c.SpinnerStyle),
	}, opts...)
	return NewRenderer(c.Length, c.MaxValue, c.MinValue, all...), nil
}
