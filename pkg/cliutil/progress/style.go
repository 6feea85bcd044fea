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
	"strings"
)

// BarStyle selects the glyph used to fill a bar segment
type BarStyle int

const (
	// BarBlock renders '█'
	BarBlock BarStyle = iota
	// BarArrow renders '←'
	BarArrow
	// BarEqualSign renders '='
	BarEqualSign
	// BarHash renders '#'
	BarHash
	// BarPlusMinus renders '+'
	BarPlusMinus
	// BarStar renders '★'
	BarStar
	// BarCircle renders '●'
	BarCircle
	// BarDot renders '•'
	BarDot
)

// SpinnerStyle selects the glyph sequence cycled by the spinner
type SpinnerStyle int

// The spinner styles.
const (
	SpinnerLine SpinnerStyle = iota
	SpinnerCircle
	SpinnerDot
	SpinnerPlusMinus
	SpinnerStar
	SpinnerArrow
	SpinnerTriangle
	SpinnerSquares
	SpinnerBrackets
	SpinnerHorizontalBars
	SpinnerCircleQuarter
	SpinnerCircleArc
)

type styleEntry struct {
	name   string
	glyphs []rune
}

// Only the first glyph of a bar set is rendered.
var barStyles = map[BarStyle]styleEntry{
	BarBlock:     {"block", []rune("█")},
	BarArrow:     {"arrow", []rune("←↖↑↗→↘↓↙")},
	BarEqualSign: {"equal-sign", []rune("=")},
	BarHash:      {"hash", []rune("#")},
	BarPlusMinus: {"plus-minus", []rune("+-")},
	BarStar:      {"star", []rune("★")},
	BarCircle:    {"circle", []rune("●")},
	BarDot:       {"dot", []rune("•")},
}

var spinnerStyles = map[SpinnerStyle]styleEntry{
	SpinnerLine:           {"line", []rune(`|/-\`)},
	SpinnerCircle:         {"circle", []rune("◐◓◑◒")},
	SpinnerDot:            {"dot", []rune(".oO0")},
	SpinnerPlusMinus:      {"plus-minus", []rune("+×÷-")},
	SpinnerStar:           {"star", []rune("✶✹✷✸")},
	SpinnerArrow:          {"arrow", []rune("←↖↑↗→↘↓↙")},
	SpinnerTriangle:       {"triangle", []rune("▲►▼◄")},
	SpinnerSquares:        {"squares", []rune("■□▪▫")},
	SpinnerBrackets:       {"brackets", []rune("┤┘┴└├┌┬┐")},
	SpinnerHorizontalBars: {"horizontal-bars", []rune("▌▄▀▐")},
	SpinnerCircleQuarter:  {"circle-quarter", []rune("◜◝◞◟")},
	SpinnerCircleArc:      {"circle-arc", []rune("◷◶◵◴")},
}

// Glyphs returns the glyph set of the style, falling back to Block for
// values outside the enumeration.
func (s BarStyle) Glyphs() []rune {
	if e, ok := barStyles[s]; ok {
		return e.glyphs
	}
	return barStyles[BarBlock].glyphs
}

// String implements the fmt.Stringer interface
func (s BarStyle) String() string {
	if e, ok := barStyles[s]; ok {
		return e.name
	}
	return "unknown"
}

// MarshalYAML implements the yaml.Marshaler interface
func (s BarStyle) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (s *BarStyle) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	style, err := ParseBarStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Glyphs returns the spinner sequence of the style, falling back to Line for
// values outside the enumeration.
func (s SpinnerStyle) Glyphs() []rune {
	if e, ok := spinnerStyles[s]; ok {
		return e.glyphs
	}
	return spinnerStyles[SpinnerLine].glyphs
}

// String implements the fmt.Stringer interface
func (s SpinnerStyle) String() string {
	if e, ok := spinnerStyles[s]; ok {
		return e.name
	}
	return "unknown"
}

// MarshalYAML implements the yaml.Marshaler interface
func (s SpinnerStyle) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (s *SpinnerStyle) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	style, err := ParseSpinnerStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// BarStyles lists every bar style in declaration order
func BarStyles() []BarStyle {
	styles := make([]BarStyle, 0, len(barStyles))
	for s := BarBlock; s <= BarDot; s++ {
		styles = append(styles, s)
	}
	return styles
}

// SpinnerStyles lists every spinner style in declaration order
func SpinnerStyles() []SpinnerStyle {
	styles := make([]SpinnerStyle, 0, len(spinnerStyles))
	for s := SpinnerLine; s <= SpinnerCircleArc; s++ {
		styles = append(styles, s)
	}
	return styles
}

// ParseBarStyle looks up a bar style by name. Matching ignores case and
// treats '_' and '-' as optional, so "EqualSign", "equal_sign" and
// "equal-sign" are the same style.
func ParseBarStyle(name string) (BarStyle, error) {
	key := normalizeStyleName(name)
	for _, s := range BarStyles() {
		if normalizeStyleName(s.String()) == key {
			return s, nil
		}
	}
	return BarBlock, ErrInvalidConfig.New("unknown bar style '%s'", name).
		WithProperty(errPropStyle, name)
}

// ParseSpinnerStyle looks up a spinner style by name, see ParseBarStyle for
// the matching rules.
func ParseSpinnerStyle(name string) (SpinnerStyle, error) {
	key := normalizeStyleName(name)
	for _, s := range SpinnerStyles() {
		if normalizeStyleName(s.String()) == key {
			return s, nil
		}
	}
	return SpinnerLine, ErrInvalidConfig.New("unknown spinner style '%s'", name).
		WithProperty(errPropStyle, name)
}

func normalizeStyleName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
