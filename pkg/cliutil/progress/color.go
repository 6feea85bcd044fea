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
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const escape = "\x1b"

var (
	// DefaultCompletedColor paints the completed segment with a green background
	DefaultCompletedColor = Escape(color.BgGreen)
	// DefaultIncompleteColor paints the incomplete segment with a red background
	DefaultIncompleteColor = Escape(color.BgRed)

	colorReset = Escape(color.Reset)
)

var colorNames = map[string]color.Attribute{
	"reset":     color.Reset,
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"reverse":   color.ReverseVideo,

	"fgblack":   color.FgBlack,
	"fgred":     color.FgRed,
	"fggreen":   color.FgGreen,
	"fgyellow":  color.FgYellow,
	"fgblue":    color.FgBlue,
	"fgmagenta": color.FgMagenta,
	"fgcyan":    color.FgCyan,
	"fgwhite":   color.FgWhite,

	"fghiblack":   color.FgHiBlack,
	"fghired":     color.FgHiRed,
	"fghigreen":   color.FgHiGreen,
	"fghiyellow":  color.FgHiYellow,
	"fghiblue":    color.FgHiBlue,
	"fghimagenta": color.FgHiMagenta,
	"fghicyan":    color.FgHiCyan,
	"fghiwhite":   color.FgHiWhite,

	"bgblack":   color.BgBlack,
	"bgred":     color.BgRed,
	"bggreen":   color.BgGreen,
	"bgyellow":  color.BgYellow,
	"bgblue":    color.BgBlue,
	"bgmagenta": color.BgMagenta,
	"bgcyan":    color.BgCyan,
	"bgwhite":   color.BgWhite,

	"bghiblack":   color.BgHiBlack,
	"bghired":     color.BgHiRed,
	"bghigreen":   color.BgHiGreen,
	"bghiyellow":  color.BgHiYellow,
	"bghiblue":    color.BgHiBlue,
	"bghimagenta": color.BgHiMagenta,
	"bghicyan":    color.BgHiCyan,
	"bghiwhite":   color.BgHiWhite,
}

// Escape builds the SGR escape sequence selecting all the attributes,
// e.g. Escape(color.BgGreen) == "\x1b[42m".
func Escape(attrs ...color.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return fmt.Sprintf("%s[%sm", escape, strings.Join(codes, ";"))
}

// ParseColor converts a color description into an escape sequence. The
// description is either a raw escape sequence, which is returned unchanged,
// or a '+' separated list of attribute names such as "bgGreen+bold".
func ParseColor(desc string) (string, error) {
	if strings.HasPrefix(desc, escape) {
		return desc, nil
	}
	if strings.TrimSpace(desc) == "" {
		return "", ErrInvalidConfig.New("empty color")
	}

	var attrs []color.Attribute
	for _, name := range strings.Split(desc, "+") {
		key := strings.ToLower(strings.TrimSpace(name))
		attr, ok := colorNames[key]
		if !ok {
			return "", ErrInvalidConfig.New("unknown color '%s'", name)
		}
		attrs = append(attrs, attr)
	}
	return Escape(attrs...), nil
}
