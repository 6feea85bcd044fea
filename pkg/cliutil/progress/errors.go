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
	"github.com/joomcode/errorx"
)

var (
	errNSProgress = errorx.NewNamespace("progress")

	// ErrOutOfRange is returned by Update when the value is outside [min, max].
	ErrOutOfRange = errNSProgress.NewType("out_of_range")
	// ErrInvalidConfig is returned when a configuration can not build a renderer.
	ErrInvalidConfig = errNSProgress.NewType("invalid_config")

	errPropValue = errorx.RegisterProperty("value")
	errPropMin   = errorx.RegisterProperty("min")
	errPropMax   = errorx.RegisterProperty("max")
	errPropStyle = errorx.RegisterProperty("style")
)

// IsOutOfRange reports whether err was caused by an out of range update.
func IsOutOfRange(err error) bool {
	return errorx.IsOfType(err, ErrOutOfRange)
}

// OutOfRangeBounds extracts the rejected value and the valid bounds from an
// out of range error.
func OutOfRangeBounds(err error) (value, min, max int, ok bool) {
	if !IsOutOfRange(err) {
		return 0, 0, 0, false
	}
	v, ok1 := errorx.ExtractProperty(err, errPropValue)
	lo, ok2 := errorx.ExtractProperty(err, errPropMin)
	hi, ok3 := errorx.ExtractProperty(err, errPropMax)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, false
	}
	return v.(int), lo.(int), hi.(int), true
}
