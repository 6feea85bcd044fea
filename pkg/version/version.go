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

package version

import (
	"fmt"
	"runtime"
)

var (
	// TiProgressVerMajor is the major version of tiprogress
	TiProgressVerMajor = 0
	// TiProgressVerMinor is the minor version of tiprogress
	TiProgressVerMinor = 1
	// TiProgressVerPatch is the patch version of tiprogress
	TiProgressVerPatch = 0
	// GitHash is the current git commit hash, set by the linker
	GitHash = "Unknown"
	// GitBranch is the current git branch name, set by the linker
	GitBranch = "Unknown"
	// BuildTime is the time the binary was built, set by the linker
	BuildTime = "Unknown"
)

// TiProgressVersion is the semver of tiprogress
type TiProgressVersion struct {
	major int
	minor int
	patch int
}

// NewTiProgressVersion creates a TiProgressVersion object
func NewTiProgressVersion() *TiProgressVersion {
	return &TiProgressVersion{
		major: TiProgressVerMajor,
		minor: TiProgressVerMinor,
		patch: TiProgressVerPatch,
	}
}

// SemVer returns TiProgressVersion in semver format
func (v *TiProgressVersion) SemVer() string {
	return fmt.Sprintf("v%d.%d.%d", v.major, v.minor, v.patch)
}

// FullInfo returns the full version and build information
func (v *TiProgressVersion) FullInfo() string {
	return fmt.Sprintf("%s (%s/%s) %s/%s\nGo Version: %s\nBuild Time: %s",
		v.SemVer(), GitBranch, GitHash, runtime.GOOS, runtime.GOARCH, runtime.Version(), BuildTime)
}

// String implements the fmt.Stringer interface
func (v *TiProgressVersion) String() string {
	return v.SemVer()
}
