// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"fmt"
	"strconv"
)

// String returns the canonical string representation:
// "Major.Minor.Patch", then "-Pre" if a pre-release tag is present, then
// "+Build" if a build tag is present. For any Version produced by Parse,
// Parse(v.String()) returns an equal Version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ConciseString returns an abbreviated representation that omits zero-valued
// trailing core components: "1" for 1.0.0, "1.2" for 1.2.0. When the minor
// component is zero but the patch is not, a literal ".0" placeholder keeps
// the patch in third position ("1.0.3"). Pre-release and build tags are
// appended as in String. The result is not strict-parseable in general but
// always round-trips through ParseLoosely.
func (v Version) ConciseString() string {
	s := strconv.Itoa(v.Major)
	if v.Minor != 0 {
		s += "." + strconv.Itoa(v.Minor)
	}
	if v.Patch != 0 {
		if v.Minor == 0 {
			s += ".0"
		}
		s += "." + strconv.Itoa(v.Patch)
	}
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}
