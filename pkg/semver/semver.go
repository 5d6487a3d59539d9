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

// Version represents a Semantic Versioning 2.0.0 identifier with Major,
// Minor, and Patch components plus optional pre-release and build tags.
// Pre and Build hold dot-separated identifier lists; the empty string means
// the tag is absent. Values produced by Parse contain only characters from
// [0-9A-Za-z.-] in their tags; ParseLoosely may embed arbitrary trailing
// content (see ParseLoosely).
//
// Version is a value type compared by its fields. It is never mutated after
// construction and is safe for concurrent use.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   string
	Build string
}

// Empty is the zero version: 0.0.0 with no pre-release or build tags.
var Empty = Version{}

// New creates a Version with the specified major, minor, and patch values
// and no pre-release or build tags.
// Use Parse or ParseLoosely for parsing version strings.
func New(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// IsPreRelease reports whether the version carries a pre-release tag.
func (v Version) IsPreRelease() bool {
	return v.Pre != ""
}

// IsValid reports whether the version could have been produced by the strict
// parser: all core components non-negative and every pre-release and build
// tag character in [0-9A-Za-z.-].
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	if err := checkTag(v.Pre, CodeInvalidPreRelease); err != nil {
		return false
	}
	if err := checkTag(v.Build, CodeInvalidBuild); err != nil {
		return false
	}
	return true
}
