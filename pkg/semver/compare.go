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

import "strings"

// Compare returns an integer comparing two versions by SemVer precedence:
// -1 if v < other, 0 if v == other, 1 if v > other.
// The core components are compared first; on a tie the pre-release tags
// break it per SemVer precedence rule 11. Build tags never participate.
// Useful for sorting.
func (v Version) Compare(other Version) int {
	if c := v.CompareCore(other); c != 0 {
		return c
	}
	return ComparePreRelease(v.Pre, other.Pre)
}

// CompareCore compares only the Major.Minor.Patch triple, left to right.
// Pre-release and build tags are ignored entirely.
func (v Version) CompareCore(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// ComparePreRelease compares two pre-release tag strings per SemVer
// precedence rule 11. An empty tag outranks any non-empty one: a plain
// release has higher precedence than all of its pre-releases. Non-empty
// tags are split on '.' and compared identifier by identifier: numeric
// identifiers compare numerically, non-numeric ones lexically, and a
// numeric identifier is always less than a non-numeric one. A tag that is
// a strict prefix of the other is less.
func ComparePreRelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	if len(as) < len(bs) {
		return -1
	}
	if len(as) > len(bs) {
		return 1
	}
	return 0
}

// Equals reports exact field equality, including build tags. Two versions
// with the same precedence but different build metadata are not Equals.
func (v Version) Equals(other Version) bool {
	return v.CompareCore(other) == 0 && v.Pre == other.Pre && v.Build == other.Build
}

// EqualsCore reports whether the Major.Minor.Patch triples are equal,
// ignoring pre-release and build tags.
func (v Version) EqualsCore(other Version) bool {
	return v.CompareCore(other) == 0
}

// IsCompatible reports whether a requirement for v is satisfiable by having
// at least other's behavior: the two share a major line and v does not
// exceed other by SemVer precedence.
func (v Version) IsCompatible(other Version) bool {
	return v.Major == other.Major && v.Compare(other) <= 0
}

func compareIdentifier(a, b string) int {
	aNum := isNumericIdentifier(a)
	bNum := isNumericIdentifier(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		// Numeric identifiers always rank below alphanumeric ones.
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// compareNumeric compares two all-digit identifiers by value without
// converting them: after stripping leading zeros, the longer run is larger
// and equal-length runs compare lexically. This keeps identifiers beyond
// the int range ordered correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
