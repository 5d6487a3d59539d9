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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a version string in strict Semantic Versioning 2.0.0 form:
// all three core components present, and any trailing content introduced by
// a '-' (pre-release) or '+' (build) separator with tags limited to the
// [0-9A-Za-z.-] character set. No "v" prefix is accepted.
// On failure the returned error is a *ParseError matching one of the
// exported sentinel values by code.
func Parse(s string) (Version, error) {
	if s == "" {
		return Empty, ErrEmptyInput
	}
	return parse(s, true)
}

// ParseLoosely parses a version string with a relaxed grammar: an optional
// leading "v", optional minor and patch components (defaulting to zero), and
// unvalidated trailing content. The empty string and "v" parse to Empty.
// Trailing text without a '-' or '+' separator is absorbed verbatim into the
// Build field rather than rejected, so non-conformant but common version
// forms still parse. Only a missing major component or an out-of-range core
// component can fail.
func ParseLoosely(s string) (Version, error) {
	if s == "" || s == "v" {
		return Empty, nil
	}
	return parse(strings.TrimPrefix(s, "v"), false)
}

// MustParse parses a strict version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

func parse(s string, strict bool) (Version, error) {
	majorRaw, minorRaw, patchRaw, remainder := scanCore(s)

	// A leading integer is mandatory in both modes.
	if majorRaw == "" {
		return Empty, newParseError(CodeMissingMajor, "version %q has no leading major component", s)
	}
	if strict {
		if minorRaw == "" {
			return Empty, newParseError(CodeMissingMinor, "version %q has no minor component", s)
		}
		if patchRaw == "" {
			return Empty, newParseError(CodeMissingPatch, "version %q has no patch component", s)
		}
	}

	major, err := parseComponent(majorRaw)
	if err != nil {
		return Empty, componentError(CodeInvalidMajor, majorRaw, err)
	}
	minor, err := parseComponent(minorRaw)
	if err != nil {
		return Empty, componentError(CodeInvalidMinor, minorRaw, err)
	}
	patch, err := parseComponent(patchRaw)
	if err != nil {
		return Empty, componentError(CodeInvalidPatch, patchRaw, err)
	}

	pre, build, err := splitTags(remainder, strict)
	if err != nil {
		return Empty, err
	}

	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Pre:   pre,
		Build: build,
	}, nil
}

// scanCore splits a raw version string into up to three digit runs and the
// unconsumed remainder. It consumes a maximal run of ASCII digits, then a
// single '.' followed by another run, twice. It never fails; absent groups
// come back empty and everything unconsumed ends up in remainder.
// Iteration is rune-based so multi-byte trailing content never splits a
// codepoint.
func scanCore(s string) (major, minor, patch, remainder string) {
	major, remainder = scanDigits(s)
	if !strings.HasPrefix(remainder, ".") {
		return major, "", "", remainder
	}
	minor, remainder = scanDigits(remainder[1:])
	if !strings.HasPrefix(remainder, ".") {
		return major, minor, "", remainder
	}
	patch, remainder = scanDigits(remainder[1:])
	return major, minor, patch, remainder
}

// scanDigits splits s at the first non-digit rune.
func scanDigits(s string) (digits, rest string) {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// parseComponent converts a digit run to a non-negative integer. The empty
// string parses to zero; that is what makes minor and patch optional in
// loose mode.
func parseComponent(field string) (int, error) {
	if field == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative component %d", n)
	}
	return n, nil
}

// componentError maps a component conversion failure to its error code.
// The scanner only emits digit runs, so anything other than integer
// overflow here indicates a bug in this package.
func componentError(code ErrorCode, field string, err error) *ParseError {
	if errors.Is(err, strconv.ErrRange) {
		return newParseError(code, "version component %q is out of range", field)
	}
	return newParseError(CodeInternal, "version component %q failed conversion: %v", field, err)
}
