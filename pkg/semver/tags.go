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

// splitTags separates the post-core remainder into pre-release and build
// tags. Cases in priority order:
//
//  1. Empty remainder: no tags.
//  2. Leading '+': everything after is the build tag.
//  3. Leading '-': pre-release up to the first subsequent '+', build after it.
//  4. Anything else: strict mode rejects it; loose mode absorbs the whole
//     remainder into the build tag verbatim.
//
// Strict mode additionally rejects empty tags and validates the tag
// character sets. Loose mode returns the substrings untouched, separators
// and all.
func splitTags(remainder string, strict bool) (pre, build string, err error) {
	switch {
	case remainder == "":
		return "", "", nil

	case strings.HasPrefix(remainder, "+"):
		build = remainder[1:]
		if strict {
			if build == "" {
				return "", "", newParseError(CodeMissingBuild, "nothing follows the %q build separator", "+")
			}
			if err := checkTag(build, CodeInvalidBuild); err != nil {
				return "", "", err
			}
		}
		return "", build, nil

	case strings.HasPrefix(remainder, "-"):
		rest := remainder[1:]
		plus := strings.Index(rest, "+")
		if plus >= 0 {
			pre, build = rest[:plus], rest[plus+1:]
		} else {
			pre = rest
		}
		if strict {
			if pre == "" {
				return "", "", newParseError(CodeMissingPreRelease, "nothing follows the %q pre-release separator", "-")
			}
			if plus >= 0 && build == "" {
				return "", "", newParseError(CodeMissingBuild, "nothing follows the %q build separator", "+")
			}
			if err := checkTag(pre, CodeInvalidPreRelease); err != nil {
				return "", "", err
			}
			if err := checkTag(build, CodeInvalidBuild); err != nil {
				return "", "", err
			}
		}
		return pre, build, nil

	default:
		if strict {
			return "", "", newParseError(CodeMissingSeparator, "trailing content %q is not introduced by '-' or '+'", remainder)
		}
		return "", remainder, nil
	}
}

// checkTag validates a tag against the allowed character set, reporting the
// first disallowed rune. Scanning stops at the first violation.
func checkTag(tag string, code ErrorCode) error {
	for _, r := range tag {
		if !validTagRune(r) {
			return newParseError(code, "tag %q contains invalid character %q", tag, string(r))
		}
	}
	return nil
}

// validTagRune reports whether r is allowed in a pre-release or build tag:
// ASCII digits, ASCII letters, '.', and '-'.
func validTagRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '.' || r == '-':
		return true
	default:
		return false
	}
}
