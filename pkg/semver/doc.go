// Package semver provides parsing, formatting, and ordering of Semantic
// Versioning 2.0.0 identifiers.
//
// # Overview
//
// This package implements the full semver.org grammar including pre-release
// tags and build metadata, with two parsing modes:
//
//   - Strict: all three core components mandatory, tag character sets
//     validated, no "v" prefix (Parse)
//   - Loose: optional "v" prefix, optional minor/patch components, and
//     unsanitized trailing content absorbed rather than rejected
//     (ParseLoosely)
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.5")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.5
//
// Parse relaxed forms:
//
//	v, _ := semver.ParseLoosely("v1.2") // 1.2.0
//
// Compare versions by SemVer precedence:
//
//	current, _ := semver.Parse("1.0.0-beta.2")
//	release, _ := semver.Parse("1.0.0")
//	if current.Compare(release) < 0 {
//	    fmt.Println("still in pre-release")
//	}
//
// Create versions programmatically:
//
//	v := semver.New(1, 2, 3)
//	fmt.Println(v.String()) // Output: 1.2.3
//
// # Precedence Semantics
//
// Compare implements SemVer precedence: the Major.Minor.Patch triple is
// compared numerically left to right, and on a tie the pre-release tags
// break it. A version without a pre-release tag outranks every pre-release
// of the same core. Within pre-release tags, dot-separated identifiers are
// compared positionally: numeric identifiers numerically, alphanumeric ones
// lexically, and numeric identifiers always rank below alphanumeric ones.
// Build metadata never participates in precedence.
//
// # Error Handling
//
// Parse failures return a *ParseError carrying a structured code and a
// message quoting the offending input. Sentinel values support errors.Is
// matching by code:
//
//	_, err := semver.Parse("1.2")
//	if errors.Is(err, semver.ErrMissingPatch) {
//	    // Partial core version
//	}
//
// ParseLoosely can only fail with ErrMissingMajor or one of the
// Invalid{Major,Minor,Patch} conversion errors; the Missing and tag
// validation variants are strict-mode only.
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0.0")
//
// # Not Supported
//
// Version ranges and constraint expressions (e.g. "^1.2.3", ">=1.0 <2.0")
// are out of scope; this package parses, compares, and serializes single
// version identifiers only.
package semver
