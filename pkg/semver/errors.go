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

import "fmt"

// ErrorCode classifies version parsing failures.
type ErrorCode string

const (
	// CodeEmptyInput indicates the strict parser received an empty string.
	CodeEmptyInput ErrorCode = "EMPTY_INPUT"
	// CodeMissingMajor indicates no leading digits were found.
	CodeMissingMajor ErrorCode = "MISSING_MAJOR"
	// CodeMissingMinor indicates the minor digit group is absent (strict only).
	CodeMissingMinor ErrorCode = "MISSING_MINOR"
	// CodeMissingPatch indicates the patch digit group is absent (strict only).
	CodeMissingPatch ErrorCode = "MISSING_PATCH"
	// CodeMissingSeparator indicates trailing text after the core version is
	// not introduced by '-' or '+' (strict only).
	CodeMissingSeparator ErrorCode = "MISSING_PRE_OR_BUILD_SEPARATOR"
	// CodeMissingPreRelease indicates a '-' separator with an empty
	// pre-release tag (strict only).
	CodeMissingPreRelease ErrorCode = "MISSING_PRE_RELEASE"
	// CodeMissingBuild indicates a '+' separator with an empty build tag
	// (strict only).
	CodeMissingBuild ErrorCode = "MISSING_BUILD"
	// CodeInvalidMajor indicates the major digit group failed integer
	// conversion, e.g. overflow.
	CodeInvalidMajor ErrorCode = "INVALID_MAJOR"
	// CodeInvalidMinor indicates the minor digit group failed integer conversion.
	CodeInvalidMinor ErrorCode = "INVALID_MINOR"
	// CodeInvalidPatch indicates the patch digit group failed integer conversion.
	CodeInvalidPatch ErrorCode = "INVALID_PATCH"
	// CodeInvalidPreRelease indicates a disallowed character in the
	// pre-release tag (strict only).
	CodeInvalidPreRelease ErrorCode = "INVALID_PRE_RELEASE"
	// CodeInvalidBuild indicates a disallowed character in the build tag
	// (strict only).
	CodeInvalidBuild ErrorCode = "INVALID_BUILD"
	// CodeInternal indicates a state the parser considers unreachable.
	// Seeing it means a bug in this package, not bad input.
	CodeInternal ErrorCode = "INTERNAL"
)

// ParseError describes a version parsing failure with a structured code for
// programmatic handling and a human-readable message naming the offending
// input.
type ParseError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports code equality, so errors.Is(err, ErrMissingPatch) matches any
// ParseError carrying the same code regardless of message detail.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Code == e.Code
}

// Sentinel values for errors.Is matching. Errors returned by Parse and
// ParseLoosely carry more specific messages but match these by code.
var (
	ErrEmptyInput        = &ParseError{Code: CodeEmptyInput, Message: "version string is empty"}
	ErrMissingMajor      = &ParseError{Code: CodeMissingMajor, Message: "major version is missing"}
	ErrMissingMinor      = &ParseError{Code: CodeMissingMinor, Message: "minor version is missing"}
	ErrMissingPatch      = &ParseError{Code: CodeMissingPatch, Message: "patch version is missing"}
	ErrMissingSeparator  = &ParseError{Code: CodeMissingSeparator, Message: "pre-release or build separator is missing"}
	ErrMissingPreRelease = &ParseError{Code: CodeMissingPreRelease, Message: "pre-release tag is empty"}
	ErrMissingBuild      = &ParseError{Code: CodeMissingBuild, Message: "build tag is empty"}
	ErrInvalidMajor      = &ParseError{Code: CodeInvalidMajor, Message: "major version is not a valid number"}
	ErrInvalidMinor      = &ParseError{Code: CodeInvalidMinor, Message: "minor version is not a valid number"}
	ErrInvalidPatch      = &ParseError{Code: CodeInvalidPatch, Message: "patch version is not a valid number"}
	ErrInvalidPreRelease = &ParseError{Code: CodeInvalidPreRelease, Message: "pre-release tag contains an invalid character"}
	ErrInvalidBuild      = &ParseError{Code: CodeInvalidBuild, Message: "build tag contains an invalid character"}
	ErrInternal          = &ParseError{Code: CodeInternal, Message: "internal parser error"}
)

// newParseError creates a ParseError with a formatted message.
func newParseError(code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
