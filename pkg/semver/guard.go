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

// Guard helpers evaluate a continuation only when a version comparison
// holds, returning the fallback value otherwise. The continuation is never
// invoked when the predicate fails, so it may safely perform work that is
// only meaningful under the comparison.

// WhenCompatible returns fn() if a.IsCompatible(b), else fallback.
func WhenCompatible[T any](a, b Version, fallback T, fn func() T) T {
	if !a.IsCompatible(b) {
		return fallback
	}
	return fn()
}

// WhenOlder returns fn() if a has lower precedence than b, else fallback.
func WhenOlder[T any](a, b Version, fallback T, fn func() T) T {
	if a.Compare(b) >= 0 {
		return fallback
	}
	return fn()
}

// WhenOlderOrEqual returns fn() if a's precedence does not exceed b's,
// else fallback.
func WhenOlderOrEqual[T any](a, b Version, fallback T, fn func() T) T {
	if a.Compare(b) > 0 {
		return fallback
	}
	return fn()
}

// WhenEqual returns fn() if a and b have equal precedence (build tags are
// ignored, as in Compare), else fallback.
func WhenEqual[T any](a, b Version, fallback T, fn func() T) T {
	if a.Compare(b) != 0 {
		return fallback
	}
	return fn()
}

// WhenNewer returns fn() if a has higher precedence than b, else fallback.
func WhenNewer[T any](a, b Version, fallback T, fn func() T) T {
	if a.Compare(b) <= 0 {
		return fallback
	}
	return fn()
}

// WhenNewerOrEqual returns fn() if a's precedence is at least b's,
// else fallback.
func WhenNewerOrEqual[T any](a, b Version, fallback T, fn func() T) T {
	if a.Compare(b) < 0 {
		return fallback
	}
	return fn()
}
