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

import "sort"

// Versions is a sortable slice of Version ordered by SemVer precedence.
type Versions []Version

// Len implements sort.Interface.
func (vs Versions) Len() int { return len(vs) }

// Less implements sort.Interface using Compare.
func (vs Versions) Less(i, j int) bool { return vs[i].Compare(vs[j]) < 0 }

// Swap implements sort.Interface.
func (vs Versions) Swap(i, j int) { vs[i], vs[j] = vs[j], vs[i] }

// Sort sorts the versions in ascending precedence order.
func Sort(vs Versions) { sort.Sort(vs) }
