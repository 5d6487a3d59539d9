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

import "gopkg.in/yaml.v3"

// Versions serialize as their canonical string form in text, JSON (via the
// encoding.TextMarshaler contract), and YAML. Decoding parses loosely, since
// manifests in the wild carry "v"-prefixed and partial versions.

// MarshalText implements encoding.TextMarshaler using the canonical string
// form. encoding/json picks this up, so a Version field marshals as
// "1.2.3-rc.1" rather than an object.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing loosely.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseLoosely(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as a scalar in canonical string form.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a scalar version string, parsing loosely.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLoosely(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
