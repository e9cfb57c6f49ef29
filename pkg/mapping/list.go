// Copyright 2025 Greenmask
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

package mapping

import "slices"

// Upsert returns a copy of mappings where oldMapping is replaced with newMapping. If oldMapping is not in
// the list newMapping is appended. The mappings slice is not modified.
func Upsert(mappings []Editable, oldMapping, newMapping Editable) []Editable {
	res := slices.Clone(mappings)
	idx := slices.IndexFunc(res, oldMapping.Equal)
	if idx >= 0 {
		res[idx] = newMapping
		return res
	}
	return append(res, newMapping)
}

// Find - the mapping of the parameter with the provided name
func Find(mappings []Editable, name string) (Editable, bool) {
	idx := slices.IndexFunc(mappings, func(m Editable) bool {
		return m.Name == name
	})
	if idx == -1 {
		return Editable{}, false
	}
	return mappings[idx], true
}
