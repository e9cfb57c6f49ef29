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

import "fmt"

// Serialize turns editable mappings back into the stored form keyed by parameter name. A static value is
// passed through the parameter normalization, so the stored value is what the parameter would accept.
func Serialize(mappings []Editable) (map[string]Persisted, error) {
	res := make(map[string]Persisted, len(mappings))
	for _, m := range mappings {
		p := Persisted{
			Name:  m.Name,
			MapTo: m.MapTo,
			Title: m.Title,
		}
		switch m.Type {
		case TypeDashboardAddNew, TypeDashboardMapToExisting:
			p.Type = DashboardLevel
		case TypeStaticValue:
			p.Type = StaticValue
			p.Value = m.Param.WithValue(m.Value).Value()
		case TypeWidgetLevel:
			p.Type = WidgetLevel
		default:
			return nil, fmt.Errorf("mapping \"%s\" type \"%s\": %w", m.Name, m.Type, ErrInvalidMappingType)
		}
		res[m.Name] = p
	}
	return res, nil
}
