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

import (
	"fmt"
	"slices"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

// Classify turns stored mappings into editable ones. Every mapping must have a parameter with the same
// name in params. existingParamNames are the dashboard parameters that already exist, a dashboard mapping
// pointing to one of them is classified as TypeDashboardMapToExisting.
func Classify(
	mappings []Persisted, params []parameters.Parameter, existingParamNames []string,
) ([]Editable, error) {
	res := make([]Editable, 0, len(mappings))
	for _, m := range mappings {
		idx := slices.IndexFunc(params, func(p parameters.Parameter) bool {
			return p.Name() == m.Name
		})
		if idx == -1 {
			return nil, fmt.Errorf("mapping \"%s\": %w", m.Name, ErrUnknownParameter)
		}

		e := Editable{
			Name:  m.Name,
			Value: m.Value,
			MapTo: m.MapTo,
			Title: m.Title,
			Param: params[idx],
		}
		switch m.Type {
		case DashboardLevel:
			if slices.Contains(existingParamNames, m.MapTo) {
				e.Type = TypeDashboardMapToExisting
			} else {
				e.Type = TypeDashboardAddNew
			}
			e.Value = nil
		case StaticValue:
			e.Type = TypeStaticValue
			e.Param = e.Param.WithValue(m.Value)
		case WidgetLevel:
			e.Type = TypeWidgetLevel
			e.Value = nil
		default:
			return nil, fmt.Errorf("mapping \"%s\" type \"%s\": %w", m.Name, m.Type, ErrInvalidMappingType)
		}
		res = append(res, e)
	}
	return res, nil
}
