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
)

// The With* functions are the edits a user can make on a single mapping. Each returns a new mapping,
// the receiver is left as is so it can still be found by Upsert.

func (m Editable) WithType(t Type) (Editable, error) {
	switch t {
	case TypeDashboardAddNew, TypeDashboardMapToExisting, TypeWidgetLevel, TypeStaticValue:
	default:
		return Editable{}, fmt.Errorf("type \"%s\": %w", t, ErrInvalidMappingType)
	}
	res := m
	res.Type = t
	return res, nil
}

func (m Editable) WithMapTo(name string) Editable {
	res := m
	res.MapTo = name
	return res
}

// WithValue sets the static value and keeps the parameter working value in sync with it.
func (m Editable) WithValue(v any) Editable {
	res := m
	res.Value = v
	res.Param = m.Param.WithValue(v)
	return res
}

func (m Editable) WithTitle(title string) Editable {
	res := m
	res.Title = title
	return res
}

// AvailableTypes - mapping types a user may pick. Mapping to an existing dashboard parameter is offered
// only when there is one to map to.
func AvailableTypes(existingParamNames []string) []Type {
	res := []Type{TypeDashboardAddNew}
	if len(existingParamNames) > 0 {
		res = append(res, TypeDashboardMapToExisting)
	}
	return append(res, TypeStaticValue, TypeWidgetLevel)
}

// AddNewConflicts - a new dashboard parameter cannot reuse the name of an existing one
func AddNewConflicts(m Editable, existingParamNames []string) bool {
	return m.Type == TypeDashboardAddNew && slices.Contains(existingParamNames, m.MapTo)
}

// EditorValue - the value the static value editor starts with
func EditorValue(m Editable) any {
	if m.Value == nil {
		return m.Param.NormalizedValue()
	}
	return m.Value
}
