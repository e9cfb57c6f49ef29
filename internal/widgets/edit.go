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

package widgets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/greenmaskio/parammap/pkg/mapping"
)

var (
	ErrMappingTypeNotAvailable = errors.New("mapping type is not available for the parameter")
	ErrTitleNotAllowed         = errors.New("static value mappings have no title")
)

// Edit - change of a single mapping. Nil fields are left as they are.
type Edit struct {
	Param    string
	Type     *mapping.Type
	MapTo    *string
	Value    any
	SetValue bool
	Title    *string
}

// Apply applies the edit to the session and returns the updated mapping.
func (s *Session) Apply(e Edit) (mapping.Editable, error) {
	old, err := s.Mapping(e.Param)
	if err != nil {
		return mapping.Editable{}, err
	}

	updated := old
	if e.Type != nil {
		if updated, err = updated.WithType(*e.Type); err != nil {
			return mapping.Editable{}, err
		}
		if !slices.Contains(mapping.AvailableTypes(s.ExistingNames(old)), updated.Type) {
			return mapping.Editable{}, fmt.Errorf(
				"parameter \"%s\" type \"%s\": %w", updated.Name, updated.Type, ErrMappingTypeNotAvailable,
			)
		}
		if updated.Type.IsDashboard() && updated.MapTo == "" {
			updated = updated.WithMapTo(updated.Name)
		}
	}
	if e.MapTo != nil {
		updated = updated.WithMapTo(*e.MapTo)
	}
	if e.SetValue {
		updated = updated.WithValue(e.Value)
	} else if updated.Type == mapping.TypeStaticValue && updated.Value == nil {
		updated = updated.WithValue(mapping.EditorValue(updated))
	}
	if e.Title != nil {
		if updated.Type == mapping.TypeStaticValue {
			return mapping.Editable{}, fmt.Errorf("parameter \"%s\": %w", updated.Name, ErrTitleNotAllowed)
		}
		updated = updated.WithTitle(*e.Title)
	}

	switch updated.Type {
	case mapping.TypeDashboardMapToExisting:
		if !slices.Contains(s.ExistingNames(updated), updated.MapTo) {
			return mapping.Editable{}, fmt.Errorf(
				"parameter \"%s\" map to \"%s\": %w", updated.Name, updated.MapTo, ErrDashboardParameterNotFound,
			)
		}
	case mapping.TypeDashboardAddNew:
		if slices.ContainsFunc(s.dashboard, func(p mapping.DashboardParameter) bool {
			return p.Name == updated.MapTo
		}) {
			return mapping.Editable{}, fmt.Errorf(
				"parameter \"%s\" map to \"%s\": %w", updated.Name, updated.MapTo, ErrDashboardParameterExists,
			)
		}
	}

	s.Change(old, updated)
	return updated, nil
}
