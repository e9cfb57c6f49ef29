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
	"encoding/json"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

// PersistedType - the source of a parameter value as it is stored
type PersistedType string

const (
	DashboardLevel PersistedType = "dashboard-level"
	WidgetLevel    PersistedType = "widget-level"
	StaticValue    PersistedType = "static-value"
)

// Type - the source of a parameter value while it is edited. Both dashboard types collapse into
// DashboardLevel when the mapping is stored.
type Type string

const (
	TypeDashboardAddNew        Type = "dashboard-add-new"
	TypeDashboardMapToExisting Type = "dashboard-map-to-existing"
	TypeWidgetLevel            Type = "widget-level"
	TypeStaticValue            Type = "static-value"
)

func (t Type) IsDashboard() bool {
	return t == TypeDashboardAddNew || t == TypeDashboardMapToExisting
}

// Persisted - the storage form of a widget parameter mapping. Name is the identity key.
type Persisted struct {
	Name string        `mapstructure:"name" json:"name" yaml:"name"`
	Type PersistedType `mapstructure:"type" json:"type" yaml:"type"`
	// Value - plays only with StaticValue
	Value any `mapstructure:"value" json:"value" yaml:"value"`
	// MapTo - name of the dashboard parameter. Plays only with DashboardLevel
	MapTo string `mapstructure:"map_to" json:"mapTo" yaml:"map_to"`
	// Title - optional title override. Empty means the parameter title is used
	Title string `mapstructure:"title" json:"title,omitempty" yaml:"title,omitempty"`
}

// MarshalJSON writes an empty MapTo as null. Decimal values are written as JSON numbers.
func (m Persisted) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name  string        `json:"name"`
		Type  PersistedType `json:"type"`
		Value any           `json:"value"`
		MapTo *string       `json:"mapTo"`
		Title string        `json:"title,omitempty"`
	}
	w := wire{
		Name:  m.Name,
		Type:  m.Type,
		Value: m.Value,
		Title: m.Title,
	}
	if d, ok := m.Value.(decimal.Decimal); ok {
		w.Value = json.Number(d.String())
	}
	if m.MapTo != "" {
		w.MapTo = &m.MapTo
	}
	return json.Marshal(w)
}

// Editable - the form of a mapping during an edit session. Param is attached on classification and has
// no place in Persisted, so it never leaves the session.
type Editable struct {
	Name  string
	Type  Type
	Value any
	MapTo string
	Title string
	// Param - for TypeStaticValue it carries the static value as its working value
	Param parameters.Parameter
}

// Equal compares all the fields including the attached parameter.
func (m Editable) Equal(other Editable) bool {
	return m.Name == other.Name &&
		m.Type == other.Type &&
		m.MapTo == other.MapTo &&
		m.Title == other.Title &&
		cmp.Equal(m.Value, other.Value) &&
		m.Param.Equal(other.Param)
}
