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

// ViewRow - one line of a mapping list as it is shown to a user
type ViewRow struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Keyword      string `json:"keyword" yaml:"keyword"`
	DefaultValue string `json:"defaultValue" yaml:"default_value"`
	Source       string `json:"source" yaml:"source"`
	Type         Type   `json:"type" yaml:"type"`
}

func Row(m Editable) ViewRow {
	return ViewRow{
		Name:         m.Name,
		Title:        DisplayTitle(m),
		Keyword:      Keyword(m),
		DefaultValue: DefaultDisplayValue(m),
		Source:       ValueSource(m),
		Type:         m.Type,
	}
}

func Rows(mappings []Editable) []ViewRow {
	res := make([]ViewRow, 0, len(mappings))
	for _, m := range mappings {
		res = append(res, Row(m))
	}
	return res
}

func DisplayTitle(m Editable) string {
	if m.Title != "" {
		return m.Title
	}
	return m.Param.Title()
}

// Keyword - the placeholder of the parameter in the query text
func Keyword(m Editable) string {
	return fmt.Sprintf("{{ %s }}", m.Name)
}

func ValueSource(m Editable) string {
	switch m.Type {
	case TypeDashboardAddNew, TypeDashboardMapToExisting:
		return fmt.Sprintf("Dashboard parameter %s", m.MapTo)
	case TypeWidgetLevel:
		return "Widget parameter"
	case TypeStaticValue:
		return "Static value"
	}
	return ""
}
