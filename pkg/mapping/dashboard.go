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
	"slices"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

// DashboardParameter - parameter exposed on the dashboard level by one or more widgets
type DashboardParameter struct {
	Name  string          `json:"name" yaml:"name"`
	Type  parameters.Type `json:"type" yaml:"type"`
	Title string          `json:"title" yaml:"title"`
}

// DashboardParameters collects the dashboard parameters the mappings point to. The first mapping that
// points to a name defines the parameter.
func DashboardParameters(mappings []Editable) []DashboardParameter {
	var res []DashboardParameter
	seen := make(map[string]struct{})
	for _, m := range mappings {
		if !m.Type.IsDashboard() || m.MapTo == "" {
			continue
		}
		if _, ok := seen[m.MapTo]; ok {
			continue
		}
		seen[m.MapTo] = struct{}{}
		res = append(res, DashboardParameter{
			Name:  m.MapTo,
			Type:  m.Param.Type(),
			Title: DisplayTitle(m),
		})
	}
	return res
}

// ExistingNames - names of dashboard parameters a parameter of type t can be mapped to
func ExistingNames(params []DashboardParameter, t parameters.Type) []string {
	var res []string
	for _, p := range params {
		if p.Type == t {
			res = append(res, p.Name)
		}
	}
	return res
}

// ClassifyOnDashboard classifies each mapping against the dashboard parameters of its own parameter type.
func ClassifyOnDashboard(
	mappings []Persisted, params []parameters.Parameter, dashboard []DashboardParameter,
) ([]Editable, error) {
	res := make([]Editable, 0, len(mappings))
	for _, m := range mappings {
		var existing []string
		idx := slices.IndexFunc(params, func(p parameters.Parameter) bool {
			return p.Name() == m.Name
		})
		if idx != -1 {
			existing = ExistingNames(dashboard, params[idx].Type())
		}
		e, err := Classify([]Persisted{m}, params, existing)
		if err != nil {
			return nil, err
		}
		res = append(res, e...)
	}
	return res, nil
}
