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

import "github.com/greenmaskio/parammap/pkg/parameters"

// Complete returns exactly one stored mapping per query parameter, in parameter order. A parameter
// without a mapping gets a default one: global parameters are mapped to the dashboard parameter with the
// same name, the rest stay at the widget level. Mappings of parameters that no longer exist are dropped.
func Complete(params []parameters.Parameter, persisted map[string]Persisted) []Persisted {
	res := make([]Persisted, 0, len(params))
	for _, p := range params {
		if m, ok := persisted[p.Name()]; ok {
			m.Name = p.Name()
			res = append(res, m)
			continue
		}
		res = append(res, Default(p))
	}
	return res
}

// Default - mapping of a parameter the widget has never seen before
func Default(p parameters.Parameter) Persisted {
	m := Persisted{
		Name:  p.Name(),
		Type:  WidgetLevel,
		MapTo: p.Name(),
	}
	if p.Global() {
		m.Type = DashboardLevel
	}
	return m
}
