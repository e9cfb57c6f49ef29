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

package parameters

import (
	"slices"
)

// Validate reports the cases when normalization would silently drop or replace v. A nil value is
// always valid because it means "use the default".
func (p Parameter) Validate(v any) ValidationWarnings {
	if s, ok := v.(string); v == nil || ok && s == "" {
		return nil
	}
	var warnings ValidationWarnings
	normalized := p.normalize(v)

	switch {
	case normalized == nil:
		warnings = append(warnings, NewValidationWarning().
			SetSeverity(ErrorValidationSeverity).
			SetMsgf("value cannot be represented as %s", p.typ).
			AddMeta("ParameterName", p.name).
			AddMeta("ParameterType", string(p.typ)).
			AddMeta("ParameterValue", v))
	case p.typ == TypeEnum && len(p.enumOptions) > 0:
		for _, item := range toStrings(v) {
			if slices.Contains(p.enumOptions, item) {
				continue
			}
			warnings = append(warnings, NewValidationWarning().
				SetSeverity(ErrorValidationSeverity).
				SetMsg("unknown parameter value").
				AddMeta("ParameterName", p.name).
				AddMeta("ParameterValue", item).
				AddMeta("AllowedValues", p.enumOptions))
		}
		if !p.multiValues && len(toStrings(v)) > 1 {
			warnings = append(warnings, NewValidationWarning().
				SetMsg("parameter accepts a single value: only the first one is used").
				AddMeta("ParameterName", p.name))
		}
	}

	for _, w := range warnings {
		w.MakeHash()
	}
	return warnings
}
