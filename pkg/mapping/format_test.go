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
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

func TestFormatValue(t *testing.T) {
	d1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 12, 31, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "false", value: false, expected: ""},
		{name: "empty string", value: "", expected: ""},
		{name: "zero", value: 0, expected: ""},
		{name: "nan", value: math.NaN(), expected: ""},
		{name: "zero decimal", value: decimal.Zero, expected: ""},
		{name: "nil slice", value: []string(nil), expected: ""},
		{name: "zero json number", value: json.Number("0.0"), expected: ""},
		{name: "json number", value: json.Number("25"), expected: "25"},
		{name: "string", value: "abc", expected: "abc"},
		{name: "true", value: true, expected: "true"},
		{name: "int", value: 42, expected: "42"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "decimal", value: decimal.RequireFromString("10.25"), expected: "10.25"},
		{name: "date", value: d1, expected: "05/03/24"},
		{name: "plain list", value: []string{"a", "b"}, expected: "a, b"},
		{name: "any list", value: []any{"a", 2, nil}, expected: "a, 2, "},
		{name: "date range", value: []time.Time{d1, d2}, expected: "05/03/24 ~ 31/12/24"},
		{name: "date range any", value: []any{d1, d2}, expected: "05/03/24 ~ 31/12/24"},
		{name: "empty list", value: []string{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}

func TestDefaultDisplayValue(t *testing.T) {
	param := parameters.MustNew(parameters.Definition{Name: "region", Type: parameters.TypeText, Value: "eu"})

	t.Run("static value unset falls back to param", func(t *testing.T) {
		m := Editable{Name: "region", Type: TypeStaticValue, Param: param.WithValue(nil)}
		assert.Equal(t, "eu", DefaultDisplayValue(m))
	})

	t.Run("static value set", func(t *testing.T) {
		m := Editable{Name: "region", Type: TypeStaticValue, Value: "us", Param: param.WithValue("us")}
		assert.Equal(t, "us", DefaultDisplayValue(m))
	})

	t.Run("non static ignores value", func(t *testing.T) {
		m := Editable{Name: "region", Type: TypeWidgetLevel, Value: "us", Param: param}
		assert.Equal(t, "eu", DefaultDisplayValue(m))
	})

	t.Run("date range param", func(t *testing.T) {
		p := parameters.MustNew(parameters.Definition{
			Name:  "period",
			Type:  parameters.TypeDateRange,
			Value: map[string]any{"start": "2024-01-01", "end": "2024-01-31"},
		})
		m := Editable{Name: "period", Type: TypeDashboardAddNew, MapTo: "period", Param: p}
		assert.Equal(t, "01/01/24 ~ 31/01/24", DefaultDisplayValue(m))
	})
}
