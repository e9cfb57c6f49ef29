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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := New(Definition{Name: "region", Title: "Region", Type: TypeText, Value: "eu"})
		require.NoError(t, err)
		assert.Equal(t, "region", p.Name())
		assert.Equal(t, "Region", p.Title())
		assert.Equal(t, TypeText, p.Type())
		assert.Equal(t, "eu", p.Value())
		assert.Equal(t, "eu", p.NormalizedValue())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := New(Definition{Name: "region", Type: "color"})
		require.ErrorIs(t, err, ErrUnknownParameterType)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := New(Definition{Type: TypeText})
		require.ErrorIs(t, err, ErrEmptyParameterName)
	})
}

func TestParameter_WithValue(t *testing.T) {
	t.Run("receiver is not changed", func(t *testing.T) {
		p := MustNew(Definition{Name: "region", Type: TypeText, Value: "eu"})
		clone := p.WithValue("us")
		assert.Equal(t, "eu", p.Value())
		assert.Equal(t, "us", clone.Value())
	})

	t.Run("nil value falls back to default", func(t *testing.T) {
		p := MustNew(Definition{Name: "region", Type: TypeText, Value: "eu"})
		clone := p.WithValue(nil)
		assert.Nil(t, clone.Value())
		assert.Equal(t, "eu", clone.NormalizedValue())
	})

	t.Run("enum options are not shared", func(t *testing.T) {
		p := MustNew(Definition{Name: "color", Type: TypeEnum, EnumOptions: []string{"red", "green"}})
		options := p.WithValue("red").EnumOptions()
		options[0] = "blue"
		assert.Equal(t, []string{"red", "green"}, p.EnumOptions())
	})
}

func TestParameter_Normalize(t *testing.T) {
	day := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		def      Definition
		value    any
		expected any
	}{
		{
			name:     "text from number",
			def:      Definition{Name: "p", Type: TypeText},
			value:    12,
			expected: "12",
		},
		{
			name:     "text empty",
			def:      Definition{Name: "p", Type: TypeText},
			value:    "",
			expected: nil,
		},
		{
			name:     "number from string",
			def:      Definition{Name: "p", Type: TypeNumber},
			value:    "10.5",
			expected: decimal.RequireFromString("10.5"),
		},
		{
			name:     "number from float",
			def:      Definition{Name: "p", Type: TypeNumber},
			value:    float64(3),
			expected: decimal.NewFromInt(3),
		},
		{
			name:     "number invalid",
			def:      Definition{Name: "p", Type: TypeNumber},
			value:    "ten",
			expected: nil,
		},
		{
			name:     "enum known option",
			def:      Definition{Name: "p", Type: TypeEnum, EnumOptions: []string{"a", "b"}},
			value:    "b",
			expected: "b",
		},
		{
			name:     "enum unknown option falls back to the first one",
			def:      Definition{Name: "p", Type: TypeEnum, EnumOptions: []string{"a", "b"}},
			value:    "c",
			expected: "a",
		},
		{
			name:     "enum multi values are filtered",
			def:      Definition{Name: "p", Type: TypeEnum, EnumOptions: []string{"a", "b"}, MultiValues: true},
			value:    []any{"b", "c", "a"},
			expected: []string{"b", "a"},
		},
		{
			name:     "enum multi values nothing left",
			def:      Definition{Name: "p", Type: TypeEnum, EnumOptions: []string{"a", "b"}, MultiValues: true},
			value:    []any{"c"},
			expected: nil,
		},
		{
			name:     "query single value",
			def:      Definition{Name: "p", Type: TypeQuery, QueryID: 3},
			value:    "anything",
			expected: "anything",
		},
		{
			name:     "date",
			def:      Definition{Name: "p", Type: TypeDate},
			value:    "2024-01-12",
			expected: day,
		},
		{
			name:     "date rfc3339",
			def:      Definition{Name: "p", Type: TypeDate},
			value:    "2024-01-12T00:00:00Z",
			expected: day,
		},
		{
			name:     "date invalid",
			def:      Definition{Name: "p", Type: TypeDate},
			value:    "yesterday",
			expected: nil,
		},
		{
			name:     "date range from object",
			def:      Definition{Name: "p", Type: TypeDateRange},
			value:    map[string]any{"start": "2024-01-12", "end": "2024-01-13"},
			expected: []time.Time{day, nextDay},
		},
		{
			name:     "date range from list",
			def:      Definition{Name: "p", Type: TypeDateRange},
			value:    []any{"2024-01-12", "2024-01-13"},
			expected: []time.Time{day, nextDay},
		},
		{
			name:     "date range with missing bound",
			def:      Definition{Name: "p", Type: TypeDateRange},
			value:    []any{"2024-01-12"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(tt.def).WithValue(tt.value)
			if tt.expected == nil {
				assert.Nil(t, p.Value())
				return
			}
			if d, ok := tt.expected.(decimal.Decimal); ok {
				actual, ok := p.Value().(decimal.Decimal)
				require.True(t, ok)
				assert.True(t, d.Equal(actual), "expected %s got %s", d, actual)
				return
			}
			assert.Equal(t, tt.expected, p.Value())
		})
	}
}

func TestParameter_Equal(t *testing.T) {
	p := MustNew(Definition{Name: "amount", Type: TypeNumber, Value: "1.50"})
	assert.True(t, p.Equal(MustNew(Definition{Name: "amount", Type: TypeNumber, Value: "1.5"})))
	assert.False(t, p.Equal(p.WithValue("2")))
	assert.True(t, p.WithValue("2").Equal(p.WithValue(2)))
}

func TestParameter_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := MustNew(Definition{Name: "color", Type: TypeEnum, EnumOptions: []string{"red", "green"}})
		assert.Empty(t, p.Validate("red"))
		assert.Empty(t, p.Validate(nil))
	})

	t.Run("unknown option", func(t *testing.T) {
		p := MustNew(Definition{Name: "color", Type: TypeEnum, EnumOptions: []string{"red", "green"}})
		warns := p.Validate("blue")
		require.Len(t, warns, 1)
		assert.True(t, warns.IsFatal())
		assert.Equal(t, "unknown parameter value", warns[0].Msg)
		assert.NotEmpty(t, warns[0].Hash)
	})

	t.Run("cannot be represented", func(t *testing.T) {
		p := MustNew(Definition{Name: "amount", Type: TypeNumber})
		warns := p.Validate("ten")
		require.Len(t, warns, 1)
		assert.Equal(t, "amount", warns[0].Meta["ParameterName"])
	})
}
