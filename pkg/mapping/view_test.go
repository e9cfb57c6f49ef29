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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

func TestRows(t *testing.T) {
	list := testEditable(t)
	list[2] = list[2].WithTitle("Paint")

	rows := Rows(list)
	require.Len(t, rows, 3)

	assert.Equal(t, ViewRow{
		Name:         "region",
		Title:        "Region",
		Keyword:      "{{ region }}",
		DefaultValue: "eu",
		Source:       "Dashboard parameter region",
		Type:         TypeDashboardAddNew,
	}, rows[0])

	assert.Equal(t, "5", rows[1].DefaultValue)
	assert.Equal(t, "Static value", rows[1].Source)

	assert.Equal(t, "Paint", rows[2].Title)
	assert.Equal(t, "green", rows[2].DefaultValue)
	assert.Equal(t, "Widget parameter", rows[2].Source)
}

func TestDashboardParameters(t *testing.T) {
	first := testEditable(t)
	second, err := Classify(
		[]Persisted{
			{Name: "region", Type: DashboardLevel, MapTo: "region", Title: "Other title"},
			{Name: "color", Type: DashboardLevel, MapTo: "shared_color"},
		},
		testParams(), nil,
	)
	require.NoError(t, err)

	defs := DashboardParameters(append(first, second...))
	assert.Equal(t, []DashboardParameter{
		{Name: "region", Type: parameters.TypeText, Title: "Region"},
		{Name: "shared_color", Type: parameters.TypeEnum, Title: "Color"},
	}, defs)

	assert.Equal(t, []string{"region"}, ExistingNames(defs, parameters.TypeText))
	assert.Equal(t, []string{"shared_color"}, ExistingNames(defs, parameters.TypeEnum))
	assert.Empty(t, ExistingNames(defs, parameters.TypeDate))
}

func TestComplete(t *testing.T) {
	params := []parameters.Parameter{
		parameters.MustNew(parameters.Definition{Name: "region", Type: parameters.TypeText, Global: true}),
		parameters.MustNew(parameters.Definition{Name: "limit", Type: parameters.TypeNumber}),
		parameters.MustNew(parameters.Definition{Name: "color", Type: parameters.TypeText}),
	}

	res := Complete(params, map[string]Persisted{
		"color":   {Name: "color", Type: StaticValue, Value: "red"},
		"removed": {Name: "removed", Type: WidgetLevel},
	})

	assert.Equal(t, []Persisted{
		{Name: "region", Type: DashboardLevel, MapTo: "region"},
		{Name: "limit", Type: WidgetLevel, MapTo: "limit"},
		{Name: "color", Type: StaticValue, Value: "red"},
	}, res)
}

func TestClassifyOnDashboard(t *testing.T) {
	dashboard := []DashboardParameter{
		{Name: "region", Type: parameters.TypeText},
		{Name: "shared_color", Type: parameters.TypeText},
	}

	res, err := ClassifyOnDashboard(
		[]Persisted{
			{Name: "region", Type: DashboardLevel, MapTo: "region"},
			{Name: "color", Type: DashboardLevel, MapTo: "shared_color"},
		},
		testParams(), dashboard,
	)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, TypeDashboardMapToExisting, res[0].Type)
	// color is an enum, the text parameter with the same name cannot be reused
	assert.Equal(t, TypeDashboardAddNew, res[1].Type)

	_, err = ClassifyOnDashboard([]Persisted{{Name: "missing", Type: WidgetLevel}}, testParams(), dashboard)
	require.ErrorIs(t, err, ErrUnknownParameter)
}
