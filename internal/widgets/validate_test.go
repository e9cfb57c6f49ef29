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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/parammap/pkg/parameters"
)

func TestValidateDashboard(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("valid dashboard", func(t *testing.T) {
		reports, err := ValidateDashboard(ctx, store, "sales", ValidateOptions{Concurrency: 1})
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("findings", func(t *testing.T) {
		reports, err := ValidateDashboard(ctx, store, "broken", ValidateOptions{})
		require.NoError(t, err)
		require.Len(t, reports, 2)

		broken := reports[0]
		assert.Equal(t, 4, broken.WidgetID)
		assert.Equal(t, "Broken", broken.Title)
		require.Len(t, broken.Warnings, 5)
		assert.True(t, broken.Warnings.IsFatal())

		expected := []struct {
			msg       string
			severity  string
			parameter string
		}{
			{msg: "unknown parameter value", severity: parameters.ErrorValidationSeverity, parameter: "color"},
			{msg: "dashboard mapping has no target parameter", severity: parameters.ErrorValidationSeverity, parameter: "owner"},
			{msg: "mapping refers to unknown parameter", severity: parameters.ErrorValidationSeverity, parameter: "removed"},
			{msg: "invalid mapping type", severity: parameters.ErrorValidationSeverity, parameter: "status"},
			{
				msg:       "dashboard parameter with this name already exists with another type",
				severity:  parameters.WarningValidationSeverity,
				parameter: "region",
			},
		}
		for idx, e := range expected {
			w := broken.Warnings[idx]
			assert.Equal(t, e.msg, w.Msg)
			assert.Equal(t, e.severity, w.Severity)
			assert.Equal(t, e.parameter, w.Meta["ParameterName"])
			assert.Equal(t, 4, w.Meta["WidgetID"])
			assert.NotEmpty(t, w.Hash)
		}

		mismatch := reports[1]
		assert.Equal(t, 5, mismatch.WidgetID)
		require.Len(t, mismatch.Warnings, 1)
		assert.False(t, mismatch.Warnings.IsFatal())
		assert.Equal(t, parameters.TypeNumber, mismatch.Warnings[0].Meta["ParameterType"])
		assert.Equal(t, parameters.TypeText, mismatch.Warnings[0].Meta["DashboardParameterType"])
	})

	t.Run("resolved warnings are not reported", func(t *testing.T) {
		reports, err := ValidateDashboard(ctx, store, "broken", ValidateOptions{})
		require.NoError(t, err)
		require.Len(t, reports, 2)

		reports, err = ValidateDashboard(ctx, store, "broken", ValidateOptions{
			ResolvedWarnings: []string{reports[1].Warnings[0].Hash},
		})
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, 4, reports[0].WidgetID)
	})

	t.Run("unknown dashboard", func(t *testing.T) {
		reports, err := ValidateDashboard(ctx, store, "unknown", ValidateOptions{})
		require.NoError(t, err)
		assert.Empty(t, reports)
	})
}
