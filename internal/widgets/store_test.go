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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/greenmaskio/parammap/internal/utils/testutils"
	"github.com/greenmaskio/parammap/pkg/mapping"
	"github.com/greenmaskio/parammap/pkg/parameters"
)

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// backup-7.json, 08.json and 9.json cannot be loaded by their id and are skipped
	ids, err := store.List(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
	for _, id := range ids {
		_, err = store.Load(ctx, id)
		require.NoError(t, err)
	}

	ids, err = store.List(ctx, "marketing")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids)

	ids, err = store.List(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_ListWithoutIDField(t *testing.T) {
	store, st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.PutObject(ctx, "widgets/12.json", bytes.NewBufferString(`{"dashboard": "ops"}`)))

	ids, err := store.List(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, []int{12}, ids)

	w, err := store.Load(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, w.ID)
}

func TestStore_Load(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		w, err := store.Load(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, w.ID)
		assert.Equal(t, "sales", w.Dashboard)
		assert.Equal(t, "Revenue", w.Title)
		require.Len(t, w.Query.Parameters, 2)
		assert.Equal(t, parameters.TypeNumber, w.Query.Parameters[1].Type)
		assert.Equal(t, json.Number("10"), w.Query.Parameters[1].Value)
		assert.Equal(t, mapping.Persisted{
			Name:  "region",
			Type:  mapping.DashboardLevel,
			MapTo: "region",
		}, w.Options.ParameterMappings["region"])
		assert.Equal(t, json.Number("25"), w.Options.ParameterMappings["limit"].Value)
		assert.NotEmpty(t, w.Raw)
		assert.False(t, w.LastModified.IsZero())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.Load(ctx, 100)
		require.ErrorIs(t, err, ErrWidgetNotFound)
	})
}

func TestStore_SaveMappings(t *testing.T) {
	store, st := newTestStore(t)
	ctx := context.Background()

	w, err := store.Load(ctx, 1)
	require.NoError(t, err)

	persisted := map[string]mapping.Persisted{
		"region": {Name: "region", Type: mapping.WidgetLevel},
		"limit":  {Name: "limit", Type: mapping.StaticValue, Value: 5, Title: "Rows"},
	}
	require.NoError(t, store.SaveMappings(ctx, w, persisted))
	assert.Equal(t, persisted, w.Options.ParameterMappings)

	r, err := st.GetObject(ctx, "widgets/1.json")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, int64(3), gjson.GetBytes(data, "options.columns").Int())
	assert.Equal(t, "table", gjson.GetBytes(data, "visualization.type").String())
	assert.Equal(t, "widget-level", gjson.GetBytes(data, "options.parameterMappings.region.type").String())
	assert.Equal(t, gjson.Null, gjson.GetBytes(data, "options.parameterMappings.region.mapTo").Type)
	assert.Equal(t, int64(5), gjson.GetBytes(data, "options.parameterMappings.limit.value").Int())
	assert.Equal(t, "Rows", gjson.GetBytes(data, "options.parameterMappings.limit.title").String())

	reloaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, mapping.WidgetLevel, reloaded.Options.ParameterMappings["region"].Type)
}

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	errStorage := errors.New("storage is unavailable")

	st := &testutils.StorageMock{}
	st.On("SubStorage", widgetsDir).Return(st)
	st.On("ListFiles", mock.Anything).Return(nil, errStorage)
	st.On("Stat", mock.Anything, "1.json").Return(nil, errStorage)

	store := NewStore(st)

	_, err := store.List(ctx, "sales")
	require.ErrorIs(t, err, errStorage)

	_, err = store.Load(ctx, 1)
	require.ErrorIs(t, err, errStorage)

	st.AssertExpectations(t)
}
