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

package memory

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	st := New("")

	require.NoError(t, st.PutObject(ctx, "widgets/1.json", bytes.NewBufferString("one")))
	require.NoError(t, st.PutObject(ctx, "widgets/2.json", bytes.NewBufferString("two")))
	require.NoError(t, st.PutObject(ctx, "config.yml", bytes.NewBufferString("cfg")))

	t.Run("get object", func(t *testing.T) {
		r, err := st.GetObject(ctx, "widgets/2.json")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))

		_, err = st.GetObject(ctx, "widgets/3.json")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("sub storage shares objects", func(t *testing.T) {
		sub := st.SubStorage("widgets")
		stat, err := sub.Stat(ctx, "1.json")
		require.NoError(t, err)
		assert.True(t, stat.Exist)
		assert.Equal(t, "widgets/1.json", stat.Name)

		files, err := sub.ListFiles(ctx)
		require.NoError(t, err)
		sort.Strings(files)
		assert.Equal(t, []string{"1.json", "2.json"}, files)

		require.NoError(t, sub.PutObject(ctx, "3.json", bytes.NewBufferString("three")))
		_, err = st.GetObject(ctx, "widgets/3.json")
		require.NoError(t, err)
	})

	t.Run("list files skips nested objects", func(t *testing.T) {
		files, err := st.ListFiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"config.yml"}, files)
	})

	t.Run("stat", func(t *testing.T) {
		stat, err := st.Stat(ctx, "config.yml")
		require.NoError(t, err)
		assert.True(t, stat.Exist)
		assert.False(t, stat.LastModified.IsZero())

		stat, err = st.Stat(ctx, "missing.yml")
		require.NoError(t, err)
		assert.False(t, stat.Exist)
	})
}
