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
	"fmt"
	"io"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/storages"
	"github.com/greenmaskio/parammap/pkg/mapping"
)

const (
	widgetsDir        = "widgets"
	widgetFileExt     = ".json"
	mappingsPath      = "options.parameterMappings"
	dashboardJSONPath = "dashboard"
	idJSONPath        = "id"
)

var (
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrMappingNotFound = errors.New("mapping not found")
)

// Store - reads and writes widget documents kept as widgets/<id>.json in the storage
type Store struct {
	st storages.Storager
}

func NewStore(st storages.Storager) *Store {
	return &Store{
		st: st.SubStorage(widgetsDir),
	}
}

func widgetFileName(id int) string {
	return strconv.Itoa(id) + widgetFileExt
}

// List - ids of the widgets placed on the dashboard in ascending order. The id is the file name, documents
// whose name is not an id or disagrees with the id field are skipped.
func (s *Store) List(ctx context.Context, dashboard string) ([]int, error) {
	files, err := s.st.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing widgets: %w", err)
	}

	var res []int
	for _, f := range files {
		if path.Ext(f) != widgetFileExt {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(f, widgetFileExt))
		if err != nil || widgetFileName(id) != f {
			log.Warn().Str("FileName", f).Msg("skipping widget document: file name is not a widget id")
			continue
		}
		data, err := s.read(ctx, f)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(data) {
			log.Warn().Str("FileName", f).Msg("skipping widget document: invalid json")
			continue
		}
		if gjson.GetBytes(data, dashboardJSONPath).String() != dashboard {
			continue
		}
		docID := gjson.GetBytes(data, idJSONPath)
		if docID.Exists() && (docID.Type != gjson.Number || docID.Int() != int64(id)) {
			log.Warn().
				Str("FileName", f).
				Str("DocumentID", docID.Raw).
				Msg("skipping widget document: id field does not match the file name")
			continue
		}
		res = append(res, id)
	}
	slices.Sort(res)
	return res, nil
}

// Load - decodes the widget document. Numbers are kept as json.Number so that no precision is lost
// before normalization.
func (s *Store) Load(ctx context.Context, id int) (*domains.Widget, error) {
	name := widgetFileName(id)
	stat, err := s.st.Stat(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error getting widget %d info: %w", id, err)
	}
	if !stat.Exist {
		return nil, fmt.Errorf("widget %d: %w", id, ErrWidgetNotFound)
	}

	data, err := s.read(ctx, name)
	if err != nil {
		return nil, err
	}

	w := &domains.Widget{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(w); err != nil {
		return nil, fmt.Errorf("error decoding widget %d: %w", id, err)
	}
	w.ID = id
	w.Raw = data
	w.LastModified = stat.LastModified
	return w, nil
}

// SaveMappings replaces the stored mappings of the widget. The rest of the document is written back
// as it was read.
func (s *Store) SaveMappings(ctx context.Context, w *domains.Widget, persisted map[string]mapping.Persisted) error {
	raw := w.Raw
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	raw, err := sjson.SetBytes(raw, mappingsPath, persisted)
	if err != nil {
		return fmt.Errorf("error setting widget mappings: %w", err)
	}
	if err = s.st.PutObject(ctx, widgetFileName(w.ID), bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("error storing widget %d: %w", w.ID, err)
	}
	w.Raw = raw
	w.Options.ParameterMappings = persisted
	return nil
}

func (s *Store) read(ctx context.Context, name string) ([]byte, error) {
	r, err := s.st.GetObject(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error getting widget document %s: %w", name, err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Warn().Err(err).Str("FileName", name).Msg("error closing widget document")
		}
	}()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading widget document %s: %w", name, err)
	}
	return data, nil
}
