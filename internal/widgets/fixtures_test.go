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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/parammap/internal/storages/memory"
)

var testWidgets = map[string]string{
	"1.json": `{
		"id": 1,
		"dashboard": "sales",
		"title": "Revenue",
		"query": {
			"id": 10,
			"parameters": [
				{"name": "region", "title": "Region", "type": "text", "global": true, "value": "eu"},
				{"name": "limit", "title": "Limit", "type": "number", "value": 10}
			]
		},
		"visualization": {"type": "table"},
		"options": {
			"columns": 3,
			"parameterMappings": {
				"region": {"name": "region", "type": "dashboard-level", "value": null, "mapTo": "region"},
				"limit": {"name": "limit", "type": "static-value", "value": 25, "mapTo": null}
			}
		}
	}`,
	"2.json": `{
		"id": 2,
		"dashboard": "sales",
		"title": "Orders",
		"query": {
			"id": 11,
			"parameters": [
				{"name": "region", "type": "text", "value": "us"},
				{"name": "color", "title": "Color", "type": "enum", "enumOptions": ["red", "green"], "value": "red"},
				{"name": "since", "title": "Since", "type": "date", "value": "2024-01-01"}
			]
		},
		"options": {
			"parameterMappings": {
				"region": {"name": "region", "type": "dashboard-level", "value": null, "mapTo": "region"},
				"color": {"name": "color", "type": "widget-level", "value": null, "mapTo": null}
			}
		}
	}`,
	"3.json": `{
		"id": 3,
		"dashboard": "marketing",
		"title": "Campaigns",
		"query": {"id": 12, "parameters": []},
		"options": {}
	}`,
	"4.json": `{
		"id": 4,
		"dashboard": "broken",
		"title": "Broken",
		"query": {
			"id": 13,
			"parameters": [
				{"name": "region", "type": "text"},
				{"name": "color", "type": "enum", "enumOptions": ["red", "green"]},
				{"name": "owner", "type": "text"},
				{"name": "status", "type": "text"}
			]
		},
		"options": {
			"parameterMappings": {
				"region": {"name": "region", "type": "dashboard-level", "mapTo": "region"},
				"color": {"name": "color", "type": "static-value", "value": "blue"},
				"owner": {"name": "owner", "type": "dashboard-level", "mapTo": null},
				"status": {"name": "status", "type": "query-level"},
				"removed": {"name": "removed", "type": "widget-level"}
			}
		}
	}`,
	"5.json": `{
		"id": 5,
		"dashboard": "broken",
		"title": "Mismatch",
		"query": {
			"id": 14,
			"parameters": [{"name": "region", "type": "number"}]
		},
		"options": {
			"parameterMappings": {
				"region": {"name": "region", "type": "dashboard-level", "mapTo": "region"}
			}
		}
	}`,
	"notes.txt": `not a widget`,
	// copies and misnamed documents of the sales dashboard
	"backup-7.json": `{"id": 7, "dashboard": "sales", "title": "Revenue copy", "query": {"id": 10}}`,
	"08.json":       `{"id": 8, "dashboard": "sales", "title": "Padded", "query": {"id": 10}}`,
	"9.json":        `{"id": 1, "dashboard": "sales", "title": "Wrong id", "query": {"id": 10}}`,
}

func newTestStore(t *testing.T) (*Store, *memory.Storage) {
	t.Helper()
	st := memory.New("")
	for name, doc := range testWidgets {
		err := st.PutObject(context.Background(), widgetsDir+"/"+name, bytes.NewBufferString(doc))
		require.NoError(t, err)
	}
	return NewStore(st), st
}
