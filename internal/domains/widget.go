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

package domains

import (
	"time"

	"github.com/greenmaskio/parammap/pkg/mapping"
	"github.com/greenmaskio/parammap/pkg/parameters"
)

// Widget - the part of a stored widget document the mapping editor works with. Raw keeps the document as
// it was read so that saving only touches the mappings.
type Widget struct {
	ID        int           `json:"id" yaml:"id"`
	Dashboard string        `json:"dashboard" yaml:"dashboard"`
	Title     string        `json:"title" yaml:"title"`
	Query     Query         `json:"query" yaml:"query"`
	Options   WidgetOptions `json:"options" yaml:"options"`
	Raw       []byte        `json:"-" yaml:"-"`
	// LastModified - modification time of the stored document
	LastModified time.Time `json:"-" yaml:"-"`
}

type Query struct {
	ID         int                     `json:"id" yaml:"id"`
	Parameters []parameters.Definition `json:"parameters" yaml:"parameters"`
}

type WidgetOptions struct {
	ParameterMappings map[string]mapping.Persisted `json:"parameterMappings" yaml:"parameter_mappings"`
}
