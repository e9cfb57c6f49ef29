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
	"fmt"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// Definition - the stored form of a query parameter. It is decoded from widget documents and config files
type Definition struct {
	// Name - name of the parameter. Must be unique in the query parameters slice
	Name string `mapstructure:"name" json:"name" yaml:"name"`
	// Title - human-readable title of the parameter
	Title string `mapstructure:"title" json:"title,omitempty" yaml:"title,omitempty"`
	// Type - one of the supported parameter types
	Type Type `mapstructure:"type" json:"type" yaml:"type"`
	// EnumOptions - ordered list of selectable values. Plays only with enum-like types
	EnumOptions []string `mapstructure:"enum_options" json:"enumOptions,omitempty" yaml:"enum_options,omitempty"`
	// QueryID - id of the query the options are taken from. Plays only with TypeQuery
	QueryID int `mapstructure:"query_id" json:"queryId,omitempty" yaml:"query_id,omitempty"`
	// MultiValues - parameter accepts a list of options instead of a single option
	MultiValues bool `mapstructure:"multi_values" json:"multiValues,omitempty" yaml:"multi_values,omitempty"`
	// Global - legacy flag. Global parameters are mapped to a dashboard-level parameter by default
	Global bool `mapstructure:"global" json:"global,omitempty" yaml:"global,omitempty"`
	// Value - default value of the parameter
	Value any `mapstructure:"value" json:"value" yaml:"value"`
}

// Parameter is an immutable query parameter. Use WithValue to get a copy with another working value,
// the receiver is never changed.
type Parameter struct {
	name         string
	title        string
	typ          Type
	enumOptions  []string
	queryID      int
	multiValues  bool
	global       bool
	value        any
	defaultValue any
}

func MustNew(def Definition) Parameter {
	p, err := New(def)
	if err != nil {
		panic(err)
	}
	return p
}

func New(def Definition) (Parameter, error) {
	if def.Name == "" {
		return Parameter{}, ErrEmptyParameterName
	}
	if err := def.Type.Validate(); err != nil {
		return Parameter{}, fmt.Errorf("parameter \"%s\": %w", def.Name, err)
	}
	p := Parameter{
		name:        def.Name,
		title:       def.Title,
		typ:         def.Type,
		enumOptions: slices.Clone(def.EnumOptions),
		queryID:     def.QueryID,
		multiValues: def.MultiValues,
		global:      def.Global,
	}
	p.value = p.normalize(def.Value)
	p.defaultValue = p.value
	return p, nil
}

func (p Parameter) Name() string {
	return p.name
}

func (p Parameter) Title() string {
	return p.title
}

func (p Parameter) Type() Type {
	return p.typ
}

func (p Parameter) EnumOptions() []string {
	return slices.Clone(p.enumOptions)
}

func (p Parameter) QueryID() int {
	return p.queryID
}

func (p Parameter) MultiValues() bool {
	return p.multiValues
}

func (p Parameter) Global() bool {
	return p.global
}

// Value - the working value. It is always the normalized form of what was set
func (p Parameter) Value() any {
	return p.value
}

// NormalizedValue - the working value when it is set, otherwise the catalog default
func (p Parameter) NormalizedValue() any {
	if p.value != nil {
		return p.value
	}
	return p.defaultValue
}

// WithValue returns a copy of the parameter with the working value set to the normalized v.
func (p Parameter) WithValue(v any) Parameter {
	res := p
	res.enumOptions = slices.Clone(p.enumOptions)
	res.value = p.normalize(v)
	return res
}

func (p Parameter) Equal(other Parameter) bool {
	return p.name == other.name &&
		p.title == other.title &&
		p.typ == other.typ &&
		slices.Equal(p.enumOptions, other.enumOptions) &&
		p.queryID == other.queryID &&
		p.multiValues == other.multiValues &&
		p.global == other.global &&
		cmp.Equal(p.value, other.value) &&
		cmp.Equal(p.defaultValue, other.defaultValue)
}
