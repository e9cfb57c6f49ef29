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
)

// Catalog - read-only ordered set of query parameters
type Catalog struct {
	params []Parameter
	byName map[string]int
}

func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		params: make([]Parameter, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		p, err := New(def)
		if err != nil {
			return nil, fmt.Errorf("create parameter: %w", err)
		}
		if _, ok := c.byName[p.Name()]; ok {
			return nil, fmt.Errorf("parameter \"%s\": %w", p.Name(), ErrDuplicateParameter)
		}
		c.byName[p.Name()] = len(c.params)
		c.params = append(c.params, p)
	}
	return c, nil
}

func (c *Catalog) Get(name string) (Parameter, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Parameter{}, false
	}
	return c.params[idx], true
}

// All - parameters in definition order
func (c *Catalog) All() []Parameter {
	return slices.Clone(c.params)
}

func (c *Catalog) Names() []string {
	res := make([]string, 0, len(c.params))
	for _, p := range c.params {
		res = append(res, p.Name())
	}
	return res
}

func (c *Catalog) Len() int {
	return len(c.params)
}
