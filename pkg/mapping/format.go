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
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	DisplayDateLayout = "02/01/06"

	dateRangeDelimiter = " ~ "
	listDelimiter      = ", "
)

// FormatValue renders a parameter value for preview. It never fails.
func FormatValue(value any) string {
	if isEmpty(value) {
		return ""
	}

	switch v := value.(type) {
	case time.Time:
		return v.Format(DisplayDateLayout)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = FormatValue(rv.Index(i).Interface())
		}
		delimiter := listDelimiter
		if rv.Len() > 0 {
			if _, ok := rv.Index(0).Interface().(time.Time); ok {
				delimiter = dateRangeDelimiter
			}
		}
		return strings.Join(items, delimiter)
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}

// DefaultDisplayValue - the value the mapping resolves to when nothing else is provided
func DefaultDisplayValue(m Editable) string {
	value := m.Param.NormalizedValue()
	if m.Type == TypeStaticValue && !isEmpty(m.Value) {
		value = m.Value
	}
	return FormatValue(value)
}

// isEmpty - nil, false, empty string, zero and NaN numbers
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case decimal.Decimal:
		return v.IsZero()
	case json.Number:
		f, err := v.Float64()
		return v == "" || err == nil && f == 0
	case time.Time:
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
