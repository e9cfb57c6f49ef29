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
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	dateRangeStartKey = "start"
	dateRangeEndKey   = "end"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// normalize - brings the value to the canonical go type of the parameter type. The values that cannot be
// represented are normalized to nil
func (p Parameter) normalize(v any) any {
	if v == nil {
		return nil
	}
	switch {
	case p.typ == TypeNumber:
		return normalizeNumber(v)
	case p.typ == TypeEnum:
		return p.normalizeEnum(v)
	case p.typ == TypeQuery:
		return p.normalizeQuery(v)
	case p.typ.IsDate():
		return normalizeDate(p.typ, v)
	case p.typ.IsDateRange():
		return normalizeDateRange(p.typ, v)
	default:
		return normalizeText(v)
	}
}

func normalizeText(v any) any {
	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		return s
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func normalizeNumber(v any) any {
	switch vv := v.(type) {
	case decimal.Decimal:
		return vv
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(vv.String())
		if err != nil {
			return nil
		}
		return d
	case float32, float64:
		f := cast.ToFloat64(vv)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return decimal.NewFromFloat(f)
	case bool:
		return nil
	default:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return nil
		}
		return decimal.NewFromInt(i)
	}
}

func (p Parameter) normalizeEnum(v any) any {
	if p.multiValues {
		values := toStrings(v)
		if len(p.enumOptions) > 0 {
			values = slices.DeleteFunc(values, func(s string) bool {
				return !slices.Contains(p.enumOptions, s)
			})
		}
		if len(values) == 0 {
			return nil
		}
		return values
	}

	var value string
	if values := toStrings(v); len(values) > 0 {
		value = values[0]
	}
	if len(p.enumOptions) == 0 {
		if value == "" {
			return nil
		}
		return value
	}
	if !slices.Contains(p.enumOptions, value) {
		return p.enumOptions[0]
	}
	return value
}

func (p Parameter) normalizeQuery(v any) any {
	values := toStrings(v)
	if len(values) == 0 {
		return nil
	}
	if p.multiValues {
		return values
	}
	return values[0]
}

func normalizeDate(t Type, v any) any {
	res, ok := toTime(t, v)
	if !ok {
		return nil
	}
	return res
}

func normalizeDateRange(t Type, v any) any {
	start, end, ok := rangeBounds(v)
	if !ok {
		return nil
	}
	startTime, ok := toTime(t, start)
	if !ok {
		return nil
	}
	endTime, ok := toTime(t, end)
	if !ok {
		return nil
	}
	return []time.Time{startTime, endTime}
}

func rangeBounds(v any) (start any, end any, ok bool) {
	switch vv := v.(type) {
	case []time.Time:
		if len(vv) != 2 {
			return nil, nil, false
		}
		return vv[0], vv[1], true
	case []string:
		if len(vv) != 2 {
			return nil, nil, false
		}
		return vv[0], vv[1], true
	case []any:
		if len(vv) != 2 {
			return nil, nil, false
		}
		return vv[0], vv[1], true
	case map[string]any:
		start, startOk := vv[dateRangeStartKey]
		end, endOk := vv[dateRangeEndKey]
		return start, end, startOk && endOk
	case map[string]string:
		start, startOk := vv[dateRangeStartKey]
		end, endOk := vv[dateRangeEndKey]
		return start, end, startOk && endOk
	}
	return nil, nil, false
}

func toTime(t Type, v any) (time.Time, bool) {
	switch vv := v.(type) {
	case time.Time:
		return vv, !vv.IsZero()
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return time.Time{}, false
		}
		if res, err := time.Parse(t.layout(), s); err == nil {
			return res, true
		}
		for _, layout := range timeLayouts {
			if res, err := time.Parse(layout, s); err == nil {
				return res, true
			}
		}
	}
	return time.Time{}, false
}

func toStrings(v any) []string {
	switch vv := v.(type) {
	case nil:
		return nil
	case string:
		if vv == "" {
			return nil
		}
		return []string{vv}
	case []string:
		return slices.DeleteFunc(slices.Clone(vv), func(s string) bool {
			return s == ""
		})
	case []any:
		res := make([]string, 0, len(vv))
		for _, item := range vv {
			if s := cast.ToString(item); s != "" {
				res = append(res, s)
			}
		}
		return res
	default:
		if s := cast.ToString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}
