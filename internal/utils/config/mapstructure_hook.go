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

package config

import (
	"encoding/json"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// StringToSliceWithBracketHookFunc - decodes a JSON array given as a string, for instance from an
// environment variable, into a string slice. Other strings are left to the next hook.
func StringToSliceWithBracketHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Kind,
		t reflect.Kind,
		data interface{}) (interface{}, error) {
		if f != reflect.String || t != reflect.Slice {
			return data, nil
		}

		raw := data.(string)
		if raw == "" {
			return []string{}, nil
		}
		var slice []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &slice); err != nil {
			return data, nil
		}

		strSlice := make([]string, 0, len(slice))
		for _, v := range slice {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				s = string(v)
			}
			strSlice = append(strSlice, s)
		}
		return strSlice, nil
	}
}

// StringToStructHookFunc - decodes a JSON object given as a string into a struct or a pointer to a struct
func StringToStructHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String ||
			(t.Kind() != reflect.Struct && !(t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct)) {
			return data, nil
		}
		raw := data.(string)
		var val reflect.Value
		// Struct or the pointer to a struct
		if t.Kind() == reflect.Struct {
			val = reflect.New(t)
		} else {
			val = reflect.New(t.Elem())
		}

		if raw != "" {
			if err := json.Unmarshal([]byte(raw), val.Interface()); err != nil {
				return data, nil
			}
		}
		if t.Kind() == reflect.Struct {
			return val.Elem().Interface(), nil
		}
		return val.Interface(), nil
	}
}
