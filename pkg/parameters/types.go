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
	"errors"
	"fmt"
)

var (
	ErrUnknownParameterType = errors.New("unknown parameter type")
	ErrDuplicateParameter   = errors.New("duplicate parameter name")
	ErrEmptyParameterName   = errors.New("parameter name is empty")
)

type Type string

const (
	TypeText                     Type = "text"
	TypeNumber                   Type = "number"
	TypeEnum                     Type = "enum"
	TypeQuery                    Type = "query"
	TypeDate                     Type = "date"
	TypeDateTimeLocal            Type = "datetime-local"
	TypeDateTimeWithSeconds      Type = "datetime-with-seconds"
	TypeDateRange                Type = "date-range"
	TypeDateTimeRange            Type = "datetime-range"
	TypeDateTimeRangeWithSeconds Type = "datetime-range-with-seconds"
)

func (t Type) Validate() error {
	switch t {
	case TypeText, TypeNumber, TypeEnum, TypeQuery,
		TypeDate, TypeDateTimeLocal, TypeDateTimeWithSeconds,
		TypeDateRange, TypeDateTimeRange, TypeDateTimeRangeWithSeconds:
		return nil
	}
	return fmt.Errorf("type \"%s\": %w", t, ErrUnknownParameterType)
}

// IsDate - single point in time
func (t Type) IsDate() bool {
	return t == TypeDate || t == TypeDateTimeLocal || t == TypeDateTimeWithSeconds
}

// IsDateRange - pair of points in time
func (t Type) IsDateRange() bool {
	return t == TypeDateRange || t == TypeDateTimeRange || t == TypeDateTimeRangeWithSeconds
}

// IsEnumLike - value is picked from a list of options
func (t Type) IsEnumLike() bool {
	return t == TypeEnum || t == TypeQuery
}

// layout - the textual layout the type is usually entered with
func (t Type) layout() string {
	switch t {
	case TypeDateTimeLocal, TypeDateTimeRange:
		return "2006-01-02 15:04"
	case TypeDateTimeWithSeconds, TypeDateTimeRangeWithSeconds:
		return "2006-01-02 15:04:05"
	default:
		return "2006-01-02"
	}
}
