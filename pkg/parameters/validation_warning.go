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
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"slices"
)

const (
	ErrorValidationSeverity   = "error"
	WarningValidationSeverity = "warning"
	InfoValidationSeverity    = "info"
)

type ValidationWarnings []*ValidationWarning

func (re ValidationWarnings) IsFatal() bool {
	return slices.ContainsFunc(re, func(warning *ValidationWarning) bool {
		return warning.Severity == ErrorValidationSeverity
	})
}

type ValidationWarning struct {
	Msg      string         `json:"msg,omitempty" yaml:"msg,omitempty"`
	Severity string         `json:"severity,omitempty" yaml:"severity,omitempty"`
	Meta     map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Hash     string         `json:"hash" yaml:"hash"`
}

func NewValidationWarning() *ValidationWarning {
	return &ValidationWarning{
		Severity: WarningValidationSeverity,
		Meta:     make(map[string]any),
	}
}

func (re *ValidationWarning) SetMsg(msg string) *ValidationWarning {
	re.Msg = msg
	return re
}

func (re *ValidationWarning) SetMsgf(msg string, args ...any) *ValidationWarning {
	re.Msg = fmt.Sprintf(msg, args...)
	return re
}

func (re *ValidationWarning) SetSeverity(severity string) *ValidationWarning {
	re.Severity = severity
	return re
}

func (re *ValidationWarning) AddMeta(key string, value any) *ValidationWarning {
	re.Meta[key] = value
	return re
}

func (re *ValidationWarning) MakeHash() {
	var meta string
	keys := make([]string, 0, len(re.Meta))

	for key := range re.Meta {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		meta = fmt.Sprintf("%s %s=%v", meta, key, re.Meta[key])
	}

	signature := fmt.Sprintf("msg=%s severity=%s %s", re.Msg, re.Severity, meta)

	hash := md5.Sum([]byte(signature))
	re.Hash = hex.EncodeToString(hash[:])
}
