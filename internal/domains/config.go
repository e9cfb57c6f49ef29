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
	"sync"

	"github.com/greenmaskio/parammap/internal/storages/directory"
	"github.com/greenmaskio/parammap/internal/storages/s3"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	defaultDirectoryStoragePath = "."
	defaultStorageType          = "directory"
	defaultLogLevel             = "info"
	defaultLogFormat            = "text"
	defaultValidateConcurrency  = 4
	defaultOutputFormat         = "text"
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Log: LogConfig{
					Level:  defaultLogLevel,
					Format: defaultLogFormat,
				},
				Storage: StorageConfig{
					Type:      defaultStorageType,
					S3:        &s3.Config{},
					Directory: &directory.Config{Path: defaultDirectoryStoragePath},
				},
				Validate: Validate{
					Concurrency: defaultValidateConcurrency,
					Format:      defaultOutputFormat,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log      LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage" json:"storage"`
	Validate Validate      `mapstructure:"validate" yaml:"validate" json:"validate"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

type StorageConfig struct {
	Type      string            `mapstructure:"type" yaml:"type" json:"type,omitempty"`
	S3        *s3.Config        `mapstructure:"s3" yaml:"s3" json:"s3,omitempty"`
	Directory *directory.Config `mapstructure:"directory" yaml:"directory" json:"directory,omitempty"`
}

type Validate struct {
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency" json:"concurrency,omitempty"`
	Format      string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	// ResolvedWarnings - hashes of warnings that were reviewed and must not be reported again
	ResolvedWarnings []string `mapstructure:"resolved_warnings" yaml:"resolved_warnings" json:"resolved_warnings,omitempty"`
}
