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

package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/storages"
	"github.com/greenmaskio/parammap/internal/storages/directory"
	"github.com/greenmaskio/parammap/internal/storages/s3"
)

const (
	DirectoryStorageType = "directory"
	S3StorageType        = "s3"
)

var (
	errUnknownStorageType = errors.New("unknown storage type")
	errEmptyStorageConfig = errors.New("storage config is empty")
)

// GetStorage returns a storage based on the configuration.
func GetStorage(ctx context.Context, stCfg domains.StorageConfig, logCfg domains.LogConfig) (storages.Storager, error) {
	switch stCfg.Type {
	case DirectoryStorageType:
		if stCfg.Directory == nil {
			return nil, fmt.Errorf("storage type %s: %w", stCfg.Type, errEmptyStorageConfig)
		}
		return directory.NewStorage(*stCfg.Directory)
	case S3StorageType:
		if stCfg.S3 == nil {
			return nil, fmt.Errorf("storage type %s: %w", stCfg.Type, errEmptyStorageConfig)
		}
		return s3.NewStorage(ctx, *stCfg.S3, logCfg.Level)
	}
	return nil, fmt.Errorf("storage type %s: %w", stCfg.Type, errUnknownStorageType)
}
