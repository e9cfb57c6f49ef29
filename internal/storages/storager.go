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

package storages

import (
	"context"
	"io"
	"time"
)

// ObjectStat - metadata of a stored object. Exist is false when there is no object with the name.
type ObjectStat struct {
	Name         string
	LastModified time.Time
	Exist        bool
}

type Storager interface {
	// ListFiles - names of the objects placed directly in the cwd
	ListFiles(ctx context.Context) ([]string, error)
	// GetObject - returns ReadCloser by the provided path
	GetObject(ctx context.Context, filePath string) (io.ReadCloser, error)
	// PutObject - puts data to the provided file path
	PutObject(ctx context.Context, filePath string, body io.Reader) error
	// Stat - get the metadata info about object from the storage
	Stat(ctx context.Context, fileName string) (*ObjectStat, error)
	// SubStorage - storage with the same config and cwd moved to the sub folder
	SubStorage(subPath string) Storager
}
