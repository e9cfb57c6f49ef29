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

package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/greenmaskio/parammap/internal/storages"
)

type object struct {
	data         []byte
	lastModified time.Time
}

type bucket struct {
	mu    sync.RWMutex
	files map[string]*object
}

// Storage - in-memory Storager. Sub storages share the same bucket.
type Storage struct {
	basePath string
	bucket   *bucket
}

func New(basePath string) *Storage {
	return &Storage{
		basePath: basePath,
		bucket:   &bucket{files: make(map[string]*object)},
	}
}

func (s *Storage) key(filePath string) string {
	return path.Join(s.basePath, filePath)
}

func (s *Storage) ListFiles(_ context.Context) ([]string, error) {
	s.bucket.mu.RLock()
	defer s.bucket.mu.RUnlock()

	prefix := s.basePath
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, "/") + "/"
	}
	var files []string
	for k := range s.bucket.files {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if name := strings.TrimPrefix(k, prefix); !strings.Contains(name, "/") {
			files = append(files, name)
		}
	}
	return files, nil
}

func (s *Storage) GetObject(_ context.Context, filePath string) (io.ReadCloser, error) {
	s.bucket.mu.RLock()
	defer s.bucket.mu.RUnlock()

	obj, ok := s.bucket.files[s.key(filePath)]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", filePath, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *Storage) PutObject(_ context.Context, filePath string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("error reading data: %w", err)
	}

	s.bucket.mu.Lock()
	defer s.bucket.mu.Unlock()
	s.bucket.files[s.key(filePath)] = &object{
		data:         data,
		lastModified: time.Now(),
	}
	return nil
}

func (s *Storage) SubStorage(subPath string) storages.Storager {
	return &Storage{
		basePath: path.Join(s.basePath, subPath),
		bucket:   s.bucket,
	}
}

func (s *Storage) Stat(_ context.Context, fileName string) (*storages.ObjectStat, error) {
	s.bucket.mu.RLock()
	defer s.bucket.mu.RUnlock()

	obj, ok := s.bucket.files[s.key(fileName)]
	if !ok {
		return &storages.ObjectStat{Name: s.key(fileName)}, nil
	}
	return &storages.ObjectStat{
		Name:         s.key(fileName),
		Exist:        true,
		LastModified: obj.lastModified,
	}, nil
}
