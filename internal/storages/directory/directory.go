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

package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/greenmaskio/parammap/internal/storages"
)

const (
	dirMode  os.FileMode = 0750
	fileMode os.FileMode = 0640
)

var errPathIsFile = errors.New("received directory path is file")

type Config struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// Storage - keeps widget documents in the local filesystem. The root path must exist, sub folders are
// created on the first write.
type Storage struct {
	cwd string
	mx  *sync.Mutex
}

func NewStorage(cfg Config) (*Storage, error) {
	fileInfo, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("error getting directory stat: %w", err)
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path %s: %w", cfg.Path, errPathIsFile)
	}
	return &Storage{
		cwd: cfg.Path,
		mx:  &sync.Mutex{},
	}, nil
}

// ListFiles - regular files of the cwd. A missing cwd is an empty folder.
func (s *Storage) ListFiles(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.cwd)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func (s *Storage) GetObject(_ context.Context, filePath string) (io.ReadCloser, error) {
	f, err := os.Open(path.Join(s.cwd, filePath))
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return f, nil
}

// PutObject - writes the data into a temporary file next to the target and renames it, so readers never
// see a half written document.
func (s *Storage) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	target := path.Join(s.cwd, filePath)
	s.mx.Lock()
	err := os.MkdirAll(path.Dir(target), dirMode)
	s.mx.Unlock()
	if err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(path.Dir(target), "."+path.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("unable to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = copyContext(ctx, tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing data: %w", err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("error replacing file: %w", err)
	}
	return nil
}

func copyContext(ctx context.Context, w io.Writer, r io.Reader) error {
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(w, r)
		done <- err
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func (s *Storage) SubStorage(subPath string) storages.Storager {
	return &Storage{
		cwd: path.Join(s.cwd, subPath),
		mx:  s.mx,
	}
}

func (s *Storage) Stat(_ context.Context, fileName string) (*storages.ObjectStat, error) {
	fullPath := path.Join(s.cwd, fileName)
	fileInfo, err := os.Stat(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &storages.ObjectStat{Name: fullPath}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error getting file stat: %w", err)
	}
	if fileInfo.IsDir() {
		return &storages.ObjectStat{Name: fullPath}, nil
	}

	return &storages.ObjectStat{
		Name:         fullPath,
		LastModified: fileInfo.ModTime(),
		Exist:        true,
	}, nil
}
