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

package testutils

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/greenmaskio/parammap/internal/storages"
)

type StorageMock struct {
	mock.Mock
}

func (s *StorageMock) ListFiles(ctx context.Context) ([]string, error) {
	args := s.Called(ctx)
	files, _ := args.Get(0).([]string)
	return files, args.Error(1)
}

func (s *StorageMock) GetObject(ctx context.Context, filePath string) (io.ReadCloser, error) {
	args := s.Called(ctx, filePath)
	reader, _ := args.Get(0).(io.ReadCloser)
	return reader, args.Error(1)
}

func (s *StorageMock) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	args := s.Called(ctx, filePath, body)
	return args.Error(0)
}

func (s *StorageMock) Stat(ctx context.Context, fileName string) (*storages.ObjectStat, error) {
	args := s.Called(ctx, fileName)
	stat, _ := args.Get(0).(*storages.ObjectStat)
	return stat, args.Error(1)
}

func (s *StorageMock) SubStorage(subPath string) storages.Storager {
	args := s.Called(subPath)
	return args.Get(0).(storages.Storager)
}
