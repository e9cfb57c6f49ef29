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

package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"

	"github.com/greenmaskio/parammap/internal/storages"
)

const delimiter = "/"

// Storage - objects of the bucket under the prefix. The prefix plays the role of the cwd.
type Storage struct {
	bucket       string
	storageClass string
	prefix       string
	api          s3iface.S3API
	uploader     s3manageriface.UploaderAPI
}

func newStorage(cfg Config, api s3iface.S3API, uploader s3manageriface.UploaderAPI) *Storage {
	return &Storage{
		bucket:       cfg.Bucket,
		storageClass: cfg.StorageClass,
		prefix:       dirPrefix(cfg.Prefix),
		api:          api,
		uploader:     uploader,
	}
}

func (s *Storage) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *Storage) ListFiles(ctx context.Context) ([]string, error) {
	var files []string
	err := s.api.ListObjectsV2PagesWithContext(
		ctx,
		&s3.ListObjectsV2Input{
			Bucket:    aws.String(s.bucket),
			Prefix:    aws.String(s.prefix),
			Delimiter: aws.String(delimiter),
		},
		func(page *s3.ListObjectsV2Output, _ bool) bool {
			for _, obj := range page.Contents {
				// folder markers created by the console have the prefix itself as the key
				if name := strings.TrimPrefix(aws.StringValue(obj.Key), s.prefix); name != "" {
					files = append(files, name)
				}
			}
			return true
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error listing objects of s3://%s/%s: %w", s.bucket, s.prefix, err)
	}
	return files, nil
}

func (s *Storage) GetObject(ctx context.Context, filePath string) (io.ReadCloser, error) {
	out, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filePath)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("object %s: %w", s.key(filePath), fs.ErrNotExist)
		}
		return nil, fmt.Errorf("error getting object %s: %w", s.key(filePath), err)
	}
	return out.Body, nil
}

func (s *Storage) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s.key(filePath)),
		Body:         body,
		StorageClass: aws.String(s.storageClass),
		ContentType:  aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error uploading object %s: %w", s.key(filePath), err)
	}
	return nil
}

func (s *Storage) Stat(ctx context.Context, fileName string) (*storages.ObjectStat, error) {
	key := s.key(fileName)
	out, err := s.api.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return &storages.ObjectStat{Name: key}, nil
		}
		return nil, fmt.Errorf("error getting object %s info: %w", key, err)
	}
	return &storages.ObjectStat{
		Name:         key,
		LastModified: aws.TimeValue(out.LastModified),
		Exist:        true,
	}, nil
}

func (s *Storage) SubStorage(subPath string) storages.Storager {
	sub := *s
	sub.prefix = dirPrefix(path.Join(s.prefix, subPath))
	return &sub
}

func isNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}
	switch awsErr.Code() {
	case "NotFound", s3.ErrCodeNoSuchKey:
		return true
	}
	return false
}

// dirPrefix - the prefix with a single trailing delimiter. The bucket root is the empty prefix.
func dirPrefix(prefix string) string {
	prefix = strings.Trim(prefix, delimiter)
	if prefix == "" {
		return ""
	}
	return prefix + delimiter
}
