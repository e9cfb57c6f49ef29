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
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// awsConfig - client settings that do not depend on the session
func awsConfig(cfg Config, logLevel string) *aws.Config {
	awsCfg := aws.NewConfig().
		WithS3ForcePathStyle(cfg.ForcePathStyle).
		WithS3UseAccelerate(cfg.UseAccelerate).
		WithLogger(aws.LoggerFunc(func(args ...interface{}) {
			log.Debug().Str("Component", "s3").Msg(fmt.Sprint(args...))
		}))
	request.WithRetryer(awsCfg, client.DefaultRetryer{NumMaxRetries: cfg.MaxRetries})

	if logLevel == zerolog.LevelDebugValue {
		awsCfg.WithLogLevel(aws.LogDebugWithRequestErrors | aws.LogDebugWithRequestRetries)
	} else {
		awsCfg.WithLogLevel(aws.LogOff)
	}
	if cfg.Endpoint != "" {
		awsCfg.WithEndpoint(cfg.Endpoint)
	}
	if cfg.Region != "" {
		awsCfg.WithRegion(cfg.Region)
	}
	if cfg.NoVerifySsl {
		awsCfg.WithHTTPClient(&http.Client{
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		})
	}
	if cfg.AccessKeyId != "" && cfg.SecretAccessKey != "" {
		awsCfg.WithCredentials(credentials.NewStaticCredentials(cfg.AccessKeyId, cfg.SecretAccessKey, cfg.SessionToken))
	}
	return awsCfg
}

// newSession - session with the custom CA bundle applied. When a role is configured the credentials are
// taken from STS and refreshed before they expire.
func newSession(cfg Config, awsCfg *aws.Config) (*session.Session, error) {
	opts := session.Options{
		Config:            *awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	}
	if cfg.CertFile != "" {
		ca, err := os.ReadFile(cfg.CertFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read cert file: %w", err)
		}
		opts.CustomCABundle = bytes.NewReader(ca)
	}

	ses, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot establish session: %w", err)
	}
	if cfg.RoleArn != "" {
		ses.Config.WithCredentials(stscreds.NewCredentials(ses, cfg.RoleArn, func(p *stscreds.AssumeRoleProvider) {
			if cfg.SessionName != "" {
				p.RoleSessionName = cfg.SessionName
			}
		}))
	}
	return ses, nil
}

// NewStorage - S3 backed storage. The role credentials are checked on creation so that a misconfigured
// role fails before any widget is read.
func NewStorage(ctx context.Context, cfg Config, logLevel string) (*Storage, error) {
	cfg = NewConfig(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid s3 config: %w", err)
	}

	ses, err := newSession(cfg, awsConfig(cfg, logLevel))
	if err != nil {
		return nil, err
	}
	if cfg.RoleArn != "" {
		if _, err = ses.Config.Credentials.GetWithContext(ctx); err != nil {
			return nil, fmt.Errorf("unable to assume role %s: %w", cfg.RoleArn, err)
		}
	}

	api := s3.New(ses)
	uploader := s3manager.NewUploaderWithClient(api, func(u *s3manager.Uploader) {
		u.PartSize = cfg.MaxPartSize
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
	})

	log.Debug().
		Str("Region", aws.StringValue(api.Config.Region)).
		Str("Bucket", cfg.Bucket).
		Str("Prefix", cfg.Prefix).
		Msg("s3 storage is ready")

	return newStorage(cfg, api, uploader), nil
}
