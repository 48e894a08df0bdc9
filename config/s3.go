// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// s3Client is the subset of *s3.Client this package depends on, so
// tests can substitute a fake.
type s3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source loads claim bundles from objects in a single S3 bucket,
// for centrally managed bundles that should not live on every host's
// local disk.
type S3Source struct {
	client s3Client
	bucket string
}

// NewS3Source builds an S3Source over an existing client and bucket.
func NewS3Source(client *s3.Client, bucket string) S3Source {
	return S3Source{client: client, bucket: bucket}
}

// Load fetches the object at key and decodes/validates it as a Bundle,
// applying overrides the same way Load does for local files.
func (s S3Source) Load(ctx context.Context, key string, overrides *pflag.FlagSet) (Bundle, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Bundle{}, oops.In("config").Code("SourceUnavailable").Wrapf(err, "fetch s3://%s/%s", s.bucket, key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return Bundle{}, oops.In("config").Wrapf(err, "read s3://%s/%s body", s.bucket, key)
	}

	return LoadBytes(data, overrides)
}
