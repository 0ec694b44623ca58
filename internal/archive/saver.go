package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Saver stores a finished archive and returns where it ended up.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// NewSaver picks a saver for dest. "s3://bucket/prefix" uploads to S3 in
// region; anything else is treated as a local directory.
func NewSaver(ctx context.Context, dest, region string) (Saver, error) {
	if strings.HasPrefix(dest, "s3://") {
		bucket, prefix, err := parseS3URL(dest)
		if err != nil {
			return nil, err
		}
		opts := []func(*awsconfig.LoadOptions) error{}
		if region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return &S3Saver{Client: s3.NewFromConfig(cfg), Bucket: bucket, Prefix: prefix}, nil
	}
	return &DirSaver{Dir: dest}, nil
}

// DirSaver writes archives into a local directory. Existing files are never
// overwritten; a numeric suffix is added instead.
type DirSaver struct {
	Dir string
}

// Save implements Saver.
func (d *DirSaver) Save(_ context.Context, name string, data []byte) (string, error) {
	dir := d.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	dest := nextAvailable(filepath.Join(dir, name))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return dest, nil
}

func nextAvailable(p string) string {
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return p
	}
	dir := filepath.Dir(p)
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	for i := 1; i < 10000; i++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s-%d%s", name, i, ext))
		if _, err := os.Stat(cand); errors.Is(err, fs.ErrNotExist) {
			return cand
		}
	}
	return p
}

// putObjectAPI is the slice of the S3 client S3Saver needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Saver uploads archives to a bucket.
type S3Saver struct {
	Client putObjectAPI
	Bucket string
	Prefix string
}

// Save implements Saver.
func (s *S3Saver) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := name
	if s.Prefix != "" {
		key = path.Join(s.Prefix, name)
	}
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return "", fmt.Errorf("upload archive to s3://%s/%s: %w", s.Bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.Bucket, key), nil
}

func parseS3URL(raw string) (bucket, prefix string, err error) {
	rest := strings.TrimPrefix(raw, "s3://")
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid s3 destination %q: missing bucket", raw)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}
