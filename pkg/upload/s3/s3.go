package s3

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Options configures the S3-compatible object store (AWS or MinIO).
type Options struct {
	Bucket     string
	Region     string
	Endpoint   string // optional, for MinIO/self-hosted
	AccessKey  string
	SecretKey  string
	PublicBase string // base URL objects are readable from
}

// Store keeps uploads in an S3 bucket under "logos/<generated-name>" keys and
// hands out references resolved against PublicBase.
type Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func New(ctx context.Context, opts Options) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &Store{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: strings.TrimSuffix(opts.PublicBase, "/"),
	}, nil
}

func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := "logos/" + uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.publicBase + "/" + key, nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(ref, s.publicBase), "/")
	if key == "" {
		return fmt.Errorf("malformed file reference %q", ref)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
