package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v4"

	"github.com/go-arrower/fakedata/secret"
)

// S3Client is the part of the S3 API used by S3.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the connection to S3 or an S3 compatible service.
type S3Config struct {
	Region          string        `mapstructure:"region"`
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey secret.Secret `mapstructure:"secret_access_key"`
	ForcePathStyle  bool          `mapstructure:"force_path_style"`
}

type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	configOptions []func(*config.LoadOptions) error
	backoff       func() backoff.BackOff
}

const maxUploadRetries = 3

// WithS3Backoff sets the retry policy of uploads failing with a transient error.
// The default retries up to three times with an exponential backoff.
func WithS3Backoff(newBackoff func() backoff.BackOff) S3Option {
	return func(o *s3Options) {
		o.backoff = newBackoff
	}
}

// WithS3Client sets a pre-configured client, e.g. a mock in tests.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// S3 uploads to the bucket and key of an s3://bucket/key path.
type S3 struct {
	client  S3Client
	backoff func() backoff.BackOff
}

var _ Storage = (*S3)(nil)

// NewS3 creates an S3 storage. Without static credentials in cfg,
// the default AWS credential chain is used.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	options := &s3Options{
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxUploadRetries)
		},
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.client != nil {
		return &S3{client: options.client, backoff: options.backoff}, nil
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: missing s3 region", ErrInvalidConfig)
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && !cfg.SecretAccessKey.IsEmpty() {
		awsOptions = append(awsOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey.Secret(), ""),
		))
	}

	awsOptions = append(awsOptions, options.configOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load aws config: %w", ErrInvalidConfig, err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}

		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &S3{client: client, backoff: options.backoff}, nil
}

func (s *S3) Save(ctx context.Context, p string, r io.Reader) error {
	dst, err := ParseDestination(p)
	if err != nil {
		return err
	}

	if !dst.IsS3() {
		return fmt.Errorf("%w: %q is not an s3 path", ErrInvalidDestination, p)
	}

	// the body is read again on every attempt
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, dst, err)
	}

	upload := func() error {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(dst.Bucket),
			Key:         aws.String(dst.Key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType(dst.Key)),
		})
		if err != nil {
			err = classifyS3Error(err)
			if !errors.Is(err, ErrServiceUnavailable) {
				return backoff.Permanent(err)
			}
		}

		return err
	}

	if err = backoff.Retry(upload, backoff.WithContext(s.backoff(), ctx)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, dst, err)
	}

	return nil
}

var (
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)

func classifyS3Error(err error) error {
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
		case "AccessDenied":
			return fmt.Errorf("%w: %w", ErrAccessDenied, err)
		case "SlowDown", "ServiceUnavailable", "RequestTimeout", "InternalError":
			return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}
	}

	return err
}

func contentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}
