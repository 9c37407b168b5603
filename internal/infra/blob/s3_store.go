// Package blob implements the key-value snapshot store on top of any
// S3-compatible backend (AWS S3, MinIO, RustFS).
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"ecogood/internal/config"
	repo "ecogood/internal/repository"
)

var _ repo.BlobStore = (*S3BlobStore)(nil)

// s3API is the slice of the S3 client the store actually uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3BlobStore saves and loads JSON snapshots under fixed keys.
// Every call runs under the configured deadline; when the deadline is
// exceeded the call is cancelled and surfaces repo.ErrBlobTimeout,
// distinct from a store-reported failure.
type S3BlobStore struct {
	client  s3API
	bucket  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewS3BlobStore builds the store from cfg.
func NewS3BlobStore(cfg config.Config, logger *zap.Logger) (*S3BlobStore, error) {
	if cfg.BlobBucket == "" {
		return nil, errors.New("blob bucket is required")
	}
	if cfg.BlobAccessKey == "" || cfg.BlobSecretKey == "" {
		return nil, errors.New("blob credentials are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	endpoint := cfg.BlobEndpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.BlobRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.BlobAccessKey,
			cfg.BlobSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.BlobUsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3BlobStore{
		client:  client,
		bucket:  cfg.BlobBucket,
		timeout: cfg.BlobTimeout,
		logger:  logger,
	}, nil
}

func (s *S3BlobStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return errors.New("blob key is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.Warn("blob save timed out", zap.String("key", key))
			return repo.ErrBlobTimeout
		}
		return fmt.Errorf("failed to save blob %s: %w", key, err)
	}

	return nil
}

func (s *S3BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("blob key is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.Warn("blob load timed out", zap.String("key", key))
			return nil, repo.ErrBlobTimeout
		}
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, repo.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to load blob %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, repo.ErrBlobTimeout
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}

	return data, nil
}
