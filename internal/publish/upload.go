// Package publish uploads generated headers to S3-compatible storage.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

// ErrNotConfigured is returned when an upload is attempted without S3 settings.
var ErrNotConfigured = errors.New("S3 is not configured")

// headerContentType is the MIME type used for uploaded C headers.
const headerContentType = "text/x-c; charset=utf-8"

// uploadTimeout bounds a single header upload.
const uploadTimeout = 30000 * time.Millisecond

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint        string // Custom S3 endpoint (empty for AWS)
	Bucket          string // S3 bucket name
	AccessKeyID     string // Access key ID
	SecretAccessKey string // Secret access key
	Prefix          string // Key prefix inside the bucket
}

// IsConfigured returns true if S3 settings are configured.
func (c *S3Config) IsConfigured() bool {
	return util.IsConfigured(c.Bucket, c.AccessKeyID, c.SecretAccessKey)
}

// putObjectAPI is the subset of the S3 client used for publishing.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads header files to a single bucket.
type Publisher struct {
	cfg    S3Config
	client putObjectAPI
}

// New returns a Publisher for cfg.
func New(cfg S3Config) (*Publisher, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	return &Publisher{cfg: cfg, client: createS3Client(&cfg)}, nil
}

// createS3Client creates an S3 client with the given configuration.
func createS3Client(cfg *S3Config) *s3.Client {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.AccessKeyID,
		cfg.SecretAccessKey,
		"",
	)

	options := []func(*s3.Options){
		func(o *s3.Options) {
			o.Credentials = creds
			o.Region = "auto"
		},
	}

	if cfg.Endpoint != "" {
		options = append(options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return s3.New(s3.Options{}, options...)
}

// Bucket returns the target bucket name.
func (p *Publisher) Bucket() string {
	return p.cfg.Bucket
}

// ObjectKey returns the key a header named fileName is stored under.
func ObjectKey(prefix, fileName string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return fileName
	}
	return path.Join(prefix, fileName)
}

// Upload stores the file at localPath under the configured prefix and
// returns the object key.
func (p *Publisher) Upload(ctx context.Context, localPath, fileName string) (string, error) {
	key := ObjectKey(p.cfg.Prefix, fileName)

	file, err := os.Open(localPath)
	if err != nil {
		return key, util.WrapError("open header", err)
	}
	defer file.Close() //nolint:errcheck // Read-only file, close error not critical

	info, err := file.Stat()
	if err != nil {
		return key, util.WrapError("stat header", err)
	}

	ctx, cancel := context.WithTimeoutCause(ctx, uploadTimeout, errors.New("S3 upload timeout"))
	defer cancel()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.cfg.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(headerContentType),
	})
	if err != nil {
		return key, fmt.Errorf("upload %s: %w", key, err)
	}

	slog.Info("header uploaded", "bucket", p.cfg.Bucket, "s3_key", key, "bytes", info.Size())
	return key, nil
}
