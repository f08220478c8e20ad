package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"pim-api/config"
)

var ErrNotConfigured = errors.New("storage provider is not configured")

type (
	// api is the subset of *s3.Client the provider uses.
	api interface {
		PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	Client struct {
		logger  *zap.Logger
		api     api
		cfgErr  error
		region  string
		bucket  string
		baseURL string
	}

	UploadOptions struct {
		// Key is the object key, FileName the name shown to downloaders.
		Key      string
		FileName string
		Size     int64
	}
	UploadResult struct {
		SecureURL  string
		StoredName string
		ByteSize   int64
		ProviderID string
	}
)

// New never fails: a missing or broken configuration is logged here and
// returned from the first Upload or Delete.
func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,
) *Client {
	c := &Client{
		logger:  logger,
		region:  cfg.Region,
		bucket:  cfg.BucketUploads,
		baseURL: publicBaseURL(cfg),
	}

	if !cfg.Complete() {
		c.cfgErr = ErrNotConfigured
		logger.Warn("s3 storage is not configured, uploads will fail")
		return c
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		c.cfgErr = fmt.Errorf("%w: %w", ErrNotConfigured, err)
		logger.Error("s3 config load failed", zap.Error(err))
		return c
	}

	c.api = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info("s3 storage configured", zap.String("bucket", c.bucket), zap.String("region", c.region))

	return c
}

func (c *Client) Upload(ctx context.Context, body io.Reader, contentType string, opts UploadOptions) (*UploadResult, error) {
	if c.cfgErr != nil {
		return nil, c.cfgErr
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(opts.Key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if opts.Size > 0 {
		in.ContentLength = aws.Int64(opts.Size)
	}
	if opts.FileName != "" {
		in.ContentDisposition = aws.String(fmt.Sprintf("inline; filename=%q", opts.FileName))
	}

	if _, err := c.api.PutObject(ctx, in); err != nil {
		return nil, fmt.Errorf("s3 put %q: %w", opts.Key, err)
	}

	return &UploadResult{
		SecureURL:  c.ResolveURL(opts.Key),
		StoredName: path.Base(opts.Key),
		ByteSize:   opts.Size,
		ProviderID: opts.Key,
	}, nil
}

// Delete treats an already missing object as deleted.
func (c *Client) Delete(ctx context.Context, providerID string) error {
	if c.cfgErr != nil {
		return c.cfgErr
	}

	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(providerID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("s3 delete %q: %w", providerID, err)
	}

	return nil
}

func (c *Client) ResolveURL(providerID string) string {
	if providerID == "" {
		return ""
	}

	segments := strings.Split(providerID, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return c.baseURL + "/" + strings.Join(segments, "/")
}

func publicBaseURL(cfg config.S3) string {
	switch {
	case cfg.PublicBaseURL != "":
		return cfg.PublicBaseURL
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.BucketUploads
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketUploads, cfg.Region)
	}
}
