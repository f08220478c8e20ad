package ports

import (
	"context"
	"io"

	"pim-api/internal/infrastructure/s3"
)

type Storage interface {
	Upload(ctx context.Context, body io.Reader, contentType string, opts s3.UploadOptions) (*s3.UploadResult, error)
	Delete(ctx context.Context, providerID string) error
	ResolveURL(providerID string) string
}
