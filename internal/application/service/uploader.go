package service

import (
	"context"
	"io"
)

// Uploader stores an image asset and returns its delivery URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
}
