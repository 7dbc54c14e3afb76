package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
}

// FileUploader abstrai o bucket de imagens (fotos de pilotos e temporadas,
// logos de equipes).
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	PublicURL(key string) string
}
