package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gfmartins/racing-system/storage"
)

// uploadImage grava a imagem no bucket sob <prefix>/<id>/ e retorna a URL
// pública. O nome da chave inclui o timestamp para não reaproveitar URLs
// cacheadas quando a imagem é trocada.
func uploadImage(ctx context.Context, uploader storage.FileUploader, prefix string, id int, filename, contentType string, r io.Reader) (string, error) {
	if uploader == nil {
		return "", ErrUploadsDisabled
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	key := fmt.Sprintf("%s/%d/%d%s", prefix, id, time.Now().UnixNano(), ext)

	result, err := uploader.Upload(ctx, key, contentType, r)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.Location, nil
}
