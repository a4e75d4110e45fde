package storage

import (
	"context"
)

// FileStorage guarda as fotos de perfil das profissionais.
type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
