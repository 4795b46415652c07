package ports

import (
	"context"
	"io"
)

// FileStorage — объектное хранилище (S3 / MinIO).
type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, content io.Reader, contentType string) (string, error)
}

// PasswordHasher хэширует пароли пользователей перед сохранением.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
