package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error)
	GetObjectURLWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
