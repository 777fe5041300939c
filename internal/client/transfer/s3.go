package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config задает подключение к S3-совместимому хранилищу
type S3Config struct {
	Endpoint  string // хост:порт S3-совместимого API
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3 хранит резервные копии в S3-совместимом bucket'е.
// Идентификатором служит ключ объекта.
type S3 struct {
	client *minio.Client
	bucket string
}

// NewS3 creates a provider backed by an S3-compatible bucket.
// Конструктор не ходит в сеть: ошибки подключения всплывут при первом
// Upload или Download.
func NewS3(cfg S3Config) (*S3, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3{client: client, bucket: cfg.Bucket}, nil
}

// Upload выгружает данные в bucket под ключом path
func (s *S3) Upload(ctx context.Context, data []byte, path string) (string, error) {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, path, reader, int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return path, nil
}

// Download скачивает объект по ключу
func (s *S3) Download(ctx context.Context, id string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer func() {
		_ = obj.Close()
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	return data, nil
}
