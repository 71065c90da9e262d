package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"kolotebe/config"
	"kolotebe/internal/domain/service"
	"kolotebe/internal/errors"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioStorage stores uploaded files in a MinIO (S3 compatible) bucket.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinIOStorage is the constructor for minioStorage.
func NewMinIOStorage(cfg *config.Config) (service.ObjectStorage, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage config must be provided")
	}

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	publicURL := cfg.Storage.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Storage.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Storage.Endpoint, cfg.Storage.Bucket)
	}

	return &minioStorage{
		client:    client,
		bucket:    cfg.Storage.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the file content under the given folder. Object keys embed a
// random UUID so concurrent uploads of the same file name never collide.
func (s *minioStorage) Upload(ctx context.Context, folder, fileName, contentType string, content io.Reader, size int64) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	now := time.Now().UTC()
	key := fmt.Sprintf("%s/%d/%02d/%s%s", folder, now.Year(), now.Month(), uuid.New().String(), ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, content, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to upload object")
	}

	return key, s.publicURL + "/" + key, nil
}
