package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ImageStorage stores raw gallery image files in a MinIO bucket and hands
// back a public object URL.
type ImageStorage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewImageStorage(cfg *config.MinIOConfig, logger *zap.Logger) (*ImageStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}
	logger.Info("Image storage initialized", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))

	return &ImageStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

func (s *ImageStorage) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := filepath.Ext(fileName)
	objectKey := fmt.Sprintf("images/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		s.logger.Error("Failed to upload object",
			zap.String("bucket", s.bucket),
			zap.String("key", objectKey),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Debug("Uploaded image file",
		zap.String("key", objectKey),
		zap.String("url", fileURL),
		zap.Int("size_bytes", len(data)),
	)
	return fileURL, nil
}
