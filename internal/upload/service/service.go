package uploadservice

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/pinfinds-backend/internal/upload"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstorage
type Storage interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Config struct {
	Bucket    string
	PublicURL string
}

type service struct {
	storage Storage
	cfg     Config
	logger  *zap.Logger
}

func New(storage Storage, cfg Config, logger *zap.Logger) *service {
	return &service{
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}
}

// UploadImage stores the file under a random name and returns the public
// URL it can be fetched from.
func (s *service) UploadImage(ctx context.Context, file upload.File) (string, error) {
	ext, err := file.Extension()
	if err != nil {
		return "", err
	}

	exists, err := s.storage.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return "", err
	}

	if !exists {
		if err := s.storage.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return "", err
		}
	}

	objectName := uuid.NewString() + ext

	ui, err := s.storage.PutObject(
		ctx,
		s.cfg.Bucket,
		objectName,
		file.Reader,
		file.Size,
		minio.PutObjectOptions{ContentType: file.ContentType},
	)
	if err != nil {
		s.logger.Error("error uploading object", zap.Error(err))
		return "", err
	}

	s.logger.Info("uploaded info",
		zap.String("bucket", ui.Bucket),
		zap.String("key", ui.Key),
		zap.String("etag", ui.ETag),
		zap.Int64("size", ui.Size),
	)

	return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + s.cfg.Bucket + "/" + objectName, nil
}
