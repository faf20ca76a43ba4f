package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/pkg/config"
)

// TranscriptStore keeps uploaded transcript files in a MinIO bucket
type TranscriptStore struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewTranscriptStore creates a MinIO client and makes sure the bucket exists
func NewTranscriptStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*TranscriptStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &TranscriptStore{
		client: client,
		bucket: cfg.BucketName,
		logger: logger,
	}
	if err := store.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return store, nil
}

// ensureBucket creates the bucket when missing. Transcripts stay private.
func (s *TranscriptStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	s.logger.Info("Transcript bucket created", zap.String("bucket", s.bucket))
	return nil
}

// UploadTranscript stores a transcript file and returns its bucket location
func (s *TranscriptStore) UploadTranscript(ctx context.Context, objectName string, r io.Reader, size int64) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript: %w", err)
	}

	s.logger.Debug("Transcript stored",
		zap.String("bucket", info.Bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)
	return s.bucket + "/" + objectName, nil
}
