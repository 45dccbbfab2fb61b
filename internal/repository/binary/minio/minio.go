package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/config"
	"placid-connector/internal/domain"
)

// ObjectStore fetches binary payloads that execution items reference by
// object key instead of inlining bytes.
type ObjectStore struct {
	client  *minio.Client
	bucket  string
	retries retry.Strategy
	logger  *zlog.Zerolog
}

func NewObjectStore(cfg *config.Config, retries retry.Strategy, logger *zlog.Zerolog) (*ObjectStore, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ObjectStore{
		client:  client,
		bucket:  cfg.Minio.Bucket,
		retries: retries,
		logger:  logger,
	}, nil
}

// FetchObject reads a stored object into a binary payload. The filename is
// the key's base name; the MIME type comes from the object metadata.
func (s *ObjectStore) FetchObject(ctx context.Context, key string) (domain.BinaryPayload, error) {
	var payload domain.BinaryPayload

	err := retry.Do(func() error {
		obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return fmt.Errorf("failed to get object %s: %w", key, err)
		}
		defer obj.Close()

		info, err := obj.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat object %s: %w", key, err)
		}

		data, err := io.ReadAll(obj)
		if err != nil {
			return fmt.Errorf("failed to read object %s: %w", key, err)
		}

		payload = domain.BinaryPayload{
			Data:     data,
			FileName: path.Base(key),
			MimeType: info.ContentType,
		}
		return nil
	}, s.retries)
	if err != nil {
		s.logger.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Msg("Failed to fetch payload object")
		return domain.BinaryPayload{}, err
	}

	return payload, nil
}
