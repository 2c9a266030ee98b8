package storage

import (
	"fmt"

	"github.com/artefakt/archive-api/pkg/config"
)

// NewStorage creates an ObjectStorage instance from the application
// configuration
func NewStorage(cfg *config.StorageConfig) (ObjectStorage, error) {
	switch cfg.Backend {
	case "s3":
		return NewS3Storage(&S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			PublicURL: cfg.S3.PublicURL,
		})
	case "filesystem":
		return NewFilesystemStorage(cfg.BaseDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
