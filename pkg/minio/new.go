package minio

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 50
	maxIdleConnsPerHost = 50
	idleConnTimeout     = 90 * time.Second
)

// MinIO checks attachment objects referenced by chat messages.
type MinIO interface {
	HealthCheck(ctx context.Context) error
	// StatObject resolves ref (object key, bucket/key or object URL) and
	// returns its metadata, or ErrObjectNotFound.
	StatObject(ctx context.Context, ref string) (ObjectInfo, error)
	Close() error
}

func New(cfg Config) (MinIO, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{client: client, cfg: cfg}, nil
}

func validateConfig(cfg *Config) error {
	switch {
	case cfg.Endpoint == "":
		return &InvalidConfigError{Field: "endpoint"}
	case cfg.AccessKey == "":
		return &InvalidConfigError{Field: "access_key"}
	case cfg.SecretKey == "":
		return &InvalidConfigError{Field: "secret_key"}
	case cfg.Bucket == "":
		return &InvalidConfigError{Field: "bucket"}
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += ":9000"
	}
	return nil
}
