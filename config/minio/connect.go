package minio

import (
	"context"
	"fmt"
	"time"

	"helpdesk-srv/config"
	pkgMinio "helpdesk-srv/pkg/minio"
)

const defaultConnectTimeout = 5 * time.Second

// Connect builds the MinIO client and checks the attachment bucket.
// It returns nil, nil when MinIO is not configured.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgMinio.MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := client.HealthCheck(connectCtx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
