package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	ok, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("minio health check: %w", err)
	}
	if !ok {
		return fmt.Errorf("minio health check: bucket %q does not exist", m.cfg.Bucket)
	}
	return nil
}

func (m *implMinIO) StatObject(ctx context.Context, ref string) (ObjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ObjectInfo{}, ErrClosed
	}

	bucket, key, err := ParseObjectRef(ref, m.cfg.Bucket)
	if err != nil {
		return ObjectInfo{}, err
	}

	info, err := m.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" || minio.ToErrorResponse(err).Code == "NoSuchBucket" {
			return ObjectInfo{}, ErrObjectNotFound
		}
		return ObjectInfo{}, err
	}

	return ObjectInfo{
		Bucket:       bucket,
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}, nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
