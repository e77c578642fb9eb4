package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
}

// ObjectInfo is the subset of object metadata the service cares about.
type ObjectInfo struct {
	Bucket       string
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

type implMinIO struct {
	client *minio.Client
	cfg    Config
	mu     sync.RWMutex
	closed bool
}
