package minio

import (
	"net/url"
	"strings"
)

// ParseObjectRef splits an attachment reference into bucket and key.
// Accepted forms: "key", "bucket/key" (when bucket equals defaultBucket)
// and "http(s)://host/bucket/key".
func ParseObjectRef(ref, defaultBucket string) (string, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", ErrInvalidRef
	}

	path := ref
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", "", ErrInvalidRef
		}
		path = u.Path
	}
	path = strings.TrimPrefix(path, "/")

	if rest, ok := strings.CutPrefix(path, defaultBucket+"/"); ok {
		path = rest
	}
	if path == "" || strings.HasSuffix(path, "/") || strings.Contains(path, "..") {
		return "", "", ErrInvalidRef
	}
	return defaultBucket, path, nil
}
