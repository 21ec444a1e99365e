package cache

import (
	"context"
	"strconv"
	"time"
)

type Cache interface {
	GetString(ctx context.Context, key string) (val string, hit bool, err error)
	SetString(ctx context.Context, key, val string, ttl time.Duration) error
}

// SignedURLKey identifies one signed URL; different expiries never share an entry.
func SignedURLKey(bucket, objectName string, ttl time.Duration) string {
	return "signed_url:" + bucket + ":" + strconv.FormatInt(int64(ttl/time.Second), 10) + ":" + objectName
}
