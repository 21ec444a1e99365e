package storage

import (
	"context"
	"io"
	"time"
)

type Uploader interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, r io.Reader) (storedPath string, err error)
}

// Signer hands out URLs for stored objects. PublicURL never fails; it is
// only meaningful for buckets whose objects are world-readable.
type Signer interface {
	PublicURL(bucket, objectName string) string
	SignedGetURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error)
}
