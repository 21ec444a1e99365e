package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const defaultPublicBaseURL = "https://storage.googleapis.com"

type GCSOptions struct {
	CredentialsFile string
	// PublicBaseURL replaces https://storage.googleapis.com, ex: a CDN host.
	PublicBaseURL string
}

type GCSStore struct {
	client        *gcs.Client
	publicBaseURL string
}

func NewGCSStore(ctx context.Context, opts GCSOptions) (*GCSStore, error) {
	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	c, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(opts.PublicBaseURL, "/")
	if base == "" {
		base = defaultPublicBaseURL
	}
	return &GCSStore{client: c, publicBaseURL: base}, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }

func (s *GCSStore) Upload(ctx context.Context, bucket, objectName, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	// object key, not a URL; URLs are resolved per request
	return objectName, nil
}

func (s *GCSStore) PublicURL(bucket, objectName string) string {
	return publicURL(s.publicBaseURL, bucket, objectName)
}

func (s *GCSStore) SignedGetURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.client.Bucket(bucket).SignedURL(objectName, &gcs.SignedURLOptions{
		Method:  "GET",
		Scheme:  gcs.SigningSchemeV4,
		Expires: time.Now().Add(ttl),
	})
}

func publicURL(base, bucket, objectName string) string {
	segs := strings.Split(strings.TrimLeft(objectName, "/"), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/%s/%s", base, url.PathEscape(bucket), strings.Join(segs, "/"))
}
