package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/admissions/internal/cache"
	"github.com/yoockh/admissions/internal/storage"
	"github.com/yoockh/admissions/internal/utils"
)

const DefaultSignedURLExpiry = 3600 * time.Second

type URLService interface {
	// Resolve returns a public URL for public buckets and a signed URL
	// valid for expiresIn (DefaultSignedURLExpiry when <= 0) otherwise.
	Resolve(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error)
}

type urlService struct {
	signer storage.Signer
	cache  cache.Cache
	log    *logrus.Logger
}

// NewURLService accepts a nil cache; every private URL is then signed on demand.
func NewURLService(signer storage.Signer, c cache.Cache, log *logrus.Logger) URLService {
	if log == nil {
		log = logrus.New()
	}
	return &urlService{signer: signer, cache: c, log: log}
}

func (s *urlService) Resolve(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error) {
	const op = "URLService.Resolve"

	if bucket == "" || path == "" {
		return "", utils.Validation(op, "bucket and path are required")
	}
	if s.signer == nil {
		return "", utils.E(utils.CodeUnavailable, op, "object storage is not configured", nil)
	}

	if storage.IsPublic(bucket) {
		return s.signer.PublicURL(bucket, path), nil
	}

	if expiresIn <= 0 {
		expiresIn = DefaultSignedURLExpiry
	}

	key := cache.SignedURLKey(bucket, path, expiresIn)
	if s.cache != nil {
		u, hit, err := s.cache.GetString(ctx, key)
		if err != nil {
			s.log.WithError(err).WithField("bucket", bucket).Warn("signed url cache read failed")
		} else if hit {
			return u, nil
		}
	}

	u, err := s.signer.SignedGetURL(ctx, bucket, path, expiresIn)
	if err != nil {
		return "", utils.Persistence(op, "failed to create signed url", err)
	}

	// a cached URL always has at least half its validity left when served
	if s.cache != nil {
		if err := s.cache.SetString(ctx, key, u, expiresIn/2); err != nil {
			s.log.WithError(err).WithField("bucket", bucket).Warn("signed url cache write failed")
		}
	}
	return u, nil
}
