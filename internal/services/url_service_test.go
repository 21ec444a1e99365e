package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yoockh/admissions/internal/cache"
	"github.com/yoockh/admissions/internal/utils"
)

func TestResolvePublicBuckets(t *testing.T) {
	for _, bucket := range []string{"assignments", "updates", "documents"} {
		signer := &fakeSigner{}
		u, err := NewURLService(signer, nil, nil).Resolve(context.Background(), bucket, "foo.pdf", 0)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", bucket, err)
		}
		if !strings.Contains(u, "foo.pdf") || strings.Contains(u, "Expires") {
			t.Fatalf("Resolve(%s) = %q", bucket, u)
		}
		if len(signer.signed) != 0 || signer.publicHits != 1 {
			t.Fatalf("public bucket %s was signed", bucket)
		}
	}
}

func TestResolvePrivateBucketSigns(t *testing.T) {
	signer := &fakeSigner{}
	svc := NewURLService(signer, nil, nil)

	u, err := svc.Resolve(context.Background(), "private-scans", "a-1/nrc.jpg", 15*time.Minute)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(signer.signed) != 1 || signer.signed[0].ttl != 15*time.Minute || signer.signed[0].bucket != "private-scans" {
		t.Fatalf("signed calls = %+v", signer.signed)
	}
	if !strings.Contains(u, "Expires=15m0s") {
		t.Fatalf("Resolve() = %q", u)
	}
}

func TestResolveDefaultExpiry(t *testing.T) {
	signer := &fakeSigner{}
	if _, err := NewURLService(signer, nil, nil).Resolve(context.Background(), "private-scans", "x.pdf", 0); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if signer.signed[0].ttl != 3600*time.Second {
		t.Fatalf("ttl = %v, want 3600s", signer.signed[0].ttl)
	}
}

func TestResolveValidation(t *testing.T) {
	svc := NewURLService(&fakeSigner{}, nil, nil)
	for _, tc := range [][2]string{{"", "a.pdf"}, {"documents", ""}, {"", ""}} {
		if _, err := svc.Resolve(context.Background(), tc[0], tc[1], 0); !utils.IsValidation(err) {
			t.Fatalf("Resolve(%q, %q) error = %v", tc[0], tc[1], err)
		}
	}
}

func TestResolveSigningFailure(t *testing.T) {
	cause := errors.New("permission denied")
	_, err := NewURLService(&fakeSigner{err: cause}, nil, nil).Resolve(context.Background(), "private-scans", "x.pdf", 0)
	if !utils.IsPersistence(err) || !errors.Is(err, cause) {
		t.Fatalf("Resolve() error = %v", err)
	}
}

func TestResolveUsesCache(t *testing.T) {
	signer := &fakeSigner{}
	c := newFakeCache()
	svc := NewURLService(signer, c, nil)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "private-scans", "x.pdf", time.Hour)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := svc.Resolve(ctx, "private-scans", "x.pdf", time.Hour)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second || len(signer.signed) != 1 {
		t.Fatalf("expected one signing call, got %d", len(signer.signed))
	}
	if ttl := c.ttls[cache.SignedURLKey("private-scans", "x.pdf", time.Hour)]; ttl != 30*time.Minute {
		t.Fatalf("cache ttl = %v", ttl)
	}

	if _, err := svc.Resolve(ctx, "private-scans", "x.pdf", 2*time.Hour); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(signer.signed) != 2 {
		t.Fatalf("different expiry must sign again")
	}
}

func TestResolveCacheReadFailureFallsBack(t *testing.T) {
	signer := &fakeSigner{}
	c := newFakeCache()
	c.readErr = errors.New("redis: connection pool timeout")

	if _, err := NewURLService(signer, c, nil).Resolve(context.Background(), "private-scans", "x.pdf", 0); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(signer.signed) != 1 {
		t.Fatalf("signed calls = %d", len(signer.signed))
	}
}

func TestResolveWithoutSigner(t *testing.T) {
	_, err := NewURLService(nil, nil, nil).Resolve(context.Background(), "documents", "x.pdf", 0)
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("Resolve() error = %v", err)
	}
}
