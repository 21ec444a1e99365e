package services

import (
	"context"
	"io"
	"time"

	"github.com/yoockh/admissions/internal/models"
	"github.com/yoockh/admissions/internal/utils"
)

var fixedNow = time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeAppRepo struct {
	rows    []*models.Application
	listed  models.ApplicationStatus
	limit   int
	err     error
	inserts int
}

func (f *fakeAppRepo) Insert(_ context.Context, a *models.Application) error {
	f.inserts++
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id string) (*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeAppRepo) ListRecent(_ context.Context, status models.ApplicationStatus, limit int) ([]models.Application, error) {
	f.listed, f.limit = status, limit
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Application{}
	for _, r := range f.rows {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeFileRepo struct {
	rows    []*models.ApplicationFile
	list    []models.ApplicationFile
	limit   int
	err     error
	inserts int
}

func (f *fakeFileRepo) Insert(_ context.Context, r *models.ApplicationFile) error {
	f.inserts++
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, r)
	return nil
}

func (f *fakeFileRepo) ListByApplication(_ context.Context, _ string) ([]models.ApplicationFile, error) {
	return f.list, f.err
}

func (f *fakeFileRepo) ListRequiringReview(_ context.Context, limit int) ([]models.ApplicationFile, error) {
	f.limit = limit
	return f.list, f.err
}

type fakeAudit struct {
	events []*models.IntakeEvent
}

func (f *fakeAudit) Record(_ context.Context, e *models.IntakeEvent) { f.events = append(f.events, e) }

func (f *fakeAudit) History(_ context.Context, _ string, _ int64) ([]models.IntakeEvent, error) {
	return nil, nil
}

type fakeEventRepo struct {
	appended []*models.IntakeEvent
	list     []models.IntakeEvent
	err      error
}

func (f *fakeEventRepo) Append(_ context.Context, e *models.IntakeEvent) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, e)
	return nil
}

func (f *fakeEventRepo) ListByApplication(_ context.Context, _ string, _ int64) ([]models.IntakeEvent, error) {
	return f.list, f.err
}

type signCall struct {
	bucket, path string
	ttl          time.Duration
}

type fakeSigner struct {
	signed     []signCall
	publicHits int
	err        error
}

func (f *fakeSigner) PublicURL(bucket, objectName string) string {
	f.publicHits++
	return "https://storage.example.com/" + bucket + "/" + objectName
}

func (f *fakeSigner) SignedGetURL(_ context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	f.signed = append(f.signed, signCall{bucket, objectName, ttl})
	if f.err != nil {
		return "", f.err
	}
	return "https://storage.example.com/" + bucket + "/" + objectName + "?X-Goog-Expires=" + ttl.String(), nil
}

type fakeCache struct {
	data    map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) GetString(_ context.Context, key string) (string, bool, error) {
	if f.readErr != nil {
		return "", false, f.readErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) SetString(_ context.Context, key, val string, ttl time.Duration) error {
	f.data[key] = val
	f.ttls[key] = ttl
	return nil
}

type fakeUploader struct {
	bucket, object, contentType string
	body                        []byte
	err                         error
}

func (f *fakeUploader) Upload(_ context.Context, bucket, objectName, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.bucket, f.object, f.contentType, f.body = bucket, objectName, contentType, b
	return objectName, nil
}
