package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/yoockh/admissions/internal/models"
)

func newFile(id, appID string, score float64, flags []string, at time.Time) *models.ApplicationFile {
	return &models.ApplicationFile{
		ID:                id,
		ApplicationID:     appID,
		FileType:          models.FileTypeNRCPhoto,
		FilePath:          "applications/" + appID + "/" + id + ".jpg",
		FileName:          id + ".jpg",
		FileSize:          2048,
		AuthenticityScore: score,
		AuthenticityFlags: pq.StringArray(flags),
		RequiresReview:    models.RequiresReview(score, flags),
		CreatedAt:         at,
		UpdatedAt:         at,
	}
}

func TestApplicationFileRepoListByApplication(t *testing.T) {
	db := setupDB(t)
	apps := NewApplicationRepo(db)
	repo := NewApplicationFileRepo(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := apps.Insert(ctx, newApplication("a-1", models.StatusPending, base)); err != nil {
		t.Fatalf("insert application: %v", err)
	}
	for i, id := range []string{"f-1", "f-2", "f-3"} {
		if err := repo.Insert(ctx, newFile(id, "a-1", 88, []string{}, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	rows, err := repo.ListByApplication(ctx, "a-1")
	if err != nil {
		t.Fatalf("ListByApplication() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByApplication() len = %d", len(rows))
	}
	if rows[0].ID != "f-3" || rows[1].ID != "f-2" || rows[2].ID != "f-1" {
		t.Fatalf("ListByApplication() not newest first: %s %s %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestApplicationFileRepoListByApplicationEmpty(t *testing.T) {
	repo := NewApplicationFileRepo(setupDB(t))

	rows, err := repo.ListByApplication(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ListByApplication() error = %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("ListByApplication() = %#v, want empty non-nil slice", rows)
	}
}

func TestApplicationFileRepoFlagsRoundTrip(t *testing.T) {
	db := setupDB(t)
	apps := NewApplicationRepo(db)
	repo := NewApplicationFileRepo(db)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := apps.Insert(ctx, newApplication("a-1", models.StatusPending, at)); err != nil {
		t.Fatalf("insert application: %v", err)
	}
	if err := repo.Insert(ctx, newFile("f-1", "a-1", 90, []string{"blurred_text", "edited"}, at)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	rows, err := repo.ListByApplication(ctx, "a-1")
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListByApplication() = %v, %v", rows, err)
	}
	got := rows[0]
	if len(got.AuthenticityFlags) != 2 || got.AuthenticityFlags[0] != "blurred_text" || got.AuthenticityFlags[1] != "edited" {
		t.Fatalf("AuthenticityFlags = %v", got.AuthenticityFlags)
	}
	if !got.RequiresReview {
		t.Fatalf("RequiresReview = false, want true")
	}
}

func TestApplicationFileRepoListRequiringReview(t *testing.T) {
	db := setupDB(t)
	apps := NewApplicationRepo(db)
	repo := NewApplicationFileRepo(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := apps.Insert(ctx, newApplication("a-1", models.StatusPending, base)); err != nil {
		t.Fatalf("insert application: %v", err)
	}
	files := []*models.ApplicationFile{
		newFile("clean", "a-1", 95, []string{}, base),
		newFile("low", "a-1", 40, []string{}, base.Add(time.Minute)),
		newFile("flagged", "a-1", 99, []string{"blurred_text"}, base.Add(2*time.Minute)),
	}
	for _, f := range files {
		if err := repo.Insert(ctx, f); err != nil {
			t.Fatalf("Insert(%s) error = %v", f.ID, err)
		}
	}

	rows, err := repo.ListRequiringReview(ctx, 10)
	if err != nil {
		t.Fatalf("ListRequiringReview() error = %v", err)
	}
	if len(rows) != 2 || rows[0].ID != "flagged" || rows[1].ID != "low" {
		t.Fatalf("ListRequiringReview() = %v", rows)
	}
}
