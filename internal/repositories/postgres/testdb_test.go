package postgres

import (
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testSchema = []string{`CREATE TABLE applications (
	id TEXT PRIMARY KEY,
	first_name TEXT, last_name TEXT, email TEXT, phone TEXT,
	date_of_birth TEXT, address TEXT, program_interest TEXT,
	education_background TEXT, motivation_statement TEXT,
	emergency_contact_name TEXT, emergency_contact_phone TEXT,
	emergency_contact_relationship TEXT,
	status TEXT,
	submitted_at DATETIME, created_at DATETIME, updated_at DATETIME
)`,
	`CREATE TABLE application_files (
	id TEXT PRIMARY KEY,
	application_id TEXT REFERENCES applications(id),
	file_type TEXT, file_path TEXT, file_name TEXT, file_size INTEGER,
	file_url TEXT,
	authenticity_score REAL,
	authenticity_flags TEXT,
	requires_review BOOLEAN,
	created_at DATETIME, updated_at DATETIME
)`,
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "admissions.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}
