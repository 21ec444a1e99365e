package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBDriver      string // postgres | sqlite
	PostgresURI   string
	SQLiteDSN     string
	DBAutoMigrate bool

	RedisAddr string // optional; enables the signed URL cache
	MongoURI  string // optional; enables the intake audit trail
	MongoDB   string

	GCSCredentialsFile   string
	StoragePublicBaseURL string
	UploadBucket         string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:     envOr("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: os.Getenv("LOG_LEVEL"),

		DBDriver:      strings.ToLower(envOr("DB_DRIVER", "postgres")),
		PostgresURI:   firstEnv("POSTGRES_URI", "DATABASE_URL"),
		SQLiteDSN:     envOr("SQLITE_DSN", "admissions.sqlite"),
		DBAutoMigrate: envBool("DB_AUTO_MIGRATE"),

		RedisAddr: firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   envOr("MONGO_DB", "admissions"),

		GCSCredentialsFile:   os.Getenv("GCS_CREDENTIALS_FILE"),
		StoragePublicBaseURL: os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		UploadBucket:         envOr("UPLOAD_BUCKET", "application-documents"),

		JWTSecret:   os.Getenv("SUPABASE_JWT_SECRET"),
		JWTIssuer:   os.Getenv("SUPABASE_JWT_ISSUER"),
		JWTAudience: os.Getenv("SUPABASE_JWT_AUDIENCE"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case "postgres":
		if c.PostgresURI == "" {
			errs = append(errs, errors.New("POSTGRES_URI (or DATABASE_URL) environment variable is not set"))
		}
	case "sqlite":
		if c.SQLiteDSN == "" {
			errs = append(errs, errors.New("SQLITE_DSN environment variable is empty"))
		}
	default:
		errs = append(errs, errors.New("DB_DRIVER must be postgres or sqlite, got "+strconv.Quote(c.DBDriver)))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("SUPABASE_JWT_SECRET environment variable is not set"))
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return b
}
