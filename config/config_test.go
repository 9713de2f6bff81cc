package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_TYPE", "MONGODB_URI", "MONGO_URL", "MONGO_DB", "POSTGRES_URL",
		"MIGRATIONS_PATH", "CORS_ORIGIN", "JWT_SECRET", "TOKEN_TTL", "STORAGE_TYPE",
		"IMAGES_DIR", "MAX_IMAGE_SIZE", "PDF_DIR", "LOG_LEVEL", "R2_ACCOUNT_ID",
		"R2_BUCKET", "R2_PUBLIC_URL", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "missing.yaml")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DBTypeMongo, cfg.DBType)
	assert.Equal(t, "jobportal", cfg.MongoDB)
	assert.Equal(t, "http://localhost:3001", cfg.CORSOrigin)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, StorageLocal, cfg.StorageType)
	assert.Equal(t, int64(5<<20), cfg.MaxImageSize)
}

func TestLoadConfigFileThenEnvOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "app.yaml")
	content := `
port: "9000"
db_type: postgres
postgres_url: postgres://file
jwt_secret: from-file
token_ttl: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9100")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, DBTypePostgres, cfg.DBType)
	assert.Equal(t, "postgres://file", cfg.PostgresURL)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "missing.yaml")
	t.Setenv("TOKEN_TTL", "forever")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TOKEN_TTL")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			DBType:       DBTypeMongo,
			MongoURL:     "mongodb://x",
			StorageType:  StorageLocal,
			JWTSecret:    "s",
			MaxImageSize: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown db", mutate: func(c *Config) { c.DBType = "sqlite" }, wantErr: "not supported"},
		{name: "postgres without url", mutate: func(c *Config) { c.DBType = DBTypePostgres }, wantErr: "POSTGRES_URL"},
		{name: "mongo without url", mutate: func(c *Config) { c.MongoURL = "" }, wantErr: "MONGO_URL"},
		{name: "r2 without bucket", mutate: func(c *Config) { c.StorageType = StorageR2 }, wantErr: "R2"},
		{name: "unknown storage", mutate: func(c *Config) { c.StorageType = "ftp" }, wantErr: "STORAGE_TYPE"},
		{name: "no secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
