package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DBTypeMongo    = "mongo"
	DBTypePostgres = "postgres"

	StorageLocal = "local"
	StorageR2    = "r2"
)

type R2Config struct {
	AccountID       string `yaml:"account_id"`
	Bucket          string `yaml:"bucket"`
	PublicURL       string `yaml:"public_url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type Config struct {
	Port           string        `yaml:"port"`
	DBType         string        `yaml:"db_type"`
	MongoURL       string        `yaml:"mongo_url"`
	MongoDB        string        `yaml:"mongo_db"`
	PostgresURL    string        `yaml:"postgres_url"`
	MigrationsPath string        `yaml:"migrations_path"`
	CORSOrigin     string        `yaml:"cors_origin"`
	JWTSecret      string        `yaml:"jwt_secret"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	StorageType    string        `yaml:"storage_type"`
	ImagesDir      string        `yaml:"images_dir"`
	MaxImageSize   int64         `yaml:"max_image_size"`
	PDFDir         string        `yaml:"pdf_dir"`
	LogLevel       string        `yaml:"log_level"`
	R2             R2Config      `yaml:"r2"`
}

// LoadConfig reads .env, then the optional YAML file at CONFIG_PATH, then
// lets environment variables override whatever the file set.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg := &Config{}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.DBType, "DB_TYPE")
	setString(&c.MongoURL, "MONGODB_URI")
	setString(&c.MongoURL, "MONGO_URL")
	setString(&c.MongoDB, "MONGO_DB")
	setString(&c.PostgresURL, "POSTGRES_URL")
	setString(&c.MigrationsPath, "MIGRATIONS_PATH")
	setString(&c.CORSOrigin, "CORS_ORIGIN")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.StorageType, "STORAGE_TYPE")
	setString(&c.ImagesDir, "IMAGES_DIR")
	setString(&c.PDFDir, "PDF_DIR")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.R2.AccountID, "R2_ACCOUNT_ID")
	setString(&c.R2.Bucket, "R2_BUCKET")
	setString(&c.R2.PublicURL, "R2_PUBLIC_URL")
	setString(&c.R2.AccessKeyID, "R2_ACCESS_KEY_ID")
	setString(&c.R2.SecretAccessKey, "R2_SECRET_ACCESS_KEY")

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("MAX_IMAGE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_IMAGE_SIZE %q: %w", v, err)
		}
		c.MaxImageSize = size
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "3000"
	}
	if c.DBType == "" {
		c.DBType = DBTypeMongo
	}
	if c.MongoDB == "" {
		c.MongoDB = "jobportal"
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "file://db/migrations"
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = "http://localhost:3001"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.StorageType == "" {
		c.StorageType = StorageLocal
	}
	if c.ImagesDir == "" {
		c.ImagesDir = "images"
	}
	if c.MaxImageSize == 0 {
		c.MaxImageSize = 5 << 20
	}
	if c.PDFDir == "" {
		c.PDFDir = "pdfs"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	switch c.DBType {
	case DBTypeMongo:
		if c.MongoURL == "" {
			return errors.New("MONGO_URL is required when DB_TYPE=mongo")
		}
	case DBTypePostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_TYPE=postgres")
		}
	default:
		return fmt.Errorf("DB_TYPE %q not supported", c.DBType)
	}

	switch c.StorageType {
	case StorageLocal:
	case StorageR2:
		if c.R2.Bucket == "" || c.R2.AccountID == "" || c.R2.PublicURL == "" {
			return errors.New("missing required R2 settings (R2_BUCKET, R2_ACCOUNT_ID, R2_PUBLIC_URL)")
		}
	default:
		return fmt.Errorf("STORAGE_TYPE %q not supported", c.StorageType)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.MaxImageSize <= 0 {
		return errors.New("MAX_IMAGE_SIZE must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
