// Package config loads server configuration from the environment and builds
// the repository and storage backends the server runs against.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	memoryrepo "github.com/tendant/simple-blog/pkg/simpleblog/repo/memory"
	"github.com/tendant/simple-blog/pkg/simpleblog/repo/mongodb"
	"github.com/tendant/simple-blog/pkg/simpleblog/storage"
	memorystorage "github.com/tendant/simple-blog/pkg/simpleblog/storage/memory"
	s3storage "github.com/tendant/simple-blog/pkg/simpleblog/storage/s3"
)

// ServerConfig represents server configuration for the simple-blog service.
//
// DATABASE_URL selects the post store: "memory" (default) keeps posts
// in-process, a "mongodb://" or "mongodb+srv://" URL connects to MongoDB.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"` // development, production, testing

	DatabaseURL     string        `env:"DATABASE_URL" env-default:"memory"`
	MongoDatabase   string        `env:"MONGO_DATABASE" env-default:"blog"`
	MongoCollection string        `env:"MONGO_COLLECTION" env-default:"posts"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" env-default:"5s"`

	Site    SiteConfig
	Uploads UploadsConfig
}

// SiteConfig holds the site identity used by the metadata resolver
type SiteConfig struct {
	Name    string `env:"SITE_NAME" env-default:"Your Blog Name"`
	BaseURL string `env:"SITE_BASE_URL" env-default:"http://localhost:8080"`
}

// UploadsConfig selects the image blob backend
type UploadsConfig struct {
	Backend string `env:"UPLOADS_BACKEND" env-default:"memory"` // "memory", "s3"
	S3      S3Config
}

// S3Config holds the S3-compatible backend settings
type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Bucket          string `env:"AWS_S3_BUCKET" env-default:"blog-images"`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	URLPrefix       string `env:"AWS_S3_URL_PREFIX"`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

// Load reads configuration from the environment and validates it
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabaseType reports the store kind selected by DATABASE_URL: "memory" or
// "mongodb".
func (c *ServerConfig) DatabaseType() string {
	if c.DatabaseURL == "" || c.DatabaseURL == "memory" {
		return "memory"
	}
	if strings.HasPrefix(c.DatabaseURL, "mongodb://") || strings.HasPrefix(c.DatabaseURL, "mongodb+srv://") {
		return "mongodb"
	}
	return ""
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.DatabaseType() == "" {
		return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'mongodb://...')", c.DatabaseURL)
	}
	if c.Uploads.Backend != "memory" && c.Uploads.Backend != "s3" {
		return fmt.Errorf("unsupported uploads backend: %s (use 'memory' or 's3')", c.Uploads.Backend)
	}
	return nil
}

// BuildRepository creates the post repository selected by the configuration.
// The returned close function releases the store connection and is a no-op
// for the in-memory store.
func (c *ServerConfig) BuildRepository(ctx context.Context) (simpleblog.Repository, func(context.Context) error, error) {
	switch c.DatabaseType() {
	case "memory":
		noop := func(context.Context) error { return nil }
		return memoryrepo.New(), noop, nil
	case "mongodb":
		repo, err := mongodb.New(ctx, mongodb.Config{
			URL:              c.DatabaseURL,
			Database:         c.MongoDatabase,
			Collection:       c.MongoCollection,
			OperationTimeout: c.StoreTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database type for URL: %s", c.DatabaseURL)
	}
}

// BuildImageStore creates the blob backend for image uploads
func (c *ServerConfig) BuildImageStore() (storage.Backend, error) {
	switch c.Uploads.Backend {
	case "memory":
		return memorystorage.New(), nil
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.Uploads.S3.Region,
			Bucket:                 c.Uploads.S3.Bucket,
			AccessKeyID:            c.Uploads.S3.AccessKeyID,
			SecretAccessKey:        c.Uploads.S3.SecretAccessKey,
			Endpoint:               c.Uploads.S3.Endpoint,
			UsePathStyle:           c.Uploads.S3.UsePathStyle,
			URLPrefix:              c.Uploads.S3.URLPrefix,
			CreateBucketIfNotExist: c.Uploads.S3.CreateBucket,
		})
	default:
		return nil, fmt.Errorf("unsupported uploads backend: %s", c.Uploads.Backend)
	}
}
