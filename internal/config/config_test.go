package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, DriverDynamo, cfg.StorageDriver)
	assert.Equal(t, "media/", cfg.MediaPrefix)
	assert.Empty(t, cfg.LeadsTopicARN)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BLOG_TABLE_NAME", "blog-prod")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/blog")
	t.Setenv("MEDIA_BUCKET", "blog-media")
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com")
	t.Setenv("LEADS_TOPIC_ARN", "arn:aws:sns:eu-west-1:1:leads")
	t.Setenv("FRONTEND_ORIGIN", "https://blog.example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "blog-prod", cfg.TableName)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://u:p@localhost:5432/blog", cfg.DatabaseDSN)
	assert.Equal(t, "blog-media", cfg.MediaBucket)
	assert.Equal(t, "https://cdn.example.com", cfg.MediaBaseURL)
	assert.Equal(t, "arn:aws:sns:eu-west-1:1:leads", cfg.LeadsTopicARN)
	assert.Equal(t, "https://blog.example.com", cfg.FrontendOrigin)

	// Untouched fields keep their defaults.
	assert.Equal(t, "media/", cfg.MediaPrefix)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins())

	cfg.FrontendOrigin = "https://blog.example.com"
	assert.Equal(t, []string{"http://localhost:5173", "https://blog.example.com"}, cfg.AllowedOrigins())
}
