package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "CATALOG_SOURCE", "GEMINI_API_KEY", "UPLOAD_MAX_FILE_SIZE", "ANALYSIS_VIDEO_CAP"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, CatalogSourceEmbedded, cfg.Catalog.Source)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 3, cfg.Analysis.VideoCap)
	assert.Empty(t, cfg.Gemini.APIKey)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "2048")
	t.Setenv("ANALYSIS_VIDEO_CAP", "5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, 5, cfg.Analysis.VideoCap)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "lots")
	t.Setenv("ANALYSIS_VIDEO_CAP", "three")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 3, cfg.Analysis.VideoCap)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown catalog source", mutate: func(c *Config) { c.Catalog.Source = "redis" }, wantErr: true},
		{name: "zero upload size", mutate: func(c *Config) { c.Upload.MaxFileSize = 0 }, wantErr: true},
		{name: "negative video cap", mutate: func(c *Config) { c.Analysis.VideoCap = -1 }, wantErr: true},
		{name: "zero video cap", mutate: func(c *Config) { c.Analysis.VideoCap = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Catalog:  CatalogConfig{Source: CatalogSourceEmbedded},
				Upload:   UploadConfig{MaxFileSize: 1024},
				Analysis: AnalysisConfig{VideoCap: 3},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n",
	}}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
