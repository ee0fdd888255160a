package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"name": "Jane Taxpayer",
		"ssn": "123-45-6789",
		"filing_status": "Single",
		"concurrency": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Jane Taxpayer", cfg.Name)
	assert.Equal(t, "123-45-6789", cfg.SSN)
	assert.Equal(t, "Single", cfg.FilingStatus)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"Defaults are valid", Config{}, ""},
		{"Negative concurrency", Config{Concurrency: -1}, "concurrency"},
		{"Port out of range", Config{Port: 70000}, "port"},
		{"Valid port", Config{Port: 8080}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Name: "Jane Taxpayer", Concurrency: 2}
	defaults := Config{
		Name:         "ignored",
		FilingStatus: "Single",
		APIKey:       "default-key",
		Concurrency:  4,
		Port:         8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "Jane Taxpayer", merged.Name)
	assert.Equal(t, "Single", merged.FilingStatus)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, 8080, merged.Port)
}
