package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNewConfig(t *testing.T) {
	path := writeConfig(t, `
store_base_url: https://records.example.com
store_project_id: proj-42
store_api_key: public-key
jwt_key: signing-key
accounts:
  - login: admin
    password_hash: "$2a$10$abcdefghijklmnopqrstuv"
    role: ADMIN
allowed_origins:
  - http://localhost:3000
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://records.example.com", cfg.StoreBaseURL)
	assert.Equal(t, "proj-42", cfg.StoreProjectID)
	assert.Equal(t, "public-key", cfg.StoreAPIKey)
	require.Len(t, cfg.Accounts, 1)
	assert.Equal(t, "admin", cfg.Accounts[0].Login)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestNewConfigMissingStoreCredentials(t *testing.T) {
	path := writeConfig(t, `
store_base_url: https://records.example.com
jwt_key: signing-key
`)

	_, err := NewConfig(path)
	assert.Error(t, err)
}

func TestNewConfigMissingJWTKey(t *testing.T) {
	path := writeConfig(t, `
store_base_url: https://records.example.com
store_project_id: proj-42
store_api_key: public-key
`)

	_, err := NewConfig(path)
	assert.Error(t, err)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
