package tableside

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
api_url: https://api.staging.test/v2
auth_url: https://auth.staging.test/v2
connect_timeout: 5s
read_timeout: 20s
retries: 2
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.staging.test/v2", config.APIURL)
	assert.Equal(t, "https://auth.staging.test/v2", config.AuthURL)
	assert.Equal(t, 5*time.Second, config.ConnectTimeout)
	assert.Equal(t, 20*time.Second, config.ReadTimeout)
	assert.Equal(t, 2, config.Retries)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `retries: 1`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ProductionAPIURL, config.APIURL)
	assert.Equal(t, ProductionAuthURL, config.AuthURL)
	assert.Equal(t, 10*time.Second, config.ConnectTimeout)
	assert.Equal(t, 30*time.Second, config.ReadTimeout)
	assert.Equal(t, 1, config.Retries)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "api_url: [not: closed")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
