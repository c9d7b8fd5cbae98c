package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	origURL, origTimeout, origRate, origCategory := APIURL, Timeout, RequestsPerSecond, DefaultCategory

	viper.Reset()
	t.Cleanup(func() {
		APIURL, Timeout, RequestsPerSecond, DefaultCategory = origURL, origTimeout, origRate, origCategory
		viper.Reset()
	})
}

func TestInitConfigDefaults(t *testing.T) {
	resetConfig(t)

	InitConfig()

	assert.Equal(t, "http://localhost:8000", APIURL)
	assert.Equal(t, time.Duration(0), Timeout)
	assert.InDelta(t, 2.0, RequestsPerSecond, 0.0001)
	assert.Equal(t, "", DefaultCategory)
}

func TestInitConfigReadsViper(t *testing.T) {
	resetConfig(t)

	viper.Set(KeyAPIURL, "http://books.internal:9000")
	viper.Set(KeyAPITimeout, "15s")
	viper.Set(KeyAPIRate, 0.5)
	viper.Set(KeySearchCategory, "science")

	InitConfig()

	assert.Equal(t, "http://books.internal:9000", APIURL)
	assert.Equal(t, 15*time.Second, Timeout)
	assert.InDelta(t, 0.5, RequestsPerSecond, 0.0001)
	assert.Equal(t, "science", DefaultCategory)
}

func TestSetters(t *testing.T) {
	resetConfig(t)
	InitConfig()

	SetAPIURL("http://other:1234")
	SetTimeout(3 * time.Second)
	SetRequestsPerSecond(0)

	assert.Equal(t, "http://other:1234", APIURL)
	assert.Equal(t, "http://other:1234", viper.GetString(KeyAPIURL))
	assert.Equal(t, 3*time.Second, Timeout)
	assert.Equal(t, 3*time.Second, viper.GetDuration(KeyAPITimeout))
	assert.Zero(t, RequestsPerSecond)

	SetAPIURL("")
	assert.Equal(t, "http://other:1234", APIURL, "empty url must not clear the setting")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BOOKAURA_TEST_VALUE=from-file\n"), 0o644))

	t.Setenv("BOOKAURA_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("BOOKAURA_TEST_VALUE"))

	LoadEnvFiles(filepath.Join(dir, "missing.env"), envFile)

	assert.Equal(t, "from-file", os.Getenv("BOOKAURA_TEST_VALUE"))
}

func TestLoadEnvFilesKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BOOKAURA_TEST_VALUE=from-file\n"), 0o644))

	t.Setenv("BOOKAURA_TEST_VALUE", "from-env")

	LoadEnvFiles(envFile)

	assert.Equal(t, "from-env", os.Getenv("BOOKAURA_TEST_VALUE"))
}
