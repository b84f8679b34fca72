package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "timetrack")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "timetrack")
}

func TestLoadConfig(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("TIMETRACK_PORT", "9090")
	t.Setenv("REPORT_SAMPLE_MONTHLY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.True(t, cfg.SampleMonthlyReport)
}

func TestLoadConfigDefaults(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("TIMETRACK_PORT", "")
	t.Setenv("REPORT_SAMPLE_MONTHLY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.AppPort)
	assert.False(t, cfg.SampleMonthlyReport)
}

func TestLoadConfigIncompleteDatabase(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_NAME", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigInvalidSampleFlag(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("REPORT_SAMPLE_MONTHLY", "definitely")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadSecretsFile(t *testing.T) {
	t.Setenv("TT_SECRET_EXISTING", "keep-me")

	path := filepath.Join(t.TempDir(), "secrets.json")
	payload := `{
		"tt_secret_db_password": "hunter2",
		"tt_secret_existing": "overwritten",
		"tt_secret_nested": {"a": 1}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	loaded, err := LoadSecretsFile(path)
	require.NoError(t, err)

	// Keys are uppercased on the way into the environment.
	assert.Equal(t, "hunter2", os.Getenv("TT_SECRET_DB_PASSWORD"))
	// Pre-existing environment variables win.
	assert.Equal(t, "keep-me", os.Getenv("TT_SECRET_EXISTING"))
	assert.NotContains(t, loaded, "TT_SECRET_EXISTING")
	// Nested values arrive JSON-encoded.
	assert.JSONEq(t, `{"a":1}`, os.Getenv("TT_SECRET_NESTED"))

	t.Cleanup(func() {
		os.Unsetenv("TT_SECRET_DB_PASSWORD")
		os.Unsetenv("TT_SECRET_NESTED")
	})
}

func TestLoadSecretsFileEmptyPath(t *testing.T) {
	loaded, err := LoadSecretsFile("")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadSecretsFileNotJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := LoadSecretsFile(path)
	assert.Error(t, err)
}
