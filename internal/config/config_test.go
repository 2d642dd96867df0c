package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "./pages", cfg.Server.PagesDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Props.SigningKey)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hxui.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  addr: "0.0.0.0:9000"
  watch: true
log:
  level: debug
  format: json
props:
  signing_key: "a-long-enough-signing-key"
`), 0o600))
	t.Setenv("HXUI_SERVER_PAGES_DIR", "/srv/pages")

	cfg, err := Load(New(file))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, "/srv/pages", cfg.Server.PagesDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "a-long-enough-signing-key", cfg.Props.SigningKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HXUI_LOG_LEVEL", "chatty")
	t.Setenv("HXUI_PROPS_SIGNING_KEY", "short")

	_, err := Load(New(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level failed validation for tag 'oneof'")
	assert.Contains(t, err.Error(), "props.signingkey failed validation for tag 'min'")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
