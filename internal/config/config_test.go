package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "DEBUG", "LOG_FILE", "MCP_HELLO_VERSION"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestParse_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", " WARN ")
	t.Setenv("LOG_FILE", "/tmp/mcphello.log")
	t.Setenv("MCP_HELLO_VERSION", "2.0.0")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
	assert.Equal(t, "/tmp/mcphello.log", cfg.LogFile)
	assert.Equal(t, "2.0.0", cfg.Version)
}

func TestParse_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOG_FILE", "~/logs/mcphello.log")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "mcphello.log"), cfg.LogFile)
}

func TestParse_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "sometimes")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		cfg  Config
		want logrus.Level
	}{
		{Config{LogLevel: "trace"}, logrus.TraceLevel},
		{Config{LogLevel: "debug"}, logrus.DebugLevel},
		{Config{LogLevel: "error"}, logrus.ErrorLevel},
		{Config{LogLevel: "bogus"}, logrus.InfoLevel},
		{Config{Debug: true}, logrus.DebugLevel},
		{Config{LogLevel: "error", Debug: true}, logrus.ErrorLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cfg.Level(), "%+v", tt.cfg)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MCP_HELLO_VERSION=9.9.9\nLOG_LEVEL=debug\n"), 0o644))
	chdir(t, dir)
	t.Cleanup(func() {
		os.Unsetenv("MCP_HELLO_VERSION")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.Version)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
