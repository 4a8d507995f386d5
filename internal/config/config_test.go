package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "width: 10\nheight: 12\nseed: 5\ncolor: never\n")
	t.Setenv("MINESWEEPER_HEIGHT", "20")

	cfg, err := Load([]string{"-config", path, "-seed", "9"}, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width, "from file")
	assert.Equal(t, 20, cfg.Height, "env beats file")
	assert.Equal(t, int64(9), cfg.Seed, "flag beats file")
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 0.2, cfg.Density)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "density: 0.15\n")
	t.Setenv("MINESWEEPER_CONFIG", path)

	cfg, err := Load(nil, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 0.15, cfg.Density)
}

func TestLoadDotEnv(t *testing.T) {
	env := writeFile(t, "test.env", "MINESWEEPER_WIDTH=30\nMINESWEEPER_LOG_LEVEL=debug\n")
	t.Cleanup(func() {
		os.Unsetenv("MINESWEEPER_WIDTH")
		os.Unsetenv("MINESWEEPER_LOG_LEVEL")
	})

	cfg, err := Load([]string{"-log-level", "error"}, env)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
		yaml string
	}{
		{name: "colour", args: []string{"-color", "purple"}},
		{name: "density", args: []string{"-density", "1"}},
		{name: "negative width", args: []string{"-width", "-3"}},
		{name: "log level", args: []string{"-log-level", "loud"}},
		{name: "unknown flag", args: []string{"-mines", "3"}},
		{name: "env width", env: map[string]string{"MINESWEEPER_WIDTH": "wide"}},
		{name: "env seed", env: map[string]string{"MINESWEEPER_SEED": "1.5"}},
		{name: "unknown yaml key", yaml: "widht: 10\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			args := tc.args
			if tc.yaml != "" {
				args = append(args, "-config", writeFile(t, "cfg.yaml", tc.yaml))
			}
			_, err := Load(args, noEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestNewLoggerToFile(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(t.TempDir(), "game.log")

	log, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.WithField("round", "abc").Info("mines placed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mines placed")
	assert.Contains(t, string(data), "round=abc")
}
