package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) Config {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))

	v := viper.New()
	require.NoError(t, Bind(v, fs))

	cfg, err := Load(v)
	require.NoError(t, err)
	return cfg
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wlbroker.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := load(t)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
seat = "file-seat"
max_mime_types = 8
log_level = "debug"
flush_interval = "5ms"
`)

	cfg := load(t, "--config", path)
	assert.Equal(t, "file-seat", cfg.Seat)
	assert.Equal(t, 8, cfg.MaxMimeTypes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Millisecond, cfg.FlushInterval.Duration)

	t.Setenv("WLBROKER_MAX_MIME_TYPES", "16")
	t.Setenv("WLBROKER_SEAT", "env-seat")
	cfg = load(t, "--config", path)
	assert.Equal(t, 16, cfg.MaxMimeTypes)
	assert.Equal(t, "env-seat", cfg.Seat)

	cfg = load(t, "--config", path, "--seat", "flag-seat", "--focus-new-surfaces")
	assert.Equal(t, "flag-seat", cfg.Seat)
	assert.True(t, cfg.FocusNewSurfaces)
	assert.Equal(t, 16, cfg.MaxMimeTypes)
}

func TestMissingConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.toml")}))

	assert.Error(t, Bind(viper.New(), fs))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Seat = ""
	cfg.MaxMimeTypes = -1
	cfg.FlushInterval = Duration{}
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat name")
	assert.Contains(t, err.Error(), "max_mime_types")
	assert.Contains(t, err.Error(), "flush_interval")
	assert.Contains(t, err.Error(), "log_format")
}

func TestWriteTOML(t *testing.T) {
	want := Default()
	want.Socket = "wayland-9"

	var buf bytes.Buffer
	require.NoError(t, want.WriteTOML(&buf))
	assert.Contains(t, buf.String(), `flush_interval = "16.666666ms"`)

	var got Config
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
