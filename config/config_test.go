package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whatisfaker/eol"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eol.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	data := "newline: ' CRLF '\nencoding: shift_jis\nlog_level: debug\nbuffer_size: 16\nread_timeout: 5s\n"
	cfg, err := Load(writeConfig(t, data))
	require.NoError(t, err)
	assert.Equal(t, "CRLF", cfg.Newline)
	assert.Equal(t, "shift_jis", cfg.Encoding)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.BufferSize)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, ":7456", cfg.Listen)
}

func TestLoadInvalidNewline(t *testing.T) {
	_, err := Load(writeConfig(t, "newline: lfcr\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, eol.ErrUnsupportedNewline))
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "unknown field", data: "newlines: lf\n", want: "invalid config"},
		{name: "log level", data: "log_level: loud\n", want: "invalid log_level"},
		{name: "buffer size", data: "buffer_size: 0\n", want: "invalid buffer_size"},
		{name: "two documents", data: "newline: lf\n---\nnewline: cr\n", want: "multiple YAML documents"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
