package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/whatisfaker/eol"
	"gopkg.in/yaml.v3"
)

// Config holds defaults shared by the eol commands.
type Config struct {
	Newline     string        `yaml:"newline"`
	Encoding    string        `yaml:"encoding"`
	LogLevel    string        `yaml:"log_level"`
	BufferSize  int           `yaml:"buffer_size"`
	Listen      string        `yaml:"listen"`
	Remote      string        `yaml:"remote"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
	MaxBodySize int64         `yaml:"max_body_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Newline:     "lf",
		LogLevel:    "info",
		BufferSize:  4096,
		Listen:      ":7456",
		ReadTimeout: 30 * time.Second,
		MaxBodySize: 64 << 20,
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrap(err, "invalid config")
	}
	if err := ensureEOF(dec); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	cfg.Newline = strings.TrimSpace(cfg.Newline)
	cfg.Encoding = strings.TrimSpace(cfg.Encoding)
	cfg.Remote = strings.TrimSpace(cfg.Remote)
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later at construction.
func (c Config) Validate() error {
	if _, err := eol.ParseLineEnding(c.Newline); err != nil {
		return errors.Wrap(err, "invalid newline")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log_level: %s", c.LogLevel)
	}
	if c.BufferSize <= 0 {
		return errors.Errorf("invalid buffer_size: %d", c.BufferSize)
	}
	return nil
}

func ensureEOF(dec *yaml.Decoder) error {
	var extra interface{}
	if err := dec.Decode(&extra); err == nil {
		return errors.New("multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
