// Package config loads the settings of the ecmath tool from TOML or YAML
// files. Curve parameters are kept as literal strings in the file and parsed
// when the curve is built.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Curve CurveConfig `toml:"curve" yaml:"curve"`
	Log   LogConfig   `toml:"log" yaml:"log"`

	// Hash names the message digest, see digest.Names.
	Hash string `toml:"hash" yaml:"hash"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Curve: Secp256k1(),
		Log:   LogConfig{Level: logger.DefaultLevel.String()},
		Hash:  digest.SHA512,
	}
}

// Load reads the file at path on top of the defaults. The format is chosen
// by extension: .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate checks the hash name and the log level. Curve literals are
// checked by CurveConfig.Build.
func (c *Config) Validate() error {
	if _, err := digest.Lookup(c.Hash); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := logrusLevel(c.Log.Level); err != nil {
			return err
		}
	}
	return nil
}

// Apply sets the process-wide log level from c.
func (c *Config) Apply() error {
	if c.Log.Level == "" {
		return nil
	}
	return logger.SetLevel(c.Log.Level)
}

// Digester returns the configured digester.
func (c *Config) Digester() (*digest.Digester, error) {
	return digest.Lookup(c.Hash)
}

// Dump writes c as TOML.
func Dump(w io.Writer, c *Config) error {
	return toml.NewEncoder(w).Encode(c)
}
