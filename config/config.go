// Package config loads the optional YAML file holding default option
// values for the command line client.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the
// location of the config file.
const EnvConfigPath = "WEBREQ_CONFIG"

// Config holds defaults. Pointer fields distinguish "unset" from false.
type Config struct {
	Timeout  string            `yaml:"timeout"`
	Follow   *bool             `yaml:"follow"`
	Verify   *bool             `yaml:"verify"`
	HTTP1    *bool             `yaml:"http1"`
	Encoding string            `yaml:"encoding"`
	LogLevel string            `yaml:"log_level"`
	Headers  map[string]string `yaml:"headers"`
}

// Default returns the built-in defaults used when no file exists.
func Default() *Config {
	return &Config{
		Timeout:  "30s",
		LogLevel: "warning",
	}
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

func (c *Config) GetFollow() bool {
	return getBool(c.Follow, false)
}

func (c *Config) GetVerify() bool {
	return getBool(c.Verify, true)
}

func (c *Config) GetHTTP1() bool {
	return getBool(c.HTTP1, false)
}

// DefaultPath returns $WEBREQ_CONFIG, or config.yaml under the user config
// directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating user config directory")
	}
	return filepath.Join(dir, "webreq", "config.yaml"), nil
}

// Load reads the file at path over the built-in defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the config file from DefaultPath.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}
