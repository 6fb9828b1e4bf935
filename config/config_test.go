package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "webreq-config-")
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	// Setup
	path := writeConfig(t, `
timeout: 5s
follow: true
verify: false
encoding: multipart/form-data
headers:
  X-Api-Key: secret
`)
	defer os.RemoveAll(filepath.Dir(path))

	// Exercise
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if cfg.Timeout != "5s" || cfg.Encoding != "multipart/form-data" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.GetFollow() || cfg.GetVerify() || cfg.GetHTTP1() {
		t.Errorf("unexpected booleans: follow=%v verify=%v http1=%v", cfg.GetFollow(), cfg.GetVerify(), cfg.GetHTTP1())
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("defaults should be kept for missing keys: %s", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.Headers, map[string]string{"X-Api-Key": "secret"}) {
		t.Errorf("unexpected headers: %v", cfg.Headers)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(os.TempDir(), "webreq-does-not-exist", "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.GetFollow() || !cfg.GetVerify() {
		t.Errorf("unexpected default booleans")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "timeout: [unclosed")
	defer os.RemoveAll(filepath.Dir(path))

	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for invalid YAML")
	}
}

func TestDefaultPath_Env(t *testing.T) {
	os.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	defer os.Unsetenv(EnvConfigPath)

	path, err := DefaultPath()
	if err != nil || path != "/tmp/custom.yaml" {
		t.Errorf("unexpected path: path=%s, err=%v", path, err)
	}
}
