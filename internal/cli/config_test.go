package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dir := filepath.Join(tmp, ".config", "sauna-itta")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "storage: diskv\ndata_dir: /tmp/si-data\nport: 9090\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != "diskv" {
		t.Errorf("storage = %q, want %q", cfg.Storage, "diskv")
	}
	if cfg.DataDir != "/tmp/si-data" {
		t.Errorf("data_dir = %q, want %q", cfg.DataDir, "/tmp/si-data")
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.Storage != "" || cfg.DataDir != "" || cfg.Port != 0 {
		t.Error("expected zero-value config for missing file")
	}
}

func TestConfigLoadMalformed(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dir := filepath.Join(tmp, ".config", "sauna-itta")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestResolveStorage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SI_STORAGE", "")
	flagStorage = ""
	defer func() { flagStorage = "" }()

	if got := (Config{}).resolveStorage(); got != StorageSQLite {
		t.Errorf("default storage = %q, want %q", got, StorageSQLite)
	}

	if got := (Config{Storage: "diskv"}).resolveStorage(); got != StorageDiskv {
		t.Errorf("config storage = %q, want %q", got, StorageDiskv)
	}

	t.Setenv("SI_STORAGE", "sqlite")
	if got := (Config{Storage: "diskv"}).resolveStorage(); got != StorageSQLite {
		t.Errorf("env storage = %q, want %q", got, StorageSQLite)
	}

	flagStorage = "diskv"
	if got := (Config{}).resolveStorage(); got != StorageDiskv {
		t.Errorf("flag storage = %q, want %q", got, StorageDiskv)
	}
}

func TestResolveDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("SI_DATA_DIR", "")
	flagDataDir = ""
	defer func() { flagDataDir = "" }()

	want := filepath.Join(tmp, ".sauna-itta")
	if got := (Config{}).resolveDataDir(); got != want {
		t.Errorf("default data dir = %q, want %q", got, want)
	}

	if got := (Config{DataDir: "/opt/si"}).resolveDataDir(); got != "/opt/si" {
		t.Errorf("config data dir = %q, want %q", got, "/opt/si")
	}

	t.Setenv("SI_DATA_DIR", "/var/si")
	if got := (Config{DataDir: "/opt/si"}).resolveDataDir(); got != "/var/si" {
		t.Errorf("env data dir = %q, want %q", got, "/var/si")
	}
}

func TestResolvePort(t *testing.T) {
	if got := (Config{}).resolvePort(); got != 8080 {
		t.Errorf("default port = %d, want 8080", got)
	}
	if got := (Config{Port: 3000}).resolvePort(); got != 3000 {
		t.Errorf("config port = %d, want 3000", got)
	}
}
