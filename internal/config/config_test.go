package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.DefaultSession = "work"
	cfg.Store.Backend = BackendMongo
	cfg.Store.MongoURI = "mongodb://localhost:27017"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultSession != "work" {
		t.Errorf("DefaultSession = %q, want %q", loaded.DefaultSession, "work")
	}
	if loaded.Store.Backend != BackendMongo || loaded.Store.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Store = %+v", loaded.Store)
	}
	if loaded.Chat.PageSize != 20 {
		t.Errorf("PageSize = %d, want default 20", loaded.Chat.PageSize)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultSession: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestLoadLayeredDefaultsWithoutFiles(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := LoadLayered(filepath.Join(tmpDir, "config.toml"), filepath.Join(tmpDir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.Backend != BackendSQLite || cfg.Log.Level != "info" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadLayeredPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	envFile := filepath.Join(tmpDir, ".env")

	toml := `
default_session = "fromfile"

[redis]
addr = "file:6379"

[chat]
page_size = 30
`
	if err := os.WriteFile(path, []byte(toml), 0600); err != nil {
		t.Fatal(err)
	}
	dotenv := "CHEFCHAT_REDIS_ADDR=dotenv:6379\nCHEFCHAT_AMQP_URL=amqp://dotenv\n"
	if err := os.WriteFile(envFile, []byte(dotenv), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHEFCHAT_AMQP_URL", "amqp://env")
	t.Setenv("CHEFCHAT_CHAT_PAGE_SIZE", "50")
	// godotenv sets variables that were unset; restore them afterwards.
	t.Setenv("CHEFCHAT_REDIS_ADDR", "")
	os.Unsetenv("CHEFCHAT_REDIS_ADDR")

	cfg, err := LoadLayered(path, envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultSession != "fromfile" {
		t.Errorf("DefaultSession = %q, want fromfile", cfg.DefaultSession)
	}
	if cfg.Redis.Addr != "dotenv:6379" {
		t.Errorf("Redis.Addr = %q, want the dotenv value", cfg.Redis.Addr)
	}
	if cfg.AMQP.URL != "amqp://env" {
		t.Errorf("AMQP.URL = %q, want the environment to beat dotenv", cfg.AMQP.URL)
	}
	if cfg.Chat.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.Chat.PageSize)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown backend accepted")
	}

	cfg = Default()
	cfg.Store.Backend = BackendMongo
	if err := cfg.Validate(); err == nil {
		t.Error("mongo backend without uri accepted")
	}
}
