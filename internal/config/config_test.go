package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.DataBackend != "embed" {
		t.Errorf("expected default backend embed, got %s", cfg.DataBackend)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Errorf("expected default session TTL 8h, got %v", cfg.SessionTTL)
	}
	if cfg.ProtocolLinkBase == "" {
		t.Error("expected a default protocol link base")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", t.TempDir()+"/contratos.db")
	t.Setenv("SESSION_TTL", "30m")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("expected sqlite backend, got %s", cfg.DataBackend)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.SessionTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	valid := func() *Config {
		return &Config{
			Port:             "8081",
			DataBackend:      "embed",
			ProtocolLinkBase: "https://documento.oab.org.br/arquivos/",
			SessionTTL:       time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"non-numeric port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"unknown backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"dir backend missing dir", func(c *Config) {
			c.DataBackend = "dir"
			c.DataDir = "/nonexistent/path"
		}, "does not exist"},
		{"empty link base", func(c *Config) { c.ProtocolLinkBase = "" }, "protocol link base"},
		{"bad link scheme", func(c *Config) { c.ProtocolLinkBase = "ftp://example.com/" }, "scheme"},
		{"ttl too short", func(c *Config) { c.SessionTTL = time.Second }, "session TTL"},
		{"spreadsheet without credentials", func(c *Config) {
			c.GoogleSpreadsheetID = "sheet-id"
		}, "GOOGLE_SERVICE_ACCOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDirBackend(t *testing.T) {
	cfg := &Config{
		Port:             "8081",
		DataBackend:      "dir",
		DataDir:          t.TempDir(),
		ProtocolLinkBase: "https://documento.oab.org.br/arquivos/",
		SessionTTL:       time.Hour,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dir backend with existing dir should validate, got %v", err)
	}
}
