package config

import "testing"

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("DBType = %q, want sqlite", cfg.DBType)
	}
	if cfg.UploadMaxBytes != 16<<20 {
		t.Errorf("UploadMaxBytes = %d, want %d", cfg.UploadMaxBytes, 16<<20)
	}
	if cfg.SessionCookieName == "" {
		t.Error("expected a default session cookie name")
	}
}

func TestParseConfigRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := ParseConfig(); err == nil {
		t.Fatal("expected an error for a non numeric REDIS_DB")
	}
}
