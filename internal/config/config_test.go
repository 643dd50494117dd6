package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/marg")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.CatalogSource != CatalogSourceStatic {
		t.Fatalf("expected static catalog by default, got %q", cfg.CatalogSource)
	}
	if cfg.LoginMaxAttempts != 5 || cfg.LoginWindowMinutes != 10 {
		t.Fatalf("unexpected login limiter defaults: %+v", cfg)
	}
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is empty")
	}
}
