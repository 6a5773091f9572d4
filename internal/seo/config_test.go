package seo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad scheme", func(c *Config) { c.SiteURL = "ftp://antalyaride.com" }, "scheme"},
		{"no host", func(c *Config) { c.SiteURL = "https://" }, "host"},
		{"trailing slash", func(c *Config) { c.SiteURL = "https://antalyaride.com/" }, "slash"},
		{"no name", func(c *Config) { c.SiteName = "" }, "site_name"},
		{"no languages", func(c *Config) { c.Languages.Supported = nil }, "languages"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	doc := "site_name: Riviera Rides\nsite_url: https://riviera.example\ncompany:\n  phone: \"+90-242-555-9999\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SiteName != "Riviera Rides" {
		t.Fatalf("site name = %q", cfg.SiteName)
	}
	if cfg.SiteURL != "https://riviera.example" {
		t.Fatalf("site url = %q", cfg.SiteURL)
	}
	if cfg.Company.Phone != "+90-242-555-9999" {
		t.Fatalf("phone = %q", cfg.Company.Phone)
	}
	// untouched fields keep their defaults
	if cfg.DefaultTitle != DefaultConfig().DefaultTitle {
		t.Fatalf("default title overwritten: %q", cfg.DefaultTitle)
	}
	if cfg.Languages.Default != "en" {
		t.Fatalf("default language = %q", cfg.Languages.Default)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte("site_url: https://bad.example/\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for trailing slash")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RIDE_SITE_URL", "https://staging.antalyaride.com/")
	t.Setenv("RIDE_SITE_NAME", "Antalya Ride Staging")
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.SiteURL != "https://staging.antalyaride.com" {
		t.Fatalf("site url = %q", cfg.SiteURL)
	}
	if cfg.SiteName != "Antalya Ride Staging" {
		t.Fatalf("site name = %q", cfg.SiteName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("env-overlaid config invalid: %v", err)
	}
}

func TestAbsoluteURL(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[string]string{
		"":                          cfg.SiteURL,
		"/kemer-transfer":           cfg.SiteURL + "/kemer-transfer",
		"services/vip":              cfg.SiteURL + "/services/vip",
		"https://cdn.example/x.jpg": "https://cdn.example/x.jpg",
	}
	for in, want := range cases {
		if got := cfg.AbsoluteURL(in); got != want {
			t.Fatalf("AbsoluteURL(%q) = %q, want %q", in, got, want)
		}
	}
}
