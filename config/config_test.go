package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// blank values read as unset
	t.Setenv("APP_PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("PDF_DIR", "")

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.AppPort)
	}
	if cfg.TokenTTL != 6*time.Hour {
		t.Fatalf("expected default token ttl 6h, got %s", cfg.TokenTTL)
	}
	if cfg.PDFDir != "./public/pdfs" {
		t.Fatalf("expected default pdf dir, got %s", cfg.PDFDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("DB_NAME", "leave_test")
	t.Setenv("JWT_SECRET", "s1")
	t.Setenv("ADMIN_SECRET", "s2")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PDF_DIR", "/tmp/pdfs")

	cfg := Load()
	if cfg.AppPort != "9999" {
		t.Fatalf("expected APP_PORT override, got %s", cfg.AppPort)
	}
	if cfg.DBName != "leave_test" {
		t.Fatalf("expected DB_NAME override, got %s", cfg.DBName)
	}
	if cfg.JWTSecret != "s1" || cfg.AdminSecret != "s2" {
		t.Fatalf("expected secret overrides")
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected TOKEN_TTL 30m, got %s", cfg.TokenTTL)
	}
	if cfg.PDFDir != "/tmp/pdfs" {
		t.Fatalf("expected PDF_DIR override, got %s", cfg.PDFDir)
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	cfg := Load()
	if cfg.TokenTTL != 6*time.Hour {
		t.Fatalf("expected fallback to default ttl, got %s", cfg.TokenTTL)
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "leave")
	cfg := Load()
	dsn := cfg.DSN()
	for _, part := range []string{"host=db.local", "dbname=leave", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn missing %q: %s", part, dsn)
		}
	}
}
