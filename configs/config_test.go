package configs

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.DBSource == "" {
		t.Error("DBSource default missing")
	}
	if cfg.Port == "" {
		t.Error("Port default missing")
	}
	if cfg.JWTTTL <= 0 {
		t.Errorf("JWTTTL = %v, want positive", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("CORSOrigins default missing")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_SOURCE", "override.db")
	t.Setenv("PORT", "9100")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SEED_DEMO", "1")

	cfg := LoadConfig()

	if cfg.DBSource != "override.db" {
		t.Errorf("DBSource = %q", cfg.DBSource)
	}
	if cfg.Port != "9100" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JWTTTL != 15*time.Minute {
		t.Errorf("JWTTTL = %v", cfg.JWTTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], want[i])
		}
	}
	if !cfg.SeedDemoData {
		t.Error("SeedDemoData not enabled")
	}
}

func TestDurationEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")
	cfg := LoadConfig()
	if cfg.JWTTTL != 7*24*time.Hour {
		t.Errorf("JWTTTL = %v, want default", cfg.JWTTTL)
	}
}
