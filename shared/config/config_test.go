// shared/config/config_test.go
package config

import (
	"testing"
	"time"
)

func TestLoadLeagueServiceConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadLeagueServiceConfig()
	if err != nil {
		t.Fatalf("LoadLeagueServiceConfig failed: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.MongoDBDatabase != "league" {
		t.Errorf("unexpected database %q", cfg.MongoDBDatabase)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("unexpected JWT expiry %v", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected request timeout %v", cfg.RequestTimeout)
	}
}

func TestLoadLeagueServiceConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadLeagueServiceConfig(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is unset")
	}
}

func TestLoadLeagueServiceConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LEAGUE_SERVICE_LISTEN_ADDR", ":9999")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := LoadLeagueServiceConfig()
	if err != nil {
		t.Fatalf("LoadLeagueServiceConfig failed: %v", err)
	}

	if cfg.ListenAddr != ":9999" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("unexpected cache TTL %v", cfg.CacheTTL)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("unexpected JWT expiry %v", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
}

func TestLoadLeagueServiceConfigTrimsBaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BASE_URL", "http://api.example.com/v1/")

	cfg, err := LoadLeagueServiceConfig()
	if err != nil {
		t.Fatalf("LoadLeagueServiceConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://api.example.com/v1" {
		t.Errorf("expected trailing slash to be trimmed, got %q", cfg.BaseURL)
	}
}

func TestLoadLeagueServiceConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	if _, err := LoadLeagueServiceConfig(); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}
