package config

import (
	"errors"
	"strings"
	"testing"
)

func setAll(t *testing.T) {
	t.Helper()
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
	t.Setenv("SPOTIFY_REFRESH_TOKEN", "refresh")
}

func TestFromEnv_AllPresent(t *testing.T) {
	setAll(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.ClientID != "id" || cfg.ClientSecret != "secret" || cfg.RefreshToken != "refresh" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestFromEnv_MissingCredentialNamesTheVariable(t *testing.T) {
	setAll(t)
	t.Setenv("SPOTIFY_CLIENT_SECRET", "")

	_, err := FromEnv()
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if !strings.Contains(err.Error(), "SPOTIFY_CLIENT_SECRET") {
		t.Fatalf("error should name the variable, got %v", err)
	}
}
