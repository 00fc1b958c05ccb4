package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingCredential = errors.New("missing credential")

// Config porte les trois secrets Spotify, lus une fois au démarrage puis
// passés par paramètre (pas d'état global mutable).
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func FromEnv() (Config, error) {
	cfg := Config{
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		RefreshToken: os.Getenv("SPOTIFY_REFRESH_TOKEN"),
	}
	for _, v := range []struct{ name, value string }{
		{"SPOTIFY_CLIENT_ID", cfg.ClientID},
		{"SPOTIFY_CLIENT_SECRET", cfg.ClientSecret},
		{"SPOTIFY_REFRESH_TOKEN", cfg.RefreshToken},
	} {
		if v.value == "" {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingCredential, v.name)
		}
	}
	return cfg, nil
}
