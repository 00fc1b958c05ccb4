package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kota511/spotify-episodes-remover/internal/app"
	"github.com/kota511/spotify-episodes-remover/internal/buildinfo"
	"github.com/kota511/spotify-episodes-remover/internal/config"
	"github.com/kota511/spotify-episodes-remover/internal/prompt"
	"github.com/kota511/spotify-episodes-remover/internal/spotify"
)

func main() {
	// .env optionnel: les variables déjà présentes dans l'environnement priment.
	_ = godotenv.Load()

	logger := newLogger()
	log.Logger = logger

	logger.Info().Interface("build", buildinfo.Current()).Msg("starting")

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := spotify.NewClient(logger.With().Str("component", "spotify").Logger(), cfg)
	cleaner := app.NewCleaner(logger, client, prompt.NewConsole())

	if err := cleaner.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("run aborted")
	}
}

func newLogger() zerolog.Logger {
	var out io.Writer = os.Stdout
	if isatty.IsTerminal(os.Stdout.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(out).With().
		Timestamp().
		Str("app", "ser").
		Str("run", xid.New().String()).
		Logger()
}
