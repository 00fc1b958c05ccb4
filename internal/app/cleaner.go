package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
	"github.com/kota511/spotify-episodes-remover/internal/ports"
)

// Cleaner enchaîne le flux complet: token → fetch → prompts → filtre →
// suppression (sauf dry-run). Séquence strictement linéaire, sans retour en
// arrière ni annulation en cours de route.
type Cleaner struct {
	logger   zerolog.Logger
	library  ports.EpisodeLibrary
	prompter ports.Prompter
	out      io.Writer
}

func NewCleaner(logger zerolog.Logger, library ports.EpisodeLibrary, prompter ports.Prompter) *Cleaner {
	return &Cleaner{logger: logger, library: library, prompter: prompter, out: os.Stdout}
}

// WithOutput redirige le tableau récapitulatif (tests).
func (c *Cleaner) WithOutput(w io.Writer) *Cleaner {
	if w != nil {
		c.out = w
	}
	return c
}

func (c *Cleaner) Run(ctx context.Context) error {
	token, err := c.library.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}

	episodes, err := c.library.SavedEpisodes(ctx, token)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		c.logger.Info().Msg("no episodes were returned, nothing to do")
		return nil
	}

	authors := UniquePublishers(episodes)
	selected, err := c.prompter.SelectAuthors(authors)
	if err != nil {
		return err
	}
	// Sélection vide ou contenant la sentinelle => tous les auteurs.
	if len(selected) == 0 || containsSelectAll(selected) {
		selected = authors
		c.logger.Info().Msg("automatically selecting all authors")
	}

	field, err := c.prompter.SelectDateField()
	if err != nil {
		return err
	}
	cutoff, err := c.prompter.CutoffDate()
	if err != nil {
		return err
	}
	timezone, err := c.prompter.SelectTimezone()
	if err != nil {
		return err
	}
	dryRun, err := c.prompter.ConfirmDryRun()
	if err != nil {
		return err
	}

	crit, err := domain.NewFilterCriteria(field, cutoff, timezone, selected)
	if err != nil {
		return err
	}

	c.logger.Info().
		Str("dateField", field.Label()).
		Str("before", cutoff).
		Str("timezone", timezone).
		Bool("dryRun", dryRun).
		Int("authors", len(selected)).
		Msg("running with selected options")

	matched := Filter(c.logger, episodes, crit)
	WriteCandidates(c.out, matched, crit)

	if dryRun {
		c.logger.Info().Int("candidates", len(matched)).Msg("test mode: no episode removed")
		return nil
	}

	// L'échec d'une suppression n'interrompt jamais les suivantes.
	removed, failed := 0, 0
	for _, ep := range matched {
		status, err := c.library.RemoveEpisode(ctx, token, ep.Episode.ID)
		if err != nil || status != http.StatusOK {
			failed++
			ev := c.logger.Error()
			if err != nil {
				ev = ev.Err(err)
			} else {
				ev = ev.Int("status", status)
			}
			ev.Str("episode", ep.Episode.Name).
				Str("show", ep.Episode.Show.Name).
				Msg("failed to remove episode")
			continue
		}
		removed++
		c.logger.Info().
			Str("episode", ep.Episode.Name).
			Str("show", ep.Episode.Show.Name).
			Msg("episode removed")
	}

	c.logger.Info().Int("removed", removed).Int("failed", failed).Msg("done")
	return nil
}

func containsSelectAll(selected []string) bool {
	for _, s := range selected {
		if s == ports.SelectAllSentinel {
			return true
		}
	}
	return false
}
