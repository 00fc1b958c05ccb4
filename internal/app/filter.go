package app

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
)

const dateDisplayLayout = "2006-01-02 15:04:05 MST"

// UniquePublishers renvoie l'ensemble des éditeurs présents dans la
// collection, trié et sans doublon. Pure, sans effet de bord.
func UniquePublishers(episodes []domain.SavedEpisode) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, ep := range episodes {
		p := ep.Episode.Show.Publisher
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Filter sélectionne les épisodes dont l'éditeur est accepté et dont la date
// de comparaison, convertie dans le fuseau cible, est strictement antérieure
// au cutoff. Stable: l'ordre d'entrée est préservé. Chaque inclusion est
// loggée au moment où elle se produit (visibilité dry-run).
func Filter(logger zerolog.Logger, episodes []domain.SavedEpisode, crit domain.FilterCriteria) []domain.SavedEpisode {
	matched := []domain.SavedEpisode{}
	if crit.AuthorCount() == 0 {
		logger.Warn().Msg("no authors selected, please select at least one author")
		return matched
	}

	for _, ep := range episodes {
		if !crit.Accepts(ep.Episode.Show.Publisher) {
			continue
		}
		date, err := crit.ComparisonDate(ep)
		if err != nil {
			// Spotify renvoie parfois des release dates à précision réduite.
			logger.Warn().Err(err).Str("episode", ep.Episode.Name).Msg("unparseable date, episode skipped")
			continue
		}
		if !date.Before(crit.Cutoff) {
			continue
		}
		matched = append(matched, ep)
		logger.Info().
			Str("episode", ep.Episode.Name).
			Str("show", ep.Episode.Show.Name).
			Str("publisher", ep.Episode.Show.Publisher).
			Str("dateField", crit.Field.Label()).
			Str("date", date.Format(dateDisplayLayout)).
			Msg("candidate for removal")
	}

	logger.Info().Int("candidates", len(matched)).Msg("episodes matching criteria")
	return matched
}
