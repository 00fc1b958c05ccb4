package ports

import (
	"context"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
)

// EpisodeLibrary expose les opérations distantes sur la bibliothèque
// d'épisodes sauvegardés.
type EpisodeLibrary interface {
	// AccessToken échange le refresh token contre un bearer token de courte
	// durée. Toute réponse non-200 est une erreur fatale pour l'appelant.
	AccessToken(ctx context.Context) (string, error)

	// SavedEpisodes parcourt la collection paginée. Un échec en cours de
	// pagination tronque le résultat à ce qui a déjà été accumulé
	// (résultat partiel, pas d'erreur).
	SavedEpisodes(ctx context.Context, token string) ([]domain.SavedEpisode, error)

	// RemoveEpisode supprime un seul épisode et renvoie le code HTTP obtenu.
	RemoveEpisode(ctx context.Context, token, episodeID string) (int, error)
}
