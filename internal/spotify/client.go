package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kota511/spotify-episodes-remover/internal/config"
	"github.com/kota511/spotify-episodes-remover/internal/domain"
)

const (
	defaultTokenURL    = "https://accounts.spotify.com/api/token"
	defaultEpisodesURL = "https://api.spotify.com/v1/me/episodes"
)

// Client parle aux trois endpoints Spotify utilisés par l'outil: échange de
// token, liste paginée des épisodes sauvegardés, suppression.
type Client struct {
	logger      zerolog.Logger
	cfg         config.Config
	tokenURL    string
	episodesURL string
	client      *http.Client
}

func NewClient(logger zerolog.Logger, cfg config.Config) *Client {
	return &Client{
		logger:      logger,
		cfg:         cfg,
		tokenURL:    defaultTokenURL,
		episodesURL: defaultEpisodesURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithEndpoints remplace les URLs par défaut (tests).
func (c *Client) WithEndpoints(tokenURL, episodesURL string) *Client {
	if strings.TrimSpace(tokenURL) != "" {
		c.tokenURL = strings.TrimSpace(tokenURL)
	}
	if strings.TrimSpace(episodesURL) != "" {
		c.episodesURL = strings.TrimSpace(episodesURL)
	}
	return c
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// AccessToken échange le refresh token contre un bearer token éphémère, via
// basic auth client id/secret. Pas de retry, pas de backoff: un non-200 est
// remonté tel quel et l'appelant abandonne le run.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.cfg.RefreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access_token")
	}
	c.logger.Info().Msg("access token obtained")
	return tok.AccessToken, nil
}

// Structures wire, privées à l'adaptateur. "next" vaut null sur la dernière
// page, ce qui donne une chaîne vide côté Go.
type savedEpisodePage struct {
	Items []savedEpisodeItem `json:"items"`
	Next  string             `json:"next"`
}

type savedEpisodeItem struct {
	AddedAt string `json:"added_at"`
	Episode struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
		Show        struct {
			Name      string `json:"name"`
			Publisher string `json:"publisher"`
		} `json:"show"`
	} `json:"episode"`
}

// SavedEpisodes suit les liens "next" jusqu'à épuisement, dans l'ordre
// serveur. Un échec en cours de pagination tronque le résultat à ce qui a
// déjà été récupéré: politique résultat-partiel, l'appelant ne voit pas
// d'erreur. Pas de déduplication, le serveur est supposé ne pas répéter.
func (c *Client) SavedEpisodes(ctx context.Context, token string) ([]domain.SavedEpisode, error) {
	episodes := []domain.SavedEpisode{}
	next := c.episodesURL
	for next != "" {
		page, err := c.fetchPage(ctx, token, next)
		if err != nil {
			c.logger.Error().Err(err).Int("fetched", len(episodes)).Msg("pagination stopped early")
			break
		}
		for _, it := range page.Items {
			episodes = append(episodes, toDomain(it))
		}
		next = page.Next
	}
	c.logger.Info().Int("total", len(episodes)).Msg("saved episodes fetched")
	return episodes, nil
}

func (c *Client) fetchPage(ctx context.Context, token, pageURL string) (savedEpisodePage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return savedEpisodePage{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return savedEpisodePage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return savedEpisodePage{}, fmt.Errorf("list endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var page savedEpisodePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return savedEpisodePage{}, err
	}
	return page, nil
}

func toDomain(it savedEpisodeItem) domain.SavedEpisode {
	return domain.SavedEpisode{
		AddedAt: it.AddedAt,
		Episode: domain.Episode{
			ID:          it.Episode.ID,
			Name:        it.Episode.Name,
			ReleaseDate: it.Episode.ReleaseDate,
			Show: domain.Show{
				Name:      it.Episode.Show.Name,
				Publisher: it.Episode.Show.Publisher,
			},
		},
	}
}

// RemoveEpisode supprime un seul épisode par appel (ids=<id>) et renvoie le
// code HTTP obtenu; l'interprétation (200 = succès) est laissée à l'appelant.
func (c *Client) RemoveEpisode(ctx context.Context, token, episodeID string) (int, error) {
	u := c.episodesURL + "?ids=" + url.QueryEscape(episodeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
