package domain

// Show est le podcast parent d'un épisode.
type Show struct {
	Name      string
	Publisher string
}

// Episode est un instantané immuable renvoyé par l'API distante; rien n'est
// persisté localement.
type Episode struct {
	ID   string
	Name string

	// ReleaseDate au format 2006-01-02 (la précision peut être réduite côté
	// Spotify: "2006" ou "2006-01").
	ReleaseDate string

	Show Show
}

// SavedEpisode est un épisode sauvegardé en bibliothèque, avec son horodatage
// d'ajout (format RFC 3339, UTC).
type SavedEpisode struct {
	AddedAt string
	Episode Episode
}
