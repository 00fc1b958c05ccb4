package app

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
)

// WriteCandidates affiche le tableau récapitulatif des épisodes candidats à
// la suppression. N'écrit rien si la sélection est vide.
func WriteCandidates(w io.Writer, episodes []domain.SavedEpisode, crit domain.FilterCriteria) {
	if len(episodes) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Episode", "Show", "Publisher", crit.Field.Label()})
	for _, ep := range episodes {
		when := ""
		if date, err := crit.ComparisonDate(ep); err == nil {
			when = date.Format(dateDisplayLayout)
		}
		t.AppendRow(table.Row{ep.Episode.Name, ep.Episode.Show.Name, ep.Episode.Show.Publisher, when})
	}
	t.Render()
}
