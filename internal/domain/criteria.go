package domain

import (
	"fmt"
	"time"
)

// DateField sélectionne la date de comparaison: ajout en bibliothèque ou
// sortie du podcast. Choix énuméré simple, pas de hiérarchie.
type DateField string

const (
	DateFieldAdded   DateField = "added"
	DateFieldRelease DateField = "release"
)

func (f DateField) Label() string {
	if f == DateFieldRelease {
		return "Podcast Release Date"
	}
	return "Date Added to Library"
}

const calendarLayout = "2006-01-02"

// FilterCriteria est construit une fois par run à partir des réponses de
// l'utilisateur, puis immuable.
type FilterCriteria struct {
	Field    DateField
	Location *time.Location

	// Cutoff est minuit à la date choisie, dans Location.
	Cutoff time.Time

	authors map[string]bool
}

// NewFilterCriteria valide la date de cutoff (YYYY-MM-DD) et le fuseau; le
// cutoff est interprété comme minuit dans le fuseau cible.
func NewFilterCriteria(field DateField, cutoff, timezone string, authors []string) (FilterCriteria, error) {
	day, err := time.Parse(calendarLayout, cutoff)
	if err != nil {
		return FilterCriteria{}, fmt.Errorf("invalid cutoff date %q (want YYYY-MM-DD): %w", cutoff, err)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return FilterCriteria{}, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	set := make(map[string]bool, len(authors))
	for _, a := range authors {
		set[a] = true
	}
	return FilterCriteria{
		Field:    field,
		Location: loc,
		Cutoff:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc),
		authors:  set,
	}, nil
}

func (c FilterCriteria) Accepts(publisher string) bool { return c.authors[publisher] }

func (c FilterCriteria) AuthorCount() int { return len(c.authors) }

// ComparisonDate résout la date de comparaison d'un épisode selon Field:
// interprétée en UTC puis convertie dans le fuseau cible.
func (c FilterCriteria) ComparisonDate(ep SavedEpisode) (time.Time, error) {
	raw, layout := ep.AddedAt, time.RFC3339
	if c.Field == DateFieldRelease {
		raw, layout = ep.Episode.ReleaseDate, calendarLayout
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s date %q: %w", c.Field, raw, err)
	}
	return t.UTC().In(c.Location), nil
}
