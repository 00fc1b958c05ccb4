package app

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
)

func ep(id, name, publisher, addedAt, releaseDate string) domain.SavedEpisode {
	return domain.SavedEpisode{
		AddedAt: addedAt,
		Episode: domain.Episode{
			ID:          id,
			Name:        name,
			ReleaseDate: releaseDate,
			Show:        domain.Show{Name: name + " Show", Publisher: publisher},
		},
	}
}

func mustCriteria(t *testing.T, field domain.DateField, cutoff, tz string, authors []string) domain.FilterCriteria {
	t.Helper()
	crit, err := domain.NewFilterCriteria(field, cutoff, tz, authors)
	if err != nil {
		t.Fatalf("criteria: %v", err)
	}
	return crit
}

func TestUniquePublishers_SortedAndDeduped(t *testing.T) {
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Zeta Media", "2023-01-01T00:00:00Z", "2023-01-01"),
		ep("2", "B", "Alpha Audio", "2023-01-01T00:00:00Z", "2023-01-01"),
		ep("3", "C", "Zeta Media", "2023-01-01T00:00:00Z", "2023-01-01"),
		ep("4", "D", "Mid Cast", "2023-01-01T00:00:00Z", "2023-01-01"),
	}
	got := UniquePublishers(episodes)
	want := []string{"Alpha Audio", "Mid Cast", "Zeta Media"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilter_EmptyAuthorSetYieldsNothing(t *testing.T) {
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Pub", "2000-01-01T00:00:00Z", "2000-01-01"),
	}
	crit := mustCriteria(t, domain.DateFieldAdded, "2030-01-01", "UTC", nil)
	if got := Filter(zerolog.Nop(), episodes, crit); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilter_OnlyAcceptedPublishers(t *testing.T) {
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Kept", "2000-01-01T00:00:00Z", "2000-01-01"),
		ep("2", "B", "Dropped", "2000-01-01T00:00:00Z", "2000-01-01"),
		ep("3", "C", "Kept", "2000-01-02T00:00:00Z", "2000-01-02"),
	}
	crit := mustCriteria(t, domain.DateFieldAdded, "2030-01-01", "UTC", []string{"Kept"})
	got := Filter(zerolog.Nop(), episodes, crit)
	if len(got) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(got))
	}
	for _, e := range got {
		if e.Episode.Show.Publisher != "Kept" {
			t.Fatalf("publisher %q should have been dropped", e.Episode.Show.Publisher)
		}
	}
}

func TestFilter_CutoffIsStrictAndTimezoneAware(t *testing.T) {
	// Ajout à 2023-01-01T00:00:00Z: en heure de Los Angeles c'est encore le
	// 2022-12-31, donc strictement avant le cutoff local; en UTC c'est
	// exactement minuit, donc exclu (comparaison stricte).
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Pub", "2023-01-01T00:00:00Z", "2022-12-25"),
	}

	la := mustCriteria(t, domain.DateFieldAdded, "2023-01-01", "America/Los_Angeles", []string{"Pub"})
	if got := Filter(zerolog.Nop(), episodes, la); len(got) != 1 {
		t.Fatalf("expected inclusion in America/Los_Angeles, got %d", len(got))
	}

	utc := mustCriteria(t, domain.DateFieldAdded, "2023-01-01", "UTC", []string{"Pub"})
	if got := Filter(zerolog.Nop(), episodes, utc); len(got) != 0 {
		t.Fatalf("midnight UTC equals the cutoff, expected exclusion, got %d", len(got))
	}
}

func TestFilter_ReleaseDateField(t *testing.T) {
	episodes := []domain.SavedEpisode{
		ep("old", "Old", "Pub", "2024-06-01T00:00:00Z", "2020-03-15"),
		ep("new", "New", "Pub", "2024-06-01T00:00:00Z", "2024-05-30"),
	}
	crit := mustCriteria(t, domain.DateFieldRelease, "2022-01-01", "UTC", []string{"Pub"})
	got := Filter(zerolog.Nop(), episodes, crit)
	if len(got) != 1 || got[0].Episode.ID != "old" {
		t.Fatalf("expected only the old release, got %+v", got)
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Pub", "2020-01-03T00:00:00Z", "2020-01-03"),
		ep("2", "B", "Other", "2020-01-01T00:00:00Z", "2020-01-01"),
		ep("3", "C", "Pub", "2020-01-01T00:00:00Z", "2020-01-01"),
		ep("4", "D", "Pub", "2020-01-02T00:00:00Z", "2020-01-02"),
	}
	crit := mustCriteria(t, domain.DateFieldAdded, "2030-01-01", "UTC", []string{"Pub"})
	got := Filter(zerolog.Nop(), episodes, crit)
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.Episode.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "3", "4"}) {
		t.Fatalf("order not preserved: %v", ids)
	}
}

func TestFilter_SkipsUnparseableDates(t *testing.T) {
	// Release date à précision réduite: l'épisode est ignoré, pas de panique.
	episodes := []domain.SavedEpisode{
		ep("1", "A", "Pub", "2020-01-01T00:00:00Z", "2020"),
		ep("2", "B", "Pub", "2020-01-01T00:00:00Z", "2020-01-01"),
	}
	crit := mustCriteria(t, domain.DateFieldRelease, "2030-01-01", "UTC", []string{"Pub"})
	got := Filter(zerolog.Nop(), episodes, crit)
	if len(got) != 1 || got[0].Episode.ID != "2" {
		t.Fatalf("expected only the parseable episode, got %+v", got)
	}
}
