package ports

import "github.com/kota511/spotify-episodes-remover/internal/domain"

// SelectAllSentinel est l'entrée spéciale du multi-select auteurs: la choisir
// (ou ne rien choisir) équivaut à sélectionner tous les auteurs.
const SelectAllSentinel = "Select All"

// Prompter collecte les choix de l'utilisateur. L'implémentation console vit
// dans internal/prompt; les tests fournissent des stubs.
type Prompter interface {
	SelectAuthors(choices []string) ([]string, error)
	SelectDateField() (domain.DateField, error)
	CutoffDate() (string, error)
	// SelectTimezone renvoie un nom IANA (ex: "America/New_York").
	SelectTimezone() (string, error)
	ConfirmDryRun() (bool, error)
}
