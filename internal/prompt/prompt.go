package prompt

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/kota511/spotify-episodes-remover/internal/domain"
	"github.com/kota511/spotify-episodes-remover/internal/ports"
)

// Console implémente ports.Prompter sur le terminal, via survey.
type Console struct{}

var _ ports.Prompter = (*Console)(nil)

func NewConsole() *Console { return &Console{} }

func (p *Console) SelectAuthors(choices []string) ([]string, error) {
	options := make([]string, 0, len(choices)+1)
	options = append(options, ports.SelectAllSentinel)
	options = append(options, choices...)

	var selected []string
	q := &survey.MultiSelect{
		Message: "Select author(s) to filter episodes by (use spacebar to select, enter to confirm):",
		Options: options,
	}
	if err := survey.AskOne(q, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func (p *Console) SelectDateField() (domain.DateField, error) {
	var answer string
	q := &survey.Select{
		Message: "Choose the date type for filtering episodes",
		Options: []string{domain.DateFieldAdded.Label(), domain.DateFieldRelease.Label()},
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", err
	}
	if answer == domain.DateFieldRelease.Label() {
		return domain.DateFieldRelease, nil
	}
	return domain.DateFieldAdded, nil
}

// CutoffDate revalide la saisie jusqu'à obtenir une date YYYY-MM-DD valide.
func (p *Console) CutoffDate() (string, error) {
	var answer string
	q := &survey.Input{
		Message: "Enter the date (YYYY-MM-DD) to remove episodes before this date",
	}
	if err := survey.AskOne(q, &answer, survey.WithValidator(validDate)); err != nil {
		return "", err
	}
	return answer, nil
}

func validDate(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("%q is not a valid YYYY-MM-DD date", s)
	}
	return nil
}

func (p *Console) SelectTimezone() (string, error) {
	zones := domain.CommonTimezones()
	labels := make([]string, 0, len(zones))
	byLabel := make(map[string]string, len(zones))
	for _, z := range zones {
		labels = append(labels, z.Label)
		byLabel[z.Label] = z.Name
	}

	var answer string
	q := &survey.Select{
		Message: "Select your timezone",
		Options: labels,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return "", err
	}
	return byLabel[answer], nil
}

func (p *Console) ConfirmDryRun() (bool, error) {
	answer := true
	q := &survey.Confirm{
		Message: "Run in test mode (no episodes will be removed)?",
		Default: true,
	}
	if err := survey.AskOne(q, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
