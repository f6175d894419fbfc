package tui

import (
	"errors"
	"os"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels an interactive form.
var ErrAborted = errors.New("selection aborted by user")

// categoryOptions builds one select option per legend category, labelled
// with its display label and valued with its key.
func categoryOptions() []huh.Option[legend.Category] {
	items := legend.All()
	opts := make([]huh.Option[legend.Category], len(items))
	for i, item := range items {
		opts[i] = huh.NewOption(item.Label, item.Category)
	}
	return opts
}

// SelectCategory asks the user to pick a legend category.
func SelectCategory() (legend.Category, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var selected legend.Category
	opts := categoryOptions()

	selectField := huh.NewSelect[legend.Category]().
		Title("Select a record category").
		Options(opts...).
		Value(&selected).
		Height(len(opts) + 2)

	if err := runForm(accessible, huh.NewGroup(selectField)); err != nil {
		return "", err
	}

	return selected, nil
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
