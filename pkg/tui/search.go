package tui

import (
	"fmt"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

const searchResultLimit = 15

// RunSearchTUI prompts for a term and a query, then prints matching courses.
func RunSearchTUI() error {
	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	termChoice := cfg.DefaultTerm
	if termChoice == "" {
		termChoice = string(catalog.Terms()[0])
	}
	termOptions := make([]huh.Option[string], 0, len(catalog.Terms()))
	for _, t := range catalog.Terms() {
		termOptions = append(termOptions, huh.NewOption(string(t), string(t)))
	}

	var query string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a term").
				Options(termOptions...).
				Value(&termChoice),

			huh.NewInput().
				Title("Search courses").
				Description("Course code or a word from the title, e.g. CIS or Calculus").
				Value(&query).
				Validate(func(s string) error {
					if len(s) < 2 {
						return fmt.Errorf("enter at least two characters")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	term, err := catalog.ParseTerm(termChoice)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	var loadErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Loading %s course data...", term)).
		Action(func() {
			cat, loadErr = catalog.Load(dataDir(cfg), term)
		}).
		Run()
	if loadErr != nil {
		return fmt.Errorf("failed to load course data: %w", loadErr)
	}

	matches := cat.Search(query, searchResultLimit)
	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No courses in %s match %q.", term, query)))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n%d matches in %s:\n", len(matches), term)))
	for _, m := range matches {
		fmt.Printf("  %s  %s %s\n", accentStyle.Render(m.Code), m.Title,
			dimStyle.Render(fmt.Sprintf("(%d sections)", m.Sections)))
		if m.Description != "" {
			fmt.Printf("    %s\n", dimStyle.Render(m.Description))
		}
	}
	return nil
}
