package tui

import (
	"fmt"
	"strings"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Term", "term"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("Set Daily Time Window", "window"),
						huh.NewOption("Set Default Sort Policy", "sort"),
						huh.NewOption("Set Course Data Directory", "datadir"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "term" {
			err = runSetDefaultTermTUI(cfg)
		} else if action == "courses" {
			err = runSetSavedCoursesTUI(cfg)
		} else if action == "window" {
			err = runSetWindowTUI(cfg)
		} else if action == "sort" {
			err = runSetSortPolicyTUI(cfg)
		} else if action == "datadir" {
			err = runSetDataDirTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.gryphctl.json) ---"))
			if cfg.DefaultTerm == "" {
				fmt.Println("Default Term: Not set")
			} else {
				fmt.Printf("Default Term: %s\n", cfg.DefaultTerm)
			}
			fmt.Printf("Saved Courses: %s\n", strings.Join(cfg.SavedCourses, ", "))
			fmt.Printf("Earliest Start: %s\n", orNotSet(cfg.Earliest))
			fmt.Printf("Latest End: %s\n", orNotSet(cfg.Latest))
			fmt.Printf("Sort Policy: %s\n", orNotSet(cfg.SortPolicy))
			fmt.Printf("Data Directory: %s\n", orNotSet(cfg.DataDir))
			fmt.Printf("Accent Color: %s\n", orNotSet(cfg.AccentColor))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func runSetDefaultTermTUI(cfg *config.AppConfig) error {
	var selected string

	termOptions := make([]huh.Option[string], 0, len(catalog.Terms()))
	for _, t := range catalog.Terms() {
		termOptions = append(termOptions, huh.NewOption(string(t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default term").
				Options(termOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultTerm = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default term changed to: %s\n", selected)))
	return nil
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
	term := cfg.DefaultTerm
	if term == "" {
		term = string(catalog.Terms()[0])
	}
	parsed, err := catalog.ParseTerm(term)
	if err != nil {
		return err
	}

	var query string
	queryForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Search %s for courses to save", parsed)).
				Description("Course code or a word from the title. Leave empty to type codes directly.").
				Value(&query),
		),
	).WithTheme(GetTheme())
	if err := queryForm.Run(); err != nil {
		return err
	}

	if query == "" {
		return runTypeSavedCoursesTUI(cfg)
	}

	var cat *catalog.Catalog
	var loadErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Loading %s course data...", parsed)).
		Action(func() {
			cat, loadErr = catalog.Load(dataDir(cfg), parsed)
		}).
		Run()
	if loadErr != nil {
		return fmt.Errorf("failed to load course data: %w", loadErr)
	}

	matches := cat.Search(query, 30)
	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No courses in %s match %q.", parsed, query)))
		return nil
	}

	existingMap := make(map[string]bool)
	for _, code := range cfg.SavedCourses {
		existingMap[code] = true
	}

	var courseOptions []huh.Option[string]
	for _, m := range matches {
		opt := huh.NewOption(fmt.Sprintf("%s  %s", m.Code, m.Title), m.Code)
		if existingMap[m.Code] {
			opt = opt.Selected(true)
		}
		courseOptions = append(courseOptions, opt)
	}
	// Keep previously saved courses the search did not surface
	for _, code := range cfg.SavedCourses {
		found := false
		for _, m := range matches {
			if m.Code == code {
				found = true
				break
			}
		}
		if !found {
			courseOptions = append(courseOptions, huh.NewOption(code, code).Selected(true))
		}
	}

	var selectedCourses []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your courses").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedCourses).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = selectedCourses
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d courses.\n", len(selectedCourses))))
	return nil
}

func runTypeSavedCoursesTUI(cfg *config.AppConfig) error {
	input := strings.Join(cfg.SavedCourses, ", ")
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course codes (comma separated)").
				Description("e.g. CIS*2750, MATH*1200").
				Value(&input),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = splitCodes(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d courses.\n", len(cfg.SavedCourses))))
	return nil
}

func runSetWindowTUI(cfg *config.AppConfig) error {
	earliest := cfg.Earliest
	latest := cfg.Latest

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Earliest daily start").
				Description("e.g. 9:00 or 8:30 AM. Leave empty for no bound.").
				Value(&earliest).
				Validate(validateClock),

			huh.NewInput().
				Title("Latest daily end").
				Value(&latest).
				Validate(validateClock),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := planner.ParseWindow(earliest, latest); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	cfg.Earliest = earliest
	cfg.Latest = latest
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Daily time window saved.\n"))
	return nil
}

func runSetSortPolicyTUI(cfg *config.AppConfig) error {
	var selected string

	policyOptions := make([]huh.Option[string], 0, len(planner.Policies))
	for _, p := range planner.Policies {
		policyOptions = append(policyOptions, huh.NewOption(p.Name, p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your default sort policy").
				Options(policyOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SortPolicy = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default sort policy changed to: %s\n", selected)))
	return nil
}

func runSetDataDirTUI(cfg *config.AppConfig) error {
	input := cfg.DataDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Directory holding the term JSON files").
				Description("e.g. /srv/coursedata. Leave empty to use ./data.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DataDir = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Course data directory saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for gryphctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Gryphon Gold", colorBlock("178")), "178"),
					huh.NewOption(fmt.Sprintf("%s Guelph Red", colorBlock("160")), "160"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
