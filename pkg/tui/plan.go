package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/exporter"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// displayLimit caps how many ranked schedules the interactive flow prints.
const displayLimit = 5

// generateLimit bounds the search itself so a pathological course mix cannot
// spin forever; matches the classic planner's display ceiling.
const generateLimit = 500

// RunPlanTUI walks the user through term, courses and constraints, then
// generates, ranks and displays schedules.
func RunPlanTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Gryphon Schedule Planner!"))

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	// Term selection
	var termChoice string
	termOptions := make([]huh.Option[string], 0, len(catalog.Terms()))
	for _, t := range catalog.Terms() {
		termOptions = append(termOptions, huh.NewOption(string(t), string(t)))
	}
	termChoice = cfg.DefaultTerm
	if termChoice == "" {
		termChoice = string(catalog.Terms()[0])
	}

	termForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a term").
				Options(termOptions...).
				Value(&termChoice),
		),
	).WithTheme(GetTheme())
	if err := termForm.Run(); err != nil {
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

	// Courses and constraints
	courseInput := strings.Join(cfg.SavedCourses, ", ")
	earliest := cfg.Earliest
	latest := cfg.Latest
	policyName := cfg.SortPolicy
	if policyName == "" {
		policyName = planner.Balanced.Name
	}
	var daysOff []string

	policyOptions := make([]huh.Option[string], 0, len(planner.Policies))
	for _, p := range planner.Policies {
		policyOptions = append(policyOptions, huh.NewOption(p.Name, p.Name))
	}

	constraintForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course codes (comma separated)").
				Description("e.g. CIS*2750, MATH*1200").
				Value(&courseInput).
				Validate(func(s string) error {
					if len(splitCodes(s)) == 0 {
						return fmt.Errorf("enter at least one course code")
					}
					return nil
				}),

			huh.NewInput().
				Title("Earliest daily start (optional)").
				Description("e.g. 9:00 or 8:30 AM").
				Value(&earliest).
				Validate(validateClock),

			huh.NewInput().
				Title("Latest daily end (optional)").
				Value(&latest).
				Validate(validateClock),

			huh.NewSelect[string]().
				Title("Sort preference").
				Options(policyOptions...).
				Value(&policyName),

			huh.NewMultiSelect[string]().
				Title("Days you want off (optional)").
				Options(
					huh.NewOption("Monday", "M"),
					huh.NewOption("Tuesday", "T"),
					huh.NewOption("Wednesday", "W"),
					huh.NewOption("Thursday", "Th"),
					huh.NewOption("Friday", "F"),
				).
				Value(&daysOff),
		),
	).WithTheme(GetTheme())
	if err := constraintForm.Run(); err != nil {
		return err
	}

	window, err := planner.ParseWindow(earliest, latest)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	courses, err := cat.Courses(splitCodes(courseInput))
	if err != nil {
		var nf *catalog.NotFoundError
		if errors.As(err, &nf) {
			fmt.Println(errorStyle.Render(fmt.Sprintf(
				"Courses not found in %s: %s. Check the codes and the term.",
				nf.Term, strings.Join(nf.Codes, ", "))))
			return nil
		}
		return err
	}

	policy, err := planner.PolicyByName(policyName)
	if err != nil {
		return err
	}

	var schedules []planner.Schedule
	var genErr error
	_ = spinner.New().
		Title("Generating conflict-free schedules...").
		Action(func() {
			schedules, genErr = planner.Generate(planner.Request{
				Courses: courses,
				Window:  window,
				Limit:   generateLimit,
			})
		}).
		Run()
	if genErr != nil {
		var unsat *planner.UnsatisfiableError
		if errors.As(genErr, &unsat) {
			fmt.Println(errorStyle.Render(fmt.Sprintf(
				"%s has no sections for its %s component in %s.", unsat.Course, unsat.Component, term)))
			return nil
		}
		return genErr
	}

	schedules = planner.KeepDaysOff(schedules, toDays(daysOff))
	if len(schedules) == 0 {
		fmt.Println(errorStyle.Render("No schedules match your courses and constraints. Try loosening the time window or days off."))
		return nil
	}

	ranked := planner.Rank(schedules, policy)
	shown := len(ranked)
	if shown > displayLimit {
		shown = displayLimit
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nFound %d valid schedules (%s order), showing top %d:\n", len(ranked), policy.Name, shown)))
	for i := 0; i < shown; i++ {
		fmt.Println(RenderSchedule(i+1, ranked[i]))
	}

	return offerExport(ranked[0])
}

// offerExport asks whether to write the best schedule to a file.
func offerExport(best planner.Ranked) error {
	var doExport bool
	outputFile := "schedule.ics"

	exportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export the top schedule?").
				Value(&doExport),

			huh.NewInput().
				Title("Output file name (.ics or .csv)").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := exportForm.Run(); err != nil {
		return err
	}
	if !doExport {
		return nil
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(outputFile, ".csv") {
		err = exporter.GenerateCSV(best.Schedule, file)
	} else {
		err = exporter.GenerateICS(best.Schedule, time.Now(), file)
	}
	if err != nil {
		return fmt.Errorf("failed to export schedule: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported the top schedule to %s", outputFile)))
	return nil
}

func dataDir(cfg *config.AppConfig) string {
	if cfg != nil && cfg.DataDir != "" {
		return cfg.DataDir
	}
	return "data"
}

func splitCodes(s string) []string {
	var codes []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}

func toDays(tokens []string) []course.Day {
	var days []course.Day
	for _, t := range tokens {
		if d, err := course.ParseDay(t); err == nil {
			days = append(days, d)
		}
	}
	return days
}

func validateClock(s string) error {
	if s == "" {
		return nil
	}
	_, err := course.ParseClock(s)
	return err
}
