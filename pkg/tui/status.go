package tui

import (
	"fmt"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/registrar"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunStatusTUI prompts for a course code and shows live seat availability.
func RunStatusTUI() error {
	var code string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course code").
				Description("e.g. CIS*2750").
				Value(&code).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("course code cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	client := registrar.NewClient()
	var statuses []registrar.SectionStatus
	var fetchErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Checking live seats for %s...", code)).
		Action(func() {
			statuses, fetchErr = client.SectionStatus(code)
		}).
		Run()
	if fetchErr != nil {
		fmt.Println(errorStyle.Render(fetchErr.Error()))
		return nil
	}

	PrintSectionStatuses(statuses)
	return nil
}

// PrintSectionStatuses renders registrar results grouped by term. Shared with
// the status command.
func PrintSectionStatuses(statuses []registrar.SectionStatus) {
	var lastTerm string
	for _, s := range statuses {
		if string(s.Term) != lastTerm {
			lastTerm = string(s.Term)
			fmt.Println(accentStyle.Render("\n" + lastTerm))
		}
		fmt.Printf("  %-22s %s %s\n", s.SectionID, statusBadge(s.State), dimStyle.Render(s.Details))
	}
	fmt.Println()
}

func statusBadge(state registrar.State) string {
	switch state {
	case registrar.Available:
		return "open      "
	case registrar.Full:
		return errorStyle.Render("full      ")
	case registrar.Waitlisted:
		return "waitlisted"
	default:
		return dimStyle.Render("unknown   ")
	}
}
