package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/planner"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export the best schedule to a file",
	Long: `Generate schedules for a set of courses and write the top-ranked one
straight to a file, without the interactive TUI. The format follows the
output extension: .ics for calendars, .csv for spreadsheets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		if cfg == nil {
			cfg = &config.AppConfig{}
		}

		codes, _ := cmd.Flags().GetStringSlice("courses")
		if len(codes) == 0 {
			codes = cfg.SavedCourses
		}
		if len(codes) == 0 {
			return fmt.Errorf("no courses given: pass --courses or save some with 'gryphctl config'")
		}

		termFlag, _ := cmd.Flags().GetString("term")
		if termFlag == "" {
			termFlag = cfg.DefaultTerm
		}
		if termFlag == "" {
			termFlag = string(catalog.Terms()[0])
		}
		term, err := catalog.ParseTerm(termFlag)
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("data-dir")
		if dir == "" {
			dir = cfg.DataDir
		}
		if dir == "" {
			dir = "data"
		}

		sortFlag, _ := cmd.Flags().GetString("sort")
		if !cmd.Flags().Changed("sort") && cfg.SortPolicy != "" {
			sortFlag = cfg.SortPolicy
		}
		policy, err := planner.PolicyByName(sortFlag)
		if err != nil {
			return err
		}

		window, err := planner.ParseWindow(cfg.Earliest, cfg.Latest)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")

		var ranked []planner.Ranked
		var runErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting the best %s schedule to %s...", term, output)).
			Action(func() {
				cat, err := catalog.Load(dir, term)
				if err != nil {
					runErr = fmt.Errorf("failed to load course data: %w", err)
					return
				}
				courses, err := cat.Courses(codes)
				if err != nil {
					runErr = err
					return
				}
				schedules, err := planner.Generate(planner.Request{
					Courses: courses,
					Window:  window,
					Limit:   500,
				})
				if err != nil {
					runErr = err
					return
				}
				if len(schedules) == 0 {
					runErr = errors.New("no valid schedules for those courses")
					return
				}
				ranked = planner.Rank(schedules, policy)
			}).
			Run()
		if runErr != nil {
			return runErr
		}

		best := ranked[0].Schedule
		if strings.HasSuffix(output, ".csv") {
			err = writeCSV(best, output)
		} else {
			err = writeICS(best, output)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Successfully exported %d sections to %s\n", len(best.Sections), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSliceP("courses", "c", nil, "Course codes to schedule (e.g. CIS*2750,MATH*1200)")
	exportCmd.Flags().StringP("term", "t", "", "Term to plan for (e.g. 'Winter 2026' or W26)")
	exportCmd.Flags().String("data-dir", "", "Directory holding the term JSON files")
	exportCmd.Flags().StringP("sort", "s", "balanced", "Sort policy used to pick the best schedule")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path (.ics or .csv)")
}
