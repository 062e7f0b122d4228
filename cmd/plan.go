package cmd

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
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and rank conflict-free schedules",
	Long: `Generate every conflict-free timetable for a set of courses, rank them
by a sort policy, and print the best ones. Course codes accept both
"CIS*2750" and "cis2750" spellings.`,
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

		earliest, _ := cmd.Flags().GetString("earliest")
		if !cmd.Flags().Changed("earliest") && cfg.Earliest != "" {
			earliest = cfg.Earliest
		}
		latest, _ := cmd.Flags().GetString("latest")
		if !cmd.Flags().Changed("latest") && cfg.Latest != "" {
			latest = cfg.Latest
		}
		window, err := planner.ParseWindow(earliest, latest)
		if err != nil {
			return err
		}

		sortFlag, _ := cmd.Flags().GetString("sort")
		if !cmd.Flags().Changed("sort") && cfg.SortPolicy != "" {
			sortFlag = cfg.SortPolicy
		}
		policy, err := planner.PolicyByName(sortFlag)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		show, _ := cmd.Flags().GetInt("show")
		daysOff, _ := cmd.Flags().GetStringSlice("days-off")
		minDaysOff, _ := cmd.Flags().GetInt("min-days-off")

		var cat *catalog.Catalog
		var loadErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Loading %s course data...", term)).
			Action(func() {
				cat, loadErr = catalog.Load(dir, term)
			}).
			Run()
		if loadErr != nil {
			return fmt.Errorf("failed to load course data: %w", loadErr)
		}

		courses, err := cat.Courses(codes)
		if err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return fmt.Errorf("courses not found in %s: %s (check the codes and the term)",
					nf.Term, strings.Join(nf.Codes, ", "))
			}
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
					Limit:   limit,
				})
			}).
			Run()
		if genErr != nil {
			var unsat *planner.UnsatisfiableError
			if errors.As(genErr, &unsat) {
				return fmt.Errorf("%s has no sections for its %s component in %s",
					unsat.Course, unsat.Component, term)
			}
			return genErr
		}

		if len(daysOff) > 0 {
			var days []course.Day
			for _, tok := range daysOff {
				d, err := course.ParseDay(tok)
				if err != nil {
					return fmt.Errorf("invalid --days-off value %q", tok)
				}
				days = append(days, d)
			}
			schedules = planner.KeepDaysOff(schedules, days)
		}
		if minDaysOff > 0 {
			schedules = planner.KeepMinDaysOff(schedules, minDaysOff)
		}

		if len(schedules) == 0 {
			return fmt.Errorf("no valid schedules: every combination of those sections conflicts or misses your constraints")
		}

		ranked := planner.Rank(schedules, policy)
		if show <= 0 || show > len(ranked) {
			show = len(ranked)
		}

		fmt.Printf("Found %d valid schedules (%s order), showing top %d:\n\n", len(ranked), policy.Name, show)
		for i := 0; i < show; i++ {
			fmt.Println(tui.RenderSchedule(i+1, ranked[i]))
		}

		icsPath, _ := cmd.Flags().GetString("ics")
		csvPath, _ := cmd.Flags().GetString("csv")
		if icsPath != "" {
			if err := writeICS(ranked[0].Schedule, icsPath); err != nil {
				return err
			}
			fmt.Printf("Exported the top schedule to %s\n", icsPath)
		}
		if csvPath != "" {
			if err := writeCSV(ranked[0].Schedule, csvPath); err != nil {
				return err
			}
			fmt.Printf("Exported the top schedule to %s\n", csvPath)
		}

		return nil
	},
}

func writeICS(s planner.Schedule, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := exporter.GenerateICS(s, time.Now(), file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	return nil
}

func writeCSV(s planner.Schedule, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := exporter.GenerateCSV(s, file); err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringSliceP("courses", "c", nil, "Course codes to schedule (e.g. CIS*2750,MATH*1200)")
	planCmd.Flags().StringP("term", "t", "", "Term to plan for (e.g. 'Winter 2026' or W26)")
	planCmd.Flags().String("data-dir", "", "Directory holding the term JSON files")
	planCmd.Flags().String("earliest", "", "Earliest daily start time (e.g. 9:00)")
	planCmd.Flags().String("latest", "", "Latest daily end time (e.g. 17:30)")
	planCmd.Flags().Int("limit", 500, "Maximum number of schedules to generate (0 = unlimited)")
	planCmd.Flags().Int("show", 3, "How many ranked schedules to print (0 = all)")
	planCmd.Flags().StringP("sort", "s", "balanced", "Sort policy: balanced, minimal-gaps, fewer-days, early-start, late-start, compact")
	planCmd.Flags().StringSlice("days-off", nil, "Days that must stay free (e.g. F or M,F)")
	planCmd.Flags().Int("min-days-off", 0, "Require at least this many free weekdays")
	planCmd.Flags().String("ics", "", "Write the top schedule to this .ics file")
	planCmd.Flags().String("csv", "", "Write the top schedule to this .csv file")
}
