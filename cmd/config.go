package cmd

import (
	"fmt"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/course"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gryphctl configuration",
	Long:  "View or edit your local configuration settings (saved courses, default term, time window, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if setTerm, _ := cmd.Flags().GetString("set-term"); setTerm != "" {
			term, err := catalog.ParseTerm(setTerm)
			if err != nil {
				return err
			}
			cfg.DefaultTerm = string(term)
			changed = true
			fmt.Printf("✅ Default term set to: %s\n", term)
		}

		if setCourses, _ := cmd.Flags().GetStringSlice("set-courses"); len(setCourses) > 0 {
			var normalized []string
			for _, code := range setCourses {
				n := course.NormalizeCode(code)
				if n == "" {
					return fmt.Errorf("invalid course code %q", code)
				}
				normalized = append(normalized, n)
			}
			cfg.SavedCourses = normalized
			changed = true
			fmt.Printf("✅ Saved %d courses\n", len(normalized))
		}

		if changed {
			return config.Save(cfg)
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-term", "", "Set the default term (e.g. 'Winter 2026' or W26)")
	configCmd.Flags().StringSlice("set-courses", nil, "Replace the saved course list (e.g. CIS*2750,MATH*1200)")
}
