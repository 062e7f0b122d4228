package cmd

import (
	"fmt"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/registrar"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [course]",
	Short: "Check live seat availability for a course",
	Long: `Fetch the live registration page and report every listed section's seat
availability, e.g. 'gryphctl status CIS*2750'. Results are cached for a
few minutes; pass --no-cache to force a fresh fetch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := registrar.NewClient()
		if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
			client.Cache = nil
		}

		var statuses []registrar.SectionStatus
		var fetchErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Checking live seats for %s...", args[0])).
			Action(func() {
				statuses, fetchErr = client.SectionStatus(args[0])
			}).
			Run()
		if fetchErr != nil {
			return fetchErr
		}

		tui.PrintSectionStatuses(statuses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().Bool("no-cache", false, "Skip the on-disk cache and fetch fresh data")
}
