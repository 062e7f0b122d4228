package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gryphctl",
	Short: "A CLI and TUI for building University of Guelph timetables",
	Long: `gryphctl is an application for students at the University of Guelph
to generate conflict-free course timetables, rank them by preference,
and export them to .ics or .csv files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
