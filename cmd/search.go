package cmd

import (
	"fmt"
	"strings"

	"github.com/ASHRREAL/guelph-schedule-generator/pkg/catalog"
	"github.com/ASHRREAL/guelph-schedule-generator/pkg/config"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a term's catalog by course code or title",
	Long: `Search the loaded term dataset for courses whose code or title matches
the query, e.g. 'gryphctl search calculus' or 'gryphctl search CIS'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		if cfg == nil {
			cfg = &config.AppConfig{}
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

		cat, err := catalog.Load(dir, term)
		if err != nil {
			return fmt.Errorf("failed to load course data: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")
		matches := cat.Search(query, limit)
		if len(matches) == 0 {
			return fmt.Errorf("no courses in %s match %q", term, query)
		}

		fmt.Printf("%d matches in %s:\n\n", len(matches), term)
		for _, m := range matches {
			fmt.Printf("  %-12s %s (%d sections)\n", m.Code, m.Title, m.Sections)
			if m.Description != "" {
				fmt.Printf("    %s\n", m.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("term", "t", "", "Term to search (e.g. 'Winter 2026' or W26)")
	searchCmd.Flags().String("data-dir", "", "Directory holding the term JSON files")
	searchCmd.Flags().Int("limit", 15, "Maximum number of matches to print")
}
