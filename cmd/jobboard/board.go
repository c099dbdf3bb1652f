package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/page"
)

var boardFilters filter.Criteria

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse and apply to jobs (TUI)",
	Long:  "Loads the job list, then shows the filterable board with the apply form.",
	RunE:  runBoardCmd,
}

func init() {
	boardCmd.Flags().StringVar(&boardFilters.Keyword, "keyword", "", "initial keyword filter (overrides filters.keyword)")
	boardCmd.Flags().StringVar(&boardFilters.Location, "location", "", "initial location filter (overrides filters.location)")
	rootCmd.AddCommand(boardCmd)
}

func runBoardCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	tuiLogger, closeLog, err := setupTUILogger(cfg, debug)
	if err != nil {
		logger.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	criteria := filterFlags(cmd, cfg.Filters.Keyword, cfg.Filters.Location, boardFilters)
	opts := pageOptions(cfg, page.Board, newClient(cfg, tuiLogger), criteria, tuiLogger)
	if _, err := runPage(opts); err != nil {
		fmt.Printf("TUI error: %v\n", err)
	}
	return nil
}

// filterFlags returns the configured criteria with any explicitly set
// --keyword/--location flag taking precedence.
func filterFlags(cmd *cobra.Command, keyword, location string, flags filter.Criteria) filter.Criteria {
	c := filter.Criteria{Keyword: keyword, Location: location}
	if cmd.Flags().Changed("keyword") {
		c.Keyword = flags.Keyword
	}
	if cmd.Flags().Changed("location") {
		c.Location = flags.Location
	}
	return c
}
