package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/page"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a new job (TUI form)",
	Long:  "Shows the post-job form. Title and company are required; the board does not refresh after posting.",
	RunE:  runPostCmd,
}

func init() {
	rootCmd.AddCommand(postCmd)
}

func runPostCmd(cmd *cobra.Command, args []string) error {
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

	opts := pageOptions(cfg, page.PostJob, newClient(cfg, tuiLogger), filter.Criteria{}, tuiLogger)
	if _, err := runPage(opts); err != nil {
		fmt.Printf("TUI error: %v\n", err)
	}
	return nil
}
