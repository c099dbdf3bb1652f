package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobboard/internal/card"
	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/model"
	"github.com/amishk599/jobboard/internal/page"
)

var (
	listFilters filter.Criteria
	listWidth   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch, filter, and print job cards",
	Long:  "One-shot listing: fetches the jobs, applies --keyword/--location, prints one card per match, exits.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilters.Keyword, "keyword", "", "keyword filter (overrides filters.keyword)")
	listCmd.Flags().StringVar(&listFilters.Location, "location", "", "location filter (overrides filters.location)")
	listCmd.Flags().IntVar(&listWidth, "width", 80, "card width in columns")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg := page.Listing
	client := newClient(cfg, logger)

	var jobs []model.Job
	if pg.Has(page.RegionJobList) {
		jobs, err = client.ListJobs(ctx)
		if err != nil {
			logger.Error("fetch jobs failed", "error", err)
			jobs = nil
		}
	}

	var criteria filter.Criteria
	if pg.Has(page.RegionFilters) {
		criteria = filterFlags(cmd, cfg.Filters.Keyword, cfg.Filters.Location, listFilters)
	}

	fmt.Print(card.RenderList(card.Build(criteria.Apply(jobs), time.Now()), listWidth, -1))
	fmt.Println()
	return nil
}
