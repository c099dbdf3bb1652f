package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/jobboard/internal/api"
	"github.com/amishk599/jobboard/internal/board"
	"github.com/amishk599/jobboard/internal/config"
	"github.com/amishk599/jobboard/internal/filter"
	"github.com/amishk599/jobboard/internal/page"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Browse, apply to, and post jobs from the terminal",
	Long:  "jobboard is a terminal client for the job board API: browse and filter listings, apply to a job, or post a new one.",
	// With no subcommand, show the page picker.
	RunE:          runPicker,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBBOARD_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBBOARD_CONFIG env var > "./config.yaml".
// Only the last one may be missing, in which case defaults apply.
func loadConfig(path string) (*config.Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if path != "" {
		return config.Load(path)
	}
	if env := os.Getenv("JOBBOARD_CONFIG"); env != "" {
		return config.Load(env)
	}
	return config.LoadOrDefault("config.yaml")
}

func setupLogger(dbg bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(dbg)}))
}

// setupTUILogger returns a logger that stays off the terminal while a TUI owns
// it: the configured log file, or nothing when log.file is empty.
func setupTUILogger(cfg *config.Config, dbg bool) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel(dbg)}))
	return logger, func() { f.Close() }, nil
}

func logLevel(dbg bool) slog.Level {
	if dbg {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func newClient(cfg *config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg.API.BaseURL, api.NewHTTPClient(cfg.API.Timeout), logger)
}

func pageOptions(cfg *config.Config, pg page.Context, client *api.Client, criteria filter.Criteria, logger *slog.Logger) board.Options {
	return board.Options{
		Page:           pg,
		Client:         client,
		Filters:        criteria,
		AutoCloseDelay: cfg.UI.AutoCloseDelay,
		Logger:         logger,
	}
}

// runPage runs the TUI for whichever page opts describes.
func runPage(opts board.Options) (bool, error) {
	if opts.Page.Has(page.RegionPostForm) {
		return board.RunPostForm(opts)
	}
	return board.RunBoard(opts)
}

func runPicker(cmd *cobra.Command, args []string) error {
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

	client := newClient(cfg, tuiLogger)
	criteria := filter.Criteria{Keyword: cfg.Filters.Keyword, Location: cfg.Filters.Location}

	for {
		pg, ok, err := board.RunPagePicker(board.Pages)
		if err != nil {
			fmt.Printf("Picker error: %v\n", err)
			return nil
		}
		if !ok {
			return nil
		}

		wantQuit, err := runPage(pageOptions(cfg, pg, client, criteria, tuiLogger))
		if err != nil {
			fmt.Printf("TUI error: %v\n", err)
		}
		if wantQuit {
			return nil
		}
		// else: loop → back to picker
	}
}
