package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobboard/internal/form"
)

var (
	applyJobID  int64
	applyFields form.ApplyFields
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a job without the TUI",
	Long:  "Submits one application for --job. Name and email are required; the outcome message is printed.",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().Int64Var(&applyJobID, "job", 0, "job ID to apply to (required)")
	applyCmd.Flags().StringVar(&applyFields.Name, "name", "", "applicant name")
	applyCmd.Flags().StringVar(&applyFields.Email, "email", "", "applicant email")
	applyCmd.Flags().StringVar(&applyFields.ResumeURL, "resume", "", "resume URL")
	applyCmd.Flags().StringVar(&applyFields.CoverLetter, "cover", "", "cover letter")
	_ = applyCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	app, err := applyFields.Application(applyJobID)
	if err != nil {
		fmt.Println(form.ApplyOutcome(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = newClient(cfg, logger).Apply(ctx, app)
	if err != nil && form.IsTransport(err) {
		logger.Error("submit application failed", "job_id", applyJobID, "error", err)
	}
	fmt.Println(form.ApplyOutcome(err))
	if err != nil {
		os.Exit(1)
	}
	return nil
}
