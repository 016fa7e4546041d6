package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/statements-tracker/internal/aggregate"
	"github.com/joseph-ayodele/statements-tracker/internal/common"
	"github.com/joseph-ayodele/statements-tracker/internal/export"
	"github.com/joseph-ayodele/statements-tracker/internal/extract"
	"github.com/joseph-ayodele/statements-tracker/internal/pipeline"
	"github.com/joseph-ayodele/statements-tracker/internal/profile"
	"github.com/joseph-ayodele/statements-tracker/internal/report"
)

var (
	dirFlag      string
	outFlag      string
	profilesFlag string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a directory of statement PDFs and write the summary workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd.Context())
	},
}

func init() {
	runCmd.Flags().StringVar(&dirFlag, "dir", "", "directory of statement PDFs to process (required)")
	runCmd.Flags().StringVar(&outFlag, "out", "", "output XLSX path (defaults to <dir>/../<output name>)")
	runCmd.Flags().StringVar(&profilesFlag, "profiles", "", "profile calibration JSON file (optional)")
	_ = runCmd.MarkFlagRequired("dir")
}

func runBatch(ctx context.Context) error {
	cfg := common.LoadConfig()

	level := slog.LevelInfo
	if verbose || cfg.Log.Level == "debug" {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	out := outFlag
	if out == "" {
		out = filepath.Join(filepath.Dir(dirFlag), cfg.Batch.OutputName)
	}

	profiles := profile.Builtin()
	calibrationPath := profilesFlag
	if calibrationPath == "" {
		calibrationPath = cfg.Batch.ProfilesPath
	}
	if calibrationPath != "" {
		cal, err := profile.LoadCalibration(calibrationPath)
		if err != nil {
			return err
		}
		if err := profiles.Apply(cal); err != nil {
			return err
		}
		logger.Info("calibration applied", "path", calibrationPath)
	}

	source := extract.NewPDFSource(cfg.Batch.MaxPages, logger)
	processor := pipeline.NewProcessor(source, profiles, logger)
	runner := pipeline.NewRunner(processor, logger)

	runID := uuid.New()
	results, err := runner.Run(ctx, runID, dirFlag, cfg.Batch.IncludeExts)
	if err != nil {
		return err
	}

	rep := aggregate.Build(runID, results)

	svc := export.NewService(logger)
	if err := svc.WriteReport(rep, out); err != nil {
		return err
	}

	report.PrintSummary(os.Stdout, rep)
	fmt.Fprintf(os.Stdout, "\nResults saved to: %s\n", out)
	return nil
}
