// Package main is the entry point for macwrap.
// It loads configuration, builds the recap, and runs the Bubble Tea deck.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-veylop/macwrap/internal/app"
	"github.com/j-veylop/macwrap/internal/config"
	"github.com/j-veylop/macwrap/internal/export"
	"github.com/j-veylop/macwrap/internal/ingest"
	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/recap"
	"github.com/j-veylop/macwrap/internal/services"
	"github.com/j-veylop/macwrap/internal/ui/panels"
	"github.com/j-veylop/macwrap/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var year int

	root := &cobra.Command{
		Use:   "macwrap",
		Short: "Your year on the Mac, unwrapped",
		Long: `macwrap reads the local Screen Time store and plays back a year of Mac usage
as a deck of slides in the terminal.

Keyboard Shortcuts:
  Space/Enter/→   Next slide
  ←/Backspace     Previous slide
  r               Rebuild the recap
  ?               Toggle help
  q, Ctrl+C       Quit

Configuration is read from .env in the current directory or
~/.config/macwrap/.env, then from the environment (MACWRAP_YEAR,
SCREEN_TIME_DB, HISTORY_FILES, SOUNDS_DIR, LOG_PATH, LOG_LEVEL, ...).`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(year)
			if err != nil {
				return err
			}
			defer closeLog()
			return runTUI(cfg)
		},
	}
	root.SetVersionTemplate(version.Info() + "\n")
	root.PersistentFlags().IntVar(&year, "year", 0, "year to recap (default: MACWRAP_YEAR or the current year)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newExportCmd(&year))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}

func newExportCmd(year *int) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build the recap and write it as JSON or YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, closeLog, err := setup(*year)
			if err != nil {
				return err
			}
			defer closeLog()

			report, err := buildReport(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return writeExport(cmd.OutOrStdout(), output, report, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}

// writeExport writes the report to stdout, or to the output file when one is
// named. The file is closed before returning so a failed flush is reported.
func writeExport(stdout io.Writer, output string, report models.AnnualReport, f export.Format) error {
	if output == "" || output == "-" {
		return export.Write(stdout, report, f)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := export.Write(file, report, f); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", output, err)
	}
	return nil
}

// setup loads configuration, applies the --year override and sends logs to
// the configured file. The returned func closes the log file.
func setup(year int) (*config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if year != 0 {
		cfg.Year = year
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.Setup(logFile, cfg.LogLevel)
	logger.Info("Starting macwrap", "version", version.GetVersion(), "year", cfg.Year)

	return cfg, func() { _ = logFile.Close() }, nil
}

func newIngester(cfg *config.Config) *ingest.Ingester {
	return ingest.New(ingest.Options{
		SourcePath:    cfg.SourcePath,
		HistoryFiles:  cfg.HistoryFiles,
		MdfindTimeout: cfg.MdfindTimeout,
		PmsetTimeout:  cfg.PmsetTimeout,
	}, nil)
}

// buildReport builds the recap without the service manager.
func buildReport(ctx context.Context, cfg *config.Config) (models.AnnualReport, error) {
	ctx, cancel := context.WithTimeout(ctx, app.BuildTimeout)
	defer cancel()

	report, err := recap.Build(newIngester(cfg).Collect(ctx, cfg.Year))
	if err != nil {
		return models.AnnualReport{}, fmt.Errorf("failed to build recap: %w", err)
	}
	return report, nil
}

func runTUI(cfg *config.Config) error {
	svcManager, err := services.NewManager(services.Options{
		SourcePath:   cfg.SourcePath,
		SoundsDir:    cfg.SoundsDir,
		Year:         cfg.Year,
		EnableSound:  cfg.EnableSound,
		EnableNotify: cfg.EnableNotify,
		WatchSource:  cfg.WatchSource,
	}, newIngester(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("Error closing services", "error", closeErr)
		}
	}()

	model := app.NewModel(svcManager)
	model.SetPanels(panels.Deck(model.GetState(), cfg.Year))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(tea.Quit())
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
