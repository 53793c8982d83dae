package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/storefront-console/internal/app"
	"github.com/samvad-hq/storefront-console/internal/config"
	"github.com/samvad-hq/storefront-console/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "console failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newRootCmd(cfg, log).ExecuteContext(ctx)
}

func newRootCmd(cfg *config.Config, log *logger.ZapLogger) *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "Admin console for the storefront REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "Base URL of the storefront API")

	root.AddCommand(newServeCmd(cfg, log), newSmokeCmd(cfg, log), newDemoAPICmd(cfg, log))
	return root
}

func newServeCmd(cfg *config.Config, log *logger.ZapLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.InfoObj("console starting", "config", cfg)

			console, err := app.NewConsole(cmd.Context(), cfg, log)
			if err != nil {
				logger.ErrorObj("failed to initialize console", "error", err.Error())
				return err
			}
			if err := console.Run(cmd.Context()); err != nil {
				return fmt.Errorf("console run: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "Address the console listens on")
	cmd.Flags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Activity journal backend (none or bbolt)")
	return cmd
}

func newSmokeCmd(cfg *config.Config, log *logger.ZapLogger) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run a create, read, update, delete cycle against the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewService(cfg, nil, nil, log)
			report, runErr := app.Smoke(cmd.Context(), svc, log)
			if err := printSmokeReport(cmd.OutOrStdout(), report, cfg.APIBaseURL, jsonOutput); err != nil {
				return err
			}
			if runErr != nil {
				logger.WarnObj("smoke run failed", "smoke_failed", report.Failed)
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}

func newDemoAPICmd(cfg *config.Config, log *logger.ZapLogger) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "demo-api",
		Short: "Serve an in-memory storefront API for trying the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunDemoAPI(cmd.Context(), cfg, seed, log)
		},
	}
	cmd.Flags().StringVar(&cfg.DemoAPIAddr, "addr", cfg.DemoAPIAddr, "Address the demo API listens on")
	cmd.Flags().BoolVar(&seed, "seed", true, "Start with a small sample catalogue")
	return cmd
}

func printSmokeReport(w io.Writer, report app.SmokeReport, baseURL string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "Smoke run against %s\n", baseURL)
	for _, st := range report.Steps {
		mark := "✓"
		if !st.Passed() {
			mark = "✗"
		}
		line := fmt.Sprintf("%s %-22s %-10s %4d ms", mark, st.Operation, st.Kind, st.DurationMs)
		if st.Message != "" {
			line += "  " + st.Message
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%d steps, %d failed\n", len(report.Steps), report.Failed)
	return nil
}
