package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/app"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/config"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/infrastructure"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/services"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	configFile string
	dataFile   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "NBA salary dashboard",
		Long:         "Loads the NBA player salary table and serves the dashboard views over HTTP or prints them as JSON.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file (default: $"+config.ConfigFileEnv+", config.yaml, configs/config.yaml)")
	root.PersistentFlags().StringVarP(&opts.dataFile, "data", "d", "", "salary table to load (overrides data.input_file)")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig applies the command-line overrides on top of the file and environment
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.LoadFrom(o.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if o.dataFile != "" {
		cfg.Data.InputFile = o.dataFile
	}
	return cfg, nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger, err := infrastructure.InitializeLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer infrastructure.CloseLogFile()

			application, err := app.NewApplication(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("Failed to initialize application", slog.String("error", err.Error()))
				return err
			}

			if err := application.Run(cmd.Context()); err != nil {
				logger.Error("Application error", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		teams     []string
		positions []string
		view      string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard, or one view of it, as JSON",
		Example: `  dashboard summary
  dashboard summary --team Lakers --team Celtics --view salary-by-position
  dashboard summary --position Guard --view overview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx := infrastructure.EnsureTraceID(cmd.Context())

			// diagnostics go to stderr so stdout stays valid JSON
			logger := infrastructure.NewLogger(cfg.Logging, cmd.ErrOrStderr())

			ds, err := app.LoadDataset(ctx, cfg, logger)
			if err != nil {
				return err
			}
			svc, err := services.NewDashboardService(ds, nil, nil, logger)
			if err != nil {
				return err
			}

			// an omitted flag means every value
			sel := domain.AllSelected()
			if cmd.Flags().Changed("team") {
				sel.Teams = nonNil(teams)
			}
			if cmd.Flags().Changed("position") {
				sel.Positions = nonNil(positions)
			}

			var result any
			if view == "" {
				result, err = svc.RecomputeAll(ctx, sel)
			} else {
				result, err = svc.View(ctx, view, sel)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringSliceVarP(&teams, "team", "t", nil, "team to include (repeatable or comma-separated)")
	cmd.Flags().StringSliceVar(&positions, "position", nil, "position to include (repeatable or comma-separated)")
	cmd.Flags().StringVar(&view, "view", "", "print a single view instead of the whole dashboard")
	return cmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), contracts.GetVersionInfo())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), contracts.GetFullVersionString())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
