package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"watchface-monitor/internal/config"
	"watchface-monitor/internal/modules/devices"
	"watchface-monitor/internal/modules/fetcher"
	"watchface-monitor/internal/modules/persistence"
	"watchface-monitor/internal/modules/pipeline"
	"watchface-monitor/internal/modules/renderer"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	outputPath  string
	targets     string
	devicesFile string
	endpoint    string
	timeout     time.Duration
	timezone    string
)

var rootCmd = &cobra.Command{
	Use:   "watchface-monitor",
	Short: "Report newly listed watch faces as an HTML email body",
	Long: `Queries the watch face catalog once per monitored device and renders the
listed items into a static HTML document for a mail sender to pick up.`,
	SilenceUsage: true,
}

// Execute runs the root command with the loaded configuration and logger.
func Execute(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}
		return run(ctx, cfg, logger)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.Error("execution failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the generated email body (env OUTPUT_PATH)")
	rootCmd.Flags().StringVarP(&targets, "devices", "d", "", "Comma-separated device identifiers to monitor (env TARGET_TYPES)")
	rootCmd.Flags().StringVar(&devicesFile, "device-file", "", "YAML device table replacing the built-in one (env DEVICES_FILE)")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "Catalog listing URL (env CATALOG_URL)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (env FETCH_TIMEOUT)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "", "IANA time zone for report dates (env REPORT_TIMEZONE)")
	pflag.CommandLine.AddFlagSet(rootCmd.Flags())
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputPath = outputPath
	}
	if flags.Changed("devices") {
		cfg.Targets = config.ParseTargets(targets)
	}
	if flags.Changed("device-file") {
		cfg.DevicesFile = devicesFile
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if flags.Changed("timeout") {
		if timeout <= 0 {
			return fmt.Errorf("invalid --timeout: must be positive, got %s", timeout)
		}
		cfg.Timeout = timeout
	}
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
	return nil
}

// run fetches every target, renders the report and writes it to the output path.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	reg := devices.Default()
	if cfg.DevicesFile != "" {
		var err error
		if reg, err = devices.LoadFile(cfg.DevicesFile); err != nil {
			return err
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger.Info("starting catalog check",
		zap.Strings("devices", cfg.Targets),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("output", cfg.OutputPath))

	p := pipeline.New(logger)
	p.AddStage("fetch", fetcher.New(fetcher.WithEndpoint(cfg.Endpoint), fetcher.WithTimeout(cfg.Timeout)))
	p.AddStage("render", renderer.New(reg, renderer.WithLocation(loc)))
	p.AddStage("persist", persistence.New(cfg.OutputPath))

	if _, err := p.Run(ctx, cfg.Targets); err != nil {
		return fmt.Errorf("catalog check failed: %w", err)
	}
	logger.Info("processing completed gracefully")
	return nil
}
