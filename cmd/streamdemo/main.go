// Command streamdemo runs the stream walkthrough: every scenario is evaluated
// in order and its result logged as a structured line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/bootstrap"
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/internal/scenarios"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/version"
)

type flags struct {
	configFile string
	envFile    string
	seed       int
	count      int
	trace      bool
	only       []string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Run the lazy stream walkthrough",
		Long: `streamdemo evaluates every scenario of the stream walkthrough and logs
each result. Settings come from cmd/streamdemo/config.yml, .env files and
environment variables (DEMO_SEED, OBSERVABILITY_ENABLED, ...); flags win.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, f.only)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("{{.Version}}\n")

	fl := root.Flags()
	fl.StringVar(&f.configFile, "config", "", "config file (default: resolved from cmd/streamdemo/config.yml)")
	fl.StringVar(&f.envFile, "env-file", "", "env file (default: resolved .env.streamdemo or .env)")
	fl.IntVar(&f.seed, "seed", 0, "first number considered by the compute scenario; 0 uses the default (100)")
	fl.IntVar(&f.count, "count", 0, "how many numbers the compute scenario totals; 0 uses the default (3)")
	fl.BoolVar(&f.trace, "trace", false, "log every element of the traced scenario at debug level")
	fl.StringSliceVar(&f.only, "only", nil, "run only the named scenarios")

	root.AddCommand(newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scenarios in run order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := &StreamDemoConfig{}
			cfg.ApplyDefaults()
			for _, name := range scenarios.Names(cfg.options(nil)) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// loadConfig reads the config files and environment, then applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*StreamDemoConfig, error) {
	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}

	cfg := &StreamDemoConfig{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Demo.Seed = f.seed
	}
	if fl.Changed("count") {
		cfg.Demo.Count = f.count
	}
	if fl.Changed("trace") {
		cfg.Demo.Trace = f.trace
	}
	if cfg.Demo.Trace && cfg.Logging.Level != "debug" && cfg.Logging.Level != "trace" {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func (c *StreamDemoConfig) options(only []string) scenarios.Options {
	return scenarios.Options{
		Seed:  c.Demo.Seed,
		Count: c.Demo.Count,
		Trace: c.Demo.Trace,
		Only:  only,
	}
}

func run(ctx context.Context, cfg *StreamDemoConfig, only []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}

	var metrics *observability.StreamMetrics
	if cfg.Observability.Enabled {
		app.OnStart(func(ctx context.Context) error {
			providers, m, err := observability.Setup(ctx, cfg.ExporterConfig())
			if err != nil {
				return err
			}
			app.OnStop(providers.Shutdown)
			metrics = m
			return nil
		})
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		if metrics != nil {
			ctx = observability.WithMetrics(ctx, metrics)
		}
		_, err := scenarios.Run(ctx, cfg.options(only), app.Logger)
		return err
	})
}
