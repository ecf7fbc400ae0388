package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/sha2sum"
	"github.com/bamsammich/sha2sum/internal/config"
	"github.com/bamsammich/sha2sum/internal/runner"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		algorithmStr string
		workers      int
		maxPerSecond int
		verbose      bool
		quiet        bool
		showVersion  bool
	)

	rootCmd := &cobra.Command{
		Use:   "sha2sum [flags] <file>...",
		Short: "Print SHA-2 family checksums of files",
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(os.Stdout, "sha2sum %s\n", version)
				return nil
			}

			// Load optional config file.
			cfg, err := config.Load()
			if err != nil {
				slog.Warn("failed to load config", "error", err)
			}

			// Apply config defaults for flags not explicitly set on CLI.
			applyConfigDefaults(cmd.Flags(), cfg.Defaults, &algorithmStr, &workers, &maxPerSecond)

			alg, err := sha2sum.ParseAlgorithm(algorithmStr)
			if err != nil {
				return fmt.Errorf("invalid --algorithm: %w", err)
			}

			// Configure logging.
			logLevel := slog.LevelWarn
			if verbose {
				logLevel = slog.LevelDebug
			} else if quiet {
				logLevel = slog.LevelError
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)

			slog.Debug("starting digest pass",
				"algorithm", alg, "files", len(args),
				"workers", workers, "max_per_second", maxPerSecond)

			results := runner.Run(cmd.Context(), args, runner.Config{
				Algorithm:    alg,
				Workers:      workers,
				MaxPerSecond: maxPerSecond,
			})

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					slog.Error("digest failed", "path", res.Path, "error", res.Err)
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  %s\n", res.Sum, res.Path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&algorithmStr, "algorithm", "a", "sha256",
		"digest algorithm (sha224, sha256, sha384, sha512)")
	flags.IntVar(&workers, "workers", runner.DefaultWorkers, "number of concurrent workers")
	flags.IntVar(&maxPerSecond, "max-per-second", 0, "limit files hashed per second (0 = unlimited)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")

	rootCmd.AddCommand(docsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("sha2sum failed", "error", err)
		return 1
	}
	return 0
}

// applyConfigDefaults overwrites flag values from the config file, but
// only for flags the user did not set on the command line.
func applyConfigDefaults(
	flags *pflag.FlagSet,
	defaults config.DefaultsConfig,
	algorithmStr *string,
	workers *int,
	maxPerSecond *int,
) {
	if !flags.Changed("algorithm") && defaults.Algorithm != nil {
		*algorithmStr = *defaults.Algorithm
	}
	if !flags.Changed("workers") && defaults.Workers != nil {
		*workers = *defaults.Workers
	}
	if !flags.Changed("max-per-second") && defaults.MaxPerSecond != nil {
		*maxPerSecond = *defaults.MaxPerSecond
	}
}
