// Package cli wires the covercore command tree, grounded on the cobra +
// log/slog root/subcommand pattern used throughout the blueprint CLIs
// (cli/root.go + cli/serve.go): a root command holding persistent flags,
// one subcommand per operation, and a structured logger configured once at
// the root before any subcommand's RunE runs.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	dataDir string
	verbose bool
)

// Execute builds and runs the covercore command tree against ctx.
func Execute(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:   "covercore",
		Short: "covercore - greedy set-cover engine for Lotofácil subset coverage",
		Long: `covercore builds small SB15_k subfamilies of 15-symbol rows over a
25-symbol universe that dominate every size-k subset, for k = 14, 13, 12, 11.

It streams each candidate pool once into a lazy max-heap keyed by marginal
coverage gain, drains it greedily until the target universe is fully
covered, and independently re-verifies the result before it is trusted.`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./resultados", "directory holding Sk.csv target tables and scenario output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(
		newCoverCmd(14),
		newCoverCmd(13),
		newCoverCmd(12),
		newCoverCmd(11),
		newVerifyAllCmd(),
		newCostCmd(),
		newGenerateCmd(),
		newPackCmd(),
		newBenchCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
