package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/benchdriver"
)

func newBenchCmd() *cobra.Command {
	var (
		n int
		k int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark table generation for a given (n,k)",
		Long: `Generate a Uk table via combgen while sampling wall time, throughput,
output size, and peak RSS, then append the result to bench.csv under the
data directory.`,
		Example: "  covercore bench --n 15 --k 13",
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath := filepath.Join(dataDir, fmt.Sprintf("S%d.csv", k))
			result, err := benchdriver.Run(outPath, n, k)
			if err != nil {
				return err
			}

			slog.Info("bench complete",
				"k", result.K, "rows", result.Rows,
				"elapsed", result.Elapsed, "rows_per_s", result.RowsPerSecond(),
				"output_bytes", result.OutputBytes, "peak_rss_bytes", result.PeakRSSBytes,
			)

			logPath := filepath.Join(dataDir, "bench.csv")
			if err := benchdriver.AppendLog(logPath, result); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 25, "universe size")
	cmd.Flags().IntVar(&k, "k", 15, "subset size")
	return cmd
}
