package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/expander"
	"github.com/lmarques/covercore/internal/recorder"
	"github.com/lmarques/covercore/internal/scenario"
	"github.com/lmarques/covercore/internal/selector"
	"github.com/lmarques/covercore/internal/targetindex"
	"github.com/lmarques/covercore/internal/verifier"
)

// newCoverCmd builds the `cover<k>` subcommand for one of the four
// registered scenarios (spec §6). It runs selector, verifier, and recorder
// in sequence: a chosen cover is never trusted or logged until an
// independent re-expansion confirms it is total.
func newCoverCmd(k int) *cobra.Command {
	var stream bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("cover%d", k),
		Short: fmt.Sprintf("Build SB15_%d: a greedy cover of U%d", k, k),
		Long: fmt.Sprintf(`Stream the U15 candidate pool once, greedily selecting rows by lazy
max-heap until every size-%d subset of the 25-symbol universe is covered,
then write the chosen rows to SB15_%d.csv under the scenario directory and
independently re-verify the cover before exiting.`, k, k),
		Example: fmt.Sprintf("  covercore cover%d --data-dir ./resultados", k),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.ForK(k)
			if err != nil {
				return err
			}

			skPath := filepath.Join(dataDir, fmt.Sprintf("S%d.csv", k))
			s15Path := filepath.Join(dataDir, "S15.csv")

			slog.Info("loading target index", "k", k, "path", skPath)
			idx, err := targetindex.Load(skPath, k)
			if err != nil {
				return err
			}
			slog.Info("target index loaded", "k", k, "ids", idx.Len())

			start := time.Now()
			res, err := selector.Run(s15Path, idx, sc, selector.Options{StoreAll: !stream})
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			outDir := filepath.Join(dataDir, sc.ScenarioDir)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			outPath := filepath.Join(outDir, fmt.Sprintf("SB15_%d.csv", k))
			if err := writeRows(outPath, res.Chosen); err != nil {
				return err
			}

			slog.Info("verifying cover", "k", k, "path", outPath)
			vidx, err := targetindex.Load(skPath, k)
			if err != nil {
				return err
			}
			if _, err := verifier.Verify(outPath, vidx, k, sc.RowSize); err != nil {
				return err
			}
			slog.Info("cover verified", "k", k)

			// Pico_RAM(MB) is one RSS sample taken here, after verification;
			// it is not a running maximum over the run.
			metrics := recorder.NewMetrics(sc, len(res.Chosen), elapsed, recorder.SampleRSS(int32(os.Getpid())))
			slog.Info("cover complete", "summary", recorder.Summary(metrics))

			logPath := filepath.Join(outDir, fmt.Sprintf("cover%d_log.csv", k))
			if err := recorder.Append(logPath, metrics); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "recompute each row's expansion on pop instead of caching it up front")
	return cmd
}

func writeRows(path string, rows []expander.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, row := range rows {
		if _, err := f.WriteString(row.Line + "\n"); err != nil {
			return err
		}
	}
	return nil
}
