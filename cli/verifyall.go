package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/crosscheck"
)

func newVerifyAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-all",
		Short: "Re-verify all four SB15_k covers independently",
		Long: `Run the independent verifier against every registered scenario in one
batch: load each Uk target table fresh, re-derive coverage from its
SB15_k.csv, and report pass/fail per scenario without stopping at the
first failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := crosscheck.Run(dataDir)
			if err != nil {
				return err
			}

			for _, r := range rows {
				switch {
				case r.Err != nil:
					slog.Error("verification failed", "k", r.K, "err", r.Err)
				default:
					slog.Info("verification passed", "k", r.K, "rows", r.Report.TotalRows, "ids", r.Report.TotalIDs)
				}
			}

			if !crosscheck.AllOK(rows) {
				return fmt.Errorf("cli: one or more scenarios failed verification")
			}
			slog.Info("all scenarios verified")
			return nil
		},
	}
}
