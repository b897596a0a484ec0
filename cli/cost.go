package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/costreport"
)

func newCostCmd() *cobra.Command {
	var unitPriceCents int64

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Report row counts and cost across all scenarios",
		Long: `Count the rows in each scenario's SB15_k.csv, price them at a
per-row unit cost, and write a consolidated report to
resultado_custo_sb.csv under the data directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := costreport.Run(dataDir, unitPriceCents)
			if err != nil {
				return err
			}

			for _, r := range rows {
				if !r.Present {
					slog.Warn("scenario output missing", "sb", r.Label)
					continue
				}
				slog.Info("cost line", "sb", r.Label, "lines", r.Lines, "cost", costreport.FormatCents(r.CostCts))
			}

			outPath := filepath.Join(dataDir, "prog7_saida", "resultado_custo_sb.csv")
			if err := costreport.WriteCSV(outPath, rows); err != nil {
				return err
			}
			fmt.Printf("total: %s (written to %s)\n", costreport.FormatCents(costreport.TotalCents(rows)), outPath)
			return nil
		},
	}

	cmd.Flags().Int64Var(&unitPriceCents, "unit-price-cents", 300, "price per SB15_k row, in cents")
	return cmd
}
