package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/pack"
	"github.com/lmarques/covercore/internal/scenario"
)

func newPackCmd() *cobra.Command {
	var (
		k      int
		output string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Archive one scenario's output directory as tar.gz",
		Long: `Archive every file in a scenario's output directory (SB15_k.csv and
any recorded logs) into a single gzip-compressed tar, for handing off a
single scenario's results without bundling the whole data directory.`,
		Example: "  covercore pack --scenario 13 -o ./resultados/prog3_saida.tar.gz",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.ForK(k)
			if err != nil {
				return err
			}
			srcDir := filepath.Join(dataDir, sc.ScenarioDir)

			man, err := pack.Dir(srcDir, output)
			if err != nil {
				return err
			}
			slog.Info("archive written", "path", man.ArchivePath, "entries", len(man.Entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&k, "scenario", 14, "scenario k to archive (14, 13, 12, or 11)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output archive path (required)")
	cmd.MarkFlagRequired("output")
	return cmd
}
