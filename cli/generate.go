package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmarques/covercore/internal/combgen"
)

func newGenerateCmd() *cobra.Command {
	var (
		n      int
		k      int
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Uk table at small scale",
		Long: `Write every k-combination of {1,...,n}, in lexicographic order, as a
CSV table. Bounded to combgen.MaxRows rows; production-scale generation
(the full 25-symbol universe) is produced by the external pipeline this
tool verifies and reports on, not by this subcommand.`,
		Example: "  covercore generate --n 15 --k 13 -o ./resultados/S13.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := combgen.Generate(f, n, k)
			if err != nil {
				return err
			}
			slog.Info("generated table", "n", n, "k", k, "rows", rows, "path", output)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 25, "universe size")
	cmd.Flags().IntVar(&k, "k", 15, "subset size")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (required)")
	cmd.MarkFlagRequired("output")
	return cmd
}
