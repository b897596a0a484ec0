// Package costreport turns each scenario's chosen-row count into a
// financial line item, the Go analogue of
// original_source/calcular_custo_sb.py: count lines in SB15_k.csv, multiply
// by a unit price, and note whether the file was present at all.
package costreport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/scenario"
)

// Row is one scenario's cost line item.
type Row struct {
	Label   string
	Lines   int
	CostCts int64 // total cost in integer cents, avoiding float accumulation
	Present bool
}

// Run counts rows in each scenario's SB15_k.csv under dataDir and prices
// them at unitPriceCents cents per row. A missing file is recorded with
// Present=false rather than failing the whole report, matching the
// original's per-row "arquivo ausente" handling.
func Run(dataDir string, unitPriceCents int64) ([]Row, error) {
	scenarios, err := scenario.All()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(scenarios))
	for _, sc := range scenarios {
		label := fmt.Sprintf("SB15_%d", sc.K)
		path := filepath.Join(dataDir, sc.ScenarioDir, label+".csv")

		n, err := countRows(path)
		if os.IsNotExist(err) {
			rows = append(rows, Row{Label: label, Present: false})
			continue
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Label:   label,
			Lines:   n,
			CostCts: int64(n) * unitPriceCents,
			Present: true,
		})
	}
	return rows, nil
}

func countRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReaderSize(f, 1<<20))
	r.ReuseRecord = true
	n := 0
	for {
		_, err := r.Read()
		if err != nil {
			break
		}
		n++
	}
	return n, nil
}

// TotalCents sums the cost of every present row.
func TotalCents(rows []Row) int64 {
	var total int64
	for _, r := range rows {
		if r.Present {
			total += r.CostCts
		}
	}
	return total
}

// FormatCents renders integer cents as a "123.45" decimal string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// WriteCSV writes rows to path as a four-column report, mirroring
// calcular_custo_sb.py's resultado_custo_sb.csv.
func WriteCSV(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.IOError("costreport: mkdir", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.IOError("costreport: create "+path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"sb", "lines", "cost", "status"}); err != nil {
		return errs.IOError("costreport: write header", err)
	}
	for _, r := range rows {
		status := "OK"
		lines := fmt.Sprintf("%d", r.Lines)
		cost := FormatCents(r.CostCts)
		if !r.Present {
			status = "MISSING"
			lines, cost = "-", "-"
		}
		if err := w.Write([]string{r.Label, lines, cost, status}); err != nil {
			return errs.IOError("costreport: write row", err)
		}
	}
	w.Flush()
	return w.Error()
}
