// Package crosscheck runs verifier.Verify across every registered scenario
// in one pass, the Go analogue of original_source/verify_all.py's main:
// load each Uₖ, independently re-derive coverage from its SB15_k.csv, and
// report per-scenario pass/fail rather than stopping at the first failure.
package crosscheck

import (
	"fmt"
	"path/filepath"

	"github.com/lmarques/covercore/internal/scenario"
	"github.com/lmarques/covercore/internal/targetindex"
	"github.com/lmarques/covercore/internal/verifier"
)

// Row is one scenario's cross-check outcome.
type Row struct {
	K      int
	Report verifier.Report
	Err    error
}

// Run verifies every scenario returned by scenario.All. dataDir is the root
// containing each scenario's Sk.csv (target index) and, under
// scenario.ScenarioDir, its SB15_k.csv (chosen cover). A scenario whose
// verification fails is recorded as a failing Row, not a fatal error, so the
// full batch always completes (spec cross-check semantics).
func Run(dataDir string) ([]Row, error) {
	scenarios, err := scenario.All()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(scenarios))
	for _, sc := range scenarios {
		skPath := filepath.Join(dataDir, fmt.Sprintf("S%d.csv", sc.K))
		sbPath := filepath.Join(dataDir, sc.ScenarioDir, fmt.Sprintf("SB15_%d.csv", sc.K))

		idx, err := targetindex.Load(skPath, sc.K)
		if err != nil {
			rows = append(rows, Row{K: sc.K, Err: err})
			continue
		}

		report, err := verifier.Verify(sbPath, idx, sc.K, sc.RowSize)
		rows = append(rows, Row{K: sc.K, Report: report, Err: err})
	}
	return rows, nil
}

// AllOK reports whether every row in rows passed.
func AllOK(rows []Row) bool {
	for _, r := range rows {
		if r.Err != nil || !r.Report.OK {
			return false
		}
	}
	return true
}
