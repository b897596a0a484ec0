// Package verifier independently re-checks a chosen SB15_k.csv against its
// Uₖ target set (spec §4.5), sharing no state with the selector that
// produced it. It is the Go analogue of original_source/verify_all.py's
// verify_k: load Uₖ into a fresh index, derive every sub-mask of every
// candidate row, and confirm the union is total.
package verifier

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/expander"
	"github.com/lmarques/covercore/internal/targetindex"
)

// Report is the outcome of one verification pass.
type Report struct {
	K          int
	RowSize    int
	TotalRows  int
	TotalIDs   int64
	MissingIDs int64
	OK         bool
}

// Verify re-derives coverage of idx (the already-loaded Uₖ target index)
// from the candidate rows in sb15Path, independently of any cached gains or
// selection decisions the selector made. A non-total cover returns a Report
// with OK=false and a wrapped ErrVerificationFailed rather than panicking,
// so a caller can choose to log-and-continue across a batch (spec §4.5 and
// crosscheck).
func Verify(sb15Path string, idx *targetindex.Index, k, rowSize int) (Report, error) {
	omissions := expander.Omissions(rowSize, k)

	f, err := os.Open(sb15Path)
	if err != nil {
		return Report{}, errs.IOError("verifier: open "+sb15Path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReaderSize(f, 1<<20))
	r.ReuseRecord = true

	covered := bitset.New(uint(idx.Len()))
	rowID := int32(0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Report{}, errs.IOError("verifier: read "+sb15Path, err)
		}

		symbols := make([]int, len(rec))
		for i, tok := range rec {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return Report{}, errs.InputErrorf(sb15Path, int(rowID)+1, "non-integer token %q", tok)
			}
			symbols[i] = v
		}

		row, err := expander.NewRow(rowID, symbols, expander.JoinLine(rec), sb15Path, int(rowID)+1, rowSize)
		if err != nil {
			return Report{}, err
		}

		ids, err := expander.Expand(row, idx, omissions)
		if err != nil {
			return Report{}, err
		}
		for _, id := range ids {
			covered.Set(uint(id))
		}
		rowID++
	}

	total := int64(idx.Len())
	missing := total - int64(covered.Count())
	report := Report{
		K:          k,
		RowSize:    rowSize,
		TotalRows:  int(rowID),
		TotalIDs:   total,
		MissingIDs: missing,
		OK:         missing == 0,
	}
	if !report.OK {
		return report, errs.VerificationFailedf(k, missing)
	}
	return report, nil
}
