// Package combgen generates Uₖ tables at small scale: the lexicographic
// combination enumerator behind original_source/lotogen.py's
// generate_combinations, reworked from a one-shot script into a reusable
// streaming writer. Production-scale generation (k=15 down to 11 over the
// full 25-symbol universe) stays out of scope per the distilled
// specification; combgen exists so scenarios can be rebuilt or spot-checked
// at a size a test can run.
package combgen

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lmarques/covercore/internal/errs"
)

// MaxRows caps the number of rows Generate will stream before refusing,
// guarding against an accidental production-scale invocation (e.g. n=25,
// k=11 would emit 4,457,400 rows) through this small-scale entry point.
const MaxRows = 1_000_000

// Choose returns C(n, k), the row count Generate would emit.
func Choose(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}

// Generate writes every k-combination of {1,...,n}, in lexicographic order,
// as one CSV record per line to w.
func Generate(w io.Writer, n, k int) (int64, error) {
	if n < 1 || k < 1 || k > n {
		return 0, errs.InputErrorf("combgen", 0, "invalid n=%d k=%d", n, k)
	}
	total := Choose(n, k)
	if total > MaxRows {
		return 0, errs.InputErrorf("combgen", 0, "C(%d,%d)=%d exceeds MaxRows=%d; use the production pipeline", n, k, total, MaxRows)
	}

	bw := bufio.NewWriterSize(w, 1<<16)
	cw := csv.NewWriter(bw)

	combo := make([]int, k)
	for i := range combo {
		combo[i] = i + 1
	}

	var written int64
	rec := make([]string, k)
	for {
		for i, v := range combo {
			rec[i] = fmt.Sprintf("%d", v)
		}
		if err := cw.Write(rec); err != nil {
			return written, errs.IOError("combgen: write row", err)
		}
		written++

		// Advance to the next combination in lexicographic order, or stop.
		i := k - 1
		for i >= 0 && combo[i] == n-k+i+1 {
			i--
		}
		if i < 0 {
			break
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, errs.IOError("combgen: flush", err)
	}
	if err := bw.Flush(); err != nil {
		return written, errs.IOError("combgen: flush", err)
	}
	if written != total {
		return written, errs.InputErrorf("combgen", 0, "generated %d rows, expected C(%d,%d)=%d", written, n, k, total)
	}
	return written, nil
}
