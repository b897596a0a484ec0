// Package targetindex builds the dense mask -> id mapping for a target
// universe Uₖ (spec §4.2). It is the set-cover analogue of the teacher
// library's packed-integer symbol table: instead of mapping a byte string to
// a learned code, it maps a 25-bit subset mask to its 0-based position in
// the Uₖ input stream.
package targetindex

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/lmarques/covercore/internal/bitmask"
	"github.com/lmarques/covercore/internal/errs"
)

// Index supports mask -> id lookup in expected O(1). Ids are assigned in
// input order; the mapping is bijective by construction (Load rejects
// duplicate masks as an InputError, per spec §4.2 and Open Question 2).
type Index struct {
	ids map[uint32]int32
	k   int
}

// Len returns |Uₖ|, the number of distinct masks indexed.
func (idx *Index) Len() int { return len(idx.ids) }

// K returns the subset size this index was built for.
func (idx *Index) K() int { return idx.k }

// Lookup returns the dense id for mask, or ok=false if mask is absent.
func (idx *Index) Lookup(mask uint32) (int32, bool) {
	id, ok := idx.ids[mask]
	return id, ok
}

// Load reads a Uₖ CSV file (one ascending k-tuple of integers per line) and
// builds the dense index. A malformed line, an out-of-range or duplicate
// symbol, or a repeated mask fails with errs.ErrInput naming path and line.
func Load(path string, k int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IOError("targetindex: open "+path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReaderSize(f, 1<<20))
	r.ReuseRecord = true

	idx := &Index{ids: make(map[uint32]int32), k: k}
	symbols := make([]int, k)

	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.IOError("targetindex: read "+path, err)
		}
		line++

		if len(rec) != k {
			return nil, errs.InputErrorf(path, line, "expected %d symbols, got %d", k, len(rec))
		}
		for i, tok := range rec {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errs.InputErrorf(path, line, "non-integer token %q", tok)
			}
			symbols[i] = v
		}
		mask, err := bitmask.MaskOf(symbols)
		if err != nil {
			return nil, errs.InputErrorf(path, line, "%v", err)
		}
		if _, exists := idx.ids[mask]; exists {
			return nil, errs.InputErrorf(path, line, "duplicate mask in U%d", k)
		}
		idx.ids[mask] = int32(line - 1)
	}
	return idx, nil
}
