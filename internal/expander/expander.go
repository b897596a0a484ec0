// Package expander derives, for a candidate row of a fixed row size, the
// ids of the smaller target subsets it covers (spec §4.3). The production
// scenarios all use row size 15 (spec §1), but row size is threaded through
// explicitly rather than hardcoded so the same code path also exercises the
// spec §8 toy-universe boundary case (row size 3, target size 2). The
// omission enumeration is lexicographic and deterministic, matching the
// combinatorial derivation in original_source/verify_all.py and
// programa3.py's cover_ids.
package expander

import (
	"strings"

	"github.com/lmarques/covercore/internal/bitmask"
	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/targetindex"
)

// Row is a candidate element of the row universe: its symbols and mask, a
// precomputed per-position bit table for branch-free sub-mask derivation,
// and the verbatim source line so SB15_k output can echo it unchanged
// (spec §3).
type Row struct {
	RowID   int32
	Symbols []int
	Mask    uint32
	Bits    []uint32
	Line    string
}

// NewRow builds a Row from a rowSize-symbol line read at 1-based position
// lineNo of path (path/lineNo are used only to annotate errors).
func NewRow(rowID int32, symbols []int, line, path string, lineNo, rowSize int) (Row, error) {
	if len(symbols) != rowSize {
		return Row{}, errs.InputErrorf(path, lineNo, "expected %d symbols, got %d", rowSize, len(symbols))
	}
	mask, err := bitmask.MaskOf(symbols)
	if err != nil {
		return Row{}, errs.InputErrorf(path, lineNo, "%v", err)
	}
	return Row{
		RowID:   rowID,
		Symbols: symbols,
		Mask:    mask,
		Bits:    bitmask.BitTable(symbols),
		Line:    line,
	}, nil
}

// Omissions returns, in lexicographic order, every combination of
// (rowSize-k) positional indices in [0,rowSize) to omit from a row when
// deriving its size-k sub-masks. len(Omissions(rowSize,k)) ==
// C(rowSize, rowSize-k) == C(rowSize, k) (spec §4.3; for rowSize=15 this is
// C(15,14)=15, C(15,13)=105, C(15,12)=455, C(15,11)=1365).
func Omissions(rowSize, k int) [][]int {
	omit := rowSize - k
	var out [][]int
	combo := make([]int, 0, omit)

	var rec func(start int)
	rec = func(start int) {
		if len(combo) == omit {
			cp := make([]int, omit)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		// Prune so there are always enough remaining positions to fill combo.
		for i := start; i <= rowSize-(omit-len(combo)); i++ {
			combo = append(combo, i)
			rec(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	rec(0)
	return out
}

// Expand returns the target ids covered by row, one per entry of omissions,
// in the same deterministic order. A sub-mask absent from idx is an
// InputError: by construction (spec §4.3 invariant) every sub-mask of a
// well-formed row appears in a complete Uₖ, so a miss means corrupt input,
// not a programming error to panic on (spec §9 Open Question 1).
func Expand(row Row, idx *targetindex.Index, omissions [][]int) ([]int32, error) {
	ids := make([]int32, len(omissions))
	for i, positions := range omissions {
		sub := bitmask.Without(row.Mask, row.Bits, positions)
		id, ok := idx.Lookup(sub)
		if !ok {
			return nil, errs.InputErrorf(row.Line, int(row.RowID)+1, "sub-mask %#x not found in U%d index", sub, idx.K())
		}
		ids[i] = id
	}
	return ids, nil
}

// JoinLine renders a CSV record back to the comma-separated form the input
// used, so chosen rows can be echoed verbatim into SB15_k.csv.
func JoinLine(rec []string) string {
	return strings.Join(rec, ",")
}
