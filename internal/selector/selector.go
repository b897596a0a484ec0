// Package selector implements the lazy greedy set-cover loop (spec §4.4):
// the priority-queue driven core that streams U15 once to prime a max-heap
// keyed by gain, then drains it with lazy revalidation until the target
// universe is fully covered. It generalizes the teacher library's
// container/heap-driven candidate selection (train.go's qsymHeap, which
// keeps a bounded top-K of symbol-merge candidates by gain) from "keep the
// best K" to "keep popping the best until nothing is left uncovered".
package selector

import (
	"bufio"
	"container/heap"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/lmarques/covercore/internal/errs"
	"github.com/lmarques/covercore/internal/expander"
	"github.com/lmarques/covercore/internal/scenario"
	"github.com/lmarques/covercore/internal/targetindex"
)

// Options controls the prime-load memory/time trade-off (spec §4.3): whether
// every row's expansion is cached (store_all) or recomputed on each pop.
type Options struct {
	StoreAll bool
}

// Result is the outcome of one greedy run.
type Result struct {
	// Chosen holds the selected rows in selection order, ready to be
	// written verbatim as SB15_k.csv.
	Chosen []expander.Row
}

// entry is a heap element: (-gain, rowID). Ties break on ascending rowID so
// the chosen order is a pure function of input order (spec §4.4).
type entry struct {
	negGain int64
	rowID   int32
}

// gainHeap is a max-heap on gain, implemented (per container/heap's
// contract) as a min-heap on negGain.
type gainHeap []entry

func (h gainHeap) Len() int { return len(h) }
func (h gainHeap) Less(i, j int) bool {
	if h[i].negGain != h[j].negGain {
		return h[i].negGain < h[j].negGain
	}
	return h[i].rowID < h[j].rowID
}
func (h gainHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *gainHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *gainHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Run streams s15Path once to prime the heap (one push per row, gain =
// sc.Fanout, optionally caching each row's expansion), then drains the heap
// with lazy revalidation (spec §4.4 steps 1-3) until idx's universe is fully
// covered, or fails with ErrCoverInfeasible if the heap empties first.
func Run(s15Path string, idx *targetindex.Index, sc scenario.Scenario, opts Options) (Result, error) {
	omissions := expander.Omissions(sc.RowSize, sc.K)

	rows, cachedIDs, err := loadRows(s15Path, idx, omissions, sc.RowSize, opts)
	if err != nil {
		return Result{}, err
	}

	h := make(gainHeap, 0, len(rows))
	heap.Init(&h)
	for _, row := range rows {
		heap.Push(&h, entry{negGain: -int64(sc.Fanout), rowID: row.RowID})
	}

	covered := bitset.New(uint(sc.UniverseSize))
	remaining := sc.UniverseSize
	var chosen []expander.Row

	for remaining > 0 {
		if h.Len() == 0 {
			return Result{}, errs.CoverInfeasiblef(sc.K, remaining)
		}
		e := heap.Pop(&h).(entry)
		row := rows[e.rowID]

		var ids []int32
		if opts.StoreAll {
			ids = cachedIDs[e.rowID]
		} else {
			ids, err = expander.Expand(row, idx, omissions)
			if err != nil {
				return Result{}, err
			}
		}

		trueGain := int64(0)
		for _, id := range ids {
			if !covered.Test(uint(id)) {
				trueGain++
			}
		}

		switch {
		case trueGain == 0:
			// Exhausted: every id this row reaches is already covered.
		case trueGain < -e.negGain:
			// Revalidating: stored gain was stale, reinsert with the truth.
			heap.Push(&h, entry{negGain: -trueGain, rowID: e.rowID})
		default:
			// Chosen: the entry was fresh and maximal among live entries.
			for _, id := range ids {
				if !covered.Test(uint(id)) {
					covered.Set(uint(id))
					remaining--
				}
			}
			chosen = append(chosen, row)
		}
	}

	return Result{Chosen: chosen}, nil
}

// loadRows streams s15Path once, building the candidate-row store (raw line
// + bit table, spec §9 design note) and, if opts.StoreAll, every row's
// expansion against idx up front.
func loadRows(s15Path string, idx *targetindex.Index, omissions [][]int, rowSize int, opts Options) ([]expander.Row, [][]int32, error) {
	f, err := os.Open(s15Path)
	if err != nil {
		return nil, nil, errs.IOError("selector: open "+s15Path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReaderSize(f, 1<<20))

	var rows []expander.Row
	var cachedIDs [][]int32

	rowID := int32(0)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errs.IOError("selector: read "+s15Path, err)
		}

		symbols := make([]int, len(rec))
		for i, tok := range rec {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, nil, errs.InputErrorf(s15Path, int(rowID)+1, "non-integer token %q", tok)
			}
			symbols[i] = v
		}

		line := expander.JoinLine(rec)
		row, err := expander.NewRow(rowID, symbols, line, s15Path, int(rowID)+1, rowSize)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)

		if opts.StoreAll {
			ids, err := expander.Expand(row, idx, omissions)
			if err != nil {
				return nil, nil, err
			}
			cachedIDs = append(cachedIDs, ids)
		}
		rowID++
	}
	return rows, cachedIDs, nil
}
