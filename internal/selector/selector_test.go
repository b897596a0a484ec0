package selector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lmarques/covercore/internal/expander"
	"github.com/lmarques/covercore/internal/scenario"
	"github.com/lmarques/covercore/internal/targetindex"
)

func writeCSV(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// TestSelectorCoversToyUniverse mirrors spec §8 scenario 1: symbols {1..5},
// row size 3, target size 2. Run is row-size-agnostic (sc.RowSize threads
// through to expander.Omissions/NewRow), so this exercises the production
// code path at a scale small enough to check coverage by hand.
func TestSelectorCoversToyUniverse(t *testing.T) {
	dir := t.TempDir()

	// U2 over {1..5}: all 10 pairs, in lexicographic order.
	u2Path := writeCSV(t, dir, "S2.csv", []string{
		"1,2", "1,3", "1,4", "1,5", "2,3", "2,4", "2,5", "3,4", "3,5", "4,5",
	})
	idx, err := targetindex.Load(u2Path, 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A small subfamily of 3-subsets covering all 10 pairs: each row covers
	// C(3,2)=3 pairs.
	u3Path := writeCSV(t, dir, "S3.csv", []string{
		"1,2,3", "1,4,5", "2,4,5", "3,4,5", "2,3,5", "1,3,4",
	})

	sc := scenario.Scenario{K: 2, RowSize: 3, UniverseSize: int64(idx.Len()), Fanout: 3, ScenarioDir: "toy"}

	res, err := Run(u3Path, idx, sc, Options{StoreAll: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Chosen) == 0 {
		t.Fatalf("expected a non-empty cover")
	}

	// Re-derive coverage independently to confirm completeness.
	covered := make(map[int32]bool)
	omissions := expander.Omissions(sc.RowSize, sc.K)
	for _, row := range res.Chosen {
		ids, err := expander.Expand(row, idx, omissions)
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		for _, id := range ids {
			covered[id] = true
		}
	}
	if len(covered) != idx.Len() {
		t.Fatalf("covered %d/%d ids", len(covered), idx.Len())
	}
}

// TestSelectorSingleRowCoversToyUniverse checks that a single row reaching
// the full toy universe is chosen without the heap ever needing more than
// one pop.
func TestSelectorSingleRowCoversToyUniverse(t *testing.T) {
	dir := t.TempDir()
	u2Path := writeCSV(t, dir, "S2.csv", []string{"1,2", "1,3", "2,3"})
	idx, err := targetindex.Load(u2Path, 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	u3Path := writeCSV(t, dir, "S3.csv", []string{"1,2,3"})

	sc := scenario.Scenario{K: 2, RowSize: 3, UniverseSize: int64(idx.Len()), Fanout: 3, ScenarioDir: "toy"}
	res, err := Run(u3Path, idx, sc, Options{StoreAll: false})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Chosen) != 1 {
		t.Fatalf("len(Chosen)=%d want 1", len(res.Chosen))
	}
}

// TestSelectorStaleGainIsRevalidatedNotTrusted covers the lazy-heap
// correctness invariant directly: a row primed with an inflated gain must be
// revalidated against the true remaining coverage before being chosen, never
// accepted on its stale stored gain.
func TestSelectorStaleGainIsRevalidatedNotTrusted(t *testing.T) {
	dir := t.TempDir()
	// U2 over {1,2,3,4}: 6 pairs total.
	u2Path := writeCSV(t, dir, "S2.csv", []string{
		"1,2", "1,3", "1,4", "2,3", "2,4", "3,4",
	})
	idx, err := targetindex.Load(u2Path, 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Two overlapping rows: the first two rows share symbols 1,2, so after
	// row {1,2,3} is chosen, row {1,2,4}'s true remaining gain (covering only
	// {1,4},{2,4}) is lower than its primed gain of 3 ({1,2} is already
	// covered). The third row covers the rest.
	u3Path := writeCSV(t, dir, "S3.csv", []string{
		"1,2,3", "1,2,4", "3,4,2",
	})

	sc := scenario.Scenario{K: 2, RowSize: 3, UniverseSize: int64(idx.Len()), Fanout: 3, ScenarioDir: "toy"}
	res, err := Run(u3Path, idx, sc, Options{StoreAll: false})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	omissions := expander.Omissions(sc.RowSize, sc.K)
	covered := make(map[int32]bool)
	for _, row := range res.Chosen {
		ids, err := expander.Expand(row, idx, omissions)
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		for _, id := range ids {
			covered[id] = true
		}
	}
	if len(covered) != idx.Len() {
		t.Fatalf("covered %d/%d ids", len(covered), idx.Len())
	}
}
