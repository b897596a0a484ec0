package expander

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/lmarques/covercore/internal/targetindex"
)

func TestOmissionsCounts(t *testing.T) {
	cases := map[int]int{14: 15, 13: 105, 12: 455, 11: 1365}
	for k, want := range cases {
		got := len(Omissions(15, k))
		if got != want {
			t.Fatalf("k=%d: len(Omissions)=%d want %d", k, got, want)
		}
	}
}

func TestOmissionsCountsSmallRowSize(t *testing.T) {
	// Toy universe (spec §8): row size 3, target size 2 -> C(3,1)=3 omissions.
	got := len(Omissions(3, 2))
	if got != 3 {
		t.Fatalf("len(Omissions(3,2))=%d want 3", got)
	}
}

func TestOmissionsDeterministicOrder(t *testing.T) {
	a := Omissions(15, 13)
	b := Omissions(15, 13)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic lengths")
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			t.Fatalf("row %d length mismatch", i)
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("row %d differs between runs: %v vs %v", i, a[i], b[i])
			}
		}
	}
	// First omission is always the lexicographically smallest combination.
	want := make([]int, 2)
	want[0], want[1] = 0, 1
	if a[0][0] != want[0] || a[0][1] != want[1] {
		t.Fatalf("first omission = %v want %v", a[0], want)
	}
}

func TestExpandK14FirstRow(t *testing.T) {
	// Row (1..15) covers (2..15) when position 0 (symbol 1) is omitted.
	// The fixture holds all 15 size-14 subsets of (1..15), starting with
	// (2..15), since Expand fails on any sub-mask missing from the index.
	dir := t.TempDir()
	path := filepath.Join(dir, "S14.csv")
	var fixture strings.Builder
	for omit := 1; omit <= 15; omit++ {
		var syms []string
		for s := 1; s <= 15; s++ {
			if s != omit {
				syms = append(syms, strconv.Itoa(s))
			}
		}
		fixture.WriteString(strings.Join(syms, ",") + "\n")
	}
	if err := os.WriteFile(path, []byte(fixture.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	idx, err := targetindex.Load(path, 14)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	row, err := NewRow(0, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		"1,2,3,4,5,6,7,8,9,10,11,12,13,14,15", path, 1, 15)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}

	omissions := Omissions(15, 14)
	ids, err := Expand(row, idx, omissions)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(ids) != 15 {
		t.Fatalf("len(ids)=%d want 15", len(ids))
	}
	// omissions[0] == [0] (omit symbol 1), which is the first row in idx -> id 0.
	if ids[0] != 0 {
		t.Fatalf("ids[0]=%d want 0", ids[0])
	}
}

func TestExpandMissingSubMaskIsInputError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "S14.csv")
	// Deliberately empty index: any lookup misses.
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	idx, err := targetindex.Load(path, 14)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	row, err := NewRow(0, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		"1,2,3,4,5,6,7,8,9,10,11,12,13,14,15", path, 1, 15)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}

	if _, err := Expand(row, idx, Omissions(15, 14)); err == nil {
		t.Fatalf("expected InputError for missing sub-mask")
	}
}

func TestNewRowRejectsWrongRowSize(t *testing.T) {
	if _, err := NewRow(0, []int{1, 2, 3, 4}, "1,2,3,4", "S3.csv", 1, 3); err == nil {
		t.Fatalf("expected InputError for a 4-symbol row against rowSize=3")
	}
}
