package bitmask

import (
	"reflect"
	"testing"
)

func TestMaskOfAndSymbolsOfRoundTrip(t *testing.T) {
	symbols := []int{1, 3, 7, 15, 25}
	mask, err := MaskOf(symbols)
	if err != nil {
		t.Fatalf("MaskOf: %v", err)
	}
	if Popcount(mask) != len(symbols) {
		t.Fatalf("popcount=%d want %d", Popcount(mask), len(symbols))
	}
	got := SymbolsOf(mask)
	if !reflect.DeepEqual(got, symbols) {
		t.Fatalf("round trip mismatch: got %v want %v", got, symbols)
	}
}

func TestMaskOfRejectsOutOfRange(t *testing.T) {
	if _, err := MaskOf([]int{0, 5}); err == nil {
		t.Fatalf("expected error for symbol 0")
	}
	if _, err := MaskOf([]int{26}); err == nil {
		t.Fatalf("expected error for symbol 26")
	}
}

func TestMaskOfRejectsDuplicates(t *testing.T) {
	if _, err := MaskOf([]int{1, 2, 2}); err == nil {
		t.Fatalf("expected error for duplicate symbol")
	}
}

func TestWithoutDerivesSubMask(t *testing.T) {
	symbols := []int{1, 2, 3, 4, 5}
	full, err := MaskOf(symbols)
	if err != nil {
		t.Fatalf("MaskOf: %v", err)
	}
	bt := BitTable(symbols)

	// Omit position 2 (symbol 3): remaining subset is {1,2,4,5}.
	sub := Without(full, bt, []int{2})
	want, err := MaskOf([]int{1, 2, 4, 5})
	if err != nil {
		t.Fatalf("MaskOf: %v", err)
	}
	if sub != want {
		t.Fatalf("Without mismatch: got %#x want %#x", sub, want)
	}
	if Popcount(sub) != len(symbols)-1 {
		t.Fatalf("popcount after Without=%d want %d", Popcount(sub), len(symbols)-1)
	}
}
