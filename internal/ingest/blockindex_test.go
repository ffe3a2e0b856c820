package ingest

import (
	"strings"
	"testing"
)

func TestBuildBlockIndex(t *testing.T) {
	input := "block_id,asset_id,block_name\n" +
		"b1,a1,header\n" +
		"b2,a1,footer\n" +
		"b3,a2,promo\n"

	index, rows, err := BuildBlockIndex(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("BuildBlockIndex failed: %v", err)
	}
	if rows != 3 {
		t.Errorf("rows = %d, want 3", rows)
	}
	if len(index) != 3 {
		t.Errorf("index size = %d, want 3", len(index))
	}
	if index["b1"] != "a1" || index["b3"] != "a2" {
		t.Errorf("unexpected index: %v", index)
	}
}

func TestBuildBlockIndexDuplicateLastWins(t *testing.T) {
	input := "block_id,asset_id\nb1,a1\nb1,a2\n"

	index, _, err := BuildBlockIndex(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("BuildBlockIndex failed: %v", err)
	}
	if index["b1"] != "a2" {
		t.Errorf("index[b1] = %q, want a2", index["b1"])
	}
}

func TestBuildBlockIndexIgnoresIncompleteRows(t *testing.T) {
	input := "block_id,asset_id\nb1,a1\n,a2\nb3,\nb4,a4\n"

	index, rows, err := BuildBlockIndex(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("BuildBlockIndex failed: %v", err)
	}
	if rows != 4 {
		t.Errorf("rows = %d, want 4", rows)
	}
	if len(index) != 2 {
		t.Errorf("index size = %d, want 2", len(index))
	}
	if _, ok := index[""]; ok {
		t.Error("empty block_id must not be indexed")
	}
}

func TestBuildBlockIndexProgressFinalCall(t *testing.T) {
	input := "block_id,asset_id\nb1,a1\nb2,a2\nb3,a3\n"

	var calls []int
	_, rows, err := BuildBlockIndex(strings.NewReader(input), func(n int) {
		calls = append(calls, n)
	})
	if err != nil {
		t.Fatalf("BuildBlockIndex failed: %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("expected at least the final progress call")
	}
	if calls[len(calls)-1] != rows {
		t.Errorf("final progress = %d, want %d", calls[len(calls)-1], rows)
	}
}
