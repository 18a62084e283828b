package game

import (
	"reflect"
	"testing"

	"github.com/johnqh/sudojo-lib/internal/board"
)

func TestProgressCountsOpenCellsOnly(t *testing.T) {
	s := mustLoad(t, samplePuzzle, sampleSolution)
	if got := s.Progress(); got != 0 {
		t.Fatalf("fresh progress = %d%%, want 0%%", got)
	}

	s = step(t, s, Select{Index: 2})
	s = step(t, s, Input{Digit: 4})
	// 1 of 51 open cells filled.
	if got := s.Progress(); got != 2 {
		t.Fatalf("progress = %d%%, want 2%%", got)
	}
}

func TestSameValueCells(t *testing.T) {
	s := mustLoad(t, samplePuzzle, sampleSolution)

	if cells := s.SameValueCells(); cells != nil {
		t.Fatalf("cells without selection: %v", cells)
	}

	// Cell 0 shows the given 5; 14 and 71 are the other fives.
	s = step(t, s, Select{Index: 0})
	if got := s.SameValueCells(); !reflect.DeepEqual(got, []int{0, 14, 71}) {
		t.Fatalf("same-value cells = %v, want [0 14 71]", got)
	}

	// An empty selected cell highlights nothing.
	s = step(t, s, Select{Index: 2})
	if cells := s.SameValueCells(); cells != nil {
		t.Fatalf("cells for an empty selection: %v", cells)
	}

	// Inputs count like shown values.
	s = step(t, s, Input{Digit: 4})
	s = step(t, s, Select{Index: 36}) // given 4
	if got := s.SameValueCells(); !reflect.DeepEqual(got, []int{2, 36, 66}) {
		t.Fatalf("same-value cells = %v, want [2 36 66]", got)
	}
}

func TestRelatedCells(t *testing.T) {
	s := mustLoad(t, samplePuzzle, sampleSolution)

	if cells := s.RelatedCells(); cells != nil {
		t.Fatalf("related cells without selection: %v", cells)
	}

	s = step(t, s, Select{Index: 2})
	peers := board.Peers(2)
	if got := s.RelatedCells(); !reflect.DeepEqual(got, peers[:]) {
		t.Fatalf("related cells = %v, want %v", got, peers)
	}
}

func TestMistakesIgnoreShowErrorsSetting(t *testing.T) {
	s := mustLoad(t, samplePuzzle, sampleSolution)
	s = step(t, s, Select{Index: 3})
	s = step(t, s, Input{Digit: 9})

	if got := s.Mistakes(); got != 1 {
		t.Fatalf("mistakes = %d, want 1", got)
	}
	if cells := s.ErrorCells(); cells != nil {
		t.Fatalf("error cells visible with the setting off: %v", cells)
	}
}
