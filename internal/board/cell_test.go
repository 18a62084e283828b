package board

import (
	"reflect"
	"testing"
)

func TestMarksSetOperations(t *testing.T) {
	m := MarksOf(1, 4, 7)

	if !m.Has(1) || !m.Has(4) || !m.Has(7) {
		t.Fatalf("expected 1, 4, 7 in set, got %q", m.String())
	}
	if m.Has(2) || m.Has(9) {
		t.Fatalf("unexpected digits in set %q", m.String())
	}
	if m.Count() != 3 {
		t.Fatalf("Count = %d, want 3", m.Count())
	}

	m = m.Add(9)
	if got := m.String(); got != "1479" {
		t.Fatalf("after Add(9): %q, want %q", got, "1479")
	}

	m = m.Remove(4)
	if got := m.String(); got != "179" {
		t.Fatalf("after Remove(4): %q, want %q", got, "179")
	}

	m = m.Toggle(2)
	m = m.Toggle(1)
	if got := m.String(); got != "279" {
		t.Fatalf("after toggles: %q, want %q", got, "279")
	}

	if got := m.Digits(); !reflect.DeepEqual(got, []int{2, 7, 9}) {
		t.Fatalf("Digits = %v, want [2 7 9]", got)
	}
}

func TestMarksIgnoresOutOfRangeDigits(t *testing.T) {
	m := MarksOf(0, 10, -3, 5)
	if got := m.String(); got != "5" {
		t.Fatalf("out-of-range digits leaked into set: %q", got)
	}
	if m.Has(0) || m.Has(10) {
		t.Fatal("Has accepted an out-of-range digit")
	}
	if m.Remove(0) != m || m.Add(12) != m {
		t.Fatal("Add/Remove changed the set for an out-of-range digit")
	}
}

func TestMarksEmptySet(t *testing.T) {
	var m Marks
	if m.Count() != 0 {
		t.Fatalf("empty set Count = %d", m.Count())
	}
	if m.String() != "" {
		t.Fatalf("empty set String = %q, want empty", m.String())
	}
	if len(m.Digits()) != 0 {
		t.Fatalf("empty set Digits = %v", m.Digits())
	}
}

func TestAllMarksHoldsEveryDigit(t *testing.T) {
	for d := 1; d <= 9; d++ {
		if !AllMarks.Has(d) {
			t.Fatalf("AllMarks missing digit %d", d)
		}
	}
	if AllMarks.Count() != 9 {
		t.Fatalf("AllMarks Count = %d, want 9", AllMarks.Count())
	}
}

func TestCellValuePrecedence(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want int
	}{
		{"empty", Cell{}, EmptyCell},
		{"given only", Cell{Given: 5}, 5},
		{"input only", Cell{Input: 3}, 3},
		{"given wins over input", Cell{Given: 5, Input: 3}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Value(); got != tc.want {
				t.Fatalf("Value = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCellSolved(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want bool
	}{
		{"given always solved", Cell{Given: 5, Solution: 5}, true},
		{"correct input", Cell{Solution: 4, Input: 4}, true},
		{"wrong input", Cell{Solution: 4, Input: 9}, false},
		{"open cell", Cell{Solution: 4}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Solved(); got != tc.want {
				t.Fatalf("Solved = %v, want %v", got, tc.want)
			}
		})
	}
}
