package board

import (
	"math/bits"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// AllMarks is the candidate set holding every digit 1-9.
const AllMarks Marks = 511

// Marks is a set of candidate digits packed into the low nine bits.
// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
// The zero value is the empty set; methods return updated copies.
type Marks uint16

// MarksOf builds a set from digit values. Digits outside 1-9 are ignored.
func MarksOf(digits ...int) Marks {
	var m Marks
	for _, d := range digits {
		m = m.Add(d)
	}
	return m
}

// Has reports whether digit d is in the set.
func (m Marks) Has(d int) bool {
	if d < 1 || d > 9 {
		return false
	}
	return m&(1<<(d-1)) != 0
}

// Add returns the set with digit d included.
func (m Marks) Add(d int) Marks {
	if d < 1 || d > 9 {
		return m
	}
	return m | 1<<(d-1)
}

// Remove returns the set with digit d excluded.
func (m Marks) Remove(d int) Marks {
	if d < 1 || d > 9 {
		return m
	}
	return m &^ (1 << (d - 1))
}

// Toggle returns the set with digit d flipped.
func (m Marks) Toggle(d int) Marks {
	if m.Has(d) {
		return m.Remove(d)
	}
	return m.Add(d)
}

// Count returns the number of digits in the set.
func (m Marks) Count() int {
	return bits.OnesCount16(uint16(m))
}

// Digits returns the digits of the set in ascending order.
func (m Marks) Digits() []int {
	out := make([]int, 0, m.Count())
	for d := 1; d <= 9; d++ {
		if m.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String returns the digits concatenated in ascending order, e.g. "147".
// The empty set yields "".
func (m Marks) String() string {
	var sb strings.Builder
	sb.Grow(m.Count())
	for d := 1; d <= 9; d++ {
		if m.Has(d) {
			sb.WriteByte('0' + byte(d))
		}
	}
	return sb.String()
}

// Cell is one of the 81 board cells. Index is the fixed position; the
// remaining fields describe what the cell holds: the solved digit, the
// immutable clue, the player input, and the candidate notes. Marks and a
// non-empty Input are mutually exclusive; the reducer maintains that.
type Cell struct {
	Index    int
	Solution int
	Given    int
	Input    int
	Marks    Marks
}

// Value returns the digit the cell currently shows: the given clue when
// present, otherwise the player input. EmptyCell when the cell is open.
func (c Cell) Value() int {
	if c.Given != EmptyCell {
		return c.Given
	}
	return c.Input
}

// IsGiven reports whether the cell is an immutable clue.
func (c Cell) IsGiven() bool {
	return c.Given != EmptyCell
}

// Solved reports whether the cell needs no further work: givens always
// count, open cells must carry an input equal to their solution.
func (c Cell) Solved() bool {
	return c.Given != EmptyCell || c.Input == c.Solution
}
