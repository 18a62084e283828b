// Package board holds the 81-cell play state and its canonical string
// codec. Boards are plain values: assigning one copies every cell, which is
// what the game history and the scrambler rely on.
package board

import "strings"

// Board represents a 9x9 Sudoku board as a flat array of 81 cells in
// index order.
type Board struct {
	Cells [CellCount]Cell
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() Board {
	return *b
}

// Completed reports whether every cell is solved: a given clue, or an
// input equal to the cell's solution.
func (b *Board) Completed() bool {
	for pos := range CellCount {
		if !b.Cells[pos].Solved() {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of cells showing no digit.
func (b *Board) EmptyCount() int {
	n := 0
	for pos := range CellCount {
		if b.Cells[pos].Value() == EmptyCell {
			n++
		}
	}
	return n
}

// GivenCount returns the number of clue cells.
func (b *Board) GivenCount() int {
	n := 0
	for pos := range CellCount {
		if b.Cells[pos].IsGiven() {
			n++
		}
	}
	return n
}

// InputCount returns the number of cells carrying a player input.
func (b *Board) InputCount() int {
	n := 0
	for pos := range CellCount {
		if !b.Cells[pos].IsGiven() && b.Cells[pos].Input != EmptyCell {
			n++
		}
	}
	return n
}

// String returns the board as an 81-character string of shown values,
// '0' for empty cells.
func (b *Board) String() string {
	return b.Serialize(ModeState)
}

// SolutionString returns the solution column as an 81-character string,
// '0' where the solution is unknown.
func (b *Board) SolutionString() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for pos := range CellCount {
		sb.WriteByte('0' + byte(b.Cells[pos].Solution))
	}
	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
// Shown values are printed, empty cells as '.'.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := range 9 {
		sb.WriteString("| ")
		for col := range 9 {
			val := b.Cells[MakePos(row, col)].Value()
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
