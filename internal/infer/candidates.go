// Package infer computes pencilmark candidates by single-round constraint
// elimination. It is not a solver: the result may leave several candidates
// per cell and it never guesses.
package infer

import "github.com/johnqh/sudojo-lib/internal/board"

// Candidates returns a copy of b whose open cells carry the intersection
// of their row, column, and block candidate sets and whose filled cells
// carry none. Cell values are never modified.
func Candidates(b *board.Board) board.Board {
	var rows, cols, blocks [9]board.Marks
	for i := range 9 {
		rows[i], cols[i], blocks[i] = board.AllMarks, board.AllMarks, board.AllMarks
	}

	// First pass: every placed value leaves its row, column, and block.
	for pos := range board.CellCount {
		if v := b.Cells[pos].Value(); v != board.EmptyCell {
			r, c, bl := board.RowOf(pos), board.ColOf(pos), board.BlockOf(pos)
			rows[r] = rows[r].Remove(v)
			cols[c] = cols[c].Remove(v)
			blocks[bl] = blocks[bl].Remove(v)
		}
	}

	// Second pass: open cells get the three-way intersection, filled cells
	// are cleared.
	out := b.Clone()
	for pos := range board.CellCount {
		if out.Cells[pos].Value() == board.EmptyCell {
			r, c, bl := board.RowOf(pos), board.ColOf(pos), board.BlockOf(pos)
			out.Cells[pos].Marks = rows[r] & cols[c] & blocks[bl]
		} else {
			out.Cells[pos].Marks = 0
		}
	}
	return out
}
