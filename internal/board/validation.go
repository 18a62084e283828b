package board

// IsValid reports whether the shown values satisfy Sudoku constraints.
// Empty cells are ignored for validation.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, blockCheck [9]uint

	for pos := range CellCount {
		val := b.Cells[pos].Value()
		if val == EmptyCell {
			continue
		}

		row, col, block := posToRow[pos], posToCol[pos], posToBlock[pos]
		mask := uint(1 << (val - 1))

		// Check for duplicates in row, column, or block
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			blockCheck[block]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		blockCheck[block] |= mask
	}

	return true
}

// IsValidSolution reports whether the board is completely filled and every
// row, column, and block contains each digit exactly once.
func (b *Board) IsValidSolution() bool {
	for pos := range CellCount {
		if b.Cells[pos].Value() == EmptyCell {
			return false
		}
	}
	return b.IsValid()
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}
