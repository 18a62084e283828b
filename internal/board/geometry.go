package board

import "fmt"

// Precomputed lookup tables for position mapping. Rows and columns follow
// directly from the linear index; blocks use the standard 3x3 arrangement;
// cellPeers lists the 20 cells sharing a row, column, or block with each
// position.
var (
	posToRow   [CellCount]int
	posToCol   [CellCount]int
	posToBlock [CellCount]int
	cellPeers  [CellCount][20]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// RowOf returns the row of a position, or InvalidCell when out of bounds.
func RowOf(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return posToRow[pos]
}

// ColOf returns the column of a position, or InvalidCell when out of bounds.
func ColOf(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return posToCol[pos]
}

// BlockOf returns the 3x3 block of a position, or InvalidCell when out of
// bounds. Blocks are numbered 0-8 left to right, top to bottom.
func BlockOf(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return posToBlock[pos]
}

// Peers returns the 20 cells sharing a row, column, or block with pos,
// pos itself excluded. The result is in ascending position order.
func Peers(pos int) [20]int {
	return cellPeers[pos]
}

// init fills the lookup tables and sanity-checks the hard-coded block
// formula. The tables are fixed and always valid; panic on bugs.
func init() {
	for pos := range CellCount {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBlock[pos] = 3*(pos/27) + (pos%9)/3
	}

	var counts [9]int
	for pos := range CellCount {
		b := posToBlock[pos]
		if b < 0 || b > 8 {
			panic(fmt.Sprintf("block table: cell %d has out-of-range block %d", pos, b))
		}
		counts[b]++
	}
	for b := range 9 {
		if counts[b] != 9 {
			panic(fmt.Sprintf("block table: block %d has %d cells, expected 9", b, counts[b]))
		}
	}

	for pos := range CellCount {
		n := 0
		for other := range CellCount {
			if other == pos {
				continue
			}
			if posToRow[other] == posToRow[pos] ||
				posToCol[other] == posToCol[pos] ||
				posToBlock[other] == posToBlock[pos] {
				if n == 20 {
					panic(fmt.Sprintf("peer table: cell %d has more than 20 peers", pos))
				}
				cellPeers[pos][n] = other
				n++
			}
		}
		if n != 20 {
			panic(fmt.Sprintf("peer table: cell %d has %d peers, expected 20", pos, n))
		}
	}
}
