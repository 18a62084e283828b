package scramble

import (
	"errors"
	"fmt"

	"github.com/johnqh/sudojo-lib/internal/board"
)

// ErrIndexRange signals that a permutation set pointed outside the board.
// It is a programming-error condition, not a user-facing one: with 81-cell
// boards and valid sets it is unreachable.
var ErrIndexRange = errors.New("scramble source index out of range")

// Result is a scrambled board together with the digit mapping that
// produced it and the mapping's inverse.
type Result struct {
	Board   board.Board
	Mapping Mapping
	Inverse Mapping
}

// Apply scrambles b with a set drawn from src.
func Apply(b *board.Board, src Source) (Result, error) {
	return ApplySet(b, src.Permutations())
}

// ApplySet scrambles b with a fixed permutation set. Replaying the set
// stored from an earlier call reproduces the exact same scramble.
func ApplySet(b *board.Board, set Set) (Result, error) {
	if !set.Valid() {
		return Result{}, fmt.Errorf("%w: set is not a permutation", ErrIndexRange)
	}

	mapping := MappingFromPerm(set.Digits)
	res := Result{
		Mapping: mapping,
		Inverse: mapping.Inverse(),
	}

	for pos := range board.CellCount {
		row, col := board.RowOf(pos), board.ColOf(pos)
		srcPos := board.MakePos(set.Rows[row], set.Cols[col])
		if srcPos == board.InvalidCell {
			return Result{}, fmt.Errorf("%w: target %d maps to row %d, col %d",
				ErrIndexRange, pos, set.Rows[row], set.Cols[col])
		}

		src := b.Cells[srcPos]
		res.Board.Cells[pos] = board.Cell{
			Index:    pos,
			Solution: mapping.Apply(src.Solution),
			Given:    mapping.Apply(src.Given),
			Input:    mapping.Apply(src.Input),
			Marks:    remapMarks(src.Marks, mapping),
		}
	}
	return res, nil
}

// remapMarks maps every candidate digit through the scramble mapping,
// dropping any digit that maps to empty. Bit order keeps the result
// sorted.
func remapMarks(m board.Marks, mapping Mapping) board.Marks {
	var out board.Marks
	for _, d := range m.Digits() {
		if md := mapping.Apply(d); md != board.EmptyCell {
			out = out.Add(md)
		}
	}
	return out
}
