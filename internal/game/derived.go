package game

import (
	"math"

	"github.com/johnqh/sudojo-lib/internal/board"
)

// Derived reads. Nothing here is stored: every value is recomputed from
// the current board and selection.

// ErrorCells returns the indices of open cells whose input contradicts the
// solution. It returns nothing while the show-errors setting is off.
func (s *State) ErrorCells() []int {
	if !s.Settings.ShowErrors {
		return nil
	}
	return s.mistakes()
}

// Mistakes counts the wrong inputs currently on the board regardless of
// the show-errors setting.
func (s *State) Mistakes() int {
	return len(s.mistakes())
}

func (s *State) mistakes() []int {
	var out []int
	for pos := range board.CellCount {
		c := s.Play.Board.Cells[pos]
		if !c.IsGiven() && c.Input != board.EmptyCell && c.Input != c.Solution {
			out = append(out, pos)
		}
	}
	return out
}

// Progress returns the filled share of open cells as a rounded percentage.
// A board with no open cells counts as 100.
func (s *State) Progress() int {
	open, filled := 0, 0
	for pos := range board.CellCount {
		c := s.Play.Board.Cells[pos]
		if c.IsGiven() {
			continue
		}
		open++
		if c.Input != board.EmptyCell {
			filled++
		}
	}
	if open == 0 {
		return 100
	}
	return int(math.Round(100 * float64(filled) / float64(open)))
}

// SameValueCells returns every cell showing the selected cell's value,
// the selection included. Empty without a selection or when the selected
// cell shows nothing.
func (s *State) SameValueCells() []int {
	if s.Play.Selected == NoSelection {
		return nil
	}
	v := s.Play.Board.Cells[s.Play.Selected].Value()
	if v == board.EmptyCell {
		return nil
	}

	var out []int
	for pos := range board.CellCount {
		if s.Play.Board.Cells[pos].Value() == v {
			out = append(out, pos)
		}
	}
	return out
}

// RelatedCells returns the selection's row, column, and block neighbors,
// the selection itself excluded.
func (s *State) RelatedCells() []int {
	if s.Play.Selected == NoSelection {
		return nil
	}
	peers := board.Peers(s.Play.Selected)
	return peers[:]
}
