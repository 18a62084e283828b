package game

import "github.com/johnqh/sudojo-lib/internal/board"

// MoveKind tags what a journal move changed.
type MoveKind int

const (
	// MoveValue records an input change.
	MoveValue MoveKind = iota
	// MoveMarks records a pencilmark change.
	MoveMarks
)

// Move is one reversible cell change: enough to undo and redo it without
// snapshotting the whole board.
type Move struct {
	Index     int
	Kind      MoveKind
	PrevValue int
	NextValue int
	PrevMarks board.Marks
	NextMarks board.Marks
}

// Journal is the delta-based history kept for hosts that need redo; the
// snapshot history in State supports undo only. Recording a fresh move
// invalidates everything on the redo stack.
type Journal struct {
	undo []Move
	redo []Move
}

// Record appends a move to the undo stack and clears redo.
func (j *Journal) Record(m Move) {
	j.undo = append(j.undo, m)
	j.redo = j.redo[:0]
}

// Undo reverts the latest move on b and reports whether one was undone.
func (j *Journal) Undo(b *board.Board) bool {
	n := len(j.undo)
	if n == 0 {
		return false
	}
	m := j.undo[n-1]
	j.undo = j.undo[:n-1]
	applyMove(b, m, true)
	j.redo = append(j.redo, m)
	return true
}

// Redo reapplies the most recently undone move and reports whether one
// was redone.
func (j *Journal) Redo(b *board.Board) bool {
	n := len(j.redo)
	if n == 0 {
		return false
	}
	m := j.redo[n-1]
	j.redo = j.redo[:n-1]
	applyMove(b, m, false)
	j.undo = append(j.undo, m)
	return true
}

// CanUndo reports whether an undo is available.
func (j *Journal) CanUndo() bool {
	return len(j.undo) > 0
}

// CanRedo reports whether a redo is available.
func (j *Journal) CanRedo() bool {
	return len(j.redo) > 0
}

// Reset drops both stacks.
func (j *Journal) Reset() {
	j.undo = j.undo[:0]
	j.redo = j.redo[:0]
}

// applyMove writes one side of a move onto the board: the previous side
// when backwards, the next side otherwise.
func applyMove(b *board.Board, m Move, backwards bool) {
	c := &b.Cells[m.Index]
	switch m.Kind {
	case MoveValue:
		if backwards {
			c.Input = m.PrevValue
		} else {
			c.Input = m.NextValue
		}
	case MoveMarks:
		if backwards {
			c.Marks = m.PrevMarks
		} else {
			c.Marks = m.NextMarks
		}
	}
}
