package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/infer"
	"github.com/johnqh/sudojo-lib/internal/scramble"
)

// Action is one discrete game transition. The concrete types below form
// the closed set Reduce dispatches over.
type Action interface {
	isAction()
}

// Load replaces the whole game with a freshly parsed, optionally scrambled
// board. Shuffle picks the scramble strategy; nil means Identity.
type Load struct {
	Puzzle   string
	Solution string
	Shuffle  scramble.Source
	Kind     SourceKind
	LevelID  string
	BoardID  string
}

// Select moves the selection to a cell.
type Select struct {
	Index int
}

// Deselect clears the selection.
type Deselect struct{}

// Input enters a digit at the selection: a mark toggle in pencil mode, a
// committed value otherwise. Digit 0 clears the value in normal mode.
type Input struct {
	Digit int
}

// Erase clears the selected cell's input or marks depending on mode.
type Erase struct{}

// TogglePencil flips pencil mode.
type TogglePencil struct{}

// SetPencil forces pencil mode on or off.
type SetPencil struct {
	On bool
}

// Undo restores the previous play snapshot.
type Undo struct{}

// AutoMarks fills every open cell's pencilmarks by candidate inference.
type AutoMarks struct{}

// UpdateSettings merges a settings patch. It is not recorded in history.
type UpdateSettings struct {
	Patch SettingsPatch
}

// Reset rebuilds the board from the originally loaded strings, reapplying
// the same permutation set, and clears history and selection.
type Reset struct{}

func (Load) isAction()           {}
func (Select) isAction()         {}
func (Deselect) isAction()       {}
func (Input) isAction()          {}
func (Erase) isAction()          {}
func (TogglePencil) isAction()   {}
func (SetPencil) isAction()      {}
func (Undo) isAction()           {}
func (AutoMarks) isAction()      {}
func (UpdateSettings) isAction() {}
func (Reset) isAction()          {}

// Reduce applies one action to a game state and returns the next state.
// Only Load and Reset can fail, and only on malformed board strings or a
// broken permutation set; every invalid but expected action returns the
// state unchanged.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Load:
		return reduceLoad(a)
	case Select:
		return reduceSelect(s, a), nil
	case Deselect:
		return reduceDeselect(s), nil
	case Input:
		return reduceInput(s, a), nil
	case Erase:
		return reduceErase(s), nil
	case TogglePencil:
		return reducePencil(s, !s.Play.PencilMode), nil
	case SetPencil:
		return reducePencil(s, a.On), nil
	case Undo:
		return reduceUndo(s), nil
	case AutoMarks:
		return reduceAutoMarks(s), nil
	case UpdateSettings:
		s.Settings = s.Settings.merge(a.Patch)
		return s, nil
	case Reset:
		return reduceReset(s)
	}
	return s, nil
}

// buildBoard parses a puzzle/solution pair, merges the solution digits
// into the puzzle cells, and applies one permutation set.
func buildBoard(puzzle, solution string, set scramble.Set) (scramble.Result, error) {
	pb, err := board.Parse(puzzle)
	if err != nil {
		return scramble.Result{}, fmt.Errorf("puzzle: %w", err)
	}
	sb, err := board.Parse(solution)
	if err != nil {
		return scramble.Result{}, fmt.Errorf("solution: %w", err)
	}

	for pos := range board.CellCount {
		pb.Cells[pos].Solution = sb.Cells[pos].Given
	}
	return scramble.ApplySet(&pb, set)
}

func reduceLoad(a Load) (State, error) {
	shuffle := a.Shuffle
	if shuffle == nil {
		shuffle = scramble.Identity{}
	}
	set := shuffle.Permutations()

	res, err := buildBoard(a.Puzzle, a.Solution, set)
	if err != nil {
		return State{}, err
	}

	kind := a.Kind
	if kind == "" {
		kind = SourceCustom
	}

	s := NewState()
	s.Play.Board = res.Board
	s.Mapping = res.Mapping
	s.Inverse = res.Inverse
	s.Source = Source{
		Kind:      kind,
		LevelID:   a.LevelID,
		BoardID:   a.BoardID,
		SessionID: uuid.NewString(),
	}
	s.puzzle = a.Puzzle
	s.solution = a.Solution
	s.perms = set
	s.loaded = true
	return s, nil
}

func reduceSelect(s State, a Select) State {
	if !s.loaded || s.Play.Board.Completed() {
		return s
	}
	if a.Index < 0 || a.Index >= board.CellCount {
		return s
	}
	s.Play.Selected = a.Index
	return s
}

func reduceDeselect(s State) State {
	if !s.loaded || s.Play.Board.Completed() {
		return s
	}
	s.Play.Selected = NoSelection
	return s
}

func reduceInput(s State, a Input) State {
	if !s.loaded || s.Play.Board.Completed() || s.Play.Selected == NoSelection {
		return s
	}
	if a.Digit < 0 || a.Digit > 9 {
		return s
	}

	sel := s.Play.Selected
	if s.Play.Board.Cells[sel].IsGiven() {
		return s
	}

	if s.Play.PencilMode {
		if a.Digit == board.EmptyCell {
			return s
		}
		s = pushHistory(s)
		c := &s.Play.Board.Cells[sel]
		c.Marks = c.Marks.Toggle(a.Digit)
		c.Input = board.EmptyCell
		return s
	}

	s = pushHistory(s)
	c := &s.Play.Board.Cells[sel]
	c.Input = a.Digit
	c.Marks = 0

	// Placing a digit removes it from the pencilmarks of every open cell
	// sharing the row, column, or block.
	if a.Digit != board.EmptyCell {
		for _, peer := range board.Peers(sel) {
			pc := &s.Play.Board.Cells[peer]
			if !pc.IsGiven() {
				pc.Marks = pc.Marks.Remove(a.Digit)
			}
		}
	}

	// One placement consumes the selection.
	s.Play.Selected = NoSelection
	return s
}

func reduceErase(s State) State {
	if !s.loaded || s.Play.Board.Completed() || s.Play.Selected == NoSelection {
		return s
	}

	sel := s.Play.Selected
	cell := s.Play.Board.Cells[sel]
	if cell.IsGiven() {
		return s
	}

	if s.Play.PencilMode {
		if cell.Marks == 0 {
			return s
		}
		s = pushHistory(s)
		s.Play.Board.Cells[sel].Marks = 0
		return s
	}

	if cell.Input == board.EmptyCell {
		return s
	}
	s = pushHistory(s)
	s.Play.Board.Cells[sel].Input = board.EmptyCell
	return s
}

func reducePencil(s State, on bool) State {
	if !s.loaded {
		return s
	}
	s.Play.PencilMode = on
	return s
}

func reduceUndo(s State) State {
	if !s.loaded || s.Play.Board.Completed() || len(s.History) == 0 {
		return s
	}
	n := len(s.History)
	s.Play = s.History[n-1]
	s.History = s.History[:n-1]
	return s
}

func reduceAutoMarks(s State) State {
	if !s.loaded || s.Play.Board.Completed() {
		return s
	}
	s = pushHistory(s)
	s.Play.Board = infer.Candidates(&s.Play.Board)
	s.Settings.AutoMarks = true
	return s
}

func reduceReset(s State) (State, error) {
	if !s.loaded {
		return s, nil
	}

	res, err := buildBoard(s.puzzle, s.solution, s.perms)
	if err != nil {
		return State{}, err
	}

	s.Play = Play{
		Board:      res.Board,
		Selected:   NoSelection,
		PencilMode: s.Play.PencilMode,
	}
	s.History = nil
	return s, nil
}

// pushHistory snapshots the current play before a mutation.
func pushHistory(s State) State {
	s.History = append(s.History, s.Play)
	return s
}
