// Package game implements the turn-based game state machine: a single
// State value advanced by discrete actions through Reduce. Invalid but
// expected actions are silent no-ops.
package game

import (
	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/ports"
	"github.com/johnqh/sudojo-lib/internal/scramble"
)

// NoSelection marks the absence of a selected cell.
const NoSelection = -1

// SourceKind tags where a puzzle came from.
type SourceKind string

const (
	SourceLevel  SourceKind = "level"
	SourceDaily  SourceKind = "daily"
	SourceCustom SourceKind = "custom"
)

// Source identifies the puzzle behind a game. The IDs are opaque: the
// core threads them through unchanged.
type Source struct {
	Kind      SourceKind
	LevelID   string
	BoardID   string
	SessionID string
}

// Play is the undoable part of a game: the board plus the transient
// selection and pencil flag. History entries are whole Play values.
type Play struct {
	Board      board.Board
	Selected   int
	PencilMode bool
}

// State is one complete game. It is self-contained: two States never
// share cells.
type State struct {
	Play     Play
	History  []Play
	Settings Settings
	Mapping  scramble.Mapping
	Inverse  scramble.Mapping
	Source   Source

	// Originals retained so Reset can rebuild the board with the exact
	// permutation set used at load time.
	puzzle   string
	solution string
	perms    scramble.Set
	loaded   bool
}

// NewState returns an empty game awaiting a Load action.
func NewState() State {
	return State{
		Play:     Play{Selected: NoSelection},
		Settings: DefaultSettings(),
	}
}

// Loaded reports whether a board has been loaded.
func (s *State) Loaded() bool {
	return s.loaded
}

// Export returns the persistable view of the session. The board strings
// are in play space: a scrambled game exports its scrambled puzzle and
// solution, so a later Restore needs no rescrambling.
func (s *State) Export() ports.SessionRecord {
	return ports.SessionRecord{
		SessionID:  s.Source.SessionID,
		Kind:       string(s.Source.Kind),
		LevelID:    s.Source.LevelID,
		BoardID:    s.Source.BoardID,
		Puzzle:     s.Play.Board.Serialize(board.ModePuzzle),
		Solution:   s.Play.Board.SolutionString(),
		Input:      s.Play.Board.Serialize(board.ModeProgress),
		Marks:      s.Play.Board.Serialize(board.ModeMarks),
		PencilMode: s.Play.PencilMode,
	}
}

// Restore rebuilds a game from a stored session: a plain unscrambled load
// followed by direct assignment of the stored input and mark strings.
func Restore(rec ports.SessionRecord) (State, error) {
	s, err := Reduce(NewState(), Load{
		Puzzle:   rec.Puzzle,
		Solution: rec.Solution,
		Shuffle:  scramble.Identity{},
		Kind:     SourceKind(rec.Kind),
		LevelID:  rec.LevelID,
		BoardID:  rec.BoardID,
	})
	if err != nil {
		return State{}, err
	}

	if rec.SessionID != "" {
		s.Source.SessionID = rec.SessionID
	}
	if rec.Input != "" {
		if err := s.Play.Board.ApplyProgress(rec.Input); err != nil {
			return State{}, err
		}
	}
	if rec.Marks != "" {
		marks, err := board.ParseMarks(rec.Marks)
		if err != nil {
			return State{}, err
		}
		s.Play.Board.ApplyMarks(marks)
	}
	s.Play.PencilMode = rec.PencilMode
	return s, nil
}
