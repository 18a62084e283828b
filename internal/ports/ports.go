// Package ports declares the interfaces the game core exchanges with its
// surroundings: where puzzles come from, who computes hints, and where
// sessions persist. Implementations live in infrastructure packages or in
// the host application.
package ports

import (
	"context"
	"time"
)

// Puzzle is a raw puzzle/solution pair with the opaque identifiers the
// core threads through unchanged.
type Puzzle struct {
	Puzzle   string
	Solution string
	LevelID  string
	BoardID  string
}

// PuzzleSource supplies boards for a source kind such as "level" or
// "daily".
type PuzzleSource interface {
	Fetch(ctx context.Context, kind, id string) (Puzzle, error)
}

// HintRequest carries the serialized views a hint engine needs: the
// original puzzle, the player state, and optionally the pencilmarks.
type HintRequest struct {
	Original  string
	User      string
	Marks     string
	AutoMarks bool
}

// HintStep is one instruction of an ordered hint: highlight cells and
// optionally replace board state. Board and Marks reuse the codec string
// forms and stay empty when the step only highlights.
type HintStep struct {
	Title string
	Cells []int
	Board string
	Marks string
}

// HintProvider turns a position into ordered hint steps.
type HintProvider interface {
	Hint(ctx context.Context, req HintRequest) ([]HintStep, error)
}

// SessionRecord is the persisted form of one game session. The string
// fields hold codec serializations verbatim; a store writes and returns
// them unchanged.
type SessionRecord struct {
	SessionID  string    `json:"session_id"`
	Kind       string    `json:"kind"`
	LevelID    string    `json:"level_id,omitempty"`
	BoardID    string    `json:"board_id,omitempty"`
	Puzzle     string    `json:"puzzle"`
	Solution   string    `json:"solution"`
	Input      string    `json:"input"`
	Marks      string    `json:"marks"`
	PencilMode bool      `json:"pencil_mode"`
	SavedAt    time.Time `json:"saved_at"`
}

// SessionStore persists session records.
type SessionStore interface {
	Save(ctx context.Context, rec SessionRecord) error
	Load(ctx context.Context, kind, sessionID string) (SessionRecord, error)
	List(ctx context.Context) ([]SessionRecord, error)
}
