package game

import (
	"context"

	"github.com/johnqh/sudojo-lib/internal/ports"
	"github.com/johnqh/sudojo-lib/internal/scramble"
)

// LoadFrom fetches a puzzle from src and loads it into a fresh game. The
// fetched identifiers travel into the state's Source unchanged.
func LoadFrom(ctx context.Context, src ports.PuzzleSource, kind SourceKind, id string, shuffle scramble.Source) (State, error) {
	p, err := src.Fetch(ctx, string(kind), id)
	if err != nil {
		return State{}, err
	}

	return Reduce(NewState(), Load{
		Puzzle:   p.Puzzle,
		Solution: p.Solution,
		Shuffle:  shuffle,
		Kind:     kind,
		LevelID:  p.LevelID,
		BoardID:  p.BoardID,
	})
}
