// Package source supplies puzzles from a built-in catalog. It is the
// offline stand-in for a remote puzzle service: level ids address curated
// entries, daily ids pick an entry by stable hash of the date string.
package source

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/johnqh/sudojo-lib/internal/board"
	"github.com/johnqh/sudojo-lib/internal/ports"
)

// ErrUnknownBoard is returned when the catalog has no matching entry.
var ErrUnknownBoard = errors.New("no such board in the catalog")

type pair struct {
	id       string
	puzzle   string
	solution string
}

// catalogPairs is the collection of curated puzzle/solution pairs.
//
// Invariants (verified at package init):
//   - Both strings parse as 81-cell boards.
//   - The solution is a complete valid Sudoku solution.
//   - Every given in the puzzle agrees with the solution.
var catalogPairs = [...]pair{

	// Level 1: the classic starter grid.
	{
		id:       "1",
		puzzle:   "530070000600195000098000060800060003400803001700020006060000280000419005000080079",
		solution: "534678912672195348198342567859761423426853791713924856961537284287419635345286179",
	},

	// Level 2: band-swapped, column-mirrored relabeling of level 1.
	{
		id:       "2",
		puzzle:   "002090600007602400001050900068010000009834000230000090090000025000347800000020310",
		solution: "382491657957682431641753982768219543519834276234576198493168725125347869876925314",
	},

	// Level 3: band-rotated relabeling of level 1 with reversed digits.
	{
		id:       "3",
		puzzle:   "400000208000916050000200310705300000004159000120000400002400070006072090003800040",
		solution: "491735268238916754657248319765324981384159627129687435512493876846572193973861542",
	},
}

// Catalog serves the built-in pairs. The zero value is ready to use.
type Catalog struct{}

var _ ports.PuzzleSource = Catalog{}

// NewCatalog returns the built-in puzzle source.
func NewCatalog() Catalog {
	return Catalog{}
}

// Fetch returns the entry for a level id, or the date-addressed entry for
// a daily id. Unknown kinds and level ids fail with ErrUnknownBoard.
func (Catalog) Fetch(ctx context.Context, kind, id string) (ports.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return ports.Puzzle{}, err
	}

	switch kind {
	case "level":
		for _, p := range catalogPairs {
			if p.id == id {
				return ports.Puzzle{Puzzle: p.puzzle, Solution: p.solution, LevelID: id}, nil
			}
		}
		return ports.Puzzle{}, fmt.Errorf("%w: level %s", ErrUnknownBoard, id)
	case "daily":
		h := fnv.New32a()
		h.Write([]byte(id))
		p := catalogPairs[int(h.Sum32()%uint32(len(catalogPairs)))]
		return ports.Puzzle{Puzzle: p.puzzle, Solution: p.solution, BoardID: id}, nil
	}
	return ports.Puzzle{}, fmt.Errorf("%w: kind %s", ErrUnknownBoard, kind)
}

// Levels returns the catalog's level ids in order.
func Levels() []string {
	ids := make([]string, len(catalogPairs))
	for i, p := range catalogPairs {
		ids[i] = p.id
	}
	return ids
}

// init re-checks the catalog invariants. The pairs are fixed and always
// valid; panic on bugs.
func init() {
	for _, p := range catalogPairs {
		pb, err := board.Parse(p.puzzle)
		if err != nil {
			panic(fmt.Sprintf("catalog: level %s puzzle: %v", p.id, err))
		}
		sb, err := board.Parse(p.solution)
		if err != nil {
			panic(fmt.Sprintf("catalog: level %s solution: %v", p.id, err))
		}
		if !sb.IsValidSolution() {
			panic(fmt.Sprintf("catalog: level %s solution is not valid", p.id))
		}
		for pos := range board.CellCount {
			g := pb.Cells[pos].Given
			if g != board.EmptyCell && g != sb.Cells[pos].Given {
				panic(fmt.Sprintf("catalog: level %s given at %d disagrees with its solution", p.id, pos))
			}
		}
	}
}
