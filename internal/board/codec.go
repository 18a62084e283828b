package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadLength    = errors.New("board string must be exactly 81 characters")
	ErrBadCharacter = errors.New("board string may contain only '0'-'9' and '.'")
)

// Mode selects what Serialize writes for each cell.
type Mode int

const (
	// ModePuzzle writes the given clues only.
	ModePuzzle Mode = iota
	// ModeState writes the given clue when present, otherwise the input.
	ModeState
	// ModeProgress writes the player inputs only.
	ModeProgress
	// ModeMarks writes 81 comma-joined segments of candidate digits.
	ModeMarks
)

// Parse decodes an 81-character board string. '0' and '.' both denote an
// empty cell; '1'-'9' become given clues at their position.
func Parse(s string) (Board, error) {
	var b Board
	if len(s) != CellCount {
		return b, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}

	for pos := range CellCount {
		c := Cell{Index: pos}
		switch ch := s[pos]; ch {
		case '.', '0':
			// Empty cell
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.Given = int(ch - '0')
		default:
			return Board{}, fmt.Errorf("%w: '%c' at position %d", ErrBadCharacter, ch, pos)
		}
		b.Cells[pos] = c
	}
	return b, nil
}

// Serialize encodes the board in the requested mode. The three digit modes
// produce an 81-character string with '0' for empty cells; ModeMarks
// produces 81 comma-joined segments of ascending candidate digits, an
// empty segment meaning no candidates.
func (b *Board) Serialize(m Mode) string {
	if m == ModeMarks {
		segs := make([]string, CellCount)
		for pos := range CellCount {
			segs[pos] = b.Cells[pos].Marks.String()
		}
		return strings.Join(segs, ",")
	}

	var sb strings.Builder
	sb.Grow(CellCount)
	for pos := range CellCount {
		cell := b.Cells[pos]
		v := EmptyCell
		switch m {
		case ModePuzzle:
			v = cell.Given
		case ModeState:
			v = cell.Value()
		case ModeProgress:
			if !cell.IsGiven() {
				v = cell.Input
			}
		}
		sb.WriteByte('0' + byte(v))
	}
	return sb.String()
}

// ParseMarks decodes the ModeMarks form back into per-cell candidate sets.
func ParseMarks(s string) ([CellCount]Marks, error) {
	var out [CellCount]Marks

	segs := strings.Split(s, ",")
	if len(segs) != CellCount {
		return out, fmt.Errorf("%w: got %d mark segments", ErrBadLength, len(segs))
	}

	for pos, seg := range segs {
		var m Marks
		for i := 0; i < len(seg); i++ {
			ch := seg[i]
			if ch < '1' || ch > '9' {
				return [CellCount]Marks{}, fmt.Errorf("%w: '%c' in mark segment %d", ErrBadCharacter, ch, pos)
			}
			m = m.Add(int(ch - '0'))
		}
		out[pos] = m
	}
	return out, nil
}

// ApplyProgress overlays an input string onto the board: digits land in the
// Input field of open cells and clear their marks, '0' and '.' clear the
// input. A digit on a given position is an error.
func (b *Board) ApplyProgress(s string) error {
	if len(s) != CellCount {
		return fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}

	for pos := range CellCount {
		switch ch := s[pos]; {
		case ch == '.' || ch == '0':
			if !b.Cells[pos].IsGiven() {
				b.Cells[pos].Input = EmptyCell
			}
		case ch >= '1' && ch <= '9':
			if b.Cells[pos].IsGiven() {
				return fmt.Errorf("input digit '%c' collides with a given at position %d", ch, pos)
			}
			b.Cells[pos].Input = int(ch - '0')
			b.Cells[pos].Marks = 0
		default:
			return fmt.Errorf("%w: '%c' at position %d", ErrBadCharacter, ch, pos)
		}
	}
	return nil
}

// ApplyMarks overlays candidate sets onto the board. Only open cells take
// marks; filled cells keep their empty set.
func (b *Board) ApplyMarks(marks [CellCount]Marks) {
	for pos := range CellCount {
		if b.Cells[pos].Value() == EmptyCell {
			b.Cells[pos].Marks = marks[pos]
		}
	}
}
