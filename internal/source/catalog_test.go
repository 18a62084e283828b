package source

import (
	"context"
	"errors"
	"testing"
)

func TestFetchLevel(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()

	for _, id := range Levels() {
		p, err := c.Fetch(ctx, "level", id)
		if err != nil {
			t.Fatalf("Fetch level %s failed: %v", id, err)
		}
		if p.LevelID != id {
			t.Fatalf("level id = %q, want %q", p.LevelID, id)
		}
		if len(p.Puzzle) != 81 || len(p.Solution) != 81 {
			t.Fatalf("level %s has malformed strings", id)
		}
	}
}

func TestFetchUnknownLevel(t *testing.T) {
	c := NewCatalog()

	_, err := c.Fetch(context.Background(), "level", "99")
	if !errors.Is(err, ErrUnknownBoard) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownBoard)
	}
}

func TestFetchUnknownKind(t *testing.T) {
	c := NewCatalog()

	_, err := c.Fetch(context.Background(), "custom", "1")
	if !errors.Is(err, ErrUnknownBoard) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownBoard)
	}
}

func TestFetchDailyIsStable(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()

	a, err := c.Fetch(ctx, "daily", "2026-08-22")
	if err != nil {
		t.Fatalf("Fetch daily failed: %v", err)
	}
	b, err := c.Fetch(ctx, "daily", "2026-08-22")
	if err != nil {
		t.Fatalf("Fetch daily failed: %v", err)
	}
	if a != b {
		t.Fatal("same date fetched two different puzzles")
	}
	if a.BoardID != "2026-08-22" {
		t.Fatalf("board id = %q, want the date", a.BoardID)
	}
}

func TestFetchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalog().Fetch(ctx, "level", "1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}

func TestLevelsInOrder(t *testing.T) {
	ids := Levels()
	if len(ids) == 0 {
		t.Fatal("catalog is empty")
	}
	if ids[0] != "1" {
		t.Fatalf("first level = %q, want %q", ids[0], "1")
	}
}
