package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/johnqh/sudojo-lib/internal/ports"
)

const (
	samplePuzzle   = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	sampleSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func newTestStore(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := NewFS(dir, logger)
	if err != nil {
		t.Fatalf("NewFS failed: %v", err)
	}
	return s, dir
}

func sampleRecord(id string, savedAt time.Time) ports.SessionRecord {
	return ports.SessionRecord{
		SessionID: id,
		Kind:      "level",
		LevelID:   "level-7",
		Puzzle:    samplePuzzle,
		Solution:  sampleSolution,
		Input:     "",
		Marks:     "",
		SavedAt:   savedAt,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	saved := time.Date(2026, 8, 22, 10, 30, 0, 0, time.UTC)
	rec := sampleRecord("abc", saved)
	rec.PencilMode = true
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, "level", "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.SessionID != "abc" || got.Kind != "level" || got.LevelID != "level-7" {
		t.Fatalf("identifiers mismatch: %+v", got)
	}
	if got.Puzzle != samplePuzzle || got.Solution != sampleSolution {
		t.Fatal("board strings changed in storage")
	}
	if !got.PencilMode {
		t.Fatal("pencil flag lost")
	}
	if !got.SavedAt.Equal(saved) {
		t.Fatalf("saved at %v, want %v", got.SavedAt, saved)
	}
}

func TestLoadSearchesAllKinds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("abc", time.Now().UTC())
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, "", "abc")
	if err != nil {
		t.Fatalf("kind-less Load failed: %v", err)
	}
	if got.SessionID != "abc" {
		t.Fatalf("loaded %q, want %q", got.SessionID, "abc")
	}
}

func TestLoadMissingSession(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Load(context.Background(), "", "nothing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}
}

func TestSaveMintsDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec := ports.SessionRecord{Puzzle: samplePuzzle, Solution: sampleSolution}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("stored %d records, want 1", len(recs))
	}
	got := recs[0]
	if got.SessionID == "" {
		t.Fatal("no session id minted")
	}
	if got.Kind != DefaultKind {
		t.Fatalf("kind = %q, want %q", got.Kind, DefaultKind)
	}
	if got.SavedAt.IsZero() {
		t.Fatal("no timestamp minted")
	}
}

func TestListNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		rec := sampleRecord(id, base.Add(time.Duration(i)*time.Hour))
		if i == 1 {
			rec.Kind = "daily" // a second bucket must not break ordering
		}
		if err := s.Save(ctx, rec); err != nil {
			t.Fatalf("Save %q failed: %v", id, err)
		}
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("listed %d records, want 3", len(recs))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if recs[i].SessionID != want {
			t.Fatalf("position %d holds %q, want %q", i, recs[i].SessionID, want)
		}
	}
}

func TestListSkipsCorruptFiles(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, sampleRecord("good", time.Now().UTC())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A stray file at the root and a garbage session file.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "level", "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 1 || recs[0].SessionID != "good" {
		t.Fatalf("listed %+v, want the single good record", recs)
	}
}

func TestSaveHonorsCancellation(t *testing.T) {
	s, _ := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Save(ctx, sampleRecord("abc", time.Now().UTC()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}
