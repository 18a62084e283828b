// Package storage implements filesystem persistence for game sessions.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/johnqh/sudojo-lib/internal/ports"
)

// ErrNotFound is returned when no stored session matches.
var ErrNotFound = errors.New("session not found")

// DefaultKind buckets sessions whose record does not name a source kind.
const DefaultKind = "custom"

// FS stores one JSON file per session at base/<kind>/<sessionID>.json.
type FS struct {
	base string
	log  *logrus.Entry
}

var _ ports.SessionStore = (*FS)(nil)

// NewFS creates the store rooted at base, creating the directory if
// needed. A nil logger falls back to the standard logrus logger.
func NewFS(base string, log *logrus.Logger) (*FS, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FS{
		base: base,
		log:  log.WithField("component", "storage"),
	}, nil
}

// Save writes the record, minting a session ID and timestamp when absent.
func (s *FS) Save(ctx context.Context, rec ports.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	}
	if rec.Kind == "" {
		rec.Kind = DefaultKind
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now().UTC()
	}

	dir := filepath.Join(s.base, rec.Kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create kind dir: %w", err)
	}

	path := filepath.Join(dir, rec.SessionID+".json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"session": rec.SessionID,
		"kind":    rec.Kind,
	}).Debug("session saved")
	return nil
}

// Load reads one session. An empty kind searches every bucket.
func (s *FS) Load(ctx context.Context, kind, sessionID string) (ports.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return ports.SessionRecord{}, err
	}

	var candidates []string
	if kind != "" {
		candidates = append(candidates, filepath.Join(s.base, kind, sessionID+".json"))
	} else {
		kinds, err := os.ReadDir(s.base)
		if err != nil {
			return ports.SessionRecord{}, fmt.Errorf("read storage dir: %w", err)
		}
		for _, k := range kinds {
			if k.IsDir() {
				candidates = append(candidates, filepath.Join(s.base, k.Name(), sessionID+".json"))
			}
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rec ports.SessionRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return ports.SessionRecord{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		return rec, nil
	}
	return ports.SessionRecord{}, fmt.Errorf("%w: %s", ErrNotFound, sessionID)
}

// List returns every stored session, newest first. Unreadable entries are
// skipped with a warning so one corrupt file cannot hide the rest.
func (s *FS) List(ctx context.Context) ([]ports.SessionRecord, error) {
	kinds, err := os.ReadDir(s.base)
	if err != nil {
		return nil, fmt.Errorf("read storage dir: %w", err)
	}

	var out []ports.SessionRecord
	for _, k := range kinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !k.IsDir() {
			continue
		}

		dir := filepath.Join(s.base, k.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"kind": k.Name(),
			}).Warn("skipping unreadable kind dir")
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, f.Name()))
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"kind": k.Name(),
					"file": f.Name(),
				}).Warn("skipping unreadable session file")
				continue
			}
			var rec ports.SessionRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				s.log.WithFields(logrus.Fields{
					"kind": k.Name(),
					"file": f.Name(),
				}).Warn("skipping undecodable session file")
				continue
			}
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}
