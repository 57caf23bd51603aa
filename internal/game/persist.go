package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotWriter receives milestone snapshots. The game never waits on the
// result beyond logging; a write failure does not affect play.
type SnapshotWriter interface {
	WriteSnapshot(snap Snapshot) error
}

// FileSnapshotWriter writes each snapshot as milestone_<n>.json under a
// directory, creating it on first use.
type FileSnapshotWriter struct {
	Dir string
}

// WriteSnapshot implements SnapshotWriter.
func (w FileSnapshotWriter) WriteSnapshot(snap Snapshot) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("milestone_%d.json", snap.Milestone))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
