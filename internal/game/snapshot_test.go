package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureSnapshot_MirrorsGraph(t *testing.T) {
	m := newTestMaze(17)
	m.AddHardenedEdge(0, 2)
	m.IncreaseDifficulty(2)

	snap := m.CaptureSnapshot(2, "session-abc")
	if snap.SessionID != "session-abc" || snap.Milestone != 2 {
		t.Fatalf("snapshot header: %q milestone %d", snap.SessionID, snap.Milestone)
	}
	if len(snap.Nodes) != m.NodeCount() {
		t.Fatalf("%d nodes captured, maze has %d", len(snap.Nodes), m.NodeCount())
	}
	if len(snap.Edges) != m.EdgeCount() {
		t.Fatalf("%d edges captured, maze has %d", len(snap.Edges), m.EdgeCount())
	}
	if len(snap.NodePositions) != m.NodeCount() {
		t.Fatalf("%d positions captured", len(snap.NodePositions))
	}
	if snap.GrowthRate != 2 || snap.BranchingFactor != 2.0 {
		t.Fatalf("captured params rate=%d bf=%.2f", snap.GrowthRate, snap.BranchingFactor)
	}
	// Shortcut edge (0,2) must be present alongside the ring.
	found := false
	for _, e := range snap.Edges {
		if e[0] == 0 && e[1] == 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("hardened edge missing from snapshot")
	}
}

func TestCaptureSnapshot_IsACopy(t *testing.T) {
	m := newTestMaze(17)
	snap := m.CaptureSnapshot(1, "s")
	m.AddEdge(0, 2, EdgeGrown)
	if len(snap.Edges) != 5 {
		t.Fatal("snapshot edges aliased live maze state")
	}
}

func TestFileSnapshotWriter_RoundTrip(t *testing.T) {
	m := newTestMaze(17)
	dir := t.TempDir()
	w := FileSnapshotWriter{Dir: filepath.Join(dir, "levels")}

	if err := w.WriteSnapshot(m.CaptureSnapshot(1, "s")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "levels", "milestone_1.json"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Milestone != 1 || len(snap.Nodes) != 5 || len(snap.Edges) != 5 {
		t.Fatalf("decoded snapshot: milestone=%d nodes=%d edges=%d",
			snap.Milestone, len(snap.Nodes), len(snap.Edges))
	}
	if pos, ok := snap.NodePositions["0"]; !ok || pos[0] == 0 {
		t.Fatalf("node 0 position missing or zero: %v", pos)
	}
}
