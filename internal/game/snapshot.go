package game

import "fmt"

// Snapshot is the serializable maze state captured at each milestone. The
// core only produces it; writing it anywhere is a collaborator concern
// (see persist.go). Snapshots are one-way dumps and are never loaded back.
type Snapshot struct {
	SessionID       string                `json:"session_id"`
	Milestone       int                   `json:"milestone"`
	Nodes           []NodeID              `json:"nodes"`
	Edges           [][2]NodeID           `json:"edges"`
	NodePositions   map[string][2]float64 `json:"node_positions"`
	GrowthRate      int                   `json:"growth_rate"`
	BranchingFactor float64               `json:"branching_factor"`
}

// CaptureSnapshot copies the current maze state into a Snapshot for the given
// milestone. sessionID tags all snapshots from one process run.
func (m *Maze) CaptureSnapshot(milestone int, sessionID string) Snapshot {
	snap := Snapshot{
		SessionID:       sessionID,
		Milestone:       milestone,
		Nodes:           make([]NodeID, m.NodeCount()),
		Edges:           make([][2]NodeID, 0, m.EdgeCount()),
		NodePositions:   make(map[string][2]float64, m.NodeCount()),
		GrowthRate:      m.growthRate,
		BranchingFactor: m.branchingFactor,
	}
	for i := range snap.Nodes {
		id := NodeID(i)
		snap.Nodes[i] = id
		pos := m.positions[id]
		snap.NodePositions[fmt.Sprintf("%d", id)] = [2]float64{pos.X, pos.Y}
	}
	for _, e := range m.edges {
		snap.Edges = append(snap.Edges, [2]NodeID{e.A, e.B})
	}
	return snap
}
