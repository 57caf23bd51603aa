package game

import "testing"

// growOnce drives GrowFrom with a guaranteed-success Bernoulli trial until a
// placement is accepted. Placement itself can still reject a candidate that
// lands too close to an existing node, so a bounded retry keeps the test
// independent of any one rng draw.
func growOnce(t *testing.T, m *Maze, source NodeID) NodeID {
	t.Helper()
	m.branchingFactor = 2.0
	for i := 0; i < 200; i++ {
		if id, ok := m.GrowFrom(source); ok {
			return id
		}
	}
	t.Fatal("no placement accepted in 200 calls")
	return 0
}

func TestGrowFrom_AddsLeafOnSource(t *testing.T) {
	m := newTestMaze(7)
	before := m.NodeCount()
	id := growOnce(t, m, 0)
	if m.NodeCount() != before+1 {
		t.Fatalf("node count %d, want %d", m.NodeCount(), before+1)
	}
	if d := m.Degree(id); d != 1 {
		t.Fatalf("new node has degree %d, want 1", d)
	}
	if !m.HasEdge(0, id) {
		t.Fatal("new node should connect to its source")
	}
}

func TestGrowFrom_SpacingAndBounds(t *testing.T) {
	m := newTestMaze(7)
	id := growOnce(t, m, 0)
	pos := m.NodePosition(id)
	if pos.X < nodeRadius || pos.X > m.width-nodeRadius ||
		pos.Y < nodeRadius || pos.Y > m.height-nodeRadius {
		t.Fatalf("node placed out of bounds at %v", pos)
	}
	for other := NodeID(0); other < id; other++ {
		if d := pos.Dist(m.NodePosition(other)); d < m.minNodeDistance {
			t.Fatalf("new node %.1fpx from node %d, min is %.0f", d, other, m.minNodeDistance)
		}
	}
}

func TestGrowFrom_AtMostOneNodePerCall(t *testing.T) {
	m := newTestMaze(7)
	// A large attempt budget must not change the one-node ceiling.
	m.growthRate = 50
	m.branchingFactor = 2.0
	for i := 0; i < 100; i++ {
		before := m.NodeCount()
		m.GrowFrom(0)
		if grown := m.NodeCount() - before; grown > 1 {
			t.Fatalf("single call added %d nodes", grown)
		}
	}
}

func TestGrowFrom_ZeroBranchingNeverGrows(t *testing.T) {
	m := newTestMaze(7)
	m.branchingFactor = 0
	for i := 0; i < 100; i++ {
		if _, ok := m.GrowFrom(0); ok {
			t.Fatal("growth with zero branching factor")
		}
	}
	if m.NodeCount() != 5 {
		t.Fatalf("node count %d after no-op growth, want 5", m.NodeCount())
	}
}

func TestGrowFrom_SpacingHoldsAcrossLongRun(t *testing.T) {
	m := newTestMaze(42)
	m.branchingFactor = 2.0
	source := NodeID(0)
	for i := 0; i < 500; i++ {
		if id, ok := m.GrowFrom(source); ok {
			source = id // grow outward like a walking player would
		}
	}
	n := m.NodeCount()
	if n < 20 {
		t.Fatalf("expected a substantial maze, got %d nodes", n)
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			d := m.NodePosition(NodeID(a)).Dist(m.NodePosition(NodeID(b)))
			if d < m.minNodeDistance-1e-9 {
				t.Fatalf("nodes %d and %d only %.1fpx apart", a, b, d)
			}
		}
	}
	// The graph must stay simple and connected as it grows.
	seen := map[Edge]bool{}
	for _, e := range m.Edges() {
		if e.A == e.B {
			t.Fatalf("self-loop on node %d", e.A)
		}
		key := Edge{A: e.A, B: e.B}
		if seen[key] {
			t.Fatalf("duplicate edge (%d,%d)", e.A, e.B)
		}
		seen[key] = true
	}
	for id := 1; id < n; id++ {
		m.ShortestPathLength(0, NodeID(id)) // panics if disconnected
	}
}

func TestGrowFrom_DepthColorDarkens(t *testing.T) {
	m := newTestMaze(7)
	first := growOnce(t, m, 0)
	second := growOnce(t, m, first)
	c0 := m.NodeColor(0)
	c1 := m.NodeColor(first)
	c2 := m.NodeColor(second)
	if !(c1.R < c0.R && c2.R < c1.R) {
		t.Fatalf("depth should darken node colour: %d, %d, %d", c0.R, c1.R, c2.R)
	}
}
