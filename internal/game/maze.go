package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// Maze geometry and palette constants.
const (
	nodeRadius        = 15
	seedRingRadius    = 100
	seedRingNodes     = 5
	highlightDuration = 1.0 // seconds
)

var (
	nodeBaseColor      = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	edgeBaseColor      = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	hardenedEdgeColor  = color.RGBA{R: 150, G: 255, B: 150, A: 255}
	nodeHighlightColor = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

// NodeID identifies a maze node. IDs are dense, assigned monotonically from
// zero and never reused.
type NodeID int

// EdgeProvenance records how an edge came to exist.
type EdgeProvenance uint8

const (
	// EdgeSeed edges belong to the initial ring.
	EdgeSeed EdgeProvenance = iota
	// EdgeGrown edges were added by procedural growth.
	EdgeGrown
	// EdgeHardened edges were created by the trail-hardening algorithm.
	EdgeHardened
)

func (p EdgeProvenance) String() string {
	switch p {
	case EdgeSeed:
		return "seed"
	case EdgeGrown:
		return "grown"
	case EdgeHardened:
		return "hardened"
	}
	return fmt.Sprintf("EdgeProvenance(%d)", uint8(p))
}

// Edge is an unordered pair of distinct nodes. A always holds the smaller id.
type Edge struct {
	A          NodeID
	B          NodeID
	Provenance EdgeProvenance
}

// highlight is a short visual flash on a node after growth or hardening.
type highlight struct {
	remaining float64
	total     float64
}

// Maze owns the neural-maze graph: node positions, adjacency sets, the
// ordered edge list with provenance, and the procedural growth parameters.
// The graph is simple (no self-loops, no duplicate edges) and stays connected:
// every node is attached to an existing node before it is considered part of
// the graph.
type Maze struct {
	width  float64
	height float64

	positions  []Vec2
	nodeColors []color.RGBA
	adjacency  []map[NodeID]struct{}
	edges      []Edge

	highlights map[NodeID]*highlight

	// Growth parameters. Mutated only by IncreaseDifficulty.
	minNodeDistance float64
	maxNodeDistance float64
	growthRate      int
	branchingFactor float64

	startNode NodeID
	rng       *rand.Rand
}

// NewMaze creates a maze bounded to width×height with the seed ring of five
// nodes centred in the play area.
func NewMaze(width, height float64, rng *rand.Rand) *Maze {
	m := &Maze{
		width:           width,
		height:          height,
		highlights:      map[NodeID]*highlight{},
		minNodeDistance: 80,
		maxNodeDistance: 150,
		growthRate:      1,
		branchingFactor: 1.5,
		rng:             rng,
	}
	m.createSeedRing()
	return m
}

// createSeedRing places the initial five nodes in a ring and closes it.
func (m *Maze) createSeedRing() {
	center := Vec2{m.width / 2, m.height / 2}
	for i := 0; i < seedRingNodes; i++ {
		angle := 2 * math.Pi * float64(i) / seedRingNodes
		pos := Vec2{
			center.X + seedRingRadius*math.Cos(angle),
			center.Y + seedRingRadius*math.Sin(angle),
		}
		m.AddNode(pos, nodeBaseColor)
	}
	for i := 0; i < seedRingNodes; i++ {
		m.AddEdge(NodeID(i), NodeID((i+1)%seedRingNodes), EdgeSeed)
	}
	m.startNode = 0
}

// StartNode returns the node the player spawns on and returns to after a
// hazard hit.
func (m *Maze) StartNode() NodeID { return m.startNode }

// NodeCount returns the number of nodes in the graph.
func (m *Maze) NodeCount() int { return len(m.positions) }

// EdgeCount returns the number of undirected edges in the graph.
func (m *Maze) EdgeCount() int { return len(m.edges) }

// Edges returns the edge list in insertion order. Callers must not mutate it.
func (m *Maze) Edges() []Edge { return m.edges }

// NodePosition returns the position of a node. Panics on an unknown id;
// callers only ever hold ids the maze handed out.
func (m *Maze) NodePosition(id NodeID) Vec2 {
	m.mustExist(id)
	return m.positions[id]
}

// NodeColor returns the depth-shaded display color of a node.
func (m *Maze) NodeColor(id NodeID) color.RGBA {
	m.mustExist(id)
	return m.nodeColors[id]
}

// AddNode allocates the next node id at the given position.
func (m *Maze) AddNode(pos Vec2, col color.RGBA) NodeID {
	id := NodeID(len(m.positions))
	m.positions = append(m.positions, pos)
	m.nodeColors = append(m.nodeColors, col)
	m.adjacency = append(m.adjacency, map[NodeID]struct{}{})
	return id
}

// AddEdge inserts an undirected edge between a and b. Self-loops and
// duplicates are silently rejected; the return value reports whether an edge
// was actually inserted.
func (m *Maze) AddEdge(a, b NodeID, prov EdgeProvenance) bool {
	m.mustExist(a)
	m.mustExist(b)
	if a == b {
		return false
	}
	if _, dup := m.adjacency[a][b]; dup {
		return false
	}
	m.adjacency[a][b] = struct{}{}
	m.adjacency[b][a] = struct{}{}
	if b < a {
		a, b = b, a
	}
	m.edges = append(m.edges, Edge{A: a, B: b, Provenance: prov})
	return true
}

// HasEdge reports whether an edge exists between a and b.
func (m *Maze) HasEdge(a, b NodeID) bool {
	m.mustExist(a)
	m.mustExist(b)
	_, ok := m.adjacency[a][b]
	return ok
}

// Neighbors returns the ids adjacent to a, in ascending order.
func (m *Maze) Neighbors(a NodeID) []NodeID {
	m.mustExist(a)
	out := make([]NodeID, 0, len(m.adjacency[a]))
	for id := range m.adjacency[a] {
		out = append(out, id)
	}
	// Map iteration order is random; sort so movement choice and rendering
	// are deterministic under a fixed seed.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Degree returns the number of edges incident to a.
func (m *Maze) Degree(a NodeID) int {
	m.mustExist(a)
	return len(m.adjacency[a])
}

// ShortestPathLength returns the unweighted BFS distance between a and b.
// The connectivity invariant guarantees every pair is reachable; an
// unreachable pair means the graph was corrupted and is a fatal error.
func (m *Maze) ShortestPathLength(a, b NodeID) int {
	m.mustExist(a)
	m.mustExist(b)
	if a == b {
		return 0
	}
	dist := make([]int, len(m.positions))
	for i := range dist {
		dist[i] = -1
	}
	dist[a] = 0
	queue := []NodeID{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range m.adjacency[cur] {
			if dist[next] != -1 {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == b {
				return dist[next]
			}
			queue = append(queue, next)
		}
	}
	panic(fmt.Sprintf("maze: nodes %d and %d are disconnected", a, b))
}

// AverageBranchingFactor returns 2×edges/nodes, the telemetry statistic shown
// on the HUD. Zero when the graph is empty.
func (m *Maze) AverageBranchingFactor() float64 {
	n := len(m.positions)
	if n == 0 {
		return 0
	}
	return float64(2*len(m.edges)) / float64(n)
}

// AddHardenedEdge converts a trail between two visited nodes into a permanent
// edge. Self-loops and already-connected pairs are silent no-ops. On insert,
// both endpoints flash for half the usual highlight duration.
func (m *Maze) AddHardenedEdge(a, b NodeID) bool {
	if a == b {
		return false
	}
	if !m.AddEdge(a, b, EdgeHardened) {
		return false
	}
	m.flashNode(a, highlightDuration/2)
	m.flashNode(b, highlightDuration/2)
	return true
}

// IncreaseDifficulty retunes the growth parameters for the given milestone
// level. Deterministic, and non-decreasing for non-decreasing milestones.
func (m *Maze) IncreaseDifficulty(milestone int) {
	m.growthRate = 1 + milestone/2
	m.branchingFactor = 1.5 + float64(milestone)*0.25
}

// GrowthRate returns the current nodes-attempted-per-visit parameter.
func (m *Maze) GrowthRate() int { return m.growthRate }

// BranchingFactor returns the current growth probability scaling parameter.
func (m *Maze) BranchingFactor() float64 { return m.branchingFactor }

// Update advances highlight timers.
func (m *Maze) Update(dt float64) {
	for id, h := range m.highlights {
		h.remaining -= dt
		if h.remaining <= 0 {
			delete(m.highlights, id)
		}
	}
}

// flashNode starts (or restarts) a highlight on a node.
func (m *Maze) flashNode(id NodeID, duration float64) {
	m.highlights[id] = &highlight{remaining: duration, total: duration}
}

// highlightIntensity returns the 0..1 flash strength for a node, 0 when not
// highlighted.
func (m *Maze) highlightIntensity(id NodeID) float64 {
	h, ok := m.highlights[id]
	if !ok {
		return 0
	}
	return h.remaining / h.total
}

// depthColor derives the display color for a node grown from source: deeper
// nodes shade darker.
func (m *Maze) depthColor(source NodeID) color.RGBA {
	depth := m.ShortestPathLength(m.startNode, source) + 1
	darkness := math.Min(200, float64(depth)*10)
	dim := func(c uint8) uint8 {
		v := float64(c) - darkness
		if v < 20 {
			v = 20
		}
		return uint8(v)
	}
	return color.RGBA{
		R: dim(nodeBaseColor.R),
		G: dim(nodeBaseColor.G),
		B: dim(nodeBaseColor.B),
		A: 255,
	}
}

func (m *Maze) mustExist(id NodeID) {
	if id < 0 || int(id) >= len(m.positions) {
		panic(fmt.Sprintf("maze: invalid node id %d (have %d nodes)", id, len(m.positions)))
	}
}
