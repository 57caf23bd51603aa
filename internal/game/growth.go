package game

import "math"

// GrowFrom attempts to extend the maze from the given source node and returns
// the new node's id if one was placed.
//
// The attempt count is drawn uniformly from [1, growthRate+1]. Each attempt
// rolls a Bernoulli trial with success probability branchingFactor/2; the
// first trial that passes attempts a single placement and the call returns
// its outcome immediately, so at most one node is added per call even when
// the attempt budget is larger. Difficulty tuning elsewhere relies on this
// one-node-per-visit ceiling.
func (m *Maze) GrowFrom(source NodeID) (NodeID, bool) {
	m.mustExist(source)
	attempts := 1 + m.rng.Intn(m.growthRate+1)
	for i := 0; i < attempts; i++ {
		if m.rng.Float64() < m.branchingFactor/2 {
			return m.placeNode(source)
		}
	}
	return 0, false
}

// placeNode tries to place one new node near source. A candidate position is
// drawn at a uniform angle and a uniform distance in
// [minNodeDistance, maxNodeDistance], clamped to the play area minus the node
// radius. A candidate closer than minNodeDistance to any existing node is
// rejected and the call places nothing; rejection is not an error.
func (m *Maze) placeNode(source NodeID) (NodeID, bool) {
	srcPos := m.positions[source]

	angle := m.rng.Float64() * 2 * math.Pi
	distance := m.minNodeDistance + m.rng.Float64()*(m.maxNodeDistance-m.minNodeDistance)

	pos := Vec2{
		X: clamp(srcPos.X+distance*math.Cos(angle), nodeRadius, m.width-nodeRadius),
		Y: clamp(srcPos.Y+distance*math.Sin(angle), nodeRadius, m.height-nodeRadius),
	}

	for _, existing := range m.positions {
		if pos.Dist(existing) < m.minNodeDistance {
			return 0, false
		}
	}

	id := m.AddNode(pos, m.depthColor(source))
	m.AddEdge(source, id, EdgeGrown)
	m.flashNode(id, highlightDuration)
	return id, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
