package game

// Player movement and trail constants.
const (
	playerRadius  = 10
	movementSpeed = 150  // px/s along an edge
	trailInterval = 0.05 // seconds between trail samples
	// TrailLifetime is both the age at which decorative trail segments fade
	// out and the quiet period that gates trail hardening.
	TrailLifetime = 5.0
	// directionMatchMin is the minimum dot product between the movement
	// direction and an edge direction for that edge to be taken.
	directionMatchMin = 0.3
)

// trailSegment is one decorative trail sample.
type trailSegment struct {
	pos Vec2
	t   float64
}

// Player moves along maze edges, records its visit history, and hardens
// sufficiently old trails into permanent edges.
//
// The visit history is append-only. lastHardenedIndex is the hardening
// cursor: everything before it has already been considered for hardening. The
// cursor only ever advances, and hardening requires at least two nodes past
// it, so it never exceeds len(nodeHistory)-2 at the point the scan runs.
type Player struct {
	maze *Maze

	currentNode NodeID
	targetNode  NodeID
	hasTarget   bool

	position  Vec2
	startPos  Vec2
	targetPos Vec2
	progress  float64 // 0..1 along the current edge
	direction Vec2

	trail          []trailSegment
	lastTrailTime  float64
	nodeHistory    []NodeID
	lastHardenedIx int
}

// NewPlayer places a player on the given start node. now is the current game
// clock reading.
func NewPlayer(start NodeID, maze *Maze, now float64) *Player {
	pos := maze.NodePosition(start)
	return &Player{
		maze:          maze,
		currentNode:   start,
		position:      pos,
		startPos:      pos,
		targetPos:     pos,
		lastTrailTime: now,
		nodeHistory:   []NodeID{start},
	}
}

// CurrentNode returns the node the player is on or departing from.
func (p *Player) CurrentNode() NodeID { return p.currentNode }

// Position returns the player's interpolated position.
func (p *Player) Position() Vec2 { return p.position }

// History returns the ordered visit history. Callers must not mutate it.
func (p *Player) History() []NodeID { return p.nodeHistory }

// HardenedCursor returns the current hardening cursor index.
func (p *Player) HardenedCursor() int { return p.lastHardenedIx }

// SetMovementDirection sets the held-key direction vector. When the player is
// resting on a node and a direction is held, the best-matching outgoing edge
// is chosen immediately.
func (p *Player) SetMovementDirection(dir Vec2) {
	p.direction = dir
	if !p.hasTarget && !dir.IsZero() {
		p.chooseTargetNode()
	}
}

// chooseTargetNode picks the neighbor whose edge direction best matches the
// movement direction. No edge is taken unless the match clears
// directionMatchMin, so a key held perpendicular to every edge does nothing.
func (p *Player) chooseTargetNode() {
	neighbors := p.maze.Neighbors(p.currentNode)
	if len(neighbors) == 0 {
		return
	}
	curPos := p.maze.NodePosition(p.currentNode)

	var best NodeID
	bestScore := -1.0
	found := false
	for _, n := range neighbors {
		delta := p.maze.NodePosition(n).Sub(curPos)
		if delta.IsZero() {
			continue
		}
		score := delta.Normalized().Dot(p.direction)
		if score > bestScore {
			bestScore = score
			best = n
			found = true
		}
	}
	if found && bestScore > directionMatchMin {
		p.targetNode = best
		p.hasTarget = true
		p.startPos = curPos
		p.targetPos = p.maze.NodePosition(best)
		p.progress = 0
	}
}

// Update advances movement and trail sampling by dt seconds. now is the game
// clock after the advance. It reports whether the player arrived at a node
// this tick.
func (p *Player) Update(dt, now float64) bool {
	arrived := false

	if p.hasTarget {
		delta := p.targetPos.Sub(p.startPos)
		p.progress += movementSpeed * dt / delta.Len()

		if p.progress >= 1.0 {
			p.position = p.targetPos
			p.currentNode = p.targetNode
			p.hasTarget = false
			p.progress = 0

			p.nodeHistory = append(p.nodeHistory, p.currentNode)
			arrived = true

			if !p.direction.IsZero() {
				p.chooseTargetNode()
			}
		} else {
			p.position = p.startPos.Add(delta.Scale(p.progress))
		}
	}

	if now-p.lastTrailTime > trailInterval {
		p.trail = append(p.trail, trailSegment{pos: p.position, t: now})
		p.lastTrailTime = now
	}

	return arrived
}

// UpdateTrail prunes expired trail segments and runs the hardening check. It
// reports whether at least one new hardened edge was created this tick.
//
// Hardening fires once the history holds at least three unprocessed nodes AND
// the trail-sampling clock has been quiet for longer than TrailLifetime. The
// gate reads the sampling clock, not a dedicated timer; gameplay pacing is
// tuned to that coupling. The scan connects the anchor node at the cursor to
// every node at least two hops later in the history, skipping the immediate
// successor. Afterwards the cursor lands two behind the history length
// regardless of how many edges were actually new.
func (p *Player) UpdateTrail(now float64) bool {
	kept := p.trail[:0]
	for _, seg := range p.trail {
		if now-seg.t < TrailLifetime {
			kept = append(kept, seg)
		}
	}
	p.trail = kept

	if len(p.nodeHistory)-p.lastHardenedIx < 3 {
		return false
	}
	if now-p.lastTrailTime <= TrailLifetime {
		return false
	}

	oldNode := p.nodeHistory[p.lastHardenedIx]
	hardened := false
	for i := p.lastHardenedIx + 2; i < len(p.nodeHistory); i++ {
		if p.maze.AddHardenedEdge(oldNode, p.nodeHistory[i]) {
			hardened = true
		}
	}
	p.lastHardenedIx = len(p.nodeHistory) - 2
	return hardened
}

// TrailSegments returns the live decorative trail samples, oldest first.
func (p *Player) TrailSegments() []trailSegment { return p.trail }

// ResetToStart teleports the player back to the start node after a hazard
// hit. The decorative trail and the visit history restart; hardened edges
// already in the graph persist.
func (p *Player) ResetToStart(now float64) {
	p.currentNode = p.maze.StartNode()
	p.hasTarget = false
	p.position = p.maze.NodePosition(p.currentNode)
	p.startPos = p.position
	p.targetPos = p.position
	p.direction = Vec2{}
	p.progress = 0

	p.trail = nil
	p.lastTrailTime = now

	p.nodeHistory = []NodeID{p.currentNode}
	p.lastHardenedIx = 0
}
