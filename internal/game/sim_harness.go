package game

import (
	"fmt"
	"math/rand"
)

// Sim is a headless simulation harness used by tests and cmd/headless-sim.
// It mirrors Game.simTick but has no ebiten, audio, or disk dependency,
// drives the player on a seeded random walk, and records structured events.
type Sim struct {
	Width  float64
	Height float64

	Maze    *Maze
	Player  *Player
	Hazards *HazardField
	Log     *EventLog

	Tick         int
	Now          float64
	NodesVisited int
	Milestone    int
	Resets       int

	Snapshots []Snapshot

	solveGates bool
	rng        *rand.Rand
	walkRng    *rand.Rand
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // bounds, seed, verbose; applied first
	simOptWorld                      // applied after the maze exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithBounds sets the play-area dimensions.
func WithBounds(w, h float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Width = w
		s.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs. One seed drives both
// world randomness and the random walk.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed))
		s.walkRng = rand.New(rand.NewSource(seed ^ 0x5eed))
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Log = NewEventLog(v)
	}}
}

// WithGateSolver makes the walker feed the correct key sequence to any gate
// it activates, one key per tick.
func WithGateSolver(on bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.solveGates = on
	}}
}

// WithDifficulty pre-raises maze and hazard difficulty to the given
// milestone level before the run starts.
func WithDifficulty(milestone int) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Maze.IncreaseDifficulty(milestone)
		s.Hazards.IncreaseDifficulty(milestone)
	}}
}

// NewSim constructs a Sim from the given options in two ordered passes:
// infrastructure (bounds, seed, verbose) first, then world adjustments.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		Width:   800,
		Height:  600,
		Log:     NewEventLog(false),
		rng:     rand.New(rand.NewSource(1)),
		walkRng: rand.New(rand.NewSource(2)),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	s.Maze = NewMaze(s.Width, s.Height, s.rng)
	s.Player = NewPlayer(s.Maze.StartNode(), s.Maze, 0)
	s.Hazards = NewHazardField(s.rng)
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(s)
		}
	}
	return s
}

// RunTicks advances the simulation n ticks.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.runOneTick()
		if predicate(s) {
			return s.Tick
		}
	}
	return -1
}

// runOneTick mirrors Game.simTick for the headless harness.
func (s *Sim) runOneTick() {
	s.Tick++
	s.Now += tickDt

	// 0. WALK: steer toward a random neighbor whenever resting on a node.
	s.steer()

	// 1. PLAYER.
	arrived := s.Player.Update(tickDt, s.Now)

	// 2. ARRIVAL.
	if arrived {
		s.NodesVisited++
		node := s.Player.CurrentNode()
		s.Log.AddVerbose(s.Tick, "player", "arrived", fmt.Sprintf("node=%d", node), float64(node))
		s.Hazards.OnNodeVisited(node, s.Maze.NodePosition(node), s.Now)
		if id, ok := s.Maze.GrowFrom(node); ok {
			s.Log.Add(s.Tick, "growth", "node_placed", fmt.Sprintf("id=%d from=%d", id, node), float64(id))
		}
		s.checkMilestone()
	}

	// 3. TRAIL.
	if s.Player.UpdateTrail(s.Now) {
		s.Log.Add(s.Tick, "trail", "hardened",
			fmt.Sprintf("cursor=%d history=%d", s.Player.HardenedCursor(), len(s.Player.History())), 0)
	}

	// 4. HAZARDS.
	if s.Hazards.Update(s.Now) {
		s.Log.AddVerbose(s.Tick, "hazard", "pulse_fired", "", 0)
	}

	// 5. COLLISION.
	if s.Hazards.CheckCollision(s.Player.Position(), playerRadius) {
		s.Player.ResetToStart(s.Now)
		s.Resets++
		s.Log.Add(s.Tick, "player", "reset", "pulse hit", 0)
	}

	// 6. GATES.
	s.Hazards.ActivateGateNear(s.Player.Position())
	if s.solveGates {
		s.feedActiveGate()
	}

	// 7. TIMERS.
	s.Maze.Update(tickDt)
}

// steer points the player at a uniformly random neighbor when it is resting
// on a node.
func (s *Sim) steer() {
	if s.Player.hasTarget {
		return
	}
	neighbors := s.Maze.Neighbors(s.Player.CurrentNode())
	if len(neighbors) == 0 {
		return
	}
	next := neighbors[s.walkRng.Intn(len(neighbors))]
	dir := s.Maze.NodePosition(next).Sub(s.Player.Position()).Normalized()
	s.Player.SetMovementDirection(dir)
}

// feedActiveGate types the next correct key into the active gate.
func (s *Sim) feedActiveGate() {
	for _, gate := range s.Hazards.Gates() {
		if !gate.Active || gate.Solved {
			continue
		}
		key := gate.Sequence[len(gate.Entered)]
		if gate.ProcessKey(key) {
			s.Log.Add(s.Tick, "gate", "solved", fmt.Sprintf("node=%d", gate.NodeID), float64(gate.NodeID))
		}
		return
	}
}

// checkMilestone mirrors Game.checkMilestone, capturing snapshots to memory.
func (s *Sim) checkMilestone() {
	level := milestoneForVisits(s.NodesVisited)
	if level <= s.Milestone {
		return
	}
	s.Milestone = level
	s.Maze.IncreaseDifficulty(level)
	s.Hazards.IncreaseDifficulty(level)
	s.Snapshots = append(s.Snapshots, s.Maze.CaptureSnapshot(level, "headless"))
	s.Log.Add(s.Tick, "milestone", "reached", fmt.Sprintf("level=%d", level), float64(level))
}

// SimStats is a compact run summary for the headless CLI.
type SimStats struct {
	Ticks           int
	NodesVisited    int
	Nodes           int
	Edges           int
	SeedEdges       int
	GrownEdges      int
	HardenedEdges   int
	BranchingFactor float64
	FiringNodes     int
	ActivePulses    int
	Gates           int
	GatesSolved     int
	Milestone       int
	Resets          int
}

// Stats summarizes the current simulation state.
func (s *Sim) Stats() SimStats {
	st := SimStats{
		Ticks:           s.Tick,
		NodesVisited:    s.NodesVisited,
		Nodes:           s.Maze.NodeCount(),
		Edges:           s.Maze.EdgeCount(),
		BranchingFactor: s.Maze.AverageBranchingFactor(),
		FiringNodes:     len(s.Hazards.FiringNodes()),
		ActivePulses:    s.Hazards.ActivePulseCount(),
		Milestone:       s.Milestone,
		Resets:          s.Resets,
	}
	for _, e := range s.Maze.Edges() {
		switch e.Provenance {
		case EdgeSeed:
			st.SeedEdges++
		case EdgeGrown:
			st.GrownEdges++
		case EdgeHardened:
			st.HardenedEdges++
		}
	}
	st.Gates, st.GatesSolved = s.Hazards.GateCount()
	return st
}
