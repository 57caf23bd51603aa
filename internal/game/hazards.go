package game

import (
	"math/rand"
)

// Hazard constants.
const (
	pulseBaseSpeed      = 80  // px/s before difficulty scaling
	pulseMaxRadius      = 150 // px; pulses deactivate past this
	pulseThickness      = 10  // px; collision ring half-width
	gateInteractRadius  = 50  // px; distance at which a gate activates
	gateSymbolCount     = 4   // sequence alphabet: symbols 1..4
	gateVisitPeriod     = 8   // every Nth visited node becomes a gate
	firingVisitPeriod   = 4   // every Nth visited node becomes a firing node
	randomFiringMinimum = 20  // visits before chance-based firing nodes appear
)

// Pulse is an expanding circular hazard ring.
type Pulse struct {
	Center    Vec2
	StartTime float64
	Radius    float64
	Active    bool
	speed     float64
}

// NewPulse creates a pulse at center. The expansion speed is the field's
// current base speed jittered ±20% per instance.
func NewPulse(center Vec2, now, baseSpeed float64, rng *rand.Rand) *Pulse {
	return &Pulse{
		Center:    center,
		StartTime: now,
		Active:    true,
		speed:     baseSpeed * (0.8 + rng.Float64()*0.4),
	}
}

// Update recomputes the radius from elapsed time and reports whether the
// pulse is still active.
func (pu *Pulse) Update(now float64) bool {
	pu.Radius = (now - pu.StartTime) * pu.speed
	if pu.Radius > pulseMaxRadius {
		pu.Active = false
	}
	return pu.Active
}

// CollidesWith reports whether a circle of playerRadius at pos overlaps the
// pulse ring.
func (pu *Pulse) CollidesWith(pos Vec2, playerRadius float64) bool {
	if !pu.Active {
		return false
	}
	d := pos.Dist(pu.Center)
	return d >= pu.Radius-pulseThickness-playerRadius &&
		d <= pu.Radius+pulseThickness+playerRadius
}

// FiringNode periodically emits pulses from a fixed maze node.
type FiringNode struct {
	NodeID   NodeID
	Position Vec2
	Pulses   []*Pulse

	lastFireTime float64
	fireInterval float64
}

// NewFiringNode creates a firing node that fires its first pulse immediately.
// The initial re-fire interval is uniform in [2,4) seconds; later intervals
// are re-rolled in [3,6).
func NewFiringNode(id NodeID, pos Vec2, now, baseSpeed float64, rng *rand.Rand) *FiringNode {
	fn := &FiringNode{
		NodeID:       id,
		Position:     pos,
		lastFireTime: now,
		fireInterval: 2.0 + rng.Float64()*2.0,
	}
	fn.Pulses = append(fn.Pulses, NewPulse(pos, now, baseSpeed, rng))
	return fn
}

// Update fires a new pulse when due and drops expired ones. It reports
// whether a pulse was fired this call.
func (fn *FiringNode) Update(now, baseSpeed float64, rng *rand.Rand) bool {
	fired := false
	if now-fn.lastFireTime > fn.fireInterval {
		fn.Pulses = append(fn.Pulses, NewPulse(fn.Position, now, baseSpeed, rng))
		fn.lastFireTime = now
		fn.fireInterval = 3.0 + rng.Float64()*3.0
		fired = true
	}

	alive := fn.Pulses[:0]
	for _, pu := range fn.Pulses {
		if pu.Update(now) {
			alive = append(alive, pu)
		}
	}
	fn.Pulses = alive
	return fired
}

// CollidesWith reports whether any live pulse overlaps the player.
func (fn *FiringNode) CollidesWith(pos Vec2, playerRadius float64) bool {
	for _, pu := range fn.Pulses {
		if pu.CollidesWith(pos, playerRadius) {
			return true
		}
	}
	return false
}

// SequenceGate is a puzzle node requiring a fixed ordered key sequence.
type SequenceGate struct {
	NodeID   NodeID
	Position Vec2
	Sequence []int // symbols 1..gateSymbolCount
	Entered  []int
	Active   bool
	Solved   bool
}

// NewSequenceGate creates a gate with a random sequence of 3 to 5 symbols.
func NewSequenceGate(id NodeID, pos Vec2, rng *rand.Rand) *SequenceGate {
	length := 3 + rng.Intn(3)
	seq := make([]int, length)
	for i := range seq {
		seq[i] = 1 + rng.Intn(gateSymbolCount)
	}
	return &SequenceGate{NodeID: id, Position: pos, Sequence: seq}
}

// ProcessKey feeds one symbol to the gate and reports whether this key
// completed the sequence. Input is ignored unless the gate is active and
// unsolved. A wrong prefix clears the accumulated input; once solved, the
// gate never reports success again.
func (sg *SequenceGate) ProcessKey(key int) bool {
	if !sg.Active || sg.Solved {
		return false
	}
	sg.Entered = append(sg.Entered, key)

	for i, k := range sg.Entered {
		if sg.Sequence[i] != k {
			sg.Entered = sg.Entered[:0]
			return false
		}
	}
	if len(sg.Entered) == len(sg.Sequence) {
		sg.Solved = true
		return true
	}
	return false
}

// HazardField owns every pulse emitter and sequence gate, keyed by node id.
// Hazards are created once when a node first qualifies and never migrate.
// The pulse expansion speed is an explicit field threaded into each new
// pulse; difficulty raises it for future pulses only.
type HazardField struct {
	firingNodes map[NodeID]*FiringNode
	gates       map[NodeID]*SequenceGate

	nodesVisited   int
	pulseFrequency float64
	pulseSpeed     float64

	rng *rand.Rand
}

// NewHazardField creates an empty field at base difficulty.
func NewHazardField(rng *rand.Rand) *HazardField {
	return &HazardField{
		firingNodes:    map[NodeID]*FiringNode{},
		gates:          map[NodeID]*SequenceGate{},
		pulseFrequency: 0.1,
		pulseSpeed:     pulseBaseSpeed,
		rng:            rng,
	}
}

// OnNodeVisited applies the hazard placement policy to a newly visited node:
// every 8th visit spawns a sequence gate, every other 4th a firing node, and
// past the 20th visit any node has an extra pulseFrequency chance of firing.
func (hf *HazardField) OnNodeVisited(id NodeID, pos Vec2, now float64) {
	hf.nodesVisited++

	switch {
	case hf.nodesVisited%gateVisitPeriod == 0:
		hf.gates[id] = NewSequenceGate(id, pos, hf.rng)
	case hf.nodesVisited%firingVisitPeriod == 0:
		hf.firingNodes[id] = NewFiringNode(id, pos, now, hf.pulseSpeed, hf.rng)
	case hf.nodesVisited > randomFiringMinimum && hf.rng.Float64() < hf.pulseFrequency:
		hf.firingNodes[id] = NewFiringNode(id, pos, now, hf.pulseSpeed, hf.rng)
	}
}

// Update ticks every emitter and reports whether any new pulse was fired.
func (hf *HazardField) Update(now float64) bool {
	fired := false
	for _, fn := range hf.firingNodes {
		if fn.Update(now, hf.pulseSpeed, hf.rng) {
			fired = true
		}
	}
	return fired
}

// CheckCollision reports whether any live pulse overlaps the player.
func (hf *HazardField) CheckCollision(pos Vec2, playerRadius float64) bool {
	for _, fn := range hf.firingNodes {
		if fn.CollidesWith(pos, playerRadius) {
			return true
		}
	}
	return false
}

// ActivateGateNear activates the gate within interaction range of pos, if
// any, and deactivates all others. At most one gate is active at a time.
func (hf *HazardField) ActivateGateNear(pos Vec2) {
	for _, g := range hf.gates {
		g.Active = false
	}
	for _, g := range hf.gates {
		if pos.Dist(g.Position) <= gateInteractRadius {
			g.Active = true
			return
		}
	}
}

// ProcessKey routes one symbol key to the active gate. It returns the gate
// and true when the key solved it.
func (hf *HazardField) ProcessKey(key int) (*SequenceGate, bool) {
	for _, g := range hf.gates {
		if g.Active {
			if g.ProcessKey(key) {
				return g, true
			}
			return g, false
		}
	}
	return nil, false
}

// IncreaseDifficulty retunes hazard parameters for the given milestone:
// higher chance-based firing frequency, faster future pulses, and shortened
// (floored) re-fire intervals on existing emitters.
func (hf *HazardField) IncreaseDifficulty(milestone int) {
	hf.pulseFrequency = 0.15 + float64(milestone)*0.1
	hf.pulseSpeed = 100 + float64(milestone)*30

	for _, fn := range hf.firingNodes {
		fn.fireInterval = fn.fireInterval * 0.7
		if fn.fireInterval < 1.0 {
			fn.fireInterval = 1.0
		}
	}
}

// ActivePulseCount returns the number of live pulses across all emitters.
func (hf *HazardField) ActivePulseCount() int {
	n := 0
	for _, fn := range hf.firingNodes {
		n += len(fn.Pulses)
	}
	return n
}

// FiringNodes returns the emitters keyed by node id. Callers must not mutate.
func (hf *HazardField) FiringNodes() map[NodeID]*FiringNode { return hf.firingNodes }

// Gates returns the sequence gates keyed by node id. Callers must not mutate.
func (hf *HazardField) Gates() map[NodeID]*SequenceGate { return hf.gates }

// GateCount returns total and solved gate counts.
func (hf *HazardField) GateCount() (total, solved int) {
	for _, g := range hf.gates {
		total++
		if g.Solved {
			solved++
		}
	}
	return total, solved
}

// IsFiringNode reports whether the node hosts a pulse emitter.
func (hf *HazardField) IsFiringNode(id NodeID) bool {
	_, ok := hf.firingNodes[id]
	return ok
}

// PulseSpeed returns the current base pulse expansion speed.
func (hf *HazardField) PulseSpeed() float64 { return hf.pulseSpeed }

// NodesVisited returns the monotonic visit counter driving placement.
func (hf *HazardField) NodesVisited() int { return hf.nodesVisited }
