package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Draeloric/Synaptic-Weave/internal/audio"
)

// tickDt is the fixed simulation timestep. Ebiten drives Update at 60 TPS;
// every tick advances the game clock by exactly this much.
const tickDt = 1.0 / 60.0

// GameState is the top-level screen state.
type GameState int

const (
	StateIntro GameState = iota
	StatePlaying
	StatePaused
	StateHelp
)

// tutorialMessages are shown one per step on the intro screen.
var tutorialMessages = []string{
	"Welcome to Synaptic Weave!",
	"You are navigating through a neural network maze.",
	"Use ARROW KEYS or WASD to move along the paths.",
	"As you move, the maze grows and evolves.",
	"Your movement leaves trails that harden into new paths.",
	"Watch out for RED PULSES - they'll send you back to start!",
	"GREEN NODES are logic gates - solve them by pressing the numbers shown.",
	"Press SPACE to continue or ENTER to skip tutorial.",
}

// Game wires the maze, player, hazards, and presentation together and
// implements ebiten.Game. All simulation state is mutated only from the
// single-threaded tick; rendering reads it between ticks.
type Game struct {
	cfg    Config
	width  float64
	height float64

	maze    *Maze
	player  *Player
	hazards *HazardField
	ui      *UI

	particles []particle
	rng       *rand.Rand

	now          float64
	tick         int
	nodesVisited int
	milestone    int

	sessionID string
	snapshots SnapshotWriter
	sounds    *audio.Manager

	state        GameState
	tutorialStep int
	quit         bool

	prevKeys map[ebiten.Key]bool
}

// New builds a game from the given config. snapshots receives milestone
// dumps; sounds may be nil to disable audio.
func New(cfg Config, snapshots SnapshotWriter, sounds *audio.Manager) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	maze := NewMaze(w, h, rng)

	g := &Game{
		cfg:       cfg,
		width:     w,
		height:    h,
		maze:      maze,
		hazards:   NewHazardField(rng),
		ui:        NewUI(),
		rng:       rng,
		sessionID: uuid.NewString(),
		snapshots: snapshots,
		sounds:    sounds,
		state:     StateIntro,
		prevKeys:  map[ebiten.Key]bool{},
	}
	g.player = NewPlayer(maze.StartNode(), maze, g.now)
	g.particles = initParticles(w, h, rng)
	return g
}

// Update implements ebiten.Game. Input is handled every frame; the sim only
// advances in the playing state.
func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	// The game clock advances in every state: pausing ages pulses and
	// trails, and a long pause is what lets the trail-hardening quiet
	// period elapse.
	g.now += tickDt

	// Decorative timers also run in every state so the background keeps
	// moving behind overlays.
	updateParticles(g.particles, g.width, g.height, g.rng)
	g.ui.Update(tickDt)

	if g.state != StatePlaying {
		return nil
	}
	g.simTick()
	return nil
}

// simTick runs one fixed-step simulation tick.
func (g *Game) simTick() {
	g.tick++

	// 1. PLAYER: move along the current edge, sample the trail.
	arrived := g.player.Update(tickDt, g.now)

	// 2. ARRIVAL: register the node with hazards, grow the maze, check
	// milestones.
	if arrived {
		g.nodesVisited++
		node := g.player.CurrentNode()
		g.hazards.OnNodeVisited(node, g.maze.NodePosition(node), g.now)
		g.maze.GrowFrom(node)
		g.checkMilestone()
	}

	// 3. TRAIL: prune old segments, harden due trails into edges.
	if g.player.UpdateTrail(g.now) {
		g.ui.ShowMessage("Trail hardened into new path!", 1.5, PlacementCenter)
		g.sounds.Play(audio.EventTrailHardened)
	}

	// 4. HAZARDS: tick emitters.
	if g.hazards.Update(g.now) {
		g.ui.ShowMessage("Warning: New pulse detected!", 1.5, PlacementTop)
		g.sounds.Play(audio.EventPulseWarning)
	}

	// 5. COLLISION: a pulse hit teleports the player back to start. This is
	// a game mechanic, not an error.
	if g.hazards.CheckCollision(g.player.Position(), playerRadius) {
		g.player.ResetToStart(g.now)
		g.ui.ShowMessage("Hit by pulse! Returning to start...", 3.0, PlacementCenter)
		g.sounds.Play(audio.EventCollision)
	}

	// 6. GATES: at most one gate is active, the one in range.
	g.hazards.ActivateGateNear(g.player.Position())

	// 7. TIMERS: node highlight decay.
	g.maze.Update(tickDt)
}

// milestoneForVisits maps total visits to a milestone level, 0 if none.
func milestoneForVisits(visited int) int {
	switch visited {
	case 25:
		return 1
	case 50:
		return 2
	case 100:
		return 3
	}
	return 0
}

// checkMilestone raises difficulty and emits a snapshot when a visit
// threshold is crossed.
func (g *Game) checkMilestone() {
	level := milestoneForVisits(g.nodesVisited)
	if level <= g.milestone {
		return
	}
	g.milestone = level
	g.maze.IncreaseDifficulty(level)
	g.hazards.IncreaseDifficulty(level)

	if g.snapshots != nil {
		// Fire-and-forget: a failed write must not interrupt play.
		if err := g.snapshots.WriteSnapshot(g.maze.CaptureSnapshot(level, g.sessionID)); err != nil {
			log.Printf("milestone snapshot: %v", err)
		}
	}

	g.ui.ShowMilestone(level)
	g.ui.ShowMessage("Difficulty increased! More hazards ahead!", 3.0, PlacementCenter)
	g.sounds.Play(audio.EventMilestone)
}

// handleInput polls held movement keys and dispatches edge-triggered keys.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Escape: pause toggle while playing, quit from the front screens.
	if pressed(ebiten.KeyEscape) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		default:
			g.quit = true
		}
	}

	// P: pause toggle.
	if pressed(ebiten.KeyP) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	// H: help screen toggle.
	if pressed(ebiten.KeyH) {
		switch g.state {
		case StatePlaying:
			g.state = StateHelp
		case StateHelp:
			g.state = StatePlaying
		}
	}

	// Tutorial navigation.
	if g.state == StateIntro {
		if pressed(ebiten.KeySpace) {
			g.tutorialStep++
			if g.tutorialStep >= len(tutorialMessages) {
				g.state = StatePlaying
			}
		}
		if pressed(ebiten.KeyEnter) {
			g.state = StatePlaying
		}
	}

	if g.state == StatePlaying {
		// Sequence-gate symbols 1-4, edge-triggered, routed only to the
		// active gate.
		gateKeys := [gateSymbolCount]ebiten.Key{
			ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		}
		for i, k := range gateKeys {
			if pressed(k) {
				if _, solved := g.hazards.ProcessKey(i + 1); solved {
					g.ui.ShowMessage("Gate unlocked!", 2.0, PlacementCenter)
					g.sounds.Play(audio.EventGateSolved)
				}
			}
		}

		// F9: copy the telemetry report to the clipboard.
		if pressed(ebiten.KeyF9) {
			if err := copyToClipboard(g.buildReport()); err != nil {
				log.Printf("clipboard: %v", err)
			} else {
				g.ui.ShowMessage("Report copied to clipboard", 1.5, PlacementTop)
			}
		}

		// Held movement keys, recomputed every frame.
		var dir Vec2
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			dir.X = -1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			dir.X = 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			dir.Y = -1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
			dir.Y = 1
		}
		g.player.SetMovementDirection(dir.Normalized())
	} else {
		g.player.SetMovementDirection(Vec2{})
	}

	g.prevKeys = currentKeys
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.width), int(g.height)
}
