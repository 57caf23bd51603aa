package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// buildReport renders a plain-text telemetry report of the current run:
// graph shape, growth tuning, hazard population, and the tail of the visit
// history. Copied to the clipboard with F9 for pasting into bug reports.
func (g *Game) buildReport() string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- Synaptic Weave report ---\n")
	fmt.Fprintf(&b, "session=%s tick=%d t=%.2fs milestone=%d\n\n", g.sessionID, g.tick, g.now, g.milestone)

	fmt.Fprintf(&b, "== graph ==\n")
	seed, grown, hardened := 0, 0, 0
	for _, e := range g.maze.Edges() {
		switch e.Provenance {
		case EdgeSeed:
			seed++
		case EdgeGrown:
			grown++
		case EdgeHardened:
			hardened++
		}
	}
	fmt.Fprintf(&b, "nodes=%d edges=%d (seed=%d grown=%d hardened=%d)\n",
		g.maze.NodeCount(), g.maze.EdgeCount(), seed, grown, hardened)
	fmt.Fprintf(&b, "branching=%.3f growth_rate=%d branching_factor=%.2f\n\n",
		g.maze.AverageBranchingFactor(), g.maze.GrowthRate(), g.maze.BranchingFactor())

	fmt.Fprintf(&b, "== hazards ==\n")
	gates, solved := g.hazards.GateCount()
	fmt.Fprintf(&b, "firing_nodes=%d active_pulses=%d pulse_speed=%.0f\n",
		len(g.hazards.FiringNodes()), g.hazards.ActivePulseCount(), g.hazards.PulseSpeed())
	fmt.Fprintf(&b, "gates=%d solved=%d visits=%d\n\n", gates, solved, g.hazards.NodesVisited())

	fmt.Fprintf(&b, "== player ==\n")
	pos := g.player.Position()
	fmt.Fprintf(&b, "node=%d pos=(%.0f,%.0f) history_len=%d hardening_cursor=%d\n",
		g.player.CurrentNode(), pos.X, pos.Y, len(g.player.History()), g.player.HardenedCursor())

	history := g.player.History()
	tail := history
	if len(tail) > 20 {
		tail = tail[len(tail)-20:]
	}
	fmt.Fprintf(&b, "recent visits:")
	for _, id := range tail {
		fmt.Fprintf(&b, " %d", id)
	}
	b.WriteByte('\n')

	return b.String()
}

// copyToClipboard exports text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
