// Command headless-sim runs seeded random-walk simulations of the maze
// without a display and prints per-run and aggregate statistics. Useful for
// tuning growth and hazard parameters across many seeds.
package main

import (
	"flag"
	"fmt"

	"github.com/Draeloric/Synaptic-Weave/internal/game"
)

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 36000, "ticks per run (60 = 1s of play)")
	flag.Int64Var(&seedBase, "seed", 1, "seed for the first run")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "v", false, "print the event log of each run")
	flag.Parse()

	var agg game.SimStats
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		sim := game.NewSim(
			game.WithSeed(seed),
			game.WithGateSolver(true),
		)
		sim.RunTicks(ticks)
		st := sim.Stats()

		fmt.Printf("run %d seed=%d: visited=%d nodes=%d edges=%d (grown=%d hardened=%d) branching=%.2f pulses=%d gates=%d/%d milestone=%d resets=%d\n",
			i, seed, st.NodesVisited, st.Nodes, st.Edges, st.GrownEdges, st.HardenedEdges,
			st.BranchingFactor, st.ActivePulses, st.GatesSolved, st.Gates, st.Milestone, st.Resets)
		if verbose {
			fmt.Print(sim.Log.Format())
		}

		agg.NodesVisited += st.NodesVisited
		agg.Nodes += st.Nodes
		agg.Edges += st.Edges
		agg.GrownEdges += st.GrownEdges
		agg.HardenedEdges += st.HardenedEdges
		agg.BranchingFactor += st.BranchingFactor
		agg.Gates += st.Gates
		agg.GatesSolved += st.GatesSolved
		agg.Resets += st.Resets
	}

	n := float64(runs)
	fmt.Printf("\navg over %d runs: visited=%.1f nodes=%.1f edges=%.1f branching=%.2f gates solved=%.1f/%.1f resets=%.1f\n",
		runs,
		float64(agg.NodesVisited)/n,
		float64(agg.Nodes)/n,
		float64(agg.Edges)/n,
		agg.BranchingFactor/n,
		float64(agg.GatesSolved)/n,
		float64(agg.Gates)/n,
		float64(agg.Resets)/n)
}
