package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Render constants.
const (
	edgeWidth      = 3
	gateNodeRadius = 20
	// debugCharWidth is the glyph advance of ebitenutil's debug font, used
	// to center text.
	debugCharWidth = 6
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	particleColor   = color.RGBA{R: 30, G: 50, B: 100, A: 100}
	playerColor     = color.RGBA{R: 0, G: 255, B: 200, A: 255}
	playerGlowColor = color.RGBA{R: 0, G: 255, B: 200, A: 100}
	trailColor      = color.RGBA{R: 0, G: 255, B: 200, A: 80}
	pulseRingColor  = color.RGBA{R: 255, G: 100, B: 100, A: 180}
	firingNodeColor = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	gateColor       = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	gateActiveColor = color.RGBA{R: 200, G: 255, B: 200, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	hudPanelColor   = color.RGBA{R: 20, G: 20, B: 50, A: 200}
)

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawParticles(screen)
	g.drawMaze(screen)
	g.drawTrails(screen)
	g.drawHazards(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
	g.drawMessages(screen)
	g.drawMilestoneBanner(screen)

	switch g.state {
	case StateIntro:
		g.drawIntro(screen)
	case StatePaused:
		g.drawPaused(screen)
	case StateHelp:
		g.drawHelp(screen)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for i := range g.particles {
		p := &g.particles[i]
		vector.FillCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), particleColor, false)
	}
}

func (g *Game) drawMaze(screen *ebiten.Image) {
	for _, e := range g.maze.Edges() {
		a := g.maze.NodePosition(e.A)
		b := g.maze.NodePosition(e.B)
		col := colornames.Steelblue
		if e.Provenance == EdgeHardened {
			col = hardenedEdgeColor
		}
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			edgeWidth, col, false)
	}

	for i := 0; i < g.maze.NodeCount(); i++ {
		id := NodeID(i)
		if _, isGate := g.hazards.Gates()[id]; isGate {
			continue // gates get their own styling in drawHazards
		}
		pos := g.maze.NodePosition(id)
		col := g.maze.NodeColor(id)
		if g.hazards.IsFiringNode(id) {
			col = firingNodeColor
		}
		if k := g.maze.highlightIntensity(id); k > 0 {
			col = blendToward(col, nodeHighlightColor, k)
		}
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), nodeRadius, col, false)
	}
}

func (g *Game) drawTrails(screen *ebiten.Image) {
	segs := g.player.TrailSegments()
	for i := 1; i < len(segs); i++ {
		age := (g.now - segs[i].t) / TrailLifetime
		alpha := float64(trailColor.A) * (1 - age)
		if alpha <= 0 {
			continue
		}
		col := color.RGBA{R: trailColor.R, G: trailColor.G, B: trailColor.B, A: uint8(alpha)}
		vector.StrokeLine(screen,
			float32(segs[i-1].pos.X), float32(segs[i-1].pos.Y),
			float32(segs[i].pos.X), float32(segs[i].pos.Y),
			3, col, false)
	}
}

func (g *Game) drawHazards(screen *ebiten.Image) {
	for _, fn := range g.hazards.FiringNodes() {
		for _, pu := range fn.Pulses {
			if !pu.Active || pu.Radius <= 0 {
				continue
			}
			vector.StrokeCircle(screen,
				float32(pu.Center.X), float32(pu.Center.Y), float32(pu.Radius),
				pulseThickness, pulseRingColor, false)
			vector.StrokeCircle(screen,
				float32(pu.Center.X), float32(pu.Center.Y), float32(pu.Radius),
				2, colornames.Crimson, false)
		}
	}

	for _, gate := range g.hazards.Gates() {
		col := gateColor
		if gate.Active {
			col = gateActiveColor
		}
		vector.FillCircle(screen,
			float32(gate.Position.X), float32(gate.Position.Y),
			gateNodeRadius, col, false)

		if gate.Solved {
			drawTextCentered(screen, "Gate Unlocked!", gate.Position.X, gate.Position.Y-30)
			continue
		}
		if gate.Active {
			prompt := fmt.Sprintf("Enter sequence of %d keys (1-4)", len(gate.Sequence))
			drawTextCentered(screen, prompt, gate.Position.X, gate.Position.Y-50)
			progress := ""
			for _, k := range gate.Entered {
				progress += fmt.Sprintf("%d", k)
			}
			drawTextCentered(screen, progress, gate.Position.X, gate.Position.Y-25)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	pos := g.player.Position()
	pulse := (math.Sin(g.now*5) + 1) * 2
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y),
		float32(playerRadius)+float32(pulse), playerGlowColor, false)
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y),
		playerRadius, playerColor, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	const hudX, hudY, hudW, hudH = 10, 10, 200, 100

	vector.FillRect(screen, hudX, hudY, hudW, hudH, hudPanelColor, false)
	vector.StrokeRect(screen, hudX, hudY, hudW, hudH, 1, colornames.Steelblue, false)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Depth: %d", g.nodesVisited), hudX+8, hudY+6)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Active Pulses: %d", g.hazards.ActivePulseCount()), hudX+8, hudY+26)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Branching: %.2f", g.maze.AverageBranchingFactor()), hudX+8, hudY+46)
	ebitenutil.DebugPrintAt(screen, "Press H for Help", hudX+8, hudY+72)
}

func (g *Game) drawMessages(screen *ebiten.Image) {
	for _, msg := range g.ui.Messages() {
		switch msg.Placement {
		case PlacementTop:
			drawTextCentered(screen, msg.Text, g.width/2, 50)
		default:
			drawTextCentered(screen, msg.Text, g.width/2, g.height-50)
		}
	}
}

func (g *Game) drawMilestoneBanner(screen *ebiten.Image) {
	level, age := g.ui.MilestoneBanner()
	if level == 0 {
		return
	}
	// Quick fade-in via a widening backdrop over the first half second.
	grow := math.Min(1, age*2)
	w := float32(260 * grow)
	vector.FillRect(screen, float32(g.width/2)-w/2, float32(g.height/2)-60, w, 40, hudPanelColor, false)
	drawTextCentered(screen, fmt.Sprintf("MILESTONE %d REACHED", level), g.width/2, g.height/2-48)
}

func (g *Game) drawIntro(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), overlayColor, false)
	if g.tutorialStep < len(tutorialMessages) {
		drawTextCentered(screen, tutorialMessages[g.tutorialStep], g.width/2, g.height/2-20)
		drawTextCentered(screen,
			fmt.Sprintf("(%d/%d)  SPACE: next   ENTER: skip", g.tutorialStep+1, len(tutorialMessages)),
			g.width/2, g.height/2+20)
	}
}

func (g *Game) drawPaused(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), overlayColor, false)
	drawTextCentered(screen, "PAUSED", g.width/2, g.height/2-10)
	drawTextCentered(screen, "Press ESC or P to resume", g.width/2, g.height/2+20)
}

var helpLines = []string{
	"SYNAPTIC WEAVE - HELP",
	"",
	"CONTROLS:",
	"  Move: Arrow keys or WASD",
	"  Pause: ESC or P",
	"  Help: H",
	"  Copy report: F9",
	"",
	"GAME CONCEPTS:",
	"  Depth: number of nodes you've visited",
	"  Active Pulses: hazardous waves that send you back to start",
	"  Branching: how interconnected the maze is",
	"",
	"GAMEPLAY:",
	"  The maze grows as you explore",
	"  Your trails harden into new paths after a few seconds",
	"  Red nodes emit dangerous pulses - avoid them!",
	"  Green nodes are logic gates - enter the key sequence",
	"  Reach milestones (25, 50, 100 nodes) to progress",
	"",
	"Press H to return to game",
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), overlayColor, false)
	y := 60
	for _, line := range helpLines {
		ebitenutil.DebugPrintAt(screen, line, int(g.width)/4, y)
		y += 22
	}
}

// drawTextCentered prints debug-font text horizontally centered on x.
func drawTextCentered(screen *ebiten.Image, text string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, text, int(x)-len(text)*debugCharWidth/2, int(y))
}

// blendToward mixes c toward target by k in [0,1].
func blendToward(c, target color.RGBA, k float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*k
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{R: mix(c.R, target.R), G: mix(c.G, target.G), B: mix(c.B, target.B), A: 255}
}
