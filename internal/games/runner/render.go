package runner

import (
	"fmt"

	"github.com/m-orlov/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody   = '█'
	RunnerHead   = '◆'
	RunnerLeg1   = '╱'
	RunnerLeg2   = '╲'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / worldW
	sy := float64(dst.Height()) / worldH

	// Ground
	groundRow := int(g.snap.GroundY * sy)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	// Obstacles
	for _, ob := range g.snap.Obstacles {
		g.drawObstacle(dst, cellRect(ob, sx, sy))
	}

	// Player
	g.drawRunner(dst, cellRect(g.snap.Player.Rect, sx, sy))

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)

	sched := g.tuning.ScheduleAt(g.snap.Elapsed)
	speedText := fmt.Sprintf(" Spd: x%.1f ", sched.SpeedRate)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.sparkle > 0 {
		msg := fmt.Sprintf("★ %d! ★", g.score/g.tuning.MilestoneEvery*g.tuning.MilestoneEvery)
		dst.DrawTextColored((dst.Width()-len(msg))/2, 1, msg, core.ColorBrightYellow)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// cellRect scales a world-space rect down to terminal cells, keeping at
// least one cell in each direction so small sprites never vanish.
func cellRect(r core.RectF, sx, sy float64) core.Rect {
	x := int(r.X * sx)
	y := int(r.Y * sy)
	w := core.Max(1, int(r.W*sx))
	h := core.Max(1, int(r.H*sy))
	return core.NewRect(x, y, w, h)
}

// drawObstacle renders a single obstacle column.
func (g *Game) drawObstacle(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, ObstacleChar, core.ColorGreen)
}

// drawRunner renders the player sprite with a simple leg animation.
func (g *Game) drawRunner(dst *core.Screen, r core.Rect) {
	// Body fill with a head marker in the top-right corner
	dst.DrawRect(core.NewRect(r.X, r.Y, r.W, core.Max(1, r.H-1)), RunnerBody, core.ColorCyan)
	dst.SetColored(r.Right()-1, r.Y, RunnerHead, core.ColorBrightWhite)

	// Legs on the bottom row (animated while grounded, tucked in air)
	legY := r.Bottom() - 1
	if g.snap.Player.Grounded {
		if g.legFrame < 5 {
			dst.SetColored(r.X, legY, RunnerLeg1, core.ColorCyan)
			dst.SetColored(r.Right()-1, legY, RunnerLeg2, core.ColorCyan)
		} else {
			dst.SetColored(r.X+r.W/2, legY, RunnerLeg1, core.ColorCyan)
			dst.SetColored(r.Right()-1, legY, RunnerLeg2, core.ColorCyan)
		}
	} else {
		dst.SetColored(r.X, legY, RunnerLeg1, core.ColorCyan)
		dst.SetColored(r.X+1, legY, RunnerLeg2, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
