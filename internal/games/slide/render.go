package slide

import (
	"fmt"

	"github.com/vovakirdan/tui-slide/internal/collision"
	"github.com/vovakirdan/tui-slide/internal/core"
)

const helpLine = " arrows/wasd/hjkl move  p pause  r reset  q quit"

// viewport maps world units onto the play area of the screen.
// Row 0 is the HUD and the last row is the help line.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	playH := core.Max(1, dst.Height()-2)
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(playH) / worldH,
		top: 1,
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	x, y := core.V(p.X*v.sx, p.Y*v.sy).Floor()
	return x, y + v.top
}

// rect converts a world box to screen cells, never smaller than one cell.
func (v viewport) rect(b collision.Box) core.Rect {
	x0, y0 := v.cell(b.Origin)
	x1, y1 := v.cell(b.Max())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the obstacle, the actor hitbox and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	obstacleColor := core.ColorRed
	if g.last.Hit {
		obstacleColor = core.ColorBrightRed
	}
	dst.DrawBoxColored(vp.rect(g.obstacle), obstacleColor)
	g.drawBlockedFace(dst, vp)

	actorColor := core.ColorGreen
	if g.last.Hit {
		actorColor = core.ColorBrightYellow
	}
	dst.DrawBoxColored(vp.rect(g.body.Box()), actorColor)

	g.drawHUD(dst)
	dst.DrawTextColored(0, dst.Height()-1, helpLine, core.ColorGray)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "TIME UP", fmt.Sprintf("Contacts: %d  |  Press R to restart", g.stats.Contacts))
	}
}

// drawBlockedFace highlights the obstacle face the last contact snapped to.
func (g *Game) drawBlockedFace(dst *core.Screen, vp viewport) {
	if !g.last.Hit {
		return
	}

	r := vp.rect(g.obstacle)
	hb := g.body.Box()
	switch g.last.Axis {
	case collision.AxisX:
		x := r.X
		if hb.Origin.X >= g.obstacle.Max().X {
			x = r.Right() - 1
		}
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(x, y, '┃', core.ColorYellow)
		}
	case collision.AxisY:
		y := r.Y
		if hb.Origin.Y >= g.obstacle.Max().Y {
			y = r.Bottom() - 1
		}
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, '━', core.ColorYellow)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	contact := "-"
	if g.last.Hit {
		contact = g.last.Axis.String()
	}

	hud := fmt.Sprintf(" %s  pos %v  move %v  contact %s  hits %d",
		g.Title(), g.body.Position, g.lastMove, contact, g.stats.Contacts)

	if g.timed && g.cfg.Run.DurationTicks > 0 {
		rate := g.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		left := core.Max(0, g.cfg.Run.DurationTicks-g.tickCount)
		hud += fmt.Sprintf("  time %ds", (left+rate-1)/rate)
	}

	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorWhite)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─', core.ColorGray)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
