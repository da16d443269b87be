package gauntlet

import (
	"fmt"

	"github.com/vkazmin/circle-gauntlet/internal/core"
	"github.com/vkazmin/circle-gauntlet/internal/geom"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	ObstacleChar   = '●'
	GoalChar       = '▒'
	EnemyChar      = '█'
	LifeMarkerChar = '♥'
)

// projection maps normalized field coordinates (y up) onto screen cells
// (row 0 at the top).
type projection struct {
	w, h int
}

func (p projection) cell(v geom.Vec2) (int, int) {
	x := int((v.X + 1) / 2 * float64(p.w-1))
	y := int((1 - v.Y) / 2 * float64(p.h-1))
	return x, y
}

func (p projection) radii(r float64) (float64, float64) {
	return r * float64(p.w-1) / 2, r * float64(p.h-1) / 2
}

// Render draws the current run into the screen buffer: field border, goal,
// obstacles, player, enemy, life markers, and the outcome banner once the
// run has ended.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	proj := projection{w: dst.Width(), h: dst.Height()}

	dst.DrawBox(0, 0, dst.Width(), dst.Height(), core.ColorGray)

	// Goal first so the player draws over it on approach.
	gx, gy := proj.cell(g.world.Goal())
	grx, gry := proj.radii(GoalRadius)
	dst.FillEllipse(gx, gy, grx, gry, GoalChar, core.ColorGreen)

	orx, ory := proj.radii(ObstacleRadius)
	for _, obs := range g.world.Obstacles() {
		ox, oy := proj.cell(obs.Pos)
		dst.FillEllipse(ox, oy, orx, ory, ObstacleChar, core.ColorRed)
	}

	player := g.world.Player()
	px, py := proj.cell(player.Pos)
	prx, pry := proj.radii(PlayerRadius)
	dst.FillEllipse(px, py, prx, pry, PlayerChar, core.ColorBrightBlue)

	if enemy := g.world.Enemy(); enemy != nil {
		ex, ey := proj.cell(enemy.Pos)
		erx, ery := proj.radii(EnemyWidth / 2)
		ew, eh := int(erx*2)+1, int(ery*2)+1
		dst.FillRect(ex-ew/2, ey-eh/2, ew, eh, EnemyChar, core.ColorBrightYellow)
	}

	for _, marker := range g.world.LifeMarkers() {
		mx, my := proj.cell(marker)
		dst.SetCell(mx, my, LifeMarkerChar, core.ColorBrightRed)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Lives: %d ", g.world.Life()), core.ColorWhite)

	switch g.reason {
	case ReasonWon:
		g.drawBanner(dst, "YOU WIN!")
	case ReasonDied:
		g.drawBanner(dst, "YOU DIED!")
	}
}

func (g *Game) drawBanner(dst *core.Screen, title string) {
	w := len(title) + 6
	h := 3
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
}
