package demo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/liquidair/icaria/internal/nav"
	"github.com/liquidair/icaria/internal/terrain"
)

var groundColors = map[terrain.GroundType]color.RGBA{
	terrain.GroundGrass:        {R: 58, G: 92, B: 48, A: 255},
	terrain.GroundDirt:         {R: 96, G: 78, B: 52, A: 255},
	terrain.GroundRoad:         {R: 88, G: 88, B: 92, A: 255},
	terrain.GroundSand:         {R: 142, G: 126, B: 84, A: 255},
	terrain.GroundGravel:       {R: 104, G: 100, B: 96, A: 255},
	terrain.GroundMud:          {R: 70, G: 56, B: 38, A: 255},
	terrain.GroundShallowWater: {R: 42, G: 70, B: 110, A: 255},
	terrain.GroundDeepWater:    {R: 22, G: 36, B: 72, A: 255},
}

var (
	objectColor  = color.RGBA{R: 30, G: 30, B: 32, A: 255}
	rubbleColor  = color.RGBA{R: 72, G: 66, B: 60, A: 255}
	pathColor    = color.RGBA{R: 230, G: 214, B: 96, A: 255}
	startColor   = color.RGBA{R: 110, G: 200, B: 120, A: 255}
	destColor    = color.RGBA{R: 220, G: 110, B: 100, A: 255}
	agentColor   = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	headingColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hudBgColor   = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	hudRuleColor = color.RGBA{R: 54, G: 74, B: 54, A: 255}
	titleColor   = color.RGBA{R: 180, G: 220, B: 180, A: 255}
)

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.drawField(screen)
	a.drawPath(screen)
	a.drawMarkers(screen)
	a.drawHUD(screen)
}

func (a *App) drawField(screen *ebiten.Image) {
	for y := 0; y < a.field.Height; y++ {
		for x := 0; x < a.field.Width; x++ {
			c := groundColors[a.field.Ground(x, y)]
			switch a.field.Object(x, y) {
			case terrain.ObjectNone:
			case terrain.ObjectRubble:
				c = rubbleColor
			default:
				c = objectColor
			}
			vector.FillRect(screen, float32(x*cellPx), float32(y*cellPx),
				float32(cellPx-1), float32(cellPx-1), c, false)
		}
	}
}

func (a *App) drawPath(screen *ebiten.Image) {
	if a.last.Status != nav.StatusFound {
		return
	}
	for i := 1; i < len(a.last.Path); i++ {
		x0, y0 := cellCenter(a.last.Path[i-1].Cell)
		x1, y1 := cellCenter(a.last.Path[i].Cell)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2.0, pathColor, true)
	}
}

func (a *App) drawMarkers(screen *ebiten.Image) {
	sx, sy := cellCenter(a.start.Cell)
	vector.FillCircle(screen, sx, sy, float32(cellPx)/3, startColor, true)

	dx, dy := cellCenter(a.dest.Cell)
	vector.StrokeCircle(screen, dx, dy, float32(cellPx)/3, 2.0, destColor, true)

	ax, ay := cellCenter(a.agentAt.Cell)
	vector.FillCircle(screen, ax, ay, float32(cellPx)/3, agentColor, true)
	if a.agentAt.Heading != nav.HeadingAny {
		v := a.agentAt.Heading.Vector()
		vector.StrokeLine(screen, ax, ay,
			ax+float32(v.X*cellPx/2), ay+float32(v.Y*cellPx/2),
			2.0, headingColor, true)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	top := a.field.Height * cellPx
	vector.FillRect(screen, 0, float32(top), float32(a.field.Width*cellPx), hudHeight, hudBgColor, false)
	vector.StrokeLine(screen, 0, float32(top), float32(a.field.Width*cellPx), float32(top), 1.0, hudRuleColor, false)

	text.Draw(screen, "icaria pathfinding demo", basicfont.Face7x13, 8, top+16, titleColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("mover=%s  start=%s  dest=%s",
		moverKinds[a.moverIdx], a.start, a.dest), 6, top+22)
	ebitenutil.DebugPrintAt(screen, a.status, 6, top+38)
	ebitenutil.DebugPrintAt(screen,
		"LMB start  RMB dest  O paint wall  M mover  R rerun  C copy report", 6, top+54)
}

func cellCenter(c nav.Cell) (float32, float32) {
	return float32(c.X*cellPx + cellPx/2), float32(c.Y*cellPx + cellPx/2)
}
