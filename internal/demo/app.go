// Package demo is the interactive visualizer: a generated obstacle
// field, a movable start and destination, and an agent that walks the
// found path and repaths when newly painted obstacles cut it off.
package demo

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/liquidair/icaria/internal/nav"
	"github.com/liquidair/icaria/internal/terrain"
)

const (
	cellPx    = 18 // pixel size of one map cell
	hudHeight = 72 // pixel band below the map for HUD text

	fieldW       = 48
	fieldH       = 32
	fieldDensity = 0.12
	fieldSeed    = 42

	agentTicksPerStep = 8 // update ticks between agent path steps
)

// WindowWidth is the pixel width of the demo window.
func WindowWidth() int { return fieldW * cellPx }

// WindowHeight is the pixel height of the demo window, HUD included.
func WindowHeight() int { return fieldH*cellPx + hudHeight }

// moverKinds cycles with the M key.
var moverKinds = []string{"foot", "vehicle"}

// App is the ebiten application state.
type App struct {
	field *terrain.Map
	grid  *nav.CostGrid
	pf    *nav.Pathfinder
	log   *nav.SearchLog

	moverIdx int
	mover    nav.Mover

	start nav.Placement
	dest  nav.Placement
	last  nav.Result

	// Agent transit state: index of the next path placement and the
	// tick countdown until it is taken.
	agentAt   nav.Placement
	agentNext int
	agentWait int

	status string

	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool
}

// New builds the demo app over a generated field.
func New() *App {
	field := terrain.GenerateObstacleField(fieldW, fieldH, fieldDensity, fieldSeed)
	return newApp(field)
}

func newApp(field *terrain.Map) *App {
	field.ClearArea(1, 1, 3, 3)
	field.ClearArea(fieldW-4, fieldH-4, 3, 3)

	grid := nav.NewCostGrid(nav.Bounds{W: fieldW, H: fieldH})
	a := &App{
		field:    field,
		grid:     grid,
		pf:       nav.NewPathfinder(grid, nav.Config{}),
		log:      nav.NewSearchLog(),
		start:    nav.Placement{Cell: nav.Cell{X: 2, Y: 2}, Heading: nav.HeadingEast},
		dest:     nav.Placement{Cell: nav.Cell{X: fieldW - 3, Y: fieldH - 3}, Heading: nav.HeadingAny},
		prevKeys: map[ebiten.Key]bool{},
	}
	a.pf.AttachLog(a.log)
	a.setMover(0)
	a.search()
	return a
}

// setMover switches the movement rule set. Cached remaining costs were
// priced under the old rules, so the cache is dropped.
func (a *App) setMover(idx int) {
	a.moverIdx = idx
	switch moverKinds[idx] {
	case "vehicle":
		a.mover = &terrain.VehicleMover{Map: a.field}
	default:
		a.mover = &terrain.FootMover{Map: a.field}
	}
	a.grid.InvalidateCache()
}

// search runs a fresh path request from the current start.
func (a *App) search() {
	a.last = a.pf.FindPath(a.start, a.dest, a.mover)
	a.agentAt = a.start
	a.agentNext = 1
	a.agentWait = agentTicksPerStep
	switch a.last.Status {
	case nav.StatusFound:
		a.status = fmt.Sprintf("found: cost=%d steps=%d expanded=%d",
			a.last.Cost, len(a.last.Path)-1, a.last.Expanded)
	default:
		a.status = fmt.Sprintf("%s after %d expansions", a.last.Status, a.last.Expanded)
	}
}

// repathFromAgent restarts the search from wherever the agent currently
// is, used when an obstacle appears on the remaining path mid-transit.
func (a *App) repathFromAgent() {
	a.start = a.agentAt
	a.search()
}

// paintWall drops a wall under the cursor cell. Terrain changed, so the
// remaining-cost cache is no longer trustworthy.
func (a *App) paintWall(x, y int) {
	if !a.field.InBounds(x, y) || a.field.Blocked(x, y) {
		return
	}
	a.field.SetObject(x, y, terrain.ObjectWall)
	a.grid.InvalidateCache()
	if a.pathCrosses(nav.Cell{X: x, Y: y}) {
		a.repathFromAgent()
	}
}

// pathCrosses reports whether the not-yet-walked remainder of the
// current path passes over c.
func (a *App) pathCrosses(c nav.Cell) bool {
	if a.last.Status != nav.StatusFound {
		return false
	}
	for i := a.agentNext - 1; i < len(a.last.Path); i++ {
		if i >= 0 && a.last.Path[i].Cell == c {
			return true
		}
	}
	return false
}

// stepAgent advances the agent along the found path.
func (a *App) stepAgent() {
	if a.last.Status != nav.StatusFound || a.agentNext >= len(a.last.Path) {
		return
	}
	a.agentWait--
	if a.agentWait > 0 {
		return
	}
	a.agentWait = agentTicksPerStep
	a.agentAt = a.last.Path[a.agentNext]
	a.agentNext++
}

// keyPressed is an edge-triggered key check.
func (a *App) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := a.prevKeys[k]
	a.prevKeys[k] = down
	return down && !was
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/cellPx, my/cellPx

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !a.prevMouseLeft && a.field.InBounds(cx, cy) && !a.field.Blocked(cx, cy) {
		a.start = nav.Placement{Cell: nav.Cell{X: cx, Y: cy}, Heading: a.start.Heading}
		a.search()
	}
	a.prevMouseLeft = left

	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && !a.prevMouseRight && a.field.InBounds(cx, cy) && !a.field.Blocked(cx, cy) {
		a.dest = nav.Placement{Cell: nav.Cell{X: cx, Y: cy}, Heading: nav.HeadingAny}
		// New destination: cached remaining costs point at the old one.
		a.grid.InvalidateCache()
		a.search()
	}
	a.prevMouseRight = right

	if ebiten.IsKeyPressed(ebiten.KeyO) {
		a.paintWall(cx, cy)
	}
	if a.keyPressed(ebiten.KeyM) {
		a.setMover((a.moverIdx + 1) % len(moverKinds))
		a.search()
	}
	if a.keyPressed(ebiten.KeyR) {
		a.search()
	}
	if a.keyPressed(ebiten.KeyC) {
		// Clipboard errors only surface in the HUD; the demo keeps
		// running without a clipboard provider.
		if err := clipboard.WriteAll(a.report()); err != nil {
			a.status = fmt.Sprintf("clipboard copy failed: %v", err)
		} else {
			a.status = "search report copied to clipboard"
		}
	}

	a.stepAgent()
	return nil
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fieldW * cellPx, fieldH*cellPx + hudHeight
}

// report renders a plain-text summary of the last search, suitable for
// pasting into an issue.
func (a *App) report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- icaria search report ---\n")
	fmt.Fprintf(&b, "field=%dx%d mover=%s\n", a.field.Width, a.field.Height, moverKinds[a.moverIdx])
	fmt.Fprintf(&b, "start=%s dest=%s\n", a.start, a.dest)
	fmt.Fprintf(&b, "status=%s cost=%d expanded=%d\n", a.last.Status, a.last.Cost, a.last.Expanded)
	if a.last.Status == nav.StatusFound {
		fmt.Fprintf(&b, "path (%d placements):\n", len(a.last.Path))
		for _, p := range a.last.Path {
			fmt.Fprintf(&b, "  %s\n", p)
		}
	}
	entries := a.log.Entries()
	if n := len(entries); n > 0 {
		fmt.Fprintf(&b, "recent log:\n")
		from := n - 12
		if from < 0 {
			from = 0
		}
		for _, e := range entries[from:] {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	return b.String()
}
