package terrain

import (
	"testing"

	"github.com/liquidair/icaria/internal/nav"
)

// checkInverse asserts that for every legal forward move p→q of m, the
// reverse enumeration at q lists p with the same base time. The backward
// reconstructor depends on this symmetry.
func checkInverse(t *testing.T, m nav.Mover, p nav.Placement) {
	t.Helper()
	var fwd, rev [nav.MaxCandidateMoves]nav.Move
	for _, mv := range m.CandidateMoves(p, false, fwd[:0]) {
		cost := m.MovementTime(p, mv.To, mv.BaseTime)
		if !m.CanMove(cost) {
			continue
		}
		found := false
		for _, back := range m.CandidateMoves(mv.To, true, rev[:0]) {
			if back.To == p && back.BaseTime == mv.BaseTime {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("reverse enumeration at %s omits predecessor %s", mv.To, p)
		}
	}
}

func TestFootMover_ReverseIsInverse(t *testing.T) {
	m := GenerateObstacleField(10, 10, 0.15, 3)
	fm := &FootMover{Map: m}
	for y := 1; y < 9; y += 2 {
		for x := 1; x < 9; x += 2 {
			for h := nav.HeadingEast; h <= nav.HeadingSouth; h++ {
				checkInverse(t, fm, nav.Placement{Cell: nav.Cell{X: x, Y: y}, Heading: h})
			}
		}
	}
}

func TestVehicleMover_ReverseIsInverse(t *testing.T) {
	m := GenerateObstacleField(10, 10, 0.15, 5)
	vm := &VehicleMover{Map: m}
	for y := 1; y < 9; y += 2 {
		for x := 1; x < 9; x += 2 {
			for h := nav.HeadingEast; h <= nav.HeadingSouth; h++ {
				checkInverse(t, vm, nav.Placement{Cell: nav.Cell{X: x, Y: y}, Heading: h})
			}
		}
	}
}

func TestFootMover_BranchingBounded(t *testing.T) {
	fm := &FootMover{Map: NewMap(5, 5)}
	var buf [nav.MaxCandidateMoves]nav.Move
	at := nav.Placement{Cell: nav.Cell{X: 2, Y: 2}, Heading: nav.HeadingEast}
	if n := len(fm.CandidateMoves(at, false, buf[:0])); n != 4 {
		t.Fatalf("foot forward branching should be 4, got %d", n)
	}
	if n := len(fm.CandidateMoves(at, true, buf[:0])); n != 4 {
		t.Fatalf("foot reverse branching should be 4, got %d", n)
	}
}

func TestFootMover_TerrainPricing(t *testing.T) {
	m := NewMap(5, 5)
	m.SetGround(2, 1, GroundMud)
	fm := &FootMover{Map: m}

	from := nav.Placement{Cell: nav.Cell{X: 1, Y: 1}, Heading: nav.HeadingEast}
	to := nav.Placement{Cell: nav.Cell{X: 2, Y: 1}, Heading: nav.HeadingEast}
	if got := fm.MovementTime(from, to, footStepTime); got != 16 {
		t.Fatalf("mud step should cost 16, got %d", got)
	}
}

func TestFootMover_DeepWaterIllegal(t *testing.T) {
	m := NewMap(5, 5)
	m.SetGround(2, 1, GroundDeepWater)
	fm := &FootMover{Map: m}

	from := nav.Placement{Cell: nav.Cell{X: 1, Y: 1}, Heading: nav.HeadingEast}
	to := nav.Placement{Cell: nav.Cell{X: 2, Y: 1}, Heading: nav.HeadingEast}
	cost := fm.MovementTime(from, to, footStepTime)
	if fm.CanMove(cost) {
		t.Fatalf("deep water must be illegal, got cost %d", cost)
	}
}

func TestVehicleMover_FootprintBlocking(t *testing.T) {
	m := NewMap(6, 6)
	vm := &VehicleMover{Map: m}

	// Target placement (3,2) facing east: trailing cell is (2,2).
	from := nav.Placement{Cell: nav.Cell{X: 2, Y: 2}, Heading: nav.HeadingEast}
	to := nav.Placement{Cell: nav.Cell{X: 3, Y: 2}, Heading: nav.HeadingEast}
	if !vm.CanMove(vm.MovementTime(from, to, vehicleForwardTime)) {
		t.Fatal("clear footprint should be legal")
	}

	m.SetObject(2, 2, ObjectWall)
	if vm.CanMove(vm.MovementTime(from, to, vehicleForwardTime)) {
		t.Fatal("blocked trailing cell must make the move illegal")
	}
}

func TestVehicleMover_TurnSwingsFootprint(t *testing.T) {
	m := NewMap(6, 6)
	vm := &VehicleMover{Map: m}

	// Turning north at (2,2) swings the trail onto (2,1).
	at := nav.Placement{Cell: nav.Cell{X: 2, Y: 2}, Heading: nav.HeadingEast}
	turned := nav.Placement{Cell: nav.Cell{X: 2, Y: 2}, Heading: nav.HeadingNorth}
	if !vm.CanMove(vm.MovementTime(at, turned, vehicleTurnTime)) {
		t.Fatal("clear turn should be legal")
	}
	m.SetObject(2, 1, ObjectWall)
	if vm.CanMove(vm.MovementTime(at, turned, vehicleTurnTime)) {
		t.Fatal("turn swinging the trail into a wall must be illegal")
	}
}

func TestVehicleMover_PathTurnsThenDrives(t *testing.T) {
	m := NewMap(5, 5)
	vm := &VehicleMover{Map: m}
	pf := nav.NewPathfinder(nav.NewCostGrid(nav.Bounds{W: 5, H: 5}), nav.Config{})

	res := pf.FindPath(
		nav.Placement{Cell: nav.Cell{X: 1, Y: 1}, Heading: nav.HeadingEast},
		nav.Placement{Cell: nav.Cell{X: 1, Y: 3}, Heading: nav.HeadingAny},
		vm,
	)
	if res.Status != nav.StatusFound {
		t.Fatalf("expected found, got %v", res.Status)
	}
	// Turn north (5), then two forward steps (20).
	if res.Cost != 25 {
		t.Fatalf("expected cost 25 (turn + two steps), got %d", res.Cost)
	}
	if len(res.Path) != 4 {
		t.Fatalf("expected 4 placements, got %d", len(res.Path))
	}
	if res.Path[1].Cell != res.Path[0].Cell {
		t.Fatalf("second placement should be the in-place turn, got %s", res.Path[1])
	}
}

func TestVehicleMover_PrefersDetourOverReversing(t *testing.T) {
	// A vehicle facing a wall directly ahead should turn and drive
	// around rather than back all the way, since reversing is priced
	// far above forward motion.
	m := NewMap(7, 7)
	m.SetObject(4, 3, ObjectWall)
	vm := &VehicleMover{Map: m}
	pf := nav.NewPathfinder(nav.NewCostGrid(nav.Bounds{W: 7, H: 7}), nav.Config{})

	res := pf.FindPath(
		nav.Placement{Cell: nav.Cell{X: 3, Y: 3}, Heading: nav.HeadingEast},
		nav.Placement{Cell: nav.Cell{X: 5, Y: 3}, Heading: nav.HeadingAny},
		vm,
	)
	if res.Status != nav.StatusFound {
		t.Fatalf("expected found, got %v", res.Status)
	}
	backups := 0
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		v := cur.Heading.Vector()
		if cur.Heading == prev.Heading &&
			(cur.Cell == nav.Cell{X: prev.Cell.X - v.X, Y: prev.Cell.Y - v.Y}) {
			backups++
		}
	}
	if backups != 0 {
		t.Fatalf("expected a turning detour with no reversing, got %d backups", backups)
	}
}
