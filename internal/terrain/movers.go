package terrain

import "github.com/liquidair/icaria/internal/nav"

// Base move times, before terrain factors.
const (
	footStepTime = 10

	vehicleForwardTime = 10
	vehicleTurnTime    = 5
	vehicleReverseTime = 25 // backing up costs more than driving forward
)

// FootMover is the 4-directional infantry capability. A step leaves the
// entity facing the direction it stepped; turning itself is free, so the
// reverse enumeration of a placement fans out over every predecessor
// heading of the cell behind it.
type FootMover struct {
	Map *Map
}

// CandidateMoves implements nav.Mover.
func (fm *FootMover) CandidateMoves(at nav.Placement, reverse bool, buf []nav.Move) []nav.Move {
	if reverse {
		v := at.Heading.Vector()
		from := nav.Cell{X: at.Cell.X - v.X, Y: at.Cell.Y - v.Y}
		for h := nav.HeadingEast; h <= nav.HeadingSouth; h++ {
			buf = append(buf, nav.Move{
				To:       nav.Placement{Cell: from, Heading: h},
				BaseTime: footStepTime,
			})
		}
		return buf
	}
	for h := nav.HeadingEast; h <= nav.HeadingSouth; h++ {
		v := h.Vector()
		to := nav.Cell{X: at.Cell.X + v.X, Y: at.Cell.Y + v.Y}
		buf = append(buf, nav.Move{
			To:       nav.Placement{Cell: to, Heading: h},
			BaseTime: footStepTime,
		})
	}
	return buf
}

// MovementTime implements nav.Mover: base time scaled by the destination
// cell's terrain factor, or InfiniteCost when the cell is blocked.
func (fm *FootMover) MovementTime(from, to nav.Placement, baseTime int) int {
	if fm.Map.Blocked(to.Cell.X, to.Cell.Y) {
		return nav.InfiniteCost
	}
	return baseTime * fm.Map.cellTimeFactor(to.Cell.X, to.Cell.Y) / timeFactorScale
}

// CanMove implements nav.Mover.
func (fm *FootMover) CanMove(cost int) bool {
	return cost < nav.InfiniteCost
}

// VehicleMover is a directional capability with a 1×2 footprint: the
// header cell plus a trailing cell directly behind the heading. It can
// drive forward, turn in place, or back up; each choice prices
// differently, and the footprint swings with the heading, which is why
// search state must carry the heading at all.
type VehicleMover struct {
	Map *Map
}

// CandidateMoves implements nav.Mover.
func (vm *VehicleMover) CandidateMoves(at nav.Placement, reverse bool, buf []nav.Move) []nav.Move {
	v := at.Heading.Vector()
	ahead := nav.Cell{X: at.Cell.X + v.X, Y: at.Cell.Y + v.Y}
	behind := nav.Cell{X: at.Cell.X - v.X, Y: at.Cell.Y - v.Y}

	if reverse {
		// Predecessors of at: it drove forward from behind, turned in
		// place from the adjacent heading, or backed up from ahead.
		buf = append(buf,
			nav.Move{To: nav.Placement{Cell: behind, Heading: at.Heading}, BaseTime: vehicleForwardTime},
			nav.Move{To: nav.Placement{Cell: at.Cell, Heading: at.Heading.Right()}, BaseTime: vehicleTurnTime},
			nav.Move{To: nav.Placement{Cell: at.Cell, Heading: at.Heading.Left()}, BaseTime: vehicleTurnTime},
			nav.Move{To: nav.Placement{Cell: ahead, Heading: at.Heading}, BaseTime: vehicleReverseTime},
		)
		return buf
	}
	buf = append(buf,
		nav.Move{To: nav.Placement{Cell: ahead, Heading: at.Heading}, BaseTime: vehicleForwardTime},
		nav.Move{To: nav.Placement{Cell: at.Cell, Heading: at.Heading.Left()}, BaseTime: vehicleTurnTime},
		nav.Move{To: nav.Placement{Cell: at.Cell, Heading: at.Heading.Right()}, BaseTime: vehicleTurnTime},
		nav.Move{To: nav.Placement{Cell: behind, Heading: at.Heading}, BaseTime: vehicleReverseTime},
	)
	return buf
}

// MovementTime implements nav.Mover. Every footprint cell of the target
// placement must be clear; the terrain factor comes from the header
// cell.
func (vm *VehicleMover) MovementTime(from, to nav.Placement, baseTime int) int {
	v := to.Heading.Vector()
	trail := nav.Cell{X: to.Cell.X - v.X, Y: to.Cell.Y - v.Y}
	if vm.Map.Blocked(to.Cell.X, to.Cell.Y) || vm.Map.Blocked(trail.X, trail.Y) {
		return nav.InfiniteCost
	}
	return baseTime * vm.Map.cellTimeFactor(to.Cell.X, to.Cell.Y) / timeFactorScale
}

// CanMove implements nav.Mover.
func (vm *VehicleMover) CanMove(cost int) bool {
	return cost < nav.InfiniteCost
}
