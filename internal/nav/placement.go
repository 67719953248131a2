package nav

import "fmt"

// Cell is an integer grid coordinate. East is +X, North is +Y.
type Cell struct {
	X, Y int
}

// Heading is the direction an entity faces. A multi-cell footprint
// occupies different cells depending on heading, so search state is
// keyed on (cell, heading), not on the cell alone.
type Heading int8

const (
	// HeadingAny is a destination wildcard: the search may finish at the
	// destination cell facing any way. It is never stored in a node slot.
	HeadingAny Heading = -1

	HeadingEast  Heading = 0
	HeadingNorth Heading = 1
	HeadingWest  Heading = 2
	HeadingSouth Heading = 3

	headingCount = 4
)

// headingVectors maps each concrete heading to its unit step.
var headingVectors = [headingCount]Cell{
	{1, 0},  // east
	{0, 1},  // north
	{-1, 0}, // west
	{0, -1}, // south
}

// Vector returns the unit step for a concrete heading.
// HeadingAny has no vector and returns the zero cell.
func (h Heading) Vector() Cell {
	if h < 0 || h >= headingCount {
		return Cell{}
	}
	return headingVectors[h]
}

// Left returns the heading after a 90° counter-clockwise turn.
func (h Heading) Left() Heading {
	return (h + 1) % headingCount
}

// Right returns the heading after a 90° clockwise turn.
func (h Heading) Right() Heading {
	return (h + 3) % headingCount
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	return (h + 2) % headingCount
}

func (h Heading) String() string {
	switch h {
	case HeadingAny:
		return "any"
	case HeadingEast:
		return "east"
	case HeadingNorth:
		return "north"
	case HeadingWest:
		return "west"
	case HeadingSouth:
		return "south"
	default:
		return fmt.Sprintf("heading(%d)", int8(h))
	}
}

// Placement is a cell plus the heading the entity faces there. It is the
// unit of search state.
type Placement struct {
	Cell    Cell
	Heading Heading
}

// Matches reports whether p satisfies the destination dest. Equality is
// exact on both fields, except a destination with HeadingAny matches any
// heading at its cell.
func (p Placement) Matches(dest Placement) bool {
	if p.Cell != dest.Cell {
		return false
	}
	return dest.Heading == HeadingAny || p.Heading == dest.Heading
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d,%d %s)", p.Cell.X, p.Cell.Y, p.Heading)
}
