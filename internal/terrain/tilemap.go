package terrain

// GroundType identifies the base surface of a tile.
type GroundType uint8

const (
	GroundGrass        GroundType = iota // Default open ground
	GroundDirt                           // Packed earth path
	GroundRoad                           // Paved surface
	GroundSand                           // Sandy / arid patches
	GroundGravel                         // Loose stone
	GroundMud                            // Wet / churned ground
	GroundShallowWater                   // Fordable water
	GroundDeepWater                      // Impassable to every shipped mover
	groundTypeCount                      // sentinel
)

// timeFactorScale is the denominator applied to ground time factors:
// a factor of 10 leaves the base move time unchanged.
const timeFactorScale = 10

// groundTimeFactor returns the movement-time factor for a ground type,
// scaled by timeFactorScale. No surface is faster than the base factor
// of 10, which keeps a speed modifier of 10 an admissible heuristic
// lower bound for movers whose base move time is 10 per cell.
func groundTimeFactor(g GroundType) int {
	switch g {
	case GroundGrass:
		return 10
	case GroundDirt:
		return 10
	case GroundRoad:
		return 10
	case GroundSand:
		return 13
	case GroundGravel:
		return 12
	case GroundMud:
		return 16
	case GroundShallowWater:
		return 25
	default:
		return 10
	}
}

// ObjectType identifies an object sitting on a tile.
type ObjectType uint8

const (
	ObjectNone     ObjectType = iota // Empty cell
	ObjectWall                       // Structural wall
	ObjectBoulder                    // Large rock
	ObjectTree                       // Tree trunk (1x1 cell)
	ObjectWreck                      // Abandoned vehicle hull
	ObjectRubble                     // Heaped debris, slows but doesn't block
	objectTypeCount                  // sentinel
)

// objectBlocksMovement returns true if the object is impassable.
func objectBlocksMovement(o ObjectType) bool {
	switch o {
	case ObjectWall, ObjectBoulder, ObjectTree, ObjectWreck:
		return true
	default:
		return false
	}
}

// objectTimeFactor returns the movement-time factor for objects that
// slow but don't block, scaled by timeFactorScale. Only meaningful when
// objectBlocksMovement returns false.
func objectTimeFactor(o ObjectType) int {
	switch o {
	case ObjectRubble:
		return 18
	default:
		return 10
	}
}

// Map is a dense tile map: one ground type and one optional object per
// cell. It is the obstacle/terrain collaborator the search engine prices
// moves against; the engine itself never sees it directly, only through
// a Mover.
type Map struct {
	Width, Height int
	ground        []GroundType
	objects       []ObjectType
}

// NewMap creates an all-grass, object-free map.
func NewMap(width, height int) *Map {
	return &Map{
		Width:   width,
		Height:  height,
		ground:  make([]GroundType, width*height),
		objects: make([]ObjectType, width*height),
	}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Ground returns the ground type at (x, y). Out-of-bounds cells read as
// deep water so no mover will price a move onto them.
func (m *Map) Ground(x, y int) GroundType {
	if !m.InBounds(x, y) {
		return GroundDeepWater
	}
	return m.ground[y*m.Width+x]
}

// Object returns the object at (x, y), ObjectNone when out of bounds.
func (m *Map) Object(x, y int) ObjectType {
	if !m.InBounds(x, y) {
		return ObjectNone
	}
	return m.objects[y*m.Width+x]
}

// SetGround writes the ground type at (x, y). Out-of-bounds writes are
// ignored.
func (m *Map) SetGround(x, y int, g GroundType) {
	if m.InBounds(x, y) {
		m.ground[y*m.Width+x] = g
	}
}

// SetObject places an object at (x, y). Out-of-bounds writes are
// ignored.
func (m *Map) SetObject(x, y int, o ObjectType) {
	if m.InBounds(x, y) {
		m.objects[y*m.Width+x] = o
	}
}

// Blocked returns true if no ground mover can stand on (x, y): off-map,
// a blocking object, or deep water.
func (m *Map) Blocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	if objectBlocksMovement(m.objects[y*m.Width+x]) {
		return true
	}
	return m.ground[y*m.Width+x] == GroundDeepWater
}

// cellTimeFactor combines ground and object slow-downs for one cell,
// scaled by timeFactorScale. Callers check Blocked first.
func (m *Map) cellTimeFactor(x, y int) int {
	g := groundTimeFactor(m.Ground(x, y))
	o := objectTimeFactor(m.Object(x, y))
	return g * o / timeFactorScale
}
