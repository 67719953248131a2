package nav

// MaxCandidateMoves is the largest number of moves CandidateMoves may
// return. Callers size their scratch buffers to it so enumeration never
// allocates.
const MaxCandidateMoves = 8

// Move is a candidate transition, priced but not yet validated.
// In a forward enumeration To is the successor placement; in a reverse
// enumeration To is the predecessor a move arrives from.
type Move struct {
	To       Placement
	BaseTime int
}

// Mover is the movement capability of one entity archetype. The search
// core consumes it as an abstract collaborator: it enumerates candidate
// moves and prices them, and knows nothing about search state.
//
// Implementations must be pure with respect to the search: no calls may
// mutate state the search observes.
type Mover interface {
	// CandidateMoves appends to buf every move the archetype could make
	// from at, ignoring obstacles, and returns the extended slice. At
	// most MaxCandidateMoves are produced. When reverse is true the
	// result is the set of moves arriving at `at`, the exact inverse of
	// the forward relation; it is used only by path reconstruction.
	CandidateMoves(at Placement, reverse bool, buf []Move) []Move

	// MovementTime returns the actual traversal cost of the move from
	// from to to, or a value >= InfiniteCost if terrain, footprint
	// collision, or an archetype rule forbids it.
	MovementTime(from, to Placement, baseTime int) int

	// CanMove reports whether cost is a legal movement time.
	CanMove(cost int) bool
}
