package nav

// InfiniteCost marks an unknown or illegal cost. Any movement time at or
// above it is treated as impassable.
const InfiniteCost = 1 << 30

// Bounds is the rectangular region a cost grid covers, in cells.
type Bounds struct {
	X, Y int // origin (inclusive)
	W, H int
}

// Contains reports whether c lies inside the bounds.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.X && c.Y >= b.Y && c.X < b.X+b.W && c.Y < b.Y+b.H
}

// node is the per-(cell, heading) search state.
//
// g and h are only meaningful while epoch matches the grid's current
// search episode; a stale slot reads as unvisited. z is a cached exact
// remaining cost to a destination, written by the backward pass, and
// survives across episodes until InvalidateCache.
type node struct {
	g     int
	h     int
	z     int
	epoch uint32
}

// CostGrid is a dense per-(cell, heading) store of search state, scoped
// to a bounds region. It is allocated once and reused across many search
// calls; freshness of g/h is tracked with an epoch stamp so a new search
// never pays for a full clear. A grid must not be shared by concurrent
// searches; use one CostGrid (one Pathfinder) per active search.
type CostGrid struct {
	bounds Bounds
	nodes  []node
	epoch  uint32
}

// NewCostGrid allocates a grid covering b. All cached remaining costs
// start unknown.
func NewCostGrid(b Bounds) *CostGrid {
	cg := &CostGrid{
		bounds: b,
		nodes:  make([]node, b.W*b.H*headingCount),
		// Zero-value slots must read as stale even before the first
		// search bumps the epoch.
		epoch: 1,
	}
	for i := range cg.nodes {
		cg.nodes[i].z = InfiniteCost
	}
	return cg
}

// Bounds returns the region the grid covers.
func (cg *CostGrid) Bounds() Bounds {
	return cg.bounds
}

// beginSearch starts a new episode: every slot's g/h becomes stale
// without touching the z cache.
func (cg *CostGrid) beginSearch() {
	cg.epoch++
}

// index returns the slot index for p, or -1 if p is out of bounds or has
// no concrete heading.
func (cg *CostGrid) index(p Placement) int {
	if !cg.bounds.Contains(p.Cell) || p.Heading < 0 || p.Heading >= headingCount {
		return -1
	}
	row := (p.Cell.Y-cg.bounds.Y)*cg.bounds.W + (p.Cell.X - cg.bounds.X)
	return row*headingCount + int(p.Heading)
}

// lookup returns the live node for p without initializing it, or nil if
// p is out of bounds. A node from a previous episode reads as unvisited.
func (cg *CostGrid) lookup(p Placement) *node {
	i := cg.index(p)
	if i < 0 {
		return nil
	}
	n := &cg.nodes[i]
	if n.epoch != cg.epoch {
		return nil
	}
	return n
}

// resolve returns the live node for p, stamping it into the current
// episode (g unknown) on first touch. fresh is true when the slot was
// just stamped and its h has not been computed yet. Returns nil for
// out-of-bounds placements, which callers drop silently.
func (cg *CostGrid) resolve(p Placement) (n *node, fresh bool) {
	i := cg.index(p)
	if i < 0 {
		return nil, false
	}
	n = &cg.nodes[i]
	if n.epoch != cg.epoch {
		n.epoch = cg.epoch
		n.g = InfiniteCost
		n.h = 0
		fresh = true
	}
	return n, fresh
}

// GCost returns the best known cost from the current episode's start to
// p, or InfiniteCost if p was never reached (or is out of bounds).
func (cg *CostGrid) GCost(p Placement) int {
	n := cg.lookup(p)
	if n == nil {
		return InfiniteCost
	}
	return n.g
}

// ZCost returns the cached exact remaining cost from p to a previously
// reconstructed destination, or InfiniteCost if unknown.
func (cg *CostGrid) ZCost(p Placement) int {
	i := cg.index(p)
	if i < 0 {
		return InfiniteCost
	}
	return cg.nodes[i].z
}

// InvalidateCache discards every cached remaining cost. Call it when the
// terrain or obstacle state under the grid changes; stale z values would
// otherwise steer future searches toward routes that no longer exist.
func (cg *CostGrid) InvalidateCache() {
	for i := range cg.nodes {
		cg.nodes[i].z = InfiniteCost
	}
}
