package nav

import "math"

// openNode is an immutable snapshot held in the open queue. The live
// node in the grid may later be improved by a cheaper relaxation, in
// which case the snapshot is stale and is skipped on pop.
type openNode struct {
	at Placement
	g  int
	f  int
}

// openQueue is a slice-backed binary min-heap over f. The backing array
// is retained across searches so steady-state operation does not
// allocate. Duplicate relaxations leave stale snapshots in the heap
// (lazy deletion); the search verifies snapshots against the live grid
// on pop.
type openQueue struct {
	grid     *CostGrid
	dest     Placement
	speedMod int
	entries  []openNode
}

// reset prepares the queue for a new episode against dest.
func (q *openQueue) reset(dest Placement, speedMod int) {
	q.dest = dest
	q.speedMod = speedMod
	q.entries = q.entries[:0]
}

// heuristic is the Euclidean cell distance to the destination scaled by
// the episode's speed modifier. The modifier must lower-bound the
// per-distance-unit movement cost or optimality is lost.
func (q *openQueue) heuristic(c Cell) int {
	dx := float64(c.X - q.dest.Cell.X)
	dy := float64(c.Y - q.dest.Cell.Y)
	return int(math.Sqrt(dx*dx+dy*dy) * float64(q.speedMod))
}

// push relaxes the live node for at with candidate cost g and, on
// improvement, inserts a snapshot. Out-of-bounds placements are dropped
// silently so movement rules may speculate past the region edge. If g
// does not improve the stored cost the call is a no-op.
func (q *openQueue) push(at Placement, g int) {
	n, fresh := q.grid.resolve(at)
	if n == nil {
		return
	}
	if fresh {
		n.h = q.heuristic(at.Cell)
	}
	if g >= n.g {
		return
	}
	n.g = g

	f := g + n.h
	if n.z < InfiniteCost {
		// Exact remaining cost known from an earlier backward pass.
		f = g + n.z
	}

	q.entries = append(q.entries, openNode{at: at, g: g, f: f})

	// Sift up. The <= keeps equal-f ties on the newer, deeper entry.
	i := len(q.entries) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if q.entries[i].f > q.entries[parent].f {
			break
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

// popMin removes and returns the minimum-f snapshot. ok is false when
// the queue is empty.
func (q *openQueue) popMin() (e openNode, ok bool) {
	if len(q.entries) == 0 {
		return openNode{}, false
	}
	e = q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]

	// Sift down toward the smaller-f child.
	i := 0
	for {
		left := 2*i + 1
		if left >= len(q.entries) {
			break
		}
		smallest := left
		if right := left + 1; right < len(q.entries) && q.entries[right].f < q.entries[left].f {
			smallest = right
		}
		if q.entries[i].f <= q.entries[smallest].f {
			break
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
	return e, true
}

func (q *openQueue) len() int {
	return len(q.entries)
}
