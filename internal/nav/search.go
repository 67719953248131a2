package nav

// Status is the discriminated outcome of a path request.
type Status uint8

const (
	// StatusNotFound means the search budget was exhausted before the
	// destination was reached. The caller may retry with a larger
	// MaxIterations or treat the destination as unreachable.
	StatusNotFound Status = iota

	// StatusFound means a path was produced.
	StatusFound

	// StatusReconstructionFailed means the backward pass hit a broken
	// predecessor chain. This signals a contract violation (concurrent
	// grid mutation, or a Mover whose reverse enumeration is not the
	// inverse of its forward one), not a recoverable runtime condition.
	StatusReconstructionFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusReconstructionFailed:
		return "reconstruction_failed"
	default:
		return "unknown"
	}
}

// Config bounds one Pathfinder's searches. Zero values select defaults.
type Config struct {
	// MaxIterations caps forward expansions per search so even an
	// unreachable destination terminates. Default 10000.
	MaxIterations int

	// MaxBacktrace caps backward reconstruction steps. Default 1000.
	MaxBacktrace int

	// SpeedMod scales the Euclidean heuristic. It must be a lower bound
	// on the cost of covering one cell of distance under the Mover in
	// use, or paths stop being optimal. Default 10, matching the base
	// move time of the shipped movers.
	SpeedMod int
}

func (c Config) withDefaults() Config {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 10000
	}
	if c.MaxBacktrace <= 0 {
		c.MaxBacktrace = 1000
	}
	if c.SpeedMod <= 0 {
		c.SpeedMod = 10
	}
	return c
}

// Result is the outcome of FindPath. Failures are values; no search
// outcome is reported by panic.
type Result struct {
	Status Status

	// Path runs from the start placement to the resolved destination
	// placement (concrete heading even when the request used
	// HeadingAny). Nil unless Status is StatusFound. The caller owns it.
	Path []Placement

	// Cost is the destination's final accumulated movement time.
	Cost int

	// Expanded counts forward expansions performed, stale pops included.
	Expanded int
}

// Pathfinder bundles a cost grid with an open queue and the scratch
// buffers one search needs. It is not safe for concurrent use: run one
// Pathfinder (with its own grid) per concurrently active search.
type Pathfinder struct {
	grid  *CostGrid
	queue openQueue
	cfg   Config
	log   *SearchLog

	moveBuf [MaxCandidateMoves]Move
	back    []Placement // backtrace scratch, goal→start order
}

// NewPathfinder creates a Pathfinder over grid. The grid's allocation
// and its z cache are reused across every search made through it.
func NewPathfinder(grid *CostGrid, cfg Config) *Pathfinder {
	pf := &Pathfinder{
		grid: grid,
		cfg:  cfg.withDefaults(),
	}
	pf.queue.grid = grid
	return pf
}

// Grid returns the cost grid the Pathfinder searches over.
func (pf *Pathfinder) Grid() *CostGrid {
	return pf.grid
}

// AttachLog directs per-episode search events into sl. Pass nil to
// detach.
func (pf *Pathfinder) AttachLog(sl *SearchLog) {
	pf.log = sl
}

// FindPath searches from start to dest using m. dest may carry
// HeadingAny; start must not. The forward pass is bounded by
// MaxIterations, the backward pass by MaxBacktrace.
func (pf *Pathfinder) FindPath(start, dest Placement, m Mover) Result {
	pf.log.BeginEpisode()
	pf.log.add(catSearch, "start", start.String()+" -> "+dest.String(), 0)

	if start.Matches(dest) {
		pf.log.add(catSearch, "trivial", "start matches destination", 0)
		return Result{Status: StatusFound, Path: []Placement{start}}
	}

	pf.grid.beginSearch()
	pf.queue.reset(dest, pf.cfg.SpeedMod)
	pf.queue.push(start, 0)

	goal, expanded, ok := pf.forward(dest, m)
	if !ok {
		pf.log.add(catSearch, "not_found", "budget exhausted", float64(expanded))
		return Result{Status: StatusNotFound, Expanded: expanded}
	}

	cost := pf.grid.GCost(goal)
	path, ok := pf.backtrace(start, goal, m)
	if !ok {
		pf.log.add(catSearch, "backtrace_failed", "broken predecessor chain", float64(expanded))
		return Result{Status: StatusReconstructionFailed, Expanded: expanded}
	}

	pf.log.add(catSearch, "found", goal.String(), float64(cost))
	return Result{Status: StatusFound, Path: path, Cost: cost, Expanded: expanded}
}

// forward runs the best-first expansion loop. It returns the resolved
// concrete goal placement when some pushed candidate matched dest.
func (pf *Pathfinder) forward(dest Placement, m Mover) (goal Placement, expanded int, found bool) {
	stale := 0
	for expanded < pf.cfg.MaxIterations {
		cur, ok := pf.queue.popMin()
		if !ok {
			pf.log.add(catForward, "queue_empty", "", float64(expanded))
			return Placement{}, expanded, false
		}
		expanded++

		// Lazy deletion: a snapshot beaten by a later relaxation no
		// longer represents the live node and must not be expanded.
		live := pf.grid.lookup(cur.at)
		if live == nil || live.g != cur.g {
			stale++
			continue
		}

		moves := m.CandidateMoves(cur.at, false, pf.moveBuf[:0])
		for _, mv := range moves {
			t := m.MovementTime(cur.at, mv.To, mv.BaseTime)
			if !m.CanMove(t) {
				continue
			}
			pf.queue.push(mv.To, cur.g+t)
			if !found && mv.To.Matches(dest) {
				goal = mv.To
				found = true
			}
		}
		if found {
			pf.log.add(catForward, "stale_skips", "", float64(stale))
			return goal, expanded, true
		}
	}
	pf.log.add(catForward, "stale_skips", "", float64(stale))
	return Placement{}, expanded, false
}

// backtrace walks from goal to start choosing minimal-g predecessors,
// writing exact remaining costs into the z cache as it goes, for every
// legal reverse candidate, not only the chosen one, so nearby slots
// benefit on future searches. Among predecessors sharing the minimal g
// the lowest move index wins, which keeps reconstruction deterministic.
// The returned path runs start→goal.
func (pf *Pathfinder) backtrace(start, goal Placement, m Mover) ([]Placement, bool) {
	cur := goal
	runZ := 0
	targetG := pf.grid.GCost(goal)
	pf.back = append(pf.back[:0], goal)

	for step := 0; step < pf.cfg.MaxBacktrace; step++ {
		if cur == start {
			// Reverse scratch into a caller-owned slice.
			path := make([]Placement, len(pf.back))
			for i, p := range pf.back {
				path[len(path)-1-i] = p
			}
			pf.log.add(catBacktrace, "steps", "", float64(len(path)-1))
			return path, true
		}

		moves := m.CandidateMoves(cur, true, pf.moveBuf[:0])
		best := -1
		bestG := targetG
		bestTime := 0
		for i, mv := range moves {
			t := m.MovementTime(mv.To, cur, mv.BaseTime)
			if !m.CanMove(t) {
				continue
			}
			if n, _ := pf.grid.resolve(mv.To); n != nil {
				if z := runZ + t; z < n.z {
					n.z = z
				}
				if n.g < bestG {
					best = i
					bestG = n.g
					bestTime = t
				}
			}
		}
		if best < 0 {
			return nil, false
		}

		cur = moves[best].To
		targetG = bestG
		runZ += bestTime
		pf.back = append(pf.back, cur)
	}
	return nil, false
}
