// Package scenario loads headless search scenarios from HCL files: one
// map block describing the generated field and any number of run blocks,
// each a start/destination pair under a named movement rule set.
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/liquidair/icaria/internal/nav"
	"github.com/liquidair/icaria/internal/terrain"
)

// MapBlock describes the generated obstacle field.
type MapBlock struct {
	Width           int     `hcl:"width"`
	Height          int     `hcl:"height"`
	ObstacleDensity float64 `hcl:"obstacle_density,optional"`
	Seed            int64   `hcl:"seed,optional"`
}

// RunBlock is one search request: mover kind, start placement and
// destination. Repeat > 1 re-runs the same search on the warmed grid to
// exercise the remaining-cost cache.
type RunBlock struct {
	Name        string `hcl:"name,label"`
	Mover       string `hcl:"mover"`
	Start       []int  `hcl:"start"`
	Heading     string `hcl:"heading"`
	Dest        []int  `hcl:"dest"`
	DestHeading string `hcl:"dest_heading,optional"`
	Repeat      int    `hcl:"repeat,optional"`
}

// Scenario is the root of one scenario file.
type Scenario struct {
	Map  *MapBlock   `hcl:"map,block"`
	Runs []*RunBlock `hcl:"run,block"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse decodes scenario source held in memory; filename appears in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, name string) (*Scenario, error) {
	var s Scenario
	if diags := gohcl.DecodeBody(body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", name, diags)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", name, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Map == nil {
		return fmt.Errorf("missing map block")
	}
	if s.Map.Width <= 0 || s.Map.Height <= 0 {
		return fmt.Errorf("map dimensions must be positive, got %dx%d", s.Map.Width, s.Map.Height)
	}
	if len(s.Runs) == 0 {
		return fmt.Errorf("no run blocks")
	}
	for _, r := range s.Runs {
		if r.Repeat <= 0 {
			r.Repeat = 1
		}
		if r.DestHeading == "" {
			r.DestHeading = "any"
		}
		if len(r.Start) != 2 || len(r.Dest) != 2 {
			return fmt.Errorf("run %q: start and dest must be [x, y] pairs", r.Name)
		}
		if _, err := r.NewMover(nil); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
		sh, err := parseHeading(r.Heading)
		if err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
		if sh == nav.HeadingAny {
			return fmt.Errorf("run %q: start heading must be concrete, not %q", r.Name, r.Heading)
		}
		if _, err := parseHeading(r.DestHeading); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}
	return nil
}

// parseHeading maps a scenario heading name to a nav.Heading.
func parseHeading(s string) (nav.Heading, error) {
	switch s {
	case "east":
		return nav.HeadingEast, nil
	case "north":
		return nav.HeadingNorth, nil
	case "west":
		return nav.HeadingWest, nil
	case "south":
		return nav.HeadingSouth, nil
	case "any":
		return nav.HeadingAny, nil
	default:
		return 0, fmt.Errorf("unknown heading %q", s)
	}
}

// BuildMap generates the obstacle field the scenario describes, with the
// start and destination pockets of every run cleared so no request is
// stillborn.
func (s *Scenario) BuildMap() *terrain.Map {
	m := terrain.GenerateObstacleField(s.Map.Width, s.Map.Height, s.Map.ObstacleDensity, s.Map.Seed)
	for _, r := range s.Runs {
		m.ClearArea(r.Start[0]-1, r.Start[1]-1, 3, 3)
		m.ClearArea(r.Dest[0]-1, r.Dest[1]-1, 3, 3)
	}
	return m
}

// StartPlacement returns the run's start placement. Call only after the
// scenario validated.
func (r *RunBlock) StartPlacement() nav.Placement {
	h, _ := parseHeading(r.Heading)
	return nav.Placement{Cell: nav.Cell{X: r.Start[0], Y: r.Start[1]}, Heading: h}
}

// DestPlacement returns the run's destination placement, possibly with
// the wildcard heading.
func (r *RunBlock) DestPlacement() nav.Placement {
	h, _ := parseHeading(r.DestHeading)
	return nav.Placement{Cell: nav.Cell{X: r.Dest[0], Y: r.Dest[1]}, Heading: h}
}

// NewMover builds the run's movement capability over m. With a nil map
// it only checks that the mover kind is known.
func (r *RunBlock) NewMover(m *terrain.Map) (nav.Mover, error) {
	switch r.Mover {
	case "foot":
		if m == nil {
			return nil, nil
		}
		return &terrain.FootMover{Map: m}, nil
	case "vehicle":
		if m == nil {
			return nil, nil
		}
		return &terrain.VehicleMover{Map: m}, nil
	default:
		return nil, fmt.Errorf("unknown mover %q (supported: foot, vehicle)", r.Mover)
	}
}

// Default returns the built-in scenario used when no file is given.
func Default() *Scenario {
	return &Scenario{
		Map: &MapBlock{Width: 48, Height: 32, ObstacleDensity: 0.15, Seed: 42},
		Runs: []*RunBlock{
			{
				Name:        "patrol",
				Mover:       "foot",
				Start:       []int{2, 2},
				Heading:     "east",
				Dest:        []int{45, 29},
				DestHeading: "any",
				Repeat:      2,
			},
			{
				Name:        "convoy",
				Mover:       "vehicle",
				Start:       []int{2, 29},
				Heading:     "east",
				Dest:        []int{45, 2},
				DestHeading: "any",
				Repeat:      2,
			},
		},
	}
}
