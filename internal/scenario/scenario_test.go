package scenario

import (
	"strings"
	"testing"

	"github.com/liquidair/icaria/internal/nav"
)

const sampleScenario = `
map {
  width            = 24
  height           = 16
  obstacle_density = 0.1
  seed             = 9
}

run "patrol" {
  mover   = "foot"
  start   = [1, 1]
  heading = "east"
  dest    = [22, 14]
}

run "convoy" {
  mover        = "vehicle"
  start        = [1, 14]
  heading      = "south"
  dest         = [22, 1]
  dest_heading = "north"
  repeat       = 3
}
`

func TestParse_Sample(t *testing.T) {
	s, err := Parse([]byte(sampleScenario), "sample.hcl")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Map.Width != 24 || s.Map.Height != 16 {
		t.Fatalf("map dimensions wrong: %dx%d", s.Map.Width, s.Map.Height)
	}
	if len(s.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(s.Runs))
	}

	patrol := s.Runs[0]
	if patrol.Repeat != 1 {
		t.Fatalf("repeat should default to 1, got %d", patrol.Repeat)
	}
	if patrol.DestPlacement().Heading != nav.HeadingAny {
		t.Fatal("dest heading should default to the wildcard")
	}
	if got := patrol.StartPlacement(); got != (nav.Placement{Cell: nav.Cell{X: 1, Y: 1}, Heading: nav.HeadingEast}) {
		t.Fatalf("patrol start placement wrong: %s", got)
	}

	convoy := s.Runs[1]
	if convoy.Repeat != 3 {
		t.Fatalf("convoy repeat wrong: %d", convoy.Repeat)
	}
	if convoy.DestPlacement().Heading != nav.HeadingNorth {
		t.Fatalf("convoy dest heading wrong: %s", convoy.DestPlacement().Heading)
	}
}

func TestParse_UnknownMoverRejected(t *testing.T) {
	src := strings.Replace(sampleScenario, `"foot"`, `"hovercraft"`, 1)
	if _, err := Parse([]byte(src), "bad.hcl"); err == nil {
		t.Fatal("unknown mover kind should be rejected")
	} else if !strings.Contains(err.Error(), "hovercraft") {
		t.Fatalf("error should name the bad mover, got: %v", err)
	}
}

func TestParse_WildcardStartHeadingRejected(t *testing.T) {
	src := strings.Replace(sampleScenario, `heading = "east"`, `heading = "any"`, 1)
	if _, err := Parse([]byte(src), "bad.hcl"); err == nil {
		t.Fatal("wildcard start heading should be rejected")
	}
}

func TestParse_MissingMapRejected(t *testing.T) {
	src := `
run "r" {
  mover   = "foot"
  start   = [0, 0]
  heading = "east"
  dest    = [1, 1]
}
`
	if _, err := Parse([]byte(src), "bad.hcl"); err == nil {
		t.Fatal("scenario without a map block should be rejected")
	}
}

func TestParse_MalformedSourceRejected(t *testing.T) {
	if _, err := Parse([]byte(`map {`), "bad.hcl"); err == nil {
		t.Fatal("malformed HCL should be rejected")
	}
}

func TestBuildMap_ClearsRunEndpoints(t *testing.T) {
	s, err := Parse([]byte(sampleScenario), "sample.hcl")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	m := s.BuildMap()
	for _, r := range s.Runs {
		if m.Blocked(r.Start[0], r.Start[1]) {
			t.Fatalf("run %q start cell is blocked", r.Name)
		}
		if m.Blocked(r.Dest[0], r.Dest[1]) {
			t.Fatalf("run %q dest cell is blocked", r.Name)
		}
	}
}

func TestDefault_IsRunnable(t *testing.T) {
	s := Default()
	if err := s.validate(); err != nil {
		t.Fatalf("built-in scenario must validate: %v", err)
	}
	m := s.BuildMap()
	for _, r := range s.Runs {
		mover, err := r.NewMover(m)
		if err != nil || mover == nil {
			t.Fatalf("run %q mover construction failed: %v", r.Name, err)
		}
	}
}
