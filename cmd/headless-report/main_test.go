package main

import (
	"testing"

	"github.com/liquidair/icaria/internal/nav"
	"github.com/liquidair/icaria/internal/scenario"
)

func TestExpansionReduction(t *testing.T) {
	if got := expansionReduction(200, 50); got != 75 {
		t.Fatalf("expected 75%%, got %v", got)
	}
	if got := expansionReduction(0, 10); got != 0 {
		t.Fatalf("zero cold expansions should report 0%%, got %v", got)
	}
}

func TestColdWarmExpansions(t *testing.T) {
	rep := runReport{results: []nav.Result{
		{Status: nav.StatusFound, Expanded: 120},
		{Status: nav.StatusFound, Expanded: 40},
	}}
	cold, warm, ok := coldWarmExpansions(rep)
	if !ok || cold != 120 || warm != 40 {
		t.Fatalf("expected cold=120 warm=40, got cold=%d warm=%d ok=%v", cold, warm, ok)
	}

	rep.results[1].Status = nav.StatusNotFound
	if _, _, ok := coldWarmExpansions(rep); ok {
		t.Fatal("failed repeats should not report a cache comparison")
	}

	single := runReport{results: []nav.Result{{Status: nav.StatusFound}}}
	if _, _, ok := coldWarmExpansions(single); ok {
		t.Fatal("single-shot runs should not report a cache comparison")
	}
}

func TestCountStatuses(t *testing.T) {
	reports := []runReport{
		{results: []nav.Result{
			{Status: nav.StatusFound},
			{Status: nav.StatusFound},
		}},
		{results: []nav.Result{
			{Status: nav.StatusNotFound},
			{Status: nav.StatusReconstructionFailed},
		}},
	}
	found, notFound, failed := countStatuses(reports)
	if found != 2 || notFound != 1 || failed != 1 {
		t.Fatalf("expected 2/1/1, got %d/%d/%d", found, notFound, failed)
	}
}

func TestExecuteRun_DefaultScenario(t *testing.T) {
	sc := scenario.Default()
	// Open field: every run must complete regardless of obstacle layout.
	sc.Map.ObstacleDensity = 0
	field := sc.BuildMap()

	for _, r := range sc.Runs {
		rep, err := executeRun(r, field, 0, nil)
		if err != nil {
			t.Fatalf("run %q failed: %v", r.Name, err)
		}
		if len(rep.results) != r.Repeat {
			t.Fatalf("run %q: expected %d results, got %d", r.Name, r.Repeat, len(rep.results))
		}
		for i, res := range rep.results {
			if res.Status != nav.StatusFound {
				t.Fatalf("run %q repeat %d: expected found, got %v", r.Name, i, res.Status)
			}
		}
	}
}
