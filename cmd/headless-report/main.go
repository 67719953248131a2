package main

import (
	"flag"
	"fmt"

	"github.com/liquidair/icaria/internal/nav"
	"github.com/liquidair/icaria/internal/scenario"
	"github.com/liquidair/icaria/internal/terrain"
)

// runReport collects the outcomes of one scenario run block, repeats
// included. The first result is the cold search; later ones reuse the
// warmed cost grid.
type runReport struct {
	name    string
	mover   string
	results []nav.Result
}

func main() {
	var scenarioPath string
	var maxIterations int
	var verbose bool

	flag.StringVar(&scenarioPath, "scenario", "", "scenario HCL file (built-in scenario when empty)")
	flag.IntVar(&maxIterations, "max-iterations", 0, "forward search budget override (0 = default)")
	flag.BoolVar(&verbose, "verbose", false, "print per-episode search log lines")
	flag.Parse()

	sc := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		sc = loaded
	}

	fmt.Printf("=== Headless Pathfinding Report ===\n")
	fmt.Printf("map=%dx%d density=%.2f seed=%d runs=%d\n\n",
		sc.Map.Width, sc.Map.Height, sc.Map.ObstacleDensity, sc.Map.Seed, len(sc.Runs))

	field := sc.BuildMap()
	reports := make([]runReport, 0, len(sc.Runs))
	for _, r := range sc.Runs {
		sl := nav.NewSearchLog()
		rep, err := executeRun(r, field, maxIterations, sl)
		if err != nil {
			fmt.Printf("error: run %q: %v\n", r.Name, err)
			return
		}
		reports = append(reports, rep)
		printRun(rep)
		if verbose {
			for _, e := range sl.Entries() {
				fmt.Printf("    %s\n", e)
			}
		}
	}

	printAggregate(reports)
}

// executeRun performs a run block's searches on a fresh cost grid
// covering the whole field.
func executeRun(r *scenario.RunBlock, field *terrain.Map, maxIterations int, sl *nav.SearchLog) (runReport, error) {
	mover, err := r.NewMover(field)
	if err != nil {
		return runReport{}, err
	}

	grid := nav.NewCostGrid(nav.Bounds{W: field.Width, H: field.Height})
	pf := nav.NewPathfinder(grid, nav.Config{MaxIterations: maxIterations})
	pf.AttachLog(sl)

	rep := runReport{name: r.Name, mover: r.Mover}
	start := r.StartPlacement()
	dest := r.DestPlacement()
	for i := 0; i < r.Repeat; i++ {
		rep.results = append(rep.results, pf.FindPath(start, dest, mover))
	}
	return rep, nil
}

// printRun emits one block of per-run lines.
func printRun(rep runReport) {
	fmt.Printf("run %-10s mover=%-7s repeats=%d\n", rep.name, rep.mover, len(rep.results))
	for i, res := range rep.results {
		label := "cold"
		if i > 0 {
			label = "warm"
		}
		switch res.Status {
		case nav.StatusFound:
			fmt.Printf("  %s: found cost=%d steps=%d expanded=%d\n",
				label, res.Cost, len(res.Path)-1, res.Expanded)
		default:
			fmt.Printf("  %s: %s expanded=%d\n", label, res.Status, res.Expanded)
		}
	}
	if cold, warm, ok := coldWarmExpansions(rep); ok {
		fmt.Printf("  cache: expansion reduction %.0f%%\n", expansionReduction(cold, warm))
	}
	fmt.Println()
}

// coldWarmExpansions returns the first and last expansion counts of a
// run whose repeats all found a path. ok is false for single-shot or
// failed runs.
func coldWarmExpansions(rep runReport) (cold, warm int, ok bool) {
	if len(rep.results) < 2 {
		return 0, 0, false
	}
	for _, res := range rep.results {
		if res.Status != nav.StatusFound {
			return 0, 0, false
		}
	}
	return rep.results[0].Expanded, rep.results[len(rep.results)-1].Expanded, true
}

// expansionReduction is the percentage of forward expansions saved
// between a cold and a warm search.
func expansionReduction(cold, warm int) float64 {
	if cold <= 0 {
		return 0
	}
	return 100 * float64(cold-warm) / float64(cold)
}

// countStatuses tallies result statuses across every run and repeat.
func countStatuses(reports []runReport) (found, notFound, failed int) {
	for _, rep := range reports {
		for _, res := range rep.results {
			switch res.Status {
			case nav.StatusFound:
				found++
			case nav.StatusNotFound:
				notFound++
			case nav.StatusReconstructionFailed:
				failed++
			}
		}
	}
	return found, notFound, failed
}

// printAggregate emits the closing summary section.
func printAggregate(reports []runReport) {
	found, notFound, failed := countStatuses(reports)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("searches=%d found=%d not_found=%d reconstruction_failed=%d\n",
		found+notFound+failed, found, notFound, failed)

	reductions := 0
	var sum float64
	for _, rep := range reports {
		if cold, warm, ok := coldWarmExpansions(rep); ok {
			sum += expansionReduction(cold, warm)
			reductions++
		}
	}
	if reductions > 0 {
		fmt.Printf("avg cache expansion reduction over %d runs: %.0f%%\n",
			reductions, sum/float64(reductions))
	}
}
