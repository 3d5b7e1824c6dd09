// Command anime_match is a short walkthrough of the matching and
// interpolation engine over the library's own documentation scenarios:
// coincident segments, a parallel offset, a partial overlap, and a
// two-sources-one-target mean.
package main

import (
	"fmt"

	"github.com/mikenye/anime"
	"github.com/mikenye/anime/point"
)

func main() {
	runScenario("coincident segments", [][]point.Point{
		{point.New(0, 0), point.New(10, 0)},
	}, [][]point.Point{
		{point.New(0, 0), point.New(10, 0)},
	}, 0.1, 1, []float64{7})

	runScenario("parallel offset within tolerance", [][]point.Point{
		{point.New(0, 0), point.New(10, 0)},
	}, [][]point.Point{
		{point.New(0, 1), point.New(10, 1)},
	}, 1.5, 1, []float64{7})

	runScenario("partial overlap", [][]point.Point{
		{point.New(0, 0), point.New(10, 0)},
	}, [][]point.Point{
		{point.New(4, 0), point.New(14, 0)},
	}, 0.1, 1, []float64{10})

	runScenario("two sources, one target", [][]point.Point{
		{point.New(0, 0), point.New(5, 0)},
		{point.New(5, 0), point.New(10, 0)},
	}, [][]point.Point{
		{point.New(0, 0), point.New(10, 0)},
	}, 0.1, 1, []float64{2, 8})
}

func runScenario(name string, source, target [][]point.Point, distTol, angleTol float64, y []float64) {
	fmt.Printf("--- %s ---\n", name)

	inst, err := anime.Build(source, target, distTol, angleTol)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}
	if err := inst.FindMatches(); err != nil {
		fmt.Println("find_matches error:", err)
		return
	}

	triples, err := inst.Matches()
	if err != nil {
		fmt.Println("matches error:", err)
		return
	}
	for _, t := range triples {
		fmt.Printf("  target %d <- source %d, shared_len=%.4f\n", t.TargetIndex, t.SourceIndex, t.SharedLen)
	}

	extensive, targets, err := inst.InterpolateExtensive(y)
	if err != nil {
		fmt.Println("extensive error:", err)
		return
	}
	for i, target := range targets {
		fmt.Printf("  extensive[target %d] = %.4f\n", target, extensive[i])
	}

	intensive, targets, err := inst.InterpolateIntensive(y)
	if err != nil {
		fmt.Println("intensive error:", err)
		return
	}
	for i, target := range targets {
		fmt.Printf("  intensive[target %d] = %.4f\n", target, intensive[i])
	}
	fmt.Println()
}
