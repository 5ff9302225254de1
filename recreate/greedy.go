package recreate

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/insertion"
	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Greedy repeatedly places the single cheapest (call, position) pair among
// every still-unplaced call, across every vehicle, until all calls are
// placed. The insertion table for the remaining calls is recomputed fresh
// each round rather than patched incrementally: a placement changes the
// chosen vehicle's options for every remaining call and shifts every
// option's total cost, and recomputing the full table handles both at the
// price of re-probing vehicles the placement did not touch.
type Greedy struct{}

func (Greedy) Name() string { return "recreate.Greedy" }

func (Greedy) Apply(p *problem.Problem, s *solution.Solution, calls []int, _ *rand.Rand) error {
	remaining := append([]int(nil), calls...)

	for len(remaining) > 0 {
		bestIdx, bestVehicle := -1, -1
		var bestOpt insertion.Option

		for i, call := range remaining {
			opts, err := insertion.FeasibleInsertions(p, s, call, false)
			if err != nil {
				return err
			}
			for _, vi := range opts {
				for _, o := range vi.Options {
					if bestIdx == -1 || o.Cost < bestOpt.Cost {
						bestIdx, bestVehicle, bestOpt = i, vi.Vehicle, o
					}
				}
			}
		}

		if bestIdx == -1 {
			return insertion.ErrNoFeasibleInsertion
		}

		call := remaining[bestIdx]
		if err := s.Add(bestVehicle, call, bestOpt.PPos, bestOpt.DPos); err != nil {
			return err
		}
		remaining = removeAt(remaining, bestIdx)
	}

	return nil
}
