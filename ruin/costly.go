package ruin

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Costly iteratively picks the call whose removal most reduces its owning
// vehicle's cost, removes it, and repeats k times. Each iteration's delta is
// measured on a throwaway clone so the real solution is only ever mutated
// by the final, chosen removal.
type Costly struct{}

func (Costly) Name() string { return "ruin.Costly" }

// Apply does not use rng: the choice at every step is deterministic given
// the current solution (it accepts rng only to satisfy the Heuristic
// interface uniformly with Random and Similar).
func (Costly) Apply(p *problem.Problem, s *solution.Solution, k int, _ *rand.Rand) ([]int, error) {
	n := p.NumCalls()
	if k > n {
		k = n
	}

	removedSet := make(map[int]bool, k)
	removed := make([]int, 0, k)

	for i := 0; i < k; i++ {
		bestCall := -1
		bestDelta := 0

		for call := 0; call < n; call++ {
			if removedSet[call] {
				continue
			}
			loc := s.Location(call)
			vehicle := loc.Vehicle
			before := s.VehicleCost(vehicle)

			probe := s.Clone()
			if err := probe.Remove(call); err != nil {
				return nil, err
			}
			probe.UpdateCost(vehicle)
			after := probe.VehicleCost(vehicle)

			delta := before - after
			if bestCall == -1 || delta > bestDelta {
				bestCall = call
				bestDelta = delta
			}
		}

		if bestCall == -1 {
			break
		}
		if err := s.Remove(bestCall); err != nil {
			return nil, err
		}
		removedSet[bestCall] = true
		removed = append(removed, bestCall)
	}

	return removed, nil
}
