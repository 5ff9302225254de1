package recreate

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/insertion"
	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// RegretK repeatedly places the call with the greatest regret: the gap
// between its K-th best feasible insertion cost and its best one. Calls
// with few feasible options (a tight fit) are placed before calls that are
// cheap to defer, the opposite bias from Greedy's pure lowest-cost-first.
//
// DefaultK is used when K <= 0 (regret-2, the spec's baseline).
type RegretK struct {
	K int
}

// DefaultK is the regret depth applied when RegretK.K is not set.
const DefaultK = 2

func (r RegretK) Name() string { return "recreate.RegretK" }

func (r RegretK) depth() int {
	if r.K <= 0 {
		return DefaultK
	}
	return r.K
}

func (r RegretK) Apply(p *problem.Problem, s *solution.Solution, calls []int, _ *rand.Rand) error {
	remaining := append([]int(nil), calls...)
	k := r.depth()

	for len(remaining) > 0 {
		bestIdx, bestVehicle := -1, -1
		var bestOpt insertion.Option
		bestRegret := -1

		for i, call := range remaining {
			opts, err := insertion.FeasibleInsertions(p, s, call, false)
			if err != nil {
				return err
			}
			flat := flattenOptions(opts)
			if len(flat) == 0 {
				continue
			}

			top := flat[0]
			kthIndex := k - 1
			if kthIndex >= len(flat) {
				kthIndex = len(flat) - 1
			}
			regret := flat[kthIndex].Opt.Cost - top.Opt.Cost

			if bestIdx == -1 || regret > bestRegret ||
				(regret == bestRegret && top.Opt.Cost < bestOpt.Cost) {
				bestIdx, bestVehicle, bestOpt, bestRegret = i, top.Vehicle, top.Opt, regret
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
