package recreate

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/pdptw-alns/insertion"
	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// DefaultBeamWidth is the beam width applied when Beam.Width is not set.
const DefaultBeamWidth = 3

// Beam is a width-limited beam search recreate heuristic: at each call in
// turn, every surviving partial-solution candidate is expanded by every one
// of its feasible insertions, and only the Width cheapest children survive
// into the next round. It is not registered by alns.DefaultOperators or
// cmd/alns-runner (see DESIGN.md); it is implemented because the Heuristic
// interface is small enough that keeping it costs nothing.
type Beam struct {
	Width int
}

func (b Beam) Name() string { return "recreate.Beam" }

func (b Beam) width() int {
	if b.Width <= 0 {
		return DefaultBeamWidth
	}
	return b.Width
}

type beamCandidate struct {
	sol  *solution.Solution
	cost int
}

func (b Beam) Apply(p *problem.Problem, s *solution.Solution, calls []int, _ *rand.Rand) error {
	width := b.width()
	beam := []beamCandidate{{sol: s.Clone(), cost: s.GetCost()}}

	for _, call := range calls {
		var next []beamCandidate

		for _, cand := range beam {
			opts, err := insertion.FeasibleInsertions(p, cand.sol, call, false)
			if err != nil {
				return err
			}
			for _, f := range flattenOptions(opts) {
				child := cand.sol.Clone()
				if err := child.Add(f.Vehicle, call, f.Opt.PPos, f.Opt.DPos); err != nil {
					return err
				}
				next = append(next, beamCandidate{sol: child, cost: child.GetCost()})
			}
		}

		sort.SliceStable(next, func(i, j int) bool { return next[i].cost < next[j].cost })
		if len(next) > width {
			next = next[:width]
		}
		beam = next

		if len(beam) == 0 {
			return insertion.ErrNoFeasibleInsertion
		}
	}

	*s = *beam[0].sol

	return nil
}
