package recreate

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/insertion"
	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Random places each call, in the order given, into one of its feasible
// insertions chosen uniformly at random.
type Random struct{}

func (Random) Name() string { return "recreate.Random" }

func (Random) Apply(p *problem.Problem, s *solution.Solution, calls []int, rng *rand.Rand) error {
	for _, call := range calls {
		opts, err := insertion.FeasibleInsertions(p, s, call, false)
		if err != nil {
			return err
		}
		flat := flattenOptions(opts)
		if len(flat) == 0 {
			return insertion.ErrNoFeasibleInsertion
		}

		choice := flat[rng.Intn(len(flat))]
		if err := s.Add(choice.Vehicle, call, choice.Opt.PPos, choice.Opt.DPos); err != nil {
			return err
		}
	}

	return nil
}
