package recreate

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Heuristic inserts every call in calls into s exactly once (mutating it in
// place via solution.Solution.Add), choosing among feasible placements
// according to its own strategy.
type Heuristic interface {
	Apply(p *problem.Problem, s *solution.Solution, calls []int, rng *rand.Rand) error
	Name() string
}
