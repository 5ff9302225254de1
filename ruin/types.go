package ruin

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Heuristic removes k calls from s (mutating it in place via
// solution.Solution.Remove) and returns their IDs.
type Heuristic interface {
	Apply(p *problem.Problem, s *solution.Solution, k int, rng *rand.Rand) ([]int, error)
	Name() string
}
