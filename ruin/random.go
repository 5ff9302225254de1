package ruin

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Random uniformly samples k distinct calls without replacement and
// removes them, via Floyd's sampling algorithm (constant-size working set,
// no shuffle of the whole call universe).
type Random struct{}

func (Random) Name() string { return "ruin.Random" }

// Apply samples k distinct call IDs from [0, p.NumCalls()) and removes
// them. removed is ordered by Floyd's algorithm's emission order (the order
// each call was first added to the selection set), which is a deterministic
// function of rng, not map iteration order (which Go randomizes per run).
// Downstream recreate heuristics are order-sensitive (tie-breaks, per-call
// processing order), so this order must be reproducible from rng alone.
func (Random) Apply(p *problem.Problem, s *solution.Solution, k int, rng *rand.Rand) ([]int, error) {
	n := p.NumCalls()
	if k > n {
		k = n
	}

	selected := make(map[int]bool, k)
	removed := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if selected[t] {
			t = j
		}
		selected[t] = true
		removed = append(removed, t)
	}

	for _, call := range removed {
		if err := s.Remove(call); err != nil {
			return nil, err
		}
	}

	return removed, nil
}
