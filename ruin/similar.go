package ruin

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Similar picks one seed call uniformly at random, then removes the next
// k-1 calls from that seed's precomputed relatedness list, in increasing
// order of relatedness score (most similar first).
type Similar struct{}

func (Similar) Name() string { return "ruin.Similar" }

func (Similar) Apply(p *problem.Problem, s *solution.Solution, k int, rng *rand.Rand) ([]int, error) {
	n := p.NumCalls()
	if k > n {
		k = n
	}
	if k == 0 {
		return nil, nil
	}

	seed := rng.Intn(n)
	if err := s.Remove(seed); err != nil {
		return nil, err
	}
	removed := []int{seed}

	for _, call := range p.Relatedness(seed) {
		if len(removed) >= k {
			break
		}
		if err := s.Remove(call); err != nil {
			return nil, err
		}
		removed = append(removed, call)
	}

	return removed, nil
}
