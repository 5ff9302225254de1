package alns

import (
	"math/rand"

	"github.com/katalvlaran/pdptw-alns/recreate"
	"github.com/katalvlaran/pdptw-alns/ruin"
)

// CompoundOperator pairs one ruin heuristic with one recreate heuristic and
// carries its own adaptive-selection bookkeeping: a sampling Weight, an
// accumulating Score since the last reweight, and a Uses counter.
type CompoundOperator struct {
	Ruin     ruin.Heuristic
	Recreate recreate.Heuristic

	Weight float64
	Score  float64
	Uses   int
}

// Name identifies the pair for logging/diagnostics.
func (c *CompoundOperator) Name() string {
	return c.Ruin.Name() + "+" + c.Recreate.Name()
}

// Selector holds a set of compound operators and samples among them by
// roulette-wheel selection on Weight, per spec §4.6.
type Selector struct {
	Operators []*CompoundOperator
	opts      AdaptiveOptions
}

// NewSelector builds a Selector over ops under the given adaptive options.
// Operators with zero Weight are given weight 1; other weights, and every
// operator's Score and Uses, are kept as passed in.
func NewSelector(ops []*CompoundOperator, opts AdaptiveOptions) *Selector {
	for _, op := range ops {
		if op.Weight == 0 {
			op.Weight = 1
		}
	}
	return &Selector{Operators: ops, opts: opts.WithDefaults()}
}

// Select samples one operator with probability Weight_i / sum(Weight_j) and
// returns its index.
func (s *Selector) Select(rng *rand.Rand) int {
	total := 0.0
	for _, op := range s.Operators {
		total += op.Weight
	}
	if total <= 0 {
		return rng.Intn(len(s.Operators))
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, op := range s.Operators {
		acc += op.Weight
		if r < acc {
			return i
		}
	}
	return len(s.Operators) - 1
}

// Reward classifies how a candidate solution fared against the incumbent
// and the best-known solution, per spec §4.6's four-tier reward scheme.
func (s *Selector) Reward(candidateCost, incumbentCost, bestCost int, accepted bool) float64 {
	switch {
	case candidateCost < bestCost:
		return s.opts.RewardBest
	case accepted && candidateCost < incumbentCost:
		return s.opts.RewardBetter
	case accepted:
		return s.opts.RewardDiverse
	default:
		return s.opts.RewardReject
	}
}

// Record accumulates reward into operator i's running score and bumps its
// usage counter. Call once per iteration, after Reward.
func (s *Selector) Record(i int, reward float64) {
	op := s.Operators[i]
	op.Score += reward
	op.Uses++
}

// Reweight applies the segmented reweighting rule to every operator:
// w_i <- (1-r)*w_i + r*(s_i/max(n_i,1)), then resets s_i and n_i to zero.
// Call every SegmentLength iterations.
func (s *Selector) Reweight() {
	r := s.opts.ReactionFactor
	for _, op := range s.Operators {
		denom := op.Uses
		if denom < 1 {
			denom = 1
		}
		op.Weight = (1-r)*op.Weight + r*(op.Score/float64(denom))
		op.Score = 0
		op.Uses = 0
	}
}

// SegmentLength returns the configured reweighting period R.
func (s *Selector) SegmentLength() int { return s.opts.SegmentLength }

// RuinSize returns K for the given call count, per the selector's adaptive
// options.
func (s *Selector) RuinSize(numCalls int, rng *rand.Rand) int {
	return s.opts.RuinSize(numCalls, rng)
}

// DefaultOperators builds the six ruin x recreate combinations used by
// cmd/alns-runner unless overridden: every pairing of {Similar, Costly,
// Random} ruin with {Greedy, RegretK} recreate. This mirrors the operator
// list the reference implementation registers (Similar/Costly/Random ruin
// crossed with Greedy/Regret-k insertion); recreate.Beam is deliberately
// not included here (see DESIGN.md).
func DefaultOperators() []*CompoundOperator {
	ruins := []ruin.Heuristic{ruin.Similar{}, ruin.Costly{}, ruin.Random{}}
	recreates := []recreate.Heuristic{recreate.Greedy{}, recreate.RegretK{}}

	ops := make([]*CompoundOperator, 0, len(ruins)*len(recreates))
	for _, r := range ruins {
		for _, c := range recreates {
			ops = append(ops, &CompoundOperator{Ruin: r, Recreate: c, Weight: 1})
		}
	}
	return ops
}
