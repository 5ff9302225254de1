package alns

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/pdptw-alns/solution"
)

// ErrBudgetExhausted marks the normal termination signal from Controller's
// bookkeeping. RunExperiment never returns it as a Go error from a clean
// run; it exists for callers layering their own cancellation on top (e.g. a
// future "stop early and still distinguish why" hook).
var ErrBudgetExhausted = errors.New("alns: iteration or time budget exhausted")

// AdaptiveOptions tunes the operator-selection reward scheme (spec §4.6)
// and the per-iteration ruin size. Zero-value fields fall back to the
// package defaults via WithDefaults.
type AdaptiveOptions struct {
	RewardBest    float64
	RewardBetter  float64
	RewardDiverse float64
	RewardReject  float64
	// ReactionFactor is r in w_i <- (1-r)*w_i + r*(s_i/max(n_i,1)).
	ReactionFactor float64
	// SegmentLength is R, the number of iterations between reweights.
	SegmentLength int
	// MinRuinFraction and MaxRuinFraction bound K as a fraction of C.
	MinRuinFraction float64
	MaxRuinFraction float64
}

// DefaultAdaptiveOptions mirrors spec §4.6's recommended constants.
var DefaultAdaptiveOptions = AdaptiveOptions{
	RewardBest:      4,
	RewardBetter:    2,
	RewardDiverse:   1,
	RewardReject:    0,
	ReactionFactor:  0.8,
	SegmentLength:   100,
	MinRuinFraction: 0.05,
	MaxRuinFraction: 0.30,
}

// WithDefaults returns o with every zero-valued field replaced by
// DefaultAdaptiveOptions' corresponding value.
func (o AdaptiveOptions) WithDefaults() AdaptiveOptions {
	d := DefaultAdaptiveOptions
	if o.RewardBest == 0 {
		o.RewardBest = d.RewardBest
	}
	if o.RewardBetter == 0 {
		o.RewardBetter = d.RewardBetter
	}
	if o.RewardDiverse == 0 {
		o.RewardDiverse = d.RewardDiverse
	}
	if o.ReactionFactor == 0 {
		o.ReactionFactor = d.ReactionFactor
	}
	if o.SegmentLength == 0 {
		o.SegmentLength = d.SegmentLength
	}
	if o.MinRuinFraction == 0 {
		o.MinRuinFraction = d.MinRuinFraction
	}
	if o.MaxRuinFraction == 0 {
		o.MaxRuinFraction = d.MaxRuinFraction
	}
	return o
}

// RuinSize returns K for a problem with numCalls calls, bounded to
// [ceil(MinRuinFraction*numCalls), ceil(MaxRuinFraction*numCalls)] and
// sampled uniformly within that range by rng.
func (o AdaptiveOptions) RuinSize(numCalls int, rng *rand.Rand) int {
	lo := int(math.Ceil(o.MinRuinFraction * float64(numCalls)))
	hi := int(math.Ceil(o.MaxRuinFraction * float64(numCalls)))
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if hi > numCalls {
		hi = numCalls
	}
	if lo == hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Budget bounds how long RunExperiment may keep iterating: either a fixed
// iteration count, a wall-clock duration, or both (whichever is hit first
// stops the run).
type Budget struct {
	MaxIterations int
	MaxDuration   time.Duration
}

// Done reports whether the budget has been exhausted, given the iteration
// count completed so far and the elapsed wall-clock time since the
// experiment started.
func (b Budget) Done(iterations int, elapsed time.Duration) bool {
	if b.MaxIterations > 0 && iterations >= b.MaxIterations {
		return true
	}
	if b.MaxDuration > 0 && elapsed >= b.MaxDuration {
		return true
	}
	return false
}

// Result is RunExperiment's return value: the best solution found, its
// cost, when it was found, and how many iterations the run completed.
type Result struct {
	BestSolution    *solution.Solution
	BestCost        int
	IterFound       int
	TimeFound       time.Duration
	TotalIterations int
}
