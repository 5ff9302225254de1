package alns

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// RunExperiment runs one adaptive large neighborhood search experiment
// starting from the all-outsourced initial solution, until budget is
// exhausted. Each iteration samples an operator, ruins and recreates a
// clone of the incumbent, evaluates it, accepts or rejects it via ctrl, and
// scores the chosen operator via sel — looping exactly the structure of
// spec §6's runExperiment surface.
func RunExperiment(p *problem.Problem, sel *Selector, ctrl *Controller, rng *rand.Rand, budget Budget) (Result, error) {
	start := time.Now()

	incumbent := solution.NewInitial(p)
	best := incumbent.Clone()
	bestCost := best.GetCost()

	iterFound := 0
	timeFound := time.Duration(0)
	iteration := 0

	for !budget.Done(iteration, time.Since(start)) {
		opIdx := sel.Select(rng)
		op := sel.Operators[opIdx]

		candidate := incumbent.Clone()
		k := sel.RuinSize(p.NumCalls(), rng)

		removed, err := op.Ruin.Apply(p, candidate, k, rng)
		if err != nil {
			return Result{}, err
		}
		if err := op.Recreate.Apply(p, candidate, removed, rng); err != nil {
			return Result{}, err
		}

		iteration++

		if !candidate.IsFeasible() {
			ctrl.SkipInfeasible()
			sel.Record(opIdx, sel.opts.RewardReject)
			ctrl.NotifyImprovement(false)
			maybeEscape(ctrl, &incumbent, best)
			maybeReweight(sel, iteration)
			continue
		}

		candidateCost := candidate.GetCost()
		incumbentCost := incumbent.GetCost()
		accepted := ctrl.Accept(candidateCost, incumbentCost, rng)
		improved := candidateCost < bestCost

		sel.Record(opIdx, sel.Reward(candidateCost, incumbentCost, bestCost, accepted))

		if accepted {
			incumbent = candidate
		}
		if improved {
			best = candidate.Clone()
			bestCost = candidateCost
			iterFound = iteration
			timeFound = time.Since(start)
		}

		ctrl.NotifyImprovement(improved)
		maybeEscape(ctrl, &incumbent, best)
		maybeReweight(sel, iteration)
	}

	return Result{
		BestSolution:    best,
		BestCost:        bestCost,
		IterFound:       iterFound,
		TimeFound:       timeFound,
		TotalIterations: iteration,
	}, nil
}

// maybeEscape resets the incumbent to best (without touching temperature)
// once Controller.ShouldEscape reports S consecutive non-improving
// iterations, per spec §4.7.
func maybeEscape(ctrl *Controller, incumbent **solution.Solution, best *solution.Solution) {
	if !ctrl.ShouldEscape() {
		return
	}
	*incumbent = best.Clone()
	ctrl.ResetEscapeCounter()
}

// maybeReweight applies the segmented reweighting rule every SegmentLength
// iterations.
func maybeReweight(sel *Selector, iteration int) {
	segment := sel.SegmentLength()
	if segment > 0 && iteration%segment == 0 {
		sel.Reweight()
	}
}
