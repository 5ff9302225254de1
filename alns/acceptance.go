package alns

import (
	"math"
	"math/rand"
)

// minTemperatureFloor guards against a zero or negative T0 when the
// warm-up phase happens to see no non-improving candidate (deltaAverage
// stays 0), which would otherwise make the annealing phase divide by zero.
// This is a numeric safety net, not part of the original formula.
const minTemperatureFloor = 1e-9

// ControllerOptions parameterizes the two-phase simulated annealing
// acceptance scheme of spec §4.7.
type ControllerOptions struct {
	// ExplorationProbability is p0, the warm-up acceptance probability for
	// non-improving candidates.
	ExplorationProbability float64
	// FinalTemperature is Tf, the annealing phase's terminal temperature.
	FinalTemperature float64
	// WarmupIterations is W, the number of warm-up iterations.
	WarmupIterations int
	// TotalIterations is the total iteration budget (warm-up + annealing),
	// used to compute the cooling rate alpha = (Tf/T0)^(1/(iters-W)). A
	// wall-clock-only budget must still supply an estimate here; if
	// TotalIterations-WarmupIterations is below 1, alpha is computed over a
	// single iteration.
	TotalIterations int
	// EscapeAfter is S, the number of consecutive non-improving iterations
	// before the incumbent resets to the best-known solution.
	EscapeAfter int
}

// DefaultControllerOptions mirrors spec §4.7's recommended constants,
// excluding WarmupIterations/TotalIterations (both instance-dependent).
var DefaultControllerOptions = ControllerOptions{
	ExplorationProbability: 0.8,
	FinalTemperature:       0.1,
	EscapeAfter:            500,
}

// WithDefaults fills zero-valued tunables with DefaultControllerOptions'
// values; WarmupIterations and TotalIterations are left as given, since 0
// is meaningful there only as caller error, not "use the default".
func (o ControllerOptions) WithDefaults() ControllerOptions {
	if o.ExplorationProbability == 0 {
		o.ExplorationProbability = DefaultControllerOptions.ExplorationProbability
	}
	if o.FinalTemperature == 0 {
		o.FinalTemperature = DefaultControllerOptions.FinalTemperature
	}
	if o.EscapeAfter == 0 {
		o.EscapeAfter = DefaultControllerOptions.EscapeAfter
	}
	return o
}

// Controller drives acceptance across the warm-up and annealing phases of
// one experiment, plus the escape/restart counter. It holds no reference to
// any Solution; RunExperiment owns incumbent/best and asks Controller only
// "should I accept this delta" and "should I escape to best".
type Controller struct {
	opts ControllerOptions

	iteration int

	deltaAverage  float64
	warmupUpdates int

	annealingStarted bool
	temperature      float64
	temperature0     float64
	alpha            float64

	sinceImprovement int
}

// NewController builds a Controller. opts.WarmupIterations and
// opts.TotalIterations must be set by the caller (they are instance- and
// budget-dependent, so WithDefaults does not fill them).
func NewController(opts ControllerOptions) *Controller {
	return &Controller{opts: opts.WithDefaults()}
}

// Accept reports whether a candidate at candidateCost should replace the
// incumbent at incumbentCost, advancing the controller's internal phase and
// temperature by one iteration as a side effect. Call exactly once per
// search iteration, in iteration order.
func (c *Controller) Accept(candidateCost, incumbentCost int, rng *rand.Rand) bool {
	deltaE := float64(candidateCost - incumbentCost)

	var accept bool
	if c.iteration < c.opts.WarmupIterations {
		accept = c.acceptWarmup(deltaE, rng)
	} else {
		accept = c.acceptAnnealing(deltaE, rng)
	}

	c.iteration++
	return accept
}

func (c *Controller) acceptWarmup(deltaE float64, rng *rand.Rand) bool {
	if deltaE < 0 {
		return true
	}

	accept := rng.Float64() < c.opts.ExplorationProbability
	c.warmupUpdates++
	c.deltaAverage += (deltaE - c.deltaAverage) / float64(c.warmupUpdates)
	return accept
}

func (c *Controller) acceptAnnealing(deltaE float64, rng *rand.Rand) bool {
	if !c.annealingStarted {
		c.startAnnealing()
	}

	var accept bool
	if deltaE < 0 {
		accept = true
	} else {
		accept = rng.Float64() < math.Exp(-deltaE/c.temperature)
	}
	c.temperature *= c.alpha

	return accept
}

// startAnnealing computes T0 and alpha from the warm-up's observed average
// positive delta, per spec §4.7, and is called lazily on the first
// annealing-phase iteration.
func (c *Controller) startAnnealing() {
	avg := c.deltaAverage
	if avg <= 0 {
		avg = minTemperatureFloor
	}

	c.temperature0 = -avg / math.Log(c.opts.ExplorationProbability)
	if c.temperature0 <= 0 {
		c.temperature0 = minTemperatureFloor
	}
	c.temperature = c.temperature0

	remaining := c.opts.TotalIterations - c.opts.WarmupIterations
	if remaining < 1 {
		remaining = 1
	}
	c.alpha = math.Pow(c.opts.FinalTemperature/c.temperature0, 1.0/float64(remaining))

	c.annealingStarted = true
}

// SkipInfeasible advances the controller's iteration clock for one
// iteration whose candidate turned out infeasible, without touching
// temperature or the warm-up average — mirroring the reference
// implementation's "continue" on an infeasible neighbour, which still
// consumes one loop iteration but skips both the delta bookkeeping and the
// cooling step.
func (c *Controller) SkipInfeasible() {
	c.iteration++
}

// NotifyImprovement tells the controller whether this iteration produced a
// new best-known solution, maintaining the escape/restart counter.
func (c *Controller) NotifyImprovement(improved bool) {
	if improved {
		c.sinceImprovement = 0
	} else {
		c.sinceImprovement++
	}
}

// ShouldEscape reports whether S consecutive non-improving iterations have
// elapsed, per spec §4.7's escape/diversification rule. The caller resets
// the incumbent to best (without touching temperature) and then calls
// ResetEscapeCounter.
func (c *Controller) ShouldEscape() bool {
	return c.sinceImprovement >= c.opts.EscapeAfter
}

// ResetEscapeCounter clears the non-improvement streak after an escape.
func (c *Controller) ResetEscapeCounter() {
	c.sinceImprovement = 0
}

// Temperature returns the controller's current annealing temperature (0
// during warm-up, before it has been computed).
func (c *Controller) Temperature() float64 {
	return c.temperature
}
