// Package alns ties the ruin, recreate, insertion, and solution packages
// together into the adaptive large neighborhood search loop: an operator
// Selector that adapts its sampling weights from observed reward, a
// two-phase simulated-annealing Controller, and RunExperiment, the single
// entry point that drives one experiment to a budget.
//
// Design goals:
//   - No hidden state across experiments: a Selector and a Controller are
//     constructed per experiment and carry all adaptive bookkeeping
//     themselves; RunExperiment holds only the incumbent/best solutions.
//   - Deterministic given a fixed RNG seed and a fixed operator ordering
//     (see rng.go for substream derivation when running several experiments
//     in parallel, one goroutine per problem instance).
package alns
