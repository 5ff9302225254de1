// Package insertion implements the feasible-insertion search used by every
// recreate heuristic: given an unplaced call, enumerate every (vehicle,
// pickup position, delivery position) that keeps that vehicle's route
// feasible, at its resulting total solution cost.
//
// Design goals:
//   - Tight pruning: arrival times are monotone non-decreasing along a
//     route, so a single infeasibility at a probed position rules out an
//     entire class of further probes without evaluating them. The pruning
//     rules below are the load-bearing part of this package's performance.
//   - No hidden state: FeasibleInsertions probes by mutating the given
//     solution.Solution directly (add, check, remove) and leaves it exactly
//     as it found it; it holds no cache of its own.
package insertion
