// Package ruin implements the removal (destroy) side of the adaptive large
// neighborhood search: heuristics that pick K calls out of the current
// solution and remove them outright (solution.Solution.Remove), leaving
// them unplaced for a recreate heuristic to reinsert — possibly back into
// the dummy outsource vehicle, if no real vehicle has room.
//
// Every heuristic implements the same small Heuristic interface, so the
// adaptive operator can pair any ruin heuristic with any recreate
// heuristic uniformly (see the alns package's CompoundOperator).
package ruin
