// Package recreate implements the insertion (repair) side of the adaptive
// large neighborhood search: heuristics that take a set of unplaced call
// IDs and insert each exactly once into the current partial solution,
// always via a feasible placement found by the insertion package (the
// dummy outsource vehicle is always an option, so every heuristic here
// always succeeds in the structural sense — it may simply choose to leave
// a call outsourced when nothing cheaper is feasible).
//
// Every heuristic implements the same Heuristic interface, mirroring the
// ruin package, so the adaptive operator can pair any ruin heuristic with
// any recreate heuristic uniformly.
package recreate
