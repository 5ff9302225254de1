package insertion

import "errors"

// ErrNoFeasibleInsertion is returned by callers that require a placement
// into a real vehicle and find none feasible (the dummy outsource vehicle
// itself is excluded from consideration). FeasibleInsertions always
// succeeds, since the outsource entry never fails; this sentinel is for
// helpers layered on top of it.
var ErrNoFeasibleInsertion = errors.New("insertion: no feasible real-vehicle insertion")

// Option is a single candidate placement: the call's pickup and delivery
// indices within the vehicle's route as it stands after insertion (the
// arguments solution.Solution.Add takes), and the resulting total solution
// cost.
type Option struct {
	PPos, DPos, Cost int
}

// VehicleInsertions collects every feasible Option for one vehicle (or, for
// the dummy outsource vehicle, the single always-feasible option of leaving
// the call outsourced).
type VehicleInsertions struct {
	Vehicle int
	Options []Option
}
