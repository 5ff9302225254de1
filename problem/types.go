package problem

import "errors"

// Sentinel errors raised during Problem construction. Each corresponds to a
// specific shape of the spec's generic "MalformedProblem" error kind; no
// fmt.Errorf wrapping is used where a sentinel already pins the cause down.
var (
	// ErrNonPositiveNodes indicates numNodes <= 0.
	ErrNonPositiveNodes = errors.New("problem: number of nodes must be positive")

	// ErrNoVehicles indicates the instance has zero real vehicles.
	ErrNoVehicles = errors.New("problem: at least one vehicle is required")

	// ErrNegativeCapacity indicates a vehicle with Capacity < 0.
	ErrNegativeCapacity = errors.New("problem: negative vehicle capacity")

	// ErrNegativeStartTime indicates a vehicle with StartTime < 0.
	ErrNegativeStartTime = errors.New("problem: negative vehicle start time")

	// ErrNodeOutOfRange indicates a node reference outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("problem: node index out of range")

	// ErrNonSquareTravelTable indicates a vehicle's travel time/cost table
	// is not numNodes x numNodes.
	ErrNonSquareTravelTable = errors.New("problem: travel table is not square")

	// ErrTravelTableMismatch indicates a vehicle's travel-time and
	// travel-cost tables have different shapes.
	ErrTravelTableMismatch = errors.New("problem: travel time/cost table shape mismatch")

	// ErrNegativeTravelValue indicates a negative entry in a travel table.
	ErrNegativeTravelValue = errors.New("problem: negative travel time or cost")

	// ErrCallTableMismatch indicates a vehicle's per-call load/unload slices
	// do not have exactly one entry per call.
	ErrCallTableMismatch = errors.New("problem: per-call service table length mismatch")

	// ErrCallIndexOutOfRange indicates a possible-call list referencing a
	// call ID outside [0, numCalls).
	ErrCallIndexOutOfRange = errors.New("problem: call index out of range")

	// ErrNegativeSize indicates a call with Size < 0.
	ErrNegativeSize = errors.New("problem: negative call size")

	// ErrNegativePenalty indicates a call with Penalty < 0.
	ErrNegativePenalty = errors.New("problem: negative outsourcing penalty")

	// ErrInvalidWindow indicates a call with lo > hi in either time window.
	ErrInvalidWindow = errors.New("problem: pickup or delivery window has lo > hi")
)

// RelatednessWeights controls how Problem.relatedness blends spatial
// distance and temporal overlap into a single similarity score. Both
// default to 1.0 (equal weighting); see DESIGN.md for the rationale.
type RelatednessWeights struct {
	// Distance scales the averaged origin/destination travel-cost term.
	Distance float64

	// Time scales the symmetric pickup-window-difference term.
	Time float64
}

// DefaultRelatednessWeights is applied when New is called without
// WithRelatednessWeights.
var DefaultRelatednessWeights = RelatednessWeights{Distance: 1.0, Time: 1.0}

// VehicleSpec is the caller-supplied description of one real vehicle,
// consumed by New. TravelTime/TravelCost must be numNodes x numNodes.
// LoadTime/LoadCost/UnloadTime/UnloadCost must each have exactly numCalls
// entries (call i's entry applies only if the vehicle can serve call i).
type VehicleSpec struct {
	HomeNode      int
	StartTime     int
	Capacity      int
	PossibleCalls []int
	TravelTime    [][]int
	TravelCost    [][]int
	LoadTime      []int
	LoadCost      []int
	UnloadTime    []int
	UnloadCost    []int
}

// CallSpec is the caller-supplied description of one transport call,
// consumed by New. PossibleVehicles is derived automatically as the
// inverse of every VehicleSpec.PossibleCalls; it is not part of this input.
type CallSpec struct {
	OriginNode      int
	DestinationNode int
	Size            int
	Penalty         int
	PickupLo        int
	PickupHi        int
	DeliveryLo      int
	DeliveryHi      int
}

// Vehicle is the frozen, validated form of a VehicleSpec, plus the
// possible-calls set precomputed for O(1) compatibility checks.
type Vehicle struct {
	HomeNode      int
	StartTime     int
	Capacity      int
	PossibleCalls []int
	TravelTime    [][]int
	TravelCost    [][]int
	LoadTime      []int
	LoadCost      []int
	UnloadTime    []int
	UnloadCost    []int

	possibleSet map[int]struct{}
}

// Compatible reports whether this vehicle may serve the given call.
//
// Complexity: O(1).
func (v *Vehicle) Compatible(call int) bool {
	_, ok := v.possibleSet[call]
	return ok
}

// Call is the frozen, validated form of a CallSpec, plus its inverse
// possible-vehicles list.
type Call struct {
	OriginNode       int
	DestinationNode  int
	Size             int
	Penalty          int
	PickupLo         int
	PickupHi         int
	DeliveryLo       int
	DeliveryHi       int
	PossibleVehicles []int

	possibleSet map[int]struct{}
}

// Compatible reports whether the given real vehicle may serve this call.
//
// Complexity: O(1).
func (c *Call) Compatible(vehicle int) bool {
	_, ok := c.possibleSet[vehicle]
	return ok
}

// Problem is the immutable PDPTW instance: nodes, real vehicles, calls, and
// a precomputed relatedness table. Safe for concurrent read-only use once
// returned by New.
type Problem struct {
	numNodes    int
	vehicles    []Vehicle
	calls       []Call
	relatedness [][]int
	weights     RelatednessWeights
}
