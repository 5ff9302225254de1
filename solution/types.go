package solution

import (
	"errors"

	"github.com/katalvlaran/pdptw-alns/problem"
)

// Sentinel errors raised by solution mutations. Each pins down a specific
// shape of the spec's generic "InvalidSolution" error kind.
var (
	// ErrInvalidPositions indicates pPos >= dPos was passed to Add/Move.
	ErrInvalidPositions = errors.New("solution: pickup position must precede delivery position")

	// ErrCallNotPlaced indicates Remove/Move/Outsource was called for a call
	// that is not currently present in any route.
	ErrCallNotPlaced = errors.New("solution: call is not currently placed")

	// ErrPositionOutOfRange indicates a delivery position beyond
	// len(route)+1 for the target vehicle's current route.
	ErrPositionOutOfRange = errors.New("solution: insertion position out of range")

	// ErrInvalidSolution guards debug-only invariant assertions (build tag
	// alns_debug); it never fires in a production build.
	ErrInvalidSolution = errors.New("solution: invariant violation")

	// ErrRouteCountMismatch indicates FromRoutes was given a number of
	// routes other than NumVehicles()+1.
	ErrRouteCountMismatch = errors.New("solution: route count does not match vehicle count")

	// ErrCallIndexOutOfRange indicates FromRoutes found a call ID outside
	// [0, NumCalls()) in one of the given routes.
	ErrCallIndexOutOfRange = errors.New("solution: call index out of range")

	// ErrCallCountMismatch indicates FromRoutes found a call that does not
	// appear in the given routes exactly twice.
	ErrCallCountMismatch = errors.New("solution: call does not appear exactly twice across routes")
)

// unplaced marks a CallLocation whose call currently has no route. NewInitial
// and FromRoutes place every call; Remove leaves its call unplaced until a
// later Add (ruin heuristics rely on this, and Move passes through it
// between its Remove and Add).
const unplaced = -1

// CallLocation records where a single call currently sits: which vehicle's
// route carries it, and at which two positions (pickup strictly before
// delivery) within that route.
type CallLocation struct {
	Vehicle    int
	PickupPos  int
	DeliveryPos int
}

// Solution is one candidate route plan: a route per real vehicle plus the
// dummy outsource vehicle's route, kept consistent with a per-call position
// index. Feasibility and total cost are cached lazily; see doc.go.
//
// A zero-value Solution is not usable; obtain one via NewInitial or Clone.
type Solution struct {
	problem *problem.Problem

	// routes has length NumVehicles()+1; routes[OutsourceVehicle()] is the
	// dummy vehicle's route.
	routes [][]int

	// callIndex has length NumCalls(); callIndex[c] locates call c.
	callIndex []CallLocation

	feasibleKnown bool
	feasibleVal   bool

	costKnown bool
	costTotal int
	// costs holds each vehicle's last-computed cost contribution, including
	// the outsource vehicle's penalty total. Only trustworthy in aggregate
	// when costKnown is true; GetCost recomputes every entry from scratch on
	// a cache miss.
	costs []int
}

// Problem returns the instance this solution is built over.
func (s *Solution) Problem() *problem.Problem { return s.problem }

// Route returns the current call sequence for vehicle v (or the outsource
// vehicle, at problem.OutsourceVehicle()). The returned slice must not be
// mutated by the caller.
func (s *Solution) Route(v int) []int { return s.routes[v] }

// Location returns where call c currently sits.
func (s *Solution) Location(c int) CallLocation { return s.callIndex[c] }
