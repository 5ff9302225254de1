package solution_test

import (
	"testing"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(n, fill int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = fill
			}
		}
	}
	return m
}

// tinyProblem is one vehicle (home 0, capacity 5, uniform travel time/cost
// 5/2 between any two distinct nodes) and two calls, each servable by the
// single vehicle with wide time windows.
func tinyProblem(t *testing.T, capacity int, calls []problem.CallSpec) *problem.Problem {
	t.Helper()

	vehicles := []problem.VehicleSpec{{
		HomeNode:      0,
		StartTime:     0,
		Capacity:      capacity,
		PossibleCalls: []int{0, 1},
		TravelTime:    square(3, 5),
		TravelCost:    square(3, 2),
		LoadTime:      []int{1, 1},
		LoadCost:      []int{1, 1},
		UnloadTime:    []int{1, 1},
		UnloadCost:    []int{1, 1},
	}}

	p, err := problem.New(3, vehicles, calls)
	require.NoError(t, err)
	return p
}

func wideWindowCalls() []problem.CallSpec {
	return []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 2, Size: 3, Penalty: 100, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 2, Penalty: 200, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
}

func TestNewInitial_allCallsOutsourced(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)

	assert.Empty(t, s.Route(0))
	assert.ElementsMatch(t, []int{0, 0, 1, 1}, s.Route(p.OutsourceVehicle()))
	assert.True(t, s.IsFeasible())
	assert.Equal(t, 300, s.GetCost()) // 100 + 200 penalty, no real routes
}

func TestAdd_placesCallAndUpdatesCostAndFeasibility(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)

	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.Equal(t, []int{0, 0}, s.Route(0))
	assert.True(t, s.IsFeasible())

	// vehicle route cost: home(0)->origin(1) cost 2, load 1, origin(1)->dest(2) cost 2, unload 1 = 6
	// plus call 1 still outsourced: penalty 200
	assert.Equal(t, 206, s.GetCost())
}

func TestAdd_rejectsNonIncreasingPositions(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))

	err := s.Add(0, 0, 1, 1)
	assert.ErrorIs(t, err, solution.ErrInvalidPositions)
}

func TestRemove_rejectsUnplacedCall(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))

	err := s.Remove(0)
	assert.ErrorIs(t, err, solution.ErrCallNotPlaced)
}

func TestIsFeasible_detectsCapacityViolation(t *testing.T) {
	calls := wideWindowCalls()
	calls[0].Size = 10 // exceeds vehicle capacity of 5
	p := tinyProblem(t, 5, calls)
	s := solution.NewInitial(p)

	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.False(t, s.IsFeasible())

	vh := p.Vehicle(0)
	failPos, isCapacity := s.UpdateFeasibility(0, 0, vh.StartTime, vh.Capacity)
	assert.Equal(t, 0, failPos)
	assert.True(t, isCapacity)
}

func TestIsFeasible_detectsPickupWindowViolation(t *testing.T) {
	calls := wideWindowCalls()
	calls[0].PickupHi = 2 // travel time to origin is 5, so the deadline is missed
	p := tinyProblem(t, 5, calls)
	s := solution.NewInitial(p)

	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.False(t, s.IsFeasible())

	vh := p.Vehicle(0)
	failPos, isCapacity := s.UpdateFeasibility(0, 0, vh.StartTime, vh.Capacity)
	assert.Equal(t, 0, failPos)
	assert.False(t, isCapacity)
}

// singleCallProblem is spec.md's scenario-2/3 shape: one vehicle, one node
// pair, one call, with travel time, pickup deadline, and capacity/size all
// caller-controlled so exact off-by-one boundaries can be pinned down.
func singleCallProblem(t *testing.T, travelTime, capacity, size, pickupHi int) *problem.Problem {
	t.Helper()

	vehicles := []problem.VehicleSpec{{
		HomeNode:      0,
		StartTime:     0,
		Capacity:      capacity,
		PossibleCalls: []int{0},
		TravelTime:    square(2, travelTime),
		TravelCost:    square(2, 0),
		LoadTime:      []int{0},
		LoadCost:      []int{0},
		UnloadTime:    []int{0},
		UnloadCost:    []int{0},
	}}
	calls := []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 0, Size: size, Penalty: 100, PickupLo: 0, PickupHi: pickupHi, DeliveryLo: 0, DeliveryHi: 1000},
	}
	p, err := problem.New(2, vehicles, calls)
	require.NoError(t, err)
	return p
}

// spec.md:217, scenario 2: pickup arriving exactly at p_hi is feasible.
func TestIsFeasible_pickupArrivingExactlyAtDeadlineIsFeasible(t *testing.T) {
	p := singleCallProblem(t, 10, 5, 1, 10) // arrival = startTime(0) + travelTime(10) = p_hi(10)
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.True(t, s.IsFeasible())
}

// spec.md:217, scenario 2: pickup arriving at p_hi + 1 is infeasible.
func TestIsFeasible_pickupArrivingOneUnitPastDeadlineIsInfeasible(t *testing.T) {
	p := singleCallProblem(t, 11, 5, 1, 10) // arrival = 11 = p_hi(10) + 1
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.False(t, s.IsFeasible())

	vh := p.Vehicle(0)
	failPos, isCapacity := s.UpdateFeasibility(0, 0, vh.StartTime, vh.Capacity)
	assert.Equal(t, 0, failPos)
	assert.False(t, isCapacity)
}

// spec.md:218: capacity equal to total en-route load is feasible.
func TestIsFeasible_loadExactlyAtCapacityIsFeasible(t *testing.T) {
	p := singleCallProblem(t, 1, 5, 5, 100) // size == capacity
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.True(t, s.IsFeasible())
}

// spec.md:218: load exceeding capacity by 1 is infeasible.
func TestIsFeasible_loadOneUnitOverCapacityIsInfeasible(t *testing.T) {
	p := singleCallProblem(t, 1, 5, 6, 100) // size == capacity + 1
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	assert.False(t, s.IsFeasible())

	vh := p.Vehicle(0)
	failPos, isCapacity := s.UpdateFeasibility(0, 0, vh.StartTime, vh.Capacity)
	assert.Equal(t, 0, failPos)
	assert.True(t, isCapacity)
}

func TestMove_relocatesBetweenVehicles(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)

	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))
	require.NoError(t, s.Move(0, p.OutsourceVehicle(), len(s.Route(p.OutsourceVehicle())), len(s.Route(p.OutsourceVehicle()))+1))

	assert.Empty(t, s.Route(0))
	assert.Contains(t, s.Route(p.OutsourceVehicle()), 0)
	assert.Equal(t, 300, s.GetCost())
}

func TestOutsource_roundTripsThroughRealVehicle(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)

	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))
	require.NoError(t, s.Outsource(0))

	assert.Empty(t, s.Route(0))
	assert.True(t, s.IsFeasible())
	assert.Equal(t, 300, s.GetCost())
}

func TestClone_isIndependent(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	clone := s.Clone()
	require.NoError(t, clone.Outsource(0))

	assert.Equal(t, []int{0, 0}, s.Route(0))
	assert.Empty(t, clone.Route(0))
}

func TestVehicleTrace_matchesFeasibilityWalk(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	times, caps := s.VehicleTrace(0, 1000)
	require.Len(t, times, 3)
	require.Len(t, caps, 3)

	assert.Equal(t, 0, times[0])
	assert.Equal(t, 6, times[1]) // travel 5 + load 1
	assert.Equal(t, 12, times[2]) // +travel 5 + unload 1
	assert.Equal(t, 5, caps[0])
	assert.Equal(t, 2, caps[1]) // pickup consumes size 3
	assert.Equal(t, 5, caps[2]) // delivery releases it
}

func TestFromRoutes_rebuildsCallIndexAndAgreesWithOriginal(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	routes := make([][]int, p.NumVehicles()+1)
	for v := range routes {
		routes[v] = s.Route(v)
	}

	rebuilt, err := solution.FromRoutes(p, routes)
	require.NoError(t, err)
	assert.Equal(t, s.Route(0), rebuilt.Route(0))
	assert.Equal(t, s.Route(p.OutsourceVehicle()), rebuilt.Route(p.OutsourceVehicle()))
	assert.Equal(t, s.GetCost(), rebuilt.GetCost())
	assert.Equal(t, s.IsFeasible(), rebuilt.IsFeasible())
}

func TestFromRoutes_rejectsCallAppearingOnce(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	routes := make([][]int, p.NumVehicles()+1)
	routes[p.OutsourceVehicle()] = []int{0, 0, 1} // call 1 only once

	_, err := solution.FromRoutes(p, routes)
	assert.ErrorIs(t, err, solution.ErrCallCountMismatch)
}

func TestFromRoutes_rejectsWrongRouteCount(t *testing.T) {
	p := tinyProblem(t, 5, wideWindowCalls())
	_, err := solution.FromRoutes(p, [][]int{{}})
	assert.ErrorIs(t, err, solution.ErrRouteCountMismatch)
}
