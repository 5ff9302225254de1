package insertion_test

import (
	"testing"

	"github.com/katalvlaran/pdptw-alns/insertion"
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

func buildProblem(t *testing.T, capacity int, calls []problem.CallSpec) *problem.Problem {
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

func TestFeasibleInsertions_findsCheapestPlacementAndRestoresSolution(t *testing.T) {
	calls := []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 2, Size: 3, Penalty: 100, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
	p := buildProblem(t, 10, calls)
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))

	before := s.GetCost()

	opts, err := insertion.FeasibleInsertions(p, s, 0, true)
	require.NoError(t, err)
	require.Len(t, opts, 2) // vehicle 0, plus outsource

	// Probing must leave the solution exactly as it found it.
	assert.Empty(t, s.Route(0))
	assert.Equal(t, before, s.GetCost())

	vehicle, best, err := insertion.BestRealVehicleOption(p, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, vehicle)
	assert.Equal(t, 0, best.PPos)
	assert.Equal(t, 1, best.DPos)
}

func TestFeasibleInsertions_capacityPruneStillTriesLaterPickupPositions(t *testing.T) {
	calls := []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 2, Size: 8, Penalty: 50, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 5, Penalty: 50, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
	p := buildProblem(t, 10, calls)
	s := solution.NewInitial(p)

	// Place call 1 first so call 0's search must reason about the combined load.
	require.NoError(t, s.Remove(1))
	require.NoError(t, s.Add(0, 1, 0, 1))
	require.NoError(t, s.Remove(0))

	opts, err := insertion.FeasibleInsertions(p, s, 0, false)
	require.NoError(t, err)

	_, _, err = insertion.BestRealVehicleOption(p, opts)
	assert.NoError(t, err) // some placement must still be feasible (e.g. after call 1 completes)
}

func TestFeasibleInsertions_onlyOutsourceWhenNoVehicleCompatible(t *testing.T) {
	calls := []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 2, Size: 3, Penalty: 100, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
	vehicles := []problem.VehicleSpec{{
		HomeNode: 0, StartTime: 0, Capacity: 10,
		PossibleCalls: nil, // incompatible with call 0
		TravelTime:    square(3, 5), TravelCost: square(3, 2),
		LoadTime: []int{1}, LoadCost: []int{1}, UnloadTime: []int{1}, UnloadCost: []int{1},
	}}
	p, err := problem.New(3, vehicles, calls)
	require.NoError(t, err)
	s := solution.NewInitial(p)

	opts, err := insertion.FeasibleInsertions(p, s, 0, true)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, p.OutsourceVehicle(), opts[0].Vehicle)

	_, _, err = insertion.BestRealVehicleOption(p, opts)
	assert.ErrorIs(t, err, insertion.ErrNoFeasibleInsertion)
}
