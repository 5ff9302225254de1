package result_test

import (
	"testing"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/result"
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

func buildProblem(t *testing.T) *problem.Problem {
	t.Helper()
	calls := []problem.CallSpec{
		{OriginNode: 1, DestinationNode: 2, Size: 3, Penalty: 100, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 2, Penalty: 200, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
	vehicles := []problem.VehicleSpec{{
		HomeNode: 0, StartTime: 0, Capacity: 5,
		PossibleCalls: []int{0, 1},
		TravelTime:    square(3, 5), TravelCost: square(3, 2),
		LoadTime: []int{1, 1}, LoadCost: []int{1, 1}, UnloadTime: []int{1, 1}, UnloadCost: []int{1, 1},
	}}
	p, err := problem.New(3, vehicles, calls)
	require.NoError(t, err)
	return p
}

func TestEncode_matchesAllOutsourcedExample(t *testing.T) {
	calls := []problem.CallSpec{
		{OriginNode: 0, DestinationNode: 1, Size: 1, Penalty: 10, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 1, Penalty: 10, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 1, Penalty: 10, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
		{OriginNode: 0, DestinationNode: 1, Size: 1, Penalty: 10, PickupLo: 0, PickupHi: 100, DeliveryLo: 0, DeliveryHi: 100},
	}
	vehicles := []problem.VehicleSpec{
		{HomeNode: 0, StartTime: 0, Capacity: 5, TravelTime: square(2, 1), TravelCost: square(2, 1),
			LoadTime: make([]int, 4), LoadCost: make([]int, 4), UnloadTime: make([]int, 4), UnloadCost: make([]int, 4)},
		{HomeNode: 0, StartTime: 0, Capacity: 5, TravelTime: square(2, 1), TravelCost: square(2, 1),
			LoadTime: make([]int, 4), LoadCost: make([]int, 4), UnloadTime: make([]int, 4), UnloadCost: make([]int, 4)},
		{HomeNode: 0, StartTime: 0, Capacity: 5, TravelTime: square(2, 1), TravelCost: square(2, 1),
			LoadTime: make([]int, 4), LoadCost: make([]int, 4), UnloadTime: make([]int, 4), UnloadCost: make([]int, 4)},
	}
	p, err := problem.New(2, vehicles, calls)
	require.NoError(t, err)
	s := solution.NewInitial(p)

	assert.Equal(t, "0,0,0,1,1,2,2,3,3,4,4", result.Encode(p, s))
}

func TestDecode_roundTripsThroughEncode(t *testing.T) {
	p := buildProblem(t)
	s := solution.NewInitial(p)
	require.NoError(t, s.Remove(0))
	require.NoError(t, s.Add(0, 0, 0, 1))

	wire := result.Encode(p, s)
	decoded, err := result.Decode(p, wire)
	require.NoError(t, err)

	assert.Equal(t, s.Route(0), decoded.Route(0))
	assert.Equal(t, s.Route(p.OutsourceVehicle()), decoded.Route(p.OutsourceVehicle()))
	assert.Equal(t, s.GetCost(), decoded.GetCost())
}

func TestDecode_rejectsNonIntegerField(t *testing.T) {
	p := buildProblem(t)
	_, err := result.Decode(p, "0,x,1,1")
	assert.ErrorIs(t, err, result.ErrMalformedWire)
}
