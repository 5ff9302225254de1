package instance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pdptw-alns/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `% number of nodes
2
% number of vehicles
1
% vehicles: index, homeNode, startTime, capacity
1,1,0,10
% number of calls
1
% vehicle, possible calls
1,1
% calls: index, origin, destination, size, penalty, pickupLo, pickupHi, deliveryLo, deliveryHi
1,1,2,3,100,0,50,0,100
% travel matrix: vehicle, from, to, time, cost
1,1,2,5,2
1,2,1,5,2
% service: vehicle, call, originTime, originCost, destinationTime, destinationCost
1,1,1,1,1,1
`

func TestParse_translatesOneIndexedFieldsAndBuildsProblem(t *testing.T) {
	p, err := instance.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumNodes())
	assert.Equal(t, 1, p.NumVehicles())
	assert.Equal(t, 1, p.NumCalls())

	vehicle := p.Vehicle(0)
	assert.Equal(t, 0, vehicle.HomeNode)
	assert.Equal(t, 0, vehicle.StartTime)
	assert.Equal(t, 10, vehicle.Capacity)
	assert.True(t, vehicle.Compatible(0))
	assert.Equal(t, 5, vehicle.TravelTime[0][1])
	assert.Equal(t, 2, vehicle.TravelCost[0][1])
	assert.Equal(t, 1, vehicle.LoadTime[0])
	assert.Equal(t, 1, vehicle.LoadCost[0])
	assert.Equal(t, 1, vehicle.UnloadTime[0])
	assert.Equal(t, 1, vehicle.UnloadCost[0])

	call := p.Call(0)
	assert.Equal(t, 0, call.OriginNode)
	assert.Equal(t, 1, call.DestinationNode)
	assert.Equal(t, 3, call.Size)
	assert.Equal(t, 100, call.Penalty)
	assert.Equal(t, 0, call.PickupLo)
	assert.Equal(t, 50, call.PickupHi)
	assert.Equal(t, 0, call.DeliveryLo)
	assert.Equal(t, 100, call.DeliveryHi)
}

func TestParse_rejectsTruncatedFile(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("% number of nodes\n2\n"))
	assert.ErrorIs(t, err, instance.ErrUnexpectedEOF)
}

func TestParse_rejectsMalformedRow(t *testing.T) {
	bad := `% number of nodes
2
% number of vehicles
1
% vehicles
1,1,0
`
	_, err := instance.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, instance.ErrMalformedRow)
}
