package problem

// Option configures a Problem before construction, in the style of
// lvlath's GraphOption: a functional option applied left-to-right by New.
type Option func(*Problem)

// WithRelatednessWeights overrides the default equal weighting between
// spatial distance and temporal overlap when New computes the relatedness
// table.
func WithRelatednessWeights(w RelatednessWeights) Option {
	return func(p *Problem) { p.weights = w }
}

// New validates vehicles and calls, derives each call's PossibleVehicles as
// the inverse of every vehicle's PossibleCalls, precomputes the relatedness
// table, and returns a frozen Problem.
//
// Complexity: O(V*N^2 + C^2*(V + log C)) dominated by per-vehicle
// travel-table validation and the all-pairs relatedness precomputation.
func New(numNodes int, vehicles []VehicleSpec, calls []CallSpec, opts ...Option) (*Problem, error) {
	if numNodes <= 0 {
		return nil, ErrNonPositiveNodes
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}

	numCalls := len(calls)

	builtVehicles := make([]Vehicle, len(vehicles))
	inverse := make([][]int, numCalls) // inverse[call] = possible vehicles

	for vi := range vehicles {
		spec := vehicles[vi]
		if spec.Capacity < 0 {
			return nil, ErrNegativeCapacity
		}
		if spec.StartTime < 0 {
			return nil, ErrNegativeStartTime
		}
		if spec.HomeNode < 0 || spec.HomeNode >= numNodes {
			return nil, ErrNodeOutOfRange
		}
		if err := validateTravelTable(spec.TravelTime, numNodes); err != nil {
			return nil, err
		}
		if err := validateTravelTable(spec.TravelCost, numNodes); err != nil {
			return nil, err
		}
		if len(spec.LoadTime) != numCalls || len(spec.LoadCost) != numCalls ||
			len(spec.UnloadTime) != numCalls || len(spec.UnloadCost) != numCalls {
			return nil, ErrCallTableMismatch
		}

		possibleSet := make(map[int]struct{}, len(spec.PossibleCalls))
		for _, c := range spec.PossibleCalls {
			if c < 0 || c >= numCalls {
				return nil, ErrCallIndexOutOfRange
			}
			possibleSet[c] = struct{}{}
			inverse[c] = append(inverse[c], vi)
		}

		builtVehicles[vi] = Vehicle{
			HomeNode:      spec.HomeNode,
			StartTime:     spec.StartTime,
			Capacity:      spec.Capacity,
			PossibleCalls: append([]int(nil), spec.PossibleCalls...),
			TravelTime:    cloneMatrix(spec.TravelTime),
			TravelCost:    cloneMatrix(spec.TravelCost),
			LoadTime:      append([]int(nil), spec.LoadTime...),
			LoadCost:      append([]int(nil), spec.LoadCost...),
			UnloadTime:    append([]int(nil), spec.UnloadTime...),
			UnloadCost:    append([]int(nil), spec.UnloadCost...),
			possibleSet:   possibleSet,
		}
	}

	builtCalls := make([]Call, numCalls)
	for ci := range calls {
		spec := calls[ci]
		if spec.OriginNode < 0 || spec.OriginNode >= numNodes ||
			spec.DestinationNode < 0 || spec.DestinationNode >= numNodes {
			return nil, ErrNodeOutOfRange
		}
		if spec.Size < 0 {
			return nil, ErrNegativeSize
		}
		if spec.Penalty < 0 {
			return nil, ErrNegativePenalty
		}
		if spec.PickupLo > spec.PickupHi || spec.DeliveryLo > spec.DeliveryHi {
			return nil, ErrInvalidWindow
		}

		possibleSet := make(map[int]struct{}, len(inverse[ci]))
		for _, v := range inverse[ci] {
			possibleSet[v] = struct{}{}
		}

		builtCalls[ci] = Call{
			OriginNode:       spec.OriginNode,
			DestinationNode:  spec.DestinationNode,
			Size:             spec.Size,
			Penalty:          spec.Penalty,
			PickupLo:         spec.PickupLo,
			PickupHi:         spec.PickupHi,
			DeliveryLo:       spec.DeliveryLo,
			DeliveryHi:       spec.DeliveryHi,
			PossibleVehicles: append([]int(nil), inverse[ci]...),
			possibleSet:      possibleSet,
		}
	}

	p := &Problem{
		numNodes: numNodes,
		vehicles: builtVehicles,
		calls:    builtCalls,
		weights:  DefaultRelatednessWeights,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.relatedness = computeRelatedness(p)

	return p, nil
}

func validateTravelTable(table [][]int, numNodes int) error {
	if len(table) != numNodes {
		return ErrNonSquareTravelTable
	}
	for _, row := range table {
		if len(row) != numNodes {
			return ErrNonSquareTravelTable
		}
		for _, v := range row {
			if v < 0 {
				return ErrNegativeTravelValue
			}
		}
	}
	return nil
}

func cloneMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// NumNodes returns the instance's node count.
func (p *Problem) NumNodes() int { return p.numNodes }

// NumVehicles returns the number of real vehicles (excludes the dummy
// outsource vehicle).
func (p *Problem) NumVehicles() int { return len(p.vehicles) }

// NumCalls returns the number of transport calls.
func (p *Problem) NumCalls() int { return len(p.calls) }

// OutsourceVehicle returns the index of the virtual dummy vehicle, the slot
// immediately after the last real vehicle. See spec.md's "V+1" convention,
// pinned here as the single source of truth (DESIGN.md decision #2).
func (p *Problem) OutsourceVehicle() int { return len(p.vehicles) }

// Vehicle returns a read-only view of real vehicle v. Panics if v is out of
// range; callers must not pass OutsourceVehicle() here.
func (p *Problem) Vehicle(v int) *Vehicle { return &p.vehicles[v] }

// Call returns a read-only view of call c.
func (p *Problem) Call(c int) *Call { return &p.calls[c] }

// PossibleVehicles returns the real vehicles compatible with call c. The
// dummy outsource vehicle is always compatible and is not included here.
func (p *Problem) PossibleVehicles(c int) []int { return p.calls[c].PossibleVehicles }

// Relatedness returns the other calls related to c, sorted by ascending
// relatedness score (most similar first).
func (p *Problem) Relatedness(c int) []int { return p.relatedness[c] }
