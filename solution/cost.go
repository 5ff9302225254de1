package solution

// GetCost returns the solution's total cost: the sum of every real
// vehicle's travel/load/unload cost plus the outsource vehicle's total
// penalty for calls left unserved. The result is cached; a mutation marks
// it unknown, and the next call here recomputes every vehicle's
// contribution from scratch before summing.
//
// Complexity: O(total route length) on a cache miss, O(1) on a hit.
func (s *Solution) GetCost() int {
	if s.costKnown {
		return s.costTotal
	}

	total := 0
	for v := 0; v <= s.problem.OutsourceVehicle(); v++ {
		c := s.computeVehicleCost(v)
		s.costs[v] = c
		total += c
	}

	s.costTotal = total
	s.costKnown = true

	return total
}

// VehicleCost returns vehicle's last-computed cost contribution, ensuring
// the whole cache is fresh first if it is currently unknown. Ruin
// heuristics that reason about "which vehicle's cost would drop the most"
// (Costly) use this rather than GetCost's aggregate total.
//
// Complexity: O(total route length) if the cache is unknown, O(1) otherwise.
func (s *Solution) VehicleCost(vehicle int) int {
	s.GetCost()
	return s.costs[vehicle]
}

// UpdateCost recomputes vehicle's cost contribution from scratch and
// folds the delta into the cached total if the total is currently known
// (i.e. if GetCost has been called, or every vehicle's cost was already
// fresh, since the last invalidating mutation). If the total is unknown,
// UpdateCost still refreshes costs[vehicle] so a subsequent GetCost miss
// has less work to redo, but leaves the total unknown: other vehicles may
// still be stale.
//
// Complexity: O(len(routes[vehicle])).
func (s *Solution) UpdateCost(vehicle int) {
	old := s.costs[vehicle]
	newCost := s.computeVehicleCost(vehicle)
	s.costs[vehicle] = newCost

	if s.costKnown {
		s.costTotal += newCost - old
	}
}

// computeVehicleCost walks vehicle's current route once and sums its
// travel, load, and unload costs. For the outsource vehicle, it instead
// sums the outsourcing penalty of each distinct call present (every
// outsourced call appears twice; the penalty is counted once, at the
// call's pickup occurrence).
func (s *Solution) computeVehicleCost(vehicle int) int {
	route := s.routes[vehicle]
	if vehicle == s.problem.OutsourceVehicle() {
		total := 0
		for i, callID := range route {
			if s.callIndex[callID].PickupPos == i {
				total += s.problem.Call(callID).Penalty
			}
		}
		return total
	}

	vh := s.problem.Vehicle(vehicle)
	currentNode := vh.HomeNode
	total := 0

	for i, callID := range route {
		call := s.problem.Call(callID)
		loc := s.callIndex[callID]

		if loc.PickupPos == i {
			total += vh.TravelCost[currentNode][call.OriginNode]
			currentNode = call.OriginNode
			total += vh.LoadCost[callID]
		} else {
			total += vh.TravelCost[currentNode][call.DestinationNode]
			currentNode = call.DestinationNode
			total += vh.UnloadCost[callID]
		}
	}

	return total
}
