package solution

// IsFeasible reports whether every real vehicle's route respects its
// capacity and time-window constraints. The result is cached; a mutation
// (Add/Remove/Move/Outsource) marks the cache unknown, and the next call
// here recomputes it from scratch by walking every real vehicle's route.
// The outsource vehicle has no constraints and never affects feasibility.
//
// Complexity: O(total route length) on a cache miss, O(1) on a hit.
func (s *Solution) IsFeasible() bool {
	if s.feasibleKnown {
		return s.feasibleVal
	}

	feasible := true
	for v := 0; v < s.problem.NumVehicles(); v++ {
		vh := s.problem.Vehicle(v)
		failPos, _ := s.walkFeasibility(v, 0, vh.StartTime, vh.Capacity)
		if failPos >= 0 {
			feasible = false
			break
		}
	}

	s.feasibleKnown = true
	s.feasibleVal = feasible

	return feasible
}

// UpdateFeasibility recomputes feasibility for vehicle's route starting at
// fromPos (the first route index to (re)check), given the vehicle's known
// time and remaining capacity immediately before fromPos. It returns the
// position of the first infeasible step (or -1 if the suffix from fromPos
// onward is feasible) and whether that failure was a capacity violation (as
// opposed to a time-window violation).
//
// UpdateFeasibility is a pure, local computation: it does not touch the
// solution-level cache. It exists so the insertion engine can probe "would
// inserting here keep the rest of the route feasible" without forcing a
// full IsFeasible recompute, and so callers that already know a prefix is
// untouched can skip re-walking it.
//
// Complexity: O(len(routes[vehicle]) - fromPos).
func (s *Solution) UpdateFeasibility(vehicle, fromPos, time0, cap0 int) (failPos int, failedDueToCapacity bool) {
	return s.walkFeasibility(vehicle, fromPos, time0, cap0)
}

// walkFeasibility is the shared implementation behind IsFeasible and
// UpdateFeasibility: it walks routes[vehicle] from fromPos to the end,
// starting with the given time and capacity, and returns the first
// violating position or -1.
func (s *Solution) walkFeasibility(vehicle, fromPos, time0, cap0 int) (failPos int, failedDueToCapacity bool) {
	vh := s.problem.Vehicle(vehicle)
	route := s.routes[vehicle]

	currentTime := time0
	currentCap := cap0
	currentNode := s.nodeBeforePosition(vehicle, fromPos)

	for i := fromPos; i < len(route); i++ {
		callID := route[i]
		call := s.problem.Call(callID)
		loc := s.callIndex[callID]

		if loc.PickupPos == i {
			currentTime += vh.TravelTime[currentNode][call.OriginNode]
			currentNode = call.OriginNode
			if currentTime > call.PickupHi {
				return i, false
			}
			if currentTime < call.PickupLo {
				currentTime = call.PickupLo
			}
			currentTime += vh.LoadTime[callID]
			currentCap -= call.Size
			if currentCap < 0 {
				return i, true
			}
		} else {
			currentTime += vh.TravelTime[currentNode][call.DestinationNode]
			currentNode = call.DestinationNode
			if currentTime > call.DeliveryHi {
				return i, false
			}
			if currentTime < call.DeliveryLo {
				currentTime = call.DeliveryLo
			}
			currentTime += vh.UnloadTime[callID]
			currentCap += call.Size
		}
	}

	return -1, false
}

// nodeBeforePosition returns the node vehicle occupies immediately before
// route position pos, without scanning the whole route: pos 0 is always the
// vehicle's home node; otherwise the node is derived from whether the
// preceding step was a pickup or delivery event for its call, via callIndex.
//
// Complexity: O(1).
func (s *Solution) nodeBeforePosition(vehicle, pos int) int {
	vh := s.problem.Vehicle(vehicle)
	if pos == 0 {
		return vh.HomeNode
	}

	prevCallID := s.routes[vehicle][pos-1]
	call := s.problem.Call(prevCallID)
	loc := s.callIndex[prevCallID]
	if loc.PickupPos == pos-1 {
		return call.OriginNode
	}
	return call.DestinationNode
}

// VehicleTrace returns, for each position 0..len(routes[vehicle]) in
// vehicle's current route (before any candidate insertion), the time and
// remaining capacity the vehicle has immediately before that position. It
// is the snapshot an insertion search takes once per vehicle per call
// before probing individual (pPos, dPos) candidates, so that probing a
// candidate only needs UpdateFeasibility from pPos onward instead of a full
// route walk.
//
// untilTime lets the caller stop tracking once the state is clearly beyond
// any window of interest (e.g. a call's pickup deadline): positions whose
// time already exceeds untilTime are padded with the last computed state,
// since any insertion point past that deadline will be pruned by
// UpdateFeasibility regardless of the exact padded value.
//
// Complexity: O(len(routes[vehicle])).
func (s *Solution) VehicleTrace(vehicle, untilTime int) (times, caps []int) {
	vh := s.problem.Vehicle(vehicle)
	route := s.routes[vehicle]
	n := len(route)

	times = make([]int, n+1)
	caps = make([]int, n+1)

	currentTime := vh.StartTime
	currentCap := vh.Capacity
	currentNode := vh.HomeNode
	times[0] = currentTime
	caps[0] = currentCap

	for i, callID := range route {
		call := s.problem.Call(callID)
		loc := s.callIndex[callID]

		if loc.PickupPos == i {
			currentTime += vh.TravelTime[currentNode][call.OriginNode]
			currentNode = call.OriginNode
			if currentTime < call.PickupLo {
				currentTime = call.PickupLo
			}
			currentTime += vh.LoadTime[callID]
			currentCap -= call.Size
		} else {
			currentTime += vh.TravelTime[currentNode][call.DestinationNode]
			currentNode = call.DestinationNode
			if currentTime < call.DeliveryLo {
				currentTime = call.DeliveryLo
			}
			currentTime += vh.UnloadTime[callID]
			currentCap += call.Size
		}

		times[i+1] = currentTime
		caps[i+1] = currentCap

		if currentTime > untilTime {
			for j := i + 2; j <= n; j++ {
				times[j] = currentTime
				caps[j] = currentCap
			}
			break
		}
	}

	return times, caps
}
