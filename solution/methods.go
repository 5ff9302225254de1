package solution

// Add inserts call into vehicle's route so that its pickup and delivery
// sit at indices pPos and dPos of the resulting route (pPos must be
// strictly less than dPos, and dPos at most len(route)+1 of the route as it
// stands before insertion). The call must not already be placed anywhere.
// Add invalidates both caches. UpdateFeasibility can then check this one
// vehicle's route without a full IsFeasible walk; UpdateCost refreshes this
// vehicle's entry but does not make the invalidated total known again.
func (s *Solution) Add(vehicle, call, pPos, dPos int) error {
	if pPos < 0 || pPos >= dPos {
		return ErrInvalidPositions
	}
	route := s.routes[vehicle]
	if dPos > len(route)+1 {
		return ErrPositionOutOfRange
	}

	s.routes[vehicle] = insertAtTwo(route, call, pPos, dPos)
	s.reindexVehicle(vehicle)
	s.invalidateCaches()
	s.assertInvariants()

	return nil
}

// Remove deletes call from whichever route currently carries it. Remove
// invalidates both caches.
func (s *Solution) Remove(call int) error {
	loc := s.callIndex[call]
	if loc.Vehicle == unplaced {
		return ErrCallNotPlaced
	}

	s.routes[loc.Vehicle] = removeCall(s.routes[loc.Vehicle], call)
	s.reindexVehicle(loc.Vehicle)
	s.callIndex[call] = CallLocation{Vehicle: unplaced}
	s.invalidateCaches()

	return nil
}

// Move relocates call from its current route to vehicle at the given
// positions, in one step. Both the source and destination vehicles' cost
// caches are recomputed directly (via UpdateCost) rather than merely
// invalidated, since a single relocation only ever touches two routes;
// feasibility is still marked unknown, since a capacity or time-window
// regression can only be detected by walking the affected route.
func (s *Solution) Move(call, vehicle, pPos, dPos int) error {
	loc := s.callIndex[call]
	if loc.Vehicle == unplaced {
		return ErrCallNotPlaced
	}
	from := loc.Vehicle

	if err := s.Remove(call); err != nil {
		return err
	}
	if err := s.Add(vehicle, call, pPos, dPos); err != nil {
		// Best-effort rollback: re-add at the original spot so the solution
		// is not left with a silently dropped call.
		_ = s.Add(from, call, loc.PickupPos, loc.DeliveryPos)
		return err
	}

	s.UpdateCost(from)
	s.UpdateCost(vehicle)

	return nil
}

// Outsource moves call to the dummy outsource vehicle, appended at the end
// of its route. Ruin heuristics do not use it: they call Remove and leave
// the call unplaced for a recreate heuristic to reinsert.
func (s *Solution) Outsource(call int) error {
	route := s.routes[s.problem.OutsourceVehicle()]
	end := len(route)

	return s.Move(call, s.problem.OutsourceVehicle(), end, end+1)
}

// invalidateCaches marks both the feasibility and cost caches unknown. It
// does not clear the underlying costs[] values; GetCost overwrites them
// wholesale on its next cache miss.
func (s *Solution) invalidateCaches() {
	s.feasibleKnown = false
	s.costKnown = false
}
