//go:build alns_debug

package solution

// assertInvariants re-derives every placed call's location from the routes
// themselves and panics with ErrInvalidSolution if it disagrees with
// callIndex, or if any call appears more than twice total (a call briefly
// unplaced between Remove and Add, e.g. inside Move, is not itself a
// violation). Compiled only under the alns_debug build tag; production
// builds call the no-op in debug_off.go instead.
func (s *Solution) assertInvariants() {
	seen := make(map[int]int, len(s.callIndex))

	for v, route := range s.routes {
		firstSeen := make(map[int]int)
		for i, callID := range route {
			seen[callID]++
			if pos, ok := firstSeen[callID]; ok {
				if s.callIndex[callID].Vehicle != v || s.callIndex[callID].PickupPos != pos || s.callIndex[callID].DeliveryPos != i {
					panic(ErrInvalidSolution)
				}
			} else {
				firstSeen[callID] = i
			}
		}
	}

	for _, count := range seen {
		if count > 2 {
			panic(ErrInvalidSolution)
		}
	}
}
