package solution

import "github.com/katalvlaran/pdptw-alns/problem"

// NewInitial builds the canonical starting solution for p: every real
// vehicle's route is empty and every call is outsourced (placed twice,
// pickup then delivery, in the dummy vehicle's route). This matches the
// "everything outsourced" baseline the adaptive search escapes from.
func NewInitial(p *problem.Problem) *Solution {
	numV := p.NumVehicles()
	numC := p.NumCalls()

	routes := make([][]int, numV+1)
	for v := 0; v < numV; v++ {
		routes[v] = []int{}
	}
	outsourceRoute := make([]int, 0, 2*numC)
	for c := 0; c < numC; c++ {
		outsourceRoute = append(outsourceRoute, c, c)
	}
	routes[numV] = outsourceRoute

	s := &Solution{
		problem:   p,
		routes:    routes,
		callIndex: make([]CallLocation, numC),
		costs:     make([]int, numV+1),
	}
	s.reindexVehicle(numV)

	return s
}

// Clone returns a deep, independent copy: every route slice and the call
// index are copied contiguously, so mutating the clone never affects the
// original. Cache state (feasibility, cost) is copied as-is, since it still
// describes the identical route data at the moment of cloning.
//
// Complexity: O(total route length + NumCalls()).
func (s *Solution) Clone() *Solution {
	routes := make([][]int, len(s.routes))
	for i, r := range s.routes {
		routes[i] = append([]int(nil), r...)
	}

	return &Solution{
		problem:       s.problem,
		routes:        routes,
		callIndex:     append([]CallLocation(nil), s.callIndex...),
		feasibleKnown: s.feasibleKnown,
		feasibleVal:   s.feasibleVal,
		costKnown:     s.costKnown,
		costTotal:     s.costTotal,
		costs:         append([]int(nil), s.costs...),
	}
}

// reindexVehicle rebuilds callIndex entries for every call currently placed
// in vehicle v's route, by walking the route once and tracking each call's
// first (pickup) and second (delivery) occurrence. This replaces manual
// position-shifting arithmetic after an insert or remove: any mutation that
// changes vehicle v's route calls this afterward instead of patching
// positions by hand.
//
// Complexity: O(len(routes[v])).
func (s *Solution) reindexVehicle(v int) {
	route := s.routes[v]
	firstSeen := make(map[int]bool, len(route)/2+1)

	for i, callID := range route {
		loc := &s.callIndex[callID]
		loc.Vehicle = v
		if !firstSeen[callID] {
			loc.PickupPos = i
			firstSeen[callID] = true
		} else {
			loc.DeliveryPos = i
		}
	}
}

// insertAtTwo returns a new route of length len(route)+2 with call placed at
// positions pPos and dPos (pPos < dPos, both within [0, len(route)+2)), and
// every original element shifted to make room.
func insertAtTwo(route []int, call, pPos, dPos int) []int {
	out := make([]int, 0, len(route)+2)
	src := 0
	for i := 0; i < len(route)+2; i++ {
		switch i {
		case pPos, dPos:
			out = append(out, call)
		default:
			out = append(out, route[src])
			src++
		}
	}
	return out
}

// removeCall returns a new route with the two occurrences of call removed.
func removeCall(route []int, call int) []int {
	out := make([]int, 0, len(route)-2)
	for _, c := range route {
		if c == call {
			continue
		}
		out = append(out, c)
	}
	return out
}
