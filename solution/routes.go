package solution

import "github.com/katalvlaran/pdptw-alns/problem"

// FromRoutes builds a Solution directly from pre-built per-vehicle routes,
// one per real vehicle plus the dummy outsource vehicle's route at the final
// index, validating that every call appears exactly twice across the whole
// set. It is the inverse of calling Route(v) for every v, and backs the
// result package's wire-format decoder.
func FromRoutes(p *problem.Problem, routes [][]int) (*Solution, error) {
	if len(routes) != p.NumVehicles()+1 {
		return nil, ErrRouteCountMismatch
	}

	numCalls := p.NumCalls()
	seen := make([]int, numCalls)
	copied := make([][]int, len(routes))
	for v, route := range routes {
		copied[v] = append([]int(nil), route...)
		for _, c := range route {
			if c < 0 || c >= numCalls {
				return nil, ErrCallIndexOutOfRange
			}
			seen[c]++
		}
	}
	for _, count := range seen {
		if count != 2 {
			return nil, ErrCallCountMismatch
		}
	}

	s := &Solution{
		problem:   p,
		routes:    copied,
		callIndex: make([]CallLocation, numCalls),
		costs:     make([]int, len(routes)),
	}
	for v := range s.routes {
		s.reindexVehicle(v)
	}
	s.assertInvariants()

	return s, nil
}
