package result

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// Encode renders s as the flat wire format: every real vehicle's route
// (1-indexed call IDs) followed by a "0" separator, then the outsourced
// calls with no trailing separator.
func Encode(p *problem.Problem, s *solution.Solution) string {
	var tokens []int
	for v := 0; v < p.NumVehicles(); v++ {
		for _, c := range s.Route(v) {
			tokens = append(tokens, c+1)
		}
		tokens = append(tokens, 0)
	}
	tokens = append(tokens, shiftUp(s.Route(p.OutsourceVehicle()))...)

	fields := make([]string, len(tokens))
	for i, tok := range tokens {
		fields[i] = strconv.Itoa(tok)
	}
	return strings.Join(fields, ",")
}

func shiftUp(calls []int) []int {
	out := make([]int, len(calls))
	for i, c := range calls {
		out[i] = c + 1
	}
	return out
}

// Decode parses the flat wire format back into a Solution, validating it
// against p via solution.FromRoutes.
func Decode(p *problem.Problem, wire string) (*solution.Solution, error) {
	fields := strings.Split(strings.TrimSpace(wire), ",")
	tokens := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrMalformedWire
		}
		tokens = append(tokens, n)
	}

	routes := make([][]int, p.NumVehicles()+1)
	vehicle := 0
	var current []int
	for _, tok := range tokens {
		if vehicle < p.NumVehicles() && tok == 0 {
			routes[vehicle] = current
			current = nil
			vehicle++
			continue
		}
		current = append(current, tok-1)
	}
	if vehicle != p.NumVehicles() {
		return nil, ErrMalformedWire
	}
	routes[p.NumVehicles()] = current

	return solution.FromRoutes(p, routes)
}
