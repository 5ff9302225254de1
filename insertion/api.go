package insertion

import (
	"sort"

	"github.com/katalvlaran/pdptw-alns/problem"
	"github.com/katalvlaran/pdptw-alns/solution"
)

// FeasibleInsertions enumerates, for every real vehicle compatible with
// call, every feasible (pPos, dPos) placement and its resulting total
// solution cost, plus a single always-feasible entry for the dummy
// outsource vehicle. call must not currently be placed anywhere in s.
//
// If sortByCost is true, each vehicle's Options are sorted ascending by
// cost; the outsource entry is always a single option and unaffected.
//
// Pruning, per vehicle, walking pPos from 0 to len(route) and dPos from
// pPos+1 to len(route)+1:
//   - capacity failure at any position: abandon this dPos, advance pPos.
//   - time failure exactly at pPos (the call's own pickup step arrives past
//     its window): abandon this vehicle entirely — every later pPos only
//     arrives later still.
//   - time failure at any other position: abandon this dPos, advance pPos.
//
// Complexity: O(route length^2) per vehicle in the worst case, each probe
// O(route length) for the add/check/remove cycle; tight pruning keeps the
// typical case far below that.
func FeasibleInsertions(p *problem.Problem, s *solution.Solution, call int, sortByCost bool) ([]VehicleInsertions, error) {
	c := p.Call(call)

	var out []VehicleInsertions
	for _, v := range p.PossibleVehicles(call) {
		opts, err := feasibleInsertionsForVehicle(s, v, call, c.PickupHi)
		if err != nil {
			return nil, err
		}
		if len(opts) == 0 {
			continue
		}
		if sortByCost {
			sort.SliceStable(opts, func(i, j int) bool { return opts[i].Cost < opts[j].Cost })
		}
		out = append(out, VehicleInsertions{Vehicle: v, Options: opts})
	}

	out = append(out, outsourceOption(p, s, call))

	return out, nil
}

func feasibleInsertionsForVehicle(s *solution.Solution, vehicle, call, pickupHi int) ([]Option, error) {
	times, caps := s.VehicleTrace(vehicle, pickupHi)
	n := len(s.Route(vehicle))

	var opts []Option

	for pPos := 0; pPos <= n; pPos++ {
		advance, err := probeDeliveryPositions(s, vehicle, call, pPos, n, times, caps, &opts)
		if err != nil {
			return nil, err
		}
		if !advance {
			break // pickup-time failure at pPos: abandon this vehicle entirely
		}
	}

	return opts, nil
}

// probeDeliveryPositions tries every dPos for a fixed pPos, appending each
// feasible option to *opts. It returns advance=false only when the pickup
// step itself (position pPos in the post-insertion route) fails on time,
// signalling the caller to stop trying any further pPos for this vehicle.
func probeDeliveryPositions(s *solution.Solution, vehicle, call, pPos, n int, times, caps []int, opts *[]Option) (advance bool, err error) {
	for dPos := pPos + 1; dPos <= n+1; dPos++ {
		if addErr := s.Add(vehicle, call, pPos, dPos); addErr != nil {
			return false, addErr
		}

		failPos, failedDueToCapacity := s.UpdateFeasibility(vehicle, pPos, times[pPos], caps[pPos])

		if failPos < 0 {
			*opts = append(*opts, Option{PPos: pPos, DPos: dPos, Cost: s.GetCost()})
			_ = s.Remove(call)
			continue
		}

		_ = s.Remove(call)

		if !failedDueToCapacity && failPos == pPos {
			return false, nil
		}
		return true, nil // capacity failure, or a time failure past pPos: advance pPos
	}

	return true, nil
}

// outsourceOption is the always-feasible fallback: leaving call outsourced,
// appended at the end of the dummy vehicle's route.
func outsourceOption(p *problem.Problem, s *solution.Solution, call int) VehicleInsertions {
	end := len(s.Route(p.OutsourceVehicle()))
	return VehicleInsertions{
		Vehicle: p.OutsourceVehicle(),
		Options: []Option{{PPos: end, DPos: end + 1, Cost: s.GetCost() + p.Call(call).Penalty}},
	}
}

// BestRealVehicleOption scans perVehicle (as returned by FeasibleInsertions)
// and returns the lowest-cost option placed into a real vehicle, skipping
// the dummy outsource entry. It returns ErrNoFeasibleInsertion if every
// vehicle list is empty.
func BestRealVehicleOption(p *problem.Problem, perVehicle []VehicleInsertions) (vehicle int, opt Option, err error) {
	best := Option{Cost: -1}
	bestVehicle := -1

	for _, vi := range perVehicle {
		if vi.Vehicle == p.OutsourceVehicle() {
			continue
		}
		for _, o := range vi.Options {
			if bestVehicle == -1 || o.Cost < best.Cost {
				best = o
				bestVehicle = vi.Vehicle
			}
		}
	}

	if bestVehicle == -1 {
		return -1, Option{}, ErrNoFeasibleInsertion
	}
	return bestVehicle, best, nil
}
