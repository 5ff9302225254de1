package recreate

import (
	"sort"

	"github.com/katalvlaran/pdptw-alns/insertion"
)

// flatOption pairs a feasible insertion with the vehicle it belongs to,
// flattened out of insertion.FeasibleInsertions's per-vehicle grouping.
type flatOption struct {
	Vehicle int
	Opt     insertion.Option
}

// flattenOptions collects every option across every vehicle (including the
// dummy outsource entry) into one slice sorted ascending by cost.
func flattenOptions(perVehicle []insertion.VehicleInsertions) []flatOption {
	var flat []flatOption
	for _, vi := range perVehicle {
		for _, o := range vi.Options {
			flat = append(flat, flatOption{Vehicle: vi.Vehicle, Opt: o})
		}
	}
	sort.SliceStable(flat, func(i, j int) bool { return flat[i].Opt.Cost < flat[j].Opt.Cost })
	return flat
}

// removeAt returns calls with the element at index i removed, preserving
// the relative order of the rest.
func removeAt(calls []int, i int) []int {
	out := make([]int, 0, len(calls)-1)
	out = append(out, calls[:i]...)
	return append(out, calls[i+1:]...)
}
