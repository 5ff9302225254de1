package problem

import "sort"

// computeRelatedness builds, for every call, the list of other calls sorted
// by ascending relatedness score (most similar first). The score combines
// spatial distance (origin-to-origin plus destination-to-destination travel
// cost, averaged over every vehicle compatible with both calls) and
// temporal overlap (symmetric difference of the two pickup windows). See
// SPEC_FULL.md §3 for the exact formula and DESIGN.md for the weighting
// decision.
//
// Complexity: O(C^2 * V) worst case (each pair averages over shared
// compatible vehicles); computed once at construction.
func computeRelatedness(p *Problem) [][]int {
	n := len(p.calls)
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		scores := make([]struct {
			call  int
			score float64
		}, 0, n-1)

		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			scores = append(scores, struct {
				call  int
				score float64
			}{call: j, score: relatednessScore(p, i, j)})
		}

		sort.SliceStable(scores, func(a, b int) bool {
			return scores[a].score < scores[b].score
		})

		list := make([]int, len(scores))
		for k, s := range scores {
			list[k] = s.call
		}
		out[i] = list
	}
	return out
}

// relatednessScore computes the similarity score between calls a and b.
// Lower is more related.
func relatednessScore(p *Problem, a, b int) float64 {
	ca, cb := &p.calls[a], &p.calls[b]

	avgDist := averageTravelCost(p, ca, cb)
	timeOverlap := float64(abs(ca.PickupLo-cb.PickupLo) + abs(ca.PickupHi-cb.PickupHi))

	return p.weights.Distance*avgDist + p.weights.Time*timeOverlap
}

// averageTravelCost averages, over every vehicle compatible with both
// calls, the travel cost from a's origin to b's origin plus a's
// destination to b's destination. If no vehicle is compatible with both,
// the average falls back to vehicle 0's table (the score still orders
// calls consistently; it is only used for removal-similarity ranking, not
// for feasibility).
func averageTravelCost(p *Problem, a, b *Call) float64 {
	var (
		sum   float64
		count int
	)
	for v := range p.vehicles {
		if !a.Compatible(v) || !b.Compatible(v) {
			continue
		}
		vh := &p.vehicles[v]
		sum += float64(vh.TravelCost[a.OriginNode][b.OriginNode])
		sum += float64(vh.TravelCost[a.DestinationNode][b.DestinationNode])
		count++
	}
	if count == 0 {
		if len(p.vehicles) == 0 {
			return 0
		}
		vh := &p.vehicles[0]
		return float64(vh.TravelCost[a.OriginNode][b.OriginNode] + vh.TravelCost[a.DestinationNode][b.DestinationNode])
	}
	return sum / float64(count)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
