// Package problem defines the immutable instance data for a Pickup-and-
// Delivery Problem with Time Windows (PDPTW) over a heterogeneous vehicle
// fleet: nodes, vehicles, transport calls, and a precomputed relatedness
// table used by similarity-driven ruin heuristics.
//
// Design goals:
//   - Immutability: a *Problem is frozen at construction and safe to share,
//     read-only, across goroutines (e.g. one per parallel experiment).
//   - Strict validation: malformed instances are rejected in New, never
//     discovered mid-search.
//   - Zero hidden cost: relatedness is the only precomputation, done once;
//     everything else is a direct field read.
//
// Indexing convention: nodes, vehicles, and calls are addressed by 0-based
// Go slice index throughout this module (the on-disk instance format and
// the original assignment this spec derives from are 1-indexed; that
// translation happens once, in the instance parser, not here).
//
// The dummy "outsource" vehicle is not stored in Vehicles; it is the
// virtual slot at index len(Vehicles), returned by Problem.OutsourceVehicle.
// It has infinite capacity, no time windows, and is always compatible with
// every call.
package problem
