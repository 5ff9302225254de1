// Package solution implements the mutable route representation for a
// PDPTW solution: one ordered call sequence per real vehicle plus a dummy
// outsource vehicle, a call index kept in lockstep with the routes, and
// lazily-cached feasibility/cost with incremental update hooks.
//
// Design goals, in the teacher's idiom (see core/methods_clone.go and
// tsp's Options/validate split in the original lvlath library):
//   - O(route length) mutations: Add/Remove/Move touch only the affected
//     vehicle's slice and reindex it; no global rescan on every mutation.
//   - Caches are explicit and lazy: feasible? and cost? are {unknown, value}
//     pairs. Add and Remove always mark both unknown. UpdateFeasibility
//     checks one vehicle's route without reading or setting the feasibility
//     cache, and UpdateCost refreshes one vehicle's cost entry but folds it
//     into the total only while the total is still known; neither hook
//     makes an unknown cache known again.
//   - Clones are deep but contiguous: Clone copies every backing slice so
//     a rejected ALNS candidate can be discarded without aliasing the
//     incumbent it was cloned from.
//
// Indexing: call IDs and vehicle indices are 0-based Go slice indices
// (see problem.Problem's indexing convention). The dummy outsource vehicle
// occupies slot problem.Problem.OutsourceVehicle(); its route holds every
// outsourced call exactly twice (order is immaterial for cost).
package solution
