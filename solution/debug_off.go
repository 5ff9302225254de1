//go:build !alns_debug

package solution

// assertInvariants is a no-op in production builds; see debug_on.go for the
// alns_debug build-tagged invariant check this stands in for.
func (s *Solution) assertInvariants() {}
