// Package precession computes Earth-axis precession quantities at an
// arbitrary epoch.
//
// An Engine evaluates the named precession terms (P, Q, η, Π, p, ε0, ε, χ,
// ω, ψ, θ, ζ, z) as polynomials in T, the Julian centuries of TT since
// J2000.0, using the IAU1976, IAU2000 or IAU2006 coefficient set. Values
// are in arcseconds and are memoized per (epoch, model): replacing the
// epoch installs a fresh cache and switching the model clears it.
//
// Basic usage:
//
//	e, err := precession.New(epoch.FromTime(t, 69184*time.Millisecond))
//	if err != nil { ... }
//	zeta, theta, z := e.Zeta(), e.Theta(), e.Z()
//
// An Engine is meant to be owned by one goroutine. It performs no locking
// of its own; share it only behind an external mutex.
package precession
