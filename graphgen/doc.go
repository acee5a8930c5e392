// Package graphgen builds *graph.Graph instances for tests and property
// tests: deterministic topologies (Path, Cycle, Complete) and a
// randomized Erdős–Rényi-style sparse generator, all emitting
// (expected, worst-case) delay pairs with expected ≤ worst-case.
//
// Generalized from lvlath's builder package: the same functional-option
// configuration shape (BuilderOption → builderConfig), the same
// constructors, but producing two-weight edges instead of one. This is
// what exercises the message-count property across random graphs and
// random-graph regression tests, the way ad hoc random-graph fixtures
// exercised the original routing prototype this module descends from.
package graphgen

import "errors"

// Sentinel errors returned by the constructors in this package.
var (
	// ErrTooFewVertices indicates n was below the constructor's minimum.
	ErrTooFewVertices = errors.New("graphgen: too few vertices")

	// ErrInvalidProbability indicates p was outside [0, 1].
	ErrInvalidProbability = errors.New("graphgen: probability must be in [0, 1]")

	// ErrNeedRandSource indicates a stochastic draw was required (0 < p < 1)
	// but no RNG was configured via WithSeed or WithRand.
	ErrNeedRandSource = errors.New("graphgen: random source required for 0<p<1")
)
