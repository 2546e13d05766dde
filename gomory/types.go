// SPDX-License-Identifier: MIT
// Package gomory: configuration options, sentinel errors and result types.
// This file defines ONLY types, defaults and sentinels; the engine lives in
// gomory.go and the cut strategies in strategy.go.

package gomory

import (
	"errors"
	"math"
)

// DefaultEpsilon is the integrality tolerance shared by the feasibility
// checker and the fractional-variable selector. Both components MUST use the
// same value, otherwise termination decisions become inconsistent.
const DefaultEpsilon = 1e-5

// DefaultMaxIterations caps the cutting-plane loop. The loop has no proven
// termination bound, so running uncapped is never an option.
const DefaultMaxIterations = 100

// cutEqualTol is the component-wise tolerance under which two cuts are
// considered identical (cycling detection) and under which a cut's violation
// of the current point is considered zero (non-progress detection).
const cutEqualTol = 1e-9

// Sentinel errors returned by the cutting-plane engine.
var (
	// ErrNilProblem indicates that a nil *lp.Problem was passed to Solve.
	ErrNilProblem = errors.New("gomory: problem is nil")

	// ErrNilSolver indicates that a nil Solver was passed to Solve.
	ErrNilSolver = errors.New("gomory: solver is nil")

	// ErrRelaxationInfeasible indicates that the continuous relaxation has no
	// feasible point; the run terminates with no solution.
	ErrRelaxationInfeasible = errors.New("gomory: relaxation is infeasible")

	// ErrSolverFailed indicates that the relaxation solver reported a failure
	// other than infeasibility (unbounded, numerical breakdown, backend fault).
	ErrSolverFailed = errors.New("gomory: relaxation solver failed")

	// ErrNonSquareMatrix indicates that TableauCut was asked to invert a
	// non-square constraint matrix. Fatal for the run; no fallback.
	ErrNonSquareMatrix = errors.New("gomory: constraint matrix is not square")

	// ErrSingularMatrix indicates that TableauCut could not invert the
	// constraint matrix. Fatal for the run; no fallback.
	ErrSingularMatrix = errors.New("gomory: constraint matrix is singular")

	// ErrNoProgress indicates a cut that cannot advance the run: either it
	// does not exclude the current fractional point, or it duplicates a cut
	// appended in an earlier iteration. The engine fails closed rather than
	// looping indefinitely.
	ErrNoProgress = errors.New("gomory: cut makes no progress")

	// ErrIterationLimit indicates that MaxIterations was exhausted before an
	// integral optimum was found.
	ErrIterationLimit = errors.New("gomory: iteration limit exceeded")

	// ErrBadEpsilon indicates an integrality tolerance outside (0, 0.5).
	ErrBadEpsilon = errors.New("gomory: epsilon must be in (0, 0.5)")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("gomory: max iterations must be positive")

	// ErrBadStrategy indicates a nil CutStrategy.
	ErrBadStrategy = errors.New("gomory: cut strategy is nil")
)

// Cut is a single derived inequality Coeffs·x ≤ RHS, appended to the problem
// by the engine. Cuts are value-copied across package boundaries; holding a
// Cut never aliases engine state.
type Cut struct {
	// Coeffs is the coefficient vector, length NumVariables of the problem.
	Coeffs []float64

	// RHS is the inequality's right-hand side.
	RHS float64
}

// clone returns a deep copy of the cut.
func (c Cut) clone() Cut {
	out := Cut{Coeffs: make([]float64, len(c.Coeffs)), RHS: c.RHS}
	copy(out.Coeffs, c.Coeffs)

	return out
}

// equal reports whether two cuts coincide component-wise within cutEqualTol.
func (c Cut) equal(o Cut) bool {
	if len(c.Coeffs) != len(o.Coeffs) {
		return false
	}
	if math.Abs(c.RHS-o.RHS) > cutEqualTol {
		return false
	}
	for j := range c.Coeffs {
		if math.Abs(c.Coeffs[j]-o.Coeffs[j]) > cutEqualTol {
			return false
		}
	}

	return true
}

// IterationState is the snapshot passed to the OnIteration hook after each
// successful relaxation solve.
type IterationState struct {
	// Iteration is the 1-based iteration counter.
	Iteration int

	// X is a copy of the relaxation optimum for this iteration.
	X []float64

	// Objective is the relaxation's objective value at X.
	Objective float64
}

// Result is the successful outcome of a cutting-plane run.
type Result struct {
	// X is the final (integral within Epsilon) solution vector.
	X []float64

	// Objective is the objective value at X.
	Objective float64

	// Iterations is the number of relaxation solves performed.
	Iterations int

	// Cuts is the ordered pool of appended cuts, one per cutting iteration.
	// Empty when the first relaxation optimum was already integral.
	Cuts []Cut
}

// RoundedX returns X with every component rounded to the nearest integer,
// the form in which an integral solution is reported.
func (r *Result) RoundedX() []int {
	out := make([]int, len(r.X))
	for i, v := range r.X {
		out[i] = int(math.Round(v))
	}

	return out
}

// Options configures a cutting-plane run.
//
// Epsilon       – shared integrality tolerance for checker and selector.
// MaxIterations – hard cap on relaxation solves.
// Strategy      – cut-derivation policy (BoundCut or TableauCut).
// OnIteration   – optional hook fired after each successful solve.
// OnCut         – optional hook fired when a cut is appended.
type Options struct {
	Epsilon       float64              // integrality tolerance, in (0, 0.5)
	MaxIterations int                  // iteration budget, ≥ 1
	Strategy      CutStrategy          // cut-derivation policy, non-nil
	OnIteration   func(IterationState) // per-iteration observer, may be nil
	OnCut         func(int, Cut)       // per-cut observer, may be nil
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithEpsilon sets the shared integrality tolerance. Values outside (0, 0.5)
// cause a panic with ErrBadEpsilon: beyond 0.5 every value would count as
// integral and the loop could never select a variable to cut.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 || eps >= 0.5 || math.IsNaN(eps) {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations sets the iteration budget. Non-positive values cause a
// panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithStrategy selects the cut-derivation policy. A nil strategy causes a
// panic with ErrBadStrategy.
func WithStrategy(s CutStrategy) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrBadStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithOnIteration registers a hook fired after every successful relaxation
// solve, before the integrality check. The hook receives copies and may be nil.
func WithOnIteration(hook func(IterationState)) Option {
	return func(o *Options) {
		o.OnIteration = hook
	}
}

// WithOnCut registers a hook fired whenever a cut is appended, with the
// iteration number that produced it. The hook receives a copy of the cut.
func WithOnCut(hook func(iteration int, cut Cut)) Option {
	return func(o *Options) {
		o.OnCut = hook
	}
}

// DefaultOptions returns the engine defaults: DefaultEpsilon tolerance,
// DefaultMaxIterations budget, BoundCut strategy, no hooks. Use this as a
// starting point for further functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Strategy:      BoundCut{},
	}
}
