// SPDX-License-Identifier: MIT
// Package gomory: the cutting-plane engine.
//
// The engine is a small state machine driven once per iteration:
//
//	SOLVING → CHECKING → SUCCESS
//	                   ↘ CUTTING → SOLVING (loop)
//	any failure        → FAILED (terminal, no partial result)
//
// Notes on implementation choices:
//
//   - The engine clones the input problem up front and owns the clone
//     exclusively for the run; the caller's problem is never mutated and
//     independent runs can proceed concurrently.
//   - Cuts are appended only after two guards pass: the cut must strictly
//     exclude the current fractional point, and it must not duplicate an
//     earlier cut. Either violation fails closed with ErrNoProgress.
//   - All failures propagate immediately to the caller; nothing is retried
//     and no best-effort fractional answer is ever returned.

package gomory

import (
	"fmt"

	"github.com/katalvlaran/cutplane/lp"
)

// Solver is the relaxation capability the engine consumes: one call solves
// the continuous relaxation of the current problem snapshot and returns a
// fresh lp.Solution. The engine invokes it exactly once per iteration and
// makes no assumptions about the backend beyond the Solution contract.
type Solver interface {
	Solve(p *lp.Problem) lp.Solution
}

// Solve runs the cutting-plane loop on problem p using relaxation solver s.
// It accepts functional options to customize tolerance, iteration budget,
// cut strategy and observation hooks.
//
// Returns:
//
//   - *Result on success: the final integral-within-Epsilon point, its
//     objective value, the iteration count and the ordered cut pool.
//   - An error wrapping one of the package sentinels otherwise; the returned
//     Result is nil in every failure case (no partial results).
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. s must be non-nil (ErrNilSolver).
//
// Complexity: MaxIterations solver invocations; engine-side work per
// iteration is O(n) plus the strategy's Derive cost and an O(k·n) duplicate
// scan over the k cuts appended so far.
func Solve(p *lp.Problem, s Solver, opts ...Option) (*Result, error) {
	// 1) Build and validate the configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments.
	if p == nil {
		return nil, ErrNilProblem
	}
	if s == nil {
		return nil, ErrNilSolver
	}

	// 3) Clone the problem: the engine owns (A, b) exclusively for the run.
	r := &runner{
		prob:    p.Clone(),
		solver:  s,
		options: cfg,
	}

	return r.run()
}

// runner holds the mutable state for a single cutting-plane execution.
type runner struct {
	prob    *lp.Problem // engine-owned snapshot; grows by cut appends only
	solver  Solver      // injected relaxation capability
	options Options     // frozen configuration for the run
	cuts    []Cut       // ordered, append-only cut pool
}

// run executes the iterate-solve-check-cut loop until success, failure or
// budget exhaustion.
func (r *runner) run() (*Result, error) {
	eps := r.options.Epsilon

	for iter := 1; iter <= r.options.MaxIterations; iter++ {
		// SOLVING: one atomic relaxation solve on the current snapshot.
		sol := r.solver.Solve(r.prob)
		switch sol.Status {
		case lp.StatusOptimal:
			// fall through to CHECKING
		case lp.StatusInfeasible:
			return nil, wrapCause(ErrRelaxationInfeasible, sol.Err)
		default:
			return nil, wrapCause(ErrSolverFailed, sol.Err)
		}

		// Observe the iteration before any termination decision.
		if hook := r.options.OnIteration; hook != nil {
			hook(IterationState{
				Iteration: iter,
				X:         copyVec(sol.X),
				Objective: sol.Objective,
			})
		}

		// CHECKING: integral within eps means we are done.
		if IsIntegral(sol.X, eps) {
			return r.result(sol, iter), nil
		}

		// CUTTING: pick the most-fractional variable. No candidate despite a
		// failed integrality check is the documented degenerate case — accept
		// the optimum as-is.
		idx, ok := SelectFractional(sol.X, eps)
		if !ok {
			return r.result(sol, iter), nil
		}

		cut, err := r.options.Strategy.Derive(r.prob, sol.X, idx)
		if err != nil {
			return nil, err
		}

		// Guard 1: the cut must strictly exclude the current point, i.e. the
		// point must violate the new inequality. A non-cutting cut would be
		// re-derived forever.
		if violation(cut, sol.X) <= cutEqualTol {
			return nil, fmt.Errorf("%w: cut does not exclude the current point (variable %d)", ErrNoProgress, idx)
		}

		// Guard 2: an identical cut appended earlier means the region already
		// contains this inequality and the loop is cycling.
		for _, prev := range r.cuts {
			if prev.equal(cut) {
				return nil, fmt.Errorf("%w: duplicate cut (variable %d)", ErrNoProgress, idx)
			}
		}

		// Append the cut: the feasible region shrinks monotonically.
		if err = r.prob.AppendConstraint(cut.Coeffs, cut.RHS); err != nil {
			// Strategies own their output shape; a mismatch here is a broken
			// CutStrategy implementation, not a solvable condition.
			return nil, fmt.Errorf("appending cut: %w", err)
		}
		r.cuts = append(r.cuts, cut)

		if hook := r.options.OnCut; hook != nil {
			hook(iter, cut.clone())
		}
	}

	return nil, fmt.Errorf("%w: no integral optimum within %d iterations", ErrIterationLimit, r.options.MaxIterations)
}

// result assembles the success value from the terminal solution.
func (r *runner) result(sol lp.Solution, iterations int) *Result {
	out := &Result{
		X:          copyVec(sol.X),
		Objective:  sol.Objective,
		Iterations: iterations,
		Cuts:       make([]Cut, len(r.cuts)),
	}
	for i, c := range r.cuts {
		out.Cuts[i] = c.clone()
	}

	return out
}

// violation returns coeffs·x − rhs: positive iff x violates the cut,
// i.e. the cut excludes x from the tightened region.
func violation(c Cut, x []float64) float64 {
	var dot float64
	for j, v := range c.Coeffs {
		dot += v * x[j]
	}

	return dot - c.RHS
}

// wrapCause attaches the solver's diagnostic cause to a sentinel, when present.
func wrapCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}

	return fmt.Errorf("%w: %v", sentinel, cause)
}

// copyVec returns a detached copy of v.
func copyVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
