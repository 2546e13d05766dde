// Package lp defines the shared data model for linear programs in canonical
// inequality form and the solution envelope exchanged with relaxation solvers.
//
// Overview:
//
//   - A Problem captures "maximize c·x subject to A·x ≤ b, x ≥ 0" with a dense
//     m×n constraint matrix. Construction validates shape and finiteness once,
//     so downstream algorithms can rely on a well-formed instance.
//   - The objective vector c is immutable for the lifetime of a Problem; the
//     constraint rows (A, b) grow strictly by appending, never by removal or
//     reordering. This append-only discipline is what makes the feasible region
//     monotonically non-growing under cutting planes.
//   - A Solution is the ephemeral result of one relaxation solve: a point, an
//     objective value and a Status (optimal / infeasible / error). Solutions are
//     produced fresh on every solve and never mutated in place.
//
// Key invariants (enforced at construction and on every append):
//
//   - A has exactly m rows and n columns; b has length m.
//   - Every entry of c, A and b is a finite real (no NaN, no ±Inf).
//   - n ≥ 1 and m ≥ 1; empty problems are rejected with ErrEmptyProblem.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyProblem       if the problem has no variables or no constraints.
//   - ErrDimensionMismatch  if a row length or vector length is inconsistent.
//   - ErrNonFinite          if any coefficient is NaN or ±Inf.
//
// Thread safety:
//
//   - A Problem is not safe for concurrent mutation. Algorithms that append
//     constraints must own their instance exclusively; use Clone to obtain an
//     independent copy before handing a problem to a mutating consumer.
//
// See also:
//
//   - simplex: a concrete relaxation solver over this model.
//   - gomory:  the cutting-plane engine that owns and grows a cloned Problem.
package lp
