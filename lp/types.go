// SPDX-License-Identifier: MIT
// Package lp: sentinel error set and the solution envelope.
// This file defines ONLY package-level sentinels and the Status/Solution types.
// All validation paths MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)) and tests MUST match them via errors.Is.

package lp

import "errors"

// Sentinel errors returned by Problem construction and mutation.
var (
	// ErrEmptyProblem indicates a problem with zero variables or zero constraints.
	ErrEmptyProblem = errors.New("lp: problem has no variables or no constraints")

	// ErrDimensionMismatch indicates inconsistent dimensions between c, A and b,
	// e.g. a constraint row whose length differs from the number of variables.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNonFinite indicates that a NaN or ±Inf coefficient was encountered
	// where finite values are required.
	ErrNonFinite = errors.New("lp: NaN or Inf coefficient")
)

// Status classifies the outcome of a single relaxation solve.
type Status int

const (
	// StatusOptimal means the solver found an optimal point of the relaxation.
	StatusOptimal Status = iota

	// StatusInfeasible means the relaxation has no feasible point.
	StatusInfeasible

	// StatusError means the solver failed for any other reason
	// (unbounded problem, numerical breakdown, backend fault).
	StatusError
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "error"
	}
}

// Solution is the result of one relaxation solve.
//
// X and Objective are meaningful only when Status == StatusOptimal.
// Err optionally carries the backend's failure cause when Status != StatusOptimal;
// it is diagnostic context, not part of the solve contract.
type Solution struct {
	// X is the optimal point of the relaxation, length NumVariables.
	X []float64

	// Objective is the value of c·X at the optimum.
	Objective float64

	// Status classifies the solve outcome.
	Status Status

	// Err carries the underlying solver error, if any.
	Err error
}

// IsOptimal reports whether the solve produced an optimal point.
func (s Solution) IsOptimal() bool { return s.Status == StatusOptimal }
