// SPDX-License-Identifier: MIT
// Package lp: the Problem type and its append-only mutation surface.

package lp

import (
	"fmt"
	"math"
)

// Problem is a linear program in canonical inequality form:
//
//	maximize   c·x
//	subject to A·x ≤ b,  x ≥ 0
//
// The objective c is fixed at construction. Constraint rows may only be
// appended (see AppendConstraint); they are never removed or reordered, so the
// feasible region can only shrink over the lifetime of a Problem.
//
// The zero value is not usable; construct via NewProblem.
type Problem struct {
	c []float64   // objective coefficients, immutable after construction
	a [][]float64 // constraint rows, append-only
	b []float64   // right-hand sides, parallel to a
}

// NewProblem validates and builds a Problem from an objective vector c,
// a dense constraint matrix a (slice of rows) and a right-hand-side vector b.
// All inputs are deep-copied; the caller retains ownership of its slices.
//
// Validation (in order):
//  1. len(c) ≥ 1 and len(a) ≥ 1            → ErrEmptyProblem otherwise.
//  2. len(b) == len(a)                     → ErrDimensionMismatch otherwise.
//  3. every row of a has length len(c)     → ErrDimensionMismatch otherwise.
//  4. every entry of c, a, b is finite     → ErrNonFinite otherwise.
//
// Complexity: O(m·n) for validation and copying.
func NewProblem(c []float64, a [][]float64, b []float64) (*Problem, error) {
	// 1) Reject empty shapes before any allocation.
	if len(c) == 0 || len(a) == 0 {
		return nil, ErrEmptyProblem
	}

	// 2) The rhs vector must pair one value with each constraint row.
	if len(b) != len(a) {
		return nil, fmt.Errorf("%w: %d constraint rows but %d rhs values", ErrDimensionMismatch, len(a), len(b))
	}

	// 3) Copy the objective, checking finiteness as we go.
	p := &Problem{
		c: make([]float64, len(c)),
		a: make([][]float64, 0, len(a)),
		b: make([]float64, 0, len(b)),
	}
	for i, v := range c {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: objective coefficient %d", ErrNonFinite, i)
		}
		p.c[i] = v
	}

	// 4) Copy each constraint row through the same validation path used by
	//    AppendConstraint, so construction and cut-append enforce identical rules.
	for i, row := range a {
		if err := p.AppendConstraint(row, b[i]); err != nil {
			return nil, fmt.Errorf("constraint row %d: %w", i, err)
		}
	}

	return p, nil
}

// NumVariables returns n, the number of decision variables.
func (p *Problem) NumVariables() int { return len(p.c) }

// NumConstraints returns m, the current number of constraint rows,
// including any rows appended after construction.
func (p *Problem) NumConstraints() int { return len(p.a) }

// Objective returns a copy of the objective coefficient vector c.
func (p *Problem) Objective() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// Constraint returns a copy of constraint row i and its right-hand side.
// Returns ErrDimensionMismatch if i is out of range.
func (p *Problem) Constraint(i int) ([]float64, float64, error) {
	if i < 0 || i >= len(p.a) {
		return nil, 0, fmt.Errorf("%w: constraint index %d of %d", ErrDimensionMismatch, i, len(p.a))
	}
	row := make([]float64, len(p.a[i]))
	copy(row, p.a[i])

	return row, p.b[i], nil
}

// ConstraintMatrix returns a deep copy of the current constraint matrix A.
// The result is a snapshot; later appends do not affect it.
func (p *Problem) ConstraintMatrix() [][]float64 {
	out := make([][]float64, len(p.a))
	for i, row := range p.a {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// RHS returns a copy of the current right-hand-side vector b.
func (p *Problem) RHS() []float64 {
	out := make([]float64, len(p.b))
	copy(out, p.b)

	return out
}

// AppendConstraint appends the row "coeffs·x ≤ rhs" to the problem.
// The row is deep-copied. Appending is the only mutation a Problem supports:
// existing rows and the objective are never touched.
//
// Errors:
//   - ErrDimensionMismatch if len(coeffs) != NumVariables().
//   - ErrNonFinite         if any coefficient or rhs is NaN or ±Inf.
//
// Complexity: O(n).
func (p *Problem) AppendConstraint(coeffs []float64, rhs float64) error {
	if len(coeffs) != len(p.c) {
		return fmt.Errorf("%w: row length %d, want %d", ErrDimensionMismatch, len(coeffs), len(p.c))
	}
	if !isFinite(rhs) {
		return fmt.Errorf("%w: rhs", ErrNonFinite)
	}
	row := make([]float64, len(coeffs))
	for j, v := range coeffs {
		if !isFinite(v) {
			return fmt.Errorf("%w: coefficient %d", ErrNonFinite, j)
		}
		row[j] = v
	}
	p.a = append(p.a, row)
	p.b = append(p.b, rhs)

	return nil
}

// Clone returns an independent deep copy of the problem.
// Mutating the clone (appending constraints) never affects the original,
// which is what lets multiple solver runs share one source problem safely.
func (p *Problem) Clone() *Problem {
	cp := &Problem{
		c: make([]float64, len(p.c)),
		a: make([][]float64, len(p.a)),
		b: make([]float64, len(p.b)),
	}
	copy(cp.c, p.c)
	copy(cp.b, p.b)
	for i, row := range p.a {
		cp.a[i] = make([]float64, len(row))
		copy(cp.a[i], row)
	}

	return cp
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
