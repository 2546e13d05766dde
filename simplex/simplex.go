// SPDX-License-Identifier: MIT
// Package simplex: gonum-backed adapter implementing the relaxation contract.

package simplex

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/cutplane/lp"
)

// ErrBadTolerance indicates a negative tolerance passed to WithTolerance.
var ErrBadTolerance = errors.New("simplex: tolerance must be non-negative")

// Simplex solves lp.Problem relaxations with gonum's dense simplex method.
// The zero value is not usable; construct via New. A Simplex is stateless
// across calls and safe for concurrent use.
type Simplex struct {
	tol float64 // pivot tolerance forwarded to gonum; 0 selects gonum's default
}

// Option represents a functional option for configuring a Simplex solver.
type Option func(*Simplex)

// WithTolerance sets the simplex pivot tolerance forwarded to the backend.
// Zero selects the backend's default. Negative values cause a panic with
// ErrBadTolerance, signalling invalid configuration early.
func WithTolerance(tol float64) Option {
	return func(s *Simplex) {
		if tol < 0 {
			panic(ErrBadTolerance.Error())
		}
		s.tol = tol
	}
}

// New constructs a Simplex solver with the given options applied.
func New(opts ...Option) *Simplex {
	s := &Simplex{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve solves the continuous relaxation of p:
//
//	maximize c·x subject to A·x ≤ b, x ≥ 0
//
// and returns a fresh lp.Solution. The input problem is read-only; Solve
// snapshots the rows it needs and never retains references into p.
//
// Translation to the backend (gonum minimizes over free variables):
//  1. Negate c so the maximization becomes a minimization.
//  2. Stack the non-negativity bounds under A: G = [A; −I], h = [b; 0].
//     Without these rows, gonum's free-variable split would allow x < 0.
//  3. lp.Convert(−c, G, h, nil, nil) yields the standard equality form with
//     x split into positive/negative parts followed by one slack per row.
//  4. lp.Simplex solves it; x_i is recovered as xStd[i] − xStd[n+i] and the
//     objective value is re-signed for maximization.
//
// Complexity: dominated by the backend; the encoding itself is O((m+n)·n).
func (s *Simplex) Solve(p *lp.Problem) lp.Solution {
	if p == nil {
		return lp.Solution{Status: lp.StatusError, Err: lp.ErrEmptyProblem}
	}
	n := p.NumVariables()
	m := p.NumConstraints()

	// 1) Negated objective for the minimizing backend.
	c := p.Objective()
	negC := make([]float64, n)
	for i, v := range c {
		negC[i] = -v
	}

	// 2) G = [A; −I], h = [b; 0].
	gData := make([]float64, (m+n)*n)
	for i, row := range p.ConstraintMatrix() {
		copy(gData[i*n:(i+1)*n], row)
	}
	for j := 0; j < n; j++ {
		gData[(m+j)*n+j] = -1
	}
	g := mat.NewDense(m+n, n, gData)
	h := make([]float64, m+n)
	copy(h, p.RHS())

	// 3) Standard form and solve.
	cStd, aStd, bStd := convexlp.Convert(negC, g, h, nil, nil)
	_, xStd, err := convexlp.Simplex(cStd, aStd, bStd, s.tol, nil)
	if err != nil {
		if errors.Is(err, convexlp.ErrInfeasible) {
			return lp.Solution{Status: lp.StatusInfeasible, Err: err}
		}

		return lp.Solution{Status: lp.StatusError, Err: err}
	}

	// 4) Recover the original variables from the positive/negative split and
	//    evaluate the objective in maximization sign.
	x := make([]float64, n)
	var obj float64
	for i := 0; i < n; i++ {
		x[i] = xStd[i] - xStd[n+i]
		obj += c[i] * x[i]
	}

	return lp.Solution{X: x, Objective: obj, Status: lp.StatusOptimal}
}
