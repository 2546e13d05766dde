// SPDX-License-Identifier: MIT
// Package gomory: the two cut-derivation policies.
// Both operate on the currently selected fractional index and the current
// problem snapshot; neither mutates the problem — appending is the engine's job.

package gomory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cutplane/lp"
)

// CutStrategy derives a single cut from the relaxation optimum x and the
// selected fractional index idx against the current problem snapshot.
//
// Contracts:
//   - p is read-only; implementations must not append to it.
//   - idx is a valid index into x with len(x) == p.NumVariables().
//   - The returned Cut owns its coefficient slice (no aliasing of x or p).
type CutStrategy interface {
	Derive(p *lp.Problem, x []float64, idx int) (Cut, error)
}

// BoundCut is the bound-tightening policy: it emits the direct upper-bound
// cut x[idx] ≤ ⌊x[idx]⌋ on the most-fractional variable.
//
// It is always well-defined and always strictly excludes the current
// fractional value of that one variable, which is why it is the default.
// The price is strength: it is a branching-style bound, not a general Gomory
// cut, so convergence may need more iterations.
type BoundCut struct{}

// Derive emits the cut e_idx·x ≤ ⌊x[idx]⌋.
//
// Complexity: O(n).
func (BoundCut) Derive(p *lp.Problem, x []float64, idx int) (Cut, error) {
	if err := checkDeriveArgs(p, x, idx); err != nil {
		return Cut{}, err
	}

	coeffs := make([]float64, p.NumVariables())
	coeffs[idx] = 1

	return Cut{Coeffs: coeffs, RHS: math.Floor(x[idx])}, nil
}

// TableauCut is the tableau-row policy: it inverts the current constraint
// matrix, reads row idx of the inverse as the simplex tableau row of the
// (assumed basic) selected variable, and emits the fractional-part cut
//
//	−(T_row − ⌊T_row⌋) · x ≤ −(x[idx] − ⌊x[idx]⌋)
//
// Preconditions and failure modes:
//   - The current constraint matrix must be square (ErrNonSquareMatrix) and
//     invertible (ErrSingularMatrix). Both failures are fatal for the run;
//     the engine does not fall back to another strategy.
//   - The derivation is only a valid Gomory cut when the matrix's rows
//     correspond to the optimal basis of the relaxation, which is NOT
//     guaranteed once ad hoc cuts have been appended. The engine's
//     non-progress guard catches the cuts this produces that fail to exclude
//     the current point; without that guard the loop could cycle forever.
type TableauCut struct{}

// Derive inverts the constraint matrix and emits the fractional-part cut of
// row idx of the inverse.
//
// Complexity: O(m³) for the inversion, m = current constraint count.
func (TableauCut) Derive(p *lp.Problem, x []float64, idx int) (Cut, error) {
	if err := checkDeriveArgs(p, x, idx); err != nil {
		return Cut{}, err
	}

	// 1) The tableau reading requires a square system.
	m, n := p.NumConstraints(), p.NumVariables()
	if m != n {
		return Cut{}, fmt.Errorf("%w: %d×%d", ErrNonSquareMatrix, m, n)
	}

	// 2) Flatten the snapshot into a dense matrix and invert it.
	data := make([]float64, n*n)
	for i, row := range p.ConstraintMatrix() {
		copy(data[i*n:(i+1)*n], row)
	}
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(n, n, data)); err != nil {
		return Cut{}, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	// 3) Row idx of the inverse is the assumed tableau row; take fractional
	//    parts of the row and of the selected component, negate both sides.
	coeffs := make([]float64, n)
	for j := 0; j < n; j++ {
		coeffs[j] = -fracPart(inv.At(idx, j))
	}

	return Cut{Coeffs: coeffs, RHS: -fracPart(x[idx])}, nil
}

// checkDeriveArgs validates the shared Derive preconditions.
func checkDeriveArgs(p *lp.Problem, x []float64, idx int) error {
	if p == nil {
		return ErrNilProblem
	}
	if len(x) != p.NumVariables() {
		return fmt.Errorf("%w: solution length %d, want %d", lp.ErrDimensionMismatch, len(x), p.NumVariables())
	}
	if idx < 0 || idx >= len(x) {
		return fmt.Errorf("%w: index %d of %d", lp.ErrDimensionMismatch, idx, len(x))
	}

	return nil
}
