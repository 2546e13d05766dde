// Package gomory implements a cutting-plane engine for integer linear
// programs: it repeatedly solves the continuous relaxation of a problem,
// checks the optimum for integrality, and tightens the feasible region with a
// derived cut until an integral optimum is found or the run fails closed.
//
// Overview:
//
//   - The engine owns a private clone of the input lp.Problem and grows it by
//     appending one cut per iteration. Appending is the only mutation; the cut
//     pool is ordered and append-only, so the feasible region shrinks
//     monotonically across iterations.
//   - The relaxation solver is an injected capability (the Solver interface),
//     invoked exactly once per iteration and treated as a black box. Any
//     implementation of Solve(*lp.Problem) lp.Solution can drive the loop;
//     package simplex provides a gonum-backed one.
//   - Cut derivation is a pluggable CutStrategy with two concrete variants:
//     BoundCut (the default) and TableauCut. Both derive a single inequality
//     from the most-fractional variable of the current optimum and neither
//     mutates the problem itself.
//
// Iteration protocol (per call to Solve):
//
//  1. SOLVING:  invoke the solver on the current (c, A, b) snapshot. A
//     non-optimal status terminates the run with ErrRelaxationInfeasible or
//     ErrSolverFailed; no partial result is returned.
//  2. CHECKING: if every component of the optimum is within Epsilon of an
//     integer, return success.
//  3. CUTTING:  select the component with the largest fractional part (first
//     index wins ties, deterministically). If no component qualifies — a
//     degenerate disagreement with the integrality check — accept the optimum
//     as-is. Otherwise derive a cut, verify it actually excludes the current
//     point, verify it is not a repeat of an earlier cut, append it and loop.
//
// Hardening (beyond the classical textbook loop):
//
//   - MaxIterations caps the loop; exhaustion returns ErrIterationLimit.
//   - A derived cut that fails to exclude the current fractional point, or
//     that duplicates an already-appended cut, fails closed with ErrNoProgress
//     instead of looping forever. TableauCut needs this guard: inverting the
//     current constraint matrix yields a valid Gomory cut only when that
//     matrix matches the optimal basis of the relaxation, which appended cuts
//     do not preserve in general.
//
// Choosing a strategy:
//
//   - BoundCut emits x[i] ≤ ⌊x[i]⌋ for the selected variable. It is always
//     well-defined and always strictly excludes the current fractional value
//     of that variable. This is the default.
//   - TableauCut emits the fractional-part cut of row i of A⁻¹. It requires
//     the current constraint matrix to be square and invertible
//     (ErrNonSquareMatrix / ErrSingularMatrix otherwise, both fatal for the
//     run) and is subject to the non-progress guard described above.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrNilProblem, ErrNilSolver        invalid arguments to Solve.
//   - ErrRelaxationInfeasible            the relaxation has no feasible point.
//   - ErrSolverFailed                    the solver reported any other failure.
//   - ErrNonSquareMatrix, ErrSingularMatrix   TableauCut preconditions.
//   - ErrNoProgress                      non-excluding or duplicate cut.
//   - ErrIterationLimit                  MaxIterations exhausted.
//   - ErrBadEpsilon, ErrBadMaxIterations, ErrBadStrategy
//     (via panic) invalid functional-option arguments.
//
// Observability:
//
//   - WithOnIteration(hook) fires after every successful relaxation solve with
//     the iteration number, the current point and its objective value.
//   - WithOnCut(hook) fires whenever a cut is appended. Hooks receive copies;
//     they cannot corrupt engine state.
//
// Determinism:
//
//   - Given identical inputs and a deterministic solver, the tie-break rule
//     makes the entire cut sequence reproducible.
//
// Thread safety:
//
//   - Distinct Solve calls share no state (each clones its problem), so
//     independent concurrent runs are safe. A single run is strictly
//     sequential: one solver call per iteration, no cancellation mid-solve.
//
// Example usage:
//
//	p, _ := lp.NewProblem([]float64{1}, [][]float64{{2}}, []float64{7})
//	res, err := gomory.Solve(p, simplex.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.RoundedX(), res.Objective) // [3] 3
package gomory
