// Package simplex provides a concrete relaxation solver for lp.Problem,
// backed by gonum's dense simplex implementation (optimize/convex/lp).
//
// Overview:
//
//   - The adapter consumes the canonical form "maximize c·x s.t. A·x ≤ b, x ≥ 0"
//     and translates it to gonum's standard form behind the scenes: the objective
//     is negated (gonum minimizes), the non-negativity bounds are expressed as
//     explicit −x ≤ 0 rows, and lp.Convert introduces the slack/split variables.
//   - The caller never sees the standard-form encoding: Solve recovers the
//     original variables from gonum's split representation and reports the
//     objective in maximization sign.
//   - The backend is treated strictly as a black box. No tableau, basis or dual
//     information is surfaced; one call to Solve is one atomic solve.
//
// Outcome mapping:
//
//   - successful solve              → lp.StatusOptimal (with point and objective)
//   - lp.ErrInfeasible from gonum   → lp.StatusInfeasible
//   - anything else (unbounded,
//     singular basis, numerical
//     breakdown)                    → lp.StatusError
//
// The underlying error is preserved in Solution.Err for diagnostics.
//
// Example usage:
//
//	p, _ := lp.NewProblem([]float64{1}, [][]float64{{2}}, []float64{7})
//	sol := simplex.New().Solve(p)
//	if sol.IsOptimal() {
//	    fmt.Println(sol.X[0], sol.Objective) // 3.5 3.5
//	}
package simplex
