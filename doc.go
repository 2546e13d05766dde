// Package cutplane solves small integer linear programs with the Gomory
// cutting-plane method: relax integrality, solve the continuous relaxation,
// and tighten the feasible region with one cut per iteration until the
// optimum is integral.
//
// 🚀 What is cutplane?
//
//	A compact, deterministic toolkit built from three pieces:
//		• lp/      — the problem & solution data model (maximize c·x, A·x ≤ b, x ≥ 0)
//		• simplex/ — a relaxation solver adapter over gonum's dense simplex
//		• gomory/  — the cutting-plane engine with pluggable cut strategies
//
// ✨ Why choose cutplane?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-closed guarantees – iteration budget, cycle detection, strict sentinels
//   - Swappable solver – any Solve(*lp.Problem) lp.Solution implementation plugs in
//   - Observable – per-iteration and per-cut hooks for tracing without I/O in the core
//
// Quick example:
//
//	p, _ := lp.NewProblem([]float64{1}, [][]float64{{2}}, []float64{7})
//	res, err := gomory.Solve(p, simplex.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.RoundedX(), res.Objective) // [3] 3
//
// An interactive front end lives in cmd/cutplane: it collects a problem from
// stdin, traces every iteration and cut, and prints the integer-rounded
// optimum — or the reason no solution was found.
//
// See the package docs of lp, simplex and gomory for contracts, sentinel
// errors and complexity notes.
package cutplane
