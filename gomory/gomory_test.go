// Package gomory_test: engine tests. Scripted stub solvers pin down the state
// machine transition by transition; the real simplex adapter then exercises
// the full loop end-to-end on small integer programs.
package gomory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutplane/gomory"
	"github.com/katalvlaran/cutplane/lp"
	"github.com/katalvlaran/cutplane/simplex"
)

// scriptSolver replays a fixed sequence of solutions and records the
// constraint count it observed on every call. When the script is exhausted it
// keeps returning the last entry.
type scriptSolver struct {
	script []lp.Solution
	calls  int
	rows   []int // NumConstraints seen per invocation
}

func (s *scriptSolver) Solve(p *lp.Problem) lp.Solution {
	s.rows = append(s.rows, p.NumConstraints())
	i := s.calls
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.calls++

	return s.script[i]
}

func optimal(x []float64, obj float64) lp.Solution {
	return lp.Solution{X: x, Objective: obj, Status: lp.StatusOptimal}
}

// ------------------------------------------------------------------------
// 1. Argument validation.
// ------------------------------------------------------------------------

func TestSolve_NilArgs(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})

	_, err := gomory.Solve(nil, &scriptSolver{})
	require.ErrorIs(t, err, gomory.ErrNilProblem)

	_, err = gomory.Solve(p, nil)
	require.ErrorIs(t, err, gomory.ErrNilSolver)
}

func TestOptionConstructors_Panic(t *testing.T) {
	require.Panics(t, func() { gomory.WithEpsilon(0) })
	require.Panics(t, func() { gomory.WithEpsilon(0.5) })
	require.Panics(t, func() { gomory.WithEpsilon(-1e-5) })
	require.Panics(t, func() { gomory.WithMaxIterations(0) })
	require.Panics(t, func() { gomory.WithStrategy(nil) })
}

// ------------------------------------------------------------------------
// 2. State machine against scripted solvers.
// ------------------------------------------------------------------------

func TestSolve_AlreadyIntegral(t *testing.T) {
	// Scenario: relaxation optimum is integral on the first pass.
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 0}, {0, 1}}, []float64{3, 3})
	s := &scriptSolver{script: []lp.Solution{optimal([]float64{3, 3}, 6)}}

	res, err := gomory.Solve(p, s)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, res.X)
	require.Equal(t, 6.0, res.Objective)
	require.Equal(t, 1, res.Iterations)
	require.Empty(t, res.Cuts)
	require.Equal(t, 1, s.calls)
}

func TestSolve_SingleBoundCut(t *testing.T) {
	// Scenario: x=3.5 on the first pass, x=3 after the bound cut x ≤ 3.
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})
	s := &scriptSolver{script: []lp.Solution{
		optimal([]float64{3.5}, 3.5),
		optimal([]float64{3}, 3),
	}}

	res, err := gomory.Solve(p, s)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, res.X)
	require.Equal(t, 3.0, res.Objective)
	require.Equal(t, 2, res.Iterations)
	require.Len(t, res.Cuts, 1)
	require.Equal(t, []float64{1}, res.Cuts[0].Coeffs)
	require.Equal(t, 3.0, res.Cuts[0].RHS)

	// Monotonic tightening: the second solve saw the appended row.
	require.Equal(t, []int{1, 2}, s.rows)

	// The caller's problem was never mutated.
	require.Equal(t, 1, p.NumConstraints())
}

func TestSolve_RelaxationInfeasible(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{1}}, []float64{-1})
	s := &scriptSolver{script: []lp.Solution{{Status: lp.StatusInfeasible}}}

	res, err := gomory.Solve(p, s)
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrRelaxationInfeasible)
	require.Equal(t, 1, s.calls) // failed before any cut attempt
}

func TestSolve_SolverError(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{-1}}, []float64{0})
	cause := errors.New("backend exploded")
	s := &scriptSolver{script: []lp.Solution{{Status: lp.StatusError, Err: cause}}}

	res, err := gomory.Solve(p, s)
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrSolverFailed)
	require.Contains(t, err.Error(), "backend exploded")
}

func TestSolve_SingularMatrixUnderTableau(t *testing.T) {
	// Dependent rows make A non-invertible; TableauCut must abort the run.
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 2}, {2, 4}}, []float64{4, 8})
	s := &scriptSolver{script: []lp.Solution{optimal([]float64{1.5, 1.25}, 2.75)}}

	res, err := gomory.Solve(p, s, gomory.WithStrategy(gomory.TableauCut{}))
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrSingularMatrix)
	require.Equal(t, 1, s.calls) // no cut appended, no second solve
}

func TestSolve_TableauCutNonProgress(t *testing.T) {
	// The single-variable worked trace: A=[[2]], x=3.5 derives the cut
	// −0.5·x ≤ −0.5, which 3.5 satisfies — it does not exclude the point.
	// The guard must fail closed instead of looping.
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})
	s := &scriptSolver{script: []lp.Solution{optimal([]float64{3.5}, 3.5)}}

	res, err := gomory.Solve(p, s, gomory.WithStrategy(gomory.TableauCut{}))
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrNoProgress)
}

func TestSolve_DuplicateCutCycling(t *testing.T) {
	// A solver stuck on the same fractional point re-derives the same bound
	// cut; the second occurrence must be detected as cycling.
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})
	s := &scriptSolver{script: []lp.Solution{optimal([]float64{3.5}, 3.5)}}

	res, err := gomory.Solve(p, s)
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrNoProgress)
	require.Equal(t, 2, s.calls)
}

func TestSolve_IterationLimit(t *testing.T) {
	// Fresh cuts every pass, never integral: the budget must stop the loop.
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})
	s := &scriptSolver{script: []lp.Solution{
		optimal([]float64{3.5}, 3.5),
		optimal([]float64{2.5}, 2.5),
		optimal([]float64{1.5}, 1.5),
	}}

	res, err := gomory.Solve(p, s, gomory.WithMaxIterations(2))
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrIterationLimit)
	require.Equal(t, 2, s.calls)
}

// ------------------------------------------------------------------------
// 3. Hooks.
// ------------------------------------------------------------------------

func TestSolve_Hooks(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})
	s := &scriptSolver{script: []lp.Solution{
		optimal([]float64{3.5}, 3.5),
		optimal([]float64{3}, 3),
	}}

	var iters []gomory.IterationState
	var cutIters []int
	var cuts []gomory.Cut
	res, err := gomory.Solve(p, s,
		gomory.WithOnIteration(func(st gomory.IterationState) { iters = append(iters, st) }),
		gomory.WithOnCut(func(i int, c gomory.Cut) {
			cutIters = append(cutIters, i)
			cuts = append(cuts, c)
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 2, res.Iterations)

	require.Len(t, iters, 2)
	require.Equal(t, 1, iters[0].Iteration)
	require.Equal(t, []float64{3.5}, iters[0].X)
	require.Equal(t, 3.5, iters[0].Objective)
	require.Equal(t, 2, iters[1].Iteration)

	require.Equal(t, []int{1}, cutIters)
	require.Len(t, cuts, 1)
	require.Equal(t, 3.0, cuts[0].RHS)

	// Hook copies are detached: corrupting them must not affect the result.
	iters[0].X[0] = 99
	cuts[0].Coeffs[0] = 99
	require.Equal(t, []float64{1}, res.Cuts[0].Coeffs)
}

// ------------------------------------------------------------------------
// 4. End-to-end with the real simplex adapter.
// ------------------------------------------------------------------------

func TestSolve_EndToEnd_AlreadyIntegral(t *testing.T) {
	p := mustProblem(t, []float64{1, 1}, [][]float64{{1, 0}, {0, 1}}, []float64{3, 3})

	res, err := gomory.Solve(p, simplex.New())
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, res.RoundedX())
	require.InDelta(t, 6.0, res.Objective, 1e-8)
	require.Empty(t, res.Cuts)
	require.True(t, gomory.IsIntegral(res.X, gomory.DefaultEpsilon))
}

func TestSolve_EndToEnd_SingleCut(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{2}}, []float64{7})

	res, err := gomory.Solve(p, simplex.New())
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.RoundedX())
	require.InDelta(t, 3.0, res.Objective, 1e-8)
	require.Len(t, res.Cuts, 1)
	require.InDelta(t, 3.0, res.Cuts[0].RHS, 1e-8)
	require.True(t, gomory.IsIntegral(res.X, gomory.DefaultEpsilon))
}

func TestSolve_EndToEnd_TwoCutsDeterministic(t *testing.T) {
	// maximize x+y s.t. 2x ≤ 7, 2y ≤ 7: relaxation optimum (3.5, 3.5).
	// The tie-break picks x first, then y, so the cut order is fixed.
	build := func() *lp.Problem {
		return mustProblem(t, []float64{1, 1}, [][]float64{{2, 0}, {0, 2}}, []float64{7, 7})
	}

	first, err := gomory.Solve(build(), simplex.New())
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, first.RoundedX())
	require.InDelta(t, 6.0, first.Objective, 1e-8)
	require.Len(t, first.Cuts, 2)
	require.Equal(t, []float64{1, 0}, first.Cuts[0].Coeffs)
	require.Equal(t, []float64{0, 1}, first.Cuts[1].Coeffs)

	// Determinism: an identical run reproduces the exact cut sequence.
	second, err := gomory.Solve(build(), simplex.New())
	require.NoError(t, err)
	require.Equal(t, first.Cuts, second.Cuts)
	require.Equal(t, first.Iterations, second.Iterations)
}

func TestSolve_EndToEnd_Infeasible(t *testing.T) {
	p := mustProblem(t, []float64{1}, [][]float64{{1}}, []float64{-1})

	res, err := gomory.Solve(p, simplex.New())
	require.Nil(t, res)
	require.ErrorIs(t, err, gomory.ErrRelaxationInfeasible)
}

// ------------------------------------------------------------------------
// 5. Result helpers.
// ------------------------------------------------------------------------

func TestResult_RoundedX(t *testing.T) {
	r := &gomory.Result{X: []float64{2.9999999, 1.0000001, -0.0000004}}
	require.Equal(t, []int{3, 1, 0}, r.RoundedX())
}
