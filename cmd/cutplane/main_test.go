// Unit tests for the interactive front end: input collection, failure
// reporting and the end-to-end trace on a tiny problem.
package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutplane/gomory"
)

// input joins whitespace-separated tokens the way a user would paste them.
func input(tokens ...string) *strings.Reader {
	return strings.NewReader(strings.Join(tokens, "\n") + "\n")
}

func TestRun_SingleCutProblem(t *testing.T) {
	// maximize x s.t. 2x ≤ 7: one variable, one constraint, one cut.
	in := input("1", "1", "1", "2", "7")
	var out strings.Builder

	err := run(in, &out, "bound", gomory.DefaultMaxIterations, gomory.DefaultEpsilon)
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "--- iteration 1 ---")
	require.Contains(t, got, "adding cut:")
	require.Contains(t, got, "optimal integer solution: [3]")
	require.Contains(t, got, "optimal objective value:")
}

func TestRun_AlreadyIntegral(t *testing.T) {
	// maximize x+y s.t. x ≤ 3, y ≤ 3.
	in := input("2", "2", "1", "1", "1", "0", "0", "1", "3", "3")
	var out strings.Builder

	err := run(in, &out, "bound", gomory.DefaultMaxIterations, gomory.DefaultEpsilon)
	require.NoError(t, err)
	require.Contains(t, out.String(), "optimal integer solution: [3 3]")
	require.NotContains(t, out.String(), "adding cut:")
}

func TestRun_InfeasibleIsReportedNotErrored(t *testing.T) {
	// x ≤ -1 contradicts x ≥ 0: a reported outcome, exit code 0.
	in := input("1", "1", "1", "1", "-1")
	var out strings.Builder

	err := run(in, &out, "bound", gomory.DefaultMaxIterations, gomory.DefaultEpsilon)
	require.NoError(t, err)
	require.Contains(t, out.String(), "no solution found: the relaxation is infeasible")
}

func TestRun_NonNumericTokenAborts(t *testing.T) {
	in := input("1", "1", "abc")
	var out strings.Builder

	err := run(in, &out, "bound", gomory.DefaultMaxIterations, gomory.DefaultEpsilon)
	require.Error(t, err)
	require.Contains(t, err.Error(), "numeric")
	require.NotContains(t, out.String(), "optimal integer solution")
}

func TestRun_TruncatedInputAborts(t *testing.T) {
	in := input("2", "1", "1") // objective vector cut short
	var out strings.Builder

	err := run(in, &out, "bound", gomory.DefaultMaxIterations, gomory.DefaultEpsilon)
	require.Error(t, err)
	require.Contains(t, err.Error(), "end of input")
}

func TestRun_BadConfiguration(t *testing.T) {
	var out strings.Builder

	err := run(input("1"), &out, "gomoryish", 100, 1e-5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown strategy")

	err = run(input("1"), &out, "bound", 0, 1e-5)
	require.Error(t, err)

	err = run(input("1"), &out, "bound", 100, 0.7)
	require.Error(t, err)
}

func TestRun_NonPositiveCounts(t *testing.T) {
	var out strings.Builder

	err := run(input("0", "1"), &out, "bound", 100, 1e-5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least 1")
}
