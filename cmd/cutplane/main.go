// Command cutplane solves small integer linear programs interactively with
// the Gomory cutting-plane method.
//
// The program collects a maximization problem from stdin (variable count,
// constraint count, objective coefficients, constraint rows, right-hand
// sides), runs the cutting-plane engine with a gonum-backed relaxation
// solver, and prints a per-iteration trace followed by the integer-rounded
// result — or a "no solution found" notice with the failure reason.
//
// Flags:
//
//	-strategy bound|tableau   cut-derivation policy (default bound)
//	-max-iter N               iteration budget (default 100)
//	-eps E                    integrality tolerance in (0, 0.5) (default 1e-5)
//
// Any non-numeric input token aborts the run with an error and exit code 1;
// no partial result is printed.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/cutplane/gomory"
	"github.com/katalvlaran/cutplane/lp"
	"github.com/katalvlaran/cutplane/simplex"
)

func main() {
	strategy := flag.String("strategy", "bound", `cut strategy: "bound" or "tableau"`)
	maxIter := flag.Int("max-iter", gomory.DefaultMaxIterations, "maximum number of cutting-plane iterations")
	eps := flag.Float64("eps", gomory.DefaultEpsilon, "integrality tolerance, in (0, 0.5)")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *strategy, *maxIter, *eps); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run collects the problem, solves it and reports. The returned error covers
// invalid configuration and invalid input only; an unsolvable problem is a
// reported outcome, not an error.
func run(in io.Reader, out io.Writer, strategy string, maxIter int, eps float64) error {
	// Validate flags up front: the option constructors panic by design, so
	// the CLI pre-checks and reports like any other user mistake.
	var cs gomory.CutStrategy
	switch strategy {
	case "bound":
		cs = gomory.BoundCut{}
	case "tableau":
		cs = gomory.TableauCut{}
	default:
		return fmt.Errorf("unknown strategy %q (want \"bound\" or \"tableau\")", strategy)
	}
	if maxIter < 1 {
		return errors.New("max-iter must be at least 1")
	}
	if eps <= 0 || eps >= 0.5 {
		return errors.New("eps must be in (0, 0.5)")
	}

	fmt.Fprintln(out, "Integer programming with Gomory cutting planes")
	fmt.Fprintln(out, "----------------------------------------------")

	p, err := collectProblem(in, out)
	if err != nil {
		return err
	}

	res, err := gomory.Solve(p, simplex.New(),
		gomory.WithEpsilon(eps),
		gomory.WithMaxIterations(maxIter),
		gomory.WithStrategy(cs),
		gomory.WithOnIteration(func(st gomory.IterationState) {
			fmt.Fprintf(out, "\n--- iteration %d ---\n", st.Iteration)
			fmt.Fprintf(out, "current solution: %v\n", st.X)
			fmt.Fprintf(out, "objective value:  %g\n", st.Objective)
		}),
		gomory.WithOnCut(func(_ int, cut gomory.Cut) {
			fmt.Fprintf(out, "adding cut: %v · x ≤ %g\n", cut.Coeffs, cut.RHS)
		}),
	)
	if err != nil {
		fmt.Fprintf(out, "\nno solution found: %s\n", failureReason(err))

		return nil
	}

	fmt.Fprintln(out, "\n--- result ---")
	fmt.Fprintf(out, "optimal integer solution: %v\n", res.RoundedX())
	fmt.Fprintf(out, "optimal objective value:  %g\n", res.Objective)

	return nil
}

// collectProblem reads the problem definition token by token. Tokens may be
// separated by spaces or newlines, so values can be typed one per prompt or
// pasted in bulk.
func collectProblem(in io.Reader, out io.Writer) (*lp.Problem, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	r := &reader{sc: sc, out: out}

	nVars, err := r.readInt("number of decision variables: ")
	if err != nil {
		return nil, err
	}
	nCons, err := r.readInt("number of constraints: ")
	if err != nil {
		return nil, err
	}
	if nVars < 1 || nCons < 1 {
		return nil, errors.New("variable and constraint counts must be at least 1")
	}

	fmt.Fprintln(out, "\nobjective coefficients (maximization):")
	c := make([]float64, nVars)
	for j := range c {
		if c[j], err = r.readFloat(fmt.Sprintf("  coefficient of x%d: ", j+1)); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(out, "\nconstraint rows (A·x ≤ b):")
	a := make([][]float64, nCons)
	for i := range a {
		a[i] = make([]float64, nVars)
		for j := range a[i] {
			if a[i][j], err = r.readFloat(fmt.Sprintf("  constraint %d, coefficient of x%d: ", i+1, j+1)); err != nil {
				return nil, err
			}
		}
	}

	fmt.Fprintln(out, "\nright-hand sides:")
	b := make([]float64, nCons)
	for i := range b {
		if b[i], err = r.readFloat(fmt.Sprintf("  bound of constraint %d: ", i+1)); err != nil {
			return nil, err
		}
	}

	return lp.NewProblem(c, a, b)
}

// reader prompts and parses whitespace-separated numeric tokens.
type reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// next prompts and returns the next raw token.
func (r *reader) next(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		return "", errors.New("unexpected end of input")
	}

	return r.sc.Text(), nil
}

func (r *reader) readInt(prompt string) (int, error) {
	tok, err := r.next(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("please enter numeric values only (got %q)", tok)
	}

	return v, nil
}

func (r *reader) readFloat(prompt string) (float64, error) {
	tok, err := r.next(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("please enter numeric values only (got %q)", tok)
	}

	return v, nil
}

// failureReason maps engine sentinels onto user-facing phrasing.
func failureReason(err error) string {
	switch {
	case errors.Is(err, gomory.ErrRelaxationInfeasible):
		return "the relaxation is infeasible"
	case errors.Is(err, gomory.ErrSolverFailed):
		return fmt.Sprintf("the relaxation solver failed (%v)", err)
	case errors.Is(err, gomory.ErrNonSquareMatrix):
		return "the tableau strategy requires a square constraint matrix"
	case errors.Is(err, gomory.ErrSingularMatrix):
		return "the constraint matrix could not be inverted"
	case errors.Is(err, gomory.ErrNoProgress):
		return "cut generation stopped making progress"
	case errors.Is(err, gomory.ErrIterationLimit):
		return "the iteration budget was exhausted"
	default:
		return err.Error()
	}
}
