package cli

import (
	"fmt"
	"os"

	"github.com/m-vokhm/QuadMatrix-sub001/internal/version"
	cli "github.com/urfave/cli/v2"
)

const AppName = "quadsolve"

// NewApp creates and configures the quadsolve CLI application.
func NewApp() *cli.App {
	app := &cli.App{
		Name:    AppName,
		Usage:   "dense linear system solver (LU and Cholesky, with iterative refinement)",
		Version: version.Short(),
		Description: `quadsolve reads a square coefficient matrix and (for solve) a right-hand
side from CSV files and reports the result.

QUICK START:
  Solve A·x = b:          quadsolve solve -a A.csv -b b.csv
  Refine the solution:    quadsolve solve -a A.csv -b b.csv --accurate
  Use Cholesky instead:   quadsolve solve -a A.csv -b b.csv --cholesky
  Determinant:            quadsolve det -a A.csv
  Condition number:       quadsolve cond -a A.csv
  Matrix inverse:         quadsolve invert -a A.csv`,
		Commands: []*cli.Command{
			solveCommand(),
			detCommand(),
			condCommand(),
			invertCommand(),
		},
		Before: func(c *cli.Context) error {
			if c.NArg() == 0 && c.Command.Name == "" {
				_ = cli.ShowAppHelp(c)
				os.Exit(0)
			}
			return nil
		},
		CommandNotFound: func(c *cli.Context, command string) {
			_, _ = fmt.Fprintf(c.App.Writer, "Unknown command '%s'. Try '%s help'\n", command, c.App.Name)
		},
	}
	return app
}

// Run executes the CLI application.
func Run(args []string) error {
	app := NewApp()
	return app.Run(args)
}

// RunWithOSExit runs the CLI and exits with the appropriate status code.
func RunWithOSExit() {
	if err := Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
