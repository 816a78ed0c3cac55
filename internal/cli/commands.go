package cli

import (
	"fmt"

	quadmatrix "github.com/m-vokhm/QuadMatrix-sub001"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
	cli "github.com/urfave/cli/v2"
)

func matrixFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "a",
		Usage:    "path to the square coefficient matrix CSV file",
		Required: true,
	}
}

func scaleFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "scale",
		Usage: "row-equilibrate A before factorizing it",
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "solve A·x = b for x",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			matrixFlag(),
			&cli.StringFlag{
				Name:     "b",
				Usage:    "path to the right-hand-side vector CSV file",
				Required: true,
			},
			scaleFlag(),
			&cli.BoolFlag{
				Name:  "cholesky",
				Usage: "use Cholesky instead of LU (A must be symmetric positive-definite)",
			},
			&cli.BoolFlag{
				Name:  "accurate",
				Usage: "apply iterative refinement to the raw solve",
			},
		},
		Action: func(c *cli.Context) error {
			a, err := readMatrixCSV(c.String("a"))
			if err != nil {
				return err
			}
			b, err := readVectorCSV(c.String("b"))
			if err != nil {
				return err
			}
			s := quadmatrix.NewSolver(a, c.Bool("scale"))

			var x *quadmatrix.Vector[scalar.Float64]
			var serr *quadmatrix.Error
			switch {
			case c.Bool("cholesky") && c.Bool("accurate"):
				x, serr = s.SolveCholeskyAccurately(b)
			case c.Bool("cholesky"):
				x, serr = s.SolveCholesky(b)
			case c.Bool("accurate"):
				x, serr = s.SolveLUAccurately(b)
			default:
				x, serr = s.SolveLU(b)
			}
			if serr != nil {
				return fmt.Errorf("%w", serr)
			}
			writeVector(x)
			return nil
		},
	}
}

func detCommand() *cli.Command {
	return &cli.Command{
		Name:  "det",
		Usage: "print det(A)",
		Flags: []cli.Flag{matrixFlag(), scaleFlag()},
		Action: func(c *cli.Context) error {
			a, err := readMatrixCSV(c.String("a"))
			if err != nil {
				return err
			}
			s := quadmatrix.NewSolver(a, c.Bool("scale"))
			fmt.Printf("%.10g\n", float64(s.Determinant()))
			if s.ErrorCode() != quadmatrix.OK {
				return fmt.Errorf("quadsolve: det: %s", s.ErrorCode())
			}
			return nil
		},
	}
}

func condCommand() *cli.Command {
	return &cli.Command{
		Name:  "cond",
		Usage: "print the condition number norm(A)*norm(inv(A))",
		Flags: []cli.Flag{matrixFlag(), scaleFlag()},
		Action: func(c *cli.Context) error {
			a, err := readMatrixCSV(c.String("a"))
			if err != nil {
				return err
			}
			s := quadmatrix.NewSolver(a, c.Bool("scale"))
			fmt.Printf("%.10g\n", s.Cond())
			return nil
		},
	}
}

func invertCommand() *cli.Command {
	return &cli.Command{
		Name:  "invert",
		Usage: "print A^-1",
		Flags: []cli.Flag{
			matrixFlag(),
			scaleFlag(),
			&cli.BoolFlag{
				Name:  "accurate",
				Usage: "apply iterative refinement to the inverse",
			},
		},
		Action: func(c *cli.Context) error {
			a, err := readMatrixCSV(c.String("a"))
			if err != nil {
				return err
			}
			s := quadmatrix.NewSolver(a, c.Bool("scale"))
			var inv *quadmatrix.Matrix[scalar.Float64]
			var serr *quadmatrix.Error
			if c.Bool("accurate") {
				inv, serr = s.InverseAccurately()
			} else {
				inv, serr = s.Inverse()
			}
			if serr != nil {
				return fmt.Errorf("%w", serr)
			}
			writeMatrix(inv)
			return nil
		},
	}
}
