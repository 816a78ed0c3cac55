package quadmatrix

import (
	"github.com/m-vokhm/QuadMatrix-sub001/internal/pivot"
	"github.com/m-vokhm/QuadMatrix-sub001/scalar"
)

// method identifies which cached factorization the refinement loop
// reuses, tracked as Solver.lastMethod.
type method int

const (
	methodNone method = iota
	methodLU
	methodCholesky
)

// Solver holds a single matrix's original data plus whatever
// factorizations and memoized results have been computed from it so far.
// All state is created lazily on first use and retained for the
// Solver's lifetime; there is no cache-invalidation operation — a
// caller who wants a different factorization of a modified matrix
// constructs a new Solver.
//
// A Solver is not safe for concurrent use: its caches and sticky error
// flags make concurrent calls from multiple goroutines a data race. Use
// one Solver per goroutine.
type Solver[T scalar.S[T]] struct {
	a           *Matrix[T]
	needToScale bool

	lu        *Matrix[T]
	pivot     *pivot.Permutation
	rowScales []T

	chol *Matrix[T]

	luError       bool
	cholError     bool
	cholErrorKind Kind // the latched kind, immune to ensureLU's OK reset
	errorCode     Kind

	detSign int

	determinant *T
	norm        *T
	inversion   *Matrix[T]

	lastMethod method
}

// NewSolver constructs a Solver over a, deep-copying it so the caller's
// matrix can never be mutated through the Solver. Equilibration and
// factorization are deferred until the first solve.
func NewSolver[T scalar.S[T]](a *Matrix[T], needToScale bool) *Solver[T] {
	return &Solver[T]{
		a:           a.Clone(),
		needToScale: needToScale,
		detSign:     1,
	}
}

// ErrorCode returns the last latched error code. Every LU-family call
// resets it to OK on entry, so a successful LU call after a Cholesky
// failure reports OK here; the Cholesky failure itself stays latched and
// later Cholesky calls still fail with its kind. Cholesky entry does not
// reset the code.
func (s *Solver[T]) ErrorCode() Kind {
	return s.errorCode
}

// N returns the dimension of the matrix the Solver was constructed with.
func (s *Solver[T]) N() int {
	return s.a.N()
}

// solveByLastMethodVec dispatches a refinement-loop correction solve to
// whichever factorization lastMethod names, reusing the cached
// factorization rather than recomputing it. Called only from refineVec,
// after an initial solve has already set lastMethod, so the default case
// is unreachable in practice.
func (s *Solver[T]) solveByLastMethodVec(op string, r *Vector[T]) (*Vector[T], *Error) {
	switch s.lastMethod {
	case methodLU:
		return s.solveLUVec(op, r)
	case methodCholesky:
		return s.solveCholeskyVec(op, r)
	default:
		panic("quadmatrix: refinement requested with no prior factorization")
	}
}

// solveByLastMethodMat is solveByLastMethodVec's matrix counterpart.
func (s *Solver[T]) solveByLastMethodMat(op string, r *Matrix[T]) (*Matrix[T], *Error) {
	switch s.lastMethod {
	case methodLU:
		return s.solveLUMat(op, r)
	case methodCholesky:
		return s.solveCholeskyMat(op, r)
	default:
		panic("quadmatrix: refinement requested with no prior factorization")
	}
}
