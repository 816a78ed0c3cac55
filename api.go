package quadmatrix

// SolveLU solves A·x = b using LU decomposition with partial pivoting,
// factorizing A on first use and reusing the cached factors thereafter
// b is not mutated.
func (s *Solver[T]) SolveLU(b *Vector[T]) (*Vector[T], *Error) {
	return s.solveLUVec("solveLU", b)
}

// SolveLUAccurately solves A·x = b via LU, then sharpens the result with
// the iterative-refinement loop.
func (s *Solver[T]) SolveLUAccurately(b *Vector[T]) (*Vector[T], *Error) {
	x0, err := s.solveLUVec("solveLUAccurately", b)
	if err != nil {
		return nil, err
	}
	return s.refineVec("solveLUAccurately", x0, b)
}

// SolveCholesky solves A·x = b via the Cholesky factorization of A, which
// must be symmetric positive-definite.
func (s *Solver[T]) SolveCholesky(b *Vector[T]) (*Vector[T], *Error) {
	return s.solveCholeskyVec("solveCholesky", b)
}

// SolveCholeskyAccurately solves A·x = b via Cholesky, then applies
// iterative refinement.
func (s *Solver[T]) SolveCholeskyAccurately(b *Vector[T]) (*Vector[T], *Error) {
	x0, err := s.solveCholeskyVec("solveCholeskyAccurately", b)
	if err != nil {
		return nil, err
	}
	return s.refineVec("solveCholeskyAccurately", x0, b)
}

// SolveMatrix solves A·X = B via LU decomposition. Unlike the internal
// solveLUMat this wraps, B is never mutated: the public facade deep-copies
// it before handing it to the "spoils B" internal path.
func (s *Solver[T]) SolveMatrix(b *Matrix[T]) (*Matrix[T], *Error) {
	return s.solveLUMat("solveMatrix", b.Clone())
}

// SolveMatrixAccurately solves A·X = B via LU, then applies iterative
// refinement. B is never mutated.
func (s *Solver[T]) SolveMatrixAccurately(b *Matrix[T]) (*Matrix[T], *Error) {
	x0, err := s.solveLUMat("solveMatrixAccurately", b.Clone())
	if err != nil {
		return nil, err
	}
	return s.refineMat("solveMatrixAccurately", x0, b)
}

// InverseAccurately returns A⁻¹, refined by the iterative-refinement loop
// starting from the plain Inverse() result.
func (s *Solver[T]) InverseAccurately() (*Matrix[T], *Error) {
	x0, err := s.Inverse()
	if err != nil {
		return nil, err
	}
	// Inverse always solves via LU, even on the memoized path where
	// ensureLU/solveLUMat is skipped and lastMethod could otherwise still
	// be left over from an unrelated Cholesky call in between.
	s.lastMethod = methodLU
	identity := s.Unity()
	return s.refineMat("inverseAccurately", x0, identity)
}
