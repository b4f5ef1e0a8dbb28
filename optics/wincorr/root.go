package wincorr

import (
	"math"

	"github.com/cwbudde/algo-spectro/internal/polyroot"
)

// Solver finds all roots of a polynomial given in ascending power order.
type Solver interface {
	Roots(ascending []float64) ([]complex128, error)
}

var (
	// CompanionSolver takes the eigenvalues of the companion matrix. Real
	// roots have an imaginary part of exactly zero. This is the default.
	CompanionSolver Solver = polyroot.Companion{}
	// DurandKernerSolver iterates all roots simultaneously. Its real roots
	// keep a small imaginary residue, so pair it with WithRealTolerance.
	DurandKernerSolver Solver = polyroot.DurandKerner{}
)

// SelectRealRoot returns the real part of the first root, in solver order,
// whose imaginary part magnitude is at most tol. With tol == 0 only an
// imaginary part of exactly zero qualifies. It returns NaN when no root
// qualifies.
func SelectRealRoot(roots []complex128, tol float64) float64 {
	for _, r := range roots {
		if math.Abs(imag(r)) <= tol {
			return real(r)
		}
	}

	return math.NaN()
}
