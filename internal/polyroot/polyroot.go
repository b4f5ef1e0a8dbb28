// Package polyroot provides polynomial root finding for real-coefficient
// polynomials shared by the optics correction packages.
//
// Two solvers are available. [Companion] computes the eigenvalues of the
// companion matrix and is the default: real roots come back with an
// imaginary part of exactly zero. [DurandKerner] iterates all roots
// simultaneously in complex arithmetic; its real roots keep a tiny
// imaginary residue.
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDegeneratePolynomial is returned when a polynomial has degenerate
	// coefficients (leading coefficient zero, convergence failure, etc.).
	ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")
	// ErrNonFinite is returned when a coefficient is NaN or Inf.
	ErrNonFinite = errors.New("polyroot: non-finite coefficient")
)

// Solver finds all roots of a polynomial given in ascending power order
// (c[0] + c[1]*x + c[2]*x^2 + ...).
type Solver interface {
	Roots(ascending []float64) ([]complex128, error)
}

// Companion solves via the eigenvalues of the companion matrix.
type Companion struct{}

// Roots implements [Solver]. Trailing zero coefficients are trimmed first;
// a constant polynomial has no roots. Roots are sorted by [SortRoots].
func (Companion) Roots(ascending []float64) ([]complex128, error) {
	c, err := trim(ascending)
	if err != nil {
		return nil, err
	}

	n := len(c) - 1
	switch {
	case n < 1:
		return []complex128{}, nil
	case n == 1:
		return []complex128{complex(-c[0]/c[1], 0)}, nil
	}

	m := CompanionMatrix(c)

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, ErrDegeneratePolynomial
	}

	roots := eig.Values(nil)
	SortRoots(roots)

	return roots, nil
}

// CompanionMatrix returns the n×n companion matrix of an ascending
// coefficient slice of degree n, in reversed (upper Hessenberg) form: ones
// on the superdiagonal and -c[n-1-i]/c[n] in the first column.
func CompanionMatrix(c []float64) *mat.Dense {
	n := len(c) - 1
	lead := c[n]

	m := mat.NewDense(n, n, nil)
	for i := range n - 1 {
		m.Set(i, i+1, 1)
	}

	for i := range n {
		m.Set(i, 0, m.At(i, 0)-c[n-1-i]/lead)
	}

	return m
}

// DurandKerner solves with the Durand-Kerner iteration.
type DurandKerner struct{}

// Roots implements [Solver].
func (DurandKerner) Roots(ascending []float64) ([]complex128, error) {
	c, err := trim(ascending)
	if err != nil {
		return nil, err
	}

	if len(c) < 2 {
		return []complex128{}, nil
	}

	desc := make([]complex128, len(c))
	for i, v := range c {
		desc[len(c)-1-i] = complex(v, 0)
	}

	roots, err := DurandKernerRoots(desc)
	if err != nil {
		return nil, err
	}

	SortRoots(roots)

	return roots, nil
}

// SortRoots orders roots by real part, then by imaginary part.
func SortRoots(roots []complex128) {
	slices.SortFunc(roots, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})
}

func trim(ascending []float64) ([]float64, error) {
	for _, v := range ascending {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	n := len(ascending)
	for n > 1 && ascending[n-1] == 0 {
		n--
	}

	return ascending[:n], nil
}

// DurandKernerRoots finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKernerRoots(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := fujiwaraBound(norm)
	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// fujiwaraBound returns an upper bound on root magnitudes of a monic
// polynomial in descending order.
func fujiwaraBound(norm []complex128) float64 {
	n := len(norm) - 1
	bound := 0.0

	for k := 1; k <= n; k++ {
		a := cmplx.Abs(norm[k])
		if k == n {
			a /= 2
		}

		if r := math.Pow(a, 1/float64(k)); r > bound {
			bound = r
		}
	}

	return 2 * bound
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// EvalAscending evaluates a real polynomial in ascending power order at x.
func EvalAscending(ascending []float64, x float64) float64 {
	if len(ascending) == 0 {
		return 0
	}

	v := ascending[len(ascending)-1]
	for i := len(ascending) - 2; i >= 0; i-- {
		v = v*x + ascending[i]
	}

	return v
}
