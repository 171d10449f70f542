// Package polyroot provides polynomial root finding and the conjugate-pair
// bookkeeping shared by the analog prototype generators.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

const polishIter = 8

// Roots finds all roots of a real polynomial with coefficients in descending
// power order: coeff[0]*x^n + coeff[1]*x^(n-1) + ... + coeff[n].
//
// The roots are the eigenvalues of the companion matrix, each refined by a
// few Newton steps on the original polynomial. Leading zeros are ignored and
// trailing zeros produce exact roots at the origin.
func Roots(coeff []float64) ([]complex128, error) {
	c := coeff
	for len(c) > 0 && c[0] == 0 {
		c = c[1:]
	}

	if len(c) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrDegeneratePolynomial
		}
	}

	atOrigin := 0
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
		atOrigin++
	}

	n := len(c) - 1
	roots := make([]complex128, 0, n+atOrigin)

	switch n {
	case 0:
	case 1:
		roots = append(roots, complex(-c[1]/c[0], 0))
	default:
		companion := mat.NewDense(n, n, nil)
		for j := range n {
			companion.Set(0, j, -c[j+1]/c[0])
		}
		for i := 1; i < n; i++ {
			companion.Set(i, i-1, 1)
		}

		cc := make([]complex128, len(c))
		for i, v := range c {
			cc[i] = complex(v/c[0], 0)
		}

		var eig mat.Eigen
		if ok := eig.Factorize(companion, mat.EigenNone); !ok {
			// Fall back to simultaneous iteration on the monic polynomial.
			dk, err := DurandKerner(cc)
			if err != nil {
				return nil, err
			}
			roots = append(roots, dk...)
			break
		}

		for _, r := range eig.Values(nil) {
			roots = append(roots, polish(cc, r))
		}
	}

	for range atOrigin {
		roots = append(roots, 0)
	}

	return roots, nil
}

// polish refines root r of the descending-order polynomial coeff with Newton
// steps, keeping a step only while it reduces the residual.
func polish(coeff []complex128, r complex128) complex128 {
	res := cmplx.Abs(PolyEval(coeff, r))
	for range polishIter {
		f, df := PolyEvalDeriv(coeff, r)
		if df == 0 {
			break
		}

		next := r - f/df
		nextRes := cmplx.Abs(PolyEval(coeff, next))
		if !(nextRes < res) {
			break
		}

		r, res = next, nextRes
	}

	// A real polynomial keeps its real roots real.
	if math.Abs(imag(r)) <= 1e-14*math.Max(1, cmplx.Abs(r)) {
		r = complex(real(r), 0)
	}

	return r
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
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

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

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

			delta := PolyEval(norm, roots[i]) / den

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
		if res := cmplx.Abs(PolyEval(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
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

// PolyEvalDeriv evaluates a descending-order polynomial and its first
// derivative at x in a single Horner pass.
func PolyEvalDeriv(coeff []complex128, x complex128) (complex128, complex128) {
	v := coeff[0]
	d := complex(0, 0)
	for i := 1; i < len(coeff); i++ {
		d = d*x + v
		v = v*x + coeff[i]
	}

	return v, d
}

// LeftHalfPlane returns the roots whose real part is below -tol.
func LeftHalfPlane(roots []complex128, tol float64) []complex128 {
	out := make([]complex128, 0, (len(roots)+1)/2)
	for _, r := range roots {
		if real(r) < -tol {
			out = append(out, r)
		}
	}

	return out
}

// SnapSmall zeroes real and imaginary parts whose magnitude is at or below
// limit.
func SnapSmall(roots []complex128, limit float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		re, im := real(r), imag(r)
		if math.Abs(re) <= limit {
			re = 0
		}
		if math.Abs(im) <= limit {
			im = 0
		}
		out[i] = complex(re, im)
	}

	return out
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// Symmetrize replaces each complex root by the mean of itself and the
// conjugate of its closest partner, so conjugate pairs match exactly. Roots
// without a partner within ConjugateTol are returned unchanged.
func Symmetrize(roots []complex128) []complex128 {
	out := append([]complex128(nil), roots...)
	used := make([]bool, len(out))

	for i := range out {
		if used[i] || imag(out[i]) == 0 {
			continue
		}

		best := -1
		bestDist := math.MaxFloat64
		for j := range out {
			if i == j || used[j] {
				continue
			}

			if d := cmplx.Abs(out[j] - cmplx.Conj(out[i])); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(out[i], out[best], ConjugateTol) {
			continue
		}

		avg := (out[i] + cmplx.Conj(out[best])) / 2
		out[i] = avg
		out[best] = cmplx.Conj(avg)
		used[i] = true
		used[best] = true
	}

	return out
}
