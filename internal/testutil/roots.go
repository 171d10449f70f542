package testutil

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

// SortRoots returns a copy of roots ordered by real part, then imaginary part.
func SortRoots(roots []complex128) []complex128 {
	out := append([]complex128(nil), roots...)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out
}

// RequireRootsNearlyEqual fails t unless every root in want has a distinct
// match in got within eps, scaled by max(1, |want|).
func RequireRootsNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("root count mismatch: got %d, want %d", len(got), len(want))
	}

	used := make([]bool, len(got))
	for _, w := range want {
		best := -1
		bestDist := math.MaxFloat64
		for j, g := range got {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(g - w); d < bestDist {
				best, bestDist = j, d
			}
		}
		if bestDist > eps*math.Max(1, cmplx.Abs(w)) {
			t.Fatalf("root %v: closest match %v (diff %v > eps %v)\ngot  %v\nwant %v",
				w, got[best], bestDist, eps, SortRoots(got), SortRoots(want))
		}
		used[best] = true
	}
}

// RequireLeftHalfPlane fails t if any pole has a non-negative real part.
func RequireLeftHalfPlane(t *testing.T, poles []complex128) {
	t.Helper()
	for i, p := range poles {
		if !(real(p) < 0) {
			t.Fatalf("pole %d: %v is not in the open left half plane", i, p)
		}
	}
}

// RequireConjugateSymmetric fails t unless roots form a multiset closed under
// conjugation within eps.
func RequireConjugateSymmetric(t *testing.T, roots []complex128, eps float64) {
	t.Helper()
	conj := make([]complex128, len(roots))
	for i, r := range roots {
		conj[i] = cmplx.Conj(r)
	}
	RequireRootsNearlyEqual(t, roots, conj, eps)
}
