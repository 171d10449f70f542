package zpk

import (
	"math"
	"math/cmplx"
	"sort"
)

// realRootTol is the largest imaginary part treated as a real root when
// factoring into sections.
const realRootTol = 1e-9

// Selectivity returns the quality factor |r| / (2|Re r|) of a root. Real
// roots give 0.5; roots on the imaginary axis give +Inf.
func Selectivity(r complex128) float64 {
	re := math.Abs(real(r))
	if re == 0 {
		return math.Inf(1)
	}
	return cmplx.Abs(r) / (2 * re)
}

// PoleFrequency returns the natural frequency |r| of a root in rad/s.
func PoleFrequency(r complex128) float64 {
	return cmplx.Abs(r)
}

// MaxSelectivity returns the largest pole selectivity of h, or 0 when h has
// no poles.
func (h ZPK) MaxSelectivity() float64 {
	q := 0.0
	for _, p := range h.Poles {
		q = math.Max(q, Selectivity(p))
	}
	return q
}

// Section is a first- or second-order factor of a transfer function.
type Section struct {
	Roots []complex128

	// W0 is the natural frequency in rad/s.
	W0 float64

	// Q is the quality factor of the factor; first-order factors report 0.5.
	Q float64
}

// Order is the number of roots in the section.
func (s Section) Order() int {
	return len(s.Roots)
}

// Coefficients returns (c1, c0) of the monic factor s^2 + c1*s + c0 for a
// second-order section, or s + c0 (c1 = 1) for a first-order one.
func (s Section) Coefficients() (float64, float64) {
	switch len(s.Roots) {
	case 0:
		return 0, 1
	case 1:
		return 1, -real(s.Roots[0])
	default:
		r1, r2 := s.Roots[0], s.Roots[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}

// PoleSections factors the poles of h into conjugate pairs and single real
// roots, ordered from the highest to the lowest selectivity.
func (h ZPK) PoleSections() []Section {
	return sections(h.Poles)
}

// ZeroSections factors the zeros of h in the same way as PoleSections.
func (h ZPK) ZeroSections() []Section {
	return sections(h.Zeros)
}

func sections(roots []complex128) []Section {
	groups := groupRoots(roots)
	out := make([]Section, 0, len(groups))
	for _, g := range groups {
		s := Section{Roots: g, W0: PoleFrequency(g[0])}
		if len(g) == 1 {
			s.Q = 0.5
		} else {
			s.Q = Selectivity(g[0])
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q > out[j].Q
		}
		return out[i].W0 < out[j].W0
	})

	return out
}

// groupRoots pairs each complex root with its nearest conjugate. Real roots
// and unmatched complex roots stay single.
func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}
		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)

	for i, r := range sorted {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= realRootTol {
			groups = append(groups, []complex128{complex(real(r), 0)})
			continue
		}

		target := cmplx.Conj(r)
		best := -1
		bestDist := math.MaxFloat64
		for j, rr := range sorted {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(rr - target); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best != -1 && bestDist <= 1e-6*math.Max(1, cmplx.Abs(r)) {
			used[best] = true
			groups = append(groups, []complex128{r, sorted[best]})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	return groups
}
