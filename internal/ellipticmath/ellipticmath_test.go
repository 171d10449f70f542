package ellipticmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(a), math.Abs(b))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func TestLanden_Convergence(t *testing.T) {
	v := Landen(0.5, 1e-15)
	if len(v) == 0 {
		t.Fatal("Landen returned empty sequence")
	}

	last := v[len(v)-1]
	if last > 1e-15 {
		t.Fatalf("Landen did not converge: last value = %e", last)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("Landen not monotonically decreasing at index %d: %e >= %e", i, v[i], v[i-1])
		}
	}
}

func TestLanden_Limits(t *testing.T) {
	v0 := Landen(0, 1e-15)
	if len(v0) != 1 || v0[0] != 0 {
		t.Fatalf("Landen(0) = %v, expected [0]", v0)
	}

	v1 := Landen(1, 1e-15)
	if len(v1) != 1 || v1[0] != 1 {
		t.Fatalf("Landen(1) = %v, expected [1]", v1)
	}
}

func TestLanden_FixedIterations(t *testing.T) {
	const iter = 6

	v := Landen(0.5, iter)
	if len(v) != iter {
		t.Fatalf("Landen fixed-iteration length = %d, want %d", len(v), iter)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("fixed-iteration Landen not monotonically decreasing at index %d", i)
		}
	}
}

func TestLandenK_MatchesEllipK(t *testing.T) {
	k := 0.6
	v := Landen(k, 1e-15)
	got := LandenK(v)

	want, _ := EllipK(k, 1e-15)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("LandenK mismatch: got=%g want=%g", got, want)
	}
}

func TestEllipK_KnownValues(t *testing.T) {
	K, Kp := EllipK(0, 1e-15)
	if !almostEqual(K, math.Pi/2, 1e-10) {
		t.Fatalf("K(0) = %v, expected pi/2 = %v", K, math.Pi/2)
	}

	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, expected +Inf", Kp)
	}

	K1, _ := EllipK(1, 1e-15)
	if !math.IsInf(K1, 1) {
		t.Fatalf("K(1) = %v, expected +Inf", K1)
	}
}

func TestEllipK_SymmetryRelation(t *testing.T) {
	k := 0.6
	kp := math.Sqrt(1 - k*k)
	K, Kprime := EllipK(k, 1e-15)
	Kkp, Kpkp := EllipK(kp, 1e-15)
	ratio1 := K / Kprime

	ratio2 := Kpkp / Kkp
	if !almostEqual(ratio1, ratio2, 1e-8) {
		t.Fatalf("symmetry: K/K' = %v, K'(k')/K(k') = %v", ratio1, ratio2)
	}
}

func TestEllipKReuse_MatchesEllipK(t *testing.T) {
	k := 0.7
	v := Landen(k, 1e-15)
	K1, Kp1 := EllipK(k, 1e-15)

	K2, Kp2 := EllipKReuse(k, 1e-15, v)
	if !almostEqual(K1, K2, 1e-12) || !almostEqual(Kp1, Kp2, 1e-12) {
		t.Fatalf("EllipKReuse mismatch: direct=(%g,%g) reuse=(%g,%g)", K1, Kp1, K2, Kp2)
	}
}

func TestCDE_RealInputRange(t *testing.T) {
	k := 0.5

	for _, uVal := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		u := complex(uVal, 0)

		cd := CDE(u, k, 1e-15)
		if math.Abs(imag(cd)) > 1e-10 {
			t.Fatalf("CDE(%v, %v): imaginary part = %v, expected ~0", uVal, k, imag(cd))
		}

		cdReal := real(cd)
		if cdReal < -0.01 || cdReal > 1.01 {
			t.Fatalf("CDE(%v, %v) = %v, outside expected range [0,1]", uVal, k, cdReal)
		}
	}
}

func TestCDE_Endpoints(t *testing.T) {
	k := 0.7

	cd0 := CDE(0, k, 1e-15)
	if !almostEqual(real(cd0), 1.0, 1e-10) {
		t.Fatalf("CDE(0, %v) = %v, expected 1", k, cd0)
	}

	cd1 := CDE(1, k, 1e-15)
	if !almostEqual(real(cd1), 0.0, 1e-10) {
		t.Fatalf("CDE(1, %v) = %v, expected 0", k, cd1)
	}
}

func TestSNE_Endpoints(t *testing.T) {
	k := 0.5

	s0 := SNE([]float64{0}, k, 1e-15)
	if !almostEqual(s0[0], 0.0, 1e-10) {
		t.Fatalf("SNE(0) = %v, expected 0", s0[0])
	}

	s1 := SNE([]float64{1}, k, 1e-15)
	if !almostEqual(s1[0], 1.0, 1e-10) {
		t.Fatalf("SNE(1) = %v, expected 1", s1[0])
	}
}

func TestSnCnDn_PythagoreanIdentities(t *testing.T) {
	for _, k := range []float64{0, 0.3, 0.7, 0.95} {
		K, _ := EllipK(k, Tol)
		for _, frac := range []float64{0.1, 0.4, 0.75} {
			sn, cn, dn, ok := SnCnDn(frac*K, k, Tol)
			if !ok {
				t.Fatalf("SnCnDn(%v*K, %v) failed", frac, k)
			}

			if !almostEqual(sn*sn+cn*cn, 1, 1e-9) {
				t.Fatalf("k=%v u=%v*K: sn^2+cn^2 = %v", k, frac, sn*sn+cn*cn)
			}

			if !almostEqual(dn*dn+k*k*sn*sn, 1, 1e-9) {
				t.Fatalf("k=%v u=%v*K: dn^2+k^2 sn^2 = %v", k, frac, dn*dn+k*k*sn*sn)
			}
		}
	}
}

func TestSnCnDn_RejectsInvalidModulus(t *testing.T) {
	for _, k := range []float64{-0.1, 1, 1.5, math.NaN()} {
		if _, _, _, ok := SnCnDn(0.5, k, Tol); ok {
			t.Fatalf("SnCnDn accepted modulus %v", k)
		}
	}
}

func TestArcSN_InvertsSN(t *testing.T) {
	k := 0.6
	K, _ := EllipK(k, Tol)
	for _, frac := range []float64{0.2, 0.5, 0.8} {
		sn := SNE([]float64{frac}, k, Tol)[0]

		u := ArcSN(complex(sn, 0), k*k)
		if !almostEqual(real(u), frac*K, 1e-8) {
			t.Fatalf("ArcSN(sn(%v*K)) = %v, want %v", frac, real(u), frac*K)
		}
	}
}

func TestArcSC1_Finite(t *testing.T) {
	r := ArcSC1(1/0.5088, 1e-4)
	if !(r > 0) || math.IsInf(r, 0) {
		t.Fatalf("ArcSC1 = %v, want finite positive", r)
	}
}

func TestDegreeParam_SolvesDegreeEquation(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		for _, m1 := range []float64{1e-6, 1e-3, 0.09} {
			m := DegreeParam(n, m1, Tol)
			if !(m > 0 && m < 1) {
				t.Fatalf("DegreeParam(%d, %g) = %v, want (0,1)", n, m1, m)
			}

			got := DegreeRatio(math.Sqrt(m), math.Sqrt(m1), Tol)
			if !almostEqual(got, float64(n), 1e-6) {
				t.Fatalf("n=%d m1=%g: DegreeRatio = %v, want %d", n, m1, got, n)
			}
		}
	}
}

func TestDegreeParam_InvalidInputs(t *testing.T) {
	if !math.IsNaN(DegreeParam(0, 0.1, Tol)) {
		t.Fatal("expected NaN for zero order")
	}

	if !math.IsNaN(DegreeParam(3, 1.2, Tol)) {
		t.Fatal("expected NaN for m1 outside (0,1)")
	}
}

func TestDegreeRatio_GrowsWithSelectivity(t *testing.T) {
	k1 := 0.01
	prev := 0.0
	for _, k := range []float64{0.2, 0.5, 0.8, 0.95} {
		got := DegreeRatio(k, k1, Tol)
		if got <= prev {
			t.Fatalf("DegreeRatio not increasing at k=%v: %v <= %v", k, got, prev)
		}
		prev = got
	}
}
