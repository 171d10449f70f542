// Package ellipticmath provides the Jacobi elliptic functions and complete
// elliptic integrals used by the Cauer (elliptic) prototype generator.
package ellipticmath

import (
	"math"
	"math/cmplx"
)

const (
	// Tol is the default Landen convergence threshold.
	Tol = 2.2e-16

	kmin         = 1e-6
	arcSNMaxIter = 10
	nomeTerms    = 7
	imagCheck    = 1e-7
)

// Landen computes the Landen sequence of descending moduli for k.
// If tol < 1 it is interpreted as a convergence threshold; otherwise
// it is interpreted as a fixed iteration count.
func Landen(k, tol float64) []float64 {
	var v []float64
	if k == 0 || k == 1.0 {
		return []float64{k}
	}
	if tol < 1 {
		for k > tol {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	} else {
		M := int(tol)
		for i := 1; i <= M; i++ {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	}

	return v
}

// LandenK computes K(k) from a precomputed Landen sequence using
// K(k) = (pi/2) * product(1 + v[i]).
func LandenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1.0 + x
	}
	return prod * math.Pi * 0.5
}

// EllipK computes the complete elliptic integral K(k) and K'(k).
func EllipK(k, tol float64) (float64, float64) {
	return EllipKReuse(k, tol, nil)
}

// EllipKReuse is like EllipK but accepts an optional precomputed Landen
// sequence for the K(k) half.
func EllipKReuse(k, tol float64, vk []float64) (float64, float64) {
	kmax := math.Sqrt(1 - kmin*kmin)

	var K, Kp float64
	switch {
	case k == 1.0:
		K = math.Inf(1)
	case k > kmax:
		kp := math.Sqrt((1 - k) * (1 + k))
		L := -math.Log(kp / 4.0)
		K = L + (L-1)*kp*kp/4.0
	default:
		if vk == nil {
			vk = Landen(k, tol)
		}
		K = LandenK(vk)
	}

	switch {
	case k == 0.0:
		Kp = math.Inf(1)
	case k < kmin:
		L := -math.Log(k / 4.0)
		Kp = L + (L-1.0)*k*k/4.0
	default:
		kp := math.Sqrt((1 - k) * (1 + k))
		Kp = LandenK(Landen(kp, tol))
	}

	return K, Kp
}

// CDE computes the cd Jacobi elliptic function at u*K.
func CDE(u complex128, k, tol float64) complex128 {
	v := Landen(k, tol)
	w := cmplx.Cos(u * math.Pi * 0.5)
	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + complex(v[i], 0)) * w / (1.0 + complex(v[i], 0)*w*w)
	}

	return w
}

// SNE computes the sn Jacobi elliptic function at u[i]*K for a vector of
// real arguments.
func SNE(u []float64, k, tol float64) []float64 {
	v := Landen(k, tol)
	w := make([]float64, len(u))
	for i := range u {
		w[i] = math.Sin(u[i] * math.Pi * 0.5)
	}
	for i := len(v) - 1; i >= 0; i-- {
		for j := range w {
			w[j] = ((1 + v[i]) * w[j]) / (1 + v[i]*w[j]*w[j])
		}
	}

	return w
}

// SnCnDn returns sn(u,k), cn(u,k) and dn(u,k) for a real, non-normalized
// argument u. ok is false when k is outside [0,1) or the result is not finite.
func SnCnDn(u, k, tol float64) (sn, cn, dn float64, ok bool) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, false
	}

	K, _ := EllipK(k, tol)
	if K == 0 || math.IsNaN(K) || math.IsInf(K, 0) {
		return 0, 0, 0, false
	}

	uNorm := u / K

	sn = SNE([]float64{uNorm}, k, tol)[0]
	if math.IsNaN(sn) || math.IsInf(sn, 0) {
		return 0, 0, 0, false
	}

	dn2 := 1.0 - k*k*sn*sn
	if dn2 < -1e-12 {
		return 0, 0, 0, false
	}
	if dn2 < 0 {
		dn2 = 0
	}

	dn = math.Sqrt(dn2)
	cd := real(CDE(complex(uNorm, 0), k, tol))
	cn = cd * dn

	return sn, cn, dn, true
}

// ArcSN computes the inverse sn function for parameter m = k^2, returning the
// non-normalized argument.
func ArcSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return complex(math.NaN(), math.NaN())
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	ks := []complex128{k}
	for range arcSNMaxIter - 1 {
		kn := ks[len(ks)-1]
		if cmplx.Abs(kn) == 0 {
			break
		}

		kp := complement(kn)
		ks = append(ks, (1.0-kp)/(1.0+kp))
	}

	K := 1.0
	for i := 1; i < len(ks); i++ {
		K *= real(1.0 + ks[i])
	}
	K *= math.Pi * 0.5

	wn := w
	for i := range len(ks) - 1 {
		den := (1.0 + ks[i+1]) * (1.0 + complement(ks[i]*wn))
		if den == 0 {
			return complex(math.NaN(), math.NaN())
		}

		wn = 2.0 * wn / den
	}

	return complex(K, 0) * (2.0 / math.Pi) * cmplx.Asin(wn)
}

// ArcSC1 solves sc(u, sqrt(1-m)) = w for real u, the step that places the
// elliptic prototype poles off the imaginary axis. It returns NaN when the
// inverse is not purely imaginary.
func ArcSC1(w, m float64) float64 {
	z := ArcSN(complex(0, w), m)
	if math.Abs(real(z)) > imagCheck*math.Max(1.0, math.Abs(imag(z))) {
		return math.NaN()
	}

	return imag(z)
}

// DegreeParam solves the elliptic degree equation n*K'(m)/K(m) = K'(m1)/K(m1)
// for the parameter m = k^2 using the nome series.
func DegreeParam(n int, m1, tol float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	K1, _ := EllipK(math.Sqrt(m1), tol)
	K1p, _ := EllipK(math.Sqrt(1.0-m1), tol)
	if K1 <= 0 || K1p <= 0 || math.IsNaN(K1) || math.IsNaN(K1p) || math.IsInf(K1, 0) || math.IsInf(K1p, 0) {
		return math.NaN()
	}

	q1 := math.Exp(-math.Pi * K1p / K1)
	q := math.Pow(q1, 1.0/float64(n))

	num := 0.0
	for i := range nomeTerms {
		num += math.Pow(q, float64(i*(i+1)))
	}

	den := 1.0
	for i := 1; i < nomeTerms; i++ {
		den += 2.0 * math.Pow(q, float64(i*i))
	}

	return 16.0 * q * math.Pow(num/den, 4.0)
}

// DegreeRatio returns K(k)K'(k1) / (K'(k)K(k1)), the real-valued order an
// elliptic filter with selectivity k and discrimination k1 requires.
func DegreeRatio(k, k1, tol float64) float64 {
	K, Kp := EllipK(k, tol)
	K1, K1p := EllipK(k1, tol)
	return (K * K1p) / (Kp * K1)
}

func complement(k complex128) complex128 {
	return cmplx.Sqrt((1.0 - k) * (1.0 + k))
}
