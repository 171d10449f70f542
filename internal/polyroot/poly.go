package polyroot

// Poly is a real polynomial with coefficients in ascending power order:
// p[0] + p[1]*x + p[2]*x^2 + ...
type Poly []float64

// Degree returns the index of the highest non-zero coefficient, or -1 for the
// zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	copy(out, p)
	for i, v := range q {
		out[i] += v
	}
	return out
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1))
}

// Scale returns a*p.
func (p Poly) Scale(a float64) Poly {
	out := make(Poly, len(p))
	for i, v := range p {
		out[i] = a * v
	}
	return out
}

// Mul returns p*q.
func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}

	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out
}

// Integrate returns the antiderivative of p with zero constant term.
func (p Poly) Integrate() Poly {
	out := make(Poly, len(p)+1)
	for i, v := range p {
		out[i+1] = v / float64(i+1)
	}
	return out
}

// Compose returns p(q(x)).
func (p Poly) Compose(q Poly) Poly {
	out := Poly{}
	for i := len(p) - 1; i >= 0; i-- {
		out = out.Mul(q).Add(Poly{p[i]})
	}
	return out
}

// Eval evaluates p at x.
func (p Poly) Eval(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Descending returns the coefficients highest power first, trimmed to the
// polynomial degree, in the layout Roots expects.
func (p Poly) Descending() []float64 {
	d := p.Degree()
	if d < 0 {
		return nil
	}

	out := make([]float64, d+1)
	for i := 0; i <= d; i++ {
		out[d-i] = p[i]
	}
	return out
}

// Legendre returns the Legendre polynomial P_n using Bonnet's recursion
// (k+1) P_{k+1} = (2k+1) x P_k - k P_{k-1}.
func Legendre(n int) Poly {
	if n <= 0 {
		return Poly{1}
	}

	prev := Poly{1}
	cur := Poly{0, 1}
	for k := 1; k < n; k++ {
		next := Poly{0, 1}.Mul(cur).Scale(float64(2*k + 1)).Sub(prev.Scale(float64(k)))
		prev, cur = cur, next.Scale(1/float64(k+1))
	}
	return cur
}
