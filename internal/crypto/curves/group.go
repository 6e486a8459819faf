package curves

import (
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Validate promotes a candidate to an ECPoint. The point at infinity is
// always valid. A finite candidate is valid when both coordinates are
// canonical field elements and y² ≡ x³ + ax + b (mod p); otherwise the error
// is ErrPointNotOnCurve carrying the coordinates.
func (c *Curve) Validate(cand Candidate) (ECPoint, error) {
	if !cand.finite {
		return ECPoint{}, nil
	}

	x, y := &cand.p.X, &cand.p.Y
	if !x.Lt(&c.p) || !y.Lt(&c.p) {
		return ECPoint{}, ecmath.PointError(ecmath.ErrPointNotOnCurve, x, y)
	}

	f := c.fp
	lhs := f.Square(y)
	rhs := f.Add(f.Mul(f.Square(x), x), f.Add(f.Mul(&c.a, x), &c.b))
	if !f.Sub(lhs, rhs).IsZero() {
		return ECPoint{}, ecmath.PointError(ecmath.ErrPointNotOnCurve, x, y)
	}

	return ECPoint{p: cand.p, finite: true}, nil
}

// IsOnCurve reports whether cand validates against c.
func (c *Curve) IsOnCurve(cand Candidate) bool {
	_, err := c.Validate(cand)
	return err == nil
}

// Negate returns -p = (x, -y mod p). The input is validated first.
func (c *Curve) Negate(p ECPoint) (ECPoint, error) {
	p, err := c.Validate(p.Candidate())
	if err != nil || p.IsInfinity() {
		return p, err
	}

	x, y := &p.p.X, c.fp.Neg(&p.p.Y)
	neg, err := c.Validate(Finite(x, y))
	if err != nil {
		log.WithField("point", p.String()).Error("negated point is not on the curve")
		return ECPoint{}, ecmath.PointError(ecmath.ErrNegativePointNotOnCurve, x, y)
	}
	return neg, nil
}

// Add returns p1 + p2. Both operands are validated against c.
func (c *Curve) Add(p1, p2 ECPoint) (ECPoint, error) {
	p1, err := c.Validate(p1.Candidate())
	if err != nil {
		return ECPoint{}, err
	}
	p2, err = c.Validate(p2.Candidate())
	if err != nil {
		return ECPoint{}, err
	}

	switch {
	case p1.IsInfinity():
		return p2, nil
	case p2.IsInfinity():
		return p1, nil
	}

	f := c.fp
	x1, y1 := &p1.p.X, &p1.p.Y
	x2, y2 := &p2.p.X, &p2.p.Y

	// P + (-P). For valid points a shared x means y2 = ±y1, and a point with
	// y = 0 is its own negation.
	if x1.Eq(x2) && f.Add(y1, y2).IsZero() {
		return ECPoint{}, nil
	}

	var num, den *uint256.Int
	if x1.Eq(x2) {
		// Tangent: m = (3x1² + a) / 2y1.
		num = f.Add(f.Mul(uint256.NewInt(3), f.Square(x1)), &c.a)
		den = f.Add(y1, y1)
	} else {
		// Chord: m = (y1 - y2) / (x1 - x2).
		num = f.Sub(y1, y2)
		den = f.Sub(x1, x2)
	}
	inv, err := f.Inv(den)
	if err != nil {
		return ECPoint{}, err
	}
	m := f.Mul(num, inv)

	// (x3, y3) is the third intersection of the line with the curve, the
	// reflection of the sum.
	x3 := f.Sub(f.Sub(f.Square(m), x1), x2)
	y3 := f.Add(y1, f.Mul(m, f.Sub(x3, x1)))

	r, err := c.Validate(Finite(x3, y3))
	if err != nil {
		return ECPoint{}, err
	}
	return c.Negate(r)
}

// Double returns p + p.
func (c *Curve) Double(p ECPoint) (ECPoint, error) {
	return c.Add(p, p)
}

// AddCandidates validates both candidates and returns their sum.
func (c *Curve) AddCandidates(c1, c2 Candidate) (ECPoint, error) {
	p1, err := c.Validate(c1)
	if err != nil {
		return ECPoint{}, err
	}
	p2, err := c.Validate(c2)
	if err != nil {
		return ECPoint{}, err
	}
	return c.Add(p1, p2)
}

// ScalarMult returns k·p using least-significant-bit-first double-and-add.
// The point is validated first; k ≡ 0 (mod n) and the point at infinity
// both yield the point at infinity.
func (c *Curve) ScalarMult(k *uint256.Int, p ECPoint) (ECPoint, error) {
	p, err := c.Validate(p.Candidate())
	if err != nil {
		return ECPoint{}, err
	}
	if p.IsInfinity() || c.fn.Reduce(k).IsZero() {
		return ECPoint{}, nil
	}

	var result ECPoint
	addend := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if k[i/64]>>(uint(i)%64)&1 == 1 {
			if result, err = c.Add(result, addend); err != nil {
				return ECPoint{}, err
			}
		}
		if i+1 < n {
			if addend, err = c.Double(addend); err != nil {
				return ECPoint{}, err
			}
		}
	}

	return c.Validate(result.Candidate())
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *uint256.Int) (ECPoint, error) {
	return c.ScalarMult(k, c.g)
}
