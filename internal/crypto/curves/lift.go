package curves

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// LiftX returns the point with x coordinate x whose y coordinate has the
// requested parity. The square root is taken as a^((p+1)/4), so only fields
// with p ≡ 3 (mod 4) are supported.
func (c *Curve) LiftX(x *uint256.Int, odd bool) (ECPoint, error) {
	if c.p[0]&3 != 3 {
		return ECPoint{}, ecmath.NewError(ecmath.ErrUnsupportedCurve,
			fmt.Sprintf("curve %q: square roots need p ≡ 3 (mod 4)", c.name))
	}
	if !x.Lt(&c.p) {
		return ECPoint{}, ecmath.PointError(ecmath.ErrPointNotOnCurve, x, new(uint256.Int))
	}

	f := c.fp
	rhs := f.Add(f.Mul(f.Square(x), x), f.Add(f.Mul(&c.a, x), &c.b))

	// (p+1)/4 without overflowing when p is close to 2^256.
	e := new(uint256.Int).Rsh(&c.p, 2)
	e.AddUint64(e, 1)
	y := f.Exp(rhs, e)
	if !f.Square(y).Eq(rhs) {
		return ECPoint{}, ecmath.PointError(ecmath.ErrPointNotOnCurve, x, y)
	}
	if (y[0]&1 == 1) != odd {
		y = f.Neg(y)
	}

	return c.Validate(Finite(x, y))
}
