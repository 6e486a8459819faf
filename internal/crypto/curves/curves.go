// Package curves implements affine short-Weierstrass curves y² = x³ + ax + b
// over a 256-bit prime field, with secp256k1 as the built-in instance.
//
// Points only become ECPoints through Validate or the group law, so an
// ECPoint is always either the point at infinity or a point that satisfied
// the curve equation of the curve that produced it. None of the operations
// run in constant time.
package curves

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/math/modular"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Params holds the literal parameters of a curve. A and B may be given
// unreduced; New reduces them modulo P.
type Params struct {
	Name   string
	P      *uint256.Int // field prime
	A, B   *uint256.Int // equation coefficients
	Gx, Gy *uint256.Int // base point
	N      *uint256.Int // order of the base point
	H      uint64       // cofactor
}

// Curve is an immutable curve instance. It is safe for concurrent use.
type Curve struct {
	name string
	p    uint256.Int
	a, b uint256.Int
	n    uint256.Int
	h    uint64
	g    ECPoint

	fp *modular.Field
	fn *modular.Field
}

// New builds a curve from params. It fails with ErrInvalidCurve when a
// parameter is missing or zero, when the curve is singular, or when the base
// point does not lie on the curve.
func New(params Params) (*Curve, error) {
	for _, f := range []struct {
		name string
		v    *uint256.Int
	}{
		{"p", params.P}, {"a", params.A}, {"b", params.B},
		{"gx", params.Gx}, {"gy", params.Gy}, {"n", params.N},
	} {
		if f.v == nil {
			return nil, invalidCurve("parameter %s is missing", f.name)
		}
	}
	if params.P.IsZero() {
		return nil, invalidCurve("field prime is zero")
	}
	if params.N.IsZero() {
		return nil, invalidCurve("group order is zero")
	}

	fp, err := modular.NewField(params.P)
	if err != nil {
		return nil, err
	}
	fn, err := modular.NewField(params.N)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		name: params.Name,
		p:    *params.P,
		a:    *fp.Reduce(params.A),
		b:    *fp.Reduce(params.B),
		n:    *params.N,
		h:    params.H,
		fp:   fp,
		fn:   fn,
	}

	// 4a³ + 27b² must not vanish.
	disc := fp.Add(
		fp.Mul(uint256.NewInt(4), fp.Mul(fp.Square(&c.a), &c.a)),
		fp.Mul(uint256.NewInt(27), fp.Square(&c.b)))
	if disc.IsZero() {
		return nil, invalidCurve("curve %q is singular", c.name)
	}

	g, err := c.Validate(Finite(params.Gx, params.Gy))
	if err != nil {
		return nil, invalidCurve("base point of curve %q: %v", c.name, err)
	}
	c.g = g

	return c, nil
}

func invalidCurve(format string, args ...interface{}) error {
	return ecmath.NewError(ecmath.ErrInvalidCurve, fmt.Sprintf(format, args...))
}

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve
)

// Secp256k1Params returns the parameters of secp256k1 as defined in SEC 2.
func Secp256k1Params() Params {
	return Params{
		Name: "secp256k1",
		P:    mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		A:    new(uint256.Int),
		B:    uint256.NewInt(7),
		Gx:   mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:   mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		N:    mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		H:    1,
	}
}

// Secp256k1 returns the shared secp256k1 curve.
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		c, err := New(Secp256k1Params())
		if err != nil {
			panic(err)
		}
		secp256k1Curve = c
	})
	return secp256k1Curve
}

func mustHex(s string) *uint256.Int {
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source: " + s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		panic("hex value wider than 256 bits: " + s)
	}
	return v
}

// Name returns the curve name.
func (c *Curve) Name() string { return c.name }

// P returns the field prime.
func (c *Curve) P() *uint256.Int { return c.p.Clone() }

// A returns the reduced coefficient a.
func (c *Curve) A() *uint256.Int { return c.a.Clone() }

// B returns the reduced coefficient b.
func (c *Curve) B() *uint256.Int { return c.b.Clone() }

// N returns the order of the base point.
func (c *Curve) N() *uint256.Int { return c.n.Clone() }

// H returns the cofactor.
func (c *Curve) H() uint64 { return c.h }

// G returns the base point.
func (c *Curve) G() ECPoint { return c.g }

// BitSize returns the bit length of the group order.
func (c *Curve) BitSize() int { return c.n.BitLen() }

// Field returns arithmetic modulo the field prime.
func (c *Curve) Field() *modular.Field { return c.fp }

// ScalarField returns arithmetic modulo the group order.
func (c *Curve) ScalarField() *modular.Field { return c.fn }

// Params returns a copy of the curve parameters.
func (c *Curve) Params() Params {
	gx, gy := c.g.Coordinates()
	return Params{
		Name: c.name,
		P:    c.P(),
		A:    c.A(),
		B:    c.B(),
		Gx:   gx,
		Gy:   gy,
		N:    c.N(),
		H:    c.h,
	}
}

// NewScalar draws a uniformly random scalar in [1, n-1] from src.
func (c *Curve) NewScalar(src ecmath.RandomSource) (*uint256.Int, error) {
	return src.Uint256Range(uint256.NewInt(1), &c.n)
}

// IsScalar reports whether k lies in [1, n-1].
func (c *Curve) IsScalar(k *uint256.Int) bool {
	return !k.IsZero() && k.Lt(&c.n)
}
