// Package modular implements additive and multiplicative inverses and the
// basic field operations over a 256-bit modulus. Products and sums are formed
// in 512 bits before reduction so no intermediate silently wraps.
package modular

import (
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/math/wide"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// AdditiveInverse returns the x in [0, p) such that (x + k) mod p == 0.
// A zero k yields zero for any modulus.
func AdditiveInverse(k, p *uint256.Int) (*uint256.Int, error) {
	if k.IsZero() {
		return new(uint256.Int), nil
	}
	if p.IsZero() {
		return nil, ecmath.NewError(ecmath.ErrZeroModulo,
			"additive inverse requested modulo zero")
	}
	return additiveInverse(k, p), nil
}

// additiveInverse requires p != 0.
func additiveInverse(k, p *uint256.Int) *uint256.Int {
	r := new(uint256.Int).Mod(k, p)
	if r.IsZero() {
		return r
	}
	return r.Sub(p, r)
}

// MultiplicativeInverse returns the x such that (x * k) mod p == 1, computed
// with the extended Euclidean algorithm.
func MultiplicativeInverse(k, p *uint256.Int) (*uint256.Int, error) {
	if k.IsZero() {
		return nil, ecmath.NewError(ecmath.ErrZeroDivision,
			"multiplicative inverse of zero requested")
	}
	if p.IsZero() {
		return nil, ecmath.NewError(ecmath.ErrZeroModulo,
			"multiplicative inverse requested modulo zero")
	}

	// Invariant: old_r ≡ old_s·k and r ≡ s·k (mod p). Every value is kept
	// in [0, p), and old_r - q·r is formed as old_r + (-(q·r mod p)).
	s, oldS := new(uint256.Int), uint256.NewInt(1)
	r, oldR := p.Clone(), k.Clone()
	for !r.IsZero() {
		q := new(uint256.Int).Div(oldR, r)
		oldR, r = r, subMul(oldR, q, r, p)
		oldS, s = s, subMul(oldS, q, s, p)
	}

	// oldR is the gcd.
	if !oldR.Eq(uint256.NewInt(1)) {
		return nil, ecmath.InverseError(k, p)
	}
	return oldS.Mod(oldS, p), nil
}

// subMul returns (a - q·b) mod p.
func subMul(a, q, b, p *uint256.Int) *uint256.Int {
	qb := wide.Mul(q, b).Mod(p)
	sum, _ := wide.FromU256(a).Add(wide.FromU256(additiveInverse(qb, p)))
	return sum.Mod(p)
}
