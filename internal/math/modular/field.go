package modular

import (
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/math/wide"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Field performs arithmetic modulo a fixed non-zero modulus. All results are
// reduced into [0, modulus).
type Field struct {
	m uint256.Int
}

// NewField returns a Field for modulus m. It fails with ErrZeroModulo when m
// is zero.
func NewField(m *uint256.Int) (*Field, error) {
	if m.IsZero() {
		return nil, ecmath.NewError(ecmath.ErrZeroModulo, "field modulus is zero")
	}
	return &Field{m: *m}, nil
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *uint256.Int {
	return f.m.Clone()
}

// Reduce returns x mod m.
func (f *Field) Reduce(x *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mod(x, &f.m)
}

// Add returns (x + y) mod m.
func (f *Field) Add(x, y *uint256.Int) *uint256.Int {
	sum, _ := wide.FromU256(x).Add(wide.FromU256(y))
	return sum.Mod(&f.m)
}

// Neg returns -x mod m.
func (f *Field) Neg(x *uint256.Int) *uint256.Int {
	return additiveInverse(x, &f.m)
}

// Sub returns (x - y) mod m.
func (f *Field) Sub(x, y *uint256.Int) *uint256.Int {
	return f.Add(x, f.Neg(y))
}

// Mul returns (x * y) mod m.
func (f *Field) Mul(x, y *uint256.Int) *uint256.Int {
	return wide.Mul(x, y).Mod(&f.m)
}

// Square returns x² mod m.
func (f *Field) Square(x *uint256.Int) *uint256.Int {
	return f.Mul(x, x)
}

// Inv returns x⁻¹ mod m.
func (f *Field) Inv(x *uint256.Int) (*uint256.Int, error) {
	return MultiplicativeInverse(x, &f.m)
}

// Exp returns x^e mod m.
func (f *Field) Exp(x, e *uint256.Int) *uint256.Int {
	result := f.Reduce(uint256.NewInt(1))
	base := f.Reduce(x)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = f.Square(result)
		if e[i/64]>>(uint(i)%64)&1 == 1 {
			result = f.Mul(result, base)
		}
	}
	return result
}
