package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// CurveConfig holds curve parameters as literals: "0x"-prefixed hex or
// decimal. The coefficients A and B may be negative and are reduced modulo
// P.
type CurveConfig struct {
	Name string `toml:"name" yaml:"name"`
	P    string `toml:"p" yaml:"p"`
	A    string `toml:"a" yaml:"a"`
	B    string `toml:"b" yaml:"b"`
	Gx   string `toml:"gx" yaml:"gx"`
	Gy   string `toml:"gy" yaml:"gy"`
	N    string `toml:"n" yaml:"n"`
	H    uint64 `toml:"h" yaml:"h"`
}

// Secp256k1 returns the literals of secp256k1.
func Secp256k1() CurveConfig {
	p := curves.Secp256k1Params()
	return CurveConfig{
		Name: p.Name,
		P:    p.P.Hex(),
		A:    p.A.Dec(),
		B:    p.B.Dec(),
		Gx:   p.Gx.Hex(),
		Gy:   p.Gy.Hex(),
		N:    p.N.Hex(),
		H:    p.H,
	}
}

// Params parses the literals.
func (cc *CurveConfig) Params() (curves.Params, error) {
	var params curves.Params
	params.Name = cc.Name
	params.H = cc.H

	pBig, err := parseLiteral("p", cc.P, false)
	if err != nil {
		return params, err
	}
	if params.P, err = toUint256("p", pBig); err != nil {
		return params, err
	}
	if pBig.Sign() == 0 {
		return params, invalidCurve("curve parameter p: zero field prime")
	}

	for _, f := range []struct {
		name     string
		lit      string
		dst      **uint256.Int
		negative bool
	}{
		{"a", cc.A, &params.A, true},
		{"b", cc.B, &params.B, true},
		{"gx", cc.Gx, &params.Gx, false},
		{"gy", cc.Gy, &params.Gy, false},
		{"n", cc.N, &params.N, false},
	} {
		v, err := parseLiteral(f.name, f.lit, f.negative)
		if err != nil {
			return params, err
		}
		if f.negative {
			v.Mod(v, pBig)
		}
		if *f.dst, err = toUint256(f.name, v); err != nil {
			return params, err
		}
	}
	return params, nil
}

// Build parses the literals and constructs the curve. Literals matching
// secp256k1 yield the shared secp256k1 instance.
func (cc *CurveConfig) Build() (*curves.Curve, error) {
	params, err := cc.Params()
	if err != nil {
		return nil, err
	}
	if sameParams(params, curves.Secp256k1Params()) {
		return curves.Secp256k1(), nil
	}
	c, err := curves.New(params)
	if err != nil {
		return nil, errors.Wrapf(err, "build curve %q", cc.Name)
	}
	return c, nil
}

func sameParams(a, b curves.Params) bool {
	return a.Name == b.Name && a.H == b.H &&
		a.P.Eq(b.P) && a.A.Eq(b.A) && a.B.Eq(b.B) &&
		a.Gx.Eq(b.Gx) && a.Gy.Eq(b.Gy) && a.N.Eq(b.N)
}

// ParseLiteral parses a non-negative "0x"-prefixed hex or decimal literal
// that fits in 256 bits.
func ParseLiteral(s string) (*uint256.Int, error) {
	v, err := parseBig(s, false)
	if err != nil {
		return nil, err
	}
	return fitUint256(v)
}

func parseLiteral(name, s string, allowNegative bool) (*big.Int, error) {
	v, err := parseBig(s, allowNegative)
	if err != nil {
		return nil, invalidCurve(fmt.Sprintf("curve parameter %s: %v", name, err))
	}
	return v, nil
}

func toUint256(name string, v *big.Int) (*uint256.Int, error) {
	u, err := fitUint256(v)
	if err != nil {
		return nil, invalidCurve(fmt.Sprintf("curve parameter %s: %v", name, err))
	}
	return u, nil
}

func parseBig(s string, allowNegative bool) (*big.Int, error) {
	lit := strings.TrimSpace(s)
	neg := strings.HasPrefix(lit, "-")
	if neg {
		if !allowNegative {
			return nil, errors.Errorf("negative value %q", s)
		}
		lit = lit[1:]
	}

	base := 10
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		base, lit = 16, lit[2:]
	}
	v, ok := new(big.Int).SetString(lit, base)
	if !ok || lit == "" || v.Sign() < 0 {
		return nil, errors.Errorf("malformed literal %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

func fitUint256(v *big.Int) (*uint256.Int, error) {
	u, overflow := uint256.FromBig(v)
	if overflow || v.Sign() < 0 {
		return nil, errors.Errorf("%s does not fit in 256 bits", v)
	}
	return u, nil
}

func invalidCurve(desc string) error {
	return ecmath.NewError(ecmath.ErrInvalidCurve, desc)
}
