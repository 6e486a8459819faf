package schnorr

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of d such that Q = d * G.
type Proof struct {
	R curves.ECPoint // Commitment R = k * G
	S uint256.Int    // Response s = k + e * d
}

// Prove generates a Schnorr proof for the secret d, public key Q = d*G.
func Prove(curve *curves.Curve, src ecmath.RandomSource, d *uint256.Int, q curves.ECPoint) (*Proof, error) {
	if d == nil || q.IsInfinity() {
		return nil, errors.New("schnorr: inputs cannot be empty")
	}
	if !curve.IsScalar(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"schnorr: secret is outside [1, n-1]")
	}

	// 1. Generate random nonce k
	k, err := curve.NewScalar(src)
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R, err := curve.ScalarBaseMult(k)
	if err != nil {
		return nil, err
	}
	if R.IsInfinity() {
		return nil, errors.New("schnorr: nonce commitment is the point at infinity")
	}

	// 3. Compute challenge e = H(Q, R)
	e := challenge(curve, q, R)

	// 4. Compute s = k + e * d mod n
	fn := curve.ScalarField()
	s := fn.Add(k, fn.Mul(e, d))

	return &Proof{R: R, S: *s}, nil
}

// Verify checks the validity of the Schnorr proof for public key Q.
func (p *Proof) Verify(curve *curves.Curve, q curves.ECPoint) bool {
	if p == nil || p.R.IsInfinity() || q.IsInfinity() {
		return false
	}

	// Check if s is in [0, n-1]
	if !p.S.Lt(curve.N()) {
		return false
	}

	e := challenge(curve, q, p.R)

	// s*G = R + e*Q
	lhs, err := curve.ScalarBaseMult(&p.S)
	if err != nil {
		return false
	}
	eQ, err := curve.ScalarMult(e, q)
	if err != nil {
		return false
	}
	rhs, err := curve.Add(p.R, eQ)
	if err != nil {
		return false
	}

	return lhs.Equal(rhs)
}

// challenge computes H(x(Q) || y(Q) || x(R) || y(R)) mod n with each
// coordinate as 32 big-endian bytes.
func challenge(curve *curves.Curve, q, r curves.ECPoint) *uint256.Int {
	buf := make([]byte, 0, 128)
	for _, p := range []curves.ECPoint{q, r} {
		x, y := p.Coordinates()
		xb, yb := x.Bytes32(), y.Bytes32()
		buf = append(buf, xb[:]...)
		buf = append(buf, yb[:]...)
	}

	e := digest.Message(curve, buf)
	return curve.ScalarField().Reduce(e)
}
