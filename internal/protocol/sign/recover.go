package sign

import (
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// RecoverPublicKey returns the public key that produced sig over the digest
// scalar z, using the signature's recovery ID to select the nonce point:
//
//	Q = r⁻¹(sR - zG)
//
// It fails with ErrInvalidSignature when r or s is out of range or no valid
// key corresponds to the signature.
func RecoverPublicKey(curve *curves.Curve, z *uint256.Int, sig *Signature) (curves.ECPoint, error) {
	if !curve.IsScalar(&sig.R) || !curve.IsScalar(&sig.S) {
		return curves.Infinity(), ecmath.NewError(ecmath.ErrInvalidSignature,
			"signature component outside [1, n-1]")
	}

	x := sig.R.Clone()
	if sig.RecoveryID&RecoveryOverflow != 0 {
		var overflow bool
		x, overflow = new(uint256.Int).AddOverflow(&sig.R, curve.N())
		if overflow || !x.Lt(curve.P()) {
			return curves.Infinity(), ecmath.NewError(ecmath.ErrInvalidSignature,
				"recovery ID overflows the field")
		}
	}

	R, err := curve.LiftX(x, sig.RecoveryID&RecoveryOdd != 0)
	if err != nil {
		return curves.Infinity(), ecmath.Error{
			Err:         ecmath.ErrInvalidSignature,
			Description: "nonce point for r is not on the curve: " + err.Error(),
		}
	}

	fn := curve.ScalarField()
	rInv, err := fn.Inv(&sig.R)
	if err != nil {
		return curves.Infinity(), err
	}
	u1 := fn.Neg(fn.Mul(z, rInv))
	u2 := fn.Mul(&sig.S, rInv)

	p1, err := curve.ScalarBaseMult(u1)
	if err != nil {
		return curves.Infinity(), err
	}
	p2, err := curve.ScalarMult(u2, R)
	if err != nil {
		return curves.Infinity(), err
	}
	q, err := curve.Add(p1, p2)
	if err != nil {
		return curves.Infinity(), err
	}
	if q.IsInfinity() {
		return q, ecmath.NewError(ecmath.ErrInvalidSignature,
			"recovered public key is the point at infinity")
	}
	return q, nil
}
