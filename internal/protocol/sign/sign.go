// Package sign implements ECDSA signing, verification and public key
// recovery on top of the affine group law.
//
// The nonce is drawn from the injected random source for every attempt. A
// nonce that yields the point at infinity, r = 0 or s = 0 is discarded and a
// new one drawn. A source that keeps producing unusable nonces makes signing
// fail with ErrSamplingExhausted after MaxAttempts draws.
package sign

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// MaxAttempts bounds the number of nonces drawn for one signature.
const MaxAttempts = 64

// Sign signs the SHA-512 digest of msg with the private scalar d.
func Sign(curve *curves.Curve, src ecmath.RandomSource, d *uint256.Int, msg []byte) (*Signature, error) {
	return SignWith(digest.Default(), curve, src, d, msg)
}

// SignWith signs msg hashed with dg.
func SignWith(dg *digest.Digester, curve *curves.Curve, src ecmath.RandomSource, d *uint256.Int, msg []byte) (*Signature, error) {
	return SignDigest(curve, src, d, dg.Digest(curve, msg))
}

// SignDigest signs the digest scalar z with the private scalar d.
func SignDigest(curve *curves.Curve, src ecmath.RandomSource, d, z *uint256.Int) (*Signature, error) {
	if !curve.IsScalar(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"private key is outside [1, n-1]")
	}

	fn := curve.ScalarField()
	n := curve.N()

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		k, err := curve.NewScalar(src)
		if err != nil {
			return nil, err
		}

		R, err := curve.ScalarBaseMult(k)
		if err != nil {
			return nil, err
		}
		if R.IsInfinity() {
			log.Debugf("attempt %d: nonce point is at infinity, resampling", attempt)
			continue
		}

		x, y := R.Coordinates()
		r := fn.Reduce(x)
		if r.IsZero() {
			log.Debugf("attempt %d: r is zero, resampling", attempt)
			continue
		}

		kInv, err := fn.Inv(k)
		if err != nil {
			return nil, err
		}
		s := fn.Mul(kInv, fn.Add(z, fn.Mul(r, d)))
		if s.IsZero() {
			log.Debugf("attempt %d: s is zero, resampling", attempt)
			continue
		}

		var recID byte
		if y[0]&1 == 1 {
			recID |= RecoveryOdd
		}
		if !x.Lt(n) {
			recID |= RecoveryOverflow
		}

		return &Signature{R: *r, S: *s, RecoveryID: recID}, nil
	}

	return nil, ecmath.NewError(ecmath.ErrSamplingExhausted,
		fmt.Sprintf("no usable nonce after %d attempts", MaxAttempts))
}

// Verify checks sig over the SHA-512 digest of msg against the public key q.
func Verify(curve *curves.Curve, q curves.ECPoint, msg []byte, sig *Signature) (ecmath.Verification, error) {
	return VerifyWith(digest.Default(), curve, q, msg, sig)
}

// VerifyWith checks sig over msg hashed with dg.
func VerifyWith(dg *digest.Digester, curve *curves.Curve, q curves.ECPoint, msg []byte, sig *Signature) (ecmath.Verification, error) {
	return VerifyDigest(curve, q, dg.Digest(curve, msg), sig)
}

// VerifyDigest checks sig over the digest scalar z against the public key q.
// A signature with r or s outside [1, n-1] fails verification. The public
// key must not be the point at infinity.
func VerifyDigest(curve *curves.Curve, q curves.ECPoint, z *uint256.Int, sig *Signature) (ecmath.Verification, error) {
	if q.IsInfinity() {
		return ecmath.Failed, ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"public key is the point at infinity")
	}
	if !curve.IsScalar(&sig.R) || !curve.IsScalar(&sig.S) {
		log.Debugf("signature %s has a component outside [1, n-1]", sig)
		return ecmath.Failed, nil
	}

	fn := curve.ScalarField()
	sInv, err := fn.Inv(&sig.S)
	if err != nil {
		return ecmath.Failed, err
	}
	u1 := fn.Mul(sInv, z)
	u2 := fn.Mul(sInv, &sig.R)

	p1, err := curve.ScalarBaseMult(u1)
	if err != nil {
		return ecmath.Failed, err
	}
	p2, err := curve.ScalarMult(u2, q)
	if err != nil {
		return ecmath.Failed, err
	}
	p, err := curve.Add(p1, p2)
	if err != nil {
		return ecmath.Failed, err
	}
	if p.IsInfinity() {
		return ecmath.Failed, nil
	}

	x, _ := p.Coordinates()
	if !fn.Reduce(x).Eq(&sig.R) {
		return ecmath.Failed, nil
	}
	return ecmath.Successful, nil
}
