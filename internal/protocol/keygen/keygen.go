// Package keygen generates ECDSA key pairs. The private key is drawn uniformly
// from [1, n-1] and the public key is its multiple of the base point.
package keygen

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Generate draws a fresh key pair on curve from src.
func Generate(curve *curves.Curve, src ecmath.RandomSource) (*KeyPair, error) {
	d, err := curve.NewScalar(src)
	if err != nil {
		return nil, err
	}
	if !curve.IsScalar(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"random source returned a scalar outside [1, n-1]")
	}

	kp, err := derive(curve, d)
	if err != nil {
		return nil, err
	}
	log.Debugf("generated key pair with public key %s", kp.Public)
	return kp, nil
}

// FromPrivate rebuilds the key pair for the private scalar d. It fails with
// ErrInvalidPrivateKey when d is outside [1, n-1].
func FromPrivate(curve *curves.Curve, d *uint256.Int) (*KeyPair, error) {
	if !curve.IsScalar(d) {
		return nil, ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			fmt.Sprintf("private key %s is outside [1, n-1]", d.Hex()))
	}
	return derive(curve, d)
}

func derive(curve *curves.Curve, d *uint256.Int) (*KeyPair, error) {
	q, err := curve.ScalarBaseMult(d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: *d, Public: q}, nil
}

// Validate checks that the private scalar is in range and that the public key
// is its multiple of the base point on curve.
func (kp *KeyPair) Validate(curve *curves.Curve) error {
	if !curve.IsScalar(&kp.Private) {
		return ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"private key is outside [1, n-1]")
	}
	if kp.Public.IsInfinity() {
		return ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"public key is the point at infinity")
	}
	q, err := curve.ScalarBaseMult(&kp.Private)
	if err != nil {
		return err
	}
	if !q.Equal(kp.Public) {
		return ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"public key does not match the private key")
	}
	return nil
}
