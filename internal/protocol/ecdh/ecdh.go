// Package ecdh derives Diffie-Hellman shared secrets from a private scalar
// and a peer's public point.
package ecdh

import (
	"crypto/sha512"
	"io"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"golang.org/x/crypto/hkdf"
)

// SharedPoint returns d·peer. The peer point is validated against curve.
func SharedPoint(curve *curves.Curve, d *uint256.Int, peer curves.ECPoint) (curves.ECPoint, error) {
	if !curve.IsScalar(d) {
		return curves.Infinity(), ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"private key is outside [1, n-1]")
	}
	if peer.IsInfinity() {
		return curves.Infinity(), ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"peer public key is the point at infinity")
	}
	return curve.ScalarMult(d, peer)
}

// SharedSecret returns the x coordinate of d·peer as 32 big-endian bytes, as
// RFC 5903 section 9 specifies. The result should be passed through a key
// derivation function before use as a key; see DeriveKey.
func SharedSecret(curve *curves.Curve, d *uint256.Int, peer curves.ECPoint) ([]byte, error) {
	p, err := SharedPoint(curve, d, peer)
	if err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return nil, ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"shared point is the point at infinity")
	}
	x, _ := p.Coordinates()
	b := x.Bytes32()
	log.Tracef("derived shared secret with peer %s", peer)
	return b[:], nil
}

// DeriveKey expands the shared secret into size bytes of key material with
// HKDF-SHA512.
func DeriveKey(curve *curves.Curve, d *uint256.Int, peer curves.ECPoint, salt, info []byte, size int) ([]byte, error) {
	if size <= 0 || size > 255*sha512.Size {
		return nil, errors.Errorf("invalid key size %d", size)
	}
	secret, err := SharedSecret(curve, d, peer)
	if err != nil {
		return nil, err
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha512.New, secret, salt, info), key); err != nil {
		return nil, errors.Wrap(err, "expand shared secret")
	}
	return key, nil
}
