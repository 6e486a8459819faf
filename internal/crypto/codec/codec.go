// Package codec converts keys and signatures to and from their standard
// secp256k1 wire encodings: SEC1 public keys, DER and compact signatures and
// 32-byte private keys. Encoding is delegated to the decred secp256k1
// package; every decoded point is validated again by the curve it is used on.
package codec

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// Lengths of the fixed-size encodings.
const (
	PrivateKeyLen          = secp256k1.PrivKeyBytesLen
	CompressedPublicKeyLen = secp256k1.PubKeyBytesLenCompressed
	UncompressedPubKeyLen  = secp256k1.PubKeyBytesLenUncompressed
	CompactSignatureLen    = 65
)

// checkCurve fails unless curve has the secp256k1 parameters.
func checkCurve(curve *curves.Curve) error {
	want := curves.Secp256k1()
	if curve == want {
		return nil
	}
	gx, gy := curve.G().Coordinates()
	wx, wy := want.G().Coordinates()
	if curve.P().Eq(want.P()) && curve.N().Eq(want.N()) &&
		curve.A().Eq(want.A()) && curve.B().Eq(want.B()) &&
		gx.Eq(wx) && gy.Eq(wy) {
		return nil
	}
	return ecmath.NewError(ecmath.ErrUnsupportedCurve,
		"encoding is only defined for secp256k1, got "+curve.Name())
}

// SerializePublicKey encodes p in SEC1 format, 33 bytes when compressed and
// 65 bytes otherwise.
func SerializePublicKey(curve *curves.Curve, p curves.ECPoint, compressed bool) ([]byte, error) {
	if err := checkCurve(curve); err != nil {
		return nil, err
	}
	p, err := curve.Validate(p.Candidate())
	if err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return nil, ecmath.NewError(ecmath.ErrInvalidPublicKey,
			"the point at infinity has no SEC1 encoding")
	}

	x, y := p.Coordinates()
	xb, yb := x.Bytes32(), y.Bytes32()
	var fx, fy secp256k1.FieldVal
	fx.SetBytes(&xb)
	fy.SetBytes(&yb)
	pub := secp256k1.NewPublicKey(&fx, &fy)
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

// ParsePublicKey decodes a compressed or uncompressed SEC1 public key.
func ParsePublicKey(curve *curves.Curve, b []byte) (curves.ECPoint, error) {
	if err := checkCurve(curve); err != nil {
		return curves.Infinity(), err
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return curves.Infinity(), errors.Wrap(ecmath.Error{
			Err:         ecmath.ErrInvalidPublicKey,
			Description: err.Error(),
		}, "parse public key")
	}

	x, _ := uint256.FromBig(pub.X())
	y, _ := uint256.FromBig(pub.Y())
	return curve.Validate(curves.Finite(x, y))
}

// SerializePrivateKey encodes d as 32 big-endian bytes.
func SerializePrivateKey(d *uint256.Int) []byte {
	b := d.Bytes32()
	return b[:]
}

// ParsePrivateKey decodes a 32-byte big-endian private key and derives its
// key pair.
func ParsePrivateKey(curve *curves.Curve, b []byte) (*keygen.KeyPair, error) {
	if len(b) != PrivateKeyLen {
		return nil, ecmath.NewError(ecmath.ErrInvalidPrivateKey,
			"private key must be 32 bytes")
	}
	return keygen.FromPrivate(curve, new(uint256.Int).SetBytes32(b))
}
