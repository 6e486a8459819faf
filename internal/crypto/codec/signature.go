package codec

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// compactSigMagicOffset is added to the recovery code in the first byte of
// a compact signature.
const compactSigMagicOffset = 27

// compactSigCompPubKey marks a compact signature made by a key that is
// serialized compressed.
const compactSigCompPubKey = 4

func toModN(v *uint256.Int) (secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	b := v.Bytes32()
	if overflow := s.SetBytes(&b); overflow != 0 {
		return s, ecmath.NewError(ecmath.ErrInvalidSignature,
			"signature component is not below the group order")
	}
	return s, nil
}

// SerializeSignature encodes sig in DER format. The encoding uses the low-S
// form, so s is replaced by n - s when it lies in the upper half of the
// order; both forms verify against the same key.
func SerializeSignature(sig *sign.Signature) ([]byte, error) {
	r, err := toModN(&sig.R)
	if err != nil {
		return nil, err
	}
	s, err := toModN(&sig.S)
	if err != nil {
		return nil, err
	}
	return ecdsa.NewSignature(&r, &s).Serialize(), nil
}

// ParseSignature decodes a DER signature. The result carries no recovery
// ID.
func ParseSignature(b []byte) (*sign.Signature, error) {
	parsed, err := ecdsa.ParseDERSignature(b)
	if err != nil {
		return nil, errors.Wrap(ecmath.Error{
			Err:         ecmath.ErrInvalidSignature,
			Description: err.Error(),
		}, "parse DER signature")
	}

	r, s := parsed.R(), parsed.S()
	rb, sb := r.Bytes(), s.Bytes()
	sig := &sign.Signature{}
	sig.R.SetBytes32(rb[:])
	sig.S.SetBytes32(sb[:])
	return sig, nil
}

// SerializeCompactSignature encodes sig as a recovery byte followed by r and
// s as 32-byte big-endian values. s is kept as produced.
func SerializeCompactSignature(sig *sign.Signature, compressed bool) []byte {
	b := make([]byte, CompactSignatureLen)
	b[0] = compactSigMagicOffset + sig.RecoveryID&3
	if compressed {
		b[0] += compactSigCompPubKey
	}
	r, s := sig.R.Bytes32(), sig.S.Bytes32()
	copy(b[1:33], r[:])
	copy(b[33:], s[:])
	return b
}

// ParseCompactSignature decodes a compact signature and reports whether it
// was made by a key serialized compressed.
func ParseCompactSignature(b []byte) (*sign.Signature, bool, error) {
	if len(b) != CompactSignatureLen {
		return nil, false, ecmath.NewError(ecmath.ErrInvalidSignature,
			"compact signature must be 65 bytes")
	}
	code := b[0] - compactSigMagicOffset
	if b[0] < compactSigMagicOffset || code > compactSigCompPubKey+3 {
		return nil, false, ecmath.NewError(ecmath.ErrInvalidSignature,
			"invalid compact signature recovery code")
	}

	sig := &sign.Signature{RecoveryID: code & 3}
	sig.R.SetBytes32(b[1:33])
	sig.S.SetBytes32(b[33:])
	return sig, code&compactSigCompPubKey != 0, nil
}
