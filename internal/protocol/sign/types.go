package sign

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
)

// Recovery ID bits.
const (
	// RecoveryOdd is set when the y coordinate of the nonce point is odd.
	RecoveryOdd byte = 1 << iota

	// RecoveryOverflow is set when the x coordinate of the nonce point was
	// not below the group order, so r = x - n.
	RecoveryOverflow
)

// Signature is an ECDSA signature. Produced signatures never have r or s
// equal to zero.
type Signature struct {
	R, S uint256.Int

	// RecoveryID identifies the nonce point among the candidates sharing
	// r, allowing the public key to be recovered. Zero for parsed
	// signatures that carry no recovery information.
	RecoveryID byte
}

// Equal reports whether both signatures have the same r and s.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.R.Eq(&other.R) && sig.S.Eq(&other.S)
}

// String formats the signature as (r, s) in decimal.
func (sig *Signature) String() string {
	return fmt.Sprintf("(%s, %s)", sig.R.Dec(), sig.S.Dec())
}

// BatchItem is a single entry of a batch verification.
type BatchItem struct {
	PublicKey curves.ECPoint
	Message   []byte
	Signature *Signature
}
