package keygen

import (
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
)

// KeyPair holds a private scalar and the public point derived from it.
type KeyPair struct {
	// Private is the secret scalar d in [1, n-1].
	Private uint256.Int

	// Public is d·G.
	Public curves.ECPoint
}

// PublicCoordinates returns the affine coordinates of the public key.
func (kp *KeyPair) PublicCoordinates() (x, y *uint256.Int) {
	return kp.Public.Coordinates()
}
