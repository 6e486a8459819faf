// Package ecmath holds the public vocabulary shared by the arithmetic, curve
// and protocol packages: error kinds, the injectable randomness capability and
// the signature verification outcome.
//
// None of the operations built on these types run in constant time. Scalar
// multiplication branches on the bits of the scalar and the sampling loops
// are data dependent, so the library must not be used where timing side
// channels matter.
package ecmath

import "github.com/holiman/uint256"

// RandomSource supplies uniformly distributed 256-bit values.
// Production code backs it with a cryptographically secure reader; tests
// substitute deterministic sequences.
type RandomSource interface {
	// Uint256 returns a uniformly random 256-bit value.
	Uint256() (*uint256.Int, error)

	// Uint256Range returns a uniformly random value in [low, high).
	// It fails with ErrInvalidRange when high <= low.
	Uint256Range(low, high *uint256.Int) (*uint256.Int, error)
}

// Verification is the outcome of checking a signature. A signature that does
// not verify is an expected result, not an error.
type Verification int

const (
	// Failed means the signature does not match the message and key.
	Failed Verification = iota

	// Successful means the signature was produced by the key's owner over
	// the message.
	Successful
)

// String returns the verification outcome as a human-readable word.
func (v Verification) String() string {
	switch v {
	case Successful:
		return "Successful"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Ok reports whether the verification succeeded.
func (v Verification) Ok() bool {
	return v == Successful
}
