package ecmath

import (
	"fmt"

	"github.com/holiman/uint256"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrZeroDivision is returned when a multiplicative inverse of zero is
	// requested.
	ErrZeroDivision = ErrorKind("ErrZeroDivision")

	// ErrZeroModulo is returned when an operation is asked to reduce modulo
	// zero.
	ErrZeroModulo = ErrorKind("ErrZeroModulo")

	// ErrNoMultiplicativeInverse is returned when k and the modulus are not
	// coprime, so k has no inverse. The offending values are carried in
	// Error.K and Error.Modulus.
	ErrNoMultiplicativeInverse = ErrorKind("ErrNoMultiplicativeInverse")

	// ErrPointNotOnCurve is returned when a candidate point does not satisfy
	// the curve equation. The rejected coordinates are carried in Error.X and
	// Error.Y.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrNegativePointNotOnCurve is returned when negating a valid point
	// produced a point off the curve. It indicates a bug in the field
	// arithmetic and never a caller error.
	ErrNegativePointNotOnCurve = ErrorKind("ErrNegativePointNotOnCurve")

	// ErrWideningOverflow is returned when a 512-bit intermediate does not fit
	// back into 256 bits.
	ErrWideningOverflow = ErrorKind("ErrWideningOverflow")

	// ErrInvalidRange is returned when a random value is requested from an
	// empty half-open range.
	ErrInvalidRange = ErrorKind("ErrInvalidRange")

	// ErrSamplingExhausted is returned when rejection sampling kept drawing
	// unusable values. With a healthy entropy source this does not happen.
	ErrSamplingExhausted = ErrorKind("ErrSamplingExhausted")

	// ErrInvalidPrivateKey is returned when a private scalar is outside
	// [1, n-1] or is not a 32-byte big-endian integer.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPublicKey is returned when a public key is the point at
	// infinity or cannot be decoded.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidSignature is returned when a serialized signature cannot be
	// decoded.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidCurve is returned when curve parameters are malformed or
	// inconsistent.
	ErrInvalidCurve = ErrorKind("ErrInvalidCurve")

	// ErrUnsupportedCurve is returned by encoders that only understand
	// secp256k1.
	ErrUnsupportedCurve = ErrorKind("ErrUnsupportedCurve")

	// ErrUnknownHash is returned when a digest name is not registered.
	ErrUnknownHash = ErrorKind("ErrUnknownHash")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to modular or elliptic curve arithmetic.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string

	// K and Modulus are set for ErrNoMultiplicativeInverse.
	K, Modulus *uint256.Int

	// X and Y are set for ErrPointNotOnCurve and ErrNegativePointNotOnCurve.
	X, Y *uint256.Int
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// InverseError creates an ErrNoMultiplicativeInverse error carrying k and the
// modulus.
func InverseError(k, modulus *uint256.Int) Error {
	return Error{
		Err: ErrNoMultiplicativeInverse,
		Description: fmt.Sprintf("%s has no multiplicative inverse modulo %s",
			k.ToBig(), modulus.ToBig()),
		K:       k.Clone(),
		Modulus: modulus.Clone(),
	}
}

// PointError creates an error of the given kind carrying the coordinates of
// the rejected point.
func PointError(kind ErrorKind, x, y *uint256.Int) Error {
	return Error{
		Err: kind,
		Description: fmt.Sprintf("point (%#x, %#x) is not on the curve",
			x.ToBig(), y.ToBig()),
		X: x.Clone(),
		Y: y.Clone(),
	}
}
