// Package digest turns messages into ECDSA digest scalars. A message is hashed
// and the hash is truncated to the bit length of the curve order, keeping the
// leftmost bits as FIPS 186 prescribes.
package digest

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/math/wide"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Names of the built-in hash functions.
const (
	SHA512     = "sha512"
	SHA3_512   = "sha3-512"
	BLAKE2b512 = "blake2b-512"
)

// HashFunc constructs a fresh hash.
type HashFunc func() hash.Hash

var registry = map[string]HashFunc{
	SHA512:   sha512.New,
	SHA3_512: sha3.New512,
	BLAKE2b512: func() hash.Hash {
		// New512 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New512(nil)
		return h
	},
}

// Digester hashes messages with a fixed hash function.
type Digester struct {
	name string
	h    HashFunc
}

// New returns a Digester using h. The name is only used for display.
func New(name string, h HashFunc) *Digester {
	return &Digester{name: name, h: h}
}

// Default returns the SHA-512 digester.
func Default() *Digester {
	return New(SHA512, sha512.New)
}

// Lookup returns the digester registered under name. An empty name selects
// the default.
func Lookup(name string) (*Digester, error) {
	if name == "" {
		return Default(), nil
	}
	h, ok := registry[name]
	if !ok {
		return nil, ecmath.NewError(ecmath.ErrUnknownHash,
			fmt.Sprintf("unknown hash %q, supported: %v", name, Names()))
	}
	return New(name, h), nil
}

// Names returns the sorted names of the built-in hash functions.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name of the hash function.
func (d *Digester) Name() string {
	return d.name
}

// Sum returns the raw hash of msg.
func (d *Digester) Sum(msg []byte) []byte {
	h := d.h()
	h.Write(msg)
	return h.Sum(nil)
}

// Digest returns the hash of msg truncated to the bit length of the order of
// curve.
func (d *Digester) Digest(curve *curves.Curve, msg []byte) *uint256.Int {
	return Truncate(d.Sum(msg), curve.BitSize())
}

// Message returns the SHA-512 digest of msg for curve.
func Message(curve *curves.Curve, msg []byte) *uint256.Int {
	return Default().Digest(curve, msg)
}

// Truncate interprets sum as a fixed-width big-endian integer and keeps its
// leftmost bits. A sum no longer than bits is used whole.
func Truncate(sum []byte, bits int) *uint256.Int {
	if len(sum) > 64 {
		sum = sum[:64]
	}
	// FromBytes cannot fail for at most 64 bytes.
	v, _ := wide.FromBytes(sum)
	if excess := 8*len(sum) - bits; excess > 0 {
		v = v.Rsh(uint(excess))
	}
	// bits is the bit length of a 256-bit order, so the result always fits.
	z, err := v.Narrow()
	if err != nil {
		panic(err)
	}
	return z
}
