// Package wide provides the 512-bit intermediate used for products of two
// 256-bit field elements. Every product is computed exactly and only then
// reduced or narrowed back to 256 bits.
package wide

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

// U512 is a 512-bit unsigned integer stored as eight little-endian 64-bit
// limbs, matching the limb order of uint256.Int.
type U512 [8]uint64

// FromU256 widens x without changing its value.
func FromU256(x *uint256.Int) U512 {
	return U512{x[0], x[1], x[2], x[3]}
}

// FromBytes interprets b as a big-endian unsigned integer. It fails with
// ErrWideningOverflow when b is longer than 64 bytes.
func FromBytes(b []byte) (U512, error) {
	var z U512
	if len(b) > 64 {
		return z, ecmath.NewError(ecmath.ErrWideningOverflow,
			fmt.Sprintf("%d bytes do not fit in 512 bits", len(b)))
	}
	var buf [64]byte
	copy(buf[64-len(b):], b)
	for i := 0; i < 8; i++ {
		z[i] = binary.BigEndian.Uint64(buf[56-8*i : 64-8*i])
	}
	return z, nil
}

// Mul returns the exact 512-bit product x*y.
func Mul(x, y *uint256.Int) U512 {
	var z U512
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			// x[i]*y[j] + z[i+j] + carry always fits in 128 bits.
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+4] = carry
	}
	return z
}

// Add returns z+x and whether the sum overflowed 512 bits.
func (z U512) Add(x U512) (U512, bool) {
	var sum U512
	var carry uint64
	for i := 0; i < 8; i++ {
		sum[i], carry = bits.Add64(z[i], x[i], carry)
	}
	return sum, carry != 0
}

// IsZero reports whether z == 0.
func (z U512) IsZero() bool {
	return z == U512{}
}

// Cmp compares z and x and returns -1, 0 or +1.
func (z U512) Cmp(x U512) int {
	for i := 7; i >= 0; i-- {
		switch {
		case z[i] < x[i]:
			return -1
		case z[i] > x[i]:
			return 1
		}
	}
	return 0
}

// BitLen returns the number of bits required to represent z.
func (z U512) BitLen() int {
	for i := 7; i >= 0; i-- {
		if z[i] != 0 {
			return 64*i + bits.Len64(z[i])
		}
	}
	return 0
}

// Rsh returns z >> n.
func (z U512) Rsh(n uint) U512 {
	var r U512
	if n >= 512 {
		return r
	}
	limbs, shift := int(n/64), n%64
	for i := 0; i+limbs < 8; i++ {
		r[i] = z[i+limbs] >> shift
		if shift != 0 && i+limbs+1 < 8 {
			r[i] |= z[i+limbs+1] << (64 - shift)
		}
	}
	return r
}

// Bytes returns z as a 64-byte big-endian array.
func (z U512) Bytes() [64]byte {
	var b [64]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint64(b[56-8*i:64-8*i], z[i])
	}
	return b
}

// ToBig returns z as a big.Int.
func (z U512) ToBig() *big.Int {
	b := z.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Narrow converts z back to 256 bits. It fails with ErrWideningOverflow when
// any of the upper 256 bits are set.
func (z U512) Narrow() (*uint256.Int, error) {
	if z[4]|z[5]|z[6]|z[7] != 0 {
		return nil, ecmath.NewError(ecmath.ErrWideningOverflow,
			fmt.Sprintf("%#x does not fit in 256 bits", z.ToBig()))
	}
	return &uint256.Int{z[0], z[1], z[2], z[3]}, nil
}

// Mod returns z mod m, which always fits in 256 bits. Like big.Int, it panics
// when m is zero; callers check the modulus first.
func (z U512) Mod(m *uint256.Int) *uint256.Int {
	if m.IsZero() {
		panic("wide: division by zero")
	}
	if z[4]|z[5]|z[6]|z[7] == 0 {
		x := &uint256.Int{z[0], z[1], z[2], z[3]}
		return x.Mod(x, m)
	}
	r := new(big.Int).Mod(z.ToBig(), m.ToBig())
	res, _ := uint256.FromBig(r)
	return res
}

// String returns z in decimal.
func (z U512) String() string {
	return z.ToBig().String()
}
