package random

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constReader yields the same byte forever.
type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func TestUint256Range(t *testing.T) {
	src := Default()
	n, err := uint256.FromHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	require.NoError(t, err)
	one := uint256.NewInt(1)

	for i := 0; i < 100; i++ {
		v, err := src.Uint256Range(one, n)
		require.NoError(t, err)
		assert.False(t, v.Lt(one))
		assert.True(t, v.Lt(n))
	}

	// Small ranges are reached quickly thanks to masking.
	low, high := uint256.NewInt(3), uint256.NewInt(6)
	seen := map[uint64]bool{}
	for i := 0; i < 200; i++ {
		v, err := src.Uint256Range(low, high)
		require.NoError(t, err)
		seen[v.Uint64()] = true
	}
	assert.Equal(t, map[uint64]bool{3: true, 4: true, 5: true}, seen)
}

func TestUint256RangeInvalid(t *testing.T) {
	src := Default()
	_, err := src.Uint256Range(uint256.NewInt(5), uint256.NewInt(5))
	require.ErrorIs(t, err, ecmath.ErrInvalidRange)
	_, err = src.Uint256Range(uint256.NewInt(6), uint256.NewInt(5))
	require.ErrorIs(t, err, ecmath.ErrInvalidRange)
}

func TestUint256RangeExhausted(t *testing.T) {
	// Every masked draw is 15, outside [0, 10).
	src := New(constReader(0xff))
	_, err := src.Uint256Range(new(uint256.Int), uint256.NewInt(10))
	require.ErrorIs(t, err, ecmath.ErrSamplingExhausted)
}

func TestUint256ShortRead(t *testing.T) {
	src := New(bytes.NewReader(make([]byte, 31)))
	_, err := src.Uint256()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read random bytes")
}

func TestUint256BigEndian(t *testing.T) {
	buf := make([]byte, 32)
	buf[31] = 0x2a
	v, err := New(bytes.NewReader(buf)).Uint256()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Uint64())
}

func TestFixed(t *testing.T) {
	src := NewFixed(uint256.NewInt(7))
	for i := 0; i < 3; i++ {
		v, err := src.Uint256()
		require.NoError(t, err)
		assert.Equal(t, uint64(7), v.Uint64())
	}

	// Out-of-range values are handed back unchanged.
	v, err := src.Uint256Range(uint256.NewInt(100), uint256.NewInt(200))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v.Uint64())

	// Mutating the result does not affect the source.
	v.SetUint64(9)
	v, err = src.Uint256()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v.Uint64())

	_, err = src.Uint256Range(uint256.NewInt(1), uint256.NewInt(1))
	require.ErrorIs(t, err, ecmath.ErrInvalidRange)
}

func TestSequence(t *testing.T) {
	src := NewSequence(uint256.NewInt(1), uint256.NewInt(2))
	assert.Equal(t, 2, src.Remaining())

	v, err := src.Uint256Range(uint256.NewInt(0), uint256.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Uint64())

	v, err = src.Uint256()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Uint64())
	assert.Equal(t, 0, src.Remaining())

	_, err = src.Uint256()
	require.ErrorIs(t, err, ecmath.ErrSamplingExhausted)
}
