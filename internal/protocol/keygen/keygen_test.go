package keygen

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	curve := curves.Secp256k1()

	kp, err := Generate(curve, random.Default())
	if err != nil {
		t.Fatalf("Failed to generate key pair: %v", err)
	}

	assert.True(t, curve.IsScalar(&kp.Private))
	want, err := curve.ScalarBaseMult(&kp.Private)
	require.NoError(t, err)
	assert.True(t, want.Equal(kp.Public))
	require.NoError(t, kp.Validate(curve))

	other, err := Generate(curve, random.Default())
	require.NoError(t, err)
	assert.False(t, other.Private.Eq(&kp.Private), "two draws produced the same key")
}

func TestGenerateDeterministic(t *testing.T) {
	curve := curves.Secp256k1()

	kp, err := Generate(curve, random.NewFixed(uint256.NewInt(1)))
	require.NoError(t, err)
	assert.True(t, kp.Public.Equal(curve.G()))

	// A source that ignores the requested range is caught.
	_, err = Generate(curve, random.NewFixed(new(uint256.Int)))
	require.ErrorIs(t, err, ecmath.ErrInvalidPrivateKey)
	_, err = Generate(curve, random.NewFixed(curve.N()))
	require.ErrorIs(t, err, ecmath.ErrInvalidPrivateKey)

	_, err = Generate(curve, random.NewSequence())
	require.ErrorIs(t, err, ecmath.ErrSamplingExhausted)
}

func TestFromPrivate(t *testing.T) {
	curve := curves.Secp256k1()

	d, err := uint256.FromHex("0xc9afa9d845ba75166b5c215767b1d6934e50c3db36e89b127b8a622b120f6721")
	require.NoError(t, err)
	kp, err := FromPrivate(curve, d)
	require.NoError(t, err)

	x, y := kp.PublicCoordinates()
	assert.Equal(t, "0x2c8c31fc9f990c6b55e3865a184a4ce50e09481f2eaeb3e60ec1cea13a6ae645", x.Hex())
	assert.Equal(t, "0x64b95e4fdb6948c0386e189b006a29f686769b011704275e4459822dc3328085", y.Hex())

	for _, bad := range []*uint256.Int{new(uint256.Int), curve.N(), new(uint256.Int).SetAllOne()} {
		_, err := FromPrivate(curve, bad)
		require.ErrorIs(t, err, ecmath.ErrInvalidPrivateKey, "d=%s", bad.Hex())
	}
}

func TestValidate(t *testing.T) {
	curve := curves.Secp256k1()
	kp, err := FromPrivate(curve, uint256.NewInt(2))
	require.NoError(t, err)
	require.NoError(t, kp.Validate(curve))

	mismatched := *kp
	mismatched.Public = curve.G()
	require.ErrorIs(t, mismatched.Validate(curve), ecmath.ErrInvalidPublicKey)

	atInfinity := *kp
	atInfinity.Public = curves.Infinity()
	require.ErrorIs(t, atInfinity.Validate(curve), ecmath.ErrInvalidPublicKey)

	zero := KeyPair{Public: curve.G()}
	require.ErrorIs(t, zero.Validate(curve), ecmath.ErrInvalidPrivateKey)
}
