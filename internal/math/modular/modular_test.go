package modular

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secp256k1P = "115792089237316195423570985008687907853269984665640564039457584007908834671663"
	bigK       = "51962848049517897314481377586705320001209492118704192225945377961561169702593"
)

func dec(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := uint256.FromDecimal(s)
	require.NoError(t, err)
	return v
}

func TestAdditiveInverse(t *testing.T) {
	tests := []struct {
		name    string
		k, p    string
		want    string
		wantErr error
	}{
		{"small", "5", "11", "6", nil},
		{"zero k", "0", "11", "0", nil},
		{"zero k and modulus", "0", "0", "0", nil},
		{"zero modulus", "5", "0", "", ecmath.ErrZeroModulo},
		{"k equals modulus", "11", "11", "0", nil},
		{"k above modulus", "27", "11", "6", nil},
		{"secp256k1", bigK, secp256k1P,
			"63829241187798298109089607421982587852060492546936371813512206046347664969070", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AdditiveInverse(dec(t, tc.k), dec(t, tc.p))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Dec())
		})
	}
}

func TestMultiplicativeInverse(t *testing.T) {
	tests := []struct {
		name    string
		k, p    string
		want    string
		wantErr error
	}{
		{"small", "5", "11", "9", nil},
		{"one", "1", "11", "1", nil},
		{"k above modulus", "16", "11", "9", nil},
		{"not coprime", "5", "10", "", ecmath.ErrNoMultiplicativeInverse},
		{"k multiple of modulus", "22", "11", "", ecmath.ErrNoMultiplicativeInverse},
		{"zero k", "0", "11", "", ecmath.ErrZeroDivision},
		{"zero k and modulus", "0", "0", "", ecmath.ErrZeroDivision},
		{"zero modulus", "5", "0", "", ecmath.ErrZeroModulo},
		{"secp256k1", bigK, secp256k1P,
			"15770621123931935841922866852148091009166141688620356011139719709837462056333", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MultiplicativeInverse(dec(t, tc.k), dec(t, tc.p))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Dec())
		})
	}
}

func TestNoInverseCarriesOperands(t *testing.T) {
	_, err := MultiplicativeInverse(uint256.NewInt(5), uint256.NewInt(10))
	var e ecmath.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, uint64(5), e.K.Uint64())
	assert.Equal(t, uint64(10), e.Modulus.Uint64())
}

func TestInverseIdentities(t *testing.T) {
	p := dec(t, secp256k1P)
	f, err := NewField(p)
	require.NoError(t, err)

	// Walk a deterministic sequence of large values through both identities.
	k := dec(t, bigK)
	for i := 0; i < 64; i++ {
		k = f.Add(f.Square(k), uint256.NewInt(uint64(i)+7))
		if k.IsZero() {
			continue
		}

		neg, err := AdditiveInverse(k, p)
		require.NoError(t, err)
		assert.True(t, f.Add(k, neg).IsZero(), "k + -k != 0 for k=%s", k.Dec())

		inv, err := MultiplicativeInverse(k, p)
		require.NoError(t, err)
		assert.True(t, inv.Lt(p))
		assert.True(t, f.Mul(k, inv).Eq(uint256.NewInt(1)), "k * k^-1 != 1 for k=%s", k.Dec())
	}
}

func TestInverseNearMaxModulus(t *testing.T) {
	// 2^256 - 189 is prime; sums and products of values this close to the
	// top of the range overflow 256 bits before reduction.
	p := new(uint256.Int).SetAllOne()
	p.SubUint64(p, 188)
	k := new(uint256.Int).SubUint64(p, 1)

	inv, err := MultiplicativeInverse(k, p)
	require.NoError(t, err)
	// (p-1) is its own inverse.
	assert.True(t, inv.Eq(k))

	neg, err := AdditiveInverse(k, p)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), neg.Uint64())
}

func TestField(t *testing.T) {
	_, err := NewField(new(uint256.Int))
	require.ErrorIs(t, err, ecmath.ErrZeroModulo)

	f, err := NewField(uint256.NewInt(11))
	require.NoError(t, err)

	a, b := uint256.NewInt(7), uint256.NewInt(9)
	assert.Equal(t, uint64(5), f.Add(a, b).Uint64())
	assert.Equal(t, uint64(9), f.Sub(a, b).Uint64())
	assert.Equal(t, uint64(8), f.Mul(a, b).Uint64())
	assert.Equal(t, uint64(5), f.Square(a).Uint64())
	assert.Equal(t, uint64(4), f.Neg(a).Uint64())
	assert.Equal(t, uint64(3), f.Reduce(uint256.NewInt(25)).Uint64())
	assert.Equal(t, uint64(11), f.Modulus().Uint64())

	inv, err := f.Inv(a)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), inv.Uint64())

	_, err = f.Inv(new(uint256.Int))
	require.ErrorIs(t, err, ecmath.ErrZeroDivision)
}

func TestFieldExp(t *testing.T) {
	f, err := NewField(uint256.NewInt(11))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), f.Exp(uint256.NewInt(7), new(uint256.Int)).Uint64())
	assert.Equal(t, uint64(2), f.Exp(uint256.NewInt(7), uint256.NewInt(3)).Uint64())
	// Fermat: a^(p-1) ≡ 1.
	assert.Equal(t, uint64(1), f.Exp(uint256.NewInt(7), uint256.NewInt(10)).Uint64())

	p := dec(t, secp256k1P)
	fp, err := NewField(p)
	require.NoError(t, err)
	k := dec(t, bigK)
	pm2 := new(uint256.Int).SubUint64(p, 2)
	want, err := fp.Inv(k)
	require.NoError(t, err)
	assert.True(t, fp.Exp(k, pm2).Eq(want))
}
