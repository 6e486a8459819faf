package benchmark

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/internal/math/modular"
	"github.com/smallyu/go-ecmath/internal/math/wide"
	"github.com/smallyu/go-ecmath/internal/protocol/ecdh"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
)

// setupKeys creates n key pairs for benchmarking.
func setupKeys(b *testing.B, n int) []*keygen.KeyPair {
	b.Helper()
	curve := curves.Secp256k1()
	keys := make([]*keygen.KeyPair, n)
	for i := range keys {
		kp, err := keygen.Generate(curve, random.Default())
		if err != nil {
			b.Fatalf("KeyGen failed: %v", err)
		}
		keys[i] = kp
	}
	return keys
}

func BenchmarkWideMul(b *testing.B) {
	x := new(uint256.Int).SetAllOne()
	y := curves.Secp256k1().N()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wide.Mul(x, y)
	}
}

func BenchmarkMultiplicativeInverse(b *testing.B) {
	p := curves.Secp256k1().P()
	k := curves.Secp256k1().N()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := modular.MultiplicativeInverse(k, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarBaseMult(b *testing.B) {
	curve := curves.Secp256k1()
	k := setupKeys(b, 1)[0].Private
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.ScalarBaseMult(&k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKeyGen(b *testing.B) {
	curve := curves.Secp256k1()
	src := random.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keygen.Generate(curve, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	curve := curves.Secp256k1()
	src := random.Default()
	kp := setupKeys(b, 1)[0]
	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sign.Sign(curve, src, &kp.Private, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	curve := curves.Secp256k1()
	kp := setupKeys(b, 1)[0]
	msg := []byte("benchmark message")
	sig, err := sign.Sign(curve, random.Default(), &kp.Private, msg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sign.Verify(curve, kp.Public, msg, sig); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkECDH(b *testing.B) {
	curve := curves.Secp256k1()
	keys := setupKeys(b, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecdh.SharedSecret(curve, &keys[0].Private, keys[1].Public); err != nil {
			b.Fatal(err)
		}
	}
}
