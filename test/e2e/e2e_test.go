package e2e

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/holiman/uint256"
	"github.com/smallyu/go-ecmath/internal/crypto/codec"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/internal/protocol/ecdh"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
)

func TestSignatureInterop(t *testing.T) {
	curve := curves.Secp256k1()
	src := random.Default()

	for i := 0; i < 5; i++ {
		// 1. Key Generation Phase
		kp, err := keygen.Generate(curve, src)
		if err != nil {
			t.Fatalf("KeyGen failed: %v", err)
		}
		d := kp.Private.Bytes32()
		priv := secp256k1.PrivKeyFromBytes(d[:])

		pub, err := codec.SerializePublicKey(curve, kp.Public, true)
		if err != nil {
			t.Fatalf("Encoding public key failed: %v", err)
		}
		if !bytes.Equal(pub, priv.PubKey().SerializeCompressed()) {
			t.Fatalf("Public key mismatch: %x != %x", pub, priv.PubKey().SerializeCompressed())
		}

		// 2. Our signature, checked by decred
		msg := []byte(fmt.Sprintf("message %d", i))
		sig, err := sign.Sign(curve, src, &kp.Private, msg)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		der, err := codec.SerializeSignature(sig)
		if err != nil {
			t.Fatalf("DER encoding failed: %v", err)
		}
		parsed, err := ecdsa.ParseDERSignature(der)
		if err != nil {
			t.Fatalf("decred rejected DER: %v", err)
		}
		z := digest.Message(curve, msg).Bytes32()
		if !parsed.Verify(z[:], priv.PubKey()) {
			t.Fatalf("decred failed to verify signature %d", i)
		}

		// 3. Decred's signature, checked by us
		hash := sha256.Sum256(msg)
		theirs, err := codec.ParseSignature(ecdsa.Sign(priv, hash[:]).Serialize())
		if err != nil {
			t.Fatalf("Parsing decred signature failed: %v", err)
		}
		zh := new(uint256.Int).SetBytes32(hash[:])
		zh = curve.ScalarField().Reduce(zh)
		v, err := sign.VerifyDigest(curve, kp.Public, zh, theirs)
		if err != nil {
			t.Fatalf("VerifyDigest failed: %v", err)
		}
		if v != ecmath.Successful {
			t.Fatalf("decred signature %d did not verify", i)
		}

		// 4. Public key recovery
		rec, err := sign.RecoverPublicKey(curve, digest.Message(curve, msg), sig)
		if err != nil {
			t.Fatalf("Recovery failed: %v", err)
		}
		if !rec.Equal(kp.Public) {
			t.Fatalf("Recovered %s, want %s", rec, kp.Public)
		}
	}
}

func TestECDHInterop(t *testing.T) {
	curve := curves.Secp256k1()
	src := random.Default()

	alice, err := keygen.Generate(curve, src)
	if err != nil {
		t.Fatalf("KeyGen failed: %v", err)
	}
	bob, err := keygen.Generate(curve, src)
	if err != nil {
		t.Fatalf("KeyGen failed: %v", err)
	}

	ab, err := ecdh.SharedSecret(curve, &alice.Private, bob.Public)
	if err != nil {
		t.Fatalf("ECDH failed: %v", err)
	}
	ba, err := ecdh.SharedSecret(curve, &bob.Private, alice.Public)
	if err != nil {
		t.Fatalf("ECDH failed: %v", err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatalf("Shared secrets differ: %x != %x", ab, ba)
	}

	// Round trip Bob's key through SEC1 before use.
	enc, err := codec.SerializePublicKey(curve, bob.Public, false)
	if err != nil {
		t.Fatalf("Encoding failed: %v", err)
	}
	peer, err := codec.ParsePublicKey(curve, enc)
	if err != nil {
		t.Fatalf("Decoding failed: %v", err)
	}
	ka, err := ecdh.DeriveKey(curve, &alice.Private, peer, nil, []byte("e2e"), 32)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	kb, err := ecdh.DeriveKey(curve, &bob.Private, alice.Public, nil, []byte("e2e"), 32)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(ka, kb) {
		t.Fatalf("Derived keys differ")
	}
}

func TestScalarMultMatchesDecred(t *testing.T) {
	curve := curves.Secp256k1()
	src := random.Default()

	for i := 0; i < 10; i++ {
		k, err := curve.NewScalar(src)
		if err != nil {
			t.Fatalf("NewScalar failed: %v", err)
		}
		p, err := curve.ScalarBaseMult(k)
		if err != nil {
			t.Fatalf("ScalarBaseMult failed: %v", err)
		}

		var s secp256k1.ModNScalar
		kb := k.Bytes32()
		s.SetBytes(&kb)
		var want secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&s, &want)
		want.ToAffine()

		x, y := p.Coordinates()
		wx, wy := want.X.Bytes(), want.Y.Bytes()
		if x.Bytes32() != *wx || y.Bytes32() != *wy {
			t.Fatalf("k=%s: got %s", k.Hex(), p)
		}
	}
}
