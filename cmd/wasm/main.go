//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecmath/internal/crypto/codec"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECMath WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECMath", map[string]interface{}{
		"KeyGen": js.FuncOf(KeyGen),
		"Sign":   js.FuncOf(Sign),
		"Verify": js.FuncOf(Verify),
	})

	<-c
}

// KeyGen generates a secp256k1 key pair.
// Returns:
// JSON string {"privateKey": hex, "publicKey": compressed SEC1 hex}
func KeyGen(this js.Value, args []js.Value) interface{} {
	curve := curves.Secp256k1()

	kp, err := keygen.Generate(curve, random.Default())
	if err != nil {
		return fmt.Sprintf("error: failed to generate key: %v", err)
	}
	pub, err := codec.SerializePublicKey(curve, kp.Public, true)
	if err != nil {
		return fmt.Sprintf("error: failed to encode public key: %v", err)
	}

	return respond(map[string]interface{}{
		"privateKey": hex.EncodeToString(codec.SerializePrivateKey(&kp.Private)),
		"publicKey":  hex.EncodeToString(pub),
	})
}

// Sign signs a message.
// Arguments:
// 0: JSON string {"privateKey": hex, "message": string}
// Returns:
// JSON string {"signature": DER hex, "compact": compact hex}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonRequest)"
	}

	var input struct {
		PrivateKey string `json:"privateKey"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	curve := curves.Secp256k1()
	privBytes, err := hex.DecodeString(input.PrivateKey)
	if err != nil {
		return fmt.Sprintf("error: invalid private key hex: %v", err)
	}
	kp, err := codec.ParsePrivateKey(curve, privBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid private key: %v", err)
	}

	sig, err := sign.Sign(curve, random.Default(), &kp.Private, []byte(input.Message))
	if err != nil {
		return fmt.Sprintf("error: failed to sign: %v", err)
	}
	der, err := codec.SerializeSignature(sig)
	if err != nil {
		return fmt.Sprintf("error: failed to encode signature: %v", err)
	}

	return respond(map[string]interface{}{
		"signature": hex.EncodeToString(der),
		"compact":   hex.EncodeToString(codec.SerializeCompactSignature(sig, true)),
	})
}

// Verify checks a signature.
// Arguments:
// 0: JSON string {"publicKey": SEC1 hex, "message": string, "signature": DER hex}
// Returns:
// JSON string {"result": "Successful" | "Failed"}
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonRequest)"
	}

	var input struct {
		PublicKey string `json:"publicKey"`
		Message   string `json:"message"`
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	curve := curves.Secp256k1()
	pubBytes, err := hex.DecodeString(input.PublicKey)
	if err != nil {
		return fmt.Sprintf("error: invalid public key hex: %v", err)
	}
	q, err := codec.ParsePublicKey(curve, pubBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid public key: %v", err)
	}
	sigBytes, err := hex.DecodeString(input.Signature)
	if err != nil {
		return fmt.Sprintf("error: invalid signature hex: %v", err)
	}
	sig, err := codec.ParseSignature(sigBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid signature: %v", err)
	}

	v, err := sign.Verify(curve, q, []byte(input.Message), sig)
	if err != nil {
		return fmt.Sprintf("error: failed to verify: %v", err)
	}
	return respond(map[string]interface{}{
		"result": v.String(),
	})
}

func respond(resp map[string]interface{}) interface{} {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("error: failed to encode response: %v", err)
	}
	return string(respBytes)
}
