package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/urfave/cli/v2"
)

var (
	keygenCommand = &cli.Command{
		Name:   "keygen",
		Usage:  "Generates a key pair",
		Action: genKey,
		Flags:  []cli.Flag{proveFlag},
	}
	proveFlag = &cli.BoolFlag{
		Name:  "prove",
		Usage: "also print a Schnorr proof of possession of the private key",
	}
)

func genKey(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	src := random.Default()

	kp, err := keygen.Generate(env.curve, src)
	if err != nil {
		return errors.Wrap(err, "could not generate key")
	}

	w := ctx.App.Writer
	priv := kp.Private.Bytes32()
	fmt.Fprintf(w, "private: %s\n", hex.EncodeToString(priv[:]))
	fmt.Fprintf(w, "public:  %s\n", formatPoint(env.curve, kp.Public))

	if ctx.Bool(proveFlag.Name) {
		proof, err := schnorr.Prove(env.curve, src, &kp.Private, kp.Public)
		if err != nil {
			return errors.Wrap(err, "could not prove key possession")
		}
		fmt.Fprintf(w, "proof.R: %s\n", formatPoint(env.curve, proof.R))
		fmt.Fprintf(w, "proof.s: %s\n", proof.S.Hex())
	}
	return nil
}
