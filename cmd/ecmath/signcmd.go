package main

import (
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/crypto/codec"
	"github.com/smallyu/go-ecmath/internal/crypto/random"
	"github.com/smallyu/go-ecmath/internal/protocol/keygen"
	"github.com/smallyu/go-ecmath/internal/protocol/sign"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/urfave/cli/v2"
)

var (
	signCommand = &cli.Command{
		Name:   "sign",
		Usage:  "Signs a message",
		Action: signMessage,
		Flags:  []cli.Flag{keyFlag, msgFlag},
	}
	verifyCommand = &cli.Command{
		Name:   "verify",
		Usage:  "Verifies a signature",
		Action: verifySignature,
		Flags:  []cli.Flag{pubFlag, msgFlag, sigFlag},
	}
	recoverCommand = &cli.Command{
		Name:   "recover",
		Usage:  "Recovers the public key from a compact signature",
		Action: recoverKey,
		Flags:  []cli.Flag{msgFlag, sigFlag},
	}
)

var (
	keyFlag = &cli.StringFlag{
		Name:  "key",
		Usage: "private key as hex (0x...) or decimal",
	}
	msgFlag = &cli.StringFlag{
		Name:  "msg",
		Usage: "message to sign or verify",
	}
	pubFlag = &cli.StringFlag{
		Name:  "pub",
		Usage: "public key: SEC1 hex, \"x,y\" or G",
	}
	sigFlag = &cli.StringFlag{
		Name:  "sig",
		Usage: "signature: DER or compact hex, or \"r,s\"",
	}
)

var (
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	failureColor = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

func signMessage(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	d, err := parseScalar(keyFlag.Name, ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	kp, err := keygen.FromPrivate(env.curve, d)
	if err != nil {
		return err
	}

	sig, err := sign.SignWith(env.dg, env.curve, random.Default(), &kp.Private, []byte(ctx.String(msgFlag.Name)))
	if err != nil {
		return errors.Wrap(err, "could not sign")
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "r:       %s\n", sig.R.Hex())
	fmt.Fprintf(w, "s:       %s\n", sig.S.Hex())
	if der, err := codec.SerializeSignature(sig); err == nil && codecSupported(env) {
		fmt.Fprintf(w, "der:     %s\n", hex.EncodeToString(der))
		fmt.Fprintf(w, "compact: %s\n", hex.EncodeToString(codec.SerializeCompactSignature(sig, true)))
	}
	return nil
}

func verifySignature(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	q, err := parsePoint(env.curve, pubFlag.Name, ctx.String(pubFlag.Name))
	if err != nil {
		return err
	}
	sig, err := parseSignature(ctx.String(sigFlag.Name))
	if err != nil {
		return err
	}

	v, err := sign.VerifyWith(env.dg, env.curve, q, []byte(ctx.String(msgFlag.Name)), sig)
	if err != nil {
		return err
	}
	if v != ecmath.Successful {
		fmt.Fprintln(ctx.App.Writer, failureColor(v))
		return cli.Exit("", 1)
	}
	fmt.Fprintln(ctx.App.Writer, successColor(v))
	return nil
}

func recoverKey(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	sig, err := parseSignature(ctx.String(sigFlag.Name))
	if err != nil {
		return err
	}

	z := env.dg.Digest(env.curve, []byte(ctx.String(msgFlag.Name)))
	q, err := sign.RecoverPublicKey(env.curve, z, sig)
	if err != nil {
		return errors.Wrap(err, "could not recover public key")
	}
	fmt.Fprintf(ctx.App.Writer, "public:  %s\n", formatPoint(env.curve, q))
	return nil
}

// codecSupported reports whether the wire encodings apply to the curve.
func codecSupported(env *environment) bool {
	_, err := codec.SerializePublicKey(env.curve, env.curve.G(), true)
	return err == nil
}
