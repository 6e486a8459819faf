package main

import (
	"encoding/hex"
	"fmt"

	"github.com/smallyu/go-ecmath/internal/protocol/ecdh"
	"github.com/urfave/cli/v2"
)

var (
	ecdhCommand = &cli.Command{
		Name:   "ecdh",
		Usage:  "Derives a shared secret with a peer public key",
		Action: deriveShared,
		Flags:  []cli.Flag{keyFlag, peerFlag, kdfSizeFlag, saltFlag, infoFlag},
	}
	peerFlag = &cli.StringFlag{
		Name:  "peer",
		Usage: "peer public key: SEC1 hex, \"x,y\" or G",
	}
	kdfSizeFlag = &cli.IntFlag{
		Name:  "kdf-size",
		Usage: "if non-zero, also derive this many bytes of key material with HKDF-SHA512",
	}
	saltFlag = &cli.StringFlag{
		Name:  "salt",
		Usage: "HKDF salt",
	}
	infoFlag = &cli.StringFlag{
		Name:  "info",
		Usage: "HKDF context info",
	}
)

func deriveShared(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	d, err := parseScalar(keyFlag.Name, ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	peer, err := parsePoint(env.curve, peerFlag.Name, ctx.String(peerFlag.Name))
	if err != nil {
		return err
	}

	secret, err := ecdh.SharedSecret(env.curve, d, peer)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "shared: %s\n", hex.EncodeToString(secret))

	if size := ctx.Int(kdfSizeFlag.Name); size != 0 {
		key, err := ecdh.DeriveKey(env.curve, d, peer,
			[]byte(ctx.String(saltFlag.Name)), []byte(ctx.String(infoFlag.Name)), size)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "key:    %s\n", hex.EncodeToString(key))
	}
	return nil
}
