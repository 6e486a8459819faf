package main

import (
	"github.com/pkg/errors"
	"github.com/smallyu/go-ecmath/internal/config"
	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/digest"
	"github.com/smallyu/go-ecmath/internal/logger"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML or YAML configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (trace, debug, info, warn, error)",
	}
	hashFlag = &cli.StringFlag{
		Name:  "hash",
		Usage: "message digest (sha512, sha3-512, blake2b-512)",
	}
)

const envKey = "env"

// environment is built once per invocation from the configuration and the
// global flags.
type environment struct {
	cfg   *config.Config
	curve *curves.Curve
	dg    *digest.Digester
}

var log = logger.Get(logger.SubsystemTags.CMD)

func setup(ctx *cli.Context) error {
	cfg := config.Default()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(hashFlag.Name) {
		cfg.Hash = ctx.String(hashFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}

	curve, err := cfg.Curve.Build()
	if err != nil {
		return err
	}
	dg, err := cfg.Digester()
	if err != nil {
		return err
	}

	log.Debugf("using curve %s with %s", curve.Name(), dg.Name())
	ctx.App.Metadata[envKey] = &environment{cfg: cfg, curve: curve, dg: dg}
	return nil
}

func getEnv(ctx *cli.Context) (*environment, error) {
	env, ok := ctx.App.Metadata[envKey].(*environment)
	if !ok {
		return nil, errors.New("environment not initialised")
	}
	return env, nil
}
