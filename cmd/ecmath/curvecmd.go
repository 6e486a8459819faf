package main

import (
	"fmt"

	"github.com/smallyu/go-ecmath/internal/config"
	"github.com/urfave/cli/v2"
)

var (
	curveCommand = &cli.Command{
		Name:   "curve",
		Usage:  "Prints the parameters of the configured curve",
		Action: showCurve,
	}
	configCommand = &cli.Command{
		Name:   "config",
		Usage:  "Prints the effective configuration as TOML",
		Action: dumpConfig,
	}
)

func showCurve(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	c := env.curve
	w := ctx.App.Writer

	fmt.Fprintf(w, "name: %s\n", c.Name())
	fmt.Fprintf(w, "p:    %s\n", c.P().Hex())
	fmt.Fprintf(w, "a:    %s\n", c.A().Hex())
	fmt.Fprintf(w, "b:    %s\n", c.B().Hex())
	fmt.Fprintf(w, "G:    %s\n", c.G())
	fmt.Fprintf(w, "n:    %s\n", c.N().Hex())
	fmt.Fprintf(w, "h:    %d\n", c.H())
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	return config.Dump(ctx.App.Writer, env.cfg)
}
