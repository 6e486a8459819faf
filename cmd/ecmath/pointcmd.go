package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	addCommand = &cli.Command{
		Name:   "add",
		Usage:  "Adds two points",
		Action: addPoints,
		Flags:  []cli.Flag{p1Flag, p2Flag},
	}
	mulCommand = &cli.Command{
		Name:   "mul",
		Usage:  "Multiplies a point by a scalar",
		Action: mulPoint,
		Flags:  []cli.Flag{scalarFlag, pointFlag},
	}
)

var (
	p1Flag = &cli.StringFlag{
		Name:  "p1",
		Usage: "first point: SEC1 hex, \"x,y\", G or inf",
	}
	p2Flag = &cli.StringFlag{
		Name:  "p2",
		Usage: "second point: SEC1 hex, \"x,y\", G or inf",
	}
	scalarFlag = &cli.StringFlag{
		Name:  "k",
		Usage: "scalar as hex (0x...) or decimal",
	}
	pointFlag = &cli.StringFlag{
		Name:  "point",
		Usage: "point: SEC1 hex, \"x,y\", G or inf",
		Value: "G",
	}
)

func addPoints(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	p1, err := parsePoint(env.curve, p1Flag.Name, ctx.String(p1Flag.Name))
	if err != nil {
		return err
	}
	p2, err := parsePoint(env.curve, p2Flag.Name, ctx.String(p2Flag.Name))
	if err != nil {
		return err
	}

	sum, err := env.curve.Add(p1, p2)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, sum)
	return nil
}

func mulPoint(ctx *cli.Context) error {
	env, err := getEnv(ctx)
	if err != nil {
		return err
	}
	k, err := parseScalar(scalarFlag.Name, ctx.String(scalarFlag.Name))
	if err != nil {
		return err
	}
	p, err := parsePoint(env.curve, pointFlag.Name, ctx.String(pointFlag.Name))
	if err != nil {
		return err
	}

	r, err := env.curve.ScalarMult(k, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, r)
	return nil
}
