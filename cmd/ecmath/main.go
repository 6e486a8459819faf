// Command ecmath exercises the curve arithmetic, ECDSA and ECDH from the
// command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:     filepath.Base(os.Args[0]),
		Usage:    "elliptic curve arithmetic, ECDSA and ECDH",
		Writer:   os.Stdout,
		Flags:    []cli.Flag{configFlag, logLevelFlag, hashFlag},
		Before:   setup,
		Metadata: map[string]interface{}{},
		Commands: []*cli.Command{
			curveCommand,
			configCommand,
			keygenCommand,
			signCommand,
			verifyCommand,
			recoverCommand,
			ecdhCommand,
			addCommand,
			mulCommand,
		},
	}
	app.CommandNotFound = func(ctx *cli.Context, cmd string) {
		fmt.Fprintf(ctx.App.ErrWriter, "No such command: %s\n", cmd)
	}
	return app
}
