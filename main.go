package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/usdindex/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "usdindex"
	app.Usage = "build and inspect geometry indices from USD-like scene descriptions"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "build-index",
			Usage: "walk a stage and its references/payloads and write a binary scene-index",
			Description: `
Parse a root stage file and every stage reachable via sub-layers,
references, and payloads, resolve variant selections and skeleton
bindings, and emit one mesh record per renderable mesh encountered.

The resulting index is a self-contained binary file that can be
inspected with the inspect-index command or consumed directly by
downstream geometry tooling.`,
			ArgsUsage: "stage.usda output.index",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config",
					Usage: "path to a YAML config file; uses built-in defaults if omitted",
				},
			},
			Action: cmd.BuildIndex,
		},
		{
			Name:      "inspect-index",
			Usage:     "print a summary of a binary scene-index",
			ArgsUsage: "output.index",
			Action:    cmd.InspectIndex,
		},
	}

	app.Run(os.Args)
}
