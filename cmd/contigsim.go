/**
 * Filename: cmd/contigsim.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	contigsim "github.com/glennhickey/contigSim"
	logging "github.com/op/go-logging"
	"github.com/urfave/cli"
)

// init customizes how cli lays out the command interface.
func init() {
	cli.AppHelpTemplate = `
   _____            _   _       _____ _
  / ____|          | | (_)     / ____(_)
 | |     ___  _ __ | |_ _  __ _| (___  _ _ __ ___
 | |    / _ \| '_ \| __| |/ _` + "`" + ` |\___ \| | '_ ` + "`" + ` _ \
 | |___| (_) | | | | |_| | (_| |____) | | | | | | |
  \_____\___/|_| |_|\__|_|\__, |_____/|_|_| |_| |_|
                           __/ |
                          |___/
` + cli.AppHelpTemplate
}

// main is the entrypoint for the entire program, routes to commands.
func main() {
	logging.SetBackend(contigsim.BackendFormatter)

	app := cli.NewApp()
	app.Compiled = time.Now()
	app.Copyright = "(c) Glenn Hickey 2012-2024"
	app.Name = "contigsim"
	app.Usage = "Stochastic genome-rearrangement simulator"
	app.Version = contigsim.Version

	app.Commands = []cli.Command{
		{
			Name:  "simulate",
			Usage: "Run a DCJ rearrangement experiment over a grid of parameters",
			UsageText: `
	contigsim simulate [options]

Simulate function:
Given rate parameters and a starting population of linear/circular contigs,
run one or more replicates of the DCJ Markov chain out to time T and report
the resulting contig-size histograms, partitioned by topology and viability.
`,
			Flags: []cli.Flag{
				cli.IntFlag{Name: "N", Usage: "total base count", Value: 1000000},
				cli.Float64Flag{Name: "t", Usage: "simulation end time", Value: 100},
				cli.Float64Flag{Name: "rll", Usage: "live-live DCJ rate per base"},
				cli.Float64Flag{Name: "rld", Usage: "live-dead DCJ rate per base"},
				cli.Float64Flag{Name: "rdd", Usage: "dead-dead DCJ rate per base"},
				cli.Float64Flag{Name: "fl", Usage: "telomere-loss modifier"},
				cli.Float64Flag{Name: "fg", Usage: "telomere-gain modifier"},
				cli.Float64Flag{Name: "pgain", Usage: "probability a dead-dead event spawns a live piece"},
				cli.IntFlag{Name: "garbage", Usage: "starting garbage (dead) bases"},
				cli.IntFlag{Name: "linear", Usage: "starting number of linear contigs", Value: 1},
				cli.IntFlag{Name: "circular", Usage: "starting number of circular contigs"},
				cli.IntFlag{Name: "replicates", Usage: "number of independent replicates", Value: 1},
				cli.IntFlag{Name: "bin-size", Usage: "histogram bin size", Value: 1},
				cli.Int64Flag{Name: "seed", Usage: "master RNG seed", Value: 1},
			},
			Action: func(c *cli.Context) error {
				exp := contigsim.NewExperiment(c.Int64("seed"))
				exp.Replicates = c.Int("replicates")
				exp.BinSize = c.Int("bin-size")
				exp.AddParameterSet(c.Float64("t"), c.Int("N"), c.Float64("rll"), c.Float64("rld"),
					c.Float64("rdd"), c.Float64("fl"), c.Float64("fg"), c.Float64("pgain"))
				exp.AddStartingState(c.Int("garbage"), c.Int("linear"), c.Int("circular"))

				results, err := exp.Run(context.Background())
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				for key, records := range results {
					fmt.Printf("%+v: %d replicate(s)\n", key, len(records))
					for i, r := range records {
						fmt.Printf("  rep %d: ll=%d fg=%d fl=%d ldLoss=%d ldSwap=%d ddGain=%d ddSwap=%d\n",
							i, r.LLCount, r.FGCount, r.FLCount, r.LDLossCount, r.LDSwapCount, r.DDGainCount, r.DDSwapCount)
					}
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
