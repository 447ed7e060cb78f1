package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/1siamBot/kickoff/engine/config"
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/sim"
)

const version = "0.3.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal("kickoff", "err", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kickoff"
	app.Usage = "two-team arcade football"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
	}

	matchFlags := []cli.Flag{
		cli.StringFlag{Name: "tuning", Usage: "TOML file overriding the default constants"},
		cli.StringFlag{Name: "upgrades", Usage: "TOML file with per-player upgrade tiers"},
		cli.Int64Flag{Name: "seed", Usage: "Random seed; 0 picks one"},
		cli.Float64Flag{Name: "length", Value: -1, Usage: "Match length in seconds; 0 plays forever"},
	}

	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "Play in a window against the computer or a friend",
			Flags:  matchFlags,
			Action: play,
		},
		{
			Name:   "sim",
			Usage:  "Run a computer-only match headless and print the result",
			Flags:  append([]cli.Flag{cli.Float64Flag{Name: "seconds", Usage: "Stop after this much match time; 0 runs to full time"}}, matchFlags...),
			Action: headless,
		},
		{
			Name:   "serve",
			Usage:  "Stream computer-only matches to websocket spectators",
			Flags:  append([]cli.Flag{cli.StringFlag{Name: "addr", Value: ":8090", Usage: "Listen address"}}, matchFlags...),
			Action: serve,
		},
		{
			Name:  "watch",
			Usage: "Watch a served match in the terminal",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "url", Value: "ws://localhost:8090/", Usage: "Spectator feed"},
			},
			Action: watch,
		},
	}

	return app
}

func newLogger(c *cli.Context) (*log.Logger, error) {
	lvl, err := log.ParseLevel(c.GlobalString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "kickoff",
	}), nil
}

// matchOptions reads the shared match flags into sim options
func matchOptions(c *cli.Context, l *log.Logger) ([]sim.Option, core.Tuning, error) {
	t, err := config.LoadTuning(c.String("tuning"))
	if err != nil {
		return nil, t, err
	}
	if n := c.Float64("length"); n >= 0 {
		t.Match.Length = n
	}
	opts := []sim.Option{sim.WithTuning(t), sim.WithLogger(l)}
	if seed := c.Int64("seed"); seed != 0 {
		opts = append(opts, sim.WithSeed(seed))
	}
	if path := c.String("upgrades"); path != "" {
		u, err := config.LoadUpgrades(path)
		if err != nil {
			return nil, t, err
		}
		opts = append(opts, sim.WithUpgrades(u))
	}
	return opts, t, nil
}
