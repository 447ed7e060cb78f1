package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/sim"
)

func headless(c *cli.Context) error {
	l, err := newLogger(c)
	if err != nil {
		return err
	}
	opts, t, err := matchOptions(c, l)
	if err != nil {
		return err
	}
	m := sim.New(append(opts, sim.WithHumans(0))...)

	counts := map[core.EventType]int{}
	m.Events.OnAny(func(e core.Event) {
		counts[e.Type]++
		if e.Type == core.EvtGoal {
			l.Info("goal", "team", e.Team, "score", e.Detail, "clock", fmt.Sprintf("%.1f", m.Clock))
		}
	})

	seconds := c.Float64("seconds")
	if seconds <= 0 {
		seconds = t.Match.Length
	}
	if seconds <= 0 {
		return errors.New("sim: a match without a length needs --seconds")
	}
	steps := sim.Run(m, seconds)

	a, b := m.Teams[core.Left], m.Teams[core.Right]
	score := fmt.Sprintf("%s %d - %d %s", a.Name, a.Score, b.Score, b.Name)
	switch {
	case a.Score > b.Score:
		score = chalk.Blue.Color(score)
	case b.Score > a.Score:
		score = chalk.Red.Color(score)
	default:
		score = chalk.Yellow.Color(score)
	}
	fmt.Println(chalk.Bold.TextStyle(score))
	fmt.Printf("%d steps, %.1fs  passes %d  shots %d  tackles %d  restarts %d\n",
		steps, m.Clock, counts[core.EvtPass], counts[core.EvtShot], counts[core.EvtTackle], counts[core.EvtRestart])
	return nil
}
