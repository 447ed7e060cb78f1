package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/input"
	"github.com/1siamBot/kickoff/engine/render"
	"github.com/1siamBot/kickoff/engine/sim"
	"github.com/1siamBot/kickoff/engine/ui"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
)

// Game implements ebiten.Game interface
type Game struct {
	renderer *render.PitchRenderer
	menu     *ui.Menu
	gameLoop *core.GameLoop
	input    *input.InputState
	newMatch func(humans int) *core.Match
	humans   int
	alpha    float64
}

// NewGame opens on the title menu with a computer-only match behind it
func NewGame(t core.Tuning, newMatch func(humans int) *core.Match) *Game {
	g := &Game{
		renderer: render.NewPitchRenderer(ScreenWidth, ScreenHeight, t),
		menu:     ui.NewMenu(ScreenWidth, ScreenHeight),
		input:    input.NewInputState(t.Input),
		newMatch: newMatch,
	}
	g.start(0)
	return g
}

func (g *Game) start(humans int) {
	g.humans = humans
	g.gameLoop = core.NewGameLoop(g.newMatch(humans))
	g.input.Reset()
	g.gameLoop.Play()
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	switch g.menu.Update(dt) {
	case ui.ActQuit:
		return ebiten.Termination
	case ui.ActStart1P:
		g.start(1)
	case ui.ActStart2P:
		g.start(2)
	case ui.ActWatch:
		g.start(0)
	case ui.ActRestart:
		g.start(g.humans)
	case ui.ActTitle:
		g.start(0)
	}
	if g.input.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.Debug = !g.renderer.Debug
	}

	m := g.gameLoop.Match
	switch g.menu.State {
	case ui.StatePaused, ui.StateFullTime:
		g.gameLoop.Pause()
	default:
		if g.gameLoop.State == core.StatePaused {
			g.gameLoop.Play()
		}
	}
	if g.menu.State == ui.StatePlaying {
		g.input.Update(m, dt)
	}
	g.alpha = g.gameLoop.Update()

	if m.Phase == core.PhaseFullTime {
		if g.menu.State == ui.StateTitle {
			g.start(0)
		} else if g.menu.State == ui.StatePlaying {
			g.menu.Finish(fmt.Sprintf("%d - %d", m.Teams[core.Left].Score, m.Teams[core.Right].Score))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.gameLoop.Match.Snapshot()
	g.renderer.Draw(screen, &snap, g.alpha, [2]input.Gauge{g.input.Gauge(0), g.input.Gauge(1)})
	g.menu.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.Resize(outsideWidth, outsideHeight)
	g.menu.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func play(c *cli.Context) error {
	l, err := newLogger(c)
	if err != nil {
		return err
	}
	opts, t, err := matchOptions(c, l)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Kickoff")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(t, func(humans int) *core.Match {
		return sim.New(append(opts, sim.WithHumans(humans))...)
	})
	if err := ebiten.RunGame(game); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
