package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/1siamBot/kickoff/engine/network"
	"github.com/1siamBot/kickoff/engine/term"
)

func watch(c *cli.Context) error {
	l, err := newLogger(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := network.Dial(ctx, c.String("url"))
	if err != nil {
		return err
	}
	defer client.Close()
	h := client.Hello
	l.Debug("watching", "match", h.MatchID, "teams", h.Teams)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()
	view := term.NewView(screen, term.Pitch{Width: h.Width, Height: h.Height, Pad: h.Pad, GoalWidth: h.GoalWidth})

	msgs := make(chan *network.Message, 8)
	feedErr := make(chan error, 1)
	go pump(ctx, client.Next, msgs, feedErr)
	keys := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case keys <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-feedErr:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case ev := <-keys:
			if term.Quit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case msg := <-msgs:
			if msg.Type != network.MsgSnapshot {
				continue
			}
			view.Draw(msg.Snapshot)
			screen.Show()
		}
	}
}

// pump copies feed messages into msgs until next fails or ctx ends
func pump(ctx context.Context, next func() (*network.Message, error), msgs chan<- *network.Message, errc chan<- error) {
	for {
		msg, err := next()
		if err != nil {
			errc <- err
			return
		}
		select {
		case msgs <- msg:
		case <-ctx.Done():
			return
		}
	}
}
