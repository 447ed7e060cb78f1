package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/network"
	"github.com/1siamBot/kickoff/engine/sim"
)

func serve(c *cli.Context) error {
	l, err := newLogger(c)
	if err != nil {
		return err
	}
	opts, _, err := matchOptions(c, l)
	if err != nil {
		return err
	}
	opts = append(opts, sim.WithHumans(0))
	m := sim.New(opts...)

	hub, err := network.NewHub(l, network.HelloFor(m))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &http.Server{Addr: c.String("addr"), Handler: hub}
	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- errors.Wrapf(err, "listen %s", srv.Addr)
			stop()
		}
	}()
	l.Info("serving spectators", "addr", srv.Addr)

	last := network.Stream(ctx, m, hub, network.StreamOptions{
		SnapshotEvery: 2,
		Loop:          func() *core.Match { return sim.New(opts...) },
	})

	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	hub.Close()
	if err := srv.Shutdown(shutdown); err != nil {
		l.Warn("shutdown", "err", err)
	}
	select {
	case err := <-errc:
		return err
	default:
	}
	l.Info("stopped", "score", last.Score(), "dropped", hub.Dropped())
	return nil
}
