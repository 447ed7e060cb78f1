package network

import (
	"context"
	"time"

	"github.com/1siamBot/kickoff/engine/core"
)

// StreamOptions paces a served match
type StreamOptions struct {
	// Step is the wall time per simulation step; 0 uses the match step
	Step time.Duration
	// SnapshotEvery sends one snapshot per this many steps (2 = 30 Hz)
	SnapshotEvery int
	// Loop restarts the match after full time when set
	Loop func() *core.Match
}

// Stream owns m: it steps it in real time, forwards every event and a
// periodic snapshot to the hub. It returns the last match when ctx is done,
// or when m reaches full time and Loop is nil.
func Stream(ctx context.Context, m *core.Match, hub *Hub, o StreamOptions) *core.Match {
	if o.Step <= 0 {
		o.Step = time.Duration(m.Tune.Match.Step * float64(time.Second))
	}
	if o.SnapshotEvery < 1 {
		o.SnapshotEvery = 2
	}
	wire := func(m *core.Match) {
		m.Events.OnAny(func(e core.Event) {
			if err := hub.Broadcast(&Message{Type: MsgEvent, Event: &e}); err != nil {
				m.Log.Debug("event not sent", "type", e.Type, "err", err)
			}
		})
	}
	wire(m)

	ticker := time.NewTicker(o.Step)
	defer ticker.Stop()
	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			return m
		case <-ticker.C:
		}
		m.AdvanceStep(m.Tune.Match.Step)
		if n%o.SnapshotEvery == 0 || m.Phase == core.PhaseFullTime {
			snap := m.Snapshot()
			if err := hub.Broadcast(&Message{Type: MsgSnapshot, Snapshot: &snap}); err != nil {
				m.Log.Warn("snapshot not sent", "err", err)
				return m
			}
		}
		if m.Phase != core.PhaseFullTime {
			continue
		}
		if o.Loop == nil {
			return m
		}
		m = o.Loop()
		wire(m)
		if err := hub.SetHello(HelloFor(m)); err != nil {
			m.Log.Warn("hello not updated", "err", err)
		}
		m.Log.Info("next match", "match", m.ID)
	}
}
