package systems

import (
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// FlowSystem advances the match clock, ends the goal pause with a kickoff and
// blows full time.
type FlowSystem struct{}

func (s *FlowSystem) Priority() int { return 70 }

func (s *FlowSystem) Update(m *core.Match, dt float64) {
	switch {
	case m.Phase == core.PhaseFullTime:
		return
	case m.Phase == core.PhaseGoalPause:
		m.Clock += dt
		if m.Clock >= m.PauseUntil {
			m.ResetAfterGoal(m.KickoffSide)
		}
		return
	}

	m.Clock += dt
	if m.Tune.Match.Length <= 0 {
		return
	}
	m.Remaining -= dt
	if m.Remaining > 0 {
		return
	}
	m.Remaining = 0
	if m.Transition(core.TrigFullTime) {
		m.Restart = nil
		for _, p := range m.AllPlayers() {
			p.Frozen = false
			p.Vel = geom.Vec2{}
		}
		m.Log.Info("full time", "score", m.Score())
		m.Events.Emit(core.Event{Type: core.EvtFullTime, Tick: m.TickCount, Detail: m.Score()})
	}
}
