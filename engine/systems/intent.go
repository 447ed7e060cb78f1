package systems

import (
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// IntentSystem blends each player's intent into its velocity and facing
type IntentSystem struct{}

func (s *IntentSystem) Priority() int { return 10 }

func (s *IntentSystem) Update(m *core.Match, dt float64) {
	if !live(m) {
		return
	}
	pt := &m.Tune.Player
	for _, p := range m.AllPlayers() {
		in := p.Intent
		if p.Frozen {
			p.Vel = geom.Vec2{}
			// a human taker may still turn to aim
			if r := m.Restart; r != nil && r.Taker == p && p.IsHuman() && !in.Move.IsZero() {
				p.Facing = in.Move.Norm()
			}
			continue
		}
		accel := pt.AccelBase * p.Profile.Speed * in.Effort
		if p.HasBall(m.Ball) {
			accel *= pt.DribbleAccelFactor
		}
		p.Vel = p.Vel.Scale(pt.IntentDamping).Add(in.Move.Scale(accel))
		if !in.Move.IsZero() {
			p.Facing = in.Move.Norm()
		}
	}
}
