package systems

import (
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// RestartSystem runs the dead-ball sequence: frozen players hold still,
// teammates of the taker spread out, opponents close down to a standoff, and
// an AI taker kicks once its deadline passes.
type RestartSystem struct{}

func (s *RestartSystem) Priority() int { return 6 }

func (s *RestartSystem) Update(m *core.Match, dt float64) {
	r := m.Restart
	if r == nil || !m.Phase.IsRestart() {
		return
	}
	rt := &m.Tune.Restart
	f := m.Tune.Bounds()

	for _, p := range m.AllPlayers() {
		switch {
		case !r.Allowed(p):
			p.Frozen = true
			p.Vel = geom.Vec2{}
			p.Intent = core.Intent{}
		case p == r.Taker:
			p.Frozen = true
			p.Vel = geom.Vec2{}
			if !p.IsHuman() {
				p.Intent = core.Intent{}
			}
		case p.IsHuman():
			// human movers steer themselves
		case p.Team == r.Team:
			target := geom.V(
				p.Home.X+30*p.Team.Side.Dir(),
				geom.Clamp(r.Pos.Y, f.Min.Y+40, f.Max.Y-40),
			)
			p.Intent = core.Steer(p.Pos, target, rt.AllyEffort)
		default:
			if p.Pos.Dist(r.Taker.Pos) <= rt.Standoff {
				p.Intent = core.Intent{}
				continue
			}
			p.Intent = core.Steer(p.Pos, r.Taker.Pos, rt.OpponentEffort)
		}
	}

	if r.Human || r.Acted || m.Clock < r.KickAt {
		return
	}
	// AI taker: corners are crossed in with a through ball, the rest go short
	PassToBest(m, r.Taker, r.Kind == core.Corner)
	m.Log.Debug("restart auto-kick", "kind", r.Kind, "team", r.Team.Name)
	m.EndRestart()
}
