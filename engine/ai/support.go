package ai

import (
	"math"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// SupportTarget is p's off-the-ball spot: an offset from the ball for the
// midfield and attack, a pull toward a fixed line for the back four. The
// result is kept onside.
func SupportTarget(m *core.Match, p *core.Player) geom.Vec2 {
	side := p.Team.Side
	dir := side.Dir()
	b := m.Ball.Pos
	w, h := m.Tune.Field.Width, m.Tune.Field.Height
	t := p.Home

	// mirror an X measured from the own end line of the canvas
	own := func(x float64) float64 {
		if side == core.Left {
			return x
		}
		return w - x
	}
	// pick the wing height for the left team, swapped for the right
	wing := func(l, r float64) float64 {
		if side == core.Left {
			return h * l
		}
		return h * r
	}

	switch p.Role {
	case core.ST:
		t = geom.V(b.X+110*dir, geom.Lerp(t.Y, b.Y, 0.30))
	case core.LW:
		t = geom.V(b.X+90*dir, wing(0.22, 0.78))
	case core.RW:
		t = geom.V(b.X+90*dir, wing(0.78, 0.22))
	case core.CAM:
		t = geom.V(b.X+34*dir, geom.Lerp(t.Y, b.Y, 0.30))
	case core.CM:
		t = geom.V(b.X+16*dir, geom.Lerp(t.Y, b.Y, 0.22))
	case core.CDM:
		t = geom.V(b.X-10*dir, geom.Lerp(t.Y, b.Y, 0.20))
	case core.LCB, core.RCB:
		t = geom.V(geom.Lerp(t.X, own(200), 0.85), geom.Lerp(t.Y, h*0.5, 0.12))
	case core.LB:
		t = geom.V(geom.Lerp(t.X, own(220), 0.85), geom.Lerp(t.Y, h*0.72, 0.12))
	case core.RB:
		t = geom.V(geom.Lerp(t.X, own(220), 0.85), geom.Lerp(t.Y, h*0.28, 0.12))
	}
	return m.Tune.PlayArea().ClampPoint(StayOnside(m, p.Team, t))
}

// StayOnside pulls a target in the attacking half back to 10 px short of
// the offside line, or of the ball when the ball is further forward.
func StayOnside(m *core.Match, t *core.Team, target geom.Vec2) geom.Vec2 {
	dir := t.Side.Dir()
	if target.X*dir <= m.Tune.Center().X*dir {
		return target
	}
	const margin = 10
	if t.IsOffside(target.X+margin*dir, m.Ball.Pos.X, m.Tune.Center().X) {
		target.X = (math.Max(t.OffsideLine()*dir, m.Ball.Pos.X*dir) - margin) * dir
	}
	return target
}
