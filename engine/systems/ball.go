package systems

import (
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// BallSystem moves the ball, awards goals and raises out-of-bounds restarts
type BallSystem struct{}

func (s *BallSystem) Priority() int { return 50 }

func (s *BallSystem) Update(m *core.Match, dt float64) {
	if !live(m) {
		return
	}
	b := m.Ball
	b.PickupCD = geom.Approach(b.PickupCD, dt)
	b.AssistT = geom.Approach(b.AssistT, dt)
	if b.AssistT == 0 {
		b.AssistTo = nil
	}

	if o := b.Owner; o != nil {
		b.Prev = b.Pos
		if r := m.Restart; r != nil && r.Taker == o {
			b.Pos = r.Pos
		} else {
			lead := o.Facing.NormOr(geom.V(o.Team.Side.Dir(), 0))
			b.Pos = o.Pos.Add(lead.Scale(m.Tune.Ball.DribbleLead))
		}
		b.Vel = geom.Vec2{}
		b.Curve = geom.Vec2{}
		return
	}

	b.Prev = b.Pos
	b.Pos = b.Pos.Add(b.Vel)
	if !b.Curve.IsZero() {
		b.Vel = b.Vel.Add(b.Curve)
		b.Curve = b.Curve.Scale(b.CurveDecay)
	}
	b.Vel = b.Vel.Scale(m.Tune.Ball.Friction * b.Friction)

	if s.sweepGoals(m) {
		return
	}
	s.checkOut(m)
}

// sweepGoals tests the step's path against both goal mouths, left goal
// first. A crossing of both in one step counts for the left goal only.
func (s *BallSystem) sweepGoals(m *core.Match) bool {
	b := m.Ball
	top, bot := m.Tune.GoalTop(), m.Tune.GoalBottom()
	for _, def := range [...]core.Side{core.Left, core.Right} {
		if geom.SegmentCrossesX(b.Prev, b.Pos, m.Tune.GoalLineX(def), top, bot) {
			return m.ScoreGoal(m.Teams[def.Opp()])
		}
	}
	return false
}

// checkOut raises a throw-in, corner or goal kick once the ball's centre
// leaves the field, debounced by OutCooldown.
func (s *BallSystem) checkOut(m *core.Match) {
	b := m.Ball
	f := m.Tune.Bounds()
	if f.Contains(b.Pos) || m.Clock < m.OutCooldownUntil {
		return
	}
	m.OutCooldownUntil = m.Clock + m.Tune.Restart.OutCooldown
	r := b.Radius
	half := m.Tune.Center()

	switch {
	case b.Pos.Y < f.Min.Y || b.Pos.Y > f.Max.Y:
		// side line: the other team of the last toucher throws in
		var award *core.Team
		if b.LastTouch != nil {
			award = b.LastTouch.Opp
		} else {
			award = m.Teams[defenderOfHalf(b.Pos.X, half.X)]
		}
		y := f.Min.Y + r
		if b.Pos.Y > f.Max.Y {
			y = f.Max.Y - r
		}
		pad := m.Tune.Field.Pad
		pos := geom.V(geom.Clamp(b.Pos.X, f.Min.X+pad, f.Max.X-pad), y)
		m.StartRestart(core.ThrowIn, award, outfieldTaker(award, pos), pos)

	default:
		// end line
		def := core.Left
		x := f.Min.X + r
		if b.Pos.X > f.Max.X {
			def = core.Right
			x = f.Max.X - r
		}
		defender := m.Teams[def]
		if b.LastTouch == defender {
			y := f.Min.Y + r
			if b.Pos.Y >= half.Y {
				y = f.Max.Y - r
			}
			pos := geom.V(x, y)
			m.StartRestart(core.Corner, defender.Opp, outfieldTaker(defender.Opp, pos), pos)
			return
		}
		gk := defender.Keeper()
		if gk == nil {
			gk = defender.Players[0]
		}
		pos := geom.V(gk.Home.X, half.Y)
		m.StartRestart(core.GoalKick, defender, gk, pos)
	}
}

func defenderOfHalf(x, halfX float64) core.Side {
	if x < halfX {
		return core.Left
	}
	return core.Right
}

// outfieldTaker is the non-keeper of t nearest pos
func outfieldTaker(t *core.Team, pos geom.Vec2) *core.Player {
	if p := t.Nearest(pos, func(p *core.Player) bool { return !p.Role.IsKeeper() }); p != nil {
		return p
	}
	return t.Players[0]
}
