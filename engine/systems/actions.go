package systems

import (
	"math"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// ActionSystem resolves the discrete triggers of every player's intent. During
// a restart only the taker acts, and the taker's pass or shot ends the restart.
type ActionSystem struct{}

func (s *ActionSystem) Priority() int { return 20 }

func (s *ActionSystem) Update(m *core.Match, dt float64) {
	if !live(m) {
		return
	}
	for _, p := range m.AllPlayers() {
		in := p.Intent
		if !in.HasAction() {
			continue
		}
		if r := m.Restart; r != nil {
			if p != r.Taker || !p.HasBall(m.Ball) {
				continue
			}
			kicked := false
			switch {
			case in.Shoot:
				kicked = Shoot(m, p, in.Charge, in.Aim)
			case in.Pass:
				kicked = PassToBest(m, p, in.Through)
			}
			if kicked {
				m.EndRestart()
			}
			continue
		}

		if in.Switch && p.IsHuman() {
			m.ManualSwitch(p.Controller)
		}
		switch {
		case in.Tackle:
			Tackle(m, p)
		case in.Punch:
			Punch(m, p)
		case in.Shoot:
			Shoot(m, p, in.Charge, in.Aim)
		case in.Pass:
			PassToBest(m, p, in.Through)
		}
	}
}

// BestPassTarget scores teammates inside the range and facing cone and
// returns the best one. ok is false when the nearest teammate was used as a
// fallback.
func BestPassTarget(m *core.Match, p *core.Player, through bool) (target *core.Player, ok bool) {
	pt := &m.Tune.Pass
	from := m.Ball.Pos
	maxRange := pt.RangeNormal
	if through {
		maxRange = pt.RangeThrough
	}
	dir := p.Facing.NormOr(geom.V(p.Team.Side.Dir(), 0))
	cone := math.Cos(pt.ConeDeg * math.Pi / 180)
	side := p.Team.Side.Dir()

	best := -math.MaxFloat64
	for _, mate := range p.Team.Players {
		if mate == p {
			continue
		}
		to := mate.Pos.Sub(from)
		d := to.Len()
		if d < pt.MinDist || d > maxRange {
			continue
		}
		dot := to.Scale(1 / d).Dot(dir)
		if dot <= cone {
			continue
		}
		score := dot * 100
		if mate.Pos.X*side > p.Pos.X*side {
			score += pt.ScoreForward
		}
		if mate.Role == core.ST {
			score += pt.ScoreStriker
		}
		if score > best {
			best, target = score, mate
		}
	}
	if target != nil {
		return target, true
	}
	return p.Team.NearestMate(p), false
}

// PassToBest passes to BestPassTarget. It is a no-op when p does not hold the
// ball or has no teammate.
func PassToBest(m *core.Match, p *core.Player, through bool) bool {
	if !p.HasBall(m.Ball) {
		return false
	}
	t, _ := BestPassTarget(m, p, through)
	if t == nil {
		return false
	}
	PassTo(m, p, t, through)
	return true
}

// PassTo kicks the ball ahead of target along its facing
func PassTo(m *core.Match, p, target *core.Player, through bool) {
	pt := &m.Tune.Pass
	b := m.Ball
	from := b.Pos
	d := target.Pos.Dist(from)
	dir := target.Pos.Sub(from).NormOr(p.Facing)

	k, lo, hi := pt.LeadNormalK, pt.LeadNormalMin, pt.LeadNormalMax
	speed, friction, assist := pt.SpeedNormal, pt.FrictionNormal, pt.AssistNormal
	if through {
		k, lo, hi = pt.LeadThroughK, pt.LeadThroughMin, pt.LeadThroughMax
		speed, friction, assist = pt.SpeedThrough, pt.FrictionThrough, pt.AssistThrough
	}
	lead := geom.Clamp(d*k, lo, hi)
	aim := target.Pos.Add(target.Facing.NormOr(dir).Scale(lead))
	aim = m.Tune.AimArea().ClampPoint(aim)
	v := geom.Clamp(aim.Dist(from)/pt.SpeedDistDiv, pt.SpeedMin, pt.SpeedMax) * speed

	b.Kick(aim, v, friction, m.Tune.Ball.KickCooldown)
	b.AssistTo = target
	b.AssistT = assist
	b.LastTouch = p.Team

	kind := "normal"
	if through {
		kind = "through"
	}
	m.Events.Emit(core.Event{Type: core.EvtPass, Tick: m.TickCount, Team: p.Team.Name, Number: p.Number, Detail: kind})
}

// ShotAimY picks the target height inside the goal mouth from the vertical
// input: centre, or most of the way to the post the input points at.
func ShotAimY(t *core.Tuning, aim geom.Vec2) float64 {
	mid := t.Field.Height / 2
	pad := t.Field.GoalWidth/2 - t.Shot.PostInset
	switch {
	case aim.Y < -t.Shot.AimDeadZone:
		return geom.Lerp(mid, mid-pad, t.Shot.AimLerp)
	case aim.Y > t.Shot.AimDeadZone:
		return geom.Lerp(mid, mid+pad, t.Shot.AimLerp)
	}
	return mid
}

// Shoot strikes at the opposing goal. Close and mid range shots fly flat;
// long range shots get a decaying lateral curve.
func Shoot(m *core.Match, p *core.Player, charge float64, aim geom.Vec2) bool {
	b := m.Ball
	if !p.HasBall(b) {
		return false
	}
	st := &m.Tune.Shot
	charge = geom.Clamp(charge, 0, 1)
	dir := p.Team.Side.Dir()
	gx := m.AttackGoalX(p.Team) + dir*st.AimBeyond
	target := geom.V(gx, ShotAimY(&m.Tune, aim))
	dGoal := math.Abs(gx - p.Pos.X)

	speed := (st.PowerMin + (st.PowerMax-st.PowerMin)*charge) * p.Profile.Shot * st.SpeedScale
	speed = math.Min(speed, st.PowerMax*st.SpeedScale*st.PowerCap)

	var curve geom.Vec2
	friction := st.FrictionLong
	switch {
	case dGoal < st.CloseRange:
		friction = st.FrictionClose
	case dGoal < st.Range:
		friction = st.FrictionMid
		speed *= st.MidBoost
	default:
		k := (st.CurveBase + st.CurveCharge*charge) * (0.8 + p.Profile.Shot*0.5) * 0.5 * dir
		curve = geom.V(dir, 0).Perp().Scale(k)
		curve.Y += st.Dip * geom.RandRange(m.Rand, 0.8, 1.2)
	}

	b.Kick(target, speed, friction, m.Tune.Ball.KickCooldown)
	b.Curve = curve
	b.LastTouch = p.Team
	b.AssistTo, b.AssistT = nil, 0
	m.Log.Debug("shot", "team", p.Team.Name, "role", p.Role, "charge", charge, "dist", dGoal)
	m.Events.Emit(core.Event{Type: core.EvtShot, Tick: m.TickCount, Team: p.Team.Name, Number: p.Number})
	return true
}

// Tackle knocks the ball away from an opposing carrier within p's reach
func Tackle(m *core.Match, p *core.Player) bool {
	b := m.Ball
	o := b.Owner
	if o == nil || o.Team == p.Team || p.TackleCD > 0 || p.DistBall(b) >= p.Profile.Reach {
		return false
	}
	dir := b.Pos.Sub(p.Pos).NormOr(p.Facing)
	b.Knock(dir, m.Tune.Tackle.Speed*p.Profile.Tackle, m.Tune.Ball.KnockCooldown)
	b.LastTouch = p.Team
	p.TackleCD = m.Tune.Tackle.Cooldown
	m.Log.Debug("tackle", "team", p.Team.Name, "role", p.Role, "victim", o.Role)
	m.Events.Emit(core.Event{Type: core.EvtTackle, Tick: m.TickCount, Team: p.Team.Name, Number: p.Number})
	return true
}

// Punch is the keeper's knock of a free ball, away from goal and biased upward
func Punch(m *core.Match, p *core.Player) bool {
	b := m.Ball
	if !p.Role.IsKeeper() || !b.IsFree() {
		return false
	}
	kt := &m.Tune.Keeper
	dir := geom.V(p.Team.Side.Dir(), geom.RandRange(m.Rand, -0.4, 0.15))
	b.Knock(dir, geom.RandRange(m.Rand, kt.PunchMin, kt.PunchMax), m.Tune.Ball.KnockCooldown)
	b.LastTouch = p.Team
	m.Events.Emit(core.Event{Type: core.EvtPunch, Tick: m.TickCount, Team: p.Team.Name, Number: p.Number})
	return true
}
