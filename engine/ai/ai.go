package ai

import (
	"math"
	"sort"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
	"github.com/1siamBot/kickoff/engine/systems"
)

// Gains are expressed against a reference acceleration of 0.18, so a gain of
// 0.18 is an intent effort of 1.
const refGain = 0.18

func effort(gain float64) float64 { return gain / refGain }

// Steering gains by situation
const (
	gainChase      = 0.96 // free-ball pressers
	gainZone       = 0.11 // everyone else off the ball
	gainSupport    = 0.12 // teammates of the carrier
	gainDribble    = 0.13 // carrier with nothing better to do
	gainLane       = 0.13 // secondary presser cutting the passing lane
	gainBlock      = 0.14 // centre backs between ball and owner
	gainCloseDown  = 0.98 // midfielders and full backs on the ball
	gainPress      = 1.03 // primary presser against the carrier
	gainKeeperLine = 0.18
)

// AISystem writes an intent for every AI-driven player during open play
type AISystem struct{}

func (s *AISystem) Priority() int { return 5 }

func (s *AISystem) Update(m *core.Match, dt float64) {
	if m.Phase != core.PhasePlay {
		return
	}
	for _, p := range m.AllPlayers() {
		if p.IsHuman() || p.Frozen {
			continue
		}
		p.Intent = Decide(m, p).Sanitize(m.Tune.Player.MaxEffort)
	}
}

// Strategy is one role's behaviour in the two situations that differ by role
type Strategy struct {
	WithBall func(m *core.Match, p *core.Player) core.Intent
	Defend   func(m *core.Match, p *core.Player) core.Intent
}

// Strategies is indexed by role. The keeper entry is unused; keepers run
// their own logic in every situation.
var Strategies = func() (s [core.RoleCount]Strategy) {
	for r := range s {
		s[r] = strategyFor(core.Role(r))
	}
	return s
}()

func strategyFor(r core.Role) Strategy {
	switch {
	case r.IsKeeper():
		return Strategy{WithBall: distribute, Defend: distribute}
	case r.IsCentreBack():
		return Strategy{WithBall: recycle, Defend: blockLane}
	case r.IsDeep():
		return Strategy{WithBall: recycle, Defend: closeDown}
	case r.IsWinger():
		return Strategy{WithBall: throughOrCarry, Defend: press}
	}
	return Strategy{WithBall: shootOrCarry, Defend: press}
}

// Decide returns what p wants to do this step. It reads the match and the
// random source only; it never changes player or ball state.
func Decide(m *core.Match, p *core.Player) core.Intent {
	if p.Role.IsKeeper() {
		return keeper(m, p)
	}
	b := m.Ball
	switch {
	case b.IsFree():
		return freeBall(m, p)
	case b.Owner == p:
		return Strategies[p.Role].WithBall(m, p)
	case b.Owner.Team == p.Team:
		return core.Steer(p.Pos, SupportTarget(m, p), effort(gainSupport))
	}
	return Strategies[p.Role].Defend(m, p)
}

// Pressers returns the two non-keepers of t nearest the ball
func Pressers(t *core.Team, ball geom.Vec2) (primary, secondary *core.Player) {
	c := make([]*core.Player, 0, len(t.Players))
	for _, p := range t.Players {
		if !p.Role.IsKeeper() && !p.Frozen {
			c = append(c, p)
		}
	}
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Pos.Dist(ball) < c[j].Pos.Dist(ball)
	})
	if len(c) > 0 {
		primary = c[0]
	}
	if len(c) > 1 {
		secondary = c[1]
	}
	return primary, secondary
}

func freeBall(m *core.Match, p *core.Player) core.Intent {
	a, b := Pressers(p.Team, m.Ball.Pos)
	if p == a || p == b {
		return core.Steer(p.Pos, m.Ball.Pos, effort(gainChase))
	}
	return core.Steer(p.Pos, SupportTarget(m, p), effort(gainZone))
}

// recycle is the deep roles' short pass
func recycle(m *core.Match, p *core.Player) core.Intent {
	return core.Intent{Pass: true}
}

// throughOrCarry plays a through ball when a runner is in the cone, and
// otherwise behaves like a forward.
func throughOrCarry(m *core.Match, p *core.Player) core.Intent {
	if _, ok := systems.BestPassTarget(m, p, true); ok {
		return core.Intent{Pass: true, Through: true}
	}
	return shootOrCarry(m, p)
}

// shootOrCarry shoots inside range and dribbles on toward the support spot
// otherwise.
func shootOrCarry(m *core.Match, p *core.Player) core.Intent {
	dir := p.Team.Side.Dir()
	gx := m.AttackGoalX(p.Team) - dir*m.Tune.Field.Pad
	if math.Abs(gx-p.Pos.X) < m.Tune.Shot.Range {
		return core.Intent{
			Shoot:  true,
			Charge: geom.RandRange(m.Rand, m.Tune.Shot.ChargeMin, m.Tune.Shot.ChargeMax),
			Aim:    p.Facing,
		}
	}
	return core.Steer(p.Pos, SupportTarget(m, p), effort(gainDribble))
}

func withTackle(m *core.Match, p *core.Player, in core.Intent) core.Intent {
	in.Tackle = p.DistBall(m.Ball) < p.Profile.Reach
	return in
}

// blockLane sits between the carrier and the ball
func blockLane(m *core.Match, p *core.Player) core.Intent {
	mid := m.Ball.Owner.Pos.Mid(m.Ball.Pos)
	return withTackle(m, p, core.Steer(p.Pos, mid, effort(gainBlock)))
}

func closeDown(m *core.Match, p *core.Player) core.Intent {
	return withTackle(m, p, core.Steer(p.Pos, m.Ball.Pos, effort(gainCloseDown)))
}

// press splits the forwards: the nearest goes at the ball, the next covers
// the lane, the rest hold their zone.
func press(m *core.Match, p *core.Player) core.Intent {
	a, b := Pressers(p.Team, m.Ball.Pos)
	var in core.Intent
	switch p {
	case a:
		in = core.Steer(p.Pos, m.Ball.Pos, effort(gainPress))
	case b:
		in = core.Steer(p.Pos, m.Ball.Owner.Pos.Mid(m.Ball.Pos), effort(gainLane))
	default:
		in = core.Steer(p.Pos, SupportTarget(m, p), effort(gainZone))
	}
	return withTackle(m, p, in)
}
