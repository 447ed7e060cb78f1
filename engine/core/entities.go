package core

import (
	"math"

	"github.com/1siamBot/kickoff/engine/geom"
)

// Controller tags who drives a player
type Controller uint8

const (
	ControlNone Controller = iota
	ControlHuman1
	ControlHuman2
	controllerCount
)

// Protection makes the ball claimable only by Team until Until (match seconds)
type Protection struct {
	Team  *Team
	Until float64
}

// Ball is the single match ball. Owner is nil or one player; while owned the
// ball has no velocity of its own and sits ahead of the owner's facing.
type Ball struct {
	Pos    geom.Vec2
	Prev   geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Owner  *Player

	Curve      geom.Vec2
	CurveDecay float64
	PickupCD   float64
	Friction   float64 // per-kick multiplier on base friction
	LastTouch  *Team
	AssistTo   *Player
	AssistT    float64
	Protect    *Protection
	OwnedAt    float64
}

func (b *Ball) IsFree() bool { return b.Owner == nil }

// Attach gives the ball to p and zeroes its own motion
func (b *Ball) Attach(p *Player, now float64) {
	b.Owner = p
	b.Vel = geom.Vec2{}
	b.Curve = geom.Vec2{}
	b.Friction = 1
	b.AssistTo = nil
	b.AssistT = 0
	b.LastTouch = p.Team
	b.OwnedAt = now
}

// Kick releases the ball toward to at speed with a per-kick friction multiplier
func (b *Ball) Kick(to geom.Vec2, speed, friction, cooldown float64) {
	b.Owner = nil
	b.PickupCD = cooldown
	b.Vel = to.Sub(b.Pos).Norm().Scale(speed)
	b.Curve = geom.Vec2{}
	b.Friction = friction
	if b.Friction == 0 {
		b.Friction = 1
	}
}

// Knock is an instantaneous impulse that clears ownership
func (b *Ball) Knock(dir geom.Vec2, speed, cooldown float64) {
	b.Owner = nil
	b.PickupCD = cooldown
	b.Vel = dir.Norm().Scale(speed)
	b.Curve = geom.Vec2{}
	b.Friction = 1
}

// Player is a plain record; behaviour lives in the ai and systems packages
type Player struct {
	Team   *Team
	Role   Role
	Number int

	Home   geom.Vec2
	Pos    geom.Vec2
	Vel    geom.Vec2
	Facing geom.Vec2
	Radius float64

	Controller Controller
	TackleCD   float64
	Frozen     bool

	Base    Profile
	Profile Profile // Base x team upgrade x individual upgrade
	Upgrade Upgrade

	// Intent is this step's input, written by a human device or the AI
	Intent Intent
}

// IsHuman reports whether a human device drives p
func (p *Player) IsHuman() bool { return p.Controller != ControlNone }

func (p *Player) HasBall(b *Ball) bool { return b.Owner == p }

func (p *Player) DistBall(b *Ball) float64 { return p.Pos.Dist(b.Pos) }

// RecomputeProfile refreshes the effective profile; call only when upgrades change
func (p *Player) RecomputeProfile(t UpgradeTuning) {
	p.Profile = p.Base.mul(p.Team.Upgrade.Multipliers(t)).mul(p.Upgrade.Multipliers(t))
}

// MaxSpeed is the clamp applied after intent blending
func (p *Player) MaxSpeed(t *PlayerTuning, dribbling bool) float64 {
	v := t.MaxSpeedBase * p.Profile.Speed * t.MaxSpeedScale
	if dribbling {
		v *= t.DribbleSpeedFactor
	}
	return v
}

func (p *Player) reset() {
	p.Pos = p.Home
	p.Vel = geom.Vec2{}
	p.Facing = geom.V(p.Team.Side.Dir(), 0)
	p.TackleCD = 0
	p.Frozen = false
	p.Intent = Intent{}
}

// Team is one side's roster and score
type Team struct {
	Name    string
	Side    Side
	Players []*Player
	Score   int
	Opp     *Team
	Upgrade Upgrade
}

// Spawn creates the eleven players from Formation, mirrored by side
func (t *Team) Spawn(tu *Tuning) {
	t.Players = t.Players[:0]
	for i, s := range Formation {
		x := s.X
		if t.Side == Right {
			x = tu.Field.Width - s.X
		}
		p := &Player{
			Team:   t,
			Role:   s.Role,
			Number: i + 1,
			Home:   geom.V(x, tu.Field.Height*s.YFr),
			Radius: tu.Player.Radius,
			Base:   RoleProfiles[s.Role],
		}
		p.reset()
		p.RecomputeProfile(tu.Upgrade)
		t.Players = append(t.Players, p)
	}
}

// ByRole returns the first player with role r
func (t *Team) ByRole(r Role) *Player {
	for _, p := range t.Players {
		if p.Role == r {
			return p
		}
	}
	return nil
}

func (t *Team) Keeper() *Player { return t.ByRole(GK) }

// Nearest returns the player closest to pt that passes keep, or nil
func (t *Team) Nearest(pt geom.Vec2, keep func(*Player) bool) *Player {
	var best *Player
	bd := math.MaxFloat64
	for _, p := range t.Players {
		if keep != nil && !keep(p) {
			continue
		}
		if d := p.Pos.Dist(pt); d < bd {
			bd, best = d, p
		}
	}
	return best
}

// NearestMate is the closest teammate of p
func (t *Team) NearestMate(p *Player) *Player {
	return t.Nearest(p.Pos, func(m *Player) bool { return m != p })
}

// NearestForSwitch picks the player a human should take over: close to the
// ball, goal-side of it, with a bonus for the forwards.
func (t *Team) NearestForSwitch(ball geom.Vec2, exclude *Player) *Player {
	var best *Player
	bs := -math.MaxFloat64
	for _, p := range t.Players {
		if p == exclude {
			continue
		}
		d := p.Pos.Dist(ball)
		toward := (ball.X - p.Pos.X) * t.Side.Dir()
		s := -d + toward*0.4
		switch p.Role {
		case ST:
			s += 10
		case CAM:
			s += 4
		}
		if s > bs {
			bs, best = s, p
		}
	}
	return best
}

// OffsideLine is the X of the opposing second-last defender, the line t's
// attackers should not run beyond.
func (t *Team) OffsideLine() float64 {
	if t.Opp == nil || len(t.Opp.Players) < 2 {
		return math.Inf(int(t.Side.Dir()))
	}
	// deepest and second deepest relative to t's attack direction
	dir := t.Side.Dir()
	first, second := math.Inf(-1), math.Inf(-1)
	for _, p := range t.Opp.Players {
		v := p.Pos.X * dir
		if v > first {
			first, second = v, first
		} else if v > second {
			second = v
		}
	}
	return second * dir
}

// IsOffside reports whether x is beyond both the offside line and the ball in
// the attacking half. Used only to bias positioning.
func (t *Team) IsOffside(x, ballX, halfX float64) bool {
	dir := t.Side.Dir()
	if x*dir <= halfX*dir {
		return false
	}
	return x*dir > t.OffsideLine()*dir && x*dir > ballX*dir
}
