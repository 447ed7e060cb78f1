package ai

import (
	"math"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// keeper holds the goal line tracking the ball's height, punches shots it
// cannot catch and distributes after a short hold.
func keeper(m *core.Match, p *core.Player) core.Intent {
	b := m.Ball
	if p.HasBall(b) {
		return distribute(m, p)
	}
	kt := &m.Tune.Keeper
	line := m.Tune.GoalLineX(p.Team.Side)
	target := geom.V(
		line+p.Team.Side.Dir()*kt.LineOffset,
		geom.Clamp(b.Pos.Y, m.Tune.GoalTop()+10, m.Tune.GoalBottom()-10),
	)
	in := core.Steer(p.Pos, target, effort(gainKeeperLine))
	in.Punch = ShouldPunch(m, p)
	return in
}

// distribute releases the ball with a short pass once the hold time is up
func distribute(m *core.Match, p *core.Player) core.Intent {
	if !p.HasBall(m.Ball) || m.Clock-m.Ball.OwnedAt <= m.Tune.Keeper.HoldTime {
		return core.Intent{}
	}
	return core.Intent{Pass: true}
}

// ShouldPunch reports a fast free ball heading at p's goal, close to p, whose
// path would pass outside p's catching reach.
func ShouldPunch(m *core.Match, p *core.Player) bool {
	b := m.Ball
	kt := &m.Tune.Keeper
	if !b.IsFree() {
		return false
	}
	line := m.Tune.GoalLineX(p.Team.Side)
	if math.Abs(b.Pos.X-line) > kt.PunchZone {
		return false
	}
	speed := b.Vel.Len()
	if speed <= kt.PunchSpeed || p.DistBall(b) >= kt.PunchDist {
		return false
	}
	// heading toward the own goal line
	if b.Vel.X*p.Team.Side.Dir() >= 0 {
		return false
	}
	// perpendicular distance from the keeper to the ball's line of travel
	n := b.Vel.Scale(1 / speed)
	off := p.Pos.Sub(b.Pos)
	miss := math.Abs(off.X*n.Y - off.Y*n.X)
	return miss > m.Tune.Player.GrabDist+kt.GrabBonus
}
