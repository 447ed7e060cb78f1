package systems

import (
	"math"

	"github.com/1siamBot/kickoff/engine/core"
)

// MovementSystem clamps speed, integrates positions and keeps players on the
// pitch and out of the goal mouths.
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 30 }

func (s *MovementSystem) Update(m *core.Match, dt float64) {
	if !live(m) {
		return
	}
	area := m.Tune.PlayArea()
	for _, p := range m.AllPlayers() {
		if p.Frozen {
			continue
		}
		p.Vel = p.Vel.ClampLen(p.MaxSpeed(&m.Tune.Player, p.HasBall(m.Ball)))
		p.Pos = area.ClampPoint(p.Pos.Add(p.Vel))
		KeepOutOfGoals(&m.Tune, p)
	}
}

// KeepOutOfGoals pushes p out of either goal volume. Inside the mouth's Y
// range X may come no closer than GoalKeepOut to a goal line, and velocity
// into the goal is dropped.
func KeepOutOfGoals(t *core.Tuning, p *core.Player) {
	if p.Pos.Y < t.GoalTop() || p.Pos.Y > t.GoalBottom() {
		return
	}
	left := t.GoalLineX(core.Left) + t.Field.GoalKeepOut
	right := t.GoalLineX(core.Right) - t.Field.GoalKeepOut
	if p.Pos.X < left {
		p.Pos.X = left
		p.Vel.X = math.Max(0, p.Vel.X)
	}
	if p.Pos.X > right {
		p.Pos.X = right
		p.Vel.X = math.Min(0, p.Vel.X)
	}
}
