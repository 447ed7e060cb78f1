package systems

import (
	"sort"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// ContactSystem resolves same-team overlap, damps carried velocity, runs
// the tackle cooldowns and hands a free ball to the nearest eligible player.
type ContactSystem struct{}

func (s *ContactSystem) Priority() int { return 40 }

func (s *ContactSystem) Update(m *core.Match, dt float64) {
	if !live(m) {
		return
	}
	pt := &m.Tune.Player
	all := m.AllPlayers()
	Separate(all, pt.SeparationRadius, pt.SeparationGain, pt.SeparationSlop)

	area := m.Tune.PlayArea()
	for _, p := range all {
		if !p.Frozen {
			p.Pos = area.ClampPoint(p.Pos)
			KeepOutOfGoals(&m.Tune, p)
		}
		p.Vel = p.Vel.Scale(pt.CarryDamping)
		p.TackleCD = geom.Approach(p.TackleCD, dt)
	}

	if prot := m.Ball.Protect; prot != nil && m.Clock >= prot.Until {
		m.Ball.Protect = nil
	}
	if p := Claim(m); p != nil {
		m.Ball.Attach(p, m.Clock)
		m.PossessionChanged()
	}
}

// Separate pushes overlapping teammates apart along their centre line by
// gain*(radius-d) each. A gap smaller than slop is closed outright so pairs
// settle at exactly radius. Frozen players do not move; their partner takes
// the whole correction.
func Separate(players []*core.Player, radius, gain, slop float64) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			a, b := players[i], players[j]
			if a.Team != b.Team || (a.Frozen && b.Frozen) {
				continue
			}
			delta := a.Pos.Sub(b.Pos)
			d := delta.Len()
			if d >= radius {
				continue
			}
			// coincident players split along x, lower index to the right
			n := delta.NormOr(geom.V(1, 0))
			gap := radius - d
			push := gap * gain
			if gap < slop || 2*push > gap {
				push = gap / 2
			}
			switch {
			case a.Frozen:
				b.Pos = b.Pos.Sub(n.Scale(2 * push))
			case b.Frozen:
				a.Pos = a.Pos.Add(n.Scale(2 * push))
			default:
				a.Pos = a.Pos.Add(n.Scale(push))
				b.Pos = b.Pos.Sub(n.Scale(push))
			}
		}
	}
}

// Claim returns the player that picks up a free ball this step, or nil. The
// nearest eligible player within grab distance wins; a keeper outside the own
// box fumbles with MissChance and the next candidate is tried.
func Claim(m *core.Match) *core.Player {
	b := m.Ball
	if !b.IsFree() || b.PickupCD > 0 {
		return nil
	}
	type cand struct {
		p *core.Player
		d float64
	}
	var cs []cand
	for _, p := range m.AllPlayers() {
		if p.Frozen {
			continue
		}
		if b.Protect != nil && p.Team != b.Protect.Team {
			continue
		}
		reach := m.Tune.Player.GrabDist
		if p.Role.IsKeeper() {
			reach += m.Tune.Keeper.GrabBonus
		}
		if d := p.DistBall(b); d < reach {
			cs = append(cs, cand{p, d})
		}
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].d < cs[j].d })
	for _, c := range cs {
		if c.p.Role.IsKeeper() && !m.Tune.KeeperBox(c.p.Team.Side).Contains(c.p.Pos) {
			if m.Rand.Float64() < m.Tune.Keeper.MissChance {
				m.Log.Debug("keeper fumble", "team", c.p.Team.Name)
				continue
			}
		}
		return c.p
	}
	return nil
}
