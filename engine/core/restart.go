package core

import (
	"sort"

	"github.com/1siamBot/kickoff/engine/geom"
)

// RestartKind is the kind of dead-ball restart
type RestartKind uint8

const (
	ThrowIn RestartKind = iota
	Corner
	GoalKick
)

func (k RestartKind) String() string {
	switch k {
	case ThrowIn:
		return "throw-in"
	case Corner:
		return "corner"
	case GoalKick:
		return "goal-kick"
	}
	return "unknown"
}

func (k RestartKind) trigger() Trigger {
	switch k {
	case Corner:
		return TrigCorner
	case GoalKick:
		return TrigGoalKick
	}
	return TrigThrowIn
}

// Restart is one single-shot dead-ball sequence
type Restart struct {
	Kind      RestartKind
	Team      *Team
	Taker     *Player
	Pos       geom.Vec2
	Allies    []*Player
	Opponents []*Player
	Human     bool
	KickAt    float64 // match seconds; only for AI takers
	Acted     bool
}

// Moves reports whether p may reposition during the restart
func (r *Restart) Moves(p *Player) bool {
	for _, a := range r.Allies {
		if a == p {
			return true
		}
	}
	for _, o := range r.Opponents {
		if o == p {
			return true
		}
	}
	return false
}

// Allowed is the taker plus the movers
func (r *Restart) Allowed(p *Player) bool {
	return p == r.Taker || r.Moves(p)
}

// StartRestart enters a restart phase: the taker is placed at pos holding the
// ball, the two nearest teammates and opponents stay free to move, everybody
// else is frozen. AI takers get an auto-kick deadline.
func (m *Match) StartRestart(kind RestartKind, team *Team, taker *Player, pos geom.Vec2) bool {
	if !m.Transition(kind.trigger()) {
		return false
	}
	r := &Restart{Kind: kind, Team: team, Taker: taker, Pos: pos}
	taker.Pos = pos
	taker.Vel = geom.Vec2{}
	m.Ball.Pos = pos
	m.Ball.Prev = pos
	m.Ball.Attach(taker, m.Clock)
	m.Ball.Protect = nil

	r.Allies = nearestN(team.Players, pos, 2, taker)
	r.Opponents = nearestN(team.Opp.Players, pos, 2, nil)
	for _, p := range m.AllPlayers() {
		p.Frozen = !r.Moves(p)
		if p.Frozen {
			p.Vel = geom.Vec2{}
		}
		p.Intent = Intent{}
	}

	r.Human = m.HumanController(team) != ControlNone
	if r.Human {
		m.giveControl(m.HumanController(team), taker)
	} else {
		r.KickAt = m.Clock + geom.RandRange(m.Rand, m.Tune.Restart.DelayMin, m.Tune.Restart.DelayMax)
	}
	m.Restart = r

	m.Log.Debug("restart", "kind", kind, "team", team.Name, "taker", taker.Role, "human", r.Human)
	m.Events.Emit(Event{Type: EvtRestart, Tick: m.TickCount, Team: team.Name, Number: taker.Number, Detail: kind.String()})
	return true
}

// EndRestart clears the restart after the taker's kick and unfreezes everyone
func (m *Match) EndRestart() {
	r := m.Restart
	if r == nil {
		return
	}
	r.Acted = true
	if !m.Transition(TrigTaken) {
		return
	}
	for _, p := range m.AllPlayers() {
		p.Frozen = false
	}
	if r.Kind == ThrowIn {
		m.Ball.Protect = &Protection{Team: r.Team, Until: m.Clock + m.Tune.Restart.ThrowInProtect}
	}
	m.Restart = nil
	m.Events.Emit(Event{Type: EvtRestartTaken, Tick: m.TickCount, Team: r.Team.Name, Number: r.Taker.Number, Detail: r.Kind.String()})
}

func nearestN(players []*Player, pt geom.Vec2, n int, exclude *Player) []*Player {
	c := make([]*Player, 0, len(players))
	for _, p := range players {
		if p != exclude {
			c = append(c, p)
		}
	}
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Pos.Dist(pt) < c[j].Pos.Dist(pt)
	})
	if len(c) > n {
		c = c[:n]
	}
	return c
}
