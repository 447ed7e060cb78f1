package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/kickoff/engine/geom"
)

func newTestMatch(t *testing.T) *Match {
	t.Helper()
	m := NewMatch(DefaultTuning(), NewSeqSource(0.5))
	require.Len(t, m.Teams[Left].Players, 11)
	require.Len(t, m.Teams[Right].Players, 11)
	return m
}

func TestNewMatchKickoff(t *testing.T) {
	m := newTestMatch(t)

	assert.Equal(t, PhasePlay, m.Phase)
	require.NotNil(t, m.Ball.Owner)
	assert.Equal(t, CDM, m.Ball.Owner.Role)
	assert.Equal(t, Left, m.Ball.Owner.Team.Side)
	assert.Equal(t, geom.V(510, 340), m.Ball.Pos)
	assert.Equal(t, ControlHuman1, m.Ball.Owner.Controller)

	for _, p := range m.Teams[Right].Players {
		assert.Equal(t, ControlNone, p.Controller, "right team is AI in 1P")
	}
	assert.NotNil(t, m.Teams[Left].Keeper())
	assert.Equal(t, 1, m.Teams[Left].Keeper().Number)
}

func TestSpawnMirrorsRightTeam(t *testing.T) {
	m := newTestMatch(t)
	for i, p := range m.Teams[Left].Players {
		q := m.Teams[Right].Players[i]
		assert.Equal(t, p.Role, q.Role)
		assert.InDelta(t, m.Tune.Field.Width-p.Home.X, q.Home.X, 1e-9)
		assert.InDelta(t, p.Home.Y, q.Home.Y, 1e-9)
		assert.Equal(t, geom.V(-1, 0), q.Facing)
	}
}

func TestScoreGoalAndReset(t *testing.T) {
	m := newTestMatch(t)
	var goals []Event
	m.Events.On(EvtGoal, func(e Event) { goals = append(goals, e) })

	require.True(t, m.ScoreGoal(m.Teams[Right]))
	assert.Equal(t, PhaseGoalPause, m.Phase)
	assert.Equal(t, 1, m.Teams[Right].Score)
	assert.Equal(t, Left, m.KickoffSide)
	assert.Nil(t, m.Ball.Owner)

	assert.False(t, m.ScoreGoal(m.Teams[Left]), "no second goal during the pause")
	assert.Equal(t, 0, m.Teams[Left].Score)

	m.Events.Dispatch()
	require.Len(t, goals, 1)
	assert.Equal(t, "B", goals[0].Team)
	assert.Equal(t, "0-1", goals[0].Detail)

	m.ResetAfterGoal(Right)
	assert.Equal(t, PhasePlay, m.Phase)
	assert.Equal(t, geom.V(590, 340), m.Ball.Pos)
	require.NotNil(t, m.Ball.Owner)
	assert.Equal(t, Right, m.Ball.Owner.Team.Side)
	for _, p := range m.AllPlayers() {
		assert.Equal(t, p.Home, p.Pos)
		assert.True(t, p.Vel.IsZero())
		assert.False(t, p.Frozen)
	}
}

func TestControllersFollowPossession(t *testing.T) {
	m := newTestMatch(t)
	st := m.Teams[Left].ByRole(ST)
	m.Ball.Attach(st, m.Clock)
	m.PossessionChanged()

	assert.Equal(t, ControlHuman1, st.Controller)
	n := 0
	for _, p := range m.Teams[Left].Players {
		if p.Controller == ControlHuman1 {
			n++
		}
	}
	assert.Equal(t, 1, n)

	// AI team possession never hands out a human controller in 1P
	rst := m.Teams[Right].ByRole(ST)
	m.Ball.Attach(rst, m.Clock)
	m.PossessionChanged()
	assert.Equal(t, ControlNone, rst.Controller)
	assert.Equal(t, ControlHuman1, st.Controller)
}

func TestManualSwitchMovesControl(t *testing.T) {
	m := newTestMatch(t)
	var before *Player
	for _, p := range m.Teams[Left].Players {
		if p.Controller == ControlHuman1 {
			before = p
		}
	}
	require.NotNil(t, before)
	m.ManualSwitch(ControlHuman1)
	assert.Equal(t, ControlNone, before.Controller)

	m.ManualSwitch(ControlHuman2) // no team in 1P
	for _, p := range m.AllPlayers() {
		assert.NotEqual(t, ControlHuman2, p.Controller)
	}
}

func TestTwoPlayerAssignsRightTeam(t *testing.T) {
	m := newTestMatch(t)
	m.Humans = 2
	m.AssignControllers()
	n := 0
	for _, p := range m.Teams[Right].Players {
		if p.Controller == ControlHuman2 {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestNoHumans(t *testing.T) {
	m := newTestMatch(t)
	m.Humans = 0
	m.AssignControllers()
	for _, p := range m.AllPlayers() {
		assert.False(t, p.IsHuman())
	}
}

func TestApplyUpgrades(t *testing.T) {
	m := newTestMatch(t)
	m.ApplyUpgrades(UpgradeTable{
		Teams:   map[string]Upgrade{"A": {Speed: 1}},
		Players: map[string]Upgrade{"A-ST": {Speed: 2, Shot: 9}},
	})
	st := m.Teams[Left].ByRole(ST)
	assert.InDelta(t, RoleProfiles[ST].Speed*1.04*1.08, st.Profile.Speed, 1e-9)
	assert.InDelta(t, RoleProfiles[ST].Shot*1.20, st.Profile.Shot, 1e-9, "tier clamps to 5")
	cm := m.Teams[Left].ByRole(CM)
	assert.InDelta(t, RoleProfiles[CM].Speed*1.04, cm.Profile.Speed, 1e-9)
	rst := m.Teams[Right].ByRole(ST)
	assert.Equal(t, RoleProfiles[ST], rst.Profile)
}

func TestAdvanceStepConsumesTriggers(t *testing.T) {
	m := newTestMatch(t)
	var seen Intent
	m.AddSystem(systemFunc{prio: 1, fn: func(m *Match, dt float64) {
		seen = m.Ball.Owner.Intent
	}})
	m.SetInput(ControlHuman1, Intent{Move: geom.V(3, 0), Pass: true})
	m.AdvanceStep(m.Tune.Match.Step)

	assert.True(t, seen.Pass)
	assert.Equal(t, 1.0, seen.Move.X, "move clamps to [-1, 1]")
	assert.Equal(t, 1.0, seen.Effort)
	assert.False(t, m.Input(ControlHuman1).Pass, "pass is one-shot")
	assert.Equal(t, 3.0, m.Input(ControlHuman1).Move.X, "held direction survives")
	assert.Equal(t, uint64(1), m.TickCount)
}

func TestAddSystemSortsByPriority(t *testing.T) {
	m := newTestMatch(t)
	var order []int
	for _, p := range []int{50, 10, 30} {
		p := p
		m.AddSystem(systemFunc{prio: p, fn: func(*Match, float64) { order = append(order, p) }})
	}
	m.AdvanceStep(m.Tune.Match.Step)
	assert.Equal(t, []int{10, 30, 50}, order)
}

func TestSnapshot(t *testing.T) {
	m := newTestMatch(t)
	s := m.Snapshot()
	assert.Equal(t, m.ID, s.MatchID)
	assert.Len(t, s.Players, 22)
	o, ok := s.Owner()
	require.True(t, ok)
	assert.Equal(t, CDM, o.Role)
	assert.Nil(t, s.Restart)

	m.Teams[Left].Players[0].Pos = geom.V(1, 1)
	assert.NotEqual(t, geom.V(1, 1), s.Players[0].Pos, "snapshot is a copy")
}

func TestOffsideLine(t *testing.T) {
	m := newTestMatch(t)
	// right team's deepest is its GK at 1040, second deepest its full backs at 920
	assert.InDelta(t, 920, m.Teams[Left].OffsideLine(), 1e-9)
	assert.InDelta(t, 180, m.Teams[Right].OffsideLine(), 1e-9)

	st := m.Teams[Left].ByRole(ST)
	st.Pos = geom.V(950, 340)
	assert.True(t, m.Teams[Left].IsOffside(st.Pos.X, 700, 550))
	assert.False(t, m.Teams[Left].IsOffside(st.Pos.X, 960, 550), "behind the ball is fine")
	st.Pos = geom.V(500, 340)
	assert.False(t, m.Teams[Left].IsOffside(st.Pos.X, 300, 550), "own half")
}

type systemFunc struct {
	prio int
	fn   func(*Match, float64)
}

func (s systemFunc) Update(m *Match, dt float64) { s.fn(m, dt) }
func (s systemFunc) Priority() int               { return s.prio }
