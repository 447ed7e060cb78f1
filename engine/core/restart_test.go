package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/kickoff/engine/geom"
)

func TestStartRestartFreezesEveryoneButMovers(t *testing.T) {
	m := newTestMatch(t)
	for _, p := range m.AllPlayers() {
		p.Vel = geom.V(1, 1)
	}
	bt := m.Teams[Right]
	taker := bt.ByRole(RW)
	pos := geom.V(600, 20+m.Ball.Radius)

	require.True(t, m.StartRestart(ThrowIn, bt, taker, pos))
	r := m.Restart
	require.NotNil(t, r)
	assert.Equal(t, PhaseThrowIn, m.Phase)
	assert.Len(t, r.Allies, 2)
	assert.Len(t, r.Opponents, 2)
	assert.False(t, r.Human)
	assert.InDelta(t, m.Tune.Restart.DelayMin+0.5*(m.Tune.Restart.DelayMax-m.Tune.Restart.DelayMin), r.KickAt, 1e-9)

	assert.Equal(t, taker, m.Ball.Owner)
	assert.Equal(t, pos, m.Ball.Pos)
	assert.Equal(t, pos, taker.Pos)
	assert.True(t, m.Ball.Vel.IsZero())
	assert.True(t, taker.Frozen)

	for _, p := range m.AllPlayers() {
		if r.Moves(p) {
			assert.False(t, p.Frozen, "%s-%s moves", p.Team.Name, p.Role)
			continue
		}
		assert.True(t, p.Frozen)
		assert.True(t, p.Vel.IsZero())
	}
	for _, a := range r.Allies {
		assert.Equal(t, bt, a.Team)
		assert.NotEqual(t, taker, a)
	}
	for _, o := range r.Opponents {
		assert.Equal(t, m.Teams[Left], o.Team)
	}

	assert.False(t, m.StartRestart(Corner, bt, taker, pos), "no restart inside a restart")
	assert.Equal(t, ThrowIn, m.Restart.Kind)
}

func TestEndRestartUnfreezesAndProtectsThrowIn(t *testing.T) {
	m := newTestMatch(t)
	bt := m.Teams[Right]
	require.True(t, m.StartRestart(ThrowIn, bt, bt.ByRole(RW), geom.V(600, 26)))
	m.Clock = 10

	m.EndRestart()
	assert.Equal(t, PhasePlay, m.Phase)
	assert.Nil(t, m.Restart)
	for _, p := range m.AllPlayers() {
		assert.False(t, p.Frozen)
	}
	require.NotNil(t, m.Ball.Protect)
	assert.Equal(t, bt, m.Ball.Protect.Team)
	assert.InDelta(t, 10+m.Tune.Restart.ThrowInProtect, m.Ball.Protect.Until, 1e-9)

	m.EndRestart() // no-op without a restart
	assert.Equal(t, PhasePlay, m.Phase)
}

func TestHumanTakerGetsControl(t *testing.T) {
	m := newTestMatch(t)
	at := m.Teams[Left]
	gk := at.Keeper()
	require.True(t, m.StartRestart(GoalKick, at, gk, geom.V(60, 340)))
	assert.True(t, m.Restart.Human)
	assert.Zero(t, m.Restart.KickAt)
	assert.Equal(t, ControlHuman1, gk.Controller)
	assert.Equal(t, PhaseGoalKick, m.Phase)

	m.EndRestart()
	assert.Nil(t, m.Ball.Protect, "only throw-ins are protected")
}

func TestRestartEvents(t *testing.T) {
	m := newTestMatch(t)
	m.Events.Dispatch()
	var got []EventType
	m.Events.OnAny(func(e Event) { got = append(got, e.Type) })

	bt := m.Teams[Right]
	m.StartRestart(Corner, bt, bt.ByRole(LW), geom.V(26, 26))
	m.EndRestart()
	m.Events.Dispatch()
	assert.Equal(t, []EventType{EvtRestart, EvtRestartTaken}, got)
}
