package sim

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/kickoff/engine/ai"
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
	"github.com/1siamBot/kickoff/engine/systems"
)

func TestNewInstallsPipeline(t *testing.T) {
	var buf bytes.Buffer
	m := New(WithSeed(1), WithLogger(log.New(&buf)), WithHumans(2))
	assert.Equal(t, 2, m.Humans)
	assert.Contains(t, buf.String(), "match ready")

	var h1, h2 int
	for _, p := range m.AllPlayers() {
		switch p.Controller {
		case core.ControlHuman1:
			h1++
		case core.ControlHuman2:
			h2++
		}
	}
	assert.Equal(t, 1, h1)
	assert.Equal(t, 1, h2)

	// one step moves the ball off the kickoff spot through the AI pipeline
	m = New(WithSeed(1), WithHumans(0))
	m.AdvanceStep(m.Tune.Match.Step)
	assert.True(t, m.Ball.IsFree(), "kickoff CDM recycles at once")
}

func TestWithUpgrades(t *testing.T) {
	m := New(WithUpgrades(core.UpgradeTable{Teams: map[string]core.Upgrade{"B": {Speed: 5}}}))
	st := m.Teams[core.Right].ByRole(core.ST)
	assert.InDelta(t, core.RoleProfiles[core.ST].Speed*1.2, st.Profile.Speed, 1e-9)
}

func TestKeeperClaimsSlowShot(t *testing.T) {
	m := New(WithSource(core.NewSeqSource(0.99)), WithHumans(0))
	gk := m.Teams[core.Right].Keeper()
	b := m.Ball
	b.Owner = nil
	b.Pos, b.Prev, b.Vel = geom.V(1000, 340), geom.V(1000, 340), geom.V(3, 0)
	b.PickupCD = 0

	for i := 0; i < 60 && b.Owner == nil; i++ {
		m.AdvanceStep(m.Tune.Match.Step)
	}
	assert.Equal(t, gk, b.Owner)
	assert.Equal(t, core.PhasePlay, m.Phase)
	assert.Equal(t, "0-0", m.Score())
}

// clearPath moves everybody but keep out to the top touchline
func clearPath(m *core.Match, keep *core.Player) {
	for _, p := range m.AllPlayers() {
		if p == keep {
			continue
		}
		p.Pos = geom.V(p.Pos.X, 30)
		p.Vel = geom.Vec2{}
	}
}

func TestKeeperClaimsShotFromCentre(t *testing.T) {
	m := New(WithSource(core.NewSeqSource(0.99)), WithHumans(0))
	gk := m.Teams[core.Right].Keeper()
	clearPath(m, gk)
	var punches int
	m.Events.On(core.EvtPunch, func(core.Event) { punches++ })

	b := m.Ball
	b.Owner = nil
	start := geom.V(550, m.Tune.Center().Y)
	b.Pos, b.Prev = start, start
	b.Vel = geom.V(m.Tune.GoalLineX(core.Right), m.Tune.Center().Y).Sub(start).Norm().Scale(16)
	b.PickupCD = 0

	var arrival float64
	for i := 0; i < 120 && b.Owner == nil; i++ {
		arrival = b.Vel.Len()
		m.AdvanceStep(m.Tune.Match.Step)
		require.Equal(t, core.PhasePlay, m.Phase)
	}
	require.Equal(t, gk, b.Owner)
	assert.Greater(t, arrival, m.Tune.Keeper.PunchSpeed, "arrives above the punch threshold")
	assert.Zero(t, punches)
	assert.Equal(t, "0-0", m.Score())
}

func TestForwardDropsBackWhileThroughBallTravels(t *testing.T) {
	m := New(WithSource(core.NewSeqSource(0.99)), WithHumans(0))
	lt := m.Teams[core.Left]
	line := lt.OffsideLine()
	st := lt.ByRole(core.ST)
	cdm := lt.ByRole(core.CDM)

	st.Pos, st.Vel, st.Facing = geom.V(line+60, 340), geom.Vec2{}, geom.V(1, 0)
	require.True(t, lt.IsOffside(st.Pos.X, 760, m.Tune.Center().X))

	b := m.Ball
	b.Owner = nil
	cdm.Pos = geom.V(750, 340)
	b.Pos, b.Prev = geom.V(760, 340), geom.V(760, 340)
	systems.PassTo(m, cdm, st, true)
	require.True(t, b.IsFree())
	assert.Less(t, ai.SupportTarget(m, st).X, line, "support spot is onside")

	startX, maxX := st.Pos.X, st.Pos.X
	steps := 0
	for ; steps < 120 && b.IsFree(); steps++ {
		m.AdvanceStep(m.Tune.Match.Step)
		maxX = math.Max(maxX, st.Pos.X)
	}
	require.Positive(t, steps)
	assert.LessOrEqual(t, maxX, startX+1e-9, "never runs further offside")
	assert.Less(t, st.Pos.X, startX, "pulled back before the pass resolves")
}

func sameMatch(a, b *core.Snapshot) bool {
	a.MatchID, b.MatchID = uuid.Nil, uuid.Nil
	return assert.ObjectsAreEqual(a, b)
}

func TestSeededMatchesAreReproducible(t *testing.T) {
	a := New(WithSeed(42), WithHumans(0))
	b := New(WithSeed(42), WithHumans(0))
	Run(a, 30)
	Run(b, 30)
	sa, sb := a.Snapshot(), b.Snapshot()
	assert.True(t, sameMatch(&sa, &sb))
	assert.Equal(t, a.Score(), b.Score())
}

func TestFullMatchInvariants(t *testing.T) {
	m := New(WithSeed(7), WithHumans(0))
	var passes, restarts int
	m.Events.On(core.EvtPass, func(core.Event) { passes++ })
	m.Events.On(core.EvtRestart, func(core.Event) { restarts++ })

	dt := m.Tune.Match.Step
	canvas := geom.Rect{Max: geom.V(m.Tune.Field.Width, m.Tune.Field.Height)}
	bounds := m.Tune.Bounds()
	inRestart := 0
	limit := int(m.Tune.Restart.DelayMax/dt) + 2

	for i := 0; i < 400*60 && m.Phase != core.PhaseFullTime; i++ {
		m.AdvanceStep(dt)

		require.Equal(t, m.Phase.IsRestart(), m.Restart != nil, "restart record follows the phase")
		require.True(t, canvas.Contains(m.Ball.Pos), "ball at %v", m.Ball.Pos)
		for _, p := range m.AllPlayers() {
			require.True(t, bounds.Contains(p.Pos), "%s-%s at %v", p.Team.Name, p.Role, p.Pos)
			if m.Phase == core.PhasePlay {
				require.False(t, p.Frozen)
			}
		}
		if m.Phase.IsRestart() {
			inRestart++
			require.LessOrEqual(t, inRestart, limit, "AI restart never kicked")
		} else {
			inRestart = 0
		}
	}

	require.Equal(t, core.PhaseFullTime, m.Phase)
	assert.Zero(t, m.Remaining)
	assert.Greater(t, passes, 0)
	t.Logf("score %s, %d passes, %d restarts", m.Score(), passes, restarts)
}

func TestRunStopsAtFullTime(t *testing.T) {
	tu := core.DefaultTuning()
	tu.Match.Length = 1
	m := New(WithTuning(tu), WithSeed(3), WithHumans(0))
	n := Run(m, 60)
	assert.Equal(t, core.PhaseFullTime, m.Phase)
	assert.Less(t, n, 60*60)
}
