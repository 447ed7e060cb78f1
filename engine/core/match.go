package core

import (
	"io"
	"math/rand"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/1siamBot/kickoff/engine/geom"
)

// System processes the match once per step
type System interface {
	Update(m *Match, dt float64)
	Priority() int
}

// Match is the whole simulated world. It is owned by one goroutine; readers
// take a Snapshot between steps.
type Match struct {
	ID     uuid.UUID
	Tune   Tuning
	Rand   geom.Source
	Log    *log.Logger
	Events *EventBus

	Ball  *Ball
	Teams [2]*Team // indexed by Side

	Phase   Phase
	Restart *Restart

	Clock     float64 // simulated seconds since kickoff of the match
	Remaining float64 // seconds left; ignored when Tune.Match.Length is 0
	TickCount uint64

	// Humans is how many teams are human driven: 0, 1 (left) or 2
	Humans int

	// PauseUntil ends the goal pause; OutCooldownUntil debounces out-of-bounds
	PauseUntil       float64
	OutCooldownUntil float64
	KickoffSide      Side

	inputs  [controllerCount]Intent
	systems []System
}

// NewMatch builds a match with both teams spawned and the left team to kick off.
// rnd may be nil for a time-seeded source.
func NewMatch(t Tuning, rnd geom.Source) *Match {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	m := &Match{
		ID:        uuid.New(),
		Tune:      t,
		Rand:      rnd,
		Log:       log.New(io.Discard),
		Events:    NewEventBus(),
		Ball:      &Ball{Radius: t.Ball.Radius, CurveDecay: t.Ball.CurveDecay, Friction: 1},
		Remaining: t.Match.Length,
		Humans:    1,
	}
	m.Teams[Left] = &Team{Name: "A", Side: Left}
	m.Teams[Right] = &Team{Name: "B", Side: Right}
	m.Teams[Left].Opp = m.Teams[Right]
	m.Teams[Right].Opp = m.Teams[Left]
	m.SpawnTeams()
	m.ResetAfterGoal(Left)
	return m
}

// AddSystem registers a system
func (m *Match) AddSystem(s System) {
	m.systems = append(m.systems, s)
	sort.SliceStable(m.systems, func(i, j int) bool {
		return m.systems[i].Priority() < m.systems[j].Priority()
	})
}

// SpawnTeams creates both rosters. Players are created once; kickoffs reset them.
func (m *Match) SpawnTeams() {
	for _, t := range m.Teams {
		t.Spawn(&m.Tune)
	}
}

// AllPlayers lists left players then right players
func (m *Match) AllPlayers() []*Player {
	all := make([]*Player, 0, len(m.Teams[Left].Players)+len(m.Teams[Right].Players))
	all = append(all, m.Teams[Left].Players...)
	return append(all, m.Teams[Right].Players...)
}

// SetInput stores a human device's intent for the next step
func (m *Match) SetInput(c Controller, in Intent) {
	if c == ControlNone || c >= controllerCount {
		return
	}
	m.inputs[c] = in
}

// Input returns the pending intent of controller c
func (m *Match) Input(c Controller) Intent {
	if c >= controllerCount {
		return Intent{}
	}
	return m.inputs[c]
}

// AdvanceStep runs every system once, in priority order, then dispatches the
// step's events. One-shot triggers are consumed by the step.
func (m *Match) AdvanceStep(dt float64) {
	for _, p := range m.AllPlayers() {
		if p.IsHuman() {
			p.Intent = m.inputs[p.Controller].Sanitize(m.Tune.Player.MaxEffort)
		}
	}
	for _, s := range m.systems {
		s.Update(m, dt)
	}
	for c := range m.inputs {
		m.inputs[c] = Intent{Move: m.inputs[c].Move, Aim: m.inputs[c].Aim}
	}
	for _, p := range m.AllPlayers() {
		p.Intent = Intent{}
	}
	m.TickCount++
	m.Events.Dispatch()
}

// Transition applies a trigger through NextPhase
func (m *Match) Transition(t Trigger) bool {
	next, ok := NextPhase(m.Phase, t)
	if !ok {
		return false
	}
	if next != m.Phase {
		m.Log.Debug("phase", "from", m.Phase, "to", next, "trigger", t)
	}
	m.Phase = next
	return true
}

// ScoreGoal credits scorer and enters the goal pause
func (m *Match) ScoreGoal(scorer *Team) bool {
	if !m.Transition(TrigGoal) {
		return false
	}
	scorer.Score++
	m.Ball.Vel = geom.Vec2{}
	m.Ball.Curve = geom.Vec2{}
	m.Ball.Owner = nil
	m.PauseUntil = m.Clock + m.Tune.Restart.GoalPause
	m.KickoffSide = scorer.Opp.Side
	for _, p := range m.AllPlayers() {
		p.Vel = geom.Vec2{}
	}
	m.Log.Debug("goal", "team", scorer.Name, "score", m.Score())
	m.Events.Emit(Event{Type: EvtGoal, Tick: m.TickCount, Team: scorer.Name, Detail: m.Score()})
	return true
}

// Score formats the scoreline, left team first
func (m *Match) Score() string {
	return strconv.Itoa(m.Teams[Left].Score) + "-" + strconv.Itoa(m.Teams[Right].Score)
}

// ResetAfterGoal restarts play from the centre with side kicking off: the
// ball is re-centred, every player returns to its anchor and the kicking
// team's CDM takes the ball.
func (m *Match) ResetAfterGoal(side Side) {
	b := m.Ball
	c := m.Tune.Center()
	b.Pos = geom.V(c.X-side.Dir()*m.Tune.Ball.KickoffOffset, c.Y)
	b.Prev = b.Pos
	b.Vel = geom.Vec2{}
	b.Curve = geom.Vec2{}
	b.CurveDecay = m.Tune.Ball.CurveDecay
	b.PickupCD = 0
	b.Friction = 1
	b.AssistTo, b.AssistT = nil, 0
	b.Protect = nil
	b.LastTouch = nil

	for _, p := range m.AllPlayers() {
		p.reset()
	}
	kt := m.Teams[side]
	kicker := kt.ByRole(CDM)
	if kicker == nil {
		kicker = kt.Players[0]
	}
	b.Attach(kicker, m.Clock)

	m.Restart = nil
	m.Transition(TrigKickoff)
	m.KickoffSide = side
	m.AssignControllers()
	m.Events.Emit(Event{Type: EvtKickoff, Tick: m.TickCount, Team: kt.Name, Number: kicker.Number})
}

// HumanController returns the human device that plays for t, if any
func (m *Match) HumanController(t *Team) Controller {
	switch {
	case t.Side == Left && m.Humans >= 1:
		return ControlHuman1
	case t.Side == Right && m.Humans >= 2:
		return ControlHuman2
	}
	return ControlNone
}

// AssignControllers hands each human the best-placed player of its team
func (m *Match) AssignControllers() {
	for _, p := range m.AllPlayers() {
		p.Controller = ControlNone
	}
	for _, t := range m.Teams {
		c := m.HumanController(t)
		if c == ControlNone {
			continue
		}
		if o := m.Ball.Owner; o != nil && o.Team == t {
			o.Controller = c
			continue
		}
		if p := t.NearestForSwitch(m.Ball.Pos, nil); p != nil {
			p.Controller = c
		}
	}
}

// PossessionChanged moves a human's control onto a new owner from its team
func (m *Match) PossessionChanged() {
	o := m.Ball.Owner
	if o == nil {
		return
	}
	m.Log.Debug("possession", "team", o.Team.Name, "role", o.Role)
	m.Events.Emit(Event{Type: EvtPossession, Tick: m.TickCount, Team: o.Team.Name, Number: o.Number})
	if c := m.HumanController(o.Team); c != ControlNone {
		m.giveControl(c, o)
	}
}

// ManualSwitch moves controller c to the best other player of its team
func (m *Match) ManualSwitch(c Controller) {
	var team *Team
	var current *Player
	for _, t := range m.Teams {
		if m.HumanController(t) == c {
			team = t
		}
	}
	if team == nil {
		return
	}
	for _, p := range team.Players {
		if p.Controller == c {
			current = p
		}
	}
	if n := team.NearestForSwitch(m.Ball.Pos, current); n != nil {
		m.giveControl(c, n)
	}
}

func (m *Match) giveControl(c Controller, p *Player) {
	for _, q := range p.Team.Players {
		if q.Controller == c {
			q.Controller = ControlNone
		}
	}
	p.Controller = c
}

// AttackGoalX is the goal line team t attacks
func (m *Match) AttackGoalX(t *Team) float64 {
	return m.Tune.GoalLineX(t.Side.Opp())
}

// ApplyUpgrades sets team and individual tiers from the store and
// recomputes every effective profile.
func (m *Match) ApplyUpgrades(u UpgradeTable) {
	for _, t := range m.Teams {
		t.Upgrade = u.Teams[t.Name]
		for _, p := range t.Players {
			p.Upgrade = u.Players[PlayerKey(t.Name, p.Role)]
			p.RecomputeProfile(m.Tune.Upgrade)
		}
	}
}
