package core

import (
	"github.com/google/uuid"

	"github.com/1siamBot/kickoff/engine/geom"
)

// Snapshot is a read-only copy of the match taken between steps. It is the
// only state renderers and spectators see.
type Snapshot struct {
	MatchID   uuid.UUID     `msgpack:"id"`
	Tick      uint64        `msgpack:"tick"`
	Clock     float64       `msgpack:"clock"`
	Remaining float64       `msgpack:"remaining"`
	Phase     Phase         `msgpack:"phase"`
	Ball      BallState     `msgpack:"ball"`
	Teams     [2]TeamState  `msgpack:"teams"`
	Players   []PlayerState `msgpack:"players"`
	Restart   *RestartState `msgpack:"restart,omitempty"`
}

type BallState struct {
	Pos    geom.Vec2 `msgpack:"pos"`
	Prev   geom.Vec2 `msgpack:"prev"`
	Vel    geom.Vec2 `msgpack:"vel"`
	Radius float64   `msgpack:"r"`
	Owner  int       `msgpack:"owner"` // index into Players, -1 when free
}

type TeamState struct {
	Name  string `msgpack:"name"`
	Side  Side   `msgpack:"side"`
	Score int    `msgpack:"score"`
}

type PlayerState struct {
	Team       Side       `msgpack:"team"`
	Role       Role       `msgpack:"role"`
	Number     int        `msgpack:"num"`
	Pos        geom.Vec2  `msgpack:"pos"`
	Vel        geom.Vec2  `msgpack:"vel"`
	Facing     geom.Vec2  `msgpack:"face"`
	Radius     float64    `msgpack:"r"`
	Controller Controller `msgpack:"ctl"`
	Frozen     bool       `msgpack:"frozen"`
}

type RestartState struct {
	Kind  RestartKind `msgpack:"kind"`
	Team  Side        `msgpack:"team"`
	Taker int         `msgpack:"taker"` // index into Players
}

// Snapshot copies the observable state. Call it only between steps.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:   m.ID,
		Tick:      m.TickCount,
		Clock:     m.Clock,
		Remaining: m.Remaining,
		Phase:     m.Phase,
	}
	all := m.AllPlayers()
	s.Players = make([]PlayerState, len(all))
	s.Ball = BallState{Pos: m.Ball.Pos, Prev: m.Ball.Prev, Vel: m.Ball.Vel, Radius: m.Ball.Radius, Owner: -1}
	for i, p := range all {
		s.Players[i] = PlayerState{
			Team:       p.Team.Side,
			Role:       p.Role,
			Number:     p.Number,
			Pos:        p.Pos,
			Vel:        p.Vel,
			Facing:     p.Facing,
			Radius:     p.Radius,
			Controller: p.Controller,
			Frozen:     p.Frozen,
		}
		if m.Ball.Owner == p {
			s.Ball.Owner = i
		}
		if m.Restart != nil && m.Restart.Taker == p {
			s.Restart = &RestartState{Kind: m.Restart.Kind, Team: m.Restart.Team.Side, Taker: i}
		}
	}
	for i, t := range m.Teams {
		s.Teams[i] = TeamState{Name: t.Name, Side: t.Side, Score: t.Score}
	}
	return s
}

// Owner returns the ball carrier's state, if any
func (s *Snapshot) Owner() (PlayerState, bool) {
	if s.Ball.Owner < 0 || s.Ball.Owner >= len(s.Players) {
		return PlayerState{}, false
	}
	return s.Players[s.Ball.Owner], true
}
