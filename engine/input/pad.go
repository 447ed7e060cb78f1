package input

import (
	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

// Buttons is one frame of a human device
type Buttons struct {
	Up, Down, Left, Right bool
	Shoot, Pass           bool
	Switch, Tackle        bool
}

// Move is the 8-way stick direction the buttons describe
func (b Buttons) Move() geom.Vec2 {
	var v geom.Vec2
	if b.Left {
		v.X--
	}
	if b.Right {
		v.X++
	}
	if b.Up {
		v.Y--
	}
	if b.Down {
		v.Y++
	}
	return v
}

// Gauge is what the HUD shows for a pad's charging key
type Gauge struct {
	Mode  string // "IDLE", "PASS" or "SHOOT"
	Level float64
}

// Pad turns held buttons into intents. Pass and shoot fire on release: a pass
// held past ThroughHold becomes a through ball, a shot's charge is its hold
// time over ShotChargeTime. Switch and tackle fire on press.
type Pad struct {
	prev      Buttons
	passHeld  float64
	shootHeld float64
	aim       geom.Vec2
}

// Update advances the pad by one frame of dt seconds
func (p *Pad) Update(b Buttons, dt float64, t core.InputTuning) core.Intent {
	in := core.Intent{Move: b.Move()}
	if !in.Move.IsZero() {
		p.aim = in.Move
	}
	in.Aim = p.aim

	switch {
	case b.Pass:
		p.passHeld += dt
	case p.prev.Pass:
		in.Pass = true
		in.Through = p.passHeld >= t.ThroughHold
		p.passHeld = 0
	}
	switch {
	case b.Shoot:
		p.shootHeld += dt
	case p.prev.Shoot:
		in.Shoot = true
		in.Charge = geom.Clamp(p.shootHeld/t.ShotChargeTime, 0, 1)
		p.shootHeld = 0
	}
	in.Switch = b.Switch && !p.prev.Switch
	in.Tackle = b.Tackle && !p.prev.Tackle

	p.prev = b
	return in
}

// Gauge reports the key currently charging; shooting wins over passing
func (p *Pad) Gauge(t core.InputTuning) Gauge {
	switch {
	case p.prev.Shoot:
		return Gauge{Mode: "SHOOT", Level: geom.Clamp(p.shootHeld/t.ShotChargeTime, 0, 1)}
	case p.prev.Pass:
		return Gauge{Mode: "PASS", Level: geom.Clamp(p.passHeld/t.ThroughHold, 0, 1)}
	}
	return Gauge{Mode: "IDLE"}
}

// Reset drops any held charge, e.g. after a pause
func (p *Pad) Reset() {
	*p = Pad{aim: p.aim}
}

// Merge lays next over a pending intent that no step has consumed yet: the
// stick follows next, triggers latch until consumed.
func Merge(pending, next core.Intent) core.Intent {
	if pending.Pass && !next.Pass {
		next.Pass, next.Through = true, pending.Through
	}
	if pending.Shoot && !next.Shoot {
		next.Shoot, next.Charge = true, pending.Charge
	}
	next.Switch = next.Switch || pending.Switch
	next.Tackle = next.Tackle || pending.Tackle
	return next
}
