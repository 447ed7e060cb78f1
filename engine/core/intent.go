package core

import (
	"github.com/1siamBot/kickoff/engine/geom"
)

// Intent is what a player wants this step. Human devices and the AI produce the
// same record; the physics and resolver never know which one wrote it.
type Intent struct {
	// Move is the desired direction, each component in [-1, 1]
	Move geom.Vec2
	// Effort scales acceleration; 0 means 1 (a human pushing the stick)
	Effort float64

	Tackle  bool
	Pass    bool
	Through bool
	Shoot   bool
	Charge  float64 // shot power in [0, 1]
	Aim     geom.Vec2
	Switch  bool

	// Punch is a keeper-only knock of a free ball
	Punch bool
}

// Sanitize clamps every field into its documented range
func (in Intent) Sanitize(maxEffort float64) Intent {
	in.Move.X = geom.Clamp(in.Move.X, -1, 1)
	in.Move.Y = geom.Clamp(in.Move.Y, -1, 1)
	if in.Effort <= 0 {
		in.Effort = 1
	}
	in.Effort = geom.Clamp(in.Effort, 0, maxEffort)
	in.Charge = geom.Clamp(in.Charge, 0, 1)
	return in
}

// HasAction reports whether any discrete trigger is set
func (in Intent) HasAction() bool {
	return in.Tackle || in.Pass || in.Shoot || in.Switch || in.Punch
}

// Steer is the intent to move toward target with the given effort
func Steer(from, target geom.Vec2, effort float64) Intent {
	return Intent{Move: target.Sub(from).Norm(), Effort: effort}
}
