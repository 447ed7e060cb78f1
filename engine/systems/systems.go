// Package systems holds the fixed-step pipeline stages that advance a match:
// intent blending, actions, movement, contacts, ball flight and match flow.
package systems

import "github.com/1siamBot/kickoff/engine/core"

// Install registers every pipeline stage on m, in step order
func Install(m *core.Match) {
	m.AddSystem(&RestartSystem{})
	m.AddSystem(&IntentSystem{})
	m.AddSystem(&ActionSystem{})
	m.AddSystem(&MovementSystem{})
	m.AddSystem(&ContactSystem{})
	m.AddSystem(&BallSystem{})
	m.AddSystem(&FlowSystem{})
}

// live reports whether players and the ball move this step
func live(m *core.Match) bool {
	return m.Phase == core.PhasePlay || m.Phase.IsRestart()
}
