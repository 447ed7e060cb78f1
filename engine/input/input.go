package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/kickoff/engine/core"
)

// Layout binds one human's buttons to keyboard keys
type Layout struct {
	Name                  string
	Up, Down, Left, Right []ebiten.Key
	Shoot, Pass           []ebiten.Key
	Switch, Tackle        []ebiten.Key
}

var (
	// WASD is player one: move on WASD, J shoot, K pass, L switch, H tackle
	WASD = Layout{
		Name:   "wasd",
		Up:     keys(ebiten.KeyW),
		Down:   keys(ebiten.KeyS),
		Left:   keys(ebiten.KeyA),
		Right:  keys(ebiten.KeyD),
		Shoot:  keys(ebiten.KeyJ),
		Pass:   keys(ebiten.KeyK),
		Switch: keys(ebiten.KeyL),
		Tackle: keys(ebiten.KeyH),
	}
	// Arrows is player two: arrows, 2 shoot, 1 pass, 3 switch, 5 tackle (row or numpad)
	Arrows = Layout{
		Name:   "arrows",
		Up:     keys(ebiten.KeyArrowUp),
		Down:   keys(ebiten.KeyArrowDown),
		Left:   keys(ebiten.KeyArrowLeft),
		Right:  keys(ebiten.KeyArrowRight),
		Shoot:  keys(ebiten.KeyDigit2, ebiten.KeyNumpad2),
		Pass:   keys(ebiten.KeyDigit1, ebiten.KeyNumpad1),
		Switch: keys(ebiten.KeyDigit3, ebiten.KeyNumpad3),
		Tackle: keys(ebiten.KeyDigit5, ebiten.KeyNumpad5),
	}
)

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func anyPressed(ks []ebiten.Key) bool {
	for _, k := range ks {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Read samples the keyboard for this layout
func (l Layout) Read() Buttons {
	return Buttons{
		Up:     anyPressed(l.Up),
		Down:   anyPressed(l.Down),
		Left:   anyPressed(l.Left),
		Right:  anyPressed(l.Right),
		Shoot:  anyPressed(l.Shoot),
		Pass:   anyPressed(l.Pass),
		Switch: anyPressed(l.Switch),
		Tackle: anyPressed(l.Tackle),
	}
}

// InputState tracks both human pads per frame
type InputState struct {
	Layouts [2]Layout
	Pads    [2]Pad
	Tune    core.InputTuning
}

func NewInputState(t core.InputTuning) *InputState {
	return &InputState{Layouts: [2]Layout{WASD, Arrows}, Tune: t}
}

// Update should be called every frame; it feeds both pads into m. Triggers
// not yet consumed by a step are kept.
func (s *InputState) Update(m *core.Match, dt float64) {
	for i := range s.Pads {
		c := core.ControlHuman1 + core.Controller(i)
		in := s.Pads[i].Update(s.Layouts[i].Read(), dt, s.Tune)
		m.SetInput(c, Merge(m.Input(c), in))
	}
}

// Gauge is pad i's charge meter
func (s *InputState) Gauge(i int) Gauge { return s.Pads[i].Gauge(s.Tune) }

// Reset drops held charges on both pads
func (s *InputState) Reset() {
	for i := range s.Pads {
		s.Pads[i].Reset()
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
