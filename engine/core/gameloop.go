package core

import "time"

// LoopState represents the host's run state
type LoopState uint8

const (
	StatePlaying LoopState = iota
	StatePaused
)

// GameLoop drives a Match at a fixed timestep from variable frame times
type GameLoop struct {
	Match       *Match
	State       LoopState
	Step        float64 // fixed step in seconds
	MaxSteps    int     // per frame
	MaxFrame    float64 // longest frame time honoured, seconds
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop using the match's timing tuning
func NewGameLoop(m *Match) *GameLoop {
	return &GameLoop{
		Match:    m,
		Step:     m.Tune.Match.Step,
		MaxSteps: m.Tune.Match.MaxStepsPerFrame,
		MaxFrame: m.Tune.Match.MaxFrameTime,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It measures the wall-clock
// frame time and advances the match. Returns the interpolation alpha.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	gl.Advance(frameTime)
	return gl.accumulator / gl.Step
}

// Advance runs as many fixed steps as frameTime pays for and returns how many
// ran. Frame time is capped, and at most MaxSteps run; leftover time carries
// over to the next frame.
func (gl *GameLoop) Advance(frameTime float64) int {
	// Cap frame time to avoid spiral of death
	if frameTime > gl.MaxFrame {
		frameTime = gl.MaxFrame
	}
	if frameTime < 0 {
		frameTime = 0
	}
	if gl.State != StatePlaying {
		return 0
	}

	dt := gl.Step
	gl.accumulator += frameTime

	steps := 0
	for gl.accumulator >= dt && steps < gl.MaxSteps {
		gl.Match.AdvanceStep(dt)
		gl.accumulator -= dt
		steps++
	}
	return steps
}

// Play starts or resumes the match
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the match; paused frames do not accumulate time
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// Toggle flips between playing and paused
func (gl *GameLoop) Toggle() {
	if gl.State == StatePlaying {
		gl.Pause()
	} else {
		gl.Play()
	}
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.Match.TickCount
}
