package core

// Phase is the match's single authoritative state
type Phase uint8

const (
	PhasePlay Phase = iota
	PhaseThrowIn
	PhaseCorner
	PhaseGoalKick
	PhaseGoalPause
	PhaseFullTime
)

var phaseNames = [...]string{"PLAY", "RESTART-THROWIN", "RESTART-CORNER", "RESTART-GOALKICK", "GOAL-PAUSE", "FULL-TIME"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}

// IsRestart reports the three dead-ball phases
func (p Phase) IsRestart() bool {
	return p == PhaseThrowIn || p == PhaseCorner || p == PhaseGoalKick
}

// Trigger is an input to the phase machine
type Trigger uint8

const (
	TrigThrowIn Trigger = iota
	TrigCorner
	TrigGoalKick
	TrigGoal
	TrigTaken
	TrigKickoff
	TrigFullTime
)

var triggerNames = [...]string{"throw-in", "corner", "goal-kick", "goal", "taken", "kickoff", "full-time"}

func (t Trigger) String() string {
	if int(t) < len(triggerNames) {
		return triggerNames[t]
	}
	return "unknown"
}

// NextPhase is the transition function. ok is false when the trigger is not
// accepted in from; the phase is then unchanged.
func NextPhase(from Phase, t Trigger) (Phase, bool) {
	switch t {
	case TrigKickoff:
		return PhasePlay, true
	case TrigFullTime:
		if from == PhaseFullTime {
			return from, false
		}
		return PhaseFullTime, true
	}

	switch from {
	case PhasePlay:
		switch t {
		case TrigThrowIn:
			return PhaseThrowIn, true
		case TrigCorner:
			return PhaseCorner, true
		case TrigGoalKick:
			return PhaseGoalKick, true
		case TrigGoal:
			return PhaseGoalPause, true
		}
	case PhaseThrowIn, PhaseCorner, PhaseGoalKick:
		if t == TrigTaken {
			return PhasePlay, true
		}
	}
	return from, false
}
