package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPhase(t *testing.T) {
	cases := []struct {
		from Phase
		trig Trigger
		to   Phase
		ok   bool
	}{
		{PhasePlay, TrigThrowIn, PhaseThrowIn, true},
		{PhasePlay, TrigCorner, PhaseCorner, true},
		{PhasePlay, TrigGoalKick, PhaseGoalKick, true},
		{PhasePlay, TrigGoal, PhaseGoalPause, true},
		{PhasePlay, TrigTaken, PhasePlay, false},
		{PhaseThrowIn, TrigTaken, PhasePlay, true},
		{PhaseCorner, TrigTaken, PhasePlay, true},
		{PhaseGoalKick, TrigTaken, PhasePlay, true},
		{PhaseThrowIn, TrigCorner, PhaseThrowIn, false},
		{PhaseCorner, TrigGoal, PhaseCorner, false},
		{PhaseGoalPause, TrigGoal, PhaseGoalPause, false},
		{PhaseGoalPause, TrigKickoff, PhasePlay, true},
		{PhaseCorner, TrigKickoff, PhasePlay, true},
		{PhasePlay, TrigFullTime, PhaseFullTime, true},
		{PhaseGoalPause, TrigFullTime, PhaseFullTime, true},
		{PhaseFullTime, TrigFullTime, PhaseFullTime, false},
		{PhaseFullTime, TrigThrowIn, PhaseFullTime, false},
		{PhaseFullTime, TrigKickoff, PhasePlay, true},
	}
	for _, c := range cases {
		to, ok := NextPhase(c.from, c.trig)
		assert.Equal(t, c.ok, ok, "%s + %s", c.from, c.trig)
		if ok {
			assert.Equal(t, c.to, to, "%s + %s", c.from, c.trig)
		} else {
			assert.Equal(t, c.from, to, "rejected trigger must keep %s", c.from)
		}
	}
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "RESTART-CORNER", PhaseCorner.String())
	assert.Equal(t, "UNKNOWN", Phase(99).String())
	assert.True(t, PhaseGoalKick.IsRestart())
	assert.False(t, PhaseGoalPause.IsRestart())
}
