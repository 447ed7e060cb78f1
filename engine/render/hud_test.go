package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1siamBot/kickoff/engine/core"
)

func TestClockText(t *testing.T) {
	assert.Equal(t, "3:00", ClockText(180))
	assert.Equal(t, "0:01", ClockText(0.2))
	assert.Equal(t, "0:00", ClockText(0))
	assert.Equal(t, "0:00", ClockText(-3))
	assert.Equal(t, "1:05", ClockText(64.5))
}

func TestBanner(t *testing.T) {
	s := &core.Snapshot{Phase: core.PhasePlay}
	s.Teams[core.Left] = core.TeamState{Name: "A", Score: 2}
	s.Teams[core.Right] = core.TeamState{Name: "B", Side: core.Right, Score: 1}
	assert.Empty(t, Banner(s))

	s.Phase = core.PhaseCorner
	s.Restart = &core.RestartState{Kind: core.Corner, Team: core.Right}
	assert.Equal(t, "B corner", Banner(s))

	s.Phase, s.Restart = core.PhaseFullTime, nil
	assert.Equal(t, "FULL TIME  2 - 1", Banner(s))
}
