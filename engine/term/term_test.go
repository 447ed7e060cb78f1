package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/kickoff/engine/core"
	"github.com/1siamBot/kickoff/engine/geom"
)

var pitch = Pitch{Width: 1100, Height: 680, Pad: 20, GoalWidth: 120}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func snapshot() *core.Snapshot {
	s := &core.Snapshot{Phase: core.PhasePlay, Remaining: 125}
	s.Teams[core.Left] = core.TeamState{Name: "A", Score: 1}
	s.Teams[core.Right] = core.TeamState{Name: "B", Side: core.Right}
	s.Players = []core.PlayerState{
		{Team: core.Left, Role: core.GK, Number: 1, Pos: geom.V(60, 340)},
		{Team: core.Right, Role: core.ST, Number: 10, Pos: geom.V(800, 200)},
	}
	s.Ball = core.BallState{Pos: geom.V(550, 340), Owner: -1}
	return s
}

func TestCellMapping(t *testing.T) {
	v := NewView(newScreen(t), pitch)
	x, y := v.Cell(0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
	x, y = v.Cell(1100, 680)
	assert.Equal(t, 79, x)
	assert.Equal(t, 23, y)
}

func TestDraw(t *testing.T) {
	scr := newScreen(t)
	v := NewView(scr, pitch)
	s := snapshot()
	v.Draw(s)

	bx, by := v.Cell(550, 340)
	assert.Equal(t, 'o', runeAt(scr, bx, by))
	gx, gy := v.Cell(60, 340)
	assert.Equal(t, 'G', runeAt(scr, gx, gy))
	sx, sy := v.Cell(800, 200)
	assert.Equal(t, '0', runeAt(scr, sx, sy))

	// goal mouth drawn on the end line
	x0, _ := v.Cell(20, 0)
	assert.Equal(t, '[', runeAt(scr, x0, by))

	var status []rune
	for x := 0; x < 24; x++ {
		status = append(status, runeAt(scr, x, 0))
	}
	assert.Equal(t, " A 1 - 0 B   2:05   PLAY", string(status))
}

func TestStatusDuringRestart(t *testing.T) {
	s := snapshot()
	s.Phase = core.PhaseThrowIn
	s.Restart = &core.RestartState{Kind: core.ThrowIn, Team: core.Right}
	assert.Contains(t, Status(s), "RESTART-THROWIN (B)")
}

func TestQuit(t *testing.T) {
	assert.True(t, Quit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, Quit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, Quit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, Quit(tcell.NewEventResize(80, 24)))
}
