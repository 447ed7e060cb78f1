package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func click(b MenuButton) Controls {
	return Controls{CursorX: b.X + 1, CursorY: b.Y + 1, CursorMoved: true, Click: true}
}

func TestTitleButtons(t *testing.T) {
	m := NewMenu(1280, 800)
	b := m.Buttons()
	require.Len(t, b, 4)
	assert.Equal(t, "2 PLAYERS", b[1].Text)
	for _, btn := range b {
		assert.Equal(t, 640-110, btn.X)
	}

	assert.Equal(t, ActStart2P, m.Handle(click(b[1])))
	assert.Equal(t, StatePlaying, m.State)
	assert.Nil(t, m.Buttons())
}

func TestKeyboardNavigation(t *testing.T) {
	m := NewMenu(1280, 800)
	assert.Equal(t, ActNone, m.Handle(Controls{Up: true}))
	assert.Equal(t, ActQuit, m.Handle(Controls{Confirm: true}), "up from the first wraps to the last")

	m = NewMenu(1280, 800)
	m.Handle(Controls{Down: true})
	m.Handle(Controls{Down: true})
	assert.Equal(t, ActWatch, m.Handle(Controls{Confirm: true}))
}

func TestClickOutsideDoesNothing(t *testing.T) {
	m := NewMenu(1280, 800)
	assert.Equal(t, ActNone, m.Handle(Controls{CursorX: 5, CursorY: 5, CursorMoved: true, Click: true}))
	assert.Equal(t, StateTitle, m.State)
}

func TestPauseAndResume(t *testing.T) {
	m := NewMenu(1280, 800)
	m.State = StatePlaying

	assert.Equal(t, ActNone, m.Handle(Controls{}))
	assert.Equal(t, ActNone, m.Handle(Controls{Back: true}))
	assert.Equal(t, StatePaused, m.State)

	assert.Equal(t, ActResume, m.Handle(Controls{Back: true}))
	assert.Equal(t, StatePlaying, m.State)

	m.Handle(Controls{Back: true})
	b := m.Buttons()
	require.Len(t, b, 3)
	assert.Equal(t, ActTitle, m.Handle(click(b[2])))
	assert.Equal(t, StateTitle, m.State)
}

func TestBackOnTitleQuits(t *testing.T) {
	m := NewMenu(1280, 800)
	assert.Equal(t, ActQuit, m.Handle(Controls{Back: true}))
}

func TestFullTime(t *testing.T) {
	m := NewMenu(1280, 800)
	m.State = StatePlaying
	m.Finish("2 - 1")
	assert.Equal(t, "FULL TIME  2 - 1", m.title())
	assert.Equal(t, ActNone, m.Handle(Controls{Back: true}))
	assert.Equal(t, ActRestart, m.Handle(Controls{Confirm: true}))
	assert.Equal(t, StatePlaying, m.State)
}

func TestHoverFollowsCursor(t *testing.T) {
	m := NewMenu(1280, 800)
	b := m.Buttons()
	m.Handle(Controls{CursorX: b[2].X + 3, CursorY: b[2].Y + 3, CursorMoved: true})
	assert.Equal(t, 2, m.hoverIdx)
	// a still cursor does not steal the keyboard selection
	m.Handle(Controls{Down: true})
	m.Handle(Controls{CursorX: b[2].X + 3, CursorY: b[2].Y + 3})
	assert.Equal(t, 3, m.hoverIdx)
}
