// Package ui holds the windowed host's menus: title, pause and full time.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuState is which menu, if any, is over the pitch
type MenuState int

const (
	StateTitle MenuState = iota
	StatePlaying
	StatePaused
	StateFullTime
)

// Action is what the host should do after a menu update
type Action int

const (
	ActNone Action = iota
	ActStart1P
	ActStart2P
	ActWatch
	ActResume
	ActRestart
	ActTitle
	ActQuit
)

// MenuButton represents a clickable menu button
type MenuButton struct {
	X, Y, W, H int
	Text       string
	Action     Action
}

func (b MenuButton) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Controls is one frame of menu input
type Controls struct {
	CursorX, CursorY int
	CursorMoved      bool
	Click            bool
	Up, Down         bool
	Confirm          bool
	Back             bool
}

// Menu manages the menus; the pitch keeps drawing underneath
type Menu struct {
	State   MenuState
	ScreenW int
	ScreenH int
	Tick    float64

	// Result is shown on the full time panel
	Result string

	hoverIdx     int
	lastX, lastY int
}

var (
	menuPanel   = color.RGBA{15, 15, 30, 230}
	menuBorder  = color.RGBA{0, 140, 200, 255}
	menuAccent  = color.RGBA{0, 200, 255, 255}
	menuBtnNorm = color.RGBA{25, 35, 55, 240}
	menuBtnHov  = color.RGBA{35, 55, 90, 255}
	menuShade   = color.RGBA{0, 0, 0, 160}
)

func NewMenu(screenW, screenH int) *Menu {
	return &Menu{State: StateTitle, ScreenW: screenW, ScreenH: screenH}
}

// Finish shows the full time panel
func (m *Menu) Finish(result string) {
	m.State = StateFullTime
	m.Result = result
	m.hoverIdx = 0
}

func (m *Menu) title() string {
	switch m.State {
	case StateTitle:
		return "KICKOFF"
	case StatePaused:
		return "PAUSED"
	case StateFullTime:
		return "FULL TIME  " + m.Result
	}
	return ""
}

// Buttons lays out the current menu's buttons centred on screen
func (m *Menu) Buttons() []MenuButton {
	var names []string
	var acts []Action
	switch m.State {
	case StateTitle:
		names = []string{"1 PLAYER", "2 PLAYERS", "WATCH", "QUIT"}
		acts = []Action{ActStart1P, ActStart2P, ActWatch, ActQuit}
	case StatePaused:
		names = []string{"RESUME", "RESTART", "QUIT TO TITLE"}
		acts = []Action{ActResume, ActRestart, ActTitle}
	case StateFullTime:
		names = []string{"REMATCH", "TITLE"}
		acts = []Action{ActRestart, ActTitle}
	default:
		return nil
	}
	cx := m.ScreenW / 2
	startY := m.ScreenH/2 - 40
	bw, bh, gap := 220, 36, 8
	buttons := make([]MenuButton, len(names))
	for i, name := range names {
		buttons[i] = MenuButton{
			X:      cx - bw/2,
			Y:      startY + i*(bh+gap),
			W:      bw,
			H:      bh,
			Text:   name,
			Action: acts[i],
		}
	}
	return buttons
}

// Handle applies one frame of input and returns the chosen action. State
// changes that follow from the action are applied here; the host does the rest.
func (m *Menu) Handle(c Controls) Action {
	if m.State == StatePlaying {
		if c.Back {
			m.State = StatePaused
			m.hoverIdx = 0
		}
		return ActNone
	}
	if c.Back {
		switch m.State {
		case StatePaused:
			m.State = StatePlaying
			return ActResume
		case StateTitle:
			return ActQuit
		}
		return ActNone
	}

	buttons := m.Buttons()
	if c.CursorMoved {
		for i, b := range buttons {
			if b.contains(c.CursorX, c.CursorY) {
				m.hoverIdx = i
			}
		}
	}
	n := len(buttons)
	if c.Up {
		m.hoverIdx = (m.hoverIdx + n - 1) % n
	}
	if c.Down {
		m.hoverIdx = (m.hoverIdx + 1) % n
	}

	var act Action
	switch {
	case c.Click:
		for _, b := range buttons {
			if b.contains(c.CursorX, c.CursorY) {
				act = b.Action
			}
		}
	case c.Confirm && m.hoverIdx >= 0 && m.hoverIdx < n:
		act = buttons[m.hoverIdx].Action
	}

	switch act {
	case ActStart1P, ActStart2P, ActWatch, ActResume, ActRestart:
		m.State = StatePlaying
	case ActTitle:
		m.State = StateTitle
		m.hoverIdx = 0
	}
	return act
}

// Update reads the keyboard and mouse and handles them
func (m *Menu) Update(dt float64) Action {
	m.Tick += dt
	mx, my := ebiten.CursorPosition()
	moved := mx != m.lastX || my != m.lastY
	m.lastX, m.lastY = mx, my
	return m.Handle(Controls{
		CursorX:     mx,
		CursorY:     my,
		CursorMoved: moved,
		Click:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Up:          inpututil.IsKeyJustPressed(ebiten.KeyUp),
		Down:        inpututil.IsKeyJustPressed(ebiten.KeyDown),
		Confirm:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Back:        inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	})
}

func (m *Menu) Draw(screen *ebiten.Image) {
	buttons := m.Buttons()
	if buttons == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), menuShade, false)

	cx := m.ScreenW / 2
	panelW := 300
	panelH := 80 + len(buttons)*44
	px := float32(cx - panelW/2)
	py := float32(m.ScreenH/2 - 90)
	vector.DrawFilledRect(screen, px, py, float32(panelW), float32(panelH), menuPanel, false)
	vector.StrokeRect(screen, px, py, float32(panelW), float32(panelH), 2, menuBorder, false)

	title := m.title()
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, int(py)+20)
	vector.DrawFilledRect(screen, px+20, py+38, float32(panelW-40), 2, menuAccent, false)

	for i, b := range buttons {
		m.drawMenuButton(screen, b, i == m.hoverIdx)
	}
}

func (m *Menu) drawMenuButton(screen *ebiten.Image, b MenuButton, hovered bool) {
	clr := menuBtnNorm
	border := color.RGBA{40, 70, 120, 200}
	if hovered {
		clr = menuBtnHov
		border = menuAccent
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1.5, border, false)
	ebitenutil.DebugPrintAt(screen, b.Text, b.X+b.W/2-len(b.Text)*3, b.Y+b.H/2-6)
}

// Resize keeps menus centred in a resized window
func (m *Menu) Resize(screenW, screenH int) {
	m.ScreenW, m.ScreenH = screenW, screenH
}
