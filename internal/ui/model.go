package ui

import (
	"reflect"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/atomicstack/xmb/internal/frame"
	"github.com/atomicstack/xmb/internal/input"
	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/theme"
	"github.com/atomicstack/xmb/internal/ui/command"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Clock drives gamepad polling and parallax. Nil disables both.
	Clock *frame.Clock
	// Gamepad is polled once per tick. Nil disables gamepad input.
	Gamepad *input.Gamepad
	// FPS tunes the parallax spring; zero uses frame.DefaultFPS.
	FPS int
}

// Model implements the Bubble Tea model for the cross-media bar.
type Model struct {
	ctrl *nav.Controller
	bus  *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	clock   *frame.Clock
	gamepad *input.Gamepad
	elapsed time.Duration

	spring    harmonica.Spring
	ribbonX   float64
	ribbonVel float64

	help  help.Model
	hits  hitMap
	panel panelView

	infoMsg    string
	infoExpire time.Time
	copy       func(string) error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over ctrl.
func NewModel(ctrl *nav.Controller, opts Options) *Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = frame.DefaultFPS
	}
	m := &Model{
		ctrl:       ctrl,
		bus:        command.New(ctrl),
		showFooter: opts.ShowFooter,
		clock:      opts.Clock,
		gamepad:    opts.Gamepad,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8),
		help:       help.New(),
		panel:      newPanelView(),
		copy:       clipboard.WriteAll,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.ribbonX = nav.Parallax(ctrl.State().Cursor, 0).X
	m.registerHandlers()
	return m
}

// Bus exposes the command bus so other adapters can share it.
func (m *Model) Bus() *command.Bus {
	return m.bus
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.clock == nil {
		return nil
	}
	return waitForFrame(m.clock)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(frameDoneMsg{}):      m.handleFrameDoneMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatch routes cmd through the bus and keeps derived view state in step.
func (m *Model) dispatch(source string, cmd nav.Command) bool {
	if !m.bus.Dispatch(source, cmd) {
		return false
	}
	m.syncPanel()
	return true
}

func (m *Model) styles() *theme.Styles {
	return theme.For(m.ctrl.State().Theme)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
