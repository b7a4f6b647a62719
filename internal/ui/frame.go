package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/xmb/internal/frame"
	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/ui/command"
)

func waitForFrame(c *frame.Clock) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-c.Ticks()
		if !ok {
			return frameDoneMsg{}
		}
		return frameMsg{tick: tick}
	}
}

type frameMsg struct {
	tick frame.Tick
}

type frameDoneMsg struct{}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frameEvt, ok := msg.(frameMsg)
	if !ok || m.clock == nil {
		return nil
	}
	m.applyFrame(frameEvt.tick)
	return waitForFrame(m.clock)
}

func (m *Model) handleFrameDoneMsg(msg tea.Msg) tea.Cmd {
	m.clock = nil
	return nil
}

// applyFrame polls the gamepad once and advances the ribbon spring.
func (m *Model) applyFrame(tick frame.Tick) {
	if tick.Elapsed > m.elapsed {
		m.elapsed = tick.Elapsed
	}
	if m.gamepad != nil {
		for _, cmd := range m.gamepad.Poll() {
			m.dispatch(command.SourceGamepad, cmd)
		}
	}
	target := nav.Parallax(m.ctrl.State().Cursor, m.elapsed).X
	m.ribbonX, m.ribbonVel = m.spring.Update(m.ribbonX, m.ribbonVel, target)
}
