package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/xmb/internal/logging/events"
	"github.com/atomicstack/xmb/internal/menu"
	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(keyMsg, keys.ScrollUp, keys.ScrollDown):
		m.scrollPanel(keyMsg)
		return nil
	case key.Matches(keyMsg, keys.Copy):
		return m.copyContact()
	}
	for _, b := range commandBindings {
		if key.Matches(keyMsg, b.binding) {
			m.dispatch(command.SourceKeyboard, nav.Cmd(b.kind))
			return nil
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncPanel()
	return nil
}

type copyResultMsg struct {
	panel menu.Panel
	err   error
}

// copyContact puts the contact address on the clipboard while the contact
// panel is showing.
func (m *Model) copyContact() tea.Cmd {
	st := m.ctrl.State()
	if st.Overlay.Panel != menu.PanelContact {
		return nil
	}
	address := m.ctrl.Catalog().Contact
	if address == "" {
		return nil
	}
	write := m.copy
	return func() tea.Msg {
		return copyResultMsg{panel: st.Overlay.Panel, err: write(address)}
	}
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	events.Panel.Copy(string(res.panel), res.err)
	if res.err != nil {
		m.setInfo("Copy failed: " + res.err.Error())
		return nil
	}
	m.setInfo("Copied " + m.ctrl.Catalog().Contact)
	return nil
}
