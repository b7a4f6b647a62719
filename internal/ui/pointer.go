package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/ui/command"
)

type hitKind int

const (
	hitCategory hitKind = iota
	hitItem
	hitPanelClose
)

// region is a clickable cell rectangle, inclusive on both ends.
type region struct {
	kind   hitKind
	index  int
	x0, x1 int
	y0, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// hitMap is rebuilt on every render so it always matches the last frame.
type hitMap struct {
	regions []region
}

func (h *hitMap) reset() {
	h.regions = h.regions[:0]
}

func (h *hitMap) add(r region) {
	h.regions = append(h.regions, r)
}

func (h *hitMap) at(x, y int) (region, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].contains(x, y) {
			return h.regions[i], true
		}
	}
	return region{}, false
}

// clip drops regions that start at or below maxY.
func (h *hitMap) clip(maxY int) {
	kept := h.regions[:0]
	for _, r := range h.regions {
		if r.y0 >= maxY {
			continue
		}
		if r.y1 >= maxY {
			r.y1 = maxY - 1
		}
		kept = append(kept, r)
	}
	h.regions = kept
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		m.scrollPanel(ev)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	if cmd, ok := m.pointerCommand(ev.X, ev.Y); ok {
		m.dispatch(command.SourcePointer, cmd)
	}
	return nil
}

// pointerCommand resolves a press at (x, y) against the last rendered frame.
// Pressing the item that is already active confirms it.
func (m *Model) pointerCommand(x, y int) (nav.Command, bool) {
	r, ok := m.hits.at(x, y)
	if !ok {
		return nav.Command{}, false
	}
	switch r.kind {
	case hitCategory:
		return nav.Column(r.index), true
	case hitItem:
		if r.index == m.ctrl.State().Cursor.Row {
			return nav.Cmd(nav.Confirm), true
		}
		return nav.Row(r.index), true
	case hitPanelClose:
		return nav.Cmd(nav.Close), true
	}
	return nav.Command{}, false
}
