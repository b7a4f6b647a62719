package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/atomicstack/xmb/internal/menu"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	panelMaxWidth   = 72
	panelMinBody    = 3
	panelChromeRows = 4 // border top/bottom, title row, blank separator
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. Auto-style is avoided because it queries the terminal.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// panelView holds the scrollable body of the open panel.
type panelView struct {
	viewport viewport.Model
	key      string
	panel    menu.Panel
}

func newPanelView() panelView {
	return panelView{viewport: viewport.New(panelMaxWidth, panelMinBody)}
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// panelInnerWidth is the text width inside the panel border and padding.
func (m *Model) panelInnerWidth() int {
	w, _ := m.size()
	outer := w - 2
	if outer > panelMaxWidth {
		outer = panelMaxWidth
	}
	inner := outer - 6 // border and horizontal padding
	if inner < 10 {
		inner = 10
	}
	return inner
}

func (m *Model) panelBodyHeight() int {
	_, h := m.size()
	body := h - m.chromeRows() - panelChromeRows
	if m.ctrl.State().Overlay.Panel == menu.PanelContact {
		body -= 2
	}
	if body < panelMinBody {
		body = panelMinBody
	}
	return body
}

// syncPanel re-renders the panel body when the open panel, theme or size
// changed, and forgets it once the overlay closes.
func (m *Model) syncPanel() {
	st := m.ctrl.State()
	if !st.Overlay.Open() {
		m.panel.key = ""
		m.panel.panel = ""
		return
	}
	styles := m.styles()
	width := m.panelInnerWidth()
	height := m.panelBodyHeight()
	key := fmt.Sprintf("%s|%s|%d|%d", st.Overlay.Panel, styles.MarkdownStyle, width, height)
	if key == m.panel.key {
		return
	}
	content := m.ctrl.Catalog().Content(st.Overlay.Panel)
	m.panel.viewport.Width = width
	m.panel.viewport.Height = height
	m.panel.viewport.SetContent(renderMarkdown(content.Body, styles.MarkdownStyle, width))
	if m.panel.panel != st.Overlay.Panel {
		m.panel.viewport.GotoTop()
	}
	m.panel.key = key
	m.panel.panel = st.Overlay.Panel
}

// scrollPanel forwards scroll input to the panel viewport. It never reaches
// the controller.
func (m *Model) scrollPanel(msg tea.Msg) {
	if !m.ctrl.State().Overlay.Open() {
		return
	}
	m.syncPanel()
	vp, _ := m.panel.viewport.Update(msg)
	m.panel.viewport = vp
}
