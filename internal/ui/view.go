package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/xmb/internal/menu"
	"github.com/atomicstack/xmb/internal/theme"
)

const (
	ribbonIndent   = 4
	parallaxScale  = 10.0
	backdropGlyphs = "·    ∙    "
	closeLabel     = "×"
	footerText     = "Use ←/→ to switch categories · ↑/↓ to browse · Enter to open"
)

// canvas accumulates rendered rows so hit regions can be placed by row index.
type canvas struct {
	lines []string
}

func (c *canvas) add(block string) int {
	top := len(c.lines)
	c.lines = append(c.lines, strings.Split(block, "\n")...)
	return top
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()
	styles := m.styles()
	m.hits.reset()

	var c canvas
	c.add(m.help.View(keys))
	c.blank()
	offset := m.ribbonOffset()
	c.add(styles.Hint.Render(backdrop(width, offset)))
	m.renderRibbon(&c, styles, offset)
	c.blank()

	if m.ctrl.State().Overlay.Open() {
		m.renderPanel(&c, styles, width)
	} else {
		m.renderRail(&c, styles, offset)
	}

	if info := m.currentInfo(); info != "" {
		c.blank()
		c.add(styles.Info.Render(info))
	}
	if m.showFooter {
		c.blank()
		c.add(styles.Footer.Render(footerText))
	}

	lines := c.lines
	if len(lines) > height {
		lines = lines[:height]
	}
	m.hits.clip(len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width), "…")
		}
	}
	return strings.Join(lines, "\n")
}

// chromeRows is the number of rows drawn around the rail or panel.
func (m *Model) chromeRows() int {
	rows := lipgloss.Height(m.help.View(keys)) + 5
	if m.showFooter {
		rows += 2
	}
	return rows + 2 // info line
}

// ribbonOffset converts the sprung parallax offset into a cell indent.
func (m *Model) ribbonOffset() int {
	indent := ribbonIndent - int(math.Round(m.ribbonX/parallaxScale))
	if indent < 0 {
		return 0
	}
	return indent
}

func backdrop(width, offset int) string {
	if width <= 0 {
		return ""
	}
	pattern := []rune(backdropGlyphs)
	out := make([]rune, width)
	for i := range out {
		out[i] = pattern[(i+offset)%len(pattern)]
	}
	return string(out)
}

func (m *Model) renderRibbon(c *canvas, styles *theme.Styles, offset int) {
	st := m.ctrl.State()
	row := len(c.lines)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", offset))
	x := offset
	activeX, activeW := 0, 0
	for i, cat := range m.ctrl.Catalog().Categories {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		label := cat.Label
		if cat.Icon != "" {
			label = cat.Icon + " " + label
		}
		style := styles.Category
		if i == st.Cursor.Column {
			style = styles.ActiveCategory
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		if i == st.Cursor.Column {
			activeX, activeW = x, w
		}
		m.hits.add(region{kind: hitCategory, index: i, x0: x, x1: x + w - 1, y0: row, y1: row})
		b.WriteString(rendered)
		x += w
	}
	c.add(b.String())
	c.add(strings.Repeat(" ", activeX) + styles.Underline.Render(strings.Repeat("━", activeW)))
}

func (m *Model) renderRail(c *canvas, styles *theme.Styles, offset int) {
	st := m.ctrl.State()
	cat := m.ctrl.CurrentCategory()
	x := offset + 1
	for i, item := range cat.Items {
		active := i == st.Cursor.Row
		card := renderCard(styles, item, active, i, len(cat.Items))
		top := c.add(indentBlock(card, x))
		m.hits.add(region{
			kind:  hitItem,
			index: i,
			x0:    x,
			x1:    x + lipgloss.Width(card) - 1,
			y0:    top,
			y1:    top + lipgloss.Height(card) - 1,
		})
	}
}

func renderCard(styles *theme.Styles, item menu.Item, active bool, idx, total int) string {
	rows := []string{styles.ItemTitle.Render(item.Title)}
	if item.Subtitle != "" {
		rows = append(rows, styles.ItemSubtitle.Render(item.Subtitle))
	}
	style := styles.Item
	if active {
		style = styles.ActiveItem
		meta := styles.ItemBadge.Render(fmt.Sprintf("%d/%d", idx+1, total))
		if item.CTA != "" {
			meta += "  " + styles.ItemCTA.Render(item.CTA+" ›")
		}
		rows = append(rows, meta)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderPanel(c *canvas, styles *theme.Styles, width int) {
	m.syncPanel()
	st := m.ctrl.State()
	content := m.ctrl.Catalog().Content(st.Overlay.Panel)
	inner := m.panelInnerWidth()

	closeBtn := styles.PanelClose.Render(closeLabel)
	closeW := lipgloss.Width(closeBtn)
	title := content.Title
	if title == "" {
		title = string(st.Overlay.Panel)
	}
	titleMax := inner - closeW - 1
	if titleMax < 1 {
		titleMax = 1
	}
	title = truncate.StringWithTail(title, uint(titleMax), "…")
	renderedTitle := styles.PanelTitle.Render(title)
	gap := inner - lipgloss.Width(renderedTitle) - closeW
	if gap < 1 {
		gap = 1
	}
	rows := []string{
		renderedTitle + strings.Repeat(" ", gap) + closeBtn,
		"",
		m.panel.viewport.View(),
	}
	if st.Overlay.Panel == menu.PanelContact && m.ctrl.Catalog().Contact != "" {
		rows = append(rows, "", styles.Info.Render("y copy "+m.ctrl.Catalog().Contact))
	}
	box := styles.Panel.Width(inner + 4).Render(strings.Join(rows, "\n"))

	x := (width - lipgloss.Width(box)) / 2
	if x < 0 {
		x = 0
	}
	top := c.add(indentBlock(box, x))
	// Border and left padding precede the title row.
	closeX := x + 3 + lipgloss.Width(renderedTitle) + gap
	m.hits.add(region{kind: hitPanelClose, x0: closeX, x1: closeX + closeW - 1, y0: top + 1, y1: top + 1})
}

func indentBlock(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
