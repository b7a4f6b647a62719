package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/atomicstack/xmb/internal/nav"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Hint             *lipgloss.Style
	HintKey          *lipgloss.Style
	Category         *lipgloss.Style
	ActiveCategory   *lipgloss.Style
	Underline        *lipgloss.Style
	Item             *lipgloss.Style
	ActiveItem       *lipgloss.Style
	ItemTitle        *lipgloss.Style
	ItemSubtitle     *lipgloss.Style
	ItemBadge        *lipgloss.Style
	ItemCTA          *lipgloss.Style
	Panel            *lipgloss.Style
	PanelTitle       *lipgloss.Style
	PanelClose       *lipgloss.Style
	Footer           *lipgloss.Style
	Info             *lipgloss.Style
	MarkdownStyle    string
	BackgroundAccent lipgloss.Color
}

// palette is the small set of colours each theme is built from.
type palette struct {
	background string
	foreground string
	accent     string
	muted      string
	border     string
	markdown   string
}

var palettes = map[nav.Theme]palette{
	nav.ThemeDefault: {
		background: "#0f172a",
		foreground: "#eff6ff",
		accent:     "#60a5fa",
		muted:      "#bfdbfe",
		border:     "#334155",
		markdown:   "dark",
	},
	nav.ThemeAlternate: {
		background: "#f8fafc",
		foreground: "#0f172a",
		accent:     "#7c3aed",
		muted:      "#475569",
		border:     "#cbd5e1",
		markdown:   "light",
	},
}

var built = map[nav.Theme]*Styles{}

func init() {
	for name, p := range palettes {
		built[name] = build(p)
	}
}

// For returns the style set for a theme, falling back to the default.
func For(t nav.Theme) *Styles {
	if s, ok := built[t]; ok {
		return s
	}
	return built[nav.ThemeDefault]
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return For(nav.ThemeDefault)
}

// Dim blends fg toward bg, approximating an element drawn at the given
// opacity. Invalid colours are returned unchanged.
func Dim(fg, bg string, opacity float64) string {
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return b.BlendLab(f, opacity).Clamped().Hex()
}

func build(p palette) *Styles {
	dimFg := lipgloss.Color(Dim(p.foreground, p.background, 0.6))
	dimMuted := lipgloss.Color(Dim(p.muted, p.background, 0.6))
	fg := lipgloss.Color(p.foreground)
	accent := lipgloss.Color(p.accent)
	muted := lipgloss.Color(p.muted)
	border := lipgloss.Color(p.border)

	return &Styles{
		Hint: ptr(
			lipgloss.NewStyle().Foreground(dimMuted),
		),
		HintKey: ptr(
			lipgloss.NewStyle().Foreground(muted).Bold(true),
		),
		Category: ptr(
			lipgloss.NewStyle().Foreground(dimFg).Padding(0, 1),
		),
		ActiveCategory: ptr(
			lipgloss.NewStyle().Foreground(fg).Bold(true).Padding(0, 1),
		),
		Underline: ptr(
			lipgloss.NewStyle().Foreground(accent),
		),
		Item: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Foreground(dimFg).
				Padding(0, 1).
				Width(26),
		),
		ActiveItem: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Foreground(fg).
				Padding(0, 1).
				Width(26),
		),
		ItemTitle: ptr(
			lipgloss.NewStyle().Bold(true),
		),
		ItemSubtitle: ptr(
			lipgloss.NewStyle().Foreground(dimMuted),
		),
		ItemBadge: ptr(
			lipgloss.NewStyle().Foreground(muted),
		),
		ItemCTA: ptr(
			lipgloss.NewStyle().Foreground(accent),
		),
		Panel: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 2),
		),
		PanelTitle: ptr(
			lipgloss.NewStyle().Foreground(muted).Bold(true),
		),
		PanelClose: ptr(
			lipgloss.NewStyle().Foreground(fg).Background(border).Padding(0, 1),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(dimMuted),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(muted),
		),
		MarkdownStyle:    p.markdown,
		BackgroundAccent: accent,
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
