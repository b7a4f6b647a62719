package theme

import (
	"testing"

	"github.com/atomicstack/xmb/internal/nav"
)

func TestForReturnsDistinctThemes(t *testing.T) {
	def := For(nav.ThemeDefault)
	alt := For(nav.ThemeAlternate)
	if def == alt {
		t.Fatalf("expected different style sets")
	}
	if def.MarkdownStyle != "dark" || alt.MarkdownStyle != "light" {
		t.Fatalf("unexpected markdown styles %q / %q", def.MarkdownStyle, alt.MarkdownStyle)
	}
	if For(nav.Theme("neon")) != def {
		t.Fatalf("expected unknown theme to fall back to default")
	}
	if Default() != def {
		t.Fatalf("expected Default to match ThemeDefault")
	}
}

func TestDimBlendsTowardBackground(t *testing.T) {
	if got := Dim("#ffffff", "#000000", 1); got != "#ffffff" {
		t.Fatalf("expected full opacity to keep foreground, got %s", got)
	}
	if got := Dim("#ffffff", "#000000", 0); got != "#000000" {
		t.Fatalf("expected zero opacity to yield background, got %s", got)
	}
	mid := Dim("#ffffff", "#000000", 0.6)
	if mid == "#ffffff" || mid == "#000000" {
		t.Fatalf("expected an intermediate colour, got %s", mid)
	}
	if got := Dim("nope", "#000000", 0.5); got != "nope" {
		t.Fatalf("expected invalid colour returned unchanged, got %s", got)
	}
}
