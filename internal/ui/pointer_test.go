package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/xmb/internal/menu"
	"github.com/atomicstack/xmb/internal/nav"
)

func findRegion(t *testing.T, h *Harness, kind hitKind, index int) region {
	t.Helper()
	h.View()
	for _, r := range h.Model().hits.regions {
		if r.kind == kind && r.index == index {
			return r
		}
	}
	t.Fatalf("no region of kind %d index %d in %+v", kind, index, h.Model().hits.regions)
	return region{}
}

func TestClickCategoryJumpsColumn(t *testing.T) {
	h, ctrl := newTestHarness(t, Options{})
	h.Key("down")
	r := findRegion(t, h, hitCategory, 2)
	h.Click(r.x0, r.y0)
	if got := ctrl.State().Cursor; got != (nav.Cursor{Column: 2}) {
		t.Fatalf("expected jump to column 2, got %+v", got)
	}
	r = findRegion(t, h, hitCategory, 2)
	h.Click(r.x1, r.y0)
	if got := ctrl.State().Cursor; got != (nav.Cursor{Column: 2}) {
		t.Fatalf("expected re-clicking the active column to keep it, got %+v", got)
	}
}

func TestClickItemSelectsThenConfirms(t *testing.T) {
	h, ctrl := newTestHarness(t, Options{})
	h.Key("right")
	r := findRegion(t, h, hitItem, 2)
	h.Click(r.x0+1, r.y1)
	if got := ctrl.State().Cursor; got != (nav.Cursor{Column: 1, Row: 2}) {
		t.Fatalf("expected row 2 selected, got %+v", got)
	}
	if ctrl.State().Overlay.Open() {
		t.Fatalf("expected first click to only select")
	}
	r = findRegion(t, h, hitItem, 2)
	h.Click(r.x0+1, r.y0)
	if got := ctrl.State().Overlay.Panel; got != menu.PanelWork {
		t.Fatalf("expected second click to open work panel, got %q", got)
	}
}

func TestClickPanelCloseControl(t *testing.T) {
	h, ctrl := newTestHarness(t, Options{})
	h.Key("enter")
	if !ctrl.State().Overlay.Open() {
		t.Fatalf("expected panel open")
	}
	r := findRegion(t, h, hitPanelClose, 0)
	h.Click(r.x0, r.y0)
	if ctrl.State().Overlay.Open() {
		t.Fatalf("expected close control to close the panel")
	}
}

func TestClicksBehindPanelAreIgnored(t *testing.T) {
	h, ctrl := newTestHarness(t, Options{})
	h.Key("enter")
	before := ctrl.State()
	r := findRegion(t, h, hitCategory, 1)
	h.Click(r.x0, r.y0)
	if ctrl.State() != before {
		t.Fatalf("expected header click to be ignored while panel open, got %+v", ctrl.State())
	}
	if len(h.Model().hits.regions) == 0 {
		t.Fatalf("expected regions to be recorded")
	}
	for _, reg := range h.Model().hits.regions {
		if reg.kind == hitItem {
			t.Fatalf("expected no item regions while panel open")
		}
	}
}

func TestClickOnEmptySpaceAndOtherButtons(t *testing.T) {
	h, ctrl := newTestHarness(t, Options{})
	before := ctrl.State()
	h.Click(0, 0)
	r := findRegion(t, h, hitCategory, 1)
	h.Send(tea.MouseMsg{X: r.x0, Y: r.y0, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{X: r.x0, Y: r.y0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if ctrl.State() != before {
		t.Fatalf("expected state unchanged, got %+v", ctrl.State())
	}
}

func TestHitMapClip(t *testing.T) {
	var h hitMap
	h.add(region{kind: hitItem, index: 0, y0: 2, y1: 5})
	h.add(region{kind: hitItem, index: 1, y0: 6, y1: 9})
	h.clip(4)
	if len(h.regions) != 1 || h.regions[0].y1 != 3 {
		t.Fatalf("unexpected regions after clip: %+v", h.regions)
	}
	if _, ok := h.at(0, 5); ok {
		t.Fatalf("expected clipped row to miss")
	}
}
