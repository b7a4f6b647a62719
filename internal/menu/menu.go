package menu

// Action tags what confirming an item does.
type Action string

const (
	// ActionStart redirects to the work panel; it has no panel of its own.
	ActionStart   Action = "start"
	ActionWork    Action = "work"
	ActionAbout   Action = "about"
	ActionContact Action = "contact"
)

// Panel identifies a detail overlay.
type Panel string

const (
	PanelWork    Panel = "work"
	PanelAbout   Panel = "about"
	PanelContact Panel = "contact"
)

// Panels lists every panel in display order.
var Panels = []Panel{PanelWork, PanelAbout, PanelContact}

// Valid reports whether p names a known panel.
func (p Panel) Valid() bool {
	switch p {
	case PanelWork, PanelAbout, PanelContact:
		return true
	}
	return false
}

// Panel resolves the panel an action opens.
func (a Action) Panel() (Panel, bool) {
	if a == ActionStart {
		return PanelWork, true
	}
	p := Panel(a)
	return p, p.Valid()
}

// Item represents a selectable entry on the item rail.
type Item struct {
	ID       string `yaml:"id" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
	Action   Action `yaml:"action"`
}

// Category is a column of the ribbon.
type Category struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Icon  string `yaml:"icon"`
	Items []Item `yaml:"items" validate:"min=1,dive"`
}

// PanelContent is the markdown shown when a panel is open.
type PanelContent struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog is the immutable menu configuration loaded at startup.
type Catalog struct {
	Categories []Category             `yaml:"categories" validate:"min=1,dive"`
	Panels     map[Panel]PanelContent `yaml:"panels"`
	Contact    string                 `yaml:"contact" validate:"omitempty,email"`
}

// Len returns the number of categories.
func (c Catalog) Len() int {
	return len(c.Categories)
}

// ItemCount returns the number of items in category col, or 0 when col is out of range.
func (c Catalog) ItemCount(col int) int {
	if col < 0 || col >= len(c.Categories) {
		return 0
	}
	return len(c.Categories[col].Items)
}

// Item returns the item at (col, row).
func (c Catalog) Item(col, row int) (Item, bool) {
	if row < 0 || row >= c.ItemCount(col) {
		return Item{}, false
	}
	return c.Categories[col].Items[row], true
}

// Resolve returns the panel confirming item (col, row) opens. An item without
// an action opens the panel named after its category.
func (c Catalog) Resolve(col, row int) (Panel, bool) {
	item, ok := c.Item(col, row)
	if !ok {
		return "", false
	}
	action := item.Action
	if action == "" {
		action = Action(c.Categories[col].ID)
	}
	return action.Panel()
}

// Content returns the body for a panel, falling back to a bare title.
func (c Catalog) Content(p Panel) PanelContent {
	if content, ok := c.Panels[p]; ok {
		return content
	}
	return PanelContent{Title: string(p)}
}
