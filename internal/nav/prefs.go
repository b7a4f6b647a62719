package nav

import (
	"errors"

	"github.com/goccy/go-json"

	"github.com/atomicstack/xmb/internal/logging/events"
	"github.com/atomicstack/xmb/internal/menu"
	"github.com/atomicstack/xmb/internal/store"
)

// Persisted keys, one per field.
const (
	KeyColumn = "xmb.column"
	KeyRow    = "xmb.row"
	KeyPanel  = "xmb.panel"
	KeyTheme  = "xmb.theme"
)

// Keys lists every persisted key.
var Keys = []string{KeyColumn, KeyRow, KeyPanel, KeyTheme}

// Store is the durable key-value capability the controller needs.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// prefs reads and writes state fields. All failures are traced and swallowed.
type prefs struct {
	store Store
}

func newPrefs(s Store) *prefs {
	return &prefs{store: s}
}

func (p *prefs) restore(catalog menu.Catalog) State {
	s := DefaultState()
	if p.store == nil {
		return s
	}
	var col, row int
	if p.read(KeyColumn, &col) {
		s.Cursor.Column = clampIndex(col, catalog.Len())
	}
	if p.read(KeyRow, &row) {
		s.Cursor.Row = clampIndex(row, catalog.ItemCount(s.Cursor.Column))
	}
	var panel *string
	if p.read(KeyPanel, &panel) && panel != nil {
		if candidate := menu.Panel(*panel); candidate.Valid() {
			s.Overlay = Overlay{Panel: candidate}
		} else {
			events.Store.Malformed(KeyPanel, nil)
		}
	}
	var theme string
	if p.read(KeyTheme, &theme) {
		if t := Theme(theme); t.Valid() {
			s.Theme = t
		} else {
			events.Store.Malformed(KeyTheme, nil)
		}
	}
	return s
}

// read decodes key into dst, reporting false when absent or malformed.
func (p *prefs) read(key string, dst interface{}) bool {
	data, err := p.store.Get(key)
	if err != nil {
		// Absent keys are the normal first-run case; other errors are traced.
		if !errors.Is(err, store.ErrNotFound) {
			events.Store.Error("get", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		events.Store.Malformed(key, err)
		return false
	}
	return true
}

func (p *prefs) save(before, after State) {
	if p.store == nil {
		return
	}
	if before.Cursor.Column != after.Cursor.Column {
		p.write(KeyColumn, after.Cursor.Column)
	}
	if before.Cursor.Row != after.Cursor.Row {
		p.write(KeyRow, after.Cursor.Row)
	}
	if before.Overlay != after.Overlay {
		var panel *string
		if after.Overlay.Open() {
			name := string(after.Overlay.Panel)
			panel = &name
		}
		p.write(KeyPanel, panel)
	}
	if before.Theme != after.Theme {
		p.write(KeyTheme, string(after.Theme))
	}
}

func (p *prefs) write(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		events.Store.Error("encode", key, err)
		return
	}
	if err := p.store.Set(key, data); err != nil {
		events.Store.Error("set", key, err)
	}
}
