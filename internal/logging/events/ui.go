package events

import "github.com/atomicstack/xmb/internal/logging"

type NavTracer struct{}

type CommandTracer struct{}

type PanelTracer struct{}

var (
	Nav     = NavTracer{}
	Command = CommandTracer{}
	Panel   = PanelTracer{}
)

func (NavTracer) Restore(column, row int, panel, theme string) {
	logging.Trace("nav.restore", map[string]interface{}{
		"column": column,
		"row":    row,
		"panel":  panel,
		"theme":  theme,
	})
}

func (NavTracer) Cursor(column, row int) {
	logging.Trace("nav.cursor", map[string]interface{}{"column": column, "row": row})
}

func (NavTracer) Overlay(panel string) {
	logging.Trace("nav.overlay", map[string]interface{}{"panel": panel})
}

func (NavTracer) Theme(theme string) {
	logging.Trace("nav.theme", map[string]interface{}{"theme": theme})
}

func (CommandTracer) Dispatch(source, command string) {
	logging.Trace("command.dispatch", map[string]interface{}{"source": source, "command": command})
}

func (CommandTracer) Ignored(source, command string) {
	logging.Trace("command.ignored", map[string]interface{}{"source": source, "command": command})
}

func (PanelTracer) Copy(panel string, err error) {
	payload := map[string]interface{}{"panel": panel}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("panel.copy", payload)
}
