package events

import "github.com/atomicstack/xmb/internal/logging"

type StoreTracer struct{}

type CueTracer struct{}

type GamepadTracer struct{}

type FrameTracer struct{}

var (
	Store   = StoreTracer{}
	Cue     = CueTracer{}
	Gamepad = GamepadTracer{}
	Frame   = FrameTracer{}
)

func (StoreTracer) Error(op, key string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "key": key, "error": err.Error()})
}

func (StoreTracer) Malformed(key string, err error) {
	payload := map[string]interface{}{"key": key}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.malformed", payload)
}

func (CueTracer) Error(class string, err error) {
	if err == nil {
		return
	}
	logging.Trace("cue.error", map[string]interface{}{"class": class, "error": err.Error()})
}

func (CueTracer) Throttled(class string) {
	logging.Trace("cue.throttled", map[string]interface{}{"class": class})
}

func (GamepadTracer) Connected(path string) {
	logging.Trace("gamepad.connected", map[string]interface{}{"path": path})
}

func (GamepadTracer) Missing(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("gamepad.missing", payload)
}

func (GamepadTracer) Disconnected(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("gamepad.disconnected", payload)
}

func (FrameTracer) Stopped(ticks uint64) {
	logging.Trace("frame.stopped", map[string]interface{}{"ticks": ticks})
}
