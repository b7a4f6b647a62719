// Package ui contains the Bubble Tea program that renders the cross-media bar.
// Model.Update routes each tea.Msg through a typed handler registry so every
// message kind is handled by one focused function.
//
// Input adapters:
//   - Keyboard bindings (keys.go) translate presses into nav commands.
//   - The pointer adapter (pointer.go) resolves mouse presses against hit
//     regions recorded by the most recent View call.
//   - The gamepad adapter is polled once per frame tick (frame.go). When the
//     frame clock closes its channel polling stops for good.
//
// All three feed internal/ui/command.Bus, which applies commands on the
// nav.Controller. The model never mutates navigation state directly; it only
// derives view state (panel viewport, ribbon spring) from the controller.
package ui
