package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/xmb/internal/cue"
	"github.com/atomicstack/xmb/internal/frame"
	"github.com/atomicstack/xmb/internal/gamepad"
	"github.com/atomicstack/xmb/internal/input"
	"github.com/atomicstack/xmb/internal/logging/events"
	"github.com/atomicstack/xmb/internal/menu"
	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/store"
	"github.com/atomicstack/xmb/internal/ui"
	"github.com/atomicstack/xmb/internal/ui/command"
)

// GamepadNone disables the gamepad adapter.
const GamepadNone = "none"

// Config describes user-provided application options.
type Config struct {
	Store      string `json:"store" validate:"oneof=disk sqlite memory"`
	StorePath  string `json:"storePath"`
	Catalog    string `json:"catalog"`
	Category   string `json:"category"`
	Gamepad    string `json:"gamepad" validate:"required"`
	Mapping    string `json:"mapping" validate:"oneof=standard linux"`
	FPS        int    `json:"fps" validate:"min=1,max=240"`
	Sound      string `json:"sound" validate:"oneof=bell none"`
	ShowFooter bool   `json:"footer"`
	Width      int    `json:"width" validate:"min=0"`
	Height     int    `json:"height" validate:"min=0"`
}

// Run bootstraps and executes the Bubble Tea program until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	catalog, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	st, err := store.Open(store.Backend(cfg.Store), cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	player := cue.NewPlayer(cueDevice(cfg.Sound, os.Stderr))
	defer player.Wait()

	ctrl := nav.New(catalog, nav.WithStore(st), nav.WithCue(player))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	var pad *input.Gamepad
	if cfg.Gamepad != GamepadNone {
		mapping, ok := input.MappingByName(cfg.Mapping)
		if !ok {
			return fmt.Errorf("unknown gamepad mapping %q", cfg.Mapping)
		}
		device := gamepad.Open(cfg.Gamepad)
		g.Go(func() error { return device.Run(gctx) })
		pad = input.NewGamepad(device, mapping)
	}

	clock := frame.Start(frame.Interval(cfg.FPS))
	defer clock.Stop()

	model := ui.NewModel(ctrl, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Clock:      clock,
		Gamepad:    pad,
		FPS:        cfg.FPS,
	})
	if cfg.Category != "" {
		if err := jumpToCategory(model.Bus(), catalog, cfg.Category); err != nil {
			return err
		}
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	err = g.Wait()
	clock.Stop()
	events.App.Stop(stopReason(ctx, err))
	return err
}

// LoadCatalog returns the built-in catalog or the one at path.
func LoadCatalog(path string) (menu.Catalog, error) {
	if path == "" {
		return menu.Default(), nil
	}
	catalog, err := menu.Load(path)
	if err != nil {
		return menu.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

func jumpToCategory(bus *command.Bus, catalog menu.Catalog, query string) error {
	idx, ok := catalog.FindCategory(query)
	if !ok {
		return fmt.Errorf("no category matches %q", query)
	}
	jump := nav.Column(idx)
	if bus.Dispatch(command.SourceStartup, jump) {
		return nil
	}
	// A restored panel blocks movement until it is closed.
	if bus.Dispatch(command.SourceStartup, nav.Cmd(nav.Close)) && bus.Dispatch(command.SourceStartup, jump) {
		return nil
	}
	return fmt.Errorf("category %q could not be selected", query)
}

func cueDevice(sound string, w io.Writer) cue.Device {
	if sound == "bell" {
		return cue.NewBell(w)
	}
	return cue.Silent{}
}

func stopReason(ctx context.Context, err error) string {
	switch {
	case err != nil:
		return err.Error()
	case ctx.Err() != nil:
		return "cancelled"
	default:
		return "quit"
	}
}
