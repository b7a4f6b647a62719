package app

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/atomicstack/xmb/internal/nav"
	"github.com/atomicstack/xmb/internal/store"
)

// StateEntry is one persisted key as shown by the state command.
type StateEntry struct {
	Key     string
	Value   string
	Present bool
}

// ReadState lists the navigation keys followed by any other keys in st.
func ReadState(st store.Store) ([]StateEntry, error) {
	keys := append([]string(nil), nav.Keys...)
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	stored, err := st.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	sort.Strings(stored)
	for _, k := range stored {
		if !known[k] {
			keys = append(keys, k)
		}
	}

	entries := make([]StateEntry, 0, len(keys))
	for _, k := range keys {
		raw, err := st.Get(k)
		switch {
		case errors.Is(err, store.ErrNotFound):
			entries = append(entries, StateEntry{Key: k})
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", k, err)
		default:
			entries = append(entries, StateEntry{Key: k, Value: string(raw), Present: true})
		}
	}
	return entries, nil
}

// ResetState deletes the navigation keys so the next run starts from defaults.
func ResetState(st store.Store) error {
	for _, k := range nav.Keys {
		if err := st.Delete(k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}

// WriteStateTable prints entries as an aligned table.
func WriteStateTable(w io.Writer, entries []StateEntry) {
	bold := color.New(color.Bold, color.Underline).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Key"), bold("Value"))
	for _, e := range entries {
		if !e.Present {
			tbl.AddRow(e.Key, faint("(unset)"))
			continue
		}
		tbl.AddRow(e.Key, e.Value)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// ShowState opens the configured store and prints its contents.
func ShowState(w io.Writer, cfg Config) error {
	st, err := store.Open(store.Backend(cfg.Store), cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	entries, err := ReadState(st)
	if err != nil {
		return err
	}
	WriteStateTable(w, entries)
	return nil
}

// ClearState opens the configured store and resets it.
func ClearState(w io.Writer, cfg Config) error {
	st, err := store.Open(store.Backend(cfg.Store), cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	if err := ResetState(st); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, color.New(color.FgGreen).Sprint("navigation state cleared"))
	return nil
}
