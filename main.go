package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/xmb/internal/app"
	"github.com/atomicstack/xmb/internal/config"
	"github.com/atomicstack/xmb/internal/logging"
	"github.com/atomicstack/xmb/internal/logging/events"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps failures to exit codes: 2 for configuration
// errors, 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(args)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	default:
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCommand(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "xmb",
		Short:         "Browse a portfolio through a cross-media bar in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			traceStartup(cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg.App)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	root.AddCommand(newStateCommand(args))
	return root
}

func newStateCommand(args []string) *cobra.Command {
	state := &cobra.Command{
		Use:   "state",
		Short: "Show the persisted navigation state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return app.ShowState(cmd.OutOrStdout(), cfg.App)
		},
	}
	state.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted navigation state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return app.ClearState(cmd.OutOrStdout(), cfg.App)
		},
	})
	return state
}

// loadConfig resolves configuration for cmd and applies the logging options.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Resolve(cmd.Flags(), args)
	if err != nil {
		return cfg, err
	}
	logging.Configure(cfg.Logging.FilePath)
	if err := logging.SetLevel(cfg.Logging.Level); err != nil {
		return cfg, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	logging.SetTraceEnabled(cfg.Logging.Trace)
	return cfg, nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions, so the trace shows what the UI will draw into.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
