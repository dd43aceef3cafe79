package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gofi/internal/app"
	"gofi/internal/config"
	"gofi/internal/desktop"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
)

var version = "dev"

// configError marks failures the user fixes in their config or flags; main
// reports them with a dedicated message.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logging.Error(err)
		var cfgErr *configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logging.Close()
		os.Exit(1)
	}
	events.App.Exit(0)
	logging.Close()
}

func newRootCommand() *cobra.Command {
	var confPath string
	var logFile string
	var trace bool

	cmd := &cobra.Command{
		Use:           "gofi",
		Short:         "Keyboard-driven launcher and selection menu",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(confPath, cmd.Flags())
			if err != nil {
				return &configError{err}
			}
			if _, err := cfg.Mode(); err != nil {
				return &configError{err}
			}
			if err := cfg.Validate(); err != nil {
				return &configError{err}
			}
			logging.Configure(logFile)
			logging.SetTraceEnabled(trace)
			desktop.ForkIfConfigured(cfg.Fork)
			traceStartup(cfg)
			return app.Run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&confPath, "conf", "", "path to the config file")
	flags.StringVar(&logFile, "log-file", "", "path to the log file")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")

	flags.String("show", "", "mode to run (run, drun, dmenu, file, math, ssh, emoji, websearch, auto)")
	flags.String("style", "", "path to the style sheet")
	flags.String("prompt", "", "prompt text, defaults to the mode name")
	flags.String("width", "50%", "window width in pixels or percent")
	flags.String("height", "40%", "window height in pixels or percent")
	flags.Int("lines", 0, "maximum number of visible rows")
	flags.Int("columns", 1, "number of item columns")
	flags.Int("lines-additional-space", 0, "extra vertical space in pixels")
	flags.String("location", "", "comma-separated window anchors (top, bottom, left, right, center)")
	flags.String("matching", "contains", "match method (contains, multi-contains, fuzzy)")
	flags.Bool("insensitive", true, "case-insensitive matching")
	flags.Bool("hide-search", false, "hide the search row")
	flags.Bool("hide-scroll", false, "hide the scroll indicator")
	flags.Bool("normal-window", false, "open as a regular window instead of a layer surface")
	flags.Int("image-size", 32, "icon size in pixels")
	flags.Bool("allow-images", true, "render item icons")
	flags.Bool("allow-markup", true, "allow markup in labels")
	flags.String("term", "", "terminal command for terminal applications")
	flags.String("password", "", "mask typed input with the given character")
	flags.String("sort-order", "alphabetical", "pre-search ordering (default, alphabetical)")
	flags.Float64("fuzzy-min-score", 0, "minimum score for fuzzy matches")
	flags.String("line-wrap", "none", "label wrapping (none, word, inherit)")
	flags.String("search", "", "initial search query")
	flags.Bool("fork", false, "detach from the invoking process")
	flags.String("key-detection-type", "value", "chord matching on key value or code")
	flags.String("layer", "top", "layer-shell surface (background, bottom, top, overlay)")
	flags.Bool("no-actions", false, "hide desktop entry sub-actions")
	flags.Bool("emoji-hide-label", false, "show only the glyph in emoji mode")
	flags.String("text-output-mode", "clipboard", "where emoji output goes (clipboard, stdout)")
	flags.String("search-url", "", "websearch URL prefix")

	return cmd
}

func traceStartup(cfg *config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg *config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":   os.Args,
		"mode":   cfg.Show,
		"config": cfg,
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

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
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
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
