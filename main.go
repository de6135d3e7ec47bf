package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/viewloop/internal/app"
	"github.com/atomicstack/viewloop/internal/config"
	"github.com/atomicstack/viewloop/internal/logging"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"golang.org/x/term"
)

// ttyDevice is where the screen reads keys and writes frames, whatever stdin
// and stdout point at.
const ttyDevice = "/dev/tty"

// viewloop shows a selectable list in the terminal and reports the chosen
// item in a nested alert. It exits 0 when the list is closed or input ends.
func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, probeTerminal(ttyDevice)))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the settings the run resolved to and the
// terminal it is about to take over.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	return map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"source": map[string]interface{}{
			"tick":   cfg.App.TickInterval.String(),
			"buffer": cfg.App.Capacity,
		},
		"selector": map[string]interface{}{
			"title": cfg.App.Title,
			"items": len(cfg.App.Items),
		},
		"terminal": tty,
	}
}

type terminalInfo struct {
	Device          string `json:"device"`
	IsTerminal      bool   `json:"is_terminal"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	StdinRedirected bool   `json:"stdin_redirected"`
	Error           string `json:"error,omitempty"`
}

// probeTerminal opens path the way the screen will and reports its size.
func probeTerminal(path string) terminalInfo {
	info := terminalInfo{
		Device:          path,
		StdinRedirected: !term.IsTerminal(int(os.Stdin.Fd())),
	}
	f, err := os.Open(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer f.Close()

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return info
	}
	info.IsTerminal = true
	if width, height, err := term.GetSize(fd); err == nil {
		info.Width = width
		info.Height = height
	} else {
		info.Error = err.Error()
	}
	return info
}
