package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/viewloop/internal/app"
	"github.com/atomicstack/viewloop/internal/source"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// ItemsFile is the YAML document accepted by -items-file.
type ItemsFile struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

const (
	envTick      = "VIEWLOOP_TICK"
	envBuffer    = "VIEWLOOP_BUFFER"
	envTitle     = "VIEWLOOP_TITLE"
	envItems     = "VIEWLOOP_ITEMS"
	envItemsFile = "VIEWLOOP_ITEMS_FILE"
	envTrace     = "VIEWLOOP_TRACE"
	envLogFile   = "VIEWLOOP_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("viewloop", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tick := fs.Duration("tick", envOrDuration(env, envTick, source.DefaultTickInterval), "interval between tick events")
	buffer := fs.Int("buffer", envOrInt(env, envBuffer, source.DefaultCapacity), "capacity of the event channel")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "selector title (empty shows the frame counter)")
	items := fs.String("items", envOrDefault(env, envItems, ""), "comma separated list of items")
	itemsFile := fs.String("items-file", envOrDefault(env, envItemsFile, ""), "YAML file with title and items")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			TickInterval: *tick,
			Capacity:     *buffer,
			Title:        *title,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tick":      tick.String(),
			"buffer":    strconv.Itoa(*buffer),
			"title":     *title,
			"items":     *items,
			"itemsFile": *itemsFile,
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if *itemsFile != "" {
		doc, err := LoadItemsFile(*itemsFile)
		if err != nil {
			return Config{}, err
		}
		cfg.App.Items = doc.Items
		if cfg.App.Title == "" {
			cfg.App.Title = doc.Title
		}
	}
	if list := splitItems(*items); len(list) > 0 {
		cfg.App.Items = list
	}
	if cfg.App.Items == nil {
		cfg.App.Items = app.DefaultItems()
	}

	return cfg, nil
}

// LoadItemsFile reads a YAML items document.
func LoadItemsFile(path string) (ItemsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ItemsFile{}, fmt.Errorf("read items file: %w", err)
	}
	var doc ItemsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ItemsFile{}, fmt.Errorf("parse items file %s: %w", path, err)
	}
	if doc.Items == nil {
		doc.Items = []string{}
	}
	return doc, nil
}

func splitItems(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the event source cannot run with.
func Validate(cfg Config) error {
	if cfg.App.TickInterval <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.TickInterval)
	}
	if cfg.App.Capacity < 1 {
		return fmt.Errorf("buffer must be >= 1 (got %d)", cfg.App.Capacity)
	}
	return nil
}
