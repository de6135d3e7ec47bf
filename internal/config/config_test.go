package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/viewloop/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickInterval != 33*time.Millisecond {
		t.Fatalf("expected 33ms tick, got %s", cfg.App.TickInterval)
	}
	if cfg.App.Capacity != 25 {
		t.Fatalf("expected buffer 25, got %d", cfg.App.Capacity)
	}
	if !reflect.DeepEqual(cfg.App.Items, app.DefaultItems()) {
		t.Fatalf("expected default items, got %v", cfg.App.Items)
	}
	if cfg.Logging.Trace {
		t.Fatal("expected trace off by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"VIEWLOOP_TICK=50ms",
		"VIEWLOOP_BUFFER=10",
		"VIEWLOOP_TITLE=from-env",
		"VIEWLOOP_TRACE=true",
		"VIEWLOOP_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs([]string{"-buffer", "3", "-items", "a, b,,c"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickInterval != 50*time.Millisecond {
		t.Fatalf("expected env tick, got %s", cfg.App.TickInterval)
	}
	if cfg.App.Capacity != 3 {
		t.Fatalf("expected flag buffer 3, got %d", cfg.App.Capacity)
	}
	if cfg.App.Title != "from-env" {
		t.Fatalf("expected env title, got %q", cfg.App.Title)
	}
	if !reflect.DeepEqual(cfg.App.Items, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected items %v", cfg.App.Items)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Flags["buffer"] != "3" || cfg.Flags["tick"] != "50ms" {
		t.Fatalf("unexpected flag map %v", cfg.Flags)
	}
	if !reflect.DeepEqual(cfg.Args, []string{"-buffer", "3", "-items", "a, b,,c"}) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"VIEWLOOP_TICK=soon", "VIEWLOOP_BUFFER=lots", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.TickInterval != 33*time.Millisecond || cfg.App.Capacity != 25 {
		t.Fatalf("expected defaults, got %s/%d", cfg.App.TickInterval, cfg.App.Capacity)
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestLoadArgsReadsItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	doc := "title: Groups\nitems:\n  - alpha\n  - beta\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write items file: %v", err)
	}

	cfg, err := LoadArgs([]string{"-items-file", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Title != "Groups" {
		t.Fatalf("expected title from file, got %q", cfg.App.Title)
	}
	if !reflect.DeepEqual(cfg.App.Items, []string{"alpha", "beta"}) {
		t.Fatalf("unexpected items %v", cfg.App.Items)
	}

	cfg, err = LoadArgs([]string{"-items-file", path, "-items", "x", "-title", "T"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Title != "T" || !reflect.DeepEqual(cfg.App.Items, []string{"x"}) {
		t.Fatalf("expected explicit flags to win, got %q %v", cfg.App.Title, cfg.App.Items)
	}
}

func TestLoadArgsReportsBadItemsFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadArgs([]string{"-items-file", filepath.Join(dir, "missing.yaml")}, nil); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("items: [unclosed"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}
	_, err := LoadArgs([]string{"-items-file", bad}, nil)
	if err == nil || !strings.Contains(err.Error(), "parse items file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestEmptyItemsFileGivesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("title: Nothing\n"), 0o644); err != nil {
		t.Fatalf("write items file: %v", err)
	}
	cfg, err := LoadArgs([]string{"-items-file", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Items == nil || len(cfg.App.Items) != 0 {
		t.Fatalf("expected an empty list, got %#v", cfg.App.Items)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs(nil, nil)
	cfg.App.TickInterval = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected zero tick to be rejected")
	}
	cfg, _ = LoadArgs([]string{"-buffer", "0"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected zero buffer to be rejected")
	}
}
