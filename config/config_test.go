package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
prompt: "punky> "
color: false
debug_ast: true
history_file: /tmp/punky_history
`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Prompt != "punky> " {
		t.Errorf("unexpected prompt %q", cfg.Prompt)
	}
	if cfg.Color {
		t.Error("color should be disabled")
	}
	if !cfg.DebugAST {
		t.Error("debug_ast should be enabled")
	}
	if cfg.HistoryFile != "/tmp/punky_history" {
		t.Errorf("unexpected history file %q", cfg.HistoryFile)
	}

	// untouched keys keep their defaults
	if !cfg.Highlight || cfg.Listen != "localhost:7070" {
		t.Errorf("defaults were lost: %+v", cfg)
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	if _, err := Decode(strings.NewReader("colour: true\n")); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "punky.yaml")

	if err := os.WriteFile(path, []byte("prompt: \"$ \"\nlisten: \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "$ " || cfg.Listen != ":9000" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.HasPrefix(err.Error(), "config: open ") {
		t.Errorf("unexpected error %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("prompt: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if err == nil || !strings.HasPrefix(err.Error(), "config: parse ") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("a missing default file should give the defaults, got %+v", cfg)
	}

	content := "history_file: ~/.punky_history\n"
	if err := os.WriteFile(filepath.Join(home, DefaultFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HistoryFile != filepath.Join(home, ".punky_history") {
		t.Errorf("unexpected history file %q", cfg.HistoryFile)
	}
}
