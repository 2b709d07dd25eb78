// Package config loads the punky configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".punky.yaml"

type Config struct {
	// Prompt shown before each input line.
	Prompt string `yaml:"prompt"`

	// HistoryFile keeps input history between sessions. Empty disables it.
	HistoryFile string `yaml:"history_file"`

	Color     bool `yaml:"color"`
	Highlight bool `yaml:"highlight"`

	DebugAST    bool `yaml:"debug_ast"`
	DebugTokens bool `yaml:"debug_tokens"`

	// Listen is the address of the websocket endpoint, e.g. "localhost:7070".
	Listen string `yaml:"listen"`
}

func Default() Config {
	return Config{
		Prompt:    ">> ",
		Color:     true,
		Highlight: true,
		Listen:    "localhost:7070",
	}
}

// DefaultPath returns $HOME/.punky.yaml, or "" when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads the configuration at path on top of the defaults. When path is
// empty the default location is tried and a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

// Decode reads YAML from r on top of the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
