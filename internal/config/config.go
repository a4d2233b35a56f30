// Package config loads lifespace configuration from JSONC files, the
// environment and command-line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataFileEmpty      = errors.New("data_file cannot be empty")
	ErrUnknownCurve       = errors.New("unknown urgency_curve")
	ErrNoHome             = errors.New("cannot determine home directory (set HOME)")
)

// Environment variables consulted by [Load].
const (
	EnvDataFile = "LIFESPACE_FILE"
	EnvNoColor  = "NO_COLOR"
)

// appDirName is the per-user data directory under $HOME.
const appDirName = ".life-space"

// Config holds all configuration options.
type Config struct {
	DataFile     string // Absolute path to the activities file
	HistoryFile  string // Absolute path to the command history file
	Color        bool   // Colorize output
	UrgencyCurve string // Key into activity.Curves

	Sources Sources
}

// Sources tracks where configuration came from.
type Sources struct {
	Global   string // Path to global config if loaded, empty otherwise
	Explicit string // Path to -c/--config file if loaded, empty otherwise
	Env      bool   // LIFESPACE_FILE was applied
}

// fileConfig is the on-disk shape. Pointers distinguish unset from zero.
type fileConfig struct {
	DataFile     string `json:"data_file,omitempty"`
	HistoryFile  string `json:"history_file,omitempty"`
	Color        *bool  `json:"color,omitempty"`
	UrgencyCurve string `json:"urgency_curve,omitempty"`
}

// Input holds the inputs for [Load].
type Input struct {
	WorkDir          string            // base for relative paths; os.Getwd() if empty
	ConfigPath       string            // -c/--config flag value
	DataFileOverride string            // -f/--file flag value
	NoColor          bool              // --no-color flag
	Env              map[string]string // environment variables
}

// Default returns the default configuration for home.
func Default(home string) Config {
	return Config{
		DataFile:     filepath.Join(home, appDirName, "activities.json"),
		HistoryFile:  filepath.Join(home, appDirName, "history"),
		Color:        true,
		UrgencyCurve: "linear",
	}
}

// GlobalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/lifespace/config.json if set, otherwise
// ~/.config/lifespace/config.json. Returns empty string without a home.
func GlobalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "lifespace", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "lifespace", "config.json")
	}

	return ""
}

// Load resolves configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config
// 3. Explicit config file via ConfigPath (if non-empty)
// 4. Environment (LIFESPACE_FILE, NO_COLOR)
// 5. CLI overrides.
//
// File paths in the returned Config are absolute.
func Load(input Input) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	home := input.Env["HOME"]
	if home == "" {
		return Config{}, ErrNoHome
	}

	cfg := Default(home)

	globalPath := GlobalPath(input.Env)
	if globalPath != "" {
		fileCfg, loaded, err := loadFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = merge(cfg, fileCfg, home, filepath.Dir(globalPath))
			cfg.Sources.Global = globalPath
		}
	}

	if input.ConfigPath != "" {
		explicitPath := resolve(input.ConfigPath, home, workDir)

		fileCfg, _, err := loadFile(explicitPath, true)
		if err != nil {
			return Config{}, err
		}

		cfg = merge(cfg, fileCfg, home, filepath.Dir(explicitPath))
		cfg.Sources.Explicit = explicitPath
	}

	if dataFile := input.Env[EnvDataFile]; dataFile != "" {
		cfg.DataFile = resolve(dataFile, home, workDir)
		cfg.Sources.Env = true
	}

	if input.Env[EnvNoColor] != "" {
		cfg.Color = false
	}

	if input.DataFileOverride != "" {
		cfg.DataFile = resolve(input.DataFileOverride, home, workDir)
	}

	if input.NoColor {
		cfg.Color = false
	}

	err := validate(cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadFile loads a config file. If mustExist is false, a missing file
// returns loaded=false and no error.
func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit empty data_file is a mistake, not "use the default".
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["data_file"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return fileConfig{}, ErrDataFileEmpty
		}
	}

	return cfg, nil
}

// merge applies overlay to base. Relative paths in a config file are
// relative to the file's directory.
func merge(base Config, overlay fileConfig, home, dir string) Config {
	if overlay.DataFile != "" {
		base.DataFile = resolve(overlay.DataFile, home, dir)
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = resolve(overlay.HistoryFile, home, dir)
	}

	if overlay.Color != nil {
		base.Color = *overlay.Color
	}

	if overlay.UrgencyCurve != "" {
		base.UrgencyCurve = overlay.UrgencyCurve
	}

	return base
}

// resolve expands a leading ~/ and makes path absolute relative to dir.
func resolve(path, home, dir string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(dir, path)
}

func validate(cfg Config) error {
	if cfg.DataFile == "" {
		return ErrDataFileEmpty
	}

	if _, ok := activity.Curves[cfg.UrgencyCurve]; !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownCurve, cfg.UrgencyCurve, strings.Join(CurveNames(), ", "))
	}

	return nil
}

// CurveNames returns the configurable urgency curves, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(activity.Curves))
	for name := range activity.Curves {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Curve returns the configured urgency curve.
func (c Config) Curve() activity.UrgencyCurve {
	return activity.Curves[c.UrgencyCurve]
}

// Format renders the resolved configuration as key=value lines.
func Format(cfg Config) string {
	var b strings.Builder

	b.WriteString("data_file=" + cfg.DataFile + "\n")
	b.WriteString("history_file=" + cfg.HistoryFile + "\n")
	b.WriteString("color=" + strconv.FormatBool(cfg.Color) + "\n")
	b.WriteString("urgency_curve=" + cfg.UrgencyCurve)

	return b.String()
}
