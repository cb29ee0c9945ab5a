package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
)

const (
	appName        = "rebind"
	defaultProfile = "default"
)

// ErrTooManyButtons is returned when an action lists more buttons than a
// binding can hold.
var ErrTooManyButtons = fmt.Errorf("more than %d buttons", keymap.SetCapacity)

type Config struct {
	Profile string `koanf:"profile"` // profile name in the state database (default: "default")
	Persist *bool  `koanf:"persist"` // load and save the profile (default: true)
	StateDB string `koanf:"state_db"` // database path override; empty uses the XDG data dir
	LogFile string `koanf:"log_file"` // debug log path override; empty uses the XDG state dir

	Axes AxesConfig `koanf:"axes"`

	// Bindings maps action names to button names. Listed actions replace
	// their defaults; an empty list leaves the action unbound.
	Bindings map[string][]string `koanf:"bindings"`
}

// AxesConfig holds mouse axis inversion flags.
type AxesConfig struct {
	InvertMotionX bool `koanf:"invert_motion_x"`
	InvertMotionY bool `koanf:"invert_motion_y"`
	InvertScrollX bool `koanf:"invert_scroll_x"`
	InvertScrollY bool `koanf:"invert_scroll_y"`
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

// LoadFile reads a single config file, for tools that take an explicit path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return loadFrom([]string{path})
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Profile: defaultProfile,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Profile == "" {
		cfg.Profile = defaultProfile
	}
	if cfg.StateDB != "" {
		cfg.StateDB = expandPath(cfg.StateDB)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rebind/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ShouldPersist returns true unless persistence was turned off.
func (c *Config) ShouldPersist() bool {
	return c.Persist == nil || *c.Persist
}

// AxisConfig returns the axis flags with an empty viewport; the viewport is
// filled in once the terminal reports its size.
func (c *Config) AxisConfig() keymap.AxisConfig {
	return keymap.AxisConfig{
		InvertMotionX: c.Axes.InvertMotionX,
		InvertMotionY: c.Axes.InvertMotionY,
		InvertScrollX: c.Axes.InvertScrollX,
		InvertScrollY: c.Axes.InvertScrollY,
	}
}

// Keymap returns the default bindings with the configured overrides and
// axis flags applied.
func (c *Config) Keymap() (*keymap.RebindMap[button.Button, actions.Action], error) {
	r := actions.Defaults().RebindMap()

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(c.Bindings)) {
		a, err := actions.Parse(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("bindings.%s: %w", name, err))
			continue
		}
		buttons, err := button.ParseAll(c.Bindings[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("bindings.%s: %w", name, err))
			continue
		}
		if err := checkReserved(a, buttons); err != nil {
			errs = append(errs, fmt.Errorf("bindings.%s: %w", name, err))
			continue
		}
		set, ok := keymap.NewButtonSet(buttons...)
		if !ok {
			errs = append(errs, fmt.Errorf("bindings.%s: %w", name, ErrTooManyButtons))
			continue
		}
		r.InsertActionWithButtons(a, set)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	r.SetAxes(c.AxisConfig())
	return r, nil
}

func checkReserved(a actions.Action, buttons []button.Button) error {
	var errs []error
	for _, b := range buttons {
		if err := actions.CheckBinding(a, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Export renders r as a config file that Load reads back to the same
// bindings.
func Export(profile string, r *keymap.RebindMap[button.Button, actions.Action]) ([]byte, error) {
	k := koanf.New(".")

	values := map[string]any{
		"profile":              profile,
		"axes.invert_motion_x": r.InvertMotionX(),
		"axes.invert_motion_y": r.InvertMotionY(),
		"axes.invert_scroll_x": r.InvertScrollX(),
		"axes.invert_scroll_y": r.InvertScrollY(),
	}
	for _, a := range r.Actions() {
		set, _ := r.Bindings(a)
		names := make([]string, 0, keymap.SetCapacity)
		for b := range set.All() {
			names = append(names, b.String())
		}
		values["bindings."+string(a)] = names
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := k.Set(key, values[key]); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	return k.Marshal(toml.Parser())
}
