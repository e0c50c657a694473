// Package wmconfig loads the user's tilewm.yaml and turns it into the
// binding table and workspace layout the reducer and core are started
// with. It is the concrete "user configuration file" spec.md names as
// an external collaborator.
package wmconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tilewm/tilewm/internal/stack"
)

// Config is the user-facing shape of tilewm.yaml. Binding strings are
// resolved into a reducer.Bindings separately, once an X connection
// exists to resolve keysyms against.
type Config struct {
	Tags []string `koanf:"tags"`

	ModMask string `koanf:"mod"`

	BorderWidth   uint   `koanf:"border_width"`
	BorderFocused string `koanf:"border_focused"`
	BorderNormal  string `koanf:"border_normal"`

	Gap stack.Gap `koanf:"gap"`

	// Keys and Buttons map a binding string ("Mod1-j", "Mod1-Button1")
	// to a named action and its argument, e.g. {"Mod1-j": "focus-down"}
	// or {"Mod1-1": "view:1"}.
	Keys    map[string]string `koanf:"keys"`
	Buttons map[string]string `koanf:"buttons"`

	// Layouts names, in order, the layout string each new workspace
	// starts with; see internal/layout's Decode for the grammar.
	Layouts []string `koanf:"layouts"`
}

// Default returns the configuration tilewm starts with when no config
// file exists yet, enough to be immediately usable.
func Default() *Config {
	return &Config{
		Tags:          []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		ModMask:       "Mod1",
		BorderWidth:   2,
		BorderFocused: "#4c7899",
		BorderNormal:  "#333333",
		Keys: map[string]string{
			"Mod1-j":            "focus-down",
			"Mod1-k":            "focus-up",
			"Mod1-Shift-j":      "swap-down",
			"Mod1-Shift-k":      "swap-up",
			"Mod1-Return":       "swap-master",
			"Mod1-comma":        "inc-master:1",
			"Mod1-period":       "inc-master:-1",
			"Mod1-h":            "shrink",
			"Mod1-l":            "expand",
			"Mod1-space":        "next-layout",
			"Mod1-Shift-space":  "first-layout",
			"Mod1-Shift-c":      "kill",
			"Mod1-Shift-q":      "quit",
			"Mod1-p":            "spawn:dmenu_run",
			"Mod1-Shift-Return": "spawn:xterm",
		},
		Buttons: map[string]string{
			"Mod1-Button1": "move",
			"Mod1-Button3": "resize",
		},
		Layouts: []string{"Tall(1,0.03,0.5)", "Mirror(Tall(1,0.03,0.5))", "Full()"},
	}
}

// Path returns the config file location, $XDG_CONFIG_HOME/tilewm/tilewm.yaml,
// or ~/.config/tilewm/tilewm.yaml if XDG_CONFIG_HOME is unset.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tilewm", "tilewm.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("couldn't locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tilewm", "tilewm.yaml"), nil
}

// Load reads the config file at Path, returning Default() untouched if
// it doesn't exist yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("couldn't load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse config %s: %w", path, err)
	}
	return cfg, nil
}
