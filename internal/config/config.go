package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Config is the contents of config.yaml.
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval" json:"tick_interval" jsonschema:"type=string,description=Time between scheduler ticks (Go duration)"`
	Screen       Screen        `yaml:"screen" json:"screen"`
	Storage      Storage       `yaml:"storage" json:"storage"`
	Log          Log           `yaml:"log" json:"log"`
}

type Screen struct {
	Width  int `yaml:"width" json:"width" jsonschema:"minimum=40"`
	Height int `yaml:"height" json:"height" jsonschema:"minimum=12"`
}

type Storage struct {
	Backend string `yaml:"backend" json:"backend" jsonschema:"enum=memory,enum=sqlite,enum=dir"`
	// Path is the sqlite database or the directory, relative to the config dir.
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
	Seed bool   `yaml:"seed" json:"seed" jsonschema:"description=Write the example programs into an empty store"`
}

type Log struct {
	Level string `yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TickInterval: 50 * time.Millisecond,
		Screen:       Screen{Width: 80, Height: 25},
		Storage:      Storage{Backend: "memory", Seed: true},
		Log:          Log{Level: "info", File: "swim.log"},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.Screen.Width < 40 || c.Screen.Height < 12 {
		return fmt.Errorf("screen must be at least 40x12, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	switch c.Storage.Backend {
	case "memory":
	case "sqlite", "dir":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage backend %q needs a path", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := clog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// StoragePath returns Storage.Path resolved against the config directory.
func (c Config) StoragePath() (string, error) { return inDir(c.Storage.Path) }

// LogPath returns Log.File resolved against the config directory.
func (c Config) LogPath() (string, error) { return inDir(c.Log.File) }

// Load reads config.yaml. A missing file yields Defaults and no error.
// Settings absent from the file keep their default values.
func Load() (Config, error) {
	cfg := Defaults()
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", p, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

// Save validates cfg and writes it, creating the directory if needed.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Schema returns a JSON Schema for config.yaml.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Config{})
	sch.Title = "swim config"
	sch.Description = "Settings read from config.yaml in the swim config directory."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
