package textgui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrConfigFormat is returned for configuration files that are neither TOML nor YAML.
var ErrConfigFormat = errors.New("textgui: unsupported config format")

// Field kinds accepted in FieldSpec.Kind.
const (
	KindLabel = "label"
	KindArea  = "area"
	KindInput = "input"
)

// Config describes a set of fields and the toolkit look.
type Config struct {
	Style   string      `toml:"style" yaml:"style"`
	Verbose bool        `toml:"verbose" yaml:"verbose"`
	Fields  []FieldSpec `toml:"field" yaml:"fields"`
}

// FieldSpec describes one field in a Config.
type FieldSpec struct {
	Kind     string  `toml:"kind" yaml:"kind"`
	Name     string  `toml:"name" yaml:"name"`
	Font     string  `toml:"font" yaml:"font"`
	X        float32 `toml:"x" yaml:"x"`
	Y        float32 `toml:"y" yaml:"y"`
	W        float32 `toml:"w" yaml:"w"`
	H        float32 `toml:"h" yaml:"h"`
	FontSize float32 `toml:"font_size" yaml:"font_size"`
	Charset  string  `toml:"charset" yaml:"charset"`

	// Margin overrides the font's default reserved margin.
	Margin *Margin `toml:"margin,omitempty" yaml:"margin,omitempty"`

	Text string `toml:"text" yaml:"text"`

	// Input only
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
	Hidden      bool   `toml:"hidden" yaml:"hidden"`
	MaxLength   int    `toml:"max_length" yaml:"max_length"`

	// Area only
	FollowTail bool `toml:"follow_tail" yaml:"follow_tail"`

	// Label only; nil means truncate.
	Truncate *bool `toml:"truncate,omitempty" yaml:"truncate,omitempty"`
}

// DefaultConfig returns a configuration with no fields and the default style.
func DefaultConfig() Config {
	return Config{Style: "default"}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes configuration data. format is "toml" or "yaml",
// with or without a leading dot.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrConfigFormat, format)
	}
	return cfg, nil
}

// SaveConfig writes cfg as TOML to path.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Bounds returns the field rectangle.
func (s FieldSpec) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}
