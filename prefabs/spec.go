package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/dropbar/component"
	"gopkg.in/yaml.v3"
)

// DefaultSpecFile is the embedded bar spec.
const DefaultSpecFile = "dropbar.yaml"

// DefaultScriptFile is the embedded auto-tap script.
const DefaultScriptFile = "scripts/autotap.tengo"

var (
	ErrInvalidNodes      = errors.New("prefabs: nodes must be at least 1")
	ErrInvalidParts      = errors.New("prefabs: parts must be at least 1")
	ErrInvalidScaleGap   = errors.New("prefabs: scale_gap must be in (0, 1]")
	ErrInvalidSizeFactor = errors.New("prefabs: size_factor must be positive")
	ErrInvalidInterval   = errors.New("prefabs: interval_ms must be positive")
)

type DropBarSpec struct {
	Name       string     `yaml:"name"`
	Nodes      int        `yaml:"nodes"`
	Parts      int        `yaml:"parts"`
	ScaleGap   float64    `yaml:"scale_gap"`
	SizeFactor float64    `yaml:"size_factor"`
	IntervalMS int        `yaml:"interval_ms"`
	Colors     ColorsSpec `yaml:"colors"`
}

type ColorsSpec struct {
	Background *YAMLColor `yaml:"background"`
	Foreground *YAMLColor `yaml:"foreground"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadDropBarSpec loads and validates a bar spec. An empty name loads the
// embedded default.
func LoadDropBarSpec(name string) (*DropBarSpec, error) {
	if name == "" {
		name = DefaultSpecFile
	}
	spec, err := LoadSpec[DropBarSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *DropBarSpec) Validate() error {
	switch {
	case s.Nodes < 1:
		return ErrInvalidNodes
	case s.Parts < 1:
		return ErrInvalidParts
	case s.ScaleGap <= 0 || s.ScaleGap > 1:
		return ErrInvalidScaleGap
	case s.SizeFactor <= 0:
		return ErrInvalidSizeFactor
	case s.IntervalMS <= 0:
		return ErrInvalidInterval
	}
	return nil
}

// Config converts the yaml values into the runtime configuration. Missing colours
// fall back to the defaults.
func (s *DropBarSpec) Config() component.Config {
	cfg := component.Config{
		Nodes:      s.Nodes,
		Parts:      s.Parts,
		ScaleGap:   s.ScaleGap,
		SizeFactor: s.SizeFactor,
		Interval:   time.Duration(s.IntervalMS) * time.Millisecond,
		Background: component.DefaultBackground,
		Foreground: component.DefaultForeground,
	}
	if s.Colors.Background != nil && s.Colors.Background.Color != nil {
		cfg.Background = s.Colors.Background.Color
	}
	if s.Colors.Foreground != nil && s.Colors.Foreground.Color != nil {
		cfg.Foreground = s.Colors.Foreground.Color
	}
	return cfg
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
