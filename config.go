package term

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// ConfigDelta is a partial configuration update, decoded from YAML. Only
// fields explicitly set (nil pointers/maps are left alone) are applied, so
// loading a config file that only mentions cursor_shape doesn't reset the
// palette.
type ConfigDelta struct {
	// Scheme maps a palette index (0-255, or the extended slots used for
	// default fg/bg/cursor) to a "#rrggbb" color string.
	Scheme map[int]string `yaml:"scheme,omitempty"`

	CursorShape     *string  `yaml:"cursor_shape,omitempty"`
	BoldIsBright    *bool    `yaml:"bold_is_bright,omitempty"`
	MaxScrollback   *int     `yaml:"max_scrollback,omitempty"`
	Opacity         *float64 `yaml:"opacity,omitempty"`
	TabBarOpacity   *float64 `yaml:"tab_bar_opacity,omitempty"`
	MinimumContrast *float64 `yaml:"minimum_contrast,omitempty"`
}

// LoadConfigDelta decodes a ConfigDelta from YAML bytes (typically a config
// file read by the caller).
func LoadConfigDelta(data []byte) (ConfigDelta, error) {
	var delta ConfigDelta
	if err := yaml.Unmarshal(data, &delta); err != nil {
		return ConfigDelta{}, err
	}
	return delta, nil
}

var cursorShapeNames = map[string]CursorStyle{
	"block":              CursorStyleSteadyBlock,
	"blinking_block":     CursorStyleBlinkingBlock,
	"underline":          CursorStyleSteadyUnderline,
	"blinking_underline": CursorStyleBlinkingUnderline,
	"bar":                CursorStyleSteadyBar,
	"blinking_bar":       CursorStyleBlinkingBar,
}

// ApplyConfig applies delta to the terminal's rendering configuration.
// Applying the same delta twice is a no-op the second time: every field it
// touches is a plain overwrite (color slots via Palette.SetColor, scalars by
// direct assignment), never a merge-with-previous-value, so there's no
// cumulative drift from repeated application.
func (t *Terminal) ApplyConfig(delta ConfigDelta) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for idx, hex := range delta.Scheme {
		rgba, err := parseHexColor(hex)
		if err != nil {
			return fmt.Errorf("config: scheme[%d]: %w", idx, err)
		}
		t.palette.SetColor(idx, rgba)
	}

	if delta.CursorShape != nil {
		style, ok := cursorShapeNames[*delta.CursorShape]
		if !ok {
			return fmt.Errorf("config: unknown cursor_shape %q", *delta.CursorShape)
		}
		t.cursor.Style = style
	}

	if delta.BoldIsBright != nil {
		t.boldIsBright = *delta.BoldIsBright
	}

	if delta.MaxScrollback != nil {
		t.primaryBuffer.SetMaxScrollback(*delta.MaxScrollback)
	}

	if delta.Opacity != nil {
		t.opacity = clampFraction(*delta.Opacity)
	}

	if delta.TabBarOpacity != nil {
		t.tabBarOpacity = clampFraction(*delta.TabBarOpacity)
	}

	if delta.MinimumContrast != nil {
		t.minimumContrast = *delta.MinimumContrast
	}

	return nil
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// parseHexColor parses a "#rrggbb" or "#rrggbbaa" string into an RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 && len(s) != 9 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with #", s)
	}

	var r, g, b, a uint8
	a = 0xff

	parseByte := func(h string) (uint8, error) {
		var v uint8
		_, err := fmt.Sscanf(h, "%02x", &v)
		return v, err
	}

	var err error
	if r, err = parseByte(s[1:3]); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if g, err = parseByte(s[3:5]); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if b, err = parseByte(s[5:7]); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 9 {
		if a, err = parseByte(s[7:9]); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
