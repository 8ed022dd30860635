package term

import "image/color"

// paletteSize covers the 256-entry indexed palette plus the named semantic
// slots (foreground, background, cursor, dim variants) used by NamedColor.
const paletteSize = 270

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255),
// followed by the resolved semantic slots (256-268) described by the NamedColor* constants below.
var DefaultPalette = [paletteSize]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231)
	// Generated programmatically below

	// Grayscale (232-255)
	// Generated programmatically below

	// Semantic slots (256-268)
	// Generated programmatically below
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}

	// Generate the semantic slots (256-268) so Palette.Resolve can treat
	// them as ordinary indexed lookups instead of a separate switch.
	DefaultPalette[NamedColorForeground] = DefaultForeground
	DefaultPalette[NamedColorBackground] = DefaultBackground
	DefaultPalette[NamedColorCursor] = DefaultCursorColor
	for j := 0; j < 8; j++ {
		DefaultPalette[NamedColorDimBlack+j] = dimColor(DefaultPalette[j])
	}
	DefaultPalette[NamedColorBrightForeground] = DefaultPalette[15]
	DefaultPalette[NamedColorDimForeground] = dimColor(DefaultForeground)
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// Named color indices for semantic colors (used with NamedColor).
const (
	NamedColorForeground       = 256 // Default foreground text color
	NamedColorBackground       = 257 // Default background color
	NamedColorCursor           = 258 // Cursor color
	NamedColorDimBlack         = 259 // Dim black
	NamedColorDimRed           = 260 // Dim red
	NamedColorDimGreen         = 261 // Dim green
	NamedColorDimYellow        = 262 // Dim yellow
	NamedColorDimBlue          = 263 // Dim blue
	NamedColorDimMagenta       = 264 // Dim magenta
	NamedColorDimCyan          = 265 // Dim cyan
	NamedColorDimWhite         = 266 // Dim white
	NamedColorBrightForeground = 267 // Bright foreground (white)
	NamedColorDimForeground    = 268 // Dim foreground
)

// dimColor scales an RGB triple to 66% intensity, matching xterm's dim (SGR 2) rendering.
func dimColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: 255,
	}
}

// resolveDefaultColor converts a color.Color to RGBA using the default palette.
// If c is nil, returns the default foreground or background based on fg.
// IndexedColor and NamedColor are resolved using DefaultPalette.
func resolveDefaultColor(c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return DefaultPalette[v.Index]
		}
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	case *NamedColor:
		return resolveNamedColor(v.Name, fg)
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}

// resolveNamedColor resolves a named color index to RGBA against the built-in defaults.
func resolveNamedColor(name int, fg bool) color.RGBA {
	switch {
	case name >= 0 && name < 16:
		return DefaultPalette[name]
	case name >= NamedColorForeground && name <= NamedColorDimForeground:
		return DefaultPalette[name]
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// Palette is a per-terminal indexed+semantic color table. Unlike the
// stateless DefaultPalette array, it tracks which slots have been overridden
// via SetColor (OSC 4) or ApplyScheme. ResetColor(i) (OSC 104) always restores
// the built-in default for i. ApplyScheme overwrites every index it lists,
// including ones a program set, and does not change what ResetColor restores.
type Palette struct {
	colors   [paletteSize]color.RGBA
	defaults [paletteSize]color.RGBA
	modified [paletteSize]bool
}

// NewPalette creates a palette seeded from DefaultPalette, with nothing marked modified.
func NewPalette() *Palette {
	return &Palette{
		colors:   DefaultPalette,
		defaults: DefaultPalette,
	}
}

// SetColor overrides the color at index (OSC 4/10/11/12). Out-of-range indices are ignored.
func (p *Palette) SetColor(index int, c color.RGBA) {
	if index < 0 || index >= paletteSize {
		return
	}
	p.colors[index] = c
	p.modified[index] = true
}

// ResetColor restores the color at index to its default (OSC 104/110/111/112).
func (p *Palette) ResetColor(index int) {
	if index < 0 || index >= paletteSize {
		return
	}
	p.colors[index] = p.defaults[index]
	p.modified[index] = false
}

// ResetAll restores every slot to its default, clearing all modification state.
func (p *Palette) ResetAll() {
	p.colors = p.defaults
	p.modified = [paletteSize]bool{}
}

// Color returns the current color stored at index, and whether index was in range.
func (p *Palette) Color(index int) (color.RGBA, bool) {
	if index < 0 || index >= paletteSize {
		return color.RGBA{}, false
	}
	return p.colors[index], true
}

// IsModified reports whether index currently holds an overridden (non-default) color.
func (p *Palette) IsModified(index int) bool {
	if index < 0 || index >= paletteSize {
		return false
	}
	return p.modified[index]
}

// ApplyScheme bulk-loads a color scheme (e.g. parsed from configuration),
// marking every provided index as modified relative to the built-in defaults.
func (p *Palette) ApplyScheme(scheme map[int]color.RGBA) {
	for idx, c := range scheme {
		p.SetColor(idx, c)
	}
}

// Resolve converts a color.Color to RGBA against this palette's current
// colors. It generalizes resolveDefaultColor/resolveNamedColor from the
// fixed DefaultPalette array to a per-terminal, overridable Palette.
func (p *Palette) Resolve(c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return p.colors[NamedColorForeground]
		}
		return p.colors[NamedColorBackground]
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return p.colors[v.Index]
		}
		if fg {
			return p.colors[NamedColorForeground]
		}
		return p.colors[NamedColorBackground]
	case *NamedColor:
		return p.resolveNamed(v.Name, fg)
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}

func (p *Palette) resolveNamed(name int, fg bool) color.RGBA {
	switch {
	case name >= 0 && name < 16:
		return p.colors[name]
	case name >= NamedColorForeground && name <= NamedColorDimForeground:
		return p.colors[name]
	default:
		if fg {
			return p.colors[NamedColorForeground]
		}
		return p.colors[NamedColorBackground]
	}
}
