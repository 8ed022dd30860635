package term

import "image/color"

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint32

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
	CellFlagWideChar
	CellFlagWideCharSpacer
	CellFlagDirty
	// CellFlagLeadingWideCharSpacer marks a cell left empty at the end of a
	// row because a wide character didn't fit in the last column. The wide
	// character it stands in for is written at column 0 of the next row.
	// Reflow on resize uses this to avoid splitting a wide character across
	// the old row boundary.
	CellFlagLeadingWideCharSpacer
)

// CellExtra holds rarely-populated per-cell data. Allocated lazily so the
// common cell (no zero-width combining runes) stays small and copyable.
type CellExtra struct {
	Zerowidth []rune
}

// Cell stores the character, colors, and formatting attributes for one grid position.
// Wide characters (2 columns) use a spacer cell in the second position.
type Cell struct {
	Char           rune
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
	Hyperlink      *Hyperlink
	Extra          *CellExtra
}

// Hyperlink associates a cell with a clickable link (OSC 8). Cells that are
// part of the same link share one *Hyperlink.
type Hyperlink struct {
	ID  string
	URI string
}

// NewCell creates a cell initialized with space character and default colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   &NamedColor{Name: NamedColorForeground},
		Bg:   &NamedColor{Name: NamedColorBackground},
	}
}

// Reset clears all attributes and sets the cell to default state (space character, default colors).
func (c *Cell) Reset() {
	c.Char = ' '
	c.Fg = &NamedColor{Name: NamedColorForeground}
	c.Bg = &NamedColor{Name: NamedColorBackground}
	c.UnderlineColor = nil
	c.Flags = 0
	c.Hyperlink = nil
	c.Extra = nil
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty returns true if the cell was modified since the last ClearDirty call.
func (c *Cell) IsDirty() bool {
	return c.HasFlag(CellFlagDirty)
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.SetFlag(CellFlagDirty)
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.ClearFlag(CellFlagDirty)
}

// IsWide returns true if this cell contains a wide character (CJK, emoji, etc.) that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character (should be skipped during rendering).
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// IsLeadingWideSpacer returns true if this cell stands in for a wide
// character that was pushed to the start of the next row, either when it was
// written or during reflow.
func (c *Cell) IsLeadingWideSpacer() bool {
	return c.HasFlag(CellFlagLeadingWideCharSpacer)
}

// AddZerowidth attaches a zero-width combining rune (e.g. a combining
// diacritic or variation selector) to this cell.
func (c *Cell) AddZerowidth(r rune) {
	if c.Extra == nil {
		c.Extra = &CellExtra{}
	}
	c.Extra.Zerowidth = append(c.Extra.Zerowidth, r)
}

// Zerowidth returns the zero-width combining runes attached to this cell, if any.
func (c *Cell) Zerowidth() []rune {
	if c.Extra == nil {
		return nil
	}
	return c.Extra.Zerowidth
}

// Copy returns a shallow copy of the cell. Hyperlink and Extra keep their
// pointer identity; a caller that mutates Extra must clone it first.
func (c *Cell) Copy() Cell {
	return *c
}
