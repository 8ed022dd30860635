package term

// FrameParams is a snapshot of everything a renderer needs to draw one
// frame. It's built once while holding the terminal's lock so the renderer
// itself can stay a pure consumer with no locking of its own.
type FrameParams struct {
	Rows, Cols int
	Grid       [][]Cell
	Palette    *Palette
	Mode       TerminalMode

	CursorRow     int
	CursorCol     int
	CursorStyle   CursorStyle
	CursorVisible bool

	Selection        Selection
	SearchMatches    []SearchMatch
	FocusedMatch     int // index into SearchMatches, -1 if none focused
	HoverURLSegments []UrlSegment

	Opacity         float64
	TabBarOpacity   float64
	MinimumContrast float64
	BoldIsBright    bool
}

// BuildFrame assembles a FrameParams snapshot of the current terminal
// state. searchMatches and focused let the caller thread through results
// from a prior Search/SearchScrollback call (ownership of when and how
// often to re-search is the caller's, not the terminal's); hoverRow/col < 0
// skips URL-hover detection.
func (t *Terminal) BuildFrame(searchMatches []SearchMatch, focused int, hoverRow, hoverCol int) FrameParams {
	t.mu.RLock()
	defer t.mu.RUnlock()

	grid := make([][]Cell, t.rows)
	for row := 0; row < t.rows; row++ {
		line := make([]Cell, t.cols)
		for col := 0; col < t.cols; col++ {
			if c := t.activeBuffer.Cell(row, col); c != nil {
				line[col] = *c
			}
		}
		grid[row] = line
	}

	var hover []UrlSegment
	if hoverRow >= 0 && hoverCol >= 0 {
		for _, seg := range t.detectURLsLocked() {
			if seg.Row == hoverRow && hoverCol >= seg.StartCol && hoverCol < seg.EndCol {
				hover = append(hover, seg)
			}
		}
	}

	return FrameParams{
		Rows:             t.rows,
		Cols:             t.cols,
		Grid:             grid,
		Palette:          t.palette,
		Mode:             t.modes,
		CursorRow:        t.cursor.Row,
		CursorCol:        t.cursor.Col,
		CursorStyle:      t.cursor.Style,
		CursorVisible:    t.cursor.Visible,
		Selection:        t.selection,
		SearchMatches:    searchMatches,
		FocusedMatch:     focused,
		HoverURLSegments: hover,
		Opacity:          t.opacity,
		TabBarOpacity:    t.tabBarOpacity,
		MinimumContrast:  t.minimumContrast,
		BoldIsBright:     t.boldIsBright,
	}
}

// detectURLsLocked is DetectURLs without its own locking, for callers that
// already hold t.mu (BuildFrame runs under RLock).
func (t *Terminal) detectURLsLocked() []UrlSegment {
	var segments []UrlSegment
	for _, line := range t.visibleLogicalLines() {
		segments = append(segments, detectURLsInLine(line, t.hyperlinkCoveredAt)...)
	}
	return segments
}
