package term

// ResizeCoordinator converts pixel-space window resizes into the grid-space
// Resize calls Terminal and a PTY both need, given a SizeProvider that knows
// how big one cell is on screen.
type ResizeCoordinator struct {
	term *Terminal
	size SizeProvider
	pty  *PTYSession // optional: nil if the terminal isn't backed by a PTY
}

// NewResizeCoordinator builds a coordinator for term, using size to convert
// pixel dimensions to a cell grid. pty may be nil.
func NewResizeCoordinator(term *Terminal, size SizeProvider, pty *PTYSession) *ResizeCoordinator {
	return &ResizeCoordinator{term: term, size: size, pty: pty}
}

// ResizePixels converts a window size in pixels to a cell grid (dividing by
// the SizeProvider's cell dimensions, clamped to at least one row/column)
// and applies it. A zero or negative pixel dimension is ignored rather than
// collapsing the grid to nothing.
func (r *ResizeCoordinator) ResizePixels(widthPx, heightPx int) {
	if widthPx <= 0 || heightPx <= 0 {
		return
	}

	cellW, cellH := r.size.CellSizePixels()
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}

	cols := widthPx / cellW
	rows := heightPx / cellH
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	r.ResizeCells(rows, cols)
}

// ResizeCells applies a grid resize directly. The PTY's window-size ioctl
// (if a PTY is attached) runs after Terminal.Resize has released its lock,
// so the syscall never holds up unrelated terminal state access.
func (r *ResizeCoordinator) ResizeCells(rows, cols int) {
	if mw := r.term.middleware; mw != nil && mw.ResizeCells != nil {
		mw.ResizeCells(rows, cols, r.resizeCellsInternal)
		return
	}
	r.resizeCellsInternal(rows, cols)
}

func (r *ResizeCoordinator) resizeCellsInternal(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	if r.pty != nil {
		// PTYSession.Resize already calls Terminal.Resize internally.
		_ = r.pty.Resize(rows, cols)
		return
	}

	r.term.Resize(rows, cols)
}
