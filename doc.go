// Package term provides a headless VT220-compatible terminal emulator.
//
// This package emulates a terminal without any display, making it ideal for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Creating terminal-based web applications
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	t := term.New()
//	t.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(t.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: The main emulator that processes ANSI sequences
//   - [Buffer]: A 2D grid of cells with scrollback support
//   - [Cell]: A single character with colors and attributes
//   - [Cursor]: Tracks position and rendering style
//   - [Palette]: A per-terminal, overridable color table
//
// # Terminal
//
// Terminal is the main entry point. It implements [io.Writer] so you can write
// raw bytes containing ANSI escape sequences:
//
//	t := term.New(
//	    term.WithSize(24, 80),           // 24 rows, 80 columns
//	    term.WithScrollback(storage),    // Enable scrollback
//	    term.WithResponse(ptyWriter),    // Handle terminal responses
//	)
//
//	// Process output from a command
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = t
//	cmd.Run()
//
//	// Read the result
//	for row := 0; row < t.Rows(); row++ {
//	    fmt.Println(t.LineContent(row))
//	}
//
// # Dual Buffers
//
// Terminal maintains two buffers:
//
//   - Primary buffer: Normal mode with optional scrollback storage
//   - Alternate buffer: Used by full-screen apps (vim, less, htop), no scrollback
//
// Applications switch buffers via ANSI sequences (CSI ?1049h/l). Check which
// buffer is active:
//
//	if t.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := t.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(term.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strike.
// Zero-width combining runes (accents, variation selectors) attach to the
// preceding cell via [Cell.AddZerowidth] rather than occupying a column.
//
// # Line Wrapping
//
// A printable character written in the last column defers its wrap: the
// cursor stays on that column with a pending-wrap flag rather than
// immediately moving down. The move only happens once another printable
// character actually needs the next row, which matches how real terminals
// avoid leaving a phantom blank line when output ends exactly at the margin.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface. The package supports:
//
//   - Named colors (indices 0-15 for standard ANSI colors)
//   - 256-color palette (indices 0-255)
//   - True color (24-bit RGB via [color.RGBA])
//
// Each Terminal owns a [Palette] that tracks which indices have been
// overridden (SetColor via OSC 4, or a color scheme). A reset (OSC 104)
// restores the built-in default; applying a scheme overwrites every index it
// lists, including ones a program set:
//
//	rgba := t.Palette().Resolve(cell.Fg, true)
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer can be stored for later access.
// The package ships only [NoopScrollback], which discards lines and is the
// default; to keep them, implement [ScrollbackProvider] and pass it in:
//
//	storage := &myScrollback{} // your ScrollbackProvider implementation
//	t := term.New(term.WithScrollback(storage))
//
//	// Access scrollback
//	for i := 0; i < t.ScrollbackLen(); i++ {
//	    line := t.ScrollbackLine(i) // []Cell
//	}
//
// # Resizing
//
// Resize re-wraps buffer content to the new column width rather than
// truncating it: a logical line that wrapped across several rows at the old
// width is re-flowed to the new one, and the cursor is remapped to the same
// logical character it occupied before.
//
//	t.Resize(40, 120)
//
// # Providers
//
// Providers handle terminal events and queries. All are optional with no-op defaults:
//
//   - [BellProvider]: Handles bell/beep events
//   - [TitleProvider]: Handles window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: Handles clipboard operations (OSC 52)
//   - [ScrollbackProvider]: Stores lines scrolled off screen
//   - [RecordingProvider]: Captures raw input for replay
//   - [SizeProvider]: Provides pixel dimensions for queries
//   - [ShellIntegrationProvider]: Handles semantic prompt marks (OSC 133)
//
// Example with providers:
//
//	t := term.New(
//	    term.WithResponse(os.Stdout),
//	    term.WithBell(&myBellHandler{}),
//	    term.WithTitle(&myTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts ANSI handler calls for custom behavior:
//
//	mw := &term.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r) // Call default handler
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // Don't call next() to suppress the bell
//	    },
//	}
//	t := term.New(term.WithMiddleware(mw))
//
// # Terminal Modes
//
// Various terminal behaviors are controlled by mode flags:
//
//	t.HasMode(term.ModeLineWrap)       // Auto line wrap enabled?
//	t.HasMode(term.ModeShowCursor)     // Cursor visible?
//	t.HasMode(term.ModeBracketedPaste) // Bracketed paste enabled?
//
// See [TerminalMode] for all available modes.
//
// # Dirty Tracking
//
// Track which cells changed for efficient rendering:
//
//	if t.HasDirty() {
//	    for _, pos := range t.DirtyCells() {
//	        // Redraw cell at pos.Row, pos.Col
//	    }
//	    t.ClearDirty()
//	}
//
// # Selection and Search
//
// Selections are tracked as an anchor/pivot/end triple rather than a plain
// start/end pair, so word, line, and block (rectangular) selection modes
// can all share the same bounds logic:
//
//	t.StartSelection(row, col, term.SideLeft, term.SelectionWord)
//	t.ExtendSelection(row, col, term.SideRight)
//	text := t.GetSelectedText()
//	t.ClearSelection()
//
// Search the visible screen or scrollback for a substring or a regular
// expression:
//
//	matches, _ := t.Search("error", term.SearchOptions{Mode: term.SearchRegex})
//	scrollbackMatches, _ := t.SearchScrollback("error", term.SearchOptions{})
//
// [DetectURLs] scans visible lines for http(s), ftp and file URLs not already
// covered by an OSC 8 hyperlink, for click-to-open behavior in a renderer.
//
// # Snapshots
//
// Capture the terminal state for serialization or rendering:
//
//	// Text only (smallest)
//	snap := t.Snapshot(term.SnapshotDetailText)
//
//	// With style segments (good for HTML rendering)
//	snap := t.Snapshot(term.SnapshotDetailStyled)
//
//	// Full cell data (complete state)
//	snap := t.Snapshot(term.SnapshotDetailFull)
//
//	// Convert to JSON
//	data, _ := json.Marshal(snap)
//
// Snapshot attributes are booleans: "underline" is set for any underline
// style and "blink" for either blink speed. The underline style, the blink
// speed and the underline color are not included.
//
// # Shell Integration
//
// Track shell prompts and command output (OSC 133):
//
//	t := term.New(
//	    term.WithShellIntegration(myProvider{}),
//	)
//
//	// Navigate between prompts (uses absolute rows, including scrollback).
//	// There is no conversion helper: absolute = ScrollbackLen() + viewport row.
//	currentAbsRow := t.ScrollbackLen() + 0
//	nextAbsRow := t.NextPromptRow(currentAbsRow, -1)
//	prevAbsRow := t.PrevPromptRow(currentAbsRow, -1)
//
//	// Convert absolute row back to viewport for display
//	viewportRow := nextAbsRow - t.ScrollbackLen() // negative if in scrollback
//
//	// Get last command output
//	output := t.GetLastCommandOutput()
//
// # Auto-Resize Mode
//
// In auto-resize mode, the buffer grows instead of scrolling:
//
//	t := term.New(term.WithAutoResize())
//
//	// Capture complete output without truncation
//	cmd.Stdout = t
//	cmd.Run()
//
//	// Buffer has grown to fit all output
//	fmt.Printf("Total rows: %d\n", t.Rows())
//
// # PTY Sessions
//
// [NewPTYSession] spawns a shell (or any command) under a PTY and streams
// its output into a Terminal:
//
//	sess, err := term.NewPTYSession(t, term.PTYOptions{
//	    Shell: "/bin/bash",
//	    Rows:  24,
//	    Cols:  80,
//	})
//	defer sess.Close()
//
//	// sess.Write sends input to the shell; sess.Done() closes when it exits.
//	sess.Write([]byte("ls\n"))
//	<-sess.Done()
//
// Each session carries a unique ID for log correlation, and resizing the
// terminal ([ResizeCoordinator.ResizeCells]) also resizes the underlying PTY.
//
// # Key Encoding
//
// [Encode] turns a key press into the bytes an application expects,
// choosing between the legacy xterm encoding and the Kitty keyboard
// protocol (CSI-u) based on the terminal's negotiated keyboard mode:
//
//	data := t.EncodeKey(term.KeyEvent{Key: term.KeyArrowUp})
//	sess.Write(data)
//
// # Resizing from Pixels
//
// [ResizeCoordinator] converts a pixel-dimension resize event (as reported
// by a GUI toolkit) into a row/column count using a [SizeProvider]:
//
//	rc := term.NewResizeCoordinator(t, myGUISizeProvider{}, sess)
//	rc.ResizePixels(widthPx, heightPx)
//
// # Rendering
//
// [Terminal.BuildFrame] snapshots everything a renderer needs in one call
// under a single read lock, so a UI layer never has to hold the terminal's
// lock itself:
//
//	frame := t.BuildFrame(searchMatches, focusedMatch, hoverRow, hoverCol)
//	// frame.Grid, frame.Palette, frame.CursorRow/Col, frame.Selection, ...
//
// # Configuration
//
// [LoadConfigDelta] decodes a partial YAML configuration document, and
// [Terminal.ApplyConfig] applies it — color scheme overrides, cursor
// shape, opacity, and related rendering settings:
//
//	delta, _ := term.LoadConfigDelta(configBytes)
//	t.ApplyConfig(delta)
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use. Reads and writes are
// arbitrated by a fair mutex so a steady stream of PTY output cannot starve a
// caller waiting to read terminal state (e.g. for rendering a frame).
//
// # Supported ANSI Sequences
//
// The terminal supports a comprehensive set of ANSI escape sequences including:
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST)
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Shell integration (OSC 133)
//
// For the complete list of supported sequences, see the [go-ansicode] package
// documentation.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package term
