package term

import (
	"regexp"
	"strings"
)

// SearchMode selects how a search pattern is interpreted.
type SearchMode int

const (
	// SearchSubstring matches pattern literally.
	SearchSubstring SearchMode = iota
	// SearchRegex interprets pattern as a regular expression (RE2 syntax).
	SearchRegex
)

// SearchOptions configures a Search/SearchScrollback call.
type SearchOptions struct {
	Mode            SearchMode
	CaseInsensitive bool
}

// SearchMatch is one match found by Search or SearchScrollback. End is
// exclusive and, for a match that crosses a wrapped-line boundary, can land
// on a different row than Start.
type SearchMatch struct {
	Start Position
	End   Position
}

// Search finds pattern within the visible screen, joining wrapped
// continuation rows (see IsWrapped) into single logical lines before
// matching so a match split across a wrap point is still found.
func (t *Terminal) Search(pattern string, opts SearchOptions) ([]SearchMatch, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if pattern == "" {
		return nil, nil
	}

	re, err := compileSearchPattern(pattern, opts)
	if err != nil {
		return nil, err
	}

	var matches []SearchMatch
	for _, line := range t.visibleLogicalLines() {
		matches = append(matches, line.findAll(re)...)
	}
	return matches, nil
}

// SearchScrollback finds pattern within scrollback lines, returned in
// scrollback order from newest to oldest. Each scrollback line is treated as
// its own logical line: the wrapped bit that would join it to an adjacent
// line isn't retained once a row is pushed into scrollback (see
// ScrollbackProvider.Push), so a match split across that boundary won't be
// found.
func (t *Terminal) SearchScrollback(pattern string, opts SearchOptions) ([]SearchMatch, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if pattern == "" {
		return nil, nil
	}

	re, err := compileSearchPattern(pattern, opts)
	if err != nil {
		return nil, err
	}

	var matches []SearchMatch
	scrollbackLen := t.primaryBuffer.ScrollbackLen()
	for row := -1; row >= -scrollbackLen; row-- {
		line := t.logicalLineAt(row)
		matches = append(matches, line.findAll(re)...)
	}
	return matches, nil
}

func compileSearchPattern(pattern string, opts SearchOptions) (*regexp.Regexp, error) {
	expr := pattern
	if opts.Mode == SearchSubstring {
		expr = regexp.QuoteMeta(pattern)
	}
	if opts.CaseInsensitive {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// logicalLine is one line's worth of searchable text plus a parallel,
// byte-indexed map back to grid positions so regexp byte offsets (which
// don't line up 1:1 with runes once multi-byte UTF-8 is involved) can be
// translated back to (row, col).
type logicalLine struct {
	text      string
	positions []Position // len(positions) == len(text); positions[i] is the cell that owns the byte at offset i
	afterEnd  Position    // position just past the last rune, used when a match runs to the end of the line
}

func (l logicalLine) findAll(re *regexp.Regexp) []SearchMatch {
	if l.text == "" {
		return nil
	}
	var out []SearchMatch
	for _, idx := range re.FindAllStringIndex(l.text, -1) {
		start, end := idx[0], idx[1]
		m := SearchMatch{Start: l.positions[start]}
		if end < len(l.positions) {
			m.End = l.positions[end]
		} else {
			m.End = l.afterEnd
		}
		out = append(out, m)
	}
	return out
}

// visibleLogicalLines splits the visible screen into logical lines by
// following the wrapped-row chain: consecutive rows where IsWrapped is true
// for all but the last are joined into one line.
func (t *Terminal) visibleLogicalLines() []logicalLine {
	var lines []logicalLine
	row := 0
	for row < t.rows {
		first := row
		for row < t.rows && t.activeBuffer.IsWrapped(row) {
			row++
		}
		lines = append(lines, t.buildLogicalLine(first, row))
		row++
	}
	return lines
}

// logicalLineAt builds the single-row logical line for a scrollback row.
func (t *Terminal) logicalLineAt(row int) logicalLine {
	return t.buildLogicalLine(row, row)
}

// writeRuneTracked writes r to b and records pos once per byte of its UTF-8
// encoding, keeping positions aligned with b's byte offsets.
func writeRuneTracked(b *strings.Builder, positions *[]Position, r rune, pos Position) {
	n := b.Len()
	b.WriteRune(r)
	for i := n; i < b.Len(); i++ {
		*positions = append(*positions, pos)
	}
}

// buildLogicalLine concatenates rows [first, last] (inclusive) into one
// logical line, skipping wide-character spacer cells and substituting a
// space for unset cells.
func (t *Terminal) buildLogicalLine(first, last int) logicalLine {
	var b strings.Builder
	var positions []Position

	for row := first; row <= last; row++ {
		for col, cell := range t.rowCells(row) {
			if cell.IsWideSpacer() || cell.IsLeadingWideSpacer() {
				continue
			}
			ch := cell.Char
			if ch == 0 {
				ch = ' '
			}
			pos := Position{Row: row, Col: col}
			writeRuneTracked(&b, &positions, ch, pos)
			for _, zw := range cell.Zerowidth() {
				writeRuneTracked(&b, &positions, zw, pos)
			}
		}
	}

	lastCol := len(t.rowCells(last))

	return logicalLine{
		text:      b.String(),
		positions: positions,
		afterEnd:  Position{Row: last, Col: lastCol},
	}
}
