package term

import "regexp"

// urlPattern matches http(s), ftp, and file URLs up to the next whitespace
// or bracket/quote character. Trailing punctuation is trimmed separately
// since a URL at the end of a sentence usually isn't meant to include the
// closing period or comma.
var urlPattern = regexp.MustCompile(`(?:https?|ftp|file)://[^\s<>\[\]'"]+`)

// UrlSegment is one span of a detected URL on a single grid row. A URL that
// wraps across rows produces one UrlSegment per row it touches.
type UrlSegment struct {
	Row      int
	StartCol int
	EndCol   int // exclusive
	URL      string
}

// trailingPunctuation is trimmed from the end of a detected URL unless it
// balances an opening bracket earlier in the match (so "(see http://x.com/a)"
// keeps the closing paren off the URL, but "http://x.com/(a)" keeps it on).
const trailingPunctuation = ".,;:!?'\")]}>"

// DetectURLs scans the visible screen for URLs, skipping any span already
// covered by an OSC-8 hyperlink (those are explicit and take precedence over
// inference). Returns one or more UrlSegment per match, split at row
// boundaries for URLs that wrap.
func (t *Terminal) DetectURLs() []UrlSegment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.detectURLsLocked()
}

// hyperlinkCoveredAt reports whether the cell at row, col already carries an
// explicit hyperlink, so implicit URL detection can skip over it.
func (t *Terminal) hyperlinkCoveredAt(row, col int) bool {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return false
	}
	cell := t.activeBuffer.Cell(row, col)
	return cell != nil && cell.Hyperlink != nil
}

func detectURLsInLine(line logicalLine, covered func(row, col int) bool) []UrlSegment {
	if line.text == "" {
		return nil
	}

	var segments []UrlSegment
	for _, idx := range urlPattern.FindAllStringIndex(line.text, -1) {
		start, end := trimTrailingPunctuation(line.text, idx[0], idx[1])
		if start >= end {
			continue
		}
		if spanCovered(line, start, end, covered) {
			continue
		}
		segments = append(segments, splitByRow(line, start, end)...)
	}
	return segments
}

// trimTrailingPunctuation removes trailing punctuation from [start, end) in
// text, unless doing so would leave an unbalanced opening bracket inside the
// URL (an opening paren with no matching close keeps its trailing close).
func trimTrailingPunctuation(text string, start, end int) (int, int) {
	for end > start {
		c := text[end-1]
		isPunct := false
		for _, p := range trailingPunctuation {
			if byte(p) == c {
				isPunct = true
				break
			}
		}
		if !isPunct {
			break
		}
		if c == ')' && parenBalance(text[start:end-1]) > 0 {
			break
		}
		end--
	}
	return start, end
}

// parenBalance counts unmatched '(' (positive) or ')' (negative) in s.
func parenBalance(s string) int {
	balance := 0
	for _, c := range s {
		switch c {
		case '(':
			balance++
		case ')':
			balance--
		}
	}
	return balance
}

func spanCovered(line logicalLine, start, end int, covered func(row, col int) bool) bool {
	for i := start; i < end; i++ {
		p := line.positions[i]
		if covered(p.Row, p.Col) {
			return true
		}
	}
	return false
}

// splitByRow breaks a logical-line byte span into one UrlSegment per grid
// row it touches.
func splitByRow(line logicalLine, start, end int) []UrlSegment {
	var segments []UrlSegment
	var rowStart, rowEnd int
	curRow := line.positions[start].Row
	rowStart, rowEnd = line.positions[start].Col, line.positions[start].Col
	segStartByte := start

	flush := func(i int) {
		segments = append(segments, UrlSegment{
			Row:      curRow,
			StartCol: rowStart,
			EndCol:   rowEnd + 1,
			URL:      line.text[segStartByte:i],
		})
	}

	for i := start; i < end; i++ {
		p := line.positions[i]
		if p.Row != curRow {
			flush(i)
			curRow = p.Row
			rowStart = p.Col
			segStartByte = i
		}
		rowEnd = p.Col
	}
	flush(end)

	return segments
}
