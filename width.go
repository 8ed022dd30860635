package term

import (
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// isRegionalIndicator reports whether r is one of the 26 regional-indicator
// symbols used in pairs to spell out flag emoji (U+1F1E6-U+1F1FF).
func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// clustersTogether reports whether uniseg considers a and b, written
// adjacently, a single grapheme cluster. Used to confirm a pair of regional
// indicators actually forms a flag rather than, say, two stray indicators
// separated by something the caller already stripped out.
func clustersTogether(a, b rune) bool {
	combined := string(a) + string(b)
	_, rest, _, _ := uniseg.FirstGraphemeCluster([]byte(combined), -1)
	return len(rest) == 0
}

// GraphemeClusters splits s into user-perceived characters: a combining
// mark, variation selector, or ZWJ emoji sequence stays attached to its base
// rune instead of forming its own entry. Used where text is handled as
// whole clusters rather than one grid cell at a time (e.g. preparing pasted
// text), unlike the cell grid itself, which keeps clusters together via
// Cell.AddZerowidth at write time instead of a separate segmentation pass.
func GraphemeClusters(s string) []string {
	var clusters []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// GraphemeClusterWidth returns the display width a single grapheme cluster
// (as produced by GraphemeClusters) occupies: the shared width of a
// multi-rune cluster like a flag pair or ZWJ sequence, rather than the sum
// of its individual runes' widths.
func GraphemeClusterWidth(cluster string) int {
	runes := []rune(cluster)
	switch len(runes) {
	case 0:
		return 0
	case 1:
		return runeWidth(runes[0])
	default:
		if w := uniseg.StringWidth(cluster); w > 0 {
			return w
		}
		return runeWidth(runes[0])
	}
}
