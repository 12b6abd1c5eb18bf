// Package layout provides grapheme-aware line centering for the renderer.
package layout

import (
	"github.com/rivo/uniseg"
)

// CenteredLine is the placement of one source line within a screen row.
// Text is the visible slice of the line and LeftPad the number of blank
// columns preceding it. Trailing space is never padded; cells to the
// right of Text stay cleared.
type CenteredLine struct {
	Text    string
	LeftPad int
}

// Width returns the number of grapheme clusters in s. Each cluster is
// counted as one terminal column; double-width glyphs are not given
// special treatment.
func Width(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Center computes the horizontally centered placement of line within
// maxWidth columns. A line shorter than maxWidth is padded on the left by
// half the difference (rounded down) and passed through unmodified. A
// line at least maxWidth wide is clipped symmetrically: half the overhang
// (rounded down) is skipped from the start and exactly maxWidth clusters
// are kept, so an odd overhang loses its extra cluster on the right.
//
// Center is pure: identical inputs always yield identical output, and
// the clipped Text is a contiguous byte slice of line.
func Center(line string, maxWidth int) CenteredLine {
	if maxWidth <= 0 {
		return CenteredLine{}
	}

	width := uniseg.GraphemeClusterCount(line)
	if width < maxWidth {
		return CenteredLine{Text: line, LeftPad: (maxWidth - width) / 2}
	}

	start, end := clipRange(line, (width-maxWidth)/2, maxWidth)
	return CenteredLine{Text: line[start:end]}
}

// clipRange returns the byte range covering take grapheme clusters after
// skipping skip clusters from the start of line.
func clipRange(line string, skip, take int) (start, end int) {
	rest := line
	state := -1
	var cluster string

	for i := 0; i < skip && rest != ""; i++ {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start += len(cluster)
	}

	end = start
	for i := 0; i < take && rest != ""; i++ {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}
	return start, end
}

// Clusters splits s into its grapheme clusters, in order.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, len(s))
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}
