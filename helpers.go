package histsearch

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// span is a half-open byte range [start, end) within a line.
type span struct {
	start int
	end   int
}

// matchEnd returns the byte offset just past the first case-insensitive
// occurrence of query in entry, or -1 if entry does not contain query.
// An empty query matches at offset zero.
func matchEnd(entry, query string) int {
	idx := strings.Index(strings.ToLower(entry), strings.ToLower(query))
	if idx < 0 {
		return -1
	}
	return idx + len(strings.ToLower(query))
}

// matchSpans returns every case-insensitive occurrence of query within
// line, in order, non-overlapping. An empty query yields no spans.
func matchSpans(line, query string) []span {
	if query == "" {
		return nil
	}
	lowerLine := strings.ToLower(line)
	lowerQuery := strings.ToLower(query)

	var spans []span
	offset := 0
	for {
		idx := strings.Index(lowerLine[offset:], lowerQuery)
		if idx < 0 {
			return spans
		}
		start := offset + idx
		end := start + len(lowerQuery)
		spans = append(spans, span{start: start, end: end})
		offset = end
	}
}

// displayWidth returns the number of terminal columns s occupies,
// counting East Asian wide characters as two columns.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ceilDiv divides a by b rounding up. A display width that is an exact
// multiple of the terminal width occupies exactly width/terminalWidth
// rows, never one more.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
