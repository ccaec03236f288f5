package histsearch

import (
	"fmt"
	"io"
	"strings"
)

// renderer draws the search prompt and the current match on the terminal.
//
// Every redraw starts from wherever the cursor currently sits: it moves
// back up over the rows the previous prompt line occupied, clears forward,
// writes the prompt line, writes the matched entry line by line below it
// with each query occurrence highlighted, and finally repositions the
// cursor onto the prompt line at the column where typing continues.
//
// All row math is done in terminal columns via displayWidth, so wrapped
// and wide-character lines move the cursor back by the right amount.
type renderer struct {
	output      io.Writer    // Terminal output writer
	colorScheme *ColorScheme // Color configuration for label, input and match styling
	width       int          // Terminal width in columns
	lastHeight  int          // Rows the prompt line occupied at the previous render
}

// newRenderer creates a renderer for a terminal that is width columns wide.
func newRenderer(output io.Writer, colorScheme *ColorScheme, width int) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		width:       width,
		lastHeight:  1,
	}
}

// setWidth records a new terminal width for subsequent row math.
func (r *renderer) setWidth(width int) {
	r.width = width
}

// recalcHeight recomputes the stored prompt-row count for the current
// width. Called after a resize so the next redraw's move-up distance
// stays correct even though nothing was typed.
func (r *renderer) recalcHeight(promptLine string) {
	r.lastHeight = ceilDiv(displayWidth(promptLine), r.width)
	if r.lastHeight < 1 {
		r.lastHeight = 1
	}
}

// render redraws the prompt line (label + input) and, when hasEntry is
// set, the matched entry below it with query occurrences highlighted.
func (r *renderer) render(label, input, entry string, hasEntry bool) error {
	// Move back over the previous prompt rows and clear everything below.
	if r.lastHeight > 1 {
		if _, err := fmt.Fprintf(r.output, "\x1b[%dA", r.lastHeight-1); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(r.output, "\r"); err != nil {
		return err
	}

	if _, err := fmt.Fprint(r.output, r.colorScheme.Label.ToANSI(), label, Reset()); err != nil {
		return err
	}
	if _, err := fmt.Fprint(r.output, r.colorScheme.Input.ToANSI(), input, Reset()); err != nil {
		return err
	}
	if _, err := fmt.Fprint(r.output, "\x1b[J"); err != nil {
		return err
	}

	promptLine := label + input
	r.recalcHeight(promptLine)

	if hasEntry {
		entryHeight := 0
		for _, line := range strings.Split(entry, "\n") {
			if err := r.writeLine(line, input); err != nil {
				return err
			}
			entryHeight += ceilDiv(displayWidth(line), r.width)
		}

		// Reposition onto the prompt line, at the column right after the
		// input text (modulo the width, since the prompt line may wrap).
		if entryHeight > 0 {
			if _, err := fmt.Fprintf(r.output, "\x1b[%dA", entryHeight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(r.output, "\r"); err != nil {
			return err
		}
		if col := displayWidth(promptLine) % r.width; col > 0 {
			if _, err := fmt.Fprintf(r.output, "\x1b[%dC", col); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeLine writes one entry line below the current row, highlighting
// every case-insensitive occurrence of query.
func (r *renderer) writeLine(line, query string) error {
	if _, err := fmt.Fprint(r.output, "\r\n"); err != nil {
		return err
	}

	lastEnd := 0
	for _, m := range matchSpans(line, query) {
		if _, err := fmt.Fprint(r.output, line[lastEnd:m.start]); err != nil {
			return err
		}
		if _, err := fmt.Fprint(r.output, r.colorScheme.Match.ToANSI(), line[m.start:m.end], Reset()); err != nil {
			return err
		}
		lastEnd = m.end
	}
	if _, err := fmt.Fprint(r.output, line[lastEnd:]); err != nil {
		return err
	}
	return nil
}
