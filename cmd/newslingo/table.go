package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/tanawatp/newslingo"
)

// RenderVocabTable writes the vocabulary entries as an aligned text table.
// Column widths are computed with runewidth since Thai and CJK characters
// occupy more than one terminal cell.
func RenderVocabTable(w io.Writer, entries []newslingo.VocabEntry) {
	headers := []string{"Word", "Translation", "Example (from article)"}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, e := range entries {
		cells := []string{e.Term, e.Translation, e.Example}
		for i, c := range cells {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow(w, headers, widths)
	separators := make([]string, len(headers))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(w, separators, widths)

	for _, e := range entries {
		writeRow(w, []string{e.Term, e.Translation, e.Example}, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
