package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rounded box drawing characters.
const (
	topLeft, topRight       = "╭", "╮"
	bottomLeft, bottomRight = "╰", "╯"
	horizontal, vertical    = "─", "│"
	topTee, bottomTee       = "┬", "┴"
	leftTee, rightTee       = "├", "┤"
	cross                   = "┼"
)

func writeTable(w io.Writer, opts Options, summaries []Summary) error {
	if len(summaries) == 0 {
		return nil
	}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = truncateRow(s.Row(), opts.MaxWidth)
	}
	widths := computeWidths(summaryHeader, rows)

	if opts.Title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, topLeft, horizontal, topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2
		title := runewidth.Truncate(opts.Title, inner, "...")
		if _, err := fmt.Fprintf(w, "%s %s %s\n", vertical, centerCell(title, inner), vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, leftTee, topTee, rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, widths, topLeft, topTee, topRight); err != nil {
		return err
	}

	if err := drawRow(w, summaryHeader, widths); err != nil {
		return err
	}
	if err := drawHLine(w, widths, leftTee, cross, rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bottomLeft, bottomTee, bottomRight)
}

// tableInnerWidth is the width between the outer borders: every cell plus its
// one-space padding on both sides, and one separator between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(horizontal, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString(vertical)
	for i, width := range widths {
		sb.WriteString(" " + padCell(cells[i], width) + " ")
		if i < len(widths)-1 {
			sb.WriteString(vertical)
		}
	}
	sb.WriteString(vertical)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func truncateRow(cells []string, maxWidth int) []string {
	if maxWidth <= 0 {
		return cells
	}
	tail := "..."
	if maxWidth <= 3 {
		tail = ""
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = runewidth.Truncate(c, maxWidth, tail)
	}
	return out
}

func centerCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
